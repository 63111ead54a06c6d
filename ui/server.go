package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"selfchart/adapters/geo"
	"selfchart/adapters/report"
	"selfchart/app"
	"selfchart/internal"
)

// Server is the public HTTP surface: quiz submission, reading retrieval,
// the purchase transition, and report exports.
type Server struct {
	router   *gin.Engine
	readings *app.ReadingService
	renderer *report.Renderer
	geocoder *geo.Geocoder
	logger   *internal.Logger
}

// NewServer creates the API server. geocoder may be nil when place
// enrichment is disabled.
func NewServer(readings *app.ReadingService, geocoder *geo.Geocoder, logger *internal.Logger) *Server {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	s := &Server{
		router:   gin.Default(),
		readings: readings,
		renderer: report.NewRenderer(),
		geocoder: geocoder,
		logger:   logger.Named("http"),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/questions", s.handleQuestions)
		api.POST("/readings", s.handleSubmit)
		api.GET("/readings/:id", s.handleFetch)
		api.POST("/readings/:id/purchase", s.handlePurchase)
		api.GET("/readings/:id/report", s.handleReport)
		api.GET("/readings/:id/export", s.handleExport)
	}
}

// Handler exposes the router for http.Server wiring.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the server on the given address.
func (s *Server) Run(addr string) error {
	s.logger.Info("listening on %s", addr)
	return s.router.Run(addr)
}
