package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"selfchart/app"
	"selfchart/domain/chart"
	"selfchart/domain/core"
	"selfchart/domain/scoring"
	"selfchart/domain/survey"
	apperrors "selfchart/internal/errors"
)

// submitRequest is a quiz submission. Responses is the full 100-answer
// vector; sparse clients may send Answers (question id -> value) instead
// and unanswered questions default to the midpoint before validation.
type submitRequest struct {
	Responses []int                `json:"responses"`
	Answers   map[int]int          `json:"answers,omitempty"`
	Birth     chart.BirthRecord    `json:"birth"`
	Strategy  scoring.StrategyName `json:"strategy,omitempty"`
	Email     string               `json:"email,omitempty"`
	Name      string               `json:"name,omitempty"`
}

func (s *Server) handleSubmit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":  apperrors.CodeInvalidInput,
			"error": "malformed request body",
		})
		return
	}

	responses := req.Responses
	if len(responses) == 0 && req.Answers != nil {
		responses = survey.FillDefaults(req.Answers)
	}

	birth := req.Birth
	if s.geocoder != nil {
		birth = s.geocoder.Enrich(c.Request.Context(), birth)
	}

	result, err := s.readings.Submit(c.Request.Context(), app.SubmitInput{
		Responses: responses,
		Birth:     birth,
		Strategy:  req.Strategy,
		Email:     req.Email,
		Name:      req.Name,
	})
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (s *Server) handleFetch(c *gin.Context) {
	publicID, secret, ok := s.credentials(c)
	if !ok {
		return
	}

	reading, err := s.readings.Fetch(c.Request.Context(), publicID, secret)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, reading)
}

func (s *Server) handlePurchase(c *gin.Context) {
	publicID, secret, ok := s.credentials(c)
	if !ok {
		return
	}

	if err := s.readings.MarkPurchased(c.Request.Context(), publicID, secret); err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"purchased": true})
}

func (s *Server) handleReport(c *gin.Context) {
	publicID, secret, ok := s.credentials(c)
	if !ok {
		return
	}

	reading, err := s.readings.Fetch(c.Request.Context(), publicID, secret)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", s.renderer.HTML(reading))
}

func (s *Server) handleExport(c *gin.Context) {
	publicID, secret, ok := s.credentials(c)
	if !ok {
		return
	}

	reading, err := s.readings.Fetch(c.Request.Context(), publicID, secret)
	if err != nil {
		s.renderError(c, err)
		return
	}

	buf, err := s.renderer.Workbook(reading)
	if err != nil {
		s.logger.Error("failed to build workbook for %s: %v", publicID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":  apperrors.CodeInternalError,
			"error": "failed to build export",
		})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="reading.xlsx"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

// handleQuestions returns the survey taxonomy so clients can render the
// questionnaire without hardcoding the table.
func (s *Server) handleQuestions(c *gin.Context) {
	type question struct {
		ID       int          `json:"id"`
		Trait    survey.Trait `json:"trait"`
		Reversed bool         `json:"reversed"`
	}
	questions := make([]question, survey.QuestionCount)
	for i := range questions {
		id := i + 1
		questions[i] = question{ID: id, Trait: survey.TraitFor(id), Reversed: survey.Reversed(id)}
	}
	c.JSON(http.StatusOK, gin.H{
		"count":     survey.QuestionCount,
		"scale":     gin.H{"min": survey.MinAnswer, "max": survey.MaxAnswer},
		"questions": questions,
	})
}

// credentials pulls the public id from the path and the secret from the
// X-Reading-Secret header or the secret query parameter.
func (s *Server) credentials(c *gin.Context) (core.PublicID, core.Secret, bool) {
	publicID, err := core.ParsePublicID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":  apperrors.CodeInvalidInput,
			"error": "missing reading id",
		})
		return "", "", false
	}

	secret := c.GetHeader("X-Reading-Secret")
	if secret == "" {
		secret = c.Query("secret")
	}
	if secret == "" {
		c.JSON(http.StatusNotFound, gin.H{
			"code":  apperrors.CodeNotFound,
			"error": core.ErrNotFoundOrUnauthorized.Error(),
		})
		return "", "", false
	}

	return publicID, core.Secret(secret), true
}

// renderError maps domain errors onto transport codes. Store misses stay
// opaque: one status, one message, regardless of cause.
func (s *Server) renderError(c *gin.Context, err error) {
	switch {
	case core.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{
			"code":  apperrors.CodeValidationError,
			"error": err.Error(),
		})
	case core.IsParseError(err):
		c.JSON(http.StatusBadRequest, gin.H{
			"code":  apperrors.CodeParseError,
			"error": err.Error(),
		})
	case core.IsNotFoundOrUnauthorized(err):
		c.JSON(http.StatusNotFound, gin.H{
			"code":  apperrors.CodeNotFound,
			"error": core.ErrNotFoundOrUnauthorized.Error(),
		})
	default:
		s.logger.Error("request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":  apperrors.CodeInternalError,
			"error": "internal error",
		})
	}
}
