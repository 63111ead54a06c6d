package app

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"selfchart/domain/chart"
	"selfchart/domain/core"
	"selfchart/domain/insight"
	"selfchart/domain/scoring"
	"selfchart/domain/survey"
	"selfchart/internal"
	"selfchart/models"
	"selfchart/ports"
)

// saveTimeout bounds a single background persistence attempt.
const saveTimeout = 10 * time.Second

// SubmitInput is a full quiz submission.
type SubmitInput struct {
	Responses []int                `json:"responses"`
	Birth     chart.BirthRecord    `json:"birth"`
	Strategy  scoring.StrategyName `json:"strategy,omitempty"`
	Email     string               `json:"email,omitempty"`
	Name      string               `json:"name,omitempty"`
}

// Result is the locally derived reading, returned immediately regardless
// of persistence outcome.
type Result struct {
	PublicID    core.PublicID        `json:"public_id"`
	Secret      core.Secret          `json:"secret"`
	Trait       scoring.TraitProfile `json:"trait"`
	Chart       chart.ChartProfile   `json:"chart"`
	Insights    insight.Report       `json:"insights"`
	Fingerprint core.Hash            `json:"fingerprint"`
}

// ReadingService runs the derivation pipeline and hands the result to the
// store without blocking on it. Every derivation is a pure function of its
// input; concurrent submissions share no state.
type ReadingService struct {
	deriver *chart.Deriver
	synth   *insight.Synthesizer
	repo    ports.ReadingRepository
	logger  *internal.Logger

	// saves bounds in-flight background persistence; pending lets tests
	// and shutdown wait for the queue to drain.
	saves   *semaphore.Weighted
	pending sync.WaitGroup
}

// NewReadingService creates the pipeline service. maxPendingSaves bounds
// concurrent background writes to the store.
func NewReadingService(repo ports.ReadingRepository, maxPendingSaves int64, logger *internal.Logger) *ReadingService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &ReadingService{
		deriver: chart.NewDeriver(),
		synth:   insight.NewSynthesizer(),
		repo:    repo,
		logger:  logger.Named("readings"),
		saves:   semaphore.NewWeighted(maxPendingSaves),
	}
}

// Submit validates and derives a reading, then persists it in the
// background. Validation and parse failures are terminal and surfaced;
// persistence failures are logged and swallowed — the caller always gets
// the locally computed result.
func (s *ReadingService) Submit(ctx context.Context, input SubmitInput) (*Result, error) {
	vec, err := survey.Validate(input.Responses)
	if err != nil {
		return nil, err
	}

	ch, err := s.deriver.Derive(input.Birth)
	if err != nil {
		return nil, err
	}

	trait := scoring.ForName(input.Strategy).Score(vec)

	// The synthesizer compares energy-taxonomy buckets against the chart;
	// reuse the scored profile when the caller already asked for it.
	energyTrait := trait
	if trait.Strategy != scoring.StrategyEnergy {
		energyTrait = scoring.NewEnergyScorer().Score(vec)
	}
	insights := s.synth.Synthesize(energyTrait, ch)

	fingerprint, err := core.Fingerprint(struct {
		Trait    scoring.TraitProfile `json:"trait"`
		Chart    chart.ChartProfile   `json:"chart"`
		Insights insight.Report       `json:"insights"`
	}{trait, ch, insights})
	if err != nil {
		return nil, err
	}

	reading, err := models.NewReading(input.Email, input.Name, trait, ch, insights, fingerprint)
	if err != nil {
		return nil, err
	}

	s.persistAsync(reading)

	return &Result{
		PublicID:    core.PublicID(reading.PublicID),
		Secret:      core.Secret(reading.Secret),
		Trait:       trait,
		Chart:       ch,
		Insights:    insights,
		Fingerprint: fingerprint,
	}, nil
}

// persistAsync saves the reading off the request path. Failure never
// reaches the submitting user.
func (s *ReadingService) persistAsync(reading *models.Reading) {
	if s.repo == nil {
		return
	}
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()

		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()

		if err := s.saves.Acquire(ctx, 1); err != nil {
			s.logger.Error("dropping save for reading %s: %v", reading.PublicID, err)
			return
		}
		defer s.saves.Release(1)

		if err := s.repo.Create(ctx, reading); err != nil {
			s.logger.Error("failed to persist reading %s: %v", reading.PublicID, err)
			return
		}
		s.logger.Debug("persisted reading %s", reading.PublicID)
	}()
}

// Fetch retrieves a stored reading, gated on the secret.
func (s *ReadingService) Fetch(ctx context.Context, publicID core.PublicID, secret core.Secret) (*models.Reading, error) {
	return s.repo.Fetch(ctx, publicID, secret)
}

// MarkPurchased flips the purchased flag, gated on the secret.
func (s *ReadingService) MarkPurchased(ctx context.Context, publicID core.PublicID, secret core.Secret) error {
	return s.repo.MarkPurchased(ctx, publicID, secret)
}

// Drain blocks until all pending background saves finish. Used by tests
// and graceful shutdown.
func (s *ReadingService) Drain() {
	s.pending.Wait()
}
