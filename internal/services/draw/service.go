package draw

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/dball/internal/common/clock"
	"github.com/KirkDiggler/dball/internal/common/uuid"
	"github.com/KirkDiggler/dball/internal/metrics"
	"github.com/KirkDiggler/dball/internal/models"
	drawRepo "github.com/KirkDiggler/dball/internal/repositories/draw"
)

const (
	defaultLatestLimit = 10
	maxLatestLimit     = 100
)

// service implements the Service interface
type service struct {
	drawRepo      drawRepo.Repository
	clock         clock.Clock
	uuidGenerator uuid.UUID
	log           logrus.FieldLogger
	metrics       *metrics.Collector
}

// New creates a new draw service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.DrawRepo == nil {
		return nil, ErrNilDrawRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &service{
		drawRepo:      cfg.DrawRepo,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		log:           log.WithField("service", "draw"),
		metrics:       cfg.Metrics,
	}, nil
}

// RecordDraw validates and stores a new pending draw
func (s *service) RecordDraw(ctx context.Context, input *RecordDrawInput) (*RecordDrawOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if err := models.ValidatePeriod(input.Period); err != nil {
		return nil, err
	}

	numbers, err := models.NewNumberSet(input.Reds, input.Blue)
	if err != nil {
		return nil, err
	}

	if err := models.ValidateMultiplier(input.Multiplier); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	draw := &models.Draw{
		ID:         s.uuidGenerator.NewUUID(),
		Period:     input.Period,
		Numbers:    numbers,
		Multiplier: input.Multiplier,
		Status:     models.DrawStatusPending,
		CreatedAt:  now,
		ModifiedAt: now,
	}

	if err := s.drawRepo.CreateDraw(ctx, &drawRepo.CreateDrawInput{Draw: draw}); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"draw_id": draw.ID,
		"period":  draw.Period,
		"numbers": draw.Numbers.String(),
	}).Info("Recorded pending draw")

	return &RecordDrawOutput{
		Draw: draw,
	}, nil
}

// PublishDraw moves a pending draw to published. Every other published draw of the period is
// deprecated in the same atomic update, so the period never has two authoritative results.
func (s *service) PublishDraw(ctx context.Context, input *PublishDrawInput) (*PublishDrawOutput, error) {
	if input == nil || input.DrawID == "" {
		return nil, ErrMissingDrawID
	}

	current, err := s.drawRepo.GetDraw(ctx, &drawRepo.GetDrawInput{DrawID: input.DrawID})
	if err != nil {
		return nil, err
	}

	var (
		published  *models.Draw
		superseded []*models.Draw
	)

	_, err = s.drawRepo.UpdatePeriod(ctx, &drawRepo.UpdatePeriodInput{
		Period: current.Period,
		Apply: func(draws []*models.Draw) ([]*models.Draw, error) {
			// Reset captures in case the repository retries the update
			published, superseded = nil, nil
			now := s.clock.Now()

			target := findDraw(draws, input.DrawID)
			if target == nil {
				return nil, models.ErrDrawNotFound
			}
			if !target.Status.CanTransitionTo(models.DrawStatusPublished) {
				return nil, &models.TransitionError{DrawID: target.ID, From: target.Status, To: models.DrawStatusPublished}
			}

			for _, d := range draws {
				if d.ID == target.ID || d.Status != models.DrawStatusPublished {
					continue
				}
				if err := d.Transition(models.DrawStatusDeprecated, now); err != nil {
					return nil, err
				}
				superseded = append(superseded, d)
			}

			if err := target.Transition(models.DrawStatusPublished, now); err != nil {
				return nil, err
			}
			published = target

			return append(append([]*models.Draw{}, superseded...), target), nil
		},
	})
	if err != nil {
		return nil, err
	}

	for _, d := range superseded {
		s.metrics.RecordDrawTransition(models.DrawStatusDeprecated)
		s.log.WithFields(logrus.Fields{
			"draw_id":       d.ID,
			"period":        d.Period,
			"superseded_by": published.ID,
		}).Warn("Published draw superseded by correction")
	}
	s.metrics.RecordDrawTransition(models.DrawStatusPublished)

	s.log.WithFields(logrus.Fields{
		"draw_id": published.ID,
		"period":  published.Period,
		"numbers": published.Numbers.String(),
	}).Info("Published draw")

	return &PublishDrawOutput{
		Draw:       published,
		Superseded: superseded,
	}, nil
}

// DeprecateDraw withdraws a pending or published draw. The row is kept.
func (s *service) DeprecateDraw(ctx context.Context, input *DeprecateDrawInput) (*DeprecateDrawOutput, error) {
	if input == nil || input.DrawID == "" {
		return nil, ErrMissingDrawID
	}

	current, err := s.drawRepo.GetDraw(ctx, &drawRepo.GetDrawInput{DrawID: input.DrawID})
	if err != nil {
		return nil, err
	}

	var (
		deprecated   *models.Draw
		wasPublished bool
	)

	_, err = s.drawRepo.UpdatePeriod(ctx, &drawRepo.UpdatePeriodInput{
		Period: current.Period,
		Apply: func(draws []*models.Draw) ([]*models.Draw, error) {
			target := findDraw(draws, input.DrawID)
			if target == nil {
				return nil, models.ErrDrawNotFound
			}

			wasPublished = target.Status == models.DrawStatusPublished
			if err := target.Transition(models.DrawStatusDeprecated, s.clock.Now()); err != nil {
				return nil, err
			}
			deprecated = target

			return []*models.Draw{target}, nil
		},
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordDrawTransition(models.DrawStatusDeprecated)

	entry := s.log.WithFields(logrus.Fields{
		"draw_id": deprecated.ID,
		"period":  deprecated.Period,
	})
	if wasPublished {
		entry.Warn("Deprecated published draw, period has no authoritative result until a correction is published")
	} else {
		entry.Info("Deprecated pending draw")
	}

	return &DeprecateDrawOutput{
		Draw:         deprecated,
		WasPublished: wasPublished,
	}, nil
}

// GetDraw retrieves a draw by ID
func (s *service) GetDraw(ctx context.Context, input *GetDrawInput) (*GetDrawOutput, error) {
	if input == nil || input.DrawID == "" {
		return nil, ErrMissingDrawID
	}

	draw, err := s.drawRepo.GetDraw(ctx, &drawRepo.GetDrawInput{DrawID: input.DrawID})
	if err != nil {
		return nil, err
	}

	return &GetDrawOutput{
		Draw: draw,
	}, nil
}

// ListDraws returns every draw of a period, including deprecated ones
func (s *service) ListDraws(ctx context.Context, input *ListDrawsInput) (*ListDrawsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if err := models.ValidatePeriod(input.Period); err != nil {
		return nil, err
	}

	out, err := s.drawRepo.ListDrawsByPeriod(ctx, &drawRepo.ListDrawsByPeriodInput{Period: input.Period})
	if err != nil {
		return nil, err
	}

	return &ListDrawsOutput{
		Draws: out.Draws,
	}, nil
}

// ListDrawsByDateRange returns draws recorded in [From, To) across periods
func (s *service) ListDrawsByDateRange(ctx context.Context, input *ListDrawsByDateRangeInput) (*ListDrawsByDateRangeOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.From.IsZero() || input.To.IsZero() || !input.From.Before(input.To) {
		return nil, ErrInvalidDateRange
	}

	out, err := s.drawRepo.ListDrawsByDateRange(ctx, &drawRepo.ListDrawsByDateRangeInput{
		From: input.From,
		To:   input.To,
	})
	if err != nil {
		return nil, err
	}

	return &ListDrawsByDateRangeOutput{
		Draws: out.Draws,
	}, nil
}

// ListLatestDraws returns the newest draws of any status
func (s *service) ListLatestDraws(ctx context.Context, input *ListLatestDrawsInput) (*ListLatestDrawsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultLatestLimit
	}
	if limit < 0 || limit > maxLatestLimit {
		return nil, ErrInvalidLimit
	}

	out, err := s.drawRepo.ListLatestDraws(ctx, &drawRepo.ListLatestDrawsInput{Limit: limit})
	if err != nil {
		return nil, err
	}

	return &ListLatestDrawsOutput{
		Draws: out.Draws,
	}, nil
}

// CountDraws counts draws of any status, deprecated rows included
func (s *service) CountDraws(ctx context.Context, input *CountDrawsInput) (*CountDrawsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	out, err := s.drawRepo.CountDraws(ctx, &drawRepo.CountDrawsInput{Period: input.Period})
	if err != nil {
		return nil, err
	}

	return &CountDrawsOutput{
		Count: out.Count,
	}, nil
}

func findDraw(draws []*models.Draw, id string) *models.Draw {
	for _, d := range draws {
		if d.ID == id {
			return d
		}
	}
	return nil
}
