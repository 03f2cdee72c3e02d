package reconcile

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/dball/internal/common/clock"
	"github.com/KirkDiggler/dball/internal/match"
	"github.com/KirkDiggler/dball/internal/metrics"
	"github.com/KirkDiggler/dball/internal/models"
	drawRepo "github.com/KirkDiggler/dball/internal/repositories/draw"
	settlementRepo "github.com/KirkDiggler/dball/internal/repositories/settlement"
	ticketRepo "github.com/KirkDiggler/dball/internal/repositories/ticket"
)

// service implements the Service interface
type service struct {
	ticketRepo     ticketRepo.Repository
	drawRepo       drawRepo.Repository
	settlementRepo settlementRepo.Repository
	clock          clock.Clock
	log            logrus.FieldLogger
	metrics        *metrics.Collector
}

// New creates a new reconciliation service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.TicketRepo == nil {
		return nil, ErrNilTicketRepo
	}

	if cfg.DrawRepo == nil {
		return nil, ErrNilDrawRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &service{
		ticketRepo:     cfg.TicketRepo,
		drawRepo:       cfg.DrawRepo,
		settlementRepo: cfg.SettlementRepo,
		clock:          cfg.Clock,
		log:            log.WithField("service", "reconcile"),
		metrics:        cfg.Metrics,
	}, nil
}

// Settle classifies one ticket against the published draw of its period
func (s *service) Settle(ctx context.Context, input *SettleInput) (*SettleOutput, error) {
	if input == nil || input.TicketID == "" {
		return nil, ErrMissingTicketID
	}

	ticket, err := s.ticketRepo.GetTicket(ctx, &ticketRepo.GetTicketInput{TicketID: input.TicketID})
	if err != nil {
		return nil, err
	}

	draw, err := s.authoritativeDraw(ctx, ticket.Period)
	if err != nil {
		return nil, err
	}

	outcome := s.settle(ticket, draw, s.clock.Now())
	s.metrics.RecordOutcome(outcome.Tier)

	s.log.WithFields(logrus.Fields{
		"ticket_id": ticket.ID,
		"draw_id":   draw.ID,
		"period":    ticket.Period,
		"tier":      outcome.Tier.String(),
	}).Debug("Settled ticket")

	return &SettleOutput{
		Outcome: outcome,
	}, nil
}

// ResettlePeriod recomputes every ticket of the period from current state. Nothing from an
// earlier settlement is reused, so running it twice without a draw change gives the same results.
func (s *service) ResettlePeriod(ctx context.Context, input *ResettlePeriodInput) (*ResettlePeriodOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if err := models.ValidatePeriod(input.Period); err != nil {
		return nil, err
	}

	if input.Record && s.settlementRepo == nil {
		return nil, ErrHistoryNotEnabled
	}

	draw, err := s.authoritativeDraw(ctx, input.Period)
	if err != nil {
		return nil, err
	}

	tickets, err := s.ticketRepo.ListTicketsByPeriod(ctx, &ticketRepo.ListTicketsByPeriodInput{Period: input.Period})
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	out := &ResettlePeriodOutput{
		Period:   input.Period,
		DrawID:   draw.ID,
		Outcomes: make([]*models.SettlementOutcome, 0, len(tickets.Tickets)),
		Summary:  make(map[models.PrizeTier]int, len(models.Tiers)),
	}

	for _, ticket := range tickets.Tickets {
		outcome := s.settle(ticket, draw, now)
		out.Outcomes = append(out.Outcomes, outcome)
		out.Summary[outcome.Tier]++
		out.TotalUnits += outcome.PayoutUnits
		if outcome.Jackpot {
			out.Jackpots++
		}
		s.metrics.RecordOutcome(outcome.Tier)
	}

	if input.Record {
		err := s.settlementRepo.SaveOutcomes(ctx, &settlementRepo.SaveOutcomesInput{
			Period:   input.Period,
			Outcomes: out.Outcomes,
		})
		if err != nil {
			return nil, err
		}
		out.Recorded = true
	}

	s.log.WithFields(logrus.Fields{
		"period":      input.Period,
		"draw_id":     draw.ID,
		"tickets":     len(out.Outcomes),
		"total_units": out.TotalUnits,
		"jackpots":    out.Jackpots,
		"recorded":    out.Recorded,
	}).Info("Resettled period")

	return out, nil
}

// Sweep resettles every period with a published draw, then clears the recorded history of
// periods that no longer have one. A failing period is logged and skipped; only failing to
// list the published periods stops the sweep.
func (s *service) Sweep(ctx context.Context, input *SweepInput) (*SweepOutput, error) {
	start := time.Now()

	periods, err := s.drawRepo.ListPublishedPeriods(ctx, &drawRepo.ListPublishedPeriodsInput{})
	if err != nil {
		s.metrics.RecordSweep(time.Since(start), err)
		return nil, err
	}

	out := &SweepOutput{
		Settled: make([]*ResettlePeriodOutput, 0, len(periods.Periods)),
	}

	var firstErr error
	for _, period := range periods.Periods {
		if err := ctx.Err(); err != nil {
			s.metrics.RecordSweep(time.Since(start), err)
			return out, err
		}

		result, err := s.ResettlePeriod(ctx, &ResettlePeriodInput{
			Period: period,
			Record: s.settlementRepo != nil,
		})
		if err != nil {
			s.log.WithError(err).WithField("period", period).Error("Sweep failed to settle period")
			out.Failed = append(out.Failed, PeriodFailure{Period: period, Err: err})
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		out.Settled = append(out.Settled, result)
	}

	if s.settlementRepo != nil {
		if err := s.clearStalePeriods(ctx, periods.Periods, out); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	s.metrics.RecordSweep(time.Since(start), firstErr)
	s.log.WithFields(logrus.Fields{
		"settled": len(out.Settled),
		"cleared": len(out.Cleared),
		"failed":  len(out.Failed),
	}).Info("Settlement sweep finished")

	return out, nil
}

// clearStalePeriods drops the recorded outcomes of every period missing from published.
// Those outcomes point at a draw that was deprecated without a replacement.
func (s *service) clearStalePeriods(ctx context.Context, published []string, out *SweepOutput) error {
	recorded, err := s.settlementRepo.ListPeriods(ctx, &settlementRepo.ListPeriodsInput{})
	if err != nil {
		s.log.WithError(err).Error("Sweep failed to list recorded periods")
		return err
	}

	live := make(map[string]struct{}, len(published))
	for _, period := range published {
		live[period] = struct{}{}
	}

	var firstErr error
	for _, period := range recorded.Periods {
		if _, ok := live[period]; ok {
			continue
		}

		err := s.settlementRepo.ClearPeriod(ctx, &settlementRepo.ClearPeriodInput{Period: period})
		if err != nil {
			s.log.WithError(err).WithField("period", period).Error("Sweep failed to clear stale settlements")
			out.Failed = append(out.Failed, PeriodFailure{Period: period, Err: err})
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		s.metrics.RecordPeriodCleared()
		s.log.WithField("period", period).Warn("Cleared settlements of period without a published draw")
		out.Cleared = append(out.Cleared, period)
	}

	return firstErr
}

// GetSettlement returns the last recorded outcome of a ticket. An outcome recorded against
// a draw that is no longer the published one is never returned.
func (s *service) GetSettlement(ctx context.Context, input *GetSettlementInput) (*GetSettlementOutput, error) {
	if input == nil || input.TicketID == "" {
		return nil, ErrMissingTicketID
	}

	if s.settlementRepo == nil {
		return nil, ErrHistoryNotEnabled
	}

	outcome, err := s.settlementRepo.GetOutcome(ctx, &settlementRepo.GetOutcomeInput{TicketID: input.TicketID})
	if err != nil {
		return nil, err
	}

	draw, err := s.authoritativeDraw(ctx, outcome.Period)
	if err != nil {
		return nil, err
	}

	if outcome.DrawID != draw.ID {
		return nil, fmt.Errorf("%w: ticket %s was recorded against draw %s, published draw is %s",
			models.ErrSettlementNotFound, outcome.TicketID, outcome.DrawID, draw.ID)
	}

	return &GetSettlementOutput{
		Outcome: outcome,
	}, nil
}

// ListSettlements returns the recorded outcomes of a period that were computed against its
// current published draw
func (s *service) ListSettlements(ctx context.Context, input *ListSettlementsInput) (*ListSettlementsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if err := models.ValidatePeriod(input.Period); err != nil {
		return nil, err
	}

	if s.settlementRepo == nil {
		return nil, ErrHistoryNotEnabled
	}

	draw, err := s.authoritativeDraw(ctx, input.Period)
	if err != nil {
		return nil, err
	}

	out, err := s.settlementRepo.ListOutcomesByPeriod(ctx, &settlementRepo.ListOutcomesByPeriodInput{Period: input.Period})
	if err != nil {
		return nil, err
	}

	current := make([]*models.SettlementOutcome, 0, len(out.Outcomes))
	for _, o := range out.Outcomes {
		if o.DrawID == draw.ID {
			current = append(current, o)
		}
	}

	return &ListSettlementsOutput{
		DrawID:   draw.ID,
		Outcomes: current,
	}, nil
}

// authoritativeDraw returns the single published draw of a period. It never picks one of
// several published draws; that state is reported as an invariant violation.
func (s *service) authoritativeDraw(ctx context.Context, period string) (*models.Draw, error) {
	out, err := s.drawRepo.ListDrawsByPeriod(ctx, &drawRepo.ListDrawsByPeriodInput{Period: period})
	if err != nil {
		return nil, err
	}

	var published []*models.Draw
	for _, d := range out.Draws {
		if d.Status == models.DrawStatusPublished {
			published = append(published, d)
		}
	}

	switch len(published) {
	case 0:
		return nil, fmt.Errorf("%w %s", models.ErrNoAuthoritativeDraw, period)
	case 1:
		return published[0], nil
	}

	ids := make([]string, len(published))
	for i, d := range published {
		ids[i] = d.ID
	}

	s.metrics.RecordInvariantViolation()
	s.log.WithFields(logrus.Fields{
		"period":   period,
		"draw_ids": strings.Join(ids, ","),
	}).Error("Period has more than one published draw, refusing to settle")

	return nil, fmt.Errorf("%w: period %s has draws %s", models.ErrInvariantViolation, period, strings.Join(ids, ", "))
}

func (s *service) settle(ticket *models.Ticket, draw *models.Draw, at time.Time) *models.SettlementOutcome {
	tier := match.Classify(ticket.Numbers, draw.Numbers)
	payout := match.Payout(tier, draw.Multiplier)

	return &models.SettlementOutcome{
		TicketID:    ticket.ID,
		DrawID:      draw.ID,
		Period:      ticket.Period,
		Tier:        tier,
		PayoutUnits: payout.Units,
		Jackpot:     payout.Jackpot,
		SettledAt:   at,
	}
}
