package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/dball/internal/models"
	"github.com/KirkDiggler/dball/internal/services/draw"
	"github.com/KirkDiggler/dball/internal/services/reconcile"
	"github.com/KirkDiggler/dball/internal/services/ticket"
)

// Config holds configuration for the API handler
type Config struct {
	TicketService    ticket.Service
	DrawService      draw.Service
	ReconcileService reconcile.Service

	// Gatherer backs GET /metrics; the route is not registered when nil
	Gatherer prometheus.Gatherer

	// HealthCheck backs GET /healthz; a nil check always reports ok
	HealthCheck func() error

	Logger logrus.FieldLogger
}

type purchaseTicketRequest struct {
	Period    string `json:"period"`
	Reds      []int  `json:"reds"`
	Blue      int    `json:"blue"`
	QuickPick bool   `json:"quick_pick"`
}

type recordDrawRequest struct {
	Period string `json:"period"`
	Reds   []int  `json:"reds"`
	Blue   int    `json:"blue"`

	// Multiplier defaults to 1 when omitted
	Multiplier *int `json:"multiplier"`
}

type publishDrawResponse struct {
	Draw       *models.Draw   `json:"draw"`
	Superseded []*models.Draw `json:"superseded"`
}

type deprecateDrawResponse struct {
	Draw         *models.Draw `json:"draw"`
	WasPublished bool         `json:"was_published"`
}

type countResponse struct {
	Period string `json:"period,omitempty"`
	Count  int64  `json:"count"`
}

type resettleResponse struct {
	Period     string                      `json:"period"`
	DrawID     string                      `json:"draw_id"`
	Outcomes   []*models.SettlementOutcome `json:"outcomes"`
	Summary    map[string]int              `json:"summary"`
	TotalUnits int64                       `json:"total_units"`
	Jackpots   int                         `json:"jackpots"`
	Recorded   bool                        `json:"recorded"`
}

func newResettleResponse(out *reconcile.ResettlePeriodOutput) *resettleResponse {
	summary := make(map[string]int, len(out.Summary))
	for tier, count := range out.Summary {
		summary[tier.String()] = count
	}

	outcomes := out.Outcomes
	if outcomes == nil {
		outcomes = []*models.SettlementOutcome{}
	}

	return &resettleResponse{
		Period:     out.Period,
		DrawID:     out.DrawID,
		Outcomes:   outcomes,
		Summary:    summary,
		TotalUnits: out.TotalUnits,
		Jackpots:   out.Jackpots,
		Recorded:   out.Recorded,
	}
}
