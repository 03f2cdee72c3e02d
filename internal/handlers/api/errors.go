package api

import (
	"errors"
	"net/http"

	"github.com/KirkDiggler/dball/internal/models"
	drawRepo "github.com/KirkDiggler/dball/internal/repositories/draw"
	"github.com/KirkDiggler/dball/internal/services/draw"
	"github.com/KirkDiggler/dball/internal/services/reconcile"
	"github.com/KirkDiggler/dball/internal/services/ticket"
)

// HandlerError is a custom error type for API handler errors
type HandlerError string

// Error implements the error interface
func (e HandlerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig           HandlerError = "config cannot be nil"
	ErrNilTicketService    HandlerError = "ticket service cannot be nil"
	ErrNilDrawService      HandlerError = "draw service cannot be nil"
	ErrNilReconcileService HandlerError = "reconcile service cannot be nil"
)

// errorResponse is the body of every non-2xx reply
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// statusFor maps a domain error onto an HTTP status and a stable machine-readable code
func statusFor(err error) (int, string) {
	var validation *models.ValidationError
	if errors.As(err, &validation) {
		return http.StatusBadRequest, string(validation.Kind)
	}

	switch {
	case errors.Is(err, models.ErrTicketNotFound),
		errors.Is(err, models.ErrDrawNotFound),
		errors.Is(err, models.ErrSettlementNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, models.ErrDuplicateTicket):
		return http.StatusConflict, "duplicate_ticket"
	case errors.Is(err, drawRepo.ErrDrawExists):
		return http.StatusConflict, "draw_exists"
	case errors.Is(err, models.ErrInvalidTransition):
		return http.StatusConflict, "invalid_transition"
	case errors.Is(err, models.ErrNoAuthoritativeDraw):
		return http.StatusTooEarly, "no_authoritative_draw"
	case errors.Is(err, models.ErrInvariantViolation):
		return http.StatusInternalServerError, "invariant_violation"
	case errors.Is(err, models.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, "storage_unavailable"
	case errors.Is(err, reconcile.ErrHistoryNotEnabled):
		return http.StatusNotImplemented, "history_not_enabled"
	}

	var (
		ticketErr    ticket.TicketError
		drawErr      draw.DrawError
		reconcileErr reconcile.ReconcileError
	)
	if errors.As(err, &ticketErr) || errors.As(err, &drawErr) || errors.As(err, &reconcileErr) {
		return http.StatusBadRequest, "bad_request"
	}

	return http.StatusInternalServerError, "internal"
}
