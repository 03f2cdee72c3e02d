package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/dball/internal/models"
	"github.com/KirkDiggler/dball/internal/services/draw"
	"github.com/KirkDiggler/dball/internal/services/reconcile"
	"github.com/KirkDiggler/dball/internal/services/ticket"
)

// Handler serves the JSON API
type Handler struct {
	tickets     ticket.Service
	draws       draw.Service
	reconciler  reconcile.Service
	gatherer    prometheus.Gatherer
	healthCheck func() error
	log         logrus.FieldLogger
}

// New creates a new API handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.TicketService == nil {
		return nil, ErrNilTicketService
	}

	if cfg.DrawService == nil {
		return nil, ErrNilDrawService
	}

	if cfg.ReconcileService == nil {
		return nil, ErrNilReconcileService
	}

	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Handler{
		tickets:     cfg.TicketService,
		draws:       cfg.DrawService,
		reconciler:  cfg.ReconcileService,
		gatherer:    cfg.Gatherer,
		healthCheck: cfg.HealthCheck,
		log:         log.WithField("component", "api"),
	}, nil
}

// Router builds a gin engine with recovery, request logging and every route registered
func (h *Handler) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger())
	h.RegisterRoutes(router)
	return router
}

// RegisterRoutes registers all the API routes
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.GET("/healthz", h.Health)
	if h.gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})))
	}

	api := router.Group("/api")

	api.POST("/tickets", h.PurchaseTicket)
	api.GET("/tickets", h.FindTickets)
	api.GET("/tickets/latest", h.ListLatestTickets)
	api.GET("/tickets/count", h.CountTickets)
	api.GET("/tickets/:id", h.GetTicket)
	api.DELETE("/tickets/:id", h.DeleteTicket)
	api.POST("/tickets/:id/settle", h.SettleTicket)
	api.GET("/tickets/:id/settlement", h.GetSettlement)

	api.POST("/draws", h.RecordDraw)
	api.GET("/draws", h.ListDrawsByDateRange)
	api.GET("/draws/latest", h.ListLatestDraws)
	api.GET("/draws/count", h.CountDraws)
	api.GET("/draws/:id", h.GetDraw)
	api.POST("/draws/:id/publish", h.PublishDraw)
	api.POST("/draws/:id/deprecate", h.DeprecateDraw)

	api.GET("/periods/:period/tickets", h.ListTickets)
	api.GET("/periods/:period/draws", h.ListDraws)
	api.POST("/periods/:period/resettle", h.ResettlePeriod)
	api.GET("/periods/:period/settlements", h.ListSettlements)
}

func (h *Handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := h.log.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.FullPath(),
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		})
		if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Warn("Request failed")
			return
		}
		entry.Debug("Request served")
	}
}

// respondError writes the mapped status for err
func (h *Handler) respondError(c *gin.Context, err error) {
	status, code := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.log.WithError(err).WithField("path", c.FullPath()).Error("Request error")
	}
	c.JSON(status, errorResponse{Error: err.Error(), Code: code})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: msg, Code: "bad_request"})
}

// Health reports liveness and, when configured, storage reachability
func (h *Handler) Health(c *gin.Context) {
	if h.healthCheck != nil {
		if err := h.healthCheck(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// PurchaseTicket handles POST /api/tickets
func (h *Handler) PurchaseTicket(c *gin.Context) {
	var body purchaseTicketRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	out, err := h.tickets.PurchaseTicket(c.Request.Context(), &ticket.PurchaseTicketInput{
		Period:    body.Period,
		Reds:      body.Reds,
		Blue:      body.Blue,
		QuickPick: body.QuickPick,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, out.Ticket)
}

// GetTicket handles GET /api/tickets/:id
func (h *Handler) GetTicket(c *gin.Context) {
	out, err := h.tickets.GetTicket(c.Request.Context(), &ticket.GetTicketInput{TicketID: c.Param("id")})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Ticket)
}

// DeleteTicket handles DELETE /api/tickets/:id
func (h *Handler) DeleteTicket(c *gin.Context) {
	out, err := h.tickets.DeleteTicket(c.Request.Context(), &ticket.DeleteTicketInput{TicketID: c.Param("id")})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Ticket)
}

// ListTickets handles GET /api/periods/:period/tickets
func (h *Handler) ListTickets(c *gin.Context) {
	out, err := h.tickets.ListTickets(c.Request.Context(), &ticket.ListTicketsInput{Period: c.Param("period")})
	if err != nil {
		h.respondError(c, err)
		return
	}

	tickets := out.Tickets
	if tickets == nil {
		tickets = []*models.Ticket{}
	}
	c.JSON(http.StatusOK, gin.H{"tickets": tickets})
}

// RecordDraw handles POST /api/draws
func (h *Handler) RecordDraw(c *gin.Context) {
	var body recordDrawRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	multiplier := 1
	if body.Multiplier != nil {
		multiplier = *body.Multiplier
	}

	out, err := h.draws.RecordDraw(c.Request.Context(), &draw.RecordDrawInput{
		Period:     body.Period,
		Reds:       body.Reds,
		Blue:       body.Blue,
		Multiplier: multiplier,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, out.Draw)
}

// GetDraw handles GET /api/draws/:id
func (h *Handler) GetDraw(c *gin.Context) {
	out, err := h.draws.GetDraw(c.Request.Context(), &draw.GetDrawInput{DrawID: c.Param("id")})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Draw)
}

// PublishDraw handles POST /api/draws/:id/publish
func (h *Handler) PublishDraw(c *gin.Context) {
	out, err := h.draws.PublishDraw(c.Request.Context(), &draw.PublishDrawInput{DrawID: c.Param("id")})
	if err != nil {
		h.respondError(c, err)
		return
	}

	superseded := out.Superseded
	if superseded == nil {
		superseded = []*models.Draw{}
	}
	c.JSON(http.StatusOK, publishDrawResponse{Draw: out.Draw, Superseded: superseded})
}

// DeprecateDraw handles POST /api/draws/:id/deprecate
func (h *Handler) DeprecateDraw(c *gin.Context) {
	out, err := h.draws.DeprecateDraw(c.Request.Context(), &draw.DeprecateDrawInput{DrawID: c.Param("id")})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, deprecateDrawResponse{Draw: out.Draw, WasPublished: out.WasPublished})
}

// ListDraws handles GET /api/periods/:period/draws
func (h *Handler) ListDraws(c *gin.Context) {
	out, err := h.draws.ListDraws(c.Request.Context(), &draw.ListDrawsInput{Period: c.Param("period")})
	if err != nil {
		h.respondError(c, err)
		return
	}

	draws := out.Draws
	if draws == nil {
		draws = []*models.Draw{}
	}
	c.JSON(http.StatusOK, gin.H{"draws": draws})
}

// SettleTicket handles POST /api/tickets/:id/settle
func (h *Handler) SettleTicket(c *gin.Context) {
	out, err := h.reconciler.Settle(c.Request.Context(), &reconcile.SettleInput{TicketID: c.Param("id")})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Outcome)
}

// GetSettlement handles GET /api/tickets/:id/settlement
func (h *Handler) GetSettlement(c *gin.Context) {
	out, err := h.reconciler.GetSettlement(c.Request.Context(), &reconcile.GetSettlementInput{TicketID: c.Param("id")})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Outcome)
}

// ResettlePeriod handles POST /api/periods/:period/resettle?record=true
func (h *Handler) ResettlePeriod(c *gin.Context) {
	record := false
	if raw := c.Query("record"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			badRequest(c, "record must be a boolean")
			return
		}
		record = parsed
	}

	out, err := h.reconciler.ResettlePeriod(c.Request.Context(), &reconcile.ResettlePeriodInput{
		Period: c.Param("period"),
		Record: record,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newResettleResponse(out))
}

// ListSettlements handles GET /api/periods/:period/settlements
func (h *Handler) ListSettlements(c *gin.Context) {
	out, err := h.reconciler.ListSettlements(c.Request.Context(), &reconcile.ListSettlementsInput{Period: c.Param("period")})
	if err != nil {
		h.respondError(c, err)
		return
	}

	outcomes := out.Outcomes
	if outcomes == nil {
		outcomes = []*models.SettlementOutcome{}
	}
	c.JSON(http.StatusOK, gin.H{"draw_id": out.DrawID, "outcomes": outcomes})
}

// FindTickets handles GET /api/tickets?red=&blue=
func (h *Handler) FindTickets(c *gin.Context) {
	red, ok := queryInt(c, "red")
	if !ok {
		return
	}
	blue, ok := queryInt(c, "blue")
	if !ok {
		return
	}

	out, err := h.tickets.FindTickets(c.Request.Context(), &ticket.FindTicketsInput{Red: red, Blue: blue})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tickets": nonNilTickets(out.Tickets)})
}

// ListLatestTickets handles GET /api/tickets/latest?limit=
func (h *Handler) ListLatestTickets(c *gin.Context) {
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}

	out, err := h.tickets.ListLatestTickets(c.Request.Context(), &ticket.ListLatestTicketsInput{Limit: limit})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tickets": nonNilTickets(out.Tickets)})
}

// CountTickets handles GET /api/tickets/count?period=
func (h *Handler) CountTickets(c *gin.Context) {
	out, err := h.tickets.CountTickets(c.Request.Context(), &ticket.CountTicketsInput{Period: c.Query("period")})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, countResponse{Period: c.Query("period"), Count: out.Count})
}

// ListDrawsByDateRange handles GET /api/draws?from=&to=
func (h *Handler) ListDrawsByDateRange(c *gin.Context) {
	from, ok := queryTime(c, "from")
	if !ok {
		return
	}
	to, ok := queryTime(c, "to")
	if !ok {
		return
	}

	out, err := h.draws.ListDrawsByDateRange(c.Request.Context(), &draw.ListDrawsByDateRangeInput{From: from, To: to})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"draws": nonNilDraws(out.Draws)})
}

// ListLatestDraws handles GET /api/draws/latest?limit=
func (h *Handler) ListLatestDraws(c *gin.Context) {
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}

	out, err := h.draws.ListLatestDraws(c.Request.Context(), &draw.ListLatestDrawsInput{Limit: limit})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"draws": nonNilDraws(out.Draws)})
}

// CountDraws handles GET /api/draws/count?period=
func (h *Handler) CountDraws(c *gin.Context) {
	out, err := h.draws.CountDraws(c.Request.Context(), &draw.CountDrawsInput{Period: c.Query("period")})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, countResponse{Period: c.Query("period"), Count: out.Count})
}

// queryInt reads an optional integer query parameter; a missing one is zero.
// It writes the 400 itself and reports false when the value does not parse.
func queryInt(c *gin.Context, key string) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, true
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		badRequest(c, key+" must be an integer")
		return 0, false
	}
	return v, true
}

// queryTime reads an RFC 3339 timestamp or a bare UTC date
func queryTime(c *gin.Context, key string) (time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		badRequest(c, key+" is required")
		return time.Time{}, false
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, true
	}

	badRequest(c, key+" must be an RFC 3339 timestamp or a YYYY-MM-DD date")
	return time.Time{}, false
}

func nonNilTickets(tickets []*models.Ticket) []*models.Ticket {
	if tickets == nil {
		return []*models.Ticket{}
	}
	return tickets
}

func nonNilDraws(draws []*models.Draw) []*models.Draw {
	if draws == nil {
		return []*models.Draw{}
	}
	return draws
}
