package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"aulagen/internal/app/ports"
	"aulagen/internal/app/replay"
	"aulagen/internal/app/roster"
	"aulagen/internal/app/turn"
	"aulagen/internal/domain/classroom"
	"aulagen/internal/domain/world"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

var ErrInvalidPlacement = errors.New("x and y are required")

type Handler struct {
	Engine   *turn.Engine
	ReplayUC replay.UseCase
	Grid     *world.Grid
	KPI      kpiSnapshotProvider
	Logger   *slog.Logger
	// Go runs accepted turns in the background; nil starts a goroutine.
	Go func(fn func())
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	api := s.Group("/api")
	api.POST("/turn", h.requestTurn)
	api.POST("/students", h.createStudent)
	api.POST("/students/:id/place", h.placeStudent)
	api.GET("/state", h.state)
	api.GET("/map", h.gridMap)
	api.GET("/events", h.replay)

	s.GET("/ops/kpi", h.kpi)
}

type turnRequest struct {
	Directive string `json:"directive"`
}

type turnAccepted struct {
	Accepted bool   `json:"accepted"`
	TurnID   string `json:"turn_id"`
}

type createStudentRequest struct {
	Name        string `json:"name"`
	Personality string `json:"personality"`
}

type placeRequest struct {
	X *int `json:"x"`
	Y *int `json:"y"`
}

// requestTurn answers 202 once the turn is accepted, or resolves it inline
// with ?wait=true.
func (h Handler) requestTurn(c context.Context, ctx *app.RequestContext) {
	var body turnRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	ticket, err := h.Engine.Begin()
	if err != nil {
		writeError(ctx, err)
		return
	}

	if ctx.Query("wait") == "true" {
		out, err := ticket.Resolve(c, body.Directive)
		if err != nil {
			writeError(ctx, err)
			return
		}
		ctx.JSON(consts.StatusOK, out)
		return
	}

	h.spawn(func() {
		if _, err := ticket.Resolve(context.Background(), body.Directive); err != nil {
			h.logger().Error("background turn", "turn_id", ticket.ID, "error", err)
		}
	})
	ctx.JSON(consts.StatusAccepted, turnAccepted{Accepted: true, TurnID: ticket.ID})
}

func (h Handler) createStudent(c context.Context, ctx *app.RequestContext) {
	var body createStudentRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	s, err := h.Engine.CreateAgent(c, body.Name, body.Personality)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, s)
}

func (h Handler) placeStudent(c context.Context, ctx *app.RequestContext) {
	id := strings.TrimSpace(ctx.Param("id"))
	var body placeRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if id == "" || body.X == nil || body.Y == nil {
		writeError(ctx, ErrInvalidPlacement)
		return
	}

	s, err := h.Engine.PlaceAgent(c, id, *body.X, *body.Y)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, s)
}

func (h Handler) state(c context.Context, ctx *app.RequestContext) {
	st, err := h.Engine.CurrentState(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, st)
}

func (h Handler) replay(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(ctx.Query("limit"))
	occurredFrom, _ := strconv.ParseInt(ctx.Query("occurred_from"), 10, 64)
	occurredTo, _ := strconv.ParseInt(ctx.Query("occurred_to"), 10, 64)
	resp, err := h.ReplayUC.Execute(c, replay.Request{
		AgentID:      ctx.Query("agent_id"),
		Limit:        limit,
		OccurredFrom: occurredFrom,
		OccurredTo:   occurredTo,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) gridMap(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, h.Grid.Snapshot())
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func (h Handler) spawn(fn func()) {
	if h.Go != nil {
		h.Go(fn)
		return
	}
	go fn()
}

func (h Handler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, turn.ErrTurnInProgress):
		writeErrorBody(ctx, consts.StatusConflict, "turn_in_progress", err.Error())
	case errors.Is(err, world.ErrNotWalkable):
		writeErrorBody(ctx, consts.StatusUnprocessableEntity, "not_walkable", err.Error())
	case errors.Is(err, classroom.ErrNoVacantTile):
		writeErrorBody(ctx, consts.StatusUnprocessableEntity, "no_vacant_tile", err.Error())
	case errors.Is(err, world.ErrOutOfBounds):
		writeErrorBody(ctx, consts.StatusBadRequest, "out_of_bounds", err.Error())
	case errors.Is(err, roster.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest),
		errors.Is(err, ErrInvalidPlacement):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
