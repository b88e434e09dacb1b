package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/amimof/huego"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"ha-entity-engine/internal/domain/model"
	"ha-entity-engine/internal/domain/selector"
	"ha-entity-engine/internal/domain/service"
	"ha-entity-engine/internal/domain/translator"
	"ha-entity-engine/internal/ports"
)

type Server struct {
	engine  ports.EnginePort
	factory *translator.Factory
	logger  *zap.Logger
	httpLog bool
}

type selectRequest struct {
	Attribute string `json:"attribute"`
	Option    string `json:"option"`
}

type valueRequest struct {
	Value *float64 `json:"value"`
}

type groupToggleRequest struct {
	EntityIDs []string `json:"entity_ids"`
	On        bool     `json:"on"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func New(engine ports.EnginePort, httpLog bool, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		engine:  engine,
		factory: translator.NewFactory(nil),
		logger:  logger,
		httpLog: httpLog,
	}
}

// NewServer wraps the routes in an http.Server listening on port.
func NewServer(engine ports.EnginePort, port int, httpLog bool, logger *zap.Logger) *http.Server {
	s := New(engine, httpLog, logger)
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

func (s *Server) RegisterRoutes() http.Handler {
	e := echo.New()
	e.HideBanner = true
	if s.httpLog {
		e.Use(middleware.Logger())
	}
	e.Use(middleware.Recover())

	e.GET("/healthcheck", s.Healthcheck)

	api := e.Group("/api")
	api.GET("/entities", s.ListEntities)
	api.GET("/entities/:id", s.GetEntity)
	api.GET("/entities/:id/options", s.GetOptions)
	api.POST("/entities/:id/toggle", s.ToggleEntity)
	api.POST("/entities/:id/select", s.SelectOption)
	api.POST("/entities/:id/value", s.SetValue)
	api.GET("/entities/:id/hue", s.GetHueLight)
	api.PUT("/entities/:id/hue", s.SetHueState)
	api.GET("/groups/state", s.GroupState)
	api.POST("/groups/toggle", s.ToggleGroup)

	return e
}

func (s *Server) Healthcheck(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (s *Server) ListEntities(c echo.Context) error {
	list, err := s.engine.DescribeAll(c.Request().Context())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (s *Server) GetEntity(c echo.Context) error {
	p, err := s.engine.Describe(c.Request().Context(), c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (s *Server) GetOptions(c echo.Context) error {
	opts, err := s.engine.Options(c.Request().Context(), c.Param("id"), c.QueryParam("attribute"))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, opts)
}

func (s *Server) ToggleEntity(c echo.Context) error {
	id := c.Param("id")
	if err := s.engine.Toggle(c.Request().Context(), id); err != nil {
		return s.fail(c, err)
	}
	return s.describe(c, id)
}

func (s *Server) SelectOption(c echo.Context) error {
	var req selectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid body"})
	}
	if req.Option == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "option is required"})
	}
	id := c.Param("id")
	if err := s.engine.SelectOption(c.Request().Context(), id, req.Attribute, req.Option); err != nil {
		return s.fail(c, err)
	}
	return s.describe(c, id)
}

func (s *Server) SetValue(c echo.Context) error {
	var req valueRequest
	if err := c.Bind(&req); err != nil || req.Value == nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "value is required"})
	}
	id := c.Param("id")
	if err := s.engine.SetValue(c.Request().Context(), id, *req.Value); err != nil {
		return s.fail(c, err)
	}
	return s.describe(c, id)
}

func (s *Server) GroupState(c echo.Context) error {
	ids := c.QueryParams()["entity_id"]
	if len(ids) == 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "entity_id is required"})
	}
	state, err := s.engine.GroupState(c.Request().Context(), ids)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"state": state})
}

func (s *Server) ToggleGroup(c echo.Context) error {
	var req groupToggleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid body"})
	}
	if len(req.EntityIDs) == 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "entity_ids is required"})
	}
	if err := s.engine.ToggleGroup(c.Request().Context(), req.EntityIDs, req.On); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetHueLight returns the entity as a Hue light.
func (s *Server) GetHueLight(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")
	p, err := s.engine.Describe(ctx, id)
	if err != nil {
		return s.fail(c, err)
	}
	state, err := s.engine.HueState(ctx, id)
	if err != nil {
		return s.fail(c, err)
	}
	meta := s.factory.GetTranslator(p.Domain).GetMetadata()
	return c.JSON(http.StatusOK, &huego.Light{
		Name:             p.Name,
		Type:             meta.Type,
		State:            state,
		ModelID:          meta.ModelID,
		UniqueID:         p.EntityID,
		ManufacturerName: meta.ManufacturerName,
	})
}

// SetHueState merges a partial Hue state update onto the current view and
// answers with the Hue success list.
func (s *Server) SetHueState(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	var update map[string]interface{}
	if err := json.NewDecoder(c.Request().Body).Decode(&update); err != nil || len(update) == 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid body"})
	}

	state, err := s.engine.HueState(ctx, id)
	if err != nil {
		return s.fail(c, err)
	}
	if on, ok := update["on"].(bool); ok {
		state.On = on
	}
	if bri, ok := update["bri"].(float64); ok {
		switch {
		case bri < 0:
			state.Bri = 0
		case bri > 254:
			state.Bri = 254
		default:
			state.Bri = uint8(bri)
		}
	}

	if err := s.engine.SetHueState(ctx, id, state); err != nil {
		return s.fail(c, err)
	}

	resp := []map[string]interface{}{}
	for k, v := range update {
		resp = append(resp, map[string]interface{}{
			"success": map[string]interface{}{
				fmt.Sprintf("/entities/%s/hue/%s", id, k): v,
			},
		})
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) describe(c echo.Context, id string) error {
	p, err := s.engine.Describe(c.Request().Context(), id)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (s *Server) fail(c echo.Context, err error) error {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
	}
	return c.JSON(status, errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidEntityID):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrEntityNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrNoCommand),
		errors.Is(err, selector.ErrNoOptions),
		errors.Is(err, translator.ErrInvalidFormula):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}
