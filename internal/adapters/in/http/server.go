// Package http exposes the autopilot and order queue over a small REST
// surface. Handlers translate between HTTP and application use cases and
// never touch the domain directly.
package http

import (
	"net/http"

	"resale/internal/core/application/usecases/commands"
	"resale/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// AutopilotScheduler controls the periodic autopilot job. Implemented by
// jobs.AutopilotJob; abstracted here so handler tests can stub it.
type AutopilotScheduler interface {
	Start() bool
	Stop() bool
	Status() commands.AutopilotStatus
}

// ErrorResponse is the JSON error body returned by all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RunRequest is the optional body of a manual run request.
type RunRequest struct {
	SyncLocal bool `json:"sync_local"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	runHandler             *commands.RunAutopilotCommandHandler
	scheduler              AutopilotScheduler
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required handlers.
func NewServer(
	runHandler *commands.RunAutopilotCommandHandler,
	scheduler AutopilotScheduler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
) *Server {
	return &Server{
		runHandler:             runHandler,
		scheduler:              scheduler,
		getActiveOrdersHandler: getActiveOrdersHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/autopilot/runs", s.RunAutopilot)
	api.POST("/autopilot/start", s.StartAutopilot)
	api.POST("/autopilot/stop", s.StopAutopilot)
	api.GET("/autopilot/status", s.GetAutopilotStatus)
	api.GET("/orders/active", s.GetActiveOrders)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// RunAutopilot handles POST /api/v1/autopilot/runs - triggers one run.
// A run skipped because another is in flight returns 409.
func (s *Server) RunAutopilot(ctx echo.Context) error {
	var req RunRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewRunAutopilotCommand("manual", req.SyncLocal)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid run request: " + err.Error(),
		})
	}

	summary, err := s.runHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Autopilot run failed",
		})
	}

	if summary.Reason == commands.ReasonAlreadyRunning {
		return ctx.JSON(http.StatusConflict, summary)
	}

	return ctx.JSON(http.StatusOK, summary)
}

// StartAutopilot handles POST /api/v1/autopilot/start.
func (s *Server) StartAutopilot(ctx echo.Context) error {
	started := s.scheduler.Start()
	if !started {
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: "Autopilot is already running",
		})
	}

	return ctx.JSON(http.StatusOK, s.scheduler.Status())
}

// StopAutopilot handles POST /api/v1/autopilot/stop.
func (s *Server) StopAutopilot(ctx echo.Context) error {
	stopped := s.scheduler.Stop()
	if !stopped {
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: "Autopilot is not running",
		})
	}

	return ctx.JSON(http.StatusOK, s.scheduler.Status())
}

// GetAutopilotStatus handles GET /api/v1/autopilot/status.
func (s *Server) GetAutopilotStatus(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, s.scheduler.Status())
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	return ctx.JSON(http.StatusOK, orders)
}
