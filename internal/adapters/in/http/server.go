// Package http exposes order reconciliation and order lookups over HTTP with echo.
package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"ordersync/internal/core/application/result"
	"ordersync/internal/core/application/usecases/commands"
	"ordersync/internal/core/application/usecases/queries"
	"ordersync/internal/core/domain/model/notification"
	"ordersync/internal/core/domain/model/order"
	"ordersync/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type (
	// OrderUpdateReconciler reconciles one notification.
	OrderUpdateReconciler interface {
		Handle(ctx context.Context, cmd commands.ReconcileOrderUpdateCommand) result.Outcome
	}

	// OrderByNumberReader reads one order by marketplace number.
	OrderByNumberReader interface {
		Handle(ctx context.Context, query queries.GetOrderByNumberQuery) (queries.OrderResponse, error)
	}

	// OrdersByStatusReader lists orders in a status.
	OrdersByStatusReader interface {
		Handle(ctx context.Context, query queries.GetOrdersByStatusQuery) ([]queries.OrderResponse, error)
	}
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	reconcileHandler OrderUpdateReconciler

	// Query handlers
	getOrderByNumberHandler  OrderByNumberReader
	getOrdersByStatusHandler OrdersByStatusReader
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	reconcileHandler OrderUpdateReconciler,
	getOrderByNumberHandler OrderByNumberReader,
	getOrdersByStatusHandler OrdersByStatusReader,
) *Server {
	return &Server{
		reconcileHandler:         reconcileHandler,
		getOrderByNumberHandler:  getOrderByNumberHandler,
		getOrdersByStatusHandler: getOrdersByStatusHandler,
	}
}

// RegisterHandlers mounts the server's routes on e.
func RegisterHandlers(e *echo.Echo, s *Server) {
	e.GET("/health", s.GetHealth)

	v1 := e.Group("/api/v1")
	v1.POST("/order-updates", s.ReconcileOrderUpdate)
	v1.GET("/orders", s.GetOrders)
	v1.GET("/orders/:orderNumber", s.GetOrder)
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, Health{Status: "ok"})
}

// ReconcileOrderUpdate handles POST /api/v1/order-updates.
// Responds 200 with a success outcome and 422 with an abort outcome.
func (s *Server) ReconcileOrderUpdate(ctx echo.Context) error {
	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	n, err := notification.Parse(body)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order update: " + err.Error(),
		})
	}

	cmd, err := commands.NewReconcileOrderUpdateCommand(n)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order update: " + err.Error(),
		})
	}

	outcome := s.reconcileHandler.Handle(ctx.Request().Context(), cmd)
	if outcome.IsAbort() {
		return ctx.JSON(http.StatusUnprocessableEntity, outcome)
	}

	return ctx.JSON(http.StatusOK, outcome)
}

// GetOrder handles GET /api/v1/orders/:orderNumber.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderByNumberQuery(ctx.Param("orderNumber"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order number: " + err.Error(),
		})
	}

	o, err := s.getOrderByNumberHandler.Handle(ctx.Request().Context(), query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	}
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order",
		})
	}

	return ctx.JSON(http.StatusOK, o)
}

// GetOrders handles GET /api/v1/orders?status=<status>[&limit=<n>].
func (s *Server) GetOrders(ctx echo.Context) error {
	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid limit: " + raw,
			})
		}
		limit = parsed
	}

	status, err := order.NewStatus(ctx.QueryParam("status"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status: " + err.Error(),
		})
	}

	query, err := queries.NewGetOrdersByStatusQuery(status, limit)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid query: " + err.Error(),
		})
	}

	orders, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	return ctx.JSON(http.StatusOK, orders)
}
