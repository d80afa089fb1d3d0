// Package http exposes the operations platform over an echo server: the
// station surfaces talk JSON to the command and query handlers, and the
// boards ride a server-sent-events feed for live refresh.
package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"resto/internal/adapters/out/notify"
	"resto/internal/core/application/usecases/commands"
	"resto/internal/core/application/usecases/queries"
	"resto/internal/core/domain/model/order"
	"resto/internal/core/ports"
	"resto/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	placeOrder       commands.PlaceOrderCommandHandler
	editOrder        commands.EditOrderCommandHandler
	markReady        commands.MarkOrderReadyCommandHandler
	settlePayment    commands.SettlePaymentCommandHandler
	dispatchOrder    commands.DispatchOrderCommandHandler
	completeDelivery commands.CompleteDeliveryCommandHandler
	cancelOrder      commands.CancelOrderCommandHandler
	unlockStation    commands.UnlockStationCommandHandler

	activeOrders  queries.GetActiveOrdersQueryHandler
	dispatchBoard queries.GetDispatchBoardQueryHandler
	driverRoutes  queries.GetDriverRoutesQueryHandler
	tableBoard    queries.GetTableBoardQueryHandler

	issuer ports.TokenIssuer
	hub    *notify.Hub

	tableCount      int
	urgentThreshold time.Duration
}

// NewServer creates the HTTP server with its use case handlers wired in.
func NewServer(
	placeOrder commands.PlaceOrderCommandHandler,
	editOrder commands.EditOrderCommandHandler,
	markReady commands.MarkOrderReadyCommandHandler,
	settlePayment commands.SettlePaymentCommandHandler,
	dispatchOrder commands.DispatchOrderCommandHandler,
	completeDelivery commands.CompleteDeliveryCommandHandler,
	cancelOrder commands.CancelOrderCommandHandler,
	unlockStation commands.UnlockStationCommandHandler,
	activeOrders queries.GetActiveOrdersQueryHandler,
	dispatchBoard queries.GetDispatchBoardQueryHandler,
	driverRoutes queries.GetDriverRoutesQueryHandler,
	tableBoard queries.GetTableBoardQueryHandler,
	issuer ports.TokenIssuer,
	hub *notify.Hub,
	tableCount int,
	urgentThreshold time.Duration,
) *Server {
	return &Server{
		placeOrder:       placeOrder,
		editOrder:        editOrder,
		markReady:        markReady,
		settlePayment:    settlePayment,
		dispatchOrder:    dispatchOrder,
		completeDelivery: completeDelivery,
		cancelOrder:      cancelOrder,
		unlockStation:    unlockStation,
		activeOrders:     activeOrders,
		dispatchBoard:    dispatchBoard,
		driverRoutes:     driverRoutes,
		tableBoard:       tableBoard,
		issuer:           issuer,
		hub:              hub,
		tableCount:       tableCount,
		urgentThreshold:  urgentThreshold,
	}
}

// RegisterRoutes binds every route onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/stations/:surface/unlock", s.UnlockStation)

	api.POST("/orders", s.PlaceOrder)
	api.PATCH("/orders/:id", s.EditOrder)
	api.POST("/orders/:id/ready", s.MarkOrderReady, s.requireSurface(commands.SurfaceKitchen))
	api.POST("/orders/:id/payment", s.SettlePayment)
	api.POST("/orders/:id/dispatch", s.DispatchOrder, s.requireSurface(commands.SurfaceLogistics))
	api.POST("/orders/:id/complete", s.CompleteDelivery)
	api.POST("/orders/:id/cancel", s.CancelOrder)

	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/stream", s.StreamOrders)
	api.GET("/dispatch/board", s.GetDispatchBoard)
	api.GET("/dispatch/routes", s.GetDriverRoutes)
	api.GET("/tables", s.GetTableBoard)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// requireSurface admits only requests carrying a bearer token issued for
// the given surface.
func (s *Server) requireSurface(surface string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return errorJSON(ctx, http.StatusUnauthorized, "station token required")
			}

			granted, err := s.issuer.Verify(token)
			if err != nil || granted != surface {
				return errorJSON(ctx, http.StatusUnauthorized, "station token invalid for this surface")
			}

			return next(ctx)
		}
	}
}

// UnlockStation handles POST /api/v1/stations/:surface/unlock.
func (s *Server) UnlockStation(ctx echo.Context) error {
	var req unlockRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewUnlockStationCommand(ctx.Param("surface"), req.Secret)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	token, err := s.unlockStation.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, ports.ErrCredentialMismatch) {
			return errorJSON(ctx, http.StatusUnauthorized, "credential does not match")
		}
		return errorJSON(ctx, http.StatusInternalServerError, "unlock failed")
	}

	return ctx.JSON(http.StatusOK, unlockResponse{Surface: cmd.Surface(), Token: token})
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req placeOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := req.toCommand()
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	ticketID, err := s.placeOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapCommandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": ticketID.String()})
}

// EditOrder handles PATCH /api/v1/orders/:id.
func (s *Server) EditOrder(ctx echo.Context) error {
	var req editOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := req.toCommand(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.editOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkOrderReady handles POST /api/v1/orders/:id/ready.
func (s *Server) MarkOrderReady(ctx echo.Context) error {
	ticketID, err := parseTicket(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewMarkOrderReadyCommand(ticketID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.markReady.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SettlePayment handles POST /api/v1/orders/:id/payment.
func (s *Server) SettlePayment(ctx echo.Context) error {
	var req settlePaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := req.toCommand(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.settlePayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DispatchOrder handles POST /api/v1/orders/:id/dispatch.
func (s *Server) DispatchOrder(ctx echo.Context) error {
	var req dispatchOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := req.toCommand(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.dispatchOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles POST /api/v1/orders/:id/complete.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	ticketID, err := parseTicket(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewCompleteDeliveryCommand(ticketID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.completeDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	var req cancelOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := req.toCommand(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.cancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.activeOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "failed to read the order board")
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetDispatchBoard handles GET /api/v1/dispatch/board.
func (s *Server) GetDispatchBoard(ctx echo.Context) error {
	query, err := queries.NewGetDispatchBoardQuery(time.Now(), s.urgentThreshold)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "failed to build the dispatch board query")
	}

	board, err := s.dispatchBoard.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "failed to read the dispatch board")
	}

	return ctx.JSON(http.StatusOK, board)
}

// GetDriverRoutes handles GET /api/v1/dispatch/routes.
func (s *Server) GetDriverRoutes(ctx echo.Context) error {
	query, err := queries.NewGetDriverRoutesQuery(time.Now())
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "failed to build the routes query")
	}

	routes, err := s.driverRoutes.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "failed to read driver routes")
	}

	return ctx.JSON(http.StatusOK, routes)
}

// GetTableBoard handles GET /api/v1/tables.
func (s *Server) GetTableBoard(ctx echo.Context) error {
	query, err := queries.NewGetTableBoardQuery(s.tableCount)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "failed to build the table board query")
	}

	board, err := s.tableBoard.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "failed to read the table board")
	}

	return ctx.JSON(http.StatusOK, board)
}

// StreamOrders handles GET /api/v1/orders/stream, a server-sent-events
// feed of changed ticket identifiers. Clients re-query their board on
// each event.
func (s *Server) StreamOrders(ctx echo.Context) error {
	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	events, cancel := s.hub.Subscribe()
	defer cancel()

	done := ctx.Request().Context().Done()
	keepalive := time.NewTicker(15 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case <-done:
			return nil
		case id := <-events:
			if _, err := fmt.Fprintf(res, "event: order\ndata: %s\n\n", id); err != nil {
				return nil
			}
			res.Flush()
		case <-keepalive.C:
			if _, err := fmt.Fprint(res, ": keepalive\n\n"); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}

// mapCommandError translates use case failures to HTTP status codes:
// missing records 404, gate failures 401, validation 400, business
// preconditions and write conflicts 409, anything unclassified 500 with
// a generic message.
func mapCommandError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())

	case errors.Is(err, ports.ErrCredentialMismatch),
		errors.Is(err, commands.ErrWaiterGateFailed),
		errors.Is(err, commands.ErrAdminGateFailed):
		return errorJSON(ctx, http.StatusUnauthorized, err.Error())

	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())

	case errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, commands.ErrTableIsOccupied),
		errors.Is(err, order.ErrOrderIsTerminal),
		errors.Is(err, order.ErrOrderAlreadyPaid),
		errors.Is(err, order.ErrOrderIsNotPaid),
		errors.Is(err, order.ErrInsufficientCash),
		errors.Is(err, order.ErrTicketMismatch),
		errors.Is(err, order.ErrNotDeliverable),
		errors.Is(err, order.ErrDriverIsRequired):
		return errorJSON(ctx, http.StatusConflict, err.Error())

	default:
		// Unclassified failures stay opaque to the client.
		return errorJSON(ctx, http.StatusInternalServerError, "internal error")
	}
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, map[string]any{
		"code":    code,
		"message": message,
	})
}
