// Package http exposes the order fulfillment operations over a REST API
// built on echo. Handlers translate between wire DTOs and application
// commands/queries; all business rules stay in the core.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/domain/model/actor"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP boundary for handling order requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	submitOrderHandler        commands.SubmitOrderCommandHandler
	changeOrderStatusHandler  commands.ChangeOrderStatusCommandHandler
	completeSubProcessHandler commands.CompleteSubProcessCommandHandler
	chooseDeliveryModeHandler commands.ChooseDeliveryModeCommandHandler
	assignOrderHandler        commands.AssignOrderCommandHandler
	assignCourierHandler      commands.AssignCourierCommandHandler
	attachDesignLinkHandler   commands.AttachDesignLinkCommandHandler

	// Query handlers
	getOrderHandler        queries.GetOrderQueryHandler
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
	getOrderVersionHandler queries.GetOrderVersionQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	submitOrderHandler commands.SubmitOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	completeSubProcessHandler commands.CompleteSubProcessCommandHandler,
	chooseDeliveryModeHandler commands.ChooseDeliveryModeCommandHandler,
	assignOrderHandler commands.AssignOrderCommandHandler,
	assignCourierHandler commands.AssignCourierCommandHandler,
	attachDesignLinkHandler commands.AttachDesignLinkCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getOrderVersionHandler queries.GetOrderVersionQueryHandler,
) *Server {
	return &Server{
		submitOrderHandler:        submitOrderHandler,
		changeOrderStatusHandler:  changeOrderStatusHandler,
		completeSubProcessHandler: completeSubProcessHandler,
		chooseDeliveryModeHandler: chooseDeliveryModeHandler,
		assignOrderHandler:        assignOrderHandler,
		assignCourierHandler:      assignCourierHandler,
		attachDesignLinkHandler:   attachDesignLinkHandler,
		getOrderHandler:           getOrderHandler,
		getActiveOrdersHandler:    getActiveOrdersHandler,
		getOrderVersionHandler:    getOrderVersionHandler,
	}
}

// RegisterRoutes attaches all order endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.SubmitOrder)
	v1.GET("/orders/active", s.GetActiveOrders)
	v1.GET("/orders/:id", s.GetOrder)
	v1.GET("/orders/:id/version", s.GetOrderVersion)
	v1.POST("/orders/:id/status", s.ChangeOrderStatus)
	v1.POST("/orders/:id/stages/:stage/sub-processes/:sub/complete", s.CompleteSubProcess)
	v1.POST("/orders/:id/delivery", s.ChooseDeliveryMode)
	v1.POST("/orders/:id/assignee", s.AssignOrder)
	v1.POST("/orders/:id/courier", s.AssignCourier)
	v1.POST("/orders/:id/design-links", s.AttachDesignLink)
}

// SubmitOrder handles POST /api/v1/orders - registers a new print order.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	var req SubmitOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	by, err := parseActor(req.ActorID, req.ActorRole)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewSubmitOrderCommand(
		orderID, req.OrderNumber, req.Material, req.Dimensions, req.Colors, by)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.submitOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, SubmitOrderResponse{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order's full state.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(result))
}

// GetActiveOrders handles GET /api/v1/orders/active - lists non-terminal orders.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	results, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]OrderSummaryResponse, len(results))
	for i, r := range results {
		response[i] = OrderSummaryResponse{
			ID:          r.ID.String(),
			OrderNumber: r.OrderNumber,
			Status:      r.Status,
			AssignedTo:  optionalUUIDString(r.AssignedTo),
			Progress:    r.Progress,
			Version:     r.Version,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderVersion handles GET /api/v1/orders/:id/version - the change poll.
// The optional "since" query parameter is the version the client last saw.
func (s *Server) GetOrderVersion(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var since int64
	if raw := ctx.QueryParam("since"); raw != "" {
		since, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return badRequest(ctx, "Invalid since version")
		}
	}

	query, err := queries.NewGetOrderVersionQuery(orderID, since)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.getOrderVersionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderVersionResponse{
		Version: result.Version,
		Changed: result.Changed,
	})
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	by, err := parseActor(req.ActorID, req.ActorRole)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target, by)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteSubProcess handles
// POST /api/v1/orders/:id/stages/:stage/sub-processes/:sub/complete.
func (s *Server) CompleteSubProcess(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	stage, err := order.StageFromString(ctx.Param("stage"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req ActorRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	by, err := parseActor(req.ActorID, req.ActorRole)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCompleteSubProcessCommand(orderID, stage, ctx.Param("sub"), by)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.completeSubProcessHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChooseDeliveryMode handles POST /api/v1/orders/:id/delivery.
func (s *Server) ChooseDeliveryMode(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req ChooseDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	mode, err := order.DeliveryModeFromString(req.Mode)
	if err != nil {
		return errorResponse(ctx, err)
	}

	by, err := parseActor(req.ActorID, req.ActorRole)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewChooseDeliveryModeCommand(
		orderID, mode, req.Destination, req.ShipmentCompany, by)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.chooseDeliveryModeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignOrder handles POST /api/v1/orders/:id/assignee.
func (s *Server) AssignOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req AssignOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	assigneeID, err := kernel.UUIDFromString(req.AssigneeID)
	if err != nil {
		return badRequest(ctx, "Invalid assignee id")
	}

	by, err := parseActor(req.ActorID, req.ActorRole)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAssignOrderCommand(orderID, assigneeID, by)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.assignOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignCourier handles POST /api/v1/orders/:id/courier.
func (s *Server) AssignCourier(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req AssignCourierRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	by, err := parseActor(req.ActorID, req.ActorRole)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAssignCourierCommand(orderID, courierID, by)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.assignCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AttachDesignLink handles POST /api/v1/orders/:id/design-links.
func (s *Server) AttachDesignLink(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req AttachDesignLinkRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	by, err := parseActor(req.ActorID, req.ActorRole)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAttachDesignLinkCommand(orderID, req.Link, by)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.attachDesignLinkHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func parseActor(id, role string) (actor.Actor, error) {
	actorID, err := kernel.UUIDFromString(id)
	if err != nil {
		return actor.Actor{}, errs.NewValueIsInvalidErrorWithCause("actorId", err)
	}

	actorRole, err := actor.RoleFromString(role)
	if err != nil {
		return actor.Actor{}, err
	}

	return actor.NewActor(actorID, actorRole)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps typed domain errors onto HTTP statuses. Conflicting
// writes and impossible transitions are both conflicts; unmet business
// preconditions are unprocessable rather than malformed.
func errorResponse(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrConcurrentModification):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrPreconditionNotMet):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

func optionalUUIDString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func toOrderResponse(r queries.GetOrderQueryResponse) OrderResponse {
	stages := make(map[string]StageResponse, len(r.Stages))
	for name, stage := range r.Stages {
		subs := make(map[string]SubProcessResponse, len(stage.SubProcesses))
		for subName, sub := range stage.SubProcesses {
			subs[subName] = SubProcessResponse{
				Status:      sub.Status,
				CompletedAt: sub.CompletedAt,
				CompletedBy: optionalUUIDString(sub.CompletedBy),
			}
		}
		stages[name] = StageResponse{
			Status:         stage.Status,
			CompletionDate: stage.CompletionDate,
			CompletedBy:    optionalUUIDString(stage.CompletedBy),
			SubProcesses:   subs,
		}
	}

	var delivery *DeliveryResponse
	if r.Delivery != nil {
		delivery = &DeliveryResponse{
			Mode:            r.Delivery.Mode,
			Destination:     r.Delivery.Destination,
			ShipmentCompany: r.Delivery.ShipmentCompany,
			AssignedCourier: optionalUUIDString(r.Delivery.AssignedCourier),
		}
	}

	history := make([]AuditEntryResponse, len(r.History))
	for i, entry := range r.History {
		history[i] = AuditEntryResponse{
			Action:    entry.Action,
			ActorID:   entry.ActorID.String(),
			ActorRole: entry.ActorRole,
			Timestamp: entry.Timestamp,
			Details:   entry.Details,
		}
	}

	return OrderResponse{
		ID:          r.ID.String(),
		OrderNumber: r.OrderNumber,
		Status:      r.Status,
		AssignedTo:  optionalUUIDString(r.AssignedTo),
		Specification: SpecificationResponse{
			Material:   r.Specification.Material,
			Dimensions: r.Specification.Dimensions,
			Colors:     r.Specification.Colors,
		},
		Stages:      stages,
		Delivery:    delivery,
		DesignLinks: r.DesignLinks,
		History:     history,
		Progress:    r.Progress,
		Version:     r.Version,
	}
}
