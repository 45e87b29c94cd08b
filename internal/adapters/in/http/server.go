// Package http exposes the counter's REST API on echo. Handlers bind and
// validate requests, translate them into commands and queries, and map
// domain errors onto HTTP statuses. No business logic lives here.
package http

import (
	"net/http"
	"time"

	"burgercounter/internal/core/application/usecases/commands"
	"burgercounter/internal/core/application/usecases/queries"
	"burgercounter/internal/core/domain/model/kernel"
	"burgercounter/internal/core/domain/model/ledger"
	"burgercounter/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CommandHandlers bundles the write-side handlers the server dispatches to.
type CommandHandlers struct {
	CreateOrder       commands.CreateOrderCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	AddLedgerMovement commands.AddLedgerMovementCommandHandler
	CreateMenuItem    commands.CreateMenuItemCommandHandler
	UpdateMenuItem    commands.UpdateMenuItemCommandHandler
}

// QueryHandlers bundles the read-side handlers the server dispatches to.
type QueryHandlers struct {
	GetOrder             queries.GetOrderQueryHandler
	GetOrders            queries.GetOrdersQueryHandler
	GetKitchenOrders     queries.GetKitchenOrdersQueryHandler
	GetMenu              queries.GetMenuQueryHandler
	GetSideDishes        queries.GetSideDishesQueryHandler
	GetRegisterReport    queries.GetRegisterReportQueryHandler
	GetRegisterDashboard queries.GetRegisterDashboardQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
	}
}

// RegisterRoutes mounts all API routes on the echo instance and installs the
// request validator.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	e.GET("/health", s.Health)

	api := e.Group("/api")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/kitchen", s.GetKitchenOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id/status", s.UpdateOrderStatus)

	api.GET("/menu", s.GetMenu)
	api.GET("/menu/side-dishes", s.GetSideDishes)
	api.POST("/menu", s.CreateMenuItem)
	api.PUT("/menu/:id", s.UpdateMenuItem)

	api.POST("/register/movements", s.AddMovement)
	api.GET("/register/report", s.GetRegisterReport)
	api.GET("/register/dashboard", s.GetRegisterDashboard)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateOrder handles POST /api/orders: places an order and returns the
// fully hydrated result.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return errorResponse(ctx, err)
	}

	itemID, err := kernel.UUIDFromString(req.ItemID)
	if err != nil {
		return badRequest(ctx, "invalid item_id")
	}
	sideDishID, err := kernel.UUIDFromString(req.SideDishID)
	if err != nil {
		return badRequest(ctx, "invalid side_dish_id")
	}
	paymentMethod, err := order.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.Name, req.Phone,
		req.Cep, req.Street, req.Number, req.Neighborhood, req.Complement,
		itemID, sideDishID, paymentMethod, req.Notes,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orderID, err := s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID, http.StatusCreated)
}

// GetOrders handles GET /api/orders with optional status, date_from and
// date_to filters.
func (s *Server) GetOrders(ctx echo.Context) error {
	status := order.Unknown
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.ParseStatus(raw)
		if err != nil {
			return errorResponse(ctx, err)
		}
		status = parsed
	}

	dateFrom, err := parseTimeParam(ctx.QueryParam("date_from"), false)
	if err != nil {
		return badRequest(ctx, "invalid date_from")
	}
	dateTo, err := parseTimeParam(ctx.QueryParam("date_to"), true)
	if err != nil {
		return badRequest(ctx, "invalid date_to")
	}

	query, err := queries.NewGetOrdersQuery(status, dateFrom, dateTo)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orders, err := s.queries.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersToResponse(orders))
}

// GetKitchenOrders handles GET /api/orders/kitchen: the FIFO work queue.
func (s *Server) GetKitchenOrders(ctx echo.Context) error {
	query := queries.NewGetKitchenOrdersQuery()

	orders, err := s.queries.GetKitchenOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersToResponse(orders))
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	return s.respondWithOrder(ctx, orderID, http.StatusOK)
}

// UpdateOrderStatus handles PUT /api/orders/:id/status and returns the
// updated order.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return errorResponse(ctx, err)
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.commands.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID, http.StatusOK)
}

// GetMenu handles GET /api/menu.
func (s *Server) GetMenu(ctx echo.Context) error {
	query := queries.NewGetMenuQuery()

	items, err := s.queries.GetMenu.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]MenuItemResponse, len(items))
	for i, item := range items {
		response[i] = MenuItemResponse{
			ID:          item.ID.String(),
			Name:        item.Name,
			Price:       item.Price.String(),
			Description: item.Description,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetSideDishes handles GET /api/menu/side-dishes.
func (s *Server) GetSideDishes(ctx echo.Context) error {
	query := queries.NewGetSideDishesQuery()

	dishes, err := s.queries.GetSideDishes.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]SideDishResponse, len(dishes))
	for i, dish := range dishes {
		response[i] = SideDishResponse{
			ID:   dish.ID.String(),
			Name: dish.Name,
			Icon: dish.Icon,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateMenuItem handles POST /api/menu.
func (s *Server) CreateMenuItem(ctx echo.Context) error {
	var req CreateMenuItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return errorResponse(ctx, err)
	}

	price, err := kernel.MoneyFromString(req.Price)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCreateMenuItemCommand(req.Name, price, req.Description)
	if err != nil {
		return errorResponse(ctx, err)
	}

	itemID, err := s.commands.CreateMenuItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: itemID.String()})
}

// UpdateMenuItem handles PUT /api/menu/:id, including soft-deactivation
// through active=false.
func (s *Server) UpdateMenuItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid item id")
	}

	var req UpdateMenuItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return errorResponse(ctx, err)
	}

	price, err := kernel.MoneyFromString(req.Price)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateMenuItemCommand(itemID, req.Name, price, req.Description, *req.Active)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.commands.UpdateMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddMovement handles POST /api/register/movements: a manual ledger entry,
// exit or credit.
func (s *Server) AddMovement(ctx echo.Context) error {
	var req AddMovementRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return errorResponse(ctx, err)
	}

	kind, err := ledger.ParseKind(req.Kind)
	if err != nil {
		return errorResponse(ctx, err)
	}
	amount, err := kernel.MoneyFromString(req.Amount)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var orderID *kernel.UUID
	if req.OrderID != "" {
		parsed, idErr := kernel.UUIDFromString(req.OrderID)
		if idErr != nil {
			return badRequest(ctx, "invalid order_id")
		}
		orderID = &parsed
	}

	cmd, err := commands.NewAddLedgerMovementCommand(kind, amount, req.Description, orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	movementID, err := s.commands.AddLedgerMovement.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: movementID.String()})
}

// GetRegisterReport handles GET /api/register/report?from=&to=.
// Bounds default to today's UTC day when omitted.
func (s *Server) GetRegisterReport(ctx echo.Context) error {
	now := time.Now().UTC()
	dayStart := now.Truncate(24 * time.Hour)

	from, err := parseTimeParam(ctx.QueryParam("from"), false)
	if err != nil {
		return badRequest(ctx, "invalid from")
	}
	if from.IsZero() {
		from = dayStart
	}

	to, err := parseTimeParam(ctx.QueryParam("to"), true)
	if err != nil {
		return badRequest(ctx, "invalid to")
	}
	if to.IsZero() {
		to = now
	}

	query, err := queries.NewGetRegisterReportQuery(from, to)
	if err != nil {
		return errorResponse(ctx, err)
	}

	report, err := s.queries.GetRegisterReport.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, reportToResponse(report))
}

// GetRegisterDashboard handles GET /api/register/dashboard.
func (s *Server) GetRegisterDashboard(ctx echo.Context) error {
	query, err := queries.NewGetRegisterDashboardQuery(time.Now().UTC())
	if err != nil {
		return errorResponse(ctx, err)
	}

	dashboard, err := s.queries.GetRegisterDashboard.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DashboardResponse{
		TodaySales:         dashboard.TodaySales.String(),
		TodayOrderCount:    dashboard.TodayOrderCount,
		TodayAverageTicket: dashboard.TodayAverageTicket.String(),
		OutstandingCredit:  dashboard.OutstandingCredit.String(),
	})
}

func (s *Server) respondWithOrder(ctx echo.Context, orderID kernel.UUID, code int) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	hydrated, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(code, orderToResponse(hydrated))
}

// parseTimeParam accepts RFC 3339 timestamps or plain dates. A plain date
// used as an upper bound is stretched to the end of its day so date ranges
// stay inclusive.
func parseTimeParam(raw string, endOfDay bool) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}
