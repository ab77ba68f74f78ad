// Package http exposes the cart and order lifecycle over a JSON API.
// It translates HTTP requests into commands and queries and maps domain
// sentinels onto status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"tableside/internal/core/application/ordersync"
	"tableside/internal/core/application/sessions"
	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/application/usecases/queries"
	"tableside/internal/core/domain/model/cart"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/ports"
	"tableside/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	sessions *sessions.Registry

	addItemHandler        commands.AddCartItemCommandHandler
	changeQuantityHandler commands.ChangeQuantityCommandHandler
	setCustomerHandler    commands.SetCustomerCommandHandler
	submitHandler         commands.SubmitOrderCommandHandler
	advanceHandler        commands.AdvanceOrderCommandHandler

	getMenuHandler    queries.GetMenuQueryHandler
	getQueueHandler   queries.GetRoleQueueQueryHandler
	getHistoryHandler queries.GetOrderHistoryQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	registry *sessions.Registry,
	addItemHandler commands.AddCartItemCommandHandler,
	changeQuantityHandler commands.ChangeQuantityCommandHandler,
	setCustomerHandler commands.SetCustomerCommandHandler,
	submitHandler commands.SubmitOrderCommandHandler,
	advanceHandler commands.AdvanceOrderCommandHandler,
	getMenuHandler queries.GetMenuQueryHandler,
	getQueueHandler queries.GetRoleQueueQueryHandler,
	getHistoryHandler queries.GetOrderHistoryQueryHandler,
) *Server {
	return &Server{
		sessions:              registry,
		addItemHandler:        addItemHandler,
		changeQuantityHandler: changeQuantityHandler,
		setCustomerHandler:    setCustomerHandler,
		submitHandler:         submitHandler,
		advanceHandler:        advanceHandler,
		getMenuHandler:        getMenuHandler,
		getQueueHandler:       getQueueHandler,
		getHistoryHandler:     getHistoryHandler,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.GET("/api/v1/menu", s.GetMenu)

	e.POST("/api/v1/cart", s.OpenCart)
	e.GET("/api/v1/cart/:sessionId", s.GetCart)
	e.POST("/api/v1/cart/:sessionId/items", s.AddCartItem)
	e.PATCH("/api/v1/cart/:sessionId/items/:index", s.ChangeQuantity)
	e.PUT("/api/v1/cart/:sessionId/customer", s.SetCustomer)
	e.POST("/api/v1/cart/:sessionId/submit", s.SubmitOrder)

	e.GET("/api/v1/orders/queue", s.GetQueue)
	e.GET("/api/v1/orders/history", s.GetHistory)
	e.POST("/api/v1/orders/:orderId/advance", s.AdvanceOrder)
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type cartResponse struct {
	SessionID    string                     `json:"sessionId"`
	CustomerName string                     `json:"name,omitempty"`
	Mobile       string                     `json:"mobile,omitempty"`
	Table        int                        `json:"table,omitempty"`
	Items        []queries.LineItemResponse `json:"items"`
	Total        int                        `json:"total"`
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetMenu handles GET /api/v1/menu.
func (s *Server) GetMenu(ctx echo.Context) error {
	items, err := s.getMenuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, items)
}

// OpenCart handles POST /api/v1/cart. It opens a fresh cart session and
// returns its ID for subsequent cart calls.
func (s *Server) OpenCart(ctx echo.Context) error {
	session := s.sessions.Open()
	return ctx.JSON(http.StatusCreated, newCartResponse(session))
}

// GetCart handles GET /api/v1/cart/:sessionId.
func (s *Server) GetCart(ctx echo.Context) error {
	session, err := s.session(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newCartResponse(session))
}

// AddCartItem handles POST /api/v1/cart/:sessionId/items.
func (s *Server) AddCartItem(ctx echo.Context) error {
	sessionID, err := sessionID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body struct {
		MenuItemID string `json:"menuItemId"`
		Quantity   int    `json:"quantity"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if body.Quantity == 0 {
		body.Quantity = 1
	}

	cmd, err := commands.NewAddCartItemCommand(sessionID, body.MenuItemID, body.Quantity)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.addItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.GetCart(ctx)
}

// ChangeQuantity handles PATCH /api/v1/cart/:sessionId/items/:index.
func (s *Server) ChangeQuantity(ctx echo.Context) error {
	sessionID, err := sessionID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		return badRequest(ctx, "line index must be a number")
	}

	var body struct {
		Delta int `json:"delta"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewChangeQuantityCommand(sessionID, index, body.Delta)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.changeQuantityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.GetCart(ctx)
}

// SetCustomer handles PUT /api/v1/cart/:sessionId/customer.
func (s *Server) SetCustomer(ctx echo.Context) error {
	sessionID, err := sessionID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body struct {
		Name   string `json:"name"`
		Mobile string `json:"mobile"`
		Table  int    `json:"table"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSetCustomerCommand(sessionID, body.Name, body.Mobile, body.Table)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.setCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.GetCart(ctx)
}

// SubmitOrder handles POST /api/v1/cart/:sessionId/submit.
// On success the cart is cleared and the persisted order returned.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	sessionID, err := sessionID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSubmitOrderCommand(sessionID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	placed, err := s.submitHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, queries.NewOrderResponse(placed))
}

// GetQueue handles GET /api/v1/orders/queue.
// The acting role comes from the X-Role header or a bearer token.
func (s *Server) GetQueue(ctx echo.Context) error {
	query := queries.NewGetRoleQueueQuery(actorToken(ctx))

	responses, err := s.getQueueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, responses)
}

// GetHistory handles GET /api/v1/orders/history.
// Accepts optional table, status and date (YYYY-MM-DD) filters.
func (s *Server) GetHistory(ctx echo.Context) error {
	table := 0
	if raw := ctx.QueryParam("table"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "table must be a number")
		}
		table = parsed
	}

	var day time.Time
	if raw := ctx.QueryParam("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return badRequest(ctx, "date must be formatted as YYYY-MM-DD")
		}
		day = parsed
	}

	query, err := queries.NewGetOrderHistoryQuery(actorToken(ctx), table, ctx.QueryParam("status"), day)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	responses, err := s.getHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, responses)
}

// AdvanceOrder handles POST /api/v1/orders/:orderId/advance.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	var body struct {
		Next string `json:"next"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	next, err := order.StatusFromString(body.Next)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAdvanceOrderCommand(ctx.Param("orderId"), next, actorToken(ctx))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.advanceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, queries.NewOrderResponse(updated))
}

func (s *Server) session(ctx echo.Context) (*cart.Session, error) {
	id, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}
	return s.sessions.Session(id)
}

func sessionID(ctx echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Param("sessionId"))
	if err != nil {
		return uuid.Nil, errs.NewValueIsInvalidErrorWithCause("sessionId", err)
	}
	return id, nil
}

func newCartResponse(session *cart.Session) cartResponse {
	items := make([]queries.LineItemResponse, 0, len(session.Items()))
	for _, li := range session.Items() {
		items = append(items, queries.LineItemResponse{
			ItemName: li.ItemName(),
			Category: li.Category(),
			Price:    li.Price(),
			Quantity: li.Quantity(),
		})
	}

	return cartResponse{
		SessionID:    session.ID().String(),
		CustomerName: session.CustomerName(),
		Mobile:       session.Mobile(),
		Table:        session.Table(),
		Items:        items,
		Total:        session.Total(),
	}
}

// actorToken extracts the opaque role token from the X-Role header, or
// failing that, from a bearer Authorization header.
func actorToken(ctx echo.Context) string {
	if token := ctx.Request().Header.Get("X-Role"); token != "" {
		return token
	}

	auth := ctx.Request().Header.Get(echo.HeaderAuthorization)
	if rest, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return rest
	}

	return ""
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps domain and store sentinels onto HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, order.ErrUnauthorized),
		errors.Is(err, queries.ErrActorIsNotStaff),
		errors.Is(err, queries.ErrActorIsNotAdmin):
		code = http.StatusForbidden
	case errors.Is(err, order.ErrIllegalTransition),
		errors.Is(err, ports.ErrUpdateConflict),
		errors.Is(err, ordersync.ErrUpdateInFlight),
		errors.Is(err, ordersync.ErrSubmitInFlight):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, cart.ErrMissingCustomerInfo),
		errors.Is(err, cart.ErrEmptyCart),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, ports.ErrFetchFailed),
		errors.Is(err, ports.ErrCreateRejected),
		errors.Is(err, ports.ErrUpdateFailed):
		code = http.StatusBadGateway
	}

	return ctx.JSON(code, errorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
