// Package http exposes the marketplace over a REST surface built on echo.
// The caller's identity arrives in the X-Actor-ID header; authentication
// itself lives with an external collaborator, so a missing header is the
// only identity failure handled here.
package http

import (
	"errors"
	"fmt"
	"net/http"

	"melodia/internal/core/application/usecases/commands"
	"melodia/internal/core/application/usecases/queries"
	"melodia/internal/core/domain/model/catalog"
	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/core/domain/model/order"
	"melodia/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// actorHeader carries the authenticated caller's identifier.
const actorHeader = "X-Actor-ID"

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateOrder       commands.CreateOrderCommandHandler
	SubmitOffer       commands.SubmitOfferCommandHandler
	AcceptOffer       commands.AcceptOfferCommandHandler
	RejectOffer       commands.RejectOfferCommandHandler
	DeliverOrder      commands.DeliverOrderCommandHandler
	RequestRevision   commands.RequestRevisionCommandHandler
	MarkOrderPaid     commands.MarkOrderPaidCommandHandler
	CompleteOrder     commands.CompleteOrderCommandHandler
	CancelOrder       commands.CancelOrderCommandHandler
	DisputeOrder      commands.DisputeOrderCommandHandler
	UpdateOrder       commands.UpdateOrderCommandHandler
	AddCartItem       commands.AddCartItemCommandHandler
	ChangeCartLicense commands.ChangeCartLicenseCommandHandler
	RemoveCartItem    commands.RemoveCartItemCommandHandler
	CreateInvoice     commands.CreateInvoiceCommandHandler

	GetOrders   queries.GetOrdersQueryHandler
	GetOrder    queries.GetOrderQueryHandler
	GetCart     queries.GetCartQueryHandler
	GetInvoices queries.GetInvoicesQueryHandler
}

// Server coordinates between HTTP requests and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server dispatching to the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts all API routes under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.POST("/orders/:id/offer", s.SubmitOffer)
	api.POST("/orders/:id/offer/accept", s.AcceptOffer)
	api.POST("/orders/:id/offer/reject", s.RejectOffer)
	api.POST("/orders/:id/deliver", s.DeliverOrder)
	api.POST("/orders/:id/revision", s.RequestRevision)
	api.POST("/orders/:id/pay", s.MarkOrderPaid)
	api.POST("/orders/:id/complete", s.CompleteOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/dispute", s.DisputeOrder)

	api.GET("/cart", s.GetCart)
	api.POST("/cart", s.AddCartItem)
	api.PUT("/cart/:itemId", s.ChangeCartLicense)
	api.DELETE("/cart/:itemId", s.RemoveCartItem)

	api.GET("/invoices", s.GetInvoices)
	api.POST("/invoices", s.CreateInvoice)
}

type createOrderRequest struct {
	ComposerIDs     []string `json:"composerIds"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Requirements    string   `json:"requirements"`
	ReferenceLinks  string   `json:"referenceLinks"`
	Notes           string   `json:"notes"`
	RequestedBudget *float64 `json:"requestedBudget"`
	PaymentModel    string   `json:"paymentModel"`
}

// CreateOrder handles POST /api/v1/orders. One pending order is created
// per listed composer; the response carries all created identifiers.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	composerIDs := make([]kernel.UUID, 0, len(req.ComposerIDs))
	for _, raw := range req.ComposerIDs {
		id, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return s.badRequest(ctx, "invalid composer id: "+raw)
		}
		composerIDs = append(composerIDs, id)
	}

	details := order.Details{
		Title:          req.Title,
		Description:    req.Description,
		Requirements:   req.Requirements,
		ReferenceLinks: req.ReferenceLinks,
		Notes:          req.Notes,
	}
	if req.RequestedBudget != nil {
		budget, budgetErr := kernel.NewMoneyFromFloat(*req.RequestedBudget)
		if budgetErr != nil {
			return s.respondError(ctx, budgetErr)
		}
		details.RequestedBudget = &budget
	}
	if req.PaymentModel != "" {
		model, modelErr := order.ParsePaymentModel(req.PaymentModel)
		if modelErr != nil {
			return s.respondError(ctx, modelErr)
		}
		details.PaymentModel = model
	}

	cmd, err := commands.NewCreateOrderCommand(actor, composerIDs, details)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orderIDs, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	ids := make([]string, 0, len(orderIDs))
	for _, id := range orderIDs {
		ids = append(ids, id.String())
	}
	return ctx.JSON(http.StatusCreated, map[string][]string{"orderIds": ids})
}

// GetOrders handles GET /api/v1/orders - lists the caller's orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrdersQuery(actor)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orders, err := s.handlers.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /api/v1/orders/:id - order detail with history.
func (s *Server) GetOrder(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return err
	}
	orderID, err := s.pathID(ctx, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(orderID, actor)
	if err != nil {
		return s.respondError(ctx, err)
	}

	detail, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, detail)
}

type updateOrderRequest struct {
	Title           *string  `json:"title"`
	Description     *string  `json:"description"`
	Requirements    *string  `json:"requirements"`
	ReferenceLinks  *string  `json:"referenceLinks"`
	Notes           *string  `json:"notes"`
	RequestedBudget *float64 `json:"requestedBudget"`
}

// UpdateOrder handles PUT /api/v1/orders/:id - patches editable content
// fields while the order is still negotiable.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return err
	}
	orderID, err := s.pathID(ctx, "id")
	if err != nil {
		return err
	}

	var req updateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	patch := order.UpdatePatch{
		Title:          req.Title,
		Description:    req.Description,
		Requirements:   req.Requirements,
		ReferenceLinks: req.ReferenceLinks,
		Notes:          req.Notes,
	}
	if req.RequestedBudget != nil {
		budget, budgetErr := kernel.NewMoneyFromFloat(*req.RequestedBudget)
		if budgetErr != nil {
			return s.respondError(ctx, budgetErr)
		}
		patch.RequestedBudget = &budget
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, actor, patch)
	if err != nil {
		return s.respondError(ctx, err)
	}
	if err = s.handlers.UpdateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type submitOfferRequest struct {
	Price             float64 `json:"price"`
	ProductionDays    int     `json:"productionDays"`
	IncludedRevisions int     `json:"includedRevisions"`
	Message           string  `json:"message"`
}

// SubmitOffer handles POST /api/v1/orders/:id/offer.
func (s *Server) SubmitOffer(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return err
	}
	orderID, err := s.pathID(ctx, "id")
	if err != nil {
		return err
	}

	var req submitOfferRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	price, err := kernel.NewMoneyFromFloat(req.Price)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewSubmitOfferCommand(orderID, actor, price, req.ProductionDays, req.IncludedRevisions, req.Message)
	if err != nil {
		return s.respondError(ctx, err)
	}
	if err = s.handlers.SubmitOffer.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcceptOffer handles POST /api/v1/orders/:id/offer/accept.
func (s *Server) AcceptOffer(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return err
	}
	orderID, err := s.pathID(ctx, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewAcceptOfferCommand(orderID, actor)
	if err != nil {
		return s.respondError(ctx, err)
	}
	if err = s.handlers.AcceptOffer.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type reasonRequest struct {
	Reason string `json:"reason"`
}

// RejectOffer handles POST /api/v1/orders/:id/offer/reject.
func (s *Server) RejectOffer(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return err
	}
	orderID, err := s.pathID(ctx, "id")
	if err != nil {
		return err
	}

	var req reasonRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRejectOfferCommand(orderID, actor, req.Reason)
	if err != nil {
		return s.respondError(ctx, err)
	}
	if err = s.handlers.RejectOffer.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type deliverRequest struct {
	MusicURL string `json:"musicUrl"`
	Message  string `json:"message"`
}

// DeliverOrder handles POST /api/v1/orders/:id/deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return err
	}
	orderID, err := s.pathID(ctx, "id")
	if err != nil {
		return err
	}

	var req deliverRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewDeliverOrderCommand(orderID, actor, req.MusicURL, req.Message)
	if err != nil {
		return s.respondError(ctx, err)
	}
	if err = s.handlers.DeliverOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type revisionRequest struct {
	Feedback string `json:"feedback"`
}

// RequestRevision handles POST /api/v1/orders/:id/revision.
func (s *Server) RequestRevision(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return err
	}
	orderID, err := s.pathID(ctx, "id")
	if err != nil {
		return err
	}

	var req revisionRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRequestRevisionCommand(orderID, actor, req.Feedback)
	if err != nil {
		return s.respondError(ctx, err)
	}
	if err = s.handlers.RequestRevision.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkOrderPaid handles POST /api/v1/orders/:id/pay. Called by the payment
// collaborator once the capture succeeded.
func (s *Server) MarkOrderPaid(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return err
	}
	orderID, err := s.pathID(ctx, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewMarkOrderPaidCommand(orderID, actor)
	if err != nil {
		return s.respondError(ctx, err)
	}
	if err = s.handlers.MarkOrderPaid.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/:id/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return err
	}
	orderID, err := s.pathID(ctx, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, actor)
	if err != nil {
		return s.respondError(ctx, err)
	}
	if err = s.handlers.CompleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel. The response carries
// the resolved refund class so the caller can tell the customer what
// happens to their money.
func (s *Server) CancelOrder(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return err
	}
	orderID, err := s.pathID(ctx, "id")
	if err != nil {
		return err
	}

	var req reasonRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actor, req.Reason)
	if err != nil {
		return s.respondError(ctx, err)
	}

	outcome, err := s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{
		"refund": outcome.Class.String(),
		"note":   outcome.Note,
	})
}

// DisputeOrder handles POST /api/v1/orders/:id/dispute.
func (s *Server) DisputeOrder(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return err
	}
	orderID, err := s.pathID(ctx, "id")
	if err != nil {
		return err
	}

	var req reasonRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewDisputeOrderCommand(orderID, actor, req.Reason)
	if err != nil {
		return s.respondError(ctx, err)
	}
	if err = s.handlers.DisputeOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCart handles GET /api/v1/cart - the caller's priced cart.
func (s *Server) GetCart(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetCartQuery(actor)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cart, err := s.handlers.GetCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cart)
}

type addCartItemRequest struct {
	TrackID *string `json:"trackId"`
	OrderID *string `json:"orderId"`
	Tier    string  `json:"tier"`
}

// AddCartItem handles POST /api/v1/cart. Adding a subject already in the
// cart replaces its license tier.
func (s *Server) AddCartItem(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return err
	}

	var req addCartItemRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	tier, err := catalog.ParseLicenseTier(req.Tier)
	if err != nil {
		return s.respondError(ctx, err)
	}

	trackID, err := s.optionalID(req.TrackID)
	if err != nil {
		return s.badRequest(ctx, "invalid track id")
	}
	orderID, err := s.optionalID(req.OrderID)
	if err != nil {
		return s.badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewAddCartItemCommand(actor, trackID, orderID, tier)
	if err != nil {
		return s.respondError(ctx, err)
	}

	itemID, err := s.handlers.AddCartItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"itemId": itemID.String()})
}

type changeCartLicenseRequest struct {
	Tier string `json:"tier"`
}

// ChangeCartLicense handles PUT /api/v1/cart/:itemId.
func (s *Server) ChangeCartLicense(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return err
	}
	itemID, err := s.pathID(ctx, "itemId")
	if err != nil {
		return err
	}

	var req changeCartLicenseRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	tier, err := catalog.ParseLicenseTier(req.Tier)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewChangeCartLicenseCommand(itemID, actor, tier)
	if err != nil {
		return s.respondError(ctx, err)
	}
	if err = s.handlers.ChangeCartLicense.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveCartItem handles DELETE /api/v1/cart/:itemId.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return err
	}
	itemID, err := s.pathID(ctx, "itemId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemoveCartItemCommand(itemID, actor)
	if err != nil {
		return s.respondError(ctx, err)
	}
	if err = s.handlers.RemoveCartItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetInvoices handles GET /api/v1/invoices - the caller's invoices.
func (s *Server) GetInvoices(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetInvoicesQuery(actor)
	if err != nil {
		return s.respondError(ctx, err)
	}

	invoices, err := s.handlers.GetInvoices.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, invoices)
}

type createInvoiceRequest struct {
	OrderID string `json:"orderId"`
}

// CreateInvoice handles POST /api/v1/invoices - bills a billable order.
func (s *Server) CreateInvoice(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return err
	}

	var req createInvoiceRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return s.badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewCreateInvoiceCommand(orderID, actor)
	if err != nil {
		return s.respondError(ctx, err)
	}

	invoiceID, err := s.handlers.CreateInvoice.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"invoiceId": invoiceID.String()})
}

// ErrorHandler renders every error that escapes a route handler as an
// ErrorResponse. Register it as the echo HTTPErrorHandler.
func ErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "internal error"
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		message = fmt.Sprint(httpErr.Message)
	}

	_ = ctx.JSON(status, ErrorResponse{Code: status, Message: message})
}

// actor extracts the caller's identity from the X-Actor-ID header.
func (s *Server) actor(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(actorHeader)
	if raw == "" {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusUnauthorized, "missing "+actorHeader+" header")
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid "+actorHeader+" header")
	}
	return id, nil
}

func (s *Server) pathID(ctx echo.Context, param string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(param))
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, "invalid "+param)
	}
	return id, nil
}

func (s *Server) optionalID(raw *string) (*kernel.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func (s *Server) badRequest(_ echo.Context, message string) error {
	return echo.NewHTTPError(http.StatusBadRequest, message)
}

// respondError maps domain errors to HTTP statuses: validation failures to
// 400, missing permissions to 403, unknown objects to 404, illegal
// transitions and spent revision budgets to 422, and concurrent
// modification to 409. Anything unrecognized stays a 500 without leaking
// its message.
func (s *Server) respondError(ctx echo.Context, err error) error {
	var status int
	message := err.Error()

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrRevisionLimitExceeded):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	default:
		status = http.StatusInternalServerError
		message = "internal error"
	}

	return ctx.JSON(status, ErrorResponse{Code: status, Message: message})
}
