// Package http adapts the generated API surface to the application's
// command and query handlers. Every response uses the success envelope:
// {"success": true, ...} or {"success": false, "error": "..."} with the
// status code derived from the error class.
package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/generated/servers"
	"storefront/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// sessionTTL is how long a login or registration session stays valid.
const sessionTTL = 30 * 24 * time.Hour

// Handlers bundles the application entry points the server dispatches to.
type Handlers struct {
	// Command handlers
	RegisterCustomer     commands.RegisterCustomerCommandHandler
	PlaceOrder           commands.PlaceOrderCommandHandler
	RequestCancellation  commands.RequestCancellationCommandHandler
	RequestReturn        commands.RequestReturnCommandHandler
	AddReview            commands.AddReviewCommandHandler
	DeleteReview         commands.DeleteReviewCommandHandler
	AddCartItem          commands.AddCartItemCommandHandler
	UpdateCartItem       commands.UpdateCartItemCommandHandler
	RemoveCartItem       commands.RemoveCartItemCommandHandler
	AddAddress           commands.AddAddressCommandHandler
	SubmitContactMessage commands.SubmitContactMessageCommandHandler
	SubscribeNewsletter  commands.SubscribeNewsletterCommandHandler

	// Query handlers
	GetProducts       queries.GetProductsQueryHandler
	GetProduct        queries.GetProductQueryHandler
	GetReviews        queries.GetReviewsQueryHandler
	GetCart           queries.GetCartQueryHandler
	GetAddresses      queries.GetAddressesQueryHandler
	GetCustomerOrders queries.GetCustomerOrdersQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers           Handlers
	sessions           ports.SessionStore
	customerUoWFactory commands.CustomerUoWFactory
}

// NewServer creates a new HTTP server with the required application
// handlers, the session store and a customer unit-of-work factory for the
// login path.
func NewServer(
	handlers Handlers,
	sessions ports.SessionStore,
	customerUoWFactory commands.CustomerUoWFactory,
) *Server {
	return &Server{
		handlers:           handlers,
		sessions:           sessions,
		customerUoWFactory: customerUoWFactory,
	}
}

// LoadOpenAPISpec loads and validates the committed OpenAPI document so it
// can be served at /openapi.json.
func LoadOpenAPISpec(path string) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, err
	}

	if err = doc.Validate(loader.Context); err != nil {
		return nil, err
	}

	return doc, nil
}

// Login handles POST /api/v1/session/login.
func (s *Server) Login(ctx echo.Context) error {
	var req servers.LoginJSONRequestBody
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, http.StatusBadRequest, "Invalid request body")
	}

	requestCtx := ctx.Request().Context()
	uow := s.customerUoWFactory.Create()
	account, err := uow.CustomerRepository().GetByEmail(requestCtx, string(req.Email))
	if err != nil || !account.VerifyPassword(req.Password) {
		return fail(ctx, http.StatusUnauthorized, "Invalid email or password.")
	}

	token, err := s.sessions.Create(requestCtx, account.ID(), sessionTTL)
	if err != nil {
		return fail(ctx, http.StatusInternalServerError, "Failed to create session.")
	}

	return ctx.JSON(http.StatusOK, servers.LoginResponse{Success: true, Token: token})
}

// Logout handles POST /api/v1/session/logout.
func (s *Server) Logout(ctx echo.Context) error {
	token := bearerToken(ctx)
	if token == "" {
		return fail(ctx, http.StatusUnauthorized, "User not authenticated.")
	}

	if err := s.sessions.Revoke(ctx.Request().Context(), token); err != nil {
		return fail(ctx, http.StatusInternalServerError, "Failed to revoke session.")
	}

	return success(ctx, http.StatusOK)
}

// RegisterCustomer handles POST /api/v1/customers.
func (s *Server) RegisterCustomer(ctx echo.Context) error {
	var req servers.RegisterCustomerJSONRequestBody
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, http.StatusBadRequest, "Invalid request body")
	}

	phone := ""
	if req.Phone != nil {
		phone = *req.Phone
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewRegisterCustomerCommand(customerID, string(req.Email), req.Password, req.Name, phone)
	if err != nil {
		return fail(ctx, http.StatusUnprocessableEntity, err.Error())
	}

	requestCtx := ctx.Request().Context()
	if err = s.handlers.RegisterCustomer.Handle(requestCtx, cmd); err != nil {
		if errors.Is(err, commands.ErrEmailAlreadyRegistered) {
			return fail(ctx, http.StatusConflict, "Email is already registered.")
		}
		if errorStatus(err) == http.StatusUnprocessableEntity {
			return fail(ctx, http.StatusUnprocessableEntity, err.Error())
		}
		return fail(ctx, http.StatusInternalServerError, "Failed to register customer.")
	}

	token, err := s.sessions.Create(requestCtx, customerID, sessionTTL)
	if err != nil {
		return fail(ctx, http.StatusInternalServerError, "Failed to create session.")
	}

	return ctx.JSON(http.StatusCreated, servers.LoginResponse{Success: true, Token: token})
}

// GetProducts handles GET /api/v1/products.
func (s *Server) GetProducts(ctx echo.Context, params servers.GetProductsParams) error {
	category := ""
	if params.Category != nil {
		category = *params.Category
	}

	query := queries.NewGetProductsQuery(category, boolValue(params.Trending), boolValue(params.Sale))
	products, err := s.handlers.GetProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, http.StatusInternalServerError, "Failed to retrieve products.")
	}

	response := make([]servers.Product, len(products))
	for i, p := range products {
		response[i] = toProductResponse(p)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetProduct handles GET /api/v1/products/{productId}.
func (s *Server) GetProduct(ctx echo.Context, productId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(productId[:])
	if err != nil {
		return fail(ctx, http.StatusUnprocessableEntity, err.Error())
	}

	query, err := queries.NewGetProductQuery(id)
	if err != nil {
		return fail(ctx, http.StatusUnprocessableEntity, err.Error())
	}

	p, err := s.handlers.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return fail(ctx, http.StatusNotFound, "Product not found.")
		}
		return fail(ctx, http.StatusInternalServerError, "Failed to retrieve product.")
	}

	return ctx.JSON(http.StatusOK, toProductResponse(p))
}

// GetReviews handles GET /api/v1/products/{productId}/reviews.
func (s *Server) GetReviews(ctx echo.Context, productId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(productId[:])
	if err != nil {
		return fail(ctx, http.StatusUnprocessableEntity, err.Error())
	}

	query, err := queries.NewGetReviewsQuery(id)
	if err != nil {
		return fail(ctx, http.StatusUnprocessableEntity, err.Error())
	}

	reviews, err := s.handlers.GetReviews.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, http.StatusInternalServerError, "Failed to retrieve reviews.")
	}

	response := make([]servers.Review, len(reviews))
	for i, r := range reviews {
		response[i] = servers.Review{
			Id:        r.ID.Bytes(),
			ProductId: productId,
			Author:    r.Author,
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddReview handles POST /api/v1/products/{productId}/reviews.
func (s *Server) AddReview(ctx echo.Context, productId openapi_types.UUID) error {
	customerID, err := s.authenticate(ctx)
	if err != nil {
		return fail(ctx, http.StatusUnauthorized, "User not authenticated.")
	}

	var req servers.AddReviewJSONRequestBody
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, http.StatusBadRequest, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(productId[:])
	if err != nil {
		return fail(ctx, http.StatusUnprocessableEntity, err.Error())
	}

	requestCtx := ctx.Request().Context()

	// Reviews carry the author's display name, snapshotted at creation.
	uow := s.customerUoWFactory.Create()
	account, err := uow.CustomerRepository().Get(requestCtx, customerID)
	if err != nil {
		return fail(ctx, http.StatusUnauthorized, "User not authenticated.")
	}

	cmd, err := commands.NewAddReviewCommand(kernel.NewUUID(), id, customerID, account.Name(), req.Rating, req.Comment)
	if err != nil {
		return fail(ctx, http.StatusUnprocessableEntity, err.Error())
	}

	if err = s.handlers.AddReview.Handle(requestCtx, cmd); err != nil {
		switch errorStatus(err) {
		case http.StatusNotFound:
			return fail(ctx, http.StatusNotFound, "Product not found.")
		case http.StatusUnprocessableEntity:
			return fail(ctx, http.StatusUnprocessableEntity, err.Error())
		default:
			return fail(ctx, http.StatusInternalServerError, "Failed to save review.")
		}
	}

	return success(ctx, http.StatusCreated)
}

// DeleteReview handles DELETE /api/v1/products/{productId}/reviews/{reviewId}.
func (s *Server) DeleteReview(ctx echo.Context, _ openapi_types.UUID, reviewId openapi_types.UUID) error {
	customerID, err := s.authenticate(ctx)
	if err != nil {
		return fail(ctx, http.StatusUnauthorized, "User not authenticated.")
	}

	id, err := kernel.UUIDFromBytes(reviewId[:])
	if err != nil {
		return fail(ctx, http.StatusUnprocessableEntity, err.Error())
	}

	cmd, err := commands.NewDeleteReviewCommand(id, customerID)
	if err != nil {
		return fail(ctx, http.StatusUnprocessableEntity, err.Error())
	}

	if err = s.handlers.DeleteReview.Handle(ctx.Request().Context(), cmd); err != nil {
		switch errorStatus(err) {
		case http.StatusForbidden:
			return fail(ctx, http.StatusForbidden, "User is not authorized to delete this review.")
		case http.StatusNotFound:
			return fail(ctx, http.StatusNotFound, "Review not found.")
		default:
			return fail(ctx, http.StatusInternalServerError, "Failed to delete review.")
		}
	}

	return success(ctx, http.StatusOK)
}

// GetCart handles GET /api/v1/cart.
func (s *Server) GetCart(ctx echo.Context) error {
	customerID, err := s.authenticate(ctx)
	if err != nil {
		return fail(ctx, http.StatusUnauthorized, "User not authenticated.")
	}

	query, err := queries.NewGetCartQuery(customerID)
	if err != nil {
		return fail(ctx, http.StatusUnprocessableEntity, err.Error())
	}

	cart, err := s.handlers.GetCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, http.StatusInternalServerError, "Failed to retrieve cart.")
	}

	items := make([]servers.CartItem, len(cart.Items))
	for i, item := range cart.Items {
		items[i] = servers.CartItem{
			Id:        item.ID.Bytes(),
			ProductId: item.ProductID.Bytes(),
			Name:      item.Name,
			Price:     item.Price,
			Image:     item.Image,
			Size:      item.Size,
			Quantity:  item.Quantity,
		}
	}

	return ctx.JSON(http.StatusOK, servers.Cart{Items: items, Subtotal: cart.Subtotal})
}

// AddCartItem handles POST /api/v1/cart/items.
func (s *Server) AddCartItem(ctx echo.Context) error {
	customerID, err := s.authenticate(ctx)
	if err != nil {
		return fail(ctx, http.StatusUnauthorized, "User not authenticated.")
	}

	var req servers.AddCartItemJSONRequestBody
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, http.StatusBadRequest, "Invalid request body")
	}

	productID, err := kernel.UUIDFromBytes(req.ProductId[:])
	if err != nil {
		return fail(ctx, http.StatusUnprocessableEntity, err.Error())
	}

	cmd, err := commands.NewAddCartItemCommand(customerID, productID, req.Size, req.Quantity)
	if err != nil {
		return fail(ctx, http.StatusUnprocessableEntity, err.Error())
	}

	if err = s.handlers.AddCartItem.Handle(ctx.Request().Context(), cmd); err != nil {
		switch errorStatus(err) {
		case http.StatusNotFound:
			return fail(ctx, http.StatusNotFound, "Product not found.")
		case http.StatusUnprocessableEntity:
			return fail(ctx, http.StatusUnprocessableEntity, err.Error())
		default:
			return fail(ctx, http.StatusInternalServerError, "Failed to update cart.")
		}
	}

	return success(ctx, http.StatusOK)
}

// UpdateCartItem handles PATCH /api/v1/cart/items/{itemId}.
func (s *Server) UpdateCartItem(ctx echo.Context, itemId openapi_types.UUID) error {
	customerID, err := s.authenticate(ctx)
	if err != nil {
		return fail(ctx, http.StatusUnauthorized, "User not authenticated.")
	}

	var req servers.UpdateCartItemJSONRequestBody
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, http.StatusBadRequest, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(itemId[:])
	if err != nil {
		return fail(ctx, http.StatusUnprocessableEntity, err.Error())
	}

	cmd, err := commands.NewUpdateCartItemCommand(customerID, id, req.Quantity)
	if err != nil {
		return fail(ctx, http.StatusUnprocessableEntity, err.Error())
	}

	if err = s.handlers.UpdateCartItem.Handle(ctx.Request().Context(), cmd); err != nil {
		switch errorStatus(err) {
		case http.StatusNotFound:
			return fail(ctx, http.StatusNotFound, "Item not found.")
		case http.StatusUnprocessableEntity:
			return fail(ctx, http.StatusUnprocessableEntity, err.Error())
		default:
			return fail(ctx, http.StatusInternalServerError, "Failed to update cart.")
		}
	}

	return success(ctx, http.StatusOK)
}

// RemoveCartItem handles DELETE /api/v1/cart/items/{itemId}.
func (s *Server) RemoveCartItem(ctx echo.Context, itemId openapi_types.UUID) error {
	customerID, err := s.authenticate(ctx)
	if err != nil {
		return fail(ctx, http.StatusUnauthorized, "User not authenticated.")
	}

	id, err := kernel.UUIDFromBytes(itemId[:])
	if err != nil {
		return fail(ctx, http.StatusUnprocessableEntity, err.Error())
	}

	cmd, err := commands.NewRemoveCartItemCommand(customerID, id)
	if err != nil {
		return fail(ctx, http.StatusUnprocessableEntity, err.Error())
	}

	if err = s.handlers.RemoveCartItem.Handle(ctx.Request().Context(), cmd); err != nil {
		if errorStatus(err) == http.StatusNotFound {
			return fail(ctx, http.StatusNotFound, "Item not found.")
		}
		return fail(ctx, http.StatusInternalServerError, "Failed to update cart.")
	}

	return success(ctx, http.StatusOK)
}

// GetAddresses handles GET /api/v1/addresses.
func (s *Server) GetAddresses(ctx echo.Context) error {
	customerID, err := s.authenticate(ctx)
	if err != nil {
		return fail(ctx, http.StatusUnauthorized, "User not authenticated.")
	}

	query, err := queries.NewGetAddressesQuery(customerID)
	if err != nil {
		return fail(ctx, http.StatusUnprocessableEntity, err.Error())
	}

	addresses, err := s.handlers.GetAddresses.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, http.StatusInternalServerError, "Failed to retrieve addresses.")
	}

	response := make([]servers.Address, len(addresses))
	for i, a := range addresses {
		response[i] = servers.Address{
			Id:        a.ID.Bytes(),
			Label:     a.Label,
			Recipient: a.Recipient,
			Line:      a.Line,
			Phone:     a.Phone,
			IsDefault: a.IsDefault,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddAddress handles POST /api/v1/addresses.
func (s *Server) AddAddress(ctx echo.Context) error {
	customerID, err := s.authenticate(ctx)
	if err != nil {
		return fail(ctx, http.StatusUnauthorized, "User not authenticated.")
	}

	var req servers.AddAddressJSONRequestBody
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewAddAddressCommand(
		customerID, kernel.NewUUID(), req.Label, req.Recipient, req.Line, req.Phone, boolValue(req.MakeDefault),
	)
	if err != nil {
		return fail(ctx, http.StatusUnprocessableEntity, err.Error())
	}

	if err = s.handlers.AddAddress.Handle(ctx.Request().Context(), cmd); err != nil {
		if errorStatus(err) == http.StatusUnprocessableEntity {
			return fail(ctx, http.StatusUnprocessableEntity, err.Error())
		}
		return fail(ctx, http.StatusInternalServerError, "Failed to save address.")
	}

	return success(ctx, http.StatusCreated)
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	customerID, err := s.authenticate(ctx)
	if err != nil {
		return fail(ctx, http.StatusUnauthorized, "User not authenticated.")
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return fail(ctx, http.StatusUnprocessableEntity, err.Error())
	}

	orders, err := s.handlers.GetCustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, http.StatusInternalServerError, "Failed to retrieve orders.")
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	customerID, err := s.authenticate(ctx)
	if err != nil {
		return fail(ctx, http.StatusUnauthorized, "User not authenticated.")
	}

	var req servers.PlaceOrderJSONRequestBody
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, http.StatusBadRequest, "Invalid request body")
	}

	address, err := order.NewShippingAddress(
		req.ShippingAddress.Recipient, req.ShippingAddress.Phone, req.ShippingAddress.Line,
	)
	if err != nil {
		return fail(ctx, http.StatusUnprocessableEntity, err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, customerID, address, order.PaymentMethod(req.PaymentMethod))
	if err != nil {
		return fail(ctx, http.StatusUnprocessableEntity, err.Error())
	}

	if err = s.handlers.PlaceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, services.ErrCartIsEmpty) {
			return fail(ctx, http.StatusUnprocessableEntity, "Cart is empty.")
		}
		if errorStatus(err) == http.StatusUnprocessableEntity {
			return fail(ctx, http.StatusUnprocessableEntity, err.Error())
		}
		return fail(ctx, http.StatusInternalServerError, "Failed to place order.")
	}

	return ctx.JSON(http.StatusCreated, servers.PlaceOrderResponse{Success: true, OrderId: orderID.Bytes()})
}

// RequestCancellation handles POST /api/v1/orders/{orderId}/cancellation.
func (s *Server) RequestCancellation(ctx echo.Context, orderId openapi_types.UUID) error {
	customerID, err := s.authenticate(ctx)
	if err != nil {
		return fail(ctx, http.StatusUnauthorized, "User not authenticated.")
	}

	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return fail(ctx, http.StatusUnprocessableEntity, err.Error())
	}

	cmd, err := commands.NewRequestCancellationCommand(id, customerID)
	if err != nil {
		return fail(ctx, http.StatusUnprocessableEntity, err.Error())
	}

	if err = s.handlers.RequestCancellation.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.orderFailure(ctx, err, "This order cannot be cancelled at its current stage.")
	}

	return success(ctx, http.StatusOK)
}

// RequestReturn handles POST /api/v1/orders/{orderId}/return.
func (s *Server) RequestReturn(ctx echo.Context, orderId openapi_types.UUID) error {
	customerID, err := s.authenticate(ctx)
	if err != nil {
		return fail(ctx, http.StatusUnauthorized, "User not authenticated.")
	}

	var req servers.RequestReturnJSONRequestBody
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, http.StatusBadRequest, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return fail(ctx, http.StatusUnprocessableEntity, err.Error())
	}

	comments := ""
	if req.Comments != nil {
		comments = *req.Comments
	}

	cmd, err := commands.NewRequestReturnCommand(id, customerID, req.Reason, comments)
	if err != nil {
		return fail(ctx, http.StatusUnprocessableEntity, err.Error())
	}

	if err = s.handlers.RequestReturn.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.orderFailure(ctx, err, "This order cannot be returned at its current stage.")
	}

	return success(ctx, http.StatusOK)
}

// SubmitContactMessage handles POST /api/v1/contact.
func (s *Server) SubmitContactMessage(ctx echo.Context) error {
	var req servers.SubmitContactMessageJSONRequestBody
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewSubmitContactMessageCommand(
		kernel.NewUUID(), req.Name, string(req.Email), req.Subject, req.Message,
	)
	if err != nil {
		return fail(ctx, http.StatusUnprocessableEntity, err.Error())
	}

	if err = s.handlers.SubmitContactMessage.Handle(ctx.Request().Context(), cmd); err != nil {
		if errorStatus(err) == http.StatusUnprocessableEntity {
			return fail(ctx, http.StatusUnprocessableEntity, err.Error())
		}
		return fail(ctx, http.StatusInternalServerError, "Failed to submit message.")
	}

	return success(ctx, http.StatusCreated)
}

// SubscribeNewsletter handles POST /api/v1/newsletter.
func (s *Server) SubscribeNewsletter(ctx echo.Context) error {
	var req servers.SubscribeNewsletterJSONRequestBody
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewSubscribeNewsletterCommand(kernel.NewUUID(), string(req.Email))
	if err != nil {
		return fail(ctx, http.StatusUnprocessableEntity, err.Error())
	}

	if err = s.handlers.SubscribeNewsletter.Handle(ctx.Request().Context(), cmd); err != nil {
		if errorStatus(err) == http.StatusUnprocessableEntity {
			return fail(ctx, http.StatusUnprocessableEntity, err.Error())
		}
		return fail(ctx, http.StatusInternalServerError, "Failed to subscribe.")
	}

	return success(ctx, http.StatusCreated)
}

// authenticate resolves the bearer token to the logged-in customer.
func (s *Server) authenticate(ctx echo.Context) (kernel.UUID, error) {
	token := bearerToken(ctx)
	if token == "" {
		return kernel.UUID{}, errs.ErrNotAuthenticated
	}

	customerID, err := s.sessions.Resolve(ctx.Request().Context(), token)
	if err != nil {
		return kernel.UUID{}, errs.ErrNotAuthenticated
	}

	return customerID, nil
}

// orderFailure maps an order mutation error to the envelope the storefront
// shows verbatim. Concurrent-update conflicts read as stage conflicts: by
// the time the user retries, the order genuinely is in another stage.
func (s *Server) orderFailure(ctx echo.Context, err error, stageMessage string) error {
	switch errorStatus(err) {
	case http.StatusUnauthorized:
		return fail(ctx, http.StatusUnauthorized, "User not authenticated.")
	case http.StatusForbidden:
		return fail(ctx, http.StatusForbidden, "User is not authorized to modify this order.")
	case http.StatusNotFound:
		return fail(ctx, http.StatusNotFound, "Order not found.")
	case http.StatusConflict:
		return fail(ctx, http.StatusConflict, stageMessage)
	case http.StatusUnprocessableEntity:
		return fail(ctx, http.StatusUnprocessableEntity, err.Error())
	default:
		return fail(ctx, http.StatusInternalServerError, "Failed to update order in the database.")
	}
}

// errorStatus classifies an application error into an HTTP status code.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, errs.ErrNotAuthenticated), errors.Is(err, ports.ErrSessionNotFound):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidStage), errors.Is(err, ports.ErrConcurrentOrderUpdate):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func success(ctx echo.Context, status int) error {
	return ctx.JSON(status, servers.SuccessResponse{Success: true})
}

func fail(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, servers.ErrorResponse{Success: false, Error: message})
}

func bearerToken(ctx echo.Context) string {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

func boolValue(b *bool) bool {
	return b != nil && *b
}

func toProductResponse(p queries.ProductResponse) servers.Product {
	return servers.Product{
		Id:            p.ID.Bytes(),
		Name:          p.Name,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Images:        p.Images,
		Category:      p.Category,
		Description:   p.Description,
		Sizes:         p.Sizes,
		Stock:         p.Stock,
		Trending:      p.Trending,
	}
}

func toOrderResponse(o queries.OrderResponse) servers.Order {
	items := make([]servers.OrderItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = servers.OrderItem{
			ProductId: item.ProductID.Bytes(),
			Name:      item.Name,
			Price:     item.Price,
			Image:     item.Image,
			Quantity:  item.Quantity,
			Size:      item.Size,
		}
	}

	response := servers.Order{
		Id:             o.ID.Bytes(),
		Status:         o.Status,
		PlacedAt:       o.PlacedAt,
		DeliveredAt:    o.DeliveredAt,
		Total:          o.Total,
		PaymentMethod:  o.PaymentMethod,
		ReturnEligible: o.IsReturnEligible,
		Items:          items,
		ShippingAddress: servers.ShippingAddress{
			Recipient: o.ShippingAddress.Recipient,
			Phone:     o.ShippingAddress.Phone,
			Line:      o.ShippingAddress.Line,
		},
	}

	if o.Tracking != nil {
		response.Tracking = &servers.Tracking{
			Provider: o.Tracking.Provider,
			Number:   o.Tracking.Number,
		}
	}

	if o.ReturnRequest != nil {
		comments := o.ReturnRequest.Comments
		response.ReturnRequest = &servers.ReturnRequest{
			Reason:      o.ReturnRequest.Reason,
			Comments:    &comments,
			RequestDate: o.ReturnRequest.RequestDate,
			Status:      o.ReturnRequest.Status,
		}
	}

	return response
}
