package cart

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/featherworks/aviary/internal/platform/ctxutil"
	requestutil "github.com/featherworks/aviary/internal/platform/request"
	"github.com/featherworks/aviary/internal/platform/respond"
)

// Handler implements the cart HTTP endpoints.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the cart endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.getCart)
	router.Delete("/", handler.clearCart)
	router.Post("/items", handler.addItem)
	router.Delete("/items/{id}", handler.removeItem)
	router.Post("/checkout", handler.checkout)

	return router
}

// cartView is the response shape for all cart reads. Total and count are
// derived from the line items on every response.
type cartView struct {
	Items []LineItem `json:"items"`
	Total float64    `json:"total"`
	Count int        `json:"count"`
}

func viewOf(c *Cart) cartView {
	items := c.Items
	if items == nil {
		items = []LineItem{}
	}
	return cartView{Items: items, Total: c.Total(), Count: c.Count()}
}

/*
GET /api/v1/cart.

Description: Returns the session's cart with the derived total.

Response:
  - 200: cartView: Success (empty cart for a fresh session)
*/
func (handler *Handler) getCart(writer http.ResponseWriter, request *http.Request) {
	sessionID := ctxutil.GetCartSession(request.Context())
	c := handler.service.Get(request.Context(), sessionID)
	respond.OK(writer, viewOf(c))
}

/*
POST /api/v1/cart/items.

Description: Adds an item to the cart. An existing line with the same
(id, selectedSize) has its quantity incremented instead.

Request (Body):
  - LineItem: JSON object (quantity is managed server-side)

Response:
  - 200: cartView: Updated cart
  - 400: Validation: Missing product id or name
*/
func (handler *Handler) addItem(writer http.ResponseWriter, request *http.Request) {
	var input LineItem
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	sessionID := ctxutil.GetCartSession(request.Context())
	c, err := handler.service.Add(request.Context(), sessionID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, viewOf(c))
}

/*
DELETE /api/v1/cart/items/{id}.

Description: Removes the line matching the product id and the selected
size. Removing an absent line is a no-op.

Request:
  - id: string (Product ID)
  - size: string (query, optional; must match the line's selected size)

Response:
  - 200: cartView: Updated cart
*/
func (handler *Handler) removeItem(writer http.ResponseWriter, request *http.Request) {
	productID := chi.URLParam(request, "id")
	size := request.URL.Query().Get("size")

	sessionID := ctxutil.GetCartSession(request.Context())
	c := handler.service.Remove(request.Context(), sessionID, productID, size)
	respond.OK(writer, viewOf(c))
}

/*
DELETE /api/v1/cart.

Description: Empties the session's cart.

Response:
  - 200: cartView: Empty cart
*/
func (handler *Handler) clearCart(writer http.ResponseWriter, request *http.Request) {
	sessionID := ctxutil.GetCartSession(request.Context())
	c := handler.service.Clear(request.Context(), sessionID)
	respond.OK(writer, viewOf(c))
}

/*
POST /api/v1/cart/checkout.

Description: Simulated checkout. Confirms and clears the cart, returns an
order summary. No payment is processed.

Response:
  - 200: OrderSummary: Confirmation with echoed items and total
  - 400: Validation: Cart is empty
*/
func (handler *Handler) checkout(writer http.ResponseWriter, request *http.Request) {
	sessionID := ctxutil.GetCartSession(request.Context())
	summary, err := handler.service.Checkout(request.Context(), sessionID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, summary)
}
