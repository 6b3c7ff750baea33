package orders

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/featherworks/aviary/internal/platform/request"
	"github.com/featherworks/aviary/internal/platform/respond"
)

// Handler implements the public custom-order endpoint. Listing,
// completion, and deletion are admin-console operations and live under
// the admin routes.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the order endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.createOrder)

	return router
}

/*
POST /api/v1/orders.

Description: Submits a custom print order. The design must reference an
already-uploaded image; status is always pending on creation.

Request (Body):
  - CustomOrder: JSON object (image_url, fabric_color, email, phone, design_specs)

Response:
  - 201: CustomOrder: Created order
  - 400: Validation: Missing image, bad color, or invalid email
*/
func (handler *Handler) createOrder(writer http.ResponseWriter, request *http.Request) {
	var input CustomOrder

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateOrder(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, input)
}
