package preview

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/featherworks/aviary/internal/platform/apperr"
	"github.com/featherworks/aviary/internal/platform/respond"
)

// Handler implements the scrape endpoint.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the preview endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.scrape)

	return router
}

/*
GET /api/scrape?url=.

Description: Fetches the target page once and returns an extracted link
preview. Stateless; no retry, no cache.

Request:
  - url: string (Target page URL)

Response:
  - 200: Result: Extracted title, description, image, and excerpt
  - 400: Validation: Missing url parameter
  - 403: AccessDenied: Upstream requires login or blocks bots
  - 4xx/5xx: FetchFailed: Mirrors the upstream status
*/
func (handler *Handler) scrape(writer http.ResponseWriter, request *http.Request) {
	targetURL := request.URL.Query().Get("url")
	if targetURL == "" {
		respond.Error(writer, request, apperr.ValidationError("Missing URL parameter"))
		return
	}

	result, err := handler.service.Scrape(request.Context(), targetURL)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}
