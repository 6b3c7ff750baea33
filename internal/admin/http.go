package admin

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/featherworks/aviary/internal/platform/apperr"
	"github.com/featherworks/aviary/internal/platform/blob"
	"github.com/featherworks/aviary/internal/platform/ctxutil"
	requestutil "github.com/featherworks/aviary/internal/platform/request"
	"github.com/featherworks/aviary/internal/platform/respond"
	"github.com/featherworks/aviary/pkg/convert"
	"github.com/featherworks/aviary/pkg/slice"
)

// uploadLimit bounds an uploaded image in bytes.
const uploadLimit = 10 << 20

// Handler implements the console endpoints.
type Handler struct {
	registry *Registry
	sessions *Sessions
	blobs    blob.Store
}

func NewHandler(registry *Registry, sessions *Sessions, blobs blob.Store) *Handler {
	return &Handler{
		registry: registry,
		sessions: sessions,
		blobs:    blobs,
	}
}

// Routes returns a [chi.Router] configured with the console endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Specific routes before the {kind} wildcards.
	router.Post("/uploads", handler.upload)
	router.Get("/species/groups", handler.speciesGroups)
	router.Post("/orders/{id}/complete", handler.completeOrder)

	router.Route("/{kind}", func(kindRoute chi.Router) {
		kindRoute.Get("/", handler.list)
		kindRoute.Post("/", handler.create)
		kindRoute.Put("/{id}", handler.update)
		kindRoute.Delete("/{id}", handler.delete)
	})

	return router
}

func (handler *Handler) session(request *http.Request) *Session {
	return handler.sessions.Get(ctxutil.GetCartSession(request.Context()))
}

/*
GET /api/v1/admin/{kind}.

Description: Every row of a kind in the editor dialect, newest first.
A backend failure yields an empty list, never an error page.

Response:
  - 200: []Row: Success (possibly empty)
  - 400: Validation: Unknown kind
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	kind, err := ParseKind(chi.URLParam(request, "kind"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, handler.registry.LoadAll(request.Context(), kind))
}

/*
POST /api/v1/admin/{kind}.

Description: Creates a record from a form payload in the editor dialect
(snake_case). Any client-supplied id is stripped. Refused while an image
upload is in flight for the same session.

Request (Body):
  - Row: JSON object for the kind

Response:
  - 201: Row: Created record with its backend id
  - 400: Validation: Missing image or malformed payload
  - 409: Conflict: Upload in flight
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	kind, err := ParseKind(chi.URLParam(request, "kind"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	payload, err := io.ReadAll(io.LimitReader(request.Body, uploadLimit))
	if err != nil {
		respond.Error(writer, request, apperr.Internal(err))
		return
	}

	session := handler.session(request)
	session.Begin(kind, nil, payload)

	result, err := session.Submit(request.Context(), handler.registry)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, result)
}

/*
PUT /api/v1/admin/{kind}/{id}.

Description: Updates an existing record. Last write wins; there is no
concurrency token.

Request:
  - id: int (Record ID)
  - body: Row (JSON object for the kind)

Response:
  - 200: Row: Updated record
  - 400: Validation: Missing image or malformed payload
  - 404: ErrNotFound: Record missing
  - 409: Conflict: Upload in flight
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	kind, err := ParseKind(chi.URLParam(request, "kind"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	payload, err := io.ReadAll(io.LimitReader(request.Body, uploadLimit))
	if err != nil {
		respond.Error(writer, request, apperr.Internal(err))
		return
	}

	session := handler.session(request)
	session.Begin(kind, &id, payload)

	result, err := session.Submit(request.Context(), handler.registry)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

/*
DELETE /api/v1/admin/{kind}/{id}?confirm=true.

Description: Hard-deletes a record. The confirm parameter stands in for
the console's confirmation prompt; without it nothing happens.

Response:
  - 204: No Content: Deleted
  - 400: Validation: Missing confirmation
  - 404: ErrNotFound: Record missing
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	kind, err := ParseKind(chi.URLParam(request, "kind"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	confirmed := convert.ToBool(request.URL.Query().Get("confirm"))
	if err := handler.registry.Delete(request.Context(), kind, id, confirmed); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
POST /api/v1/admin/uploads.

Description: Uploads an image ahead of a record submit. The stored name is
the upload timestamp plus the sanitized original filename. While the
upload runs, submits from the same session are refused.

Request (multipart/form-data):
  - file: binary image

Response:
  - 201: {url}: Public URL of the stored image
  - 400: Validation: Missing file part
*/
func (handler *Handler) upload(writer http.ResponseWriter, request *http.Request) {
	session := handler.session(request)
	session.StartUpload()
	defer session.FinishUpload()

	if err := request.ParseMultipartForm(uploadLimit); err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid multipart payload"))
		return
	}

	file, header, err := request.FormFile("file")
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Missing file part"))
		return
	}
	defer file.Close()

	key := blob.Key(header.Filename)
	contentType := header.Header.Get("Content-Type")

	url, err := handler.blobs.Put(request.Context(), key, file, contentType)
	if err != nil {
		respond.Error(writer, request, apperr.Internal(err))
		return
	}

	respond.Created(writer, map[string]string{"url": url})
}

/*
GET /api/v1/admin/species/groups.

Description: Species partitioned into the console's collapsible buckets
(category, else family, else "Uncategorized"), sorted alphabetically.

Response:
  - 200: []species.Group: Success
*/
func (handler *Handler) speciesGroups(writer http.ResponseWriter, request *http.Request) {
	rows := handler.registry.LoadAll(request.Context(), KindSpecies).([]SpeciesRow)
	list := slice.Map(rows, speciesFromRow)

	respond.OK(writer, GroupForDisplay(list))
}

/*
POST /api/v1/admin/orders/{id}/complete.

Description: Flips a pending custom order to completed.

Response:
  - 200: OrderRow: Completed order
  - 404: ErrNotFound: Order missing
  - 409: Conflict: Already completed
*/
func (handler *Handler) completeOrder(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	row, err := handler.registry.CompleteOrder(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, row)
}
