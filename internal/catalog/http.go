package catalog

import (
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/featherworks/aviary/internal/catalog/apparel"
	"github.com/featherworks/aviary/internal/catalog/species"
	"github.com/featherworks/aviary/internal/platform/apperr"
	requestutil "github.com/featherworks/aviary/internal/platform/request"
	"github.com/featherworks/aviary/internal/platform/respond"
	"github.com/featherworks/aviary/pkg/pagination"
	"github.com/featherworks/aviary/pkg/query"
	"github.com/featherworks/aviary/pkg/slice"
)

// Handler implements the public read-only catalog endpoints. All reads are
// served from the [Store] snapshots.
type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// Routes returns a [chi.Router] configured with the catalog's endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// # Species Endpoints
	router.Route("/species", func(speciesRoute chi.Router) {
		speciesRoute.Get("/", handler.listSpecies)
		speciesRoute.Get("/groups", handler.listSpeciesGroups)
		speciesRoute.Get("/families", handler.listFamilies)
		speciesRoute.Get("/by-name/{slug}", handler.getSpeciesBySlug)
		speciesRoute.Get("/{id}", handler.getSpecies)
	})

	// # Articles Endpoints
	router.Get("/articles", handler.listArticles)
	router.Get("/articles/{id}", handler.getArticle)

	// # Storefront Endpoints
	router.Get("/books", handler.listBooks)
	router.Get("/books/{id}", handler.getBook)
	router.Get("/apparel", handler.listApparel)
	router.Get("/apparel/{id}", handler.getApparelItem)

	return router
}

/*
GET /api/v1/species.

Description: Paginated species list with optional filtering.

Request:
  - q: string (Search on common and scientific name)
  - family: string
  - category: string
  - page, limit: int

Response:
  - 200: []Species: Paginated list
*/
func (handler *Handler) listSpecies(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := species.Filter{
		Query:    request.URL.Query().Get("q"),
		Family:   request.URL.Query().Get("family"),
		Category: request.URL.Query().Get("category"),
	}

	matched := slice.Filter(handler.store.Species(), func(sp *species.Species) bool {
		return sp.Matches(filter)
	})

	page := pagination.Slice(matched, paginationParams)
	respond.Paginated(writer, page, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, len(matched)))
}

/*
GET /api/v1/species/groups.

Description: Species grouped for the explore page; bucket is the category
when set, else family, else "Other". Buckets sorted alphabetically.

Response:
  - 200: []species.Group: Success
*/
func (handler *Handler) listSpeciesGroups(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.store.SpeciesGroups())
}

/*
GET /api/v1/species/families.

Description: Distinct taxonomic families present in the catalog, sorted.

Response:
  - 200: []string: Success
*/
func (handler *Handler) listFamilies(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.store.Families())
}

/*
GET /api/v1/species/by-name/{slug}.

Description: Resolves a species from the URL slug of its common name
(e.g., "bald-eagle").

Response:
  - 200: Species: Success
  - 404: ErrNotFound: No species with that name
*/
func (handler *Handler) getSpeciesBySlug(writer http.ResponseWriter, request *http.Request) {
	s := chi.URLParam(request, "slug")

	sp, ok := handler.store.SpeciesBySlug(s)
	if !ok {
		respond.Error(writer, request, apperr.NotFound("Species"))
		return
	}

	respond.OK(writer, sp)
}

/*
GET /api/v1/species/{id}.

Response:
  - 200: Species: Success
  - 400: Validation: Invalid ID format
  - 404: ErrNotFound: Species missing
*/
func (handler *Handler) getSpecies(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	for _, sp := range handler.store.Species() {
		if sp.ID == id {
			respond.OK(writer, sp)
			return
		}
	}
	respond.Error(writer, request, apperr.NotFound("Species"))
}

/*
GET /api/v1/articles.

Description: Paginated article list. Editor rows come first (newest first),
built-in entries after. Content is raw markdown; rendering is a client concern.

Response:
  - 200: []Article: Paginated list
*/
func (handler *Handler) listArticles(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	all := handler.store.Articles()
	page := pagination.Slice(all, paginationParams)
	respond.Paginated(writer, page, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, len(all)))
}

/*
GET /api/v1/articles/{id}.

Description: One article by id. Negative ids address built-in entries.

Response:
  - 200: Article: Success
  - 400: Validation: Invalid ID format
  - 404: ErrNotFound: Article missing
*/
func (handler *Handler) getArticle(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	a, ok := handler.store.Article(id)
	if !ok {
		respond.Error(writer, request, apperr.NotFound("Article"))
		return
	}

	respond.OK(writer, a)
}

/*
GET /api/v1/books.

Response:
  - 200: []Book: Paginated list
*/
func (handler *Handler) listBooks(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	all := handler.store.Books()
	page := pagination.Slice(all, paginationParams)
	respond.Paginated(writer, page, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, len(all)))
}

/*
GET /api/v1/books/{id}.

Response:
  - 200: Book: Success
  - 400: Validation: Invalid ID format
  - 404: ErrNotFound: Book missing
*/
func (handler *Handler) getBook(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	b, ok := handler.store.Book(id)
	if !ok {
		respond.Error(writer, request, apperr.NotFound("Book"))
		return
	}

	respond.OK(writer, b)
}

/*
GET /api/v1/apparel.

Description: Apparel list with optional category filter and price sort.

Request:
  - category: string (exact match, case-insensitive)
  - sizes: string (comma-separated; item must carry every listed size)
  - sort: "price_asc" | "price_desc"
  - page, limit: int

Response:
  - 200: []apparel.Item: Paginated list
*/
func (handler *Handler) listApparel(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	category := request.URL.Query().Get("category")
	sortParam := request.URL.Query().Get("sort")

	sizes := query.StringSlice(request.URL.Query().Get("sizes"))

	matched := slice.Filter(handler.store.Apparel(), func(item *apparel.Item) bool {
		if category != "" {
			if item.Category == nil || !strings.EqualFold(*item.Category, category) {
				return false
			}
		}
		for _, size := range sizes {
			if !hasSize(item, size) {
				return false
			}
		}
		return true
	})

	switch sortParam {
	case "price_asc":
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Price < matched[j].Price })
	case "price_desc":
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Price > matched[j].Price })
	}

	page := pagination.Slice(matched, paginationParams)
	respond.Paginated(writer, page, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, len(matched)))
}

// hasSize reports whether the item is offered in the given size.
func hasSize(item *apparel.Item, size string) bool {
	for _, s := range item.Sizes {
		if strings.EqualFold(s, size) {
			return true
		}
	}
	return false
}

/*
GET /api/v1/apparel/{id}.

Response:
  - 200: apparel.Item: Success
  - 400: Validation: Invalid ID format
  - 404: ErrNotFound: Item missing
*/
func (handler *Handler) getApparelItem(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, ok := handler.store.ApparelItem(id)
	if !ok {
		respond.Error(writer, request, apperr.NotFound("Apparel item"))
		return
	}

	respond.OK(writer, item)
}
