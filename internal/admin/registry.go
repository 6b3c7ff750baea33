/*
Package admin implements the console used to maintain the site's records.

It is a generic CRUD surface over five record kinds (species, articles,
books, apparel, custom orders) speaking the backend row dialect
(snake_case), plus image upload and the pending/completed order flow.

# Access

There is no account system; the console routes are expected to be
protected at the network layer.
*/
package admin

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/featherworks/aviary/internal/catalog"
	"github.com/featherworks/aviary/internal/catalog/apparel"
	"github.com/featherworks/aviary/internal/catalog/article"
	"github.com/featherworks/aviary/internal/catalog/book"
	"github.com/featherworks/aviary/internal/catalog/species"
	"github.com/featherworks/aviary/internal/orders"
	"github.com/featherworks/aviary/internal/platform/apperr"
)

// Kind identifies one editable record collection.
type Kind string

const (
	KindSpecies Kind = "species"
	KindArticle Kind = "articles"
	KindBook    Kind = "books"
	KindApparel Kind = "apparel"
	KindOrder   Kind = "orders"
)

// ParseKind validates a kind from a URL segment.
func ParseKind(raw string) (Kind, error) {
	switch Kind(raw) {
	case KindSpecies, KindArticle, KindBook, KindApparel, KindOrder:
		return Kind(raw), nil
	default:
		return "", apperr.ValidationError("Unknown record kind: " + raw)
	}
}

// catalogKind maps an admin kind to the public catalog snapshot it backs.
// Orders have no public snapshot.
func catalogKind(kind Kind) (catalog.Kind, bool) {
	switch kind {
	case KindSpecies:
		return catalog.KindSpecies, true
	case KindArticle:
		return catalog.KindArticles, true
	case KindBook:
		return catalog.KindBooks, true
	case KindApparel:
		return catalog.KindApparel, true
	default:
		return "", false
	}
}

// Registry routes generic console operations to the per-kind services and
// keeps the public catalog snapshots in sync after writes.
type Registry struct {
	species *species.Service
	article *article.Service
	book    *book.Service
	apparel *apparel.Service
	orders  *orders.Service
	catalog *catalog.Store
	logger  *slog.Logger
}

func NewRegistry(
	speciesSvc *species.Service,
	articleSvc *article.Service,
	bookSvc *book.Service,
	apparelSvc *apparel.Service,
	ordersSvc *orders.Service,
	catalogStore *catalog.Store,
	logger *slog.Logger,
) *Registry {
	return &Registry{
		species: speciesSvc,
		article: articleSvc,
		book:    bookSvc,
		apparel: apparelSvc,
		orders:  ordersSvc,
		catalog: catalogStore,
		logger:  logger,
	}
}

// LoadAll returns every row of a kind ordered by descending id.
//
// A backend failure is logged and yields an empty list: the console
// renders an empty table rather than crashing.
func (registry *Registry) LoadAll(context context.Context, kind Kind) any {
	switch kind {
	case KindSpecies:
		list, err := registry.species.ListSpecies(context)
		if err != nil {
			registry.logFailure(kind, err)
			return []SpeciesRow{}
		}
		rows := make([]SpeciesRow, 0, len(list))
		for _, s := range list {
			rows = append(rows, rowFromSpecies(s))
		}
		return rows

	case KindArticle:
		list, err := registry.article.ListArticles(context)
		if err != nil {
			registry.logFailure(kind, err)
			return []ArticleRow{}
		}
		rows := make([]ArticleRow, 0, len(list))
		for _, a := range list {
			rows = append(rows, rowFromArticle(a))
		}
		return rows

	case KindBook:
		list, err := registry.book.ListBooks(context)
		if err != nil {
			registry.logFailure(kind, err)
			return []BookRow{}
		}
		rows := make([]BookRow, 0, len(list))
		for _, b := range list {
			rows = append(rows, rowFromBook(b))
		}
		return rows

	case KindApparel:
		list, err := registry.apparel.ListItems(context)
		if err != nil {
			registry.logFailure(kind, err)
			return []ApparelRow{}
		}
		rows := make([]ApparelRow, 0, len(list))
		for _, item := range list {
			rows = append(rows, rowFromApparel(item))
		}
		return rows

	case KindOrder:
		list, err := registry.orders.ListOrders(context)
		if err != nil {
			registry.logFailure(kind, err)
			return []OrderRow{}
		}
		rows := make([]OrderRow, 0, len(list))
		for _, o := range list {
			rows = append(rows, rowFromOrder(o))
		}
		return rows
	}

	return nil
}

func (registry *Registry) logFailure(kind Kind, err error) {
	registry.logger.Error("admin_load_failed", slog.String("kind", string(kind)), slog.Any("error", err))
}

// Submit decodes a form payload in the row dialect and creates or updates
// the record. A non-empty image reference is required before any backend
// call. On create the client-side id is stripped; on update editingID
// addresses the target row.
//
// Backend failures surface verbatim to the caller; nothing is mutated
// optimistically.
func (registry *Registry) Submit(context context.Context, kind Kind, payload []byte, editingID *int64) (any, error) {
	if kind == KindOrder {
		return nil, apperr.ValidationError("Custom orders are created by customer submission")
	}

	row, err := decodeRow(kind, payload)
	if err != nil {
		return nil, err
	}

	if imageOf(row) == "" {
		return nil, apperr.ValidationError("Please provide an image!")
	}

	result, err := registry.persist(context, kind, row, editingID)
	if err != nil {
		return nil, err
	}

	if ck, ok := catalogKind(kind); ok {
		registry.catalog.Reload(context, ck)
	}
	return result, nil
}

func decodeRow(kind Kind, payload []byte) (any, error) {
	var target any
	switch kind {
	case KindSpecies:
		target = &SpeciesRow{}
	case KindArticle:
		target = &ArticleRow{}
	case KindBook:
		target = &BookRow{}
	case KindApparel:
		target = &ApparelRow{}
	default:
		return nil, apperr.ValidationError("Unknown record kind: " + string(kind))
	}

	if err := json.Unmarshal(payload, target); err != nil {
		return nil, apperr.ValidationError("Invalid form payload")
	}
	return target, nil
}

func imageOf(row any) string {
	switch r := row.(type) {
	case *SpeciesRow:
		return r.ImageURL
	case *ArticleRow:
		return r.ImageURL
	case *BookRow:
		return r.ImageURL
	case *ApparelRow:
		return r.ImageURL
	}
	return ""
}

func (registry *Registry) persist(context context.Context, kind Kind, row any, editingID *int64) (any, error) {
	switch r := row.(type) {
	case *SpeciesRow:
		entity := speciesFromRow(*r)
		if editingID != nil {
			if err := registry.species.UpdateSpecies(context, *editingID, entity); err != nil {
				return nil, err
			}
		} else {
			entity.ID = 0
			if err := registry.species.CreateSpecies(context, entity); err != nil {
				return nil, err
			}
		}
		return rowFromSpecies(entity), nil

	case *ArticleRow:
		entity := articleFromRow(*r)
		if editingID != nil {
			if err := registry.article.UpdateArticle(context, *editingID, entity); err != nil {
				return nil, err
			}
		} else {
			entity.ID = 0
			if err := registry.article.CreateArticle(context, entity); err != nil {
				return nil, err
			}
		}
		return rowFromArticle(entity), nil

	case *BookRow:
		entity := bookFromRow(*r)
		if editingID != nil {
			if err := registry.book.UpdateBook(context, *editingID, entity); err != nil {
				return nil, err
			}
		} else {
			entity.ID = 0
			if err := registry.book.CreateBook(context, entity); err != nil {
				return nil, err
			}
		}
		return rowFromBook(entity), nil

	case *ApparelRow:
		entity := apparelFromRow(*r)
		if editingID != nil {
			if err := registry.apparel.UpdateItem(context, *editingID, entity); err != nil {
				return nil, err
			}
		} else {
			entity.ID = 0
			if err := registry.apparel.CreateItem(context, entity); err != nil {
				return nil, err
			}
		}
		return rowFromApparel(entity), nil
	}

	return nil, apperr.Internal(nil)
}

// Delete removes a record. The confirmed flag is the API analog of the
// console's "Are you sure?" prompt; without it nothing is deleted.
func (registry *Registry) Delete(context context.Context, kind Kind, id int64, confirmed bool) error {
	if !confirmed {
		return apperr.ValidationError("Deletion requires confirmation")
	}

	var err error
	switch kind {
	case KindSpecies:
		err = registry.species.DeleteSpecies(context, id)
	case KindArticle:
		err = registry.article.DeleteArticle(context, id)
	case KindBook:
		err = registry.book.DeleteBook(context, id)
	case KindApparel:
		err = registry.apparel.DeleteItem(context, id)
	case KindOrder:
		err = registry.orders.DeleteOrder(context, id)
	}
	if err != nil {
		return err
	}

	if ck, ok := catalogKind(kind); ok {
		registry.catalog.Reload(context, ck)
	}
	return nil
}

// CompleteOrder flips a pending custom order to completed.
func (registry *Registry) CompleteOrder(context context.Context, id int64) (OrderRow, error) {
	o, err := registry.orders.MarkCompleted(context, id)
	if err != nil {
		return OrderRow{}, err
	}
	return rowFromOrder(o), nil
}
