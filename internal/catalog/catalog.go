/*
Package catalog serves the public read side of the site from in-memory
snapshots.

Architecture:

  - Per-kind packages (species, article, book, apparel) own the entities,
    validation, and PostgreSQL repositories.
  - [Store] loads one snapshot per kind and serves reads lock-free of the
    database; admin writes trigger a reload of the affected kind.
  - A failed load of one kind never affects the others: the kind falls back
    to an empty collection and the failure is logged.
*/
package catalog

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/featherworks/aviary/internal/catalog/apparel"
	"github.com/featherworks/aviary/internal/catalog/article"
	"github.com/featherworks/aviary/internal/catalog/book"
	"github.com/featherworks/aviary/internal/catalog/species"
	"github.com/featherworks/aviary/pkg/slug"
)

// Kind identifies one snapshot collection.
type Kind string

const (
	KindSpecies  Kind = "species"
	KindArticles Kind = "articles"
	KindBooks    Kind = "books"
	KindApparel  Kind = "apparel"
)

// GroupFallback is the bucket label for species without category or family
// on the public grouped view.
const GroupFallback = "Other"

// Store holds the current catalog snapshots.
type Store struct {
	speciesSvc *species.Service
	articleSvc *article.Service
	bookSvc    *book.Service
	apparelSvc *apparel.Service
	logger     *slog.Logger

	mu     sync.RWMutex
	specs  []*species.Species
	posts  []*article.Article
	books  []*book.Book
	garbs  []*apparel.Item
}

func NewStore(
	speciesSvc *species.Service,
	articleSvc *article.Service,
	bookSvc *book.Service,
	apparelSvc *apparel.Service,
	logger *slog.Logger,
) *Store {
	return &Store{
		speciesSvc: speciesSvc,
		articleSvc: articleSvc,
		bookSvc:    bookSvc,
		apparelSvc: apparelSvc,
		logger:     logger,
	}
}

// Load refreshes every snapshot. A kind whose query fails keeps an empty
// collection; the error is logged and the other kinds load normally.
func (store *Store) Load(context context.Context) {
	for _, kind := range []Kind{KindSpecies, KindArticles, KindBooks, KindApparel} {
		store.Reload(context, kind)
	}
}

// Reload refreshes the snapshot of a single kind.
func (store *Store) Reload(context context.Context, kind Kind) {
	switch kind {
	case KindSpecies:
		list, err := store.speciesSvc.ListSpecies(context)
		if err != nil {
			store.logger.Error("catalog_load_failed", slog.String("kind", string(kind)), slog.Any("error", err))
			list = nil
		}
		store.mu.Lock()
		store.specs = list
		store.mu.Unlock()

	case KindArticles:
		list, err := store.articleSvc.ListArticles(context)
		if err != nil {
			store.logger.Error("catalog_load_failed", slog.String("kind", string(kind)), slog.Any("error", err))
			list = nil
		}
		store.mu.Lock()
		store.posts = mergeSeedArticles(list)
		store.mu.Unlock()

	case KindBooks:
		list, err := store.bookSvc.ListBooks(context)
		if err != nil {
			store.logger.Error("catalog_load_failed", slog.String("kind", string(kind)), slog.Any("error", err))
			list = nil
		}
		store.mu.Lock()
		store.books = list
		store.mu.Unlock()

	case KindApparel:
		list, err := store.apparelSvc.ListItems(context)
		if err != nil {
			store.logger.Error("catalog_load_failed", slog.String("kind", string(kind)), slog.Any("error", err))
			list = nil
		}
		store.mu.Lock()
		store.garbs = list
		store.mu.Unlock()
	}
}

// mergeSeedArticles appends the built-in seed entries after the editor rows.
// Editor rows arrive id-descending; seed ids are negative so the combined
// list stays id-descending.
func mergeSeedArticles(rows []*article.Article) []*article.Article {
	seeds := article.Seed()
	merged := make([]*article.Article, 0, len(rows)+len(seeds))
	merged = append(merged, rows...)
	for i := range seeds {
		merged = append(merged, &seeds[i])
	}
	return merged
}

// # Snapshot accessors

// Species returns the current species snapshot.
func (store *Store) Species() []*species.Species {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.specs
}

// SpeciesBySlug resolves a species by the URL slug of its common name.
func (store *Store) SpeciesBySlug(s string) (*species.Species, bool) {
	store.mu.RLock()
	defer store.mu.RUnlock()
	for _, sp := range store.specs {
		if slug.From(sp.Name) == s {
			return sp, true
		}
	}
	return nil, false
}

// SpeciesGroups returns the grouped browse view of the species snapshot.
func (store *Store) SpeciesGroups() []species.Group {
	return species.GroupAll(store.Species(), GroupFallback)
}

// Families returns the distinct taxonomic families in the snapshot, sorted.
func (store *Store) Families() []string {
	store.mu.RLock()
	defer store.mu.RUnlock()

	seen := map[string]bool{}
	var families []string
	for _, sp := range store.specs {
		if sp.Family == "" || seen[sp.Family] {
			continue
		}
		seen[sp.Family] = true
		families = append(families, sp.Family)
	}
	sort.Strings(families)
	return families
}

// Articles returns the merged article snapshot (editor rows then seeds).
func (store *Store) Articles() []*article.Article {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.posts
}

// Article returns one article by id, including seed entries.
func (store *Store) Article(id int64) (*article.Article, bool) {
	store.mu.RLock()
	defer store.mu.RUnlock()
	for _, a := range store.posts {
		if a.ID == id {
			return a, true
		}
	}
	return nil, false
}

// Books returns the current book snapshot.
func (store *Store) Books() []*book.Book {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.books
}

// Book returns one book by id.
func (store *Store) Book(id int64) (*book.Book, bool) {
	store.mu.RLock()
	defer store.mu.RUnlock()
	for _, b := range store.books {
		if b.ID == id {
			return b, true
		}
	}
	return nil, false
}

// Apparel returns the current apparel snapshot.
func (store *Store) Apparel() []*apparel.Item {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.garbs
}

// ApparelItem returns one apparel item by id.
func (store *Store) ApparelItem(id int64) (*apparel.Item, bool) {
	store.mu.RLock()
	defer store.mu.RUnlock()
	for _, item := range store.garbs {
		if item.ID == id {
			return item, true
		}
	}
	return nil, false
}
