package catalog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/featherworks/aviary/internal/catalog/apparel"
	"github.com/featherworks/aviary/internal/catalog/article"
	"github.com/featherworks/aviary/internal/catalog/book"
	"github.com/featherworks/aviary/internal/catalog/species"
	"github.com/featherworks/aviary/pkg/pointer"
)

type stubSpeciesRepo struct {
	list []*species.Species
	err  error
}

func (s *stubSpeciesRepo) ListSpecies(context.Context) ([]*species.Species, error) {
	return s.list, s.err
}
func (s *stubSpeciesRepo) GetSpecies(context.Context, int64) (*species.Species, error) {
	return nil, errors.New("not implemented")
}
func (s *stubSpeciesRepo) CreateSpecies(context.Context, *species.Species) error { return nil }
func (s *stubSpeciesRepo) UpdateSpecies(context.Context, *species.Species) error { return nil }
func (s *stubSpeciesRepo) DeleteSpecies(context.Context, int64) error            { return nil }

type stubArticleRepo struct {
	list []*article.Article
	err  error
}

func (s *stubArticleRepo) ListArticles(context.Context) ([]*article.Article, error) {
	return s.list, s.err
}
func (s *stubArticleRepo) GetArticle(context.Context, int64) (*article.Article, error) {
	return nil, errors.New("not implemented")
}
func (s *stubArticleRepo) CreateArticle(context.Context, *article.Article) error { return nil }
func (s *stubArticleRepo) UpdateArticle(context.Context, *article.Article) error { return nil }
func (s *stubArticleRepo) DeleteArticle(context.Context, int64) error            { return nil }

type stubBookRepo struct {
	list []*book.Book
	err  error
}

func (s *stubBookRepo) ListBooks(context.Context) ([]*book.Book, error) { return s.list, s.err }
func (s *stubBookRepo) GetBook(context.Context, int64) (*book.Book, error) {
	return nil, errors.New("not implemented")
}
func (s *stubBookRepo) CreateBook(context.Context, *book.Book) error { return nil }
func (s *stubBookRepo) UpdateBook(context.Context, *book.Book) error { return nil }
func (s *stubBookRepo) DeleteBook(context.Context, int64) error      { return nil }

type stubApparelRepo struct {
	list []*apparel.Item
	err  error
}

func (s *stubApparelRepo) ListItems(context.Context) ([]*apparel.Item, error) { return s.list, s.err }
func (s *stubApparelRepo) GetItem(context.Context, int64) (*apparel.Item, error) {
	return nil, errors.New("not implemented")
}
func (s *stubApparelRepo) CreateItem(context.Context, *apparel.Item) error { return nil }
func (s *stubApparelRepo) UpdateItem(context.Context, *apparel.Item) error { return nil }
func (s *stubApparelRepo) DeleteItem(context.Context, int64) error         { return nil }

func newTestStore(sp *stubSpeciesRepo, ar *stubArticleRepo, bk *stubBookRepo, ap *stubApparelRepo) *Store {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewStore(
		species.NewService(sp, logger),
		article.NewService(ar, logger),
		book.NewService(bk, logger),
		apparel.NewService(ap, logger),
		logger,
	)
}

func TestStore_Load_PartialFailureIsolated(t *testing.T) {
	store := newTestStore(
		&stubSpeciesRepo{err: errors.New("connection refused")},
		&stubArticleRepo{},
		&stubBookRepo{list: []*book.Book{{ID: 1, Title: "The Sibley Guide to Birds"}}},
		&stubApparelRepo{list: []*apparel.Item{{ID: 1, Name: "Northern Cardinal Tee"}}},
	)

	store.Load(context.Background())

	assert.Empty(t, store.Species(), "failed kind falls back to empty")
	assert.Len(t, store.Books(), 1, "other kinds load normally")
	assert.Len(t, store.Apparel(), 1)
}

func TestStore_Articles_SeedMerge(t *testing.T) {
	store := newTestStore(
		&stubSpeciesRepo{},
		&stubArticleRepo{list: []*article.Article{
			{ID: 7, Title: "Editor Row"},
			{ID: 2, Title: "Older Editor Row"},
		}},
		&stubBookRepo{},
		&stubApparelRepo{},
	)

	store.Load(context.Background())

	got := store.Articles()
	require.Len(t, got, 2+len(article.Seed()))

	// Editor rows first, seeds after, ids strictly descending overall.
	assert.Equal(t, int64(7), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
	assert.Equal(t, int64(-1), got[2].ID)
	assert.Equal(t, "Unexpected Migration Patterns Observed", got[2].Title)

	seed, ok := store.Article(-3)
	require.True(t, ok, "seed articles resolvable by id")
	assert.Equal(t, "Sarah Beaks", seed.Author)
}

func TestStore_Articles_SeedOnlyWhenRepoFails(t *testing.T) {
	store := newTestStore(
		&stubSpeciesRepo{},
		&stubArticleRepo{err: errors.New("timeout")},
		&stubBookRepo{},
		&stubApparelRepo{},
	)

	store.Load(context.Background())

	assert.Len(t, store.Articles(), len(article.Seed()), "seeds survive a repo failure")
}

func TestStore_SpeciesBySlug(t *testing.T) {
	store := newTestStore(
		&stubSpeciesRepo{list: []*species.Species{
			{ID: 1, Name: "Bald Eagle", Family: "Accipitridae"},
			{ID: 2, Name: "Scarlet Macaw", Family: "Psittacidae"},
		}},
		&stubArticleRepo{},
		&stubBookRepo{},
		&stubApparelRepo{},
	)

	store.Load(context.Background())

	sp, ok := store.SpeciesBySlug("bald-eagle")
	require.True(t, ok)
	assert.Equal(t, int64(1), sp.ID)

	_, ok = store.SpeciesBySlug("dodo")
	assert.False(t, ok)
}

func TestStore_SpeciesGroups_Fallback(t *testing.T) {
	store := newTestStore(
		&stubSpeciesRepo{list: []*species.Species{
			{ID: 1, Name: "Great Horned Owl", Category: pointer.To("Owls")},
			{ID: 2, Name: "Bald Eagle", Family: "Accipitridae"},
			{ID: 3, Name: "Mystery Bird"},
		}},
		&stubArticleRepo{},
		&stubBookRepo{},
		&stubApparelRepo{},
	)

	store.Load(context.Background())

	groups := store.SpeciesGroups()
	require.Len(t, groups, 3)

	// Alphabetical bucket order: Accipitridae, Other, Owls.
	assert.Equal(t, "Accipitridae", groups[0].Name)
	assert.Equal(t, "Other", groups[1].Name)
	assert.Equal(t, "Owls", groups[2].Name)
}

func TestStore_Families(t *testing.T) {
	store := newTestStore(
		&stubSpeciesRepo{list: []*species.Species{
			{ID: 1, Name: "Bald Eagle", Family: "Accipitridae"},
			{ID: 2, Name: "Golden Eagle", Family: "Accipitridae"},
			{ID: 3, Name: "Mallard", Family: "Anatidae"},
			{ID: 4, Name: "Mystery Bird"},
		}},
		&stubArticleRepo{},
		&stubBookRepo{},
		&stubApparelRepo{},
	)

	store.Load(context.Background())

	assert.Equal(t, []string{"Accipitridae", "Anatidae"}, store.Families())
}
