package admin

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/featherworks/aviary/internal/catalog"
	"github.com/featherworks/aviary/internal/catalog/apparel"
	"github.com/featherworks/aviary/internal/catalog/article"
	"github.com/featherworks/aviary/internal/catalog/book"
	"github.com/featherworks/aviary/internal/catalog/species"
	"github.com/featherworks/aviary/internal/orders"
	"github.com/featherworks/aviary/internal/platform/apperr"
	"github.com/featherworks/aviary/internal/platform/dberr"
)

// memSpeciesRepo is an in-memory species repository for session tests.
type memSpeciesRepo struct {
	rows    map[int64]*species.Species
	nextID  int64
	failing bool
}

func newMemSpeciesRepo() *memSpeciesRepo {
	return &memSpeciesRepo{rows: map[int64]*species.Species{}, nextID: 1}
}

func (m *memSpeciesRepo) ListSpecies(context.Context) ([]*species.Species, error) {
	if m.failing {
		return nil, errors.New("backend unavailable")
	}
	var list []*species.Species
	for _, s := range m.rows {
		list = append(list, s)
	}
	return list, nil
}

func (m *memSpeciesRepo) GetSpecies(_ context.Context, id int64) (*species.Species, error) {
	s, ok := m.rows[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return s, nil
}

func (m *memSpeciesRepo) CreateSpecies(_ context.Context, s *species.Species) error {
	if m.failing {
		return errors.New("backend unavailable")
	}
	s.ID = m.nextID
	m.nextID++
	clone := *s
	m.rows[s.ID] = &clone
	return nil
}

func (m *memSpeciesRepo) UpdateSpecies(_ context.Context, s *species.Species) error {
	if m.failing {
		return errors.New("backend unavailable")
	}
	if _, ok := m.rows[s.ID]; !ok {
		return dberr.ErrNotFound
	}
	clone := *s
	m.rows[s.ID] = &clone
	return nil
}

func (m *memSpeciesRepo) DeleteSpecies(_ context.Context, id int64) error {
	if _, ok := m.rows[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

type emptyArticleRepo struct{}

func (emptyArticleRepo) ListArticles(context.Context) ([]*article.Article, error) { return nil, nil }
func (emptyArticleRepo) GetArticle(context.Context, int64) (*article.Article, error) {
	return nil, dberr.ErrNotFound
}
func (emptyArticleRepo) CreateArticle(context.Context, *article.Article) error { return nil }
func (emptyArticleRepo) UpdateArticle(context.Context, *article.Article) error { return nil }
func (emptyArticleRepo) DeleteArticle(context.Context, int64) error            { return nil }

type emptyBookRepo struct{}

func (emptyBookRepo) ListBooks(context.Context) ([]*book.Book, error) { return nil, nil }
func (emptyBookRepo) GetBook(context.Context, int64) (*book.Book, error) {
	return nil, dberr.ErrNotFound
}
func (emptyBookRepo) CreateBook(context.Context, *book.Book) error { return nil }
func (emptyBookRepo) UpdateBook(context.Context, *book.Book) error { return nil }
func (emptyBookRepo) DeleteBook(context.Context, int64) error      { return nil }

type emptyApparelRepo struct{}

func (emptyApparelRepo) ListItems(context.Context) ([]*apparel.Item, error) { return nil, nil }
func (emptyApparelRepo) GetItem(context.Context, int64) (*apparel.Item, error) {
	return nil, dberr.ErrNotFound
}
func (emptyApparelRepo) CreateItem(context.Context, *apparel.Item) error { return nil }
func (emptyApparelRepo) UpdateItem(context.Context, *apparel.Item) error { return nil }
func (emptyApparelRepo) DeleteItem(context.Context, int64) error         { return nil }

type emptyOrderRepo struct{}

func (emptyOrderRepo) ListOrders(context.Context) ([]*orders.CustomOrder, error) { return nil, nil }
func (emptyOrderRepo) GetOrder(context.Context, int64) (*orders.CustomOrder, error) {
	return nil, dberr.ErrNotFound
}
func (emptyOrderRepo) CreateOrder(context.Context, *orders.CustomOrder) error  { return nil }
func (emptyOrderRepo) UpdateStatus(context.Context, int64, string) error       { return nil }
func (emptyOrderRepo) DeleteOrder(context.Context, int64) error                { return nil }

func newTestRegistry(speciesRepo *memSpeciesRepo) *Registry {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	speciesSvc := species.NewService(speciesRepo, logger)
	articleSvc := article.NewService(emptyArticleRepo{}, logger)
	bookSvc := book.NewService(emptyBookRepo{}, logger)
	apparelSvc := apparel.NewService(emptyApparelRepo{}, logger)
	ordersSvc := orders.NewService(emptyOrderRepo{}, logger)

	store := catalog.NewStore(speciesSvc, articleSvc, bookSvc, apparelSvc, logger)
	return NewRegistry(speciesSvc, articleSvc, bookSvc, apparelSvc, ordersSvc, store, logger)
}

const validSpeciesForm = `{
	"name": "Bald Eagle",
	"scientific_name": "Haliaeetus leucocephalus",
	"family": "Accipitridae",
	"image_url": "/images/bald-eagle.png",
	"facts": ["National bird of the United States"]
}`

func TestSession_SubmitCreate(t *testing.T) {
	repo := newMemSpeciesRepo()
	registry := newTestRegistry(repo)

	session := NewSession()
	session.Begin(KindSpecies, nil, []byte(validSpeciesForm))
	assert.Equal(t, StateEditing, session.State())

	result, err := session.Submit(context.Background(), registry)
	require.NoError(t, err)

	row, ok := result.(SpeciesRow)
	require.True(t, ok)
	assert.Equal(t, int64(1), row.ID)
	assert.Equal(t, "Haliaeetus leucocephalus", row.ScientificName)

	assert.Equal(t, StateIdle, session.State(), "successful submit returns to idle")
	assert.Len(t, repo.rows, 1)
}

func TestSession_SubmitStripsClientID(t *testing.T) {
	repo := newMemSpeciesRepo()
	repo.nextID = 10
	registry := newTestRegistry(repo)

	form := `{"id": 999, "name": "Barn Owl", "image_url": "/images/barn-owl.png"}`
	session := NewSession()
	session.Begin(KindSpecies, nil, []byte(form))

	result, err := session.Submit(context.Background(), registry)
	require.NoError(t, err)

	row := result.(SpeciesRow)
	assert.Equal(t, int64(10), row.ID, "a create ignores any client-supplied id")
}

func TestSession_SubmitWithoutImage(t *testing.T) {
	repo := newMemSpeciesRepo()
	registry := newTestRegistry(repo)

	session := NewSession()
	session.Begin(KindSpecies, nil, []byte(`{"name": "Imageless Bird"}`))

	_, err := session.Submit(context.Background(), registry)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	assert.Empty(t, repo.rows, "no backend call without an image")
	assert.Equal(t, StateEditing, session.State(), "failed submit keeps the form open")
}

func TestSession_SubmitBackendFailureStaysEditing(t *testing.T) {
	repo := newMemSpeciesRepo()
	repo.failing = true
	registry := newTestRegistry(repo)

	session := NewSession()
	session.Begin(KindSpecies, nil, []byte(validSpeciesForm))

	_, err := session.Submit(context.Background(), registry)
	require.Error(t, err)

	assert.Equal(t, StateEditing, session.State())
	assert.JSONEq(t, validSpeciesForm, string(session.Form()), "form survives a failed submit")

	// The backend recovers and the retry succeeds with the same form.
	repo.failing = false
	_, err = session.Submit(context.Background(), registry)
	require.NoError(t, err)
	assert.Equal(t, StateIdle, session.State())
}

func TestSession_SubmitRefusedDuringUpload(t *testing.T) {
	repo := newMemSpeciesRepo()
	registry := newTestRegistry(repo)

	session := NewSession()
	session.Begin(KindSpecies, nil, []byte(validSpeciesForm))
	session.StartUpload()

	_, err := session.Submit(context.Background(), registry)
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)
	assert.Empty(t, repo.rows)

	session.FinishUpload()
	_, err = session.Submit(context.Background(), registry)
	require.NoError(t, err)
}

func TestSession_SubmitUpdate(t *testing.T) {
	repo := newMemSpeciesRepo()
	registry := newTestRegistry(repo)
	ctx := context.Background()

	session := NewSession()
	session.Begin(KindSpecies, nil, []byte(validSpeciesForm))
	_, err := session.Submit(ctx, registry)
	require.NoError(t, err)

	id := int64(1)
	updated := `{"name": "Bald Eagle (updated)", "image_url": "/images/bald-eagle-2.png"}`
	session.Begin(KindSpecies, &id, []byte(updated))

	result, err := session.Submit(ctx, registry)
	require.NoError(t, err)

	row := result.(SpeciesRow)
	assert.Equal(t, int64(1), row.ID)
	assert.Equal(t, "Bald Eagle (updated)", repo.rows[1].Name)
	assert.Len(t, repo.rows, 1, "update mutates in place, no new row")
}

func TestSession_SubmitWithoutEdit(t *testing.T) {
	registry := newTestRegistry(newMemSpeciesRepo())

	session := NewSession()
	_, err := session.Submit(context.Background(), registry)
	require.Error(t, err)
}

func TestSession_Cancel(t *testing.T) {
	session := NewSession()
	session.Begin(KindSpecies, nil, []byte(validSpeciesForm))
	session.Cancel()

	assert.Equal(t, StateIdle, session.State())
	assert.Nil(t, session.Form())
}

func TestRegistry_SubmitOrdersRefused(t *testing.T) {
	registry := newTestRegistry(newMemSpeciesRepo())

	_, err := registry.Submit(context.Background(), KindOrder, []byte(`{}`), nil)
	require.Error(t, err)
}

func TestRegistry_DeleteRequiresConfirmation(t *testing.T) {
	repo := newMemSpeciesRepo()
	registry := newTestRegistry(repo)
	ctx := context.Background()

	session := NewSession()
	session.Begin(KindSpecies, nil, []byte(validSpeciesForm))
	_, err := session.Submit(ctx, registry)
	require.NoError(t, err)

	err = registry.Delete(ctx, KindSpecies, 1, false)
	require.Error(t, err)
	assert.Len(t, repo.rows, 1, "unconfirmed delete leaves the record")

	require.NoError(t, registry.Delete(ctx, KindSpecies, 1, true))
	assert.Empty(t, repo.rows)
}

func TestRegistry_LoadAllFailureYieldsEmptyList(t *testing.T) {
	repo := newMemSpeciesRepo()
	repo.failing = true
	registry := newTestRegistry(repo)

	rows := registry.LoadAll(context.Background(), KindSpecies)
	assert.Equal(t, []SpeciesRow{}, rows)
}

func TestParseKind(t *testing.T) {
	for _, valid := range []string{"species", "articles", "books", "apparel", "orders"} {
		_, err := ParseKind(valid)
		assert.NoError(t, err, valid)
	}

	_, err := ParseKind("reptiles")
	assert.Error(t, err)
}
