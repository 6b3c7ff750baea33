package cart

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	carts   map[string]*Cart
	loadErr error
	saveErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{carts: map[string]*Cart{}}
}

func (m *memoryStore) LoadCart(_ context.Context, sessionID string) (*Cart, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if c, ok := m.carts[sessionID]; ok {
		clone := *c
		return &clone, nil
	}
	return &Cart{}, nil
}

func (m *memoryStore) SaveCart(_ context.Context, sessionID string, c *Cart) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	clone := *c
	m.carts[sessionID] = &clone
	return nil
}

func (m *memoryStore) DeleteCart(_ context.Context, sessionID string) error {
	delete(m.carts, sessionID)
	return nil
}

func newTestService(store SessionStore) *Service {
	return NewService(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestService_AddAndGet(t *testing.T) {
	service := newTestService(newMemoryStore())
	ctx := context.Background()

	_, err := service.Add(ctx, "sess-1", tee("M"))
	require.NoError(t, err)
	_, err = service.Add(ctx, "sess-1", tee("M"))
	require.NoError(t, err)

	c := service.Get(ctx, "sess-1")
	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)

	// Sessions are isolated.
	assert.Empty(t, service.Get(ctx, "sess-2").Items)
}

func TestService_Add_RejectsInvalidItem(t *testing.T) {
	store := newMemoryStore()
	service := newTestService(store)

	_, err := service.Add(context.Background(), "sess-1", LineItem{Name: "nameless"})
	require.Error(t, err)
	assert.Empty(t, store.carts, "validation failure makes no store call")
}

func TestService_LoadFailureYieldsEmptyCart(t *testing.T) {
	store := newMemoryStore()
	store.loadErr = errors.New("redis down")
	service := newTestService(store)

	c := service.Get(context.Background(), "sess-1")
	assert.Empty(t, c.Items, "load failure degrades to empty cart")
}

func TestService_SaveFailureIsNonFatal(t *testing.T) {
	store := newMemoryStore()
	store.saveErr = errors.New("redis down")
	service := newTestService(store)

	c, err := service.Add(context.Background(), "sess-1", tee("M"))
	require.NoError(t, err, "save failure never surfaces to the caller")
	assert.Len(t, c.Items, 1, "the mutated cart is still returned")
}

func TestService_Checkout(t *testing.T) {
	store := newMemoryStore()
	service := newTestService(store)
	ctx := context.Background()

	_, err := service.Add(ctx, "sess-1", tee("M"))
	require.NoError(t, err)
	_, err = service.Add(ctx, "sess-1", LineItem{ProductID: "b1", Name: "The Sibley Guide to Birds", Price: 45.00, Kind: KindBook})
	require.NoError(t, err)

	summary, err := service.Checkout(ctx, "sess-1")
	require.NoError(t, err)
	assert.NotEmpty(t, summary.ConfirmationID)
	assert.Len(t, summary.Items, 2)
	assert.InDelta(t, 73.00, summary.Total, 0.001)

	assert.Empty(t, service.Get(ctx, "sess-1").Items, "checkout clears the cart")
}

func TestService_Checkout_EmptyCart(t *testing.T) {
	service := newTestService(newMemoryStore())

	_, err := service.Checkout(context.Background(), "sess-1")
	require.Error(t, err)
}
