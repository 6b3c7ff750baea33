package orders

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/featherworks/aviary/internal/platform/apperr"
	"github.com/featherworks/aviary/internal/platform/dberr"
)

type stubOrderRepo struct {
	orders map[int64]*CustomOrder
	nextID int64
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: map[int64]*CustomOrder{}, nextID: 1}
}

func (s *stubOrderRepo) ListOrders(context.Context) ([]*CustomOrder, error) {
	var list []*CustomOrder
	for _, o := range s.orders {
		list = append(list, o)
	}
	return list, nil
}

func (s *stubOrderRepo) GetOrder(_ context.Context, id int64) (*CustomOrder, error) {
	o, ok := s.orders[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	clone := *o
	return &clone, nil
}

func (s *stubOrderRepo) CreateOrder(_ context.Context, o *CustomOrder) error {
	o.ID = s.nextID
	s.nextID++
	clone := *o
	s.orders[o.ID] = &clone
	return nil
}

func (s *stubOrderRepo) UpdateStatus(_ context.Context, id int64, status string) error {
	o, ok := s.orders[id]
	if !ok {
		return dberr.ErrNotFound
	}
	o.Status = status
	return nil
}

func (s *stubOrderRepo) DeleteOrder(_ context.Context, id int64) error {
	if _, ok := s.orders[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(s.orders, id)
	return nil
}

func validOrder() *CustomOrder {
	return &CustomOrder{
		ImageURL:    "/uploads/1700000000000-art.png",
		FabricColor: "#1a2b3c",
		Email:       "customer@example.com",
		Phone:       "555-0100",
		DesignSpecs: DesignSpecs{X: 50, Y: 40, Size: 120, ShirtSize: "L"},
	}
}

func newTestService(repo Repository) *Service {
	return NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestService_CreateOrder(t *testing.T) {
	repo := newStubOrderRepo()
	service := newTestService(repo)

	o := validOrder()
	o.Status = "completed" // client-provided status is ignored

	require.NoError(t, service.CreateOrder(context.Background(), o))
	assert.Equal(t, StatusPending, o.Status)
	assert.NotZero(t, o.ID)
}

func TestService_CreateOrder_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CustomOrder)
	}{
		{"missing image", func(o *CustomOrder) { o.ImageURL = "" }},
		{"bad fabric color", func(o *CustomOrder) { o.FabricColor = "red" }},
		{"bad email", func(o *CustomOrder) { o.Email = "not-an-email" }},
		{"unknown shirt size", func(o *CustomOrder) { o.DesignSpecs.ShirtSize = "XXXXL" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := newStubOrderRepo()
			service := newTestService(repo)

			o := validOrder()
			tc.mutate(o)

			err := service.CreateOrder(context.Background(), o)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
			assert.Empty(t, repo.orders, "validation failure makes no backend call")
		})
	}
}

func TestService_MarkCompleted(t *testing.T) {
	repo := newStubOrderRepo()
	service := newTestService(repo)
	ctx := context.Background()

	o := validOrder()
	require.NoError(t, service.CreateOrder(ctx, o))

	done, err := service.MarkCompleted(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, done.Status)

	// A second completion is rejected.
	_, err = service.MarkCompleted(ctx, o.ID)
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)
}

func TestService_MarkCompleted_NotFound(t *testing.T) {
	service := newTestService(newStubOrderRepo())

	_, err := service.MarkCompleted(context.Background(), 404)
	require.Error(t, err)
}
