package cart

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/featherworks/aviary/internal/platform/apperr"
	"github.com/featherworks/aviary/internal/platform/validate"
)

// Service applies cart mutations against the session store.
//
// Persistence is best-effort: a failed load yields an empty cart and a
// failed save is logged and ignored. The client's next request simply
// re-reads whatever state survived.
type Service struct {
	store  SessionStore
	logger *slog.Logger
}

func NewService(store SessionStore, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Get returns the cart for a session.
func (service *Service) Get(context context.Context, sessionID string) *Cart {
	return service.load(context, sessionID)
}

// Add validates and merges an item into the session's cart.
func (service *Service) Add(context context.Context, sessionID string, item LineItem) (*Cart, error) {
	if err := validateItem(item); err != nil {
		return nil, err
	}

	c := service.load(context, sessionID)
	c.Add(item)
	service.save(context, sessionID, c)

	service.logger.Info("cart_item_added",
		slog.String("product_id", item.ProductID),
		slog.String("size", item.SelectedSize),
	)
	return c, nil
}

// Remove deletes the line matching (product id, selected size).
func (service *Service) Remove(context context.Context, sessionID, productID, selectedSize string) *Cart {
	c := service.load(context, sessionID)
	c.Remove(productID, selectedSize)
	service.save(context, sessionID, c)
	return c
}

// Clear empties the session's cart.
func (service *Service) Clear(context context.Context, sessionID string) *Cart {
	c := service.load(context, sessionID)
	c.Clear()

	if err := service.store.DeleteCart(context, sessionID); err != nil {
		service.logger.Warn("cart_delete_failed", slog.Any("error", err))
	}
	return c
}

// OrderSummary is the simulated checkout confirmation. No payment is
// processed; the summary echoes the cart at the moment of checkout.
type OrderSummary struct {
	ConfirmationID string     `json:"confirmationId"`
	Items          []LineItem `json:"items"`
	Total          float64    `json:"total"`
	PlacedAt       time.Time  `json:"placedAt"`
}

// Checkout confirms the cart, clears it, and returns the order summary.
// An empty cart cannot be checked out.
func (service *Service) Checkout(context context.Context, sessionID string) (*OrderSummary, error) {
	c := service.load(context, sessionID)
	if len(c.Items) == 0 {
		return nil, apperr.ValidationError("Cart is empty")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, apperr.Internal(err)
	}

	summary := &OrderSummary{
		ConfirmationID: id.String(),
		Items:          c.Items,
		Total:          c.Total(),
		PlacedAt:       time.Now().UTC(),
	}

	if err := service.store.DeleteCart(context, sessionID); err != nil {
		service.logger.Warn("cart_delete_failed", slog.Any("error", err))
	}

	service.logger.Info("cart_checked_out",
		slog.String("confirmation_id", summary.ConfirmationID),
		slog.Int("items", len(summary.Items)),
	)
	return summary, nil
}

func (service *Service) load(context context.Context, sessionID string) *Cart {
	c, err := service.store.LoadCart(context, sessionID)
	if err != nil {
		service.logger.Warn("cart_load_failed", slog.Any("error", err))
		return &Cart{}
	}
	return c
}

func (service *Service) save(context context.Context, sessionID string, c *Cart) {
	if err := service.store.SaveCart(context, sessionID, c); err != nil {
		service.logger.Warn("cart_save_failed", slog.Any("error", err))
	}
}

func validateItem(item LineItem) error {
	validator := &validate.Validator{}

	validator.Required("id", item.ProductID)
	validator.Required("name", item.Name)
	validator.NonNegative("price", item.Price)
	validator.OneOf("kind", string(item.Kind), string(KindBook), string(KindShirt), string(KindCustom))

	return validator.Err()
}
