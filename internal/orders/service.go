package orders

import (
	"context"
	"log/slog"

	"github.com/featherworks/aviary/internal/catalog/apparel"
	"github.com/featherworks/aviary/internal/platform/apperr"
	"github.com/featherworks/aviary/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListOrders(context context.Context) ([]*CustomOrder, error) {
	return service.repo.ListOrders(context)
}

func (service *Service) GetOrder(context context.Context, id int64) (*CustomOrder, error) {
	return service.repo.GetOrder(context, id)
}

// CreateOrder validates and stores a new submission. Status is always
// pending regardless of the input.
func (service *Service) CreateOrder(context context.Context, o *CustomOrder) error {
	if err := validateOrder(o); err != nil {
		return err
	}

	o.Status = StatusPending
	if err := service.repo.CreateOrder(context, o); err != nil {
		return err
	}

	service.logger.Info("custom_order_created",
		slog.Int64("order_id", o.ID),
		slog.String("shirt_size", o.DesignSpecs.ShirtSize),
	)
	return nil
}

// MarkCompleted flips a pending order to completed.
func (service *Service) MarkCompleted(context context.Context, id int64) (*CustomOrder, error) {
	o, err := service.repo.GetOrder(context, id)
	if err != nil {
		return nil, err
	}

	if o.Status == StatusCompleted {
		return nil, apperr.Conflict("Order is already completed")
	}

	if err := service.repo.UpdateStatus(context, id, StatusCompleted); err != nil {
		return nil, err
	}

	o.Status = StatusCompleted
	service.logger.Info("custom_order_completed", slog.Int64("order_id", id))
	return o, nil
}

func (service *Service) DeleteOrder(context context.Context, id int64) error {
	if err := service.repo.DeleteOrder(context, id); err != nil {
		return err
	}

	service.logger.Warn("custom_order_deleted", slog.Int64("order_id", id))
	return nil
}

func validateOrder(o *CustomOrder) error {
	validator := &validate.Validator{}

	validator.Required(FieldImageURL, o.ImageURL).URL(FieldImageURL, o.ImageURL)
	validator.Required(FieldFabricColor, o.FabricColor).HexColor(FieldFabricColor, o.FabricColor)
	validator.Required(FieldEmail, o.Email).Email(FieldEmail, o.Email)
	validator.MaxLen("phone", o.Phone, 30)
	validator.OneOf(FieldShirtSize, o.DesignSpecs.ShirtSize, apparel.Sizes...)

	return validator.Err()
}
