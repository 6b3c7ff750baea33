package apparel

import (
	"context"
	"log/slog"

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

func (service *Service) ListItems(context context.Context) ([]*Item, error) {
	return service.repo.ListItems(context)
}

func (service *Service) GetItem(context context.Context, id int64) (*Item, error) {
	return service.repo.GetItem(context, id)
}

func (service *Service) CreateItem(context context.Context, item *Item) error {
	if err := validateItem(item); err != nil {
		return err
	}

	if err := service.repo.CreateItem(context, item); err != nil {
		return err
	}

	service.logger.Info("apparel_created", slog.String("name", item.Name))
	return nil
}

func (service *Service) UpdateItem(context context.Context, id int64, item *Item) error {
	item.ID = id
	if err := validateItem(item); err != nil {
		return err
	}

	if err := service.repo.UpdateItem(context, item); err != nil {
		return err
	}

	service.logger.Info("apparel_updated", slog.Int64("apparel_id", item.ID))
	return nil
}

func (service *Service) DeleteItem(context context.Context, id int64) error {
	if err := service.repo.DeleteItem(context, id); err != nil {
		return err
	}

	service.logger.Warn("apparel_deleted", slog.Int64("apparel_id", id))
	return nil
}

func validateItem(item *Item) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, item.Name).MaxLen(FieldName, item.Name, 200)
	validator.NonNegative(FieldPrice, item.Price)
	validator.Required(FieldImageURL, item.ImageURL).URL(FieldImageURL, item.ImageURL)

	for _, size := range item.Sizes {
		validator.OneOf(FieldSizes, size, Sizes...)
	}

	if item.ExternalURL != nil && *item.ExternalURL != "" {
		validator.URL("externalUrl", *item.ExternalURL)
	}

	return validator.Err()
}
