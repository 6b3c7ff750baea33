package book

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

func (service *Service) ListBooks(context context.Context) ([]*Book, error) {
	return service.repo.ListBooks(context)
}

func (service *Service) GetBook(context context.Context, id int64) (*Book, error) {
	return service.repo.GetBook(context, id)
}

func (service *Service) CreateBook(context context.Context, b *Book) error {
	if err := validateBook(b); err != nil {
		return err
	}

	if err := service.repo.CreateBook(context, b); err != nil {
		return err
	}

	service.logger.Info("book_created", slog.String("title", b.Title))
	return nil
}

func (service *Service) UpdateBook(context context.Context, id int64, b *Book) error {
	b.ID = id
	if err := validateBook(b); err != nil {
		return err
	}

	if err := service.repo.UpdateBook(context, b); err != nil {
		return err
	}

	service.logger.Info("book_updated", slog.Int64("book_id", b.ID))
	return nil
}

func (service *Service) DeleteBook(context context.Context, id int64) error {
	if err := service.repo.DeleteBook(context, id); err != nil {
		return err
	}

	service.logger.Warn("book_deleted", slog.Int64("book_id", id))
	return nil
}

func validateBook(b *Book) error {
	validator := &validate.Validator{}

	validator.Required(FieldTitle, b.Title).MaxLen(FieldTitle, b.Title, 300)
	validator.Required(FieldAuthor, b.Author).MaxLen(FieldAuthor, b.Author, 200)
	validator.NonNegative(FieldPrice, b.Price)
	validator.Required(FieldImageURL, b.ImageURL).URL(FieldImageURL, b.ImageURL)

	if b.ExternalURL != nil && *b.ExternalURL != "" {
		validator.URL("externalUrl", *b.ExternalURL)
	}

	return validator.Err()
}
