package article

import (
	"context"
	"log/slog"

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

func (service *Service) ListArticles(context context.Context) ([]*Article, error) {
	return service.repo.ListArticles(context)
}

func (service *Service) GetArticle(context context.Context, id int64) (*Article, error) {
	return service.repo.GetArticle(context, id)
}

func (service *Service) CreateArticle(context context.Context, a *Article) error {
	if err := validateArticle(a); err != nil {
		return err
	}

	if err := service.repo.CreateArticle(context, a); err != nil {
		return err
	}

	service.logger.Info("article_created", slog.String("title", a.Title))
	return nil
}

func (service *Service) UpdateArticle(context context.Context, id int64, a *Article) error {
	if id < 0 {
		return apperr.Forbidden("built-in articles cannot be edited")
	}

	a.ID = id
	if err := validateArticle(a); err != nil {
		return err
	}

	if err := service.repo.UpdateArticle(context, a); err != nil {
		return err
	}

	service.logger.Info("article_updated", slog.Int64("article_id", a.ID))
	return nil
}

func (service *Service) DeleteArticle(context context.Context, id int64) error {
	if id < 0 {
		return apperr.Forbidden("built-in articles cannot be deleted")
	}

	if err := service.repo.DeleteArticle(context, id); err != nil {
		return err
	}

	service.logger.Warn("article_deleted", slog.Int64("article_id", id))
	return nil
}

func validateArticle(a *Article) error {
	validator := &validate.Validator{}

	validator.Required(FieldTitle, a.Title).MaxLen(FieldTitle, a.Title, 300)
	validator.Required(FieldSummary, a.Summary).MaxLen(FieldSummary, a.Summary, 1000)
	validator.Required(FieldImageURL, a.ImageURL).URL(FieldImageURL, a.ImageURL)

	for _, item := range a.Gallery {
		validator.URL("gallery", item)
	}

	return validator.Err()
}
