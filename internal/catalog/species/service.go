package species

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

func (service *Service) ListSpecies(context context.Context) ([]*Species, error) {
	return service.repo.ListSpecies(context)
}

func (service *Service) GetSpecies(context context.Context, id int64) (*Species, error) {
	return service.repo.GetSpecies(context, id)
}

func (service *Service) CreateSpecies(context context.Context, s *Species) error {
	if err := validateSpecies(s); err != nil {
		return err
	}

	if err := service.repo.CreateSpecies(context, s); err != nil {
		return err
	}

	service.logger.Info("species_created", slog.String("name", s.Name))
	return nil
}

func (service *Service) UpdateSpecies(context context.Context, id int64, s *Species) error {
	s.ID = id
	if err := validateSpecies(s); err != nil {
		return err
	}

	if err := service.repo.UpdateSpecies(context, s); err != nil {
		return err
	}

	service.logger.Info("species_updated", slog.Int64("species_id", s.ID))
	return nil
}

func (service *Service) DeleteSpecies(context context.Context, id int64) error {
	if err := service.repo.DeleteSpecies(context, id); err != nil {
		return err
	}

	service.logger.Warn("species_deleted", slog.Int64("species_id", id))
	return nil
}

// validateSpecies applies the shared create/update rules.
//
// Category is deliberately unchecked against [Categories]: the editor
// offers the fixed set but accepts a free-text custom value.
func validateSpecies(s *Species) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, s.Name).MaxLen(FieldName, s.Name, 200)
	validator.MaxLen(FieldScientificName, s.ScientificName, 200)
	validator.Required(FieldImageURL, s.ImageURL).URL(FieldImageURL, s.ImageURL)

	for _, fact := range s.Facts {
		validator.MaxLen(FieldFacts, fact, 500)
	}

	return validator.Err()
}
