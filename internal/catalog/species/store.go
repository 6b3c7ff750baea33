package species

import "context"

type Repository interface {
	// ListSpecies returns all species ordered by descending identifier.
	ListSpecies(context context.Context) ([]*Species, error)
	GetSpecies(context context.Context, id int64) (*Species, error)
	CreateSpecies(context context.Context, s *Species) error
	UpdateSpecies(context context.Context, s *Species) error
	DeleteSpecies(context context.Context, id int64) error
}
