package species

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/featherworks/aviary/internal/platform/database/schema"
	"github.com/featherworks/aviary/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListSpecies(context context.Context) ([]*Species, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s DESC
	`,
		schema.RefSpecies.ID, schema.RefSpecies.Name, schema.RefSpecies.ScientificName,
		schema.RefSpecies.Family, schema.RefSpecies.Category, schema.RefSpecies.Habitat,
		schema.RefSpecies.Description, schema.RefSpecies.ImageURL, schema.RefSpecies.Facts,
		schema.RefSpecies.CreatedAt, schema.RefSpecies.UpdatedAt,
		schema.RefSpecies.Table, schema.RefSpecies.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_species")
	}
	defer rows.Close()

	var list []*Species
	for rows.Next() {
		s := &Species{}
		if err := rows.Scan(
			&s.ID, &s.Name, &s.ScientificName, &s.Family, &s.Category,
			&s.Habitat, &s.Description, &s.ImageURL, &s.Facts,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_species")
		}
		list = append(list, s)
	}

	return list, nil
}

func (repository *PostgresRepository) GetSpecies(context context.Context, id int64) (*Species, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.RefSpecies.ID, schema.RefSpecies.Name, schema.RefSpecies.ScientificName,
		schema.RefSpecies.Family, schema.RefSpecies.Category, schema.RefSpecies.Habitat,
		schema.RefSpecies.Description, schema.RefSpecies.ImageURL, schema.RefSpecies.Facts,
		schema.RefSpecies.CreatedAt, schema.RefSpecies.UpdatedAt,
		schema.RefSpecies.Table, schema.RefSpecies.ID,
	)
	s := &Species{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&s.ID, &s.Name, &s.ScientificName, &s.Family, &s.Category,
		&s.Habitat, &s.Description, &s.ImageURL, &s.Facts,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_species")
	}

	return s, nil
}

func (repository *PostgresRepository) CreateSpecies(context context.Context, s *Species) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.RefSpecies.Table,
		schema.RefSpecies.Name, schema.RefSpecies.ScientificName, schema.RefSpecies.Family,
		schema.RefSpecies.Category, schema.RefSpecies.Habitat, schema.RefSpecies.Description,
		schema.RefSpecies.ImageURL, schema.RefSpecies.Facts,
		schema.RefSpecies.CreatedAt, schema.RefSpecies.UpdatedAt,
		schema.RefSpecies.ID, schema.RefSpecies.CreatedAt, schema.RefSpecies.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		s.Name, s.ScientificName, s.Family, s.Category,
		s.Habitat, s.Description, s.ImageURL, s.Facts,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	return dberr.Wrap(err, "create_species")
}

func (repository *PostgresRepository) UpdateSpecies(context context.Context, s *Species) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.RefSpecies.Table,
		schema.RefSpecies.Name, schema.RefSpecies.ScientificName, schema.RefSpecies.Family,
		schema.RefSpecies.Category, schema.RefSpecies.Habitat, schema.RefSpecies.Description,
		schema.RefSpecies.ImageURL, schema.RefSpecies.Facts, schema.RefSpecies.UpdatedAt,
		schema.RefSpecies.ID,
		schema.RefSpecies.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		s.ID, s.Name, s.ScientificName, s.Family, s.Category,
		s.Habitat, s.Description, s.ImageURL, s.Facts,
	).Scan(&s.UpdatedAt)
	return dberr.Wrap(err, "update_species")
}

func (repository *PostgresRepository) DeleteSpecies(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.RefSpecies.Table, schema.RefSpecies.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_species")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
