package apparel

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

func (repository *PostgresRepository) ListItems(context context.Context) ([]*Item, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s DESC
	`,
		schema.RefApparel.ID, schema.RefApparel.Name, schema.RefApparel.Price,
		schema.RefApparel.Sizes, schema.RefApparel.Craftsmanship, schema.RefApparel.Category,
		schema.RefApparel.ImageURL, schema.RefApparel.ExternalURL,
		schema.RefApparel.CreatedAt, schema.RefApparel.UpdatedAt,
		schema.RefApparel.Table, schema.RefApparel.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_apparel")
	}
	defer rows.Close()

	var list []*Item
	for rows.Next() {
		item := &Item{}
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Price, &item.Sizes,
			&item.Craftsmanship, &item.Category, &item.ImageURL,
			&item.ExternalURL, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_apparel")
		}
		list = append(list, item)
	}

	return list, nil
}

func (repository *PostgresRepository) GetItem(context context.Context, id int64) (*Item, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.RefApparel.ID, schema.RefApparel.Name, schema.RefApparel.Price,
		schema.RefApparel.Sizes, schema.RefApparel.Craftsmanship, schema.RefApparel.Category,
		schema.RefApparel.ImageURL, schema.RefApparel.ExternalURL,
		schema.RefApparel.CreatedAt, schema.RefApparel.UpdatedAt,
		schema.RefApparel.Table, schema.RefApparel.ID,
	)
	item := &Item{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&item.ID, &item.Name, &item.Price, &item.Sizes,
		&item.Craftsmanship, &item.Category, &item.ImageURL,
		&item.ExternalURL, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_apparel")
	}

	return item, nil
}

func (repository *PostgresRepository) CreateItem(context context.Context, item *Item) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.RefApparel.Table,
		schema.RefApparel.Name, schema.RefApparel.Price, schema.RefApparel.Sizes,
		schema.RefApparel.Craftsmanship, schema.RefApparel.Category,
		schema.RefApparel.ImageURL, schema.RefApparel.ExternalURL,
		schema.RefApparel.CreatedAt, schema.RefApparel.UpdatedAt,
		schema.RefApparel.ID, schema.RefApparel.CreatedAt, schema.RefApparel.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		item.Name, item.Price, item.Sizes, item.Craftsmanship,
		item.Category, item.ImageURL, item.ExternalURL,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	return dberr.Wrap(err, "create_apparel")
}

func (repository *PostgresRepository) UpdateItem(context context.Context, item *Item) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.RefApparel.Table,
		schema.RefApparel.Name, schema.RefApparel.Price, schema.RefApparel.Sizes,
		schema.RefApparel.Craftsmanship, schema.RefApparel.Category,
		schema.RefApparel.ImageURL, schema.RefApparel.ExternalURL,
		schema.RefApparel.UpdatedAt,
		schema.RefApparel.ID,
		schema.RefApparel.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		item.ID, item.Name, item.Price, item.Sizes, item.Craftsmanship,
		item.Category, item.ImageURL, item.ExternalURL,
	).Scan(&item.UpdatedAt)
	return dberr.Wrap(err, "update_apparel")
}

func (repository *PostgresRepository) DeleteItem(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.RefApparel.Table, schema.RefApparel.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_apparel")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
