package orders

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

func (repository *PostgresRepository) ListOrders(context context.Context) ([]*CustomOrder, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s DESC
	`,
		schema.RefCustomOrder.ID, schema.RefCustomOrder.ImageURL, schema.RefCustomOrder.FabricColor,
		schema.RefCustomOrder.Email, schema.RefCustomOrder.Phone, schema.RefCustomOrder.DesignSpecs,
		schema.RefCustomOrder.Status, schema.RefCustomOrder.CreatedAt, schema.RefCustomOrder.UpdatedAt,
		schema.RefCustomOrder.Table, schema.RefCustomOrder.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_custom_orders")
	}
	defer rows.Close()

	var list []*CustomOrder
	for rows.Next() {
		o := &CustomOrder{}
		if err := rows.Scan(
			&o.ID, &o.ImageURL, &o.FabricColor, &o.Email, &o.Phone,
			&o.DesignSpecs, &o.Status, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_custom_order")
		}
		list = append(list, o)
	}

	return list, nil
}

func (repository *PostgresRepository) GetOrder(context context.Context, id int64) (*CustomOrder, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.RefCustomOrder.ID, schema.RefCustomOrder.ImageURL, schema.RefCustomOrder.FabricColor,
		schema.RefCustomOrder.Email, schema.RefCustomOrder.Phone, schema.RefCustomOrder.DesignSpecs,
		schema.RefCustomOrder.Status, schema.RefCustomOrder.CreatedAt, schema.RefCustomOrder.UpdatedAt,
		schema.RefCustomOrder.Table, schema.RefCustomOrder.ID,
	)
	o := &CustomOrder{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&o.ID, &o.ImageURL, &o.FabricColor, &o.Email, &o.Phone,
		&o.DesignSpecs, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_custom_order")
	}

	return o, nil
}

func (repository *PostgresRepository) CreateOrder(context context.Context, o *CustomOrder) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.RefCustomOrder.Table,
		schema.RefCustomOrder.ImageURL, schema.RefCustomOrder.FabricColor,
		schema.RefCustomOrder.Email, schema.RefCustomOrder.Phone,
		schema.RefCustomOrder.DesignSpecs, schema.RefCustomOrder.Status,
		schema.RefCustomOrder.CreatedAt, schema.RefCustomOrder.UpdatedAt,
		schema.RefCustomOrder.ID, schema.RefCustomOrder.CreatedAt, schema.RefCustomOrder.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		o.ImageURL, o.FabricColor, o.Email, o.Phone, o.DesignSpecs, o.Status,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	return dberr.Wrap(err, "create_custom_order")
}

func (repository *PostgresRepository) UpdateStatus(context context.Context, id int64, status string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = NOW()
		WHERE %s = $1
	`,
		schema.RefCustomOrder.Table,
		schema.RefCustomOrder.Status, schema.RefCustomOrder.UpdatedAt,
		schema.RefCustomOrder.ID,
	)

	cmd, err := repository.db.Exec(context, query, id, status)
	if err != nil {
		return dberr.Wrap(err, "update_custom_order_status")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteOrder(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.RefCustomOrder.Table, schema.RefCustomOrder.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_custom_order")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
