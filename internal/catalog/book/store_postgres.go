package book

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

func (repository *PostgresRepository) ListBooks(context context.Context) ([]*Book, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s DESC
	`,
		schema.RefBook.ID, schema.RefBook.Title, schema.RefBook.Author,
		schema.RefBook.Publisher, schema.RefBook.Price, schema.RefBook.Description,
		schema.RefBook.Synopsis, schema.RefBook.Category, schema.RefBook.ImageURL,
		schema.RefBook.ExternalURL, schema.RefBook.CreatedAt, schema.RefBook.UpdatedAt,
		schema.RefBook.Table, schema.RefBook.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_books")
	}
	defer rows.Close()

	var list []*Book
	for rows.Next() {
		b := &Book{}
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Author, &b.Publisher, &b.Price,
			&b.Description, &b.Synopsis, &b.Category, &b.ImageURL,
			&b.ExternalURL, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_book")
		}
		list = append(list, b)
	}

	return list, nil
}

func (repository *PostgresRepository) GetBook(context context.Context, id int64) (*Book, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.RefBook.ID, schema.RefBook.Title, schema.RefBook.Author,
		schema.RefBook.Publisher, schema.RefBook.Price, schema.RefBook.Description,
		schema.RefBook.Synopsis, schema.RefBook.Category, schema.RefBook.ImageURL,
		schema.RefBook.ExternalURL, schema.RefBook.CreatedAt, schema.RefBook.UpdatedAt,
		schema.RefBook.Table, schema.RefBook.ID,
	)
	b := &Book{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&b.ID, &b.Title, &b.Author, &b.Publisher, &b.Price,
		&b.Description, &b.Synopsis, &b.Category, &b.ImageURL,
		&b.ExternalURL, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_book")
	}

	return b, nil
}

func (repository *PostgresRepository) CreateBook(context context.Context, b *Book) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.RefBook.Table,
		schema.RefBook.Title, schema.RefBook.Author, schema.RefBook.Publisher,
		schema.RefBook.Price, schema.RefBook.Description, schema.RefBook.Synopsis,
		schema.RefBook.Category, schema.RefBook.ImageURL, schema.RefBook.ExternalURL,
		schema.RefBook.CreatedAt, schema.RefBook.UpdatedAt,
		schema.RefBook.ID, schema.RefBook.CreatedAt, schema.RefBook.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		b.Title, b.Author, b.Publisher, b.Price, b.Description,
		b.Synopsis, b.Category, b.ImageURL, b.ExternalURL,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	return dberr.Wrap(err, "create_book")
}

func (repository *PostgresRepository) UpdateBook(context context.Context, b *Book) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = $10, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.RefBook.Table,
		schema.RefBook.Title, schema.RefBook.Author, schema.RefBook.Publisher,
		schema.RefBook.Price, schema.RefBook.Description, schema.RefBook.Synopsis,
		schema.RefBook.Category, schema.RefBook.ImageURL, schema.RefBook.ExternalURL,
		schema.RefBook.UpdatedAt,
		schema.RefBook.ID,
		schema.RefBook.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		b.ID, b.Title, b.Author, b.Publisher, b.Price, b.Description,
		b.Synopsis, b.Category, b.ImageURL, b.ExternalURL,
	).Scan(&b.UpdatedAt)
	return dberr.Wrap(err, "update_book")
}

func (repository *PostgresRepository) DeleteBook(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.RefBook.Table, schema.RefBook.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_book")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
