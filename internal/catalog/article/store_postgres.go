package article

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

func (repository *PostgresRepository) ListArticles(context context.Context) ([]*Article, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s DESC
	`,
		schema.RefArticle.ID, schema.RefArticle.Title, schema.RefArticle.Summary,
		schema.RefArticle.Content, schema.RefArticle.Author, schema.RefArticle.Date,
		schema.RefArticle.ImageURL, schema.RefArticle.Gallery,
		schema.RefArticle.CreatedAt, schema.RefArticle.UpdatedAt,
		schema.RefArticle.Table, schema.RefArticle.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_articles")
	}
	defer rows.Close()

	var list []*Article
	for rows.Next() {
		a := &Article{}
		if err := rows.Scan(
			&a.ID, &a.Title, &a.Summary, &a.Content, &a.Author,
			&a.Date, &a.ImageURL, &a.Gallery, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_article")
		}
		list = append(list, a)
	}

	return list, nil
}

func (repository *PostgresRepository) GetArticle(context context.Context, id int64) (*Article, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.RefArticle.ID, schema.RefArticle.Title, schema.RefArticle.Summary,
		schema.RefArticle.Content, schema.RefArticle.Author, schema.RefArticle.Date,
		schema.RefArticle.ImageURL, schema.RefArticle.Gallery,
		schema.RefArticle.CreatedAt, schema.RefArticle.UpdatedAt,
		schema.RefArticle.Table, schema.RefArticle.ID,
	)
	a := &Article{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&a.ID, &a.Title, &a.Summary, &a.Content, &a.Author,
		&a.Date, &a.ImageURL, &a.Gallery, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_article")
	}

	return a, nil
}

func (repository *PostgresRepository) CreateArticle(context context.Context, a *Article) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.RefArticle.Table,
		schema.RefArticle.Title, schema.RefArticle.Summary, schema.RefArticle.Content,
		schema.RefArticle.Author, schema.RefArticle.Date, schema.RefArticle.ImageURL,
		schema.RefArticle.Gallery,
		schema.RefArticle.CreatedAt, schema.RefArticle.UpdatedAt,
		schema.RefArticle.ID, schema.RefArticle.CreatedAt, schema.RefArticle.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		a.Title, a.Summary, a.Content, a.Author, a.Date, a.ImageURL, a.Gallery,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	return dberr.Wrap(err, "create_article")
}

func (repository *PostgresRepository) UpdateArticle(context context.Context, a *Article) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.RefArticle.Table,
		schema.RefArticle.Title, schema.RefArticle.Summary, schema.RefArticle.Content,
		schema.RefArticle.Author, schema.RefArticle.Date, schema.RefArticle.ImageURL,
		schema.RefArticle.Gallery, schema.RefArticle.UpdatedAt,
		schema.RefArticle.ID,
		schema.RefArticle.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		a.ID, a.Title, a.Summary, a.Content, a.Author, a.Date, a.ImageURL, a.Gallery,
	).Scan(&a.UpdatedAt)
	return dberr.Wrap(err, "update_article")
}

func (repository *PostgresRepository) DeleteArticle(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.RefArticle.Table, schema.RefArticle.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_article")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
