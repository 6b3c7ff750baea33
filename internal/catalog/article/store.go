package article

import "context"

type Repository interface {
	// ListArticles returns editor-created articles ordered by descending
	// identifier. Built-in seed entries are merged in by the caller.
	ListArticles(context context.Context) ([]*Article, error)
	GetArticle(context context.Context, id int64) (*Article, error)
	CreateArticle(context context.Context, a *Article) error
	UpdateArticle(context context.Context, a *Article) error
	DeleteArticle(context context.Context, id int64) error
}
