package book

import "context"

type Repository interface {
	// ListBooks returns all books ordered by descending identifier.
	ListBooks(context context.Context) ([]*Book, error)
	GetBook(context context.Context, id int64) (*Book, error)
	CreateBook(context context.Context, b *Book) error
	UpdateBook(context context.Context, b *Book) error
	DeleteBook(context context.Context, id int64) error
}
