package apparel

import "context"

type Repository interface {
	// ListItems returns all apparel ordered by descending identifier.
	ListItems(context context.Context) ([]*Item, error)
	GetItem(context context.Context, id int64) (*Item, error)
	CreateItem(context context.Context, item *Item) error
	UpdateItem(context context.Context, item *Item) error
	DeleteItem(context context.Context, id int64) error
}
