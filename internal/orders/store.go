package orders

import "context"

type Repository interface {
	// ListOrders returns all custom orders, newest first.
	ListOrders(context context.Context) ([]*CustomOrder, error)
	GetOrder(context context.Context, id int64) (*CustomOrder, error)
	CreateOrder(context context.Context, o *CustomOrder) error
	UpdateStatus(context context.Context, id int64, status string) error
	DeleteOrder(context context.Context, id int64) error
}
