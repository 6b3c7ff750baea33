package book

import "time"

// Book is a storefront title.
type Book struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Publisher   *string `json:"publisher,omitempty"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Synopsis    *string `json:"synopsis,omitempty"`
	Category    *string `json:"category,omitempty"`
	ImageURL    string  `json:"imageUrl"`
	ExternalURL *string `json:"externalUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Global field names for validation
const (
	FieldTitle    = "title"
	FieldAuthor   = "author"
	FieldPrice    = "price"
	FieldImageURL = "imageUrl"
)
