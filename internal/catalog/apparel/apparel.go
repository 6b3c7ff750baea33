package apparel

import "time"

// Item is one piece of storefront apparel.
type Item struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	Sizes         []string `json:"sizes,omitempty"`
	Craftsmanship *string  `json:"craftsmanship,omitempty"`
	Category      *string  `json:"category,omitempty"`
	ImageURL      string   `json:"imageUrl"`
	ExternalURL   *string  `json:"externalUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Sizes is the garment size range offered across the storefront.
var Sizes = []string{"XS", "S", "M", "L", "XL", "XXL", "3XL"}

// Global field names for validation
const (
	FieldName     = "name"
	FieldPrice    = "price"
	FieldSizes    = "sizes"
	FieldImageURL = "imageUrl"
)
