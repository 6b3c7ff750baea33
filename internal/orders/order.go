/*
Package orders handles custom print orders.

A customer uploads artwork, positions it on a garment, and submits the
order with contact details. Orders start pending and are completed from
the admin console.
*/
package orders

import "time"

// Status of a custom order.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// DesignSpecs captures where and how large the artwork sits on the
// garment. X and Y are percentages of the print area, Size is pixels.
type DesignSpecs struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Size      float64 `json:"size"`
	ShirtSize string  `json:"shirt_size"`
}

// CustomOrder is one print customization order.
type CustomOrder struct {
	ID          int64       `json:"id"`
	ImageURL    string      `json:"image_url"`
	FabricColor string      `json:"fabric_color"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	DesignSpecs DesignSpecs `json:"design_specs"`
	Status      string      `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Global field names for validation
const (
	FieldImageURL    = "image_url"
	FieldFabricColor = "fabric_color"
	FieldEmail       = "email"
	FieldShirtSize   = "shirt_size"
)
