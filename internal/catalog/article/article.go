package article

import "time"

// Article represents one news/chronicle entry.
//
// Content is long-form markdown; rendering is a client concern. Date is an
// opaque display string ("October 15, 2025") and is never used for sorting.
type Article struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Content  string   `json:"content"`
	Author   string   `json:"author"`
	Date     string   `json:"date"`
	ImageURL string   `json:"imageUrl"`
	Gallery  []string `json:"gallery,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Global field names for validation
const (
	FieldTitle    = "title"
	FieldSummary  = "summary"
	FieldImageURL = "imageUrl"
)
