package schema

// RefBookTable represents the 'catalog.book' table
type RefBookTable struct {
	Table       string
	ID          string
	Title       string
	Author      string
	Publisher   string
	Price       string
	Description string
	Synopsis    string
	Category    string
	ImageURL    string
	ExternalURL string
	CreatedAt   string
	UpdatedAt   string
}

// RefBook is the schema definition for catalog.book
var RefBook = RefBookTable{
	Table:       "catalog.book",
	ID:          "id",
	Title:       "title",
	Author:      "author",
	Publisher:   "publisher",
	Price:       "price",
	Description: "description",
	Synopsis:    "synopsis",
	Category:    "category",
	ImageURL:    "image_url",
	ExternalURL: "external_url",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}

func (t RefBookTable) Columns() []string {
	return []string{t.ID, t.Title, t.Author, t.Publisher, t.Price, t.Description, t.Synopsis, t.Category, t.ImageURL, t.ExternalURL, t.CreatedAt, t.UpdatedAt}
}
