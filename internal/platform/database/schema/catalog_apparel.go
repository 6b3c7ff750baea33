package schema

// RefApparelTable represents the 'catalog.apparel' table
type RefApparelTable struct {
	Table         string
	ID            string
	Name          string
	Price         string
	Sizes         string
	Craftsmanship string
	Category      string
	ImageURL      string
	ExternalURL   string
	CreatedAt     string
	UpdatedAt     string
}

// RefApparel is the schema definition for catalog.apparel
var RefApparel = RefApparelTable{
	Table:         "catalog.apparel",
	ID:            "id",
	Name:          "name",
	Price:         "price",
	Sizes:         "sizes",
	Craftsmanship: "craftsmanship",
	Category:      "category",
	ImageURL:      "image_url",
	ExternalURL:   "external_url",
	CreatedAt:     "created_at",
	UpdatedAt:     "updated_at",
}

func (t RefApparelTable) Columns() []string {
	return []string{t.ID, t.Name, t.Price, t.Sizes, t.Craftsmanship, t.Category, t.ImageURL, t.ExternalURL, t.CreatedAt, t.UpdatedAt}
}
