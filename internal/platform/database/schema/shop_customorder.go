package schema

// RefCustomOrderTable represents the 'shop.custom_order' table
type RefCustomOrderTable struct {
	Table       string
	ID          string
	ImageURL    string
	FabricColor string
	Email       string
	Phone       string
	DesignSpecs string
	Status      string
	CreatedAt   string
	UpdatedAt   string
}

// RefCustomOrder is the schema definition for shop.custom_order
var RefCustomOrder = RefCustomOrderTable{
	Table:       "shop.custom_order",
	ID:          "id",
	ImageURL:    "image_url",
	FabricColor: "fabric_color",
	Email:       "email",
	Phone:       "phone",
	DesignSpecs: "design_specs",
	Status:      "status",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}

func (t RefCustomOrderTable) Columns() []string {
	return []string{t.ID, t.ImageURL, t.FabricColor, t.Email, t.Phone, t.DesignSpecs, t.Status, t.CreatedAt, t.UpdatedAt}
}
