package schema

// RefSpeciesTable represents the 'catalog.species' table
type RefSpeciesTable struct {
	Table          string
	ID             string
	Name           string
	ScientificName string
	Family         string
	Category       string
	Habitat        string
	Description    string
	ImageURL       string
	Facts          string
	CreatedAt      string
	UpdatedAt      string
}

// RefSpecies is the schema definition for catalog.species
var RefSpecies = RefSpeciesTable{
	Table:          "catalog.species",
	ID:             "id",
	Name:           "name",
	ScientificName: "scientific_name",
	Family:         "family",
	Category:       "category",
	Habitat:        "habitat",
	Description:    "description",
	ImageURL:       "image_url",
	Facts:          "facts",
	CreatedAt:      "created_at",
	UpdatedAt:      "updated_at",
}

func (t RefSpeciesTable) Columns() []string {
	return []string{t.ID, t.Name, t.ScientificName, t.Family, t.Category, t.Habitat, t.Description, t.ImageURL, t.Facts, t.CreatedAt, t.UpdatedAt}
}
