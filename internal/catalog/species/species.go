package species

import "time"

// Species represents one encyclopedia entry for a bird species.
//
// The common name is unique within the catalog and backs lookup-by-name
// on the public site.
type Species struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	ScientificName string    `json:"scientificName"`
	Family         string    `json:"family"`
	Category       *string   `json:"category,omitempty"`
	Habitat        string    `json:"habitat"`
	Description    string    `json:"description"`
	ImageURL       string    `json:"imageUrl"`
	Facts          []string  `json:"facts"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Categories is the fixed set offered by the editor's category picker.
// It is advisory: a free-text custom category is also accepted.
var Categories = []string{
	"Raptors",
	"Songbirds",
	"Waterfowl",
	"Tropical",
	"Flightless",
	"Hummingbirds",
	"Owls",
}

// GroupKey returns the display bucket for a species: category when set,
// else taxonomic family, else the provided fallback label.
func (s *Species) GroupKey(fallback string) string {
	if s.Category != nil && *s.Category != "" {
		return *s.Category
	}
	if s.Family != "" {
		return s.Family
	}
	return fallback
}

// Filter holds the parameters for a species search.
type Filter struct {
	Query    string // matched against common and scientific name
	Family   string
	Category string
}

// Global field names for validation
const (
	FieldName           = "name"
	FieldScientificName = "scientificName"
	FieldHabitat        = "habitat"
	FieldImageURL       = "imageUrl"
	FieldFacts          = "facts"
)
