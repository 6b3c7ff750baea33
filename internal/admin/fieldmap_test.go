package admin

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/featherworks/aviary/internal/catalog/apparel"
	"github.com/featherworks/aviary/internal/catalog/article"
	"github.com/featherworks/aviary/internal/catalog/book"
	"github.com/featherworks/aviary/internal/catalog/species"
	"github.com/featherworks/aviary/pkg/pointer"
)

func TestSpeciesRow_RoundTrip(t *testing.T) {
	original := &species.Species{
		ID:             7,
		Name:           "Bald Eagle",
		ScientificName: "Haliaeetus leucocephalus",
		Family:         "Accipitridae",
		Category:       pointer.To("Raptors"),
		Habitat:        "Near large bodies of open water",
		Description:    "A bird of prey found in North America.",
		ImageURL:       "/images/bald-eagle.png",
		Facts:          []string{"National bird of the United States", "Wingspan up to 2.3m"},
	}

	got := speciesFromRow(rowFromSpecies(original))

	// Timestamps are backend-managed and not part of the editor shape.
	original.CreatedAt = got.CreatedAt
	original.UpdatedAt = got.UpdatedAt
	assert.Equal(t, original, got)
}

func TestSpeciesRow_FieldNames(t *testing.T) {
	row := rowFromSpecies(&species.Species{
		ScientificName: "Falco peregrinus",
		ImageURL:       "/images/peregrine-falcon.png",
	})

	raw, err := json.Marshal(row)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &fields))

	// The editor speaks the column dialect, not the public API dialect.
	assert.Contains(t, fields, "scientific_name")
	assert.Contains(t, fields, "image_url")
	assert.NotContains(t, fields, "scientificName")
	assert.NotContains(t, fields, "imageUrl")
}

func TestArticleRow_RoundTrip(t *testing.T) {
	original := &article.Article{
		ID:       3,
		Title:    "Condor Comeback",
		Summary:  "Numbers are rising.",
		Content:  "## A long markdown body\n\nWith paragraphs.",
		Author:   "Sarah Beaks",
		Date:     "March 3, 2026",
		ImageURL: "/images/news-condor.jpg",
		Gallery:  []string{"/images/g1.jpg", "/images/g2.jpg"},
	}

	got := articleFromRow(rowFromArticle(original))
	original.CreatedAt = got.CreatedAt
	original.UpdatedAt = got.UpdatedAt
	assert.Equal(t, original, got)
}

func TestBookRow_RoundTrip(t *testing.T) {
	original := &book.Book{
		ID:          2,
		Title:       "The Genius of Birds",
		Author:      "Jennifer Ackerman",
		Publisher:   pointer.To("Penguin"),
		Price:       18.99,
		Description: "An exploration of bird intelligence.",
		Synopsis:    nil,
		Category:    pointer.To("Science"),
		ImageURL:    "/images/hummingbird.png",
		ExternalURL: pointer.To("https://example.com/genius"),
	}

	got := bookFromRow(rowFromBook(original))
	original.CreatedAt = got.CreatedAt
	original.UpdatedAt = got.UpdatedAt
	assert.Equal(t, original, got)
}

func TestApparelRow_RoundTrip(t *testing.T) {
	original := &apparel.Item{
		ID:            5,
		Name:          "Hawk Eye Hoodie",
		Price:         55.00,
		Sizes:         []string{"S", "M", "L", "XL"},
		Craftsmanship: pointer.To("Organic cotton, screen printed"),
		Category:      nil,
		ImageURL:      "/images/peregrine-falcon.png",
		ExternalURL:   nil,
	}

	got := apparelFromRow(rowFromApparel(original))
	original.CreatedAt = got.CreatedAt
	original.UpdatedAt = got.UpdatedAt
	assert.Equal(t, original, got)
}
