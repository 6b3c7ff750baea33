package admin

import (
	"github.com/featherworks/aviary/internal/catalog/apparel"
	"github.com/featherworks/aviary/internal/catalog/article"
	"github.com/featherworks/aviary/internal/catalog/book"
	"github.com/featherworks/aviary/internal/catalog/species"
	"github.com/featherworks/aviary/internal/orders"
)

// The admin console works on backend row shapes: snake_case field names
// matching the table columns. The public catalog serves camelCase. Each
// kind has a mutually inverse pair of mapping functions between the two;
// the pairs are total, so a row survives a round trip unchanged.

// SpeciesRow is the editor-facing shape of a species record.
type SpeciesRow struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	ScientificName string   `json:"scientific_name"`
	Family         string   `json:"family"`
	Category       *string  `json:"category"`
	Habitat        string   `json:"habitat"`
	Description    string   `json:"description"`
	ImageURL       string   `json:"image_url"`
	Facts          []string `json:"facts"`
}

func rowFromSpecies(s *species.Species) SpeciesRow {
	return SpeciesRow{
		ID:             s.ID,
		Name:           s.Name,
		ScientificName: s.ScientificName,
		Family:         s.Family,
		Category:       s.Category,
		Habitat:        s.Habitat,
		Description:    s.Description,
		ImageURL:       s.ImageURL,
		Facts:          s.Facts,
	}
}

func speciesFromRow(row SpeciesRow) *species.Species {
	return &species.Species{
		ID:             row.ID,
		Name:           row.Name,
		ScientificName: row.ScientificName,
		Family:         row.Family,
		Category:       row.Category,
		Habitat:        row.Habitat,
		Description:    row.Description,
		ImageURL:       row.ImageURL,
		Facts:          row.Facts,
	}
}

// ArticleRow is the editor-facing shape of an article record.
type ArticleRow struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Content  string   `json:"content"`
	Author   string   `json:"author"`
	Date     string   `json:"date"`
	ImageURL string   `json:"image_url"`
	Gallery  []string `json:"gallery"`
}

func rowFromArticle(a *article.Article) ArticleRow {
	return ArticleRow{
		ID:       a.ID,
		Title:    a.Title,
		Summary:  a.Summary,
		Content:  a.Content,
		Author:   a.Author,
		Date:     a.Date,
		ImageURL: a.ImageURL,
		Gallery:  a.Gallery,
	}
}

func articleFromRow(row ArticleRow) *article.Article {
	return &article.Article{
		ID:       row.ID,
		Title:    row.Title,
		Summary:  row.Summary,
		Content:  row.Content,
		Author:   row.Author,
		Date:     row.Date,
		ImageURL: row.ImageURL,
		Gallery:  row.Gallery,
	}
}

// BookRow is the editor-facing shape of a book record.
type BookRow struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Publisher   *string `json:"publisher"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Synopsis    *string `json:"synopsis"`
	Category    *string `json:"category"`
	ImageURL    string  `json:"image_url"`
	ExternalURL *string `json:"external_url"`
}

func rowFromBook(b *book.Book) BookRow {
	return BookRow{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Publisher:   b.Publisher,
		Price:       b.Price,
		Description: b.Description,
		Synopsis:    b.Synopsis,
		Category:    b.Category,
		ImageURL:    b.ImageURL,
		ExternalURL: b.ExternalURL,
	}
}

func bookFromRow(row BookRow) *book.Book {
	return &book.Book{
		ID:          row.ID,
		Title:       row.Title,
		Author:      row.Author,
		Publisher:   row.Publisher,
		Price:       row.Price,
		Description: row.Description,
		Synopsis:    row.Synopsis,
		Category:    row.Category,
		ImageURL:    row.ImageURL,
		ExternalURL: row.ExternalURL,
	}
}

// ApparelRow is the editor-facing shape of an apparel record.
type ApparelRow struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	Sizes         []string `json:"sizes"`
	Craftsmanship *string  `json:"craftsmanship"`
	Category      *string  `json:"category"`
	ImageURL      string   `json:"image_url"`
	ExternalURL   *string  `json:"external_url"`
}

func rowFromApparel(item *apparel.Item) ApparelRow {
	return ApparelRow{
		ID:            item.ID,
		Name:          item.Name,
		Price:         item.Price,
		Sizes:         item.Sizes,
		Craftsmanship: item.Craftsmanship,
		Category:      item.Category,
		ImageURL:      item.ImageURL,
		ExternalURL:   item.ExternalURL,
	}
}

func apparelFromRow(row ApparelRow) *apparel.Item {
	return &apparel.Item{
		ID:            row.ID,
		Name:          row.Name,
		Price:         row.Price,
		Sizes:         row.Sizes,
		Craftsmanship: row.Craftsmanship,
		Category:      row.Category,
		ImageURL:      row.ImageURL,
		ExternalURL:   row.ExternalURL,
	}
}

// OrderRow is the editor-facing shape of a custom order. Orders are
// created by customer submission, so the console only lists, completes,
// and deletes them; there is no inverse mapping into a new record.
type OrderRow struct {
	ID          int64              `json:"id"`
	ImageURL    string             `json:"image_url"`
	FabricColor string             `json:"fabric_color"`
	Email       string             `json:"email"`
	Phone       string             `json:"phone"`
	DesignSpecs orders.DesignSpecs `json:"design_specs"`
	Status      string             `json:"status"`
}

func rowFromOrder(o *orders.CustomOrder) OrderRow {
	return OrderRow{
		ID:          o.ID,
		ImageURL:    o.ImageURL,
		FabricColor: o.FabricColor,
		Email:       o.Email,
		Phone:       o.Phone,
		DesignSpecs: o.DesignSpecs,
		Status:      o.Status,
	}
}
