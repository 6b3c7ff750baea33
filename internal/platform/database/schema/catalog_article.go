package schema

// RefArticleTable represents the 'catalog.article' table
type RefArticleTable struct {
	Table     string
	ID        string
	Title     string
	Summary   string
	Content   string
	Author    string
	Date      string
	ImageURL  string
	Gallery   string
	CreatedAt string
	UpdatedAt string
}

// RefArticle is the schema definition for catalog.article
var RefArticle = RefArticleTable{
	Table:     "catalog.article",
	ID:        "id",
	Title:     "title",
	Summary:   "summary",
	Content:   "content",
	Author:    "author",
	Date:      "date",
	ImageURL:  "image_url",
	Gallery:   "gallery",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

func (t RefArticleTable) Columns() []string {
	return []string{t.ID, t.Title, t.Summary, t.Content, t.Author, t.Date, t.ImageURL, t.Gallery, t.CreatedAt, t.UpdatedAt}
}
