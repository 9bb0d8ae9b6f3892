package articles

import (
	"time"
)

// Article is the canonical article shape shared by the HTTP API, the
// Postgres repositories and the migration job. Nullable columns are
// pointers so they serialize as JSON null rather than "".
type Article struct {
	ID            string    `json:"id,omitempty"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Author        string    `json:"author"`
	PublishedDate time.Time `json:"published_date"`
	Content       string    `json:"content"`
	Excerpt       string    `json:"excerpt"`
	Category      string    `json:"category"`
	Subcategory   *string   `json:"subcategory"`
	Tags          []string  `json:"tags"`
	Source        *string   `json:"source"`
	Image         *string   `json:"image"`
	ImageCaption  *string   `json:"image_caption"`
	ImageAlt      *string   `json:"image_alt"`
	ImageCredit   *string   `json:"image_credit"`
	PDFURL        *string   `json:"pdf_url"`
	AuthorBio     *string   `json:"author_bio"`
	IsFeatured    bool      `json:"is_featured"`
	MongoID       *string   `json:"mongo_id,omitempty"`
}
