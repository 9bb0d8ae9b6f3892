package migrator

import (
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lexwire/lexwire/app/articles"
	"github.com/lexwire/lexwire/app/database"
)

// Source documents carry no schema guarantees: fields may be missing,
// null, or the wrong type. Normalization resolves every gap to the
// documented default instead of propagating it into the destination.

const excerptLength = 150

var (
	nonWordRe    = regexp.MustCompile(`[^\w ]+`)
	whitespaceRe = regexp.MustCompile(` +`)
)

// Slugify derives a URL slug from a title: lowercased, non-word
// characters stripped, runs of spaces collapsed to single hyphens.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = nonWordRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, "-")
	return s
}

// Excerpt truncates content to the first excerptLength runes with an
// ellipsis marker. Empty content yields an empty excerpt.
func Excerpt(content string) string {
	if content == "" {
		return ""
	}
	runes := []rune(content)
	if len(runes) > excerptLength {
		runes = runes[:excerptLength]
	}
	return string(runes) + "..."
}

// NormalizeArticle converts a loosely-typed source document into a fully
// defaulted destination article. camelCase source variants of the
// snake_case destination fields are honored.
func NormalizeArticle(doc map[string]interface{}) articles.Article {
	title := stringField(doc, "title")

	slug := stringField(doc, "slug")
	if slug == "" {
		slug = Slugify(title)
	}

	content := stringField(doc, "content")

	excerpt := stringField(doc, "excerpt")
	if excerpt == "" {
		excerpt = Excerpt(content)
	}

	author := stringField(doc, "author")
	if author == "" {
		author = "Unknown"
	}

	category := stringField(doc, "category")
	if category == "" {
		category = "Uncategorized"
	}

	return articles.Article{
		Title:         title,
		Slug:          slug,
		Author:        author,
		PublishedDate: timeField(doc, time.Now(), "published_date", "publishedDate"),
		Content:       content,
		Excerpt:       excerpt,
		Category:      category,
		Subcategory:   nullableField(doc, "subcategory"),
		Tags:          tagsField(doc),
		Source:        nullableField(doc, "source"),
		Image:         nullableField(doc, "image"),
		ImageCaption:  nullableField(doc, "image_caption", "imageCaption"),
		ImageAlt:      nullableField(doc, "image_alt", "imageAlt"),
		ImageCredit:   nullableField(doc, "image_credit", "imageCredit"),
		PDFURL:        nullableField(doc, "pdf_url", "pdfUrl"),
		AuthorBio:     nullableField(doc, "author_bio", "authorBio"),
		IsFeatured:    boolField(doc, "is_featured", "isFeatured"),
		MongoID:       idField(doc),
	}
}

// NormalizeSubscriber converts a source subscriber document into a
// destination row with defaults applied.
func NormalizeSubscriber(doc map[string]interface{}) database.Subscriber {
	status := stringField(doc, "status")
	if status == "" {
		status = "active"
	}

	return database.Subscriber{
		Email:        stringField(doc, "email"),
		SubscribedAt: timeField(doc, time.Now(), "subscribed_at", "subscribedAt"),
		Status:       status,
		MongoID:      idField(doc),
	}
}

func stringField(doc map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if s, ok := doc[key].(string); ok {
			return s
		}
	}
	return ""
}

func nullableField(doc map[string]interface{}, keys ...string) *string {
	for _, key := range keys {
		if s, ok := doc[key].(string); ok {
			return &s
		}
	}
	return nil
}

func boolField(doc map[string]interface{}, keys ...string) bool {
	for _, key := range keys {
		if b, ok := doc[key].(bool); ok {
			return b
		}
	}
	return false
}

func timeField(doc map[string]interface{}, fallback time.Time, keys ...string) time.Time {
	for _, key := range keys {
		switch v := doc[key].(type) {
		case time.Time:
			return v
		case primitive.DateTime:
			return v.Time()
		case string:
			if t, err := time.Parse(time.RFC3339, v); err == nil {
				return t
			}
		}
	}
	return fallback
}

// tagsField keeps only string entries; a value that is not a proper
// sequence yields an empty slice.
func tagsField(doc map[string]interface{}) []string {
	tags := []string{}

	var raw []interface{}
	switch v := doc["tags"].(type) {
	case []interface{}:
		raw = v
	case primitive.A:
		raw = v
	case []string:
		return v
	default:
		return tags
	}

	for _, entry := range raw {
		if s, ok := entry.(string); ok {
			tags = append(tags, s)
		}
	}
	return tags
}

func idField(doc map[string]interface{}) *string {
	switch v := doc["_id"].(type) {
	case primitive.ObjectID:
		hex := v.Hex()
		return &hex
	case string:
		return &v
	}
	return nil
}
