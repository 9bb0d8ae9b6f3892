package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/lexwire/lexwire/app/articles"
)

var _ ArticleRepository = (*PGArticleRepository)(nil)

const articleColumns = `id, title, slug, author, published_date, content, excerpt,
	category, subcategory, tags, source, image, image_caption, image_alt,
	image_credit, pdf_url, author_bio, is_featured, mongo_id`

// PGArticleRepository handles database operations for articles.
type PGArticleRepository struct {
	db *DB
}

func NewArticleRepository(db *DB) *PGArticleRepository {
	return &PGArticleRepository{db: db}
}

// All returns every article, newest first.
func (r *PGArticleRepository) All(ctx context.Context) ([]articles.Article, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+articleColumns+`
		FROM articles
		ORDER BY published_date DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get articles: %w", err)
	}
	defer rows.Close()

	result := []articles.Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article row: %w", err)
		}
		result = append(result, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating article rows: %w", err)
	}

	return result, nil
}

// BySlug returns the article with the given slug, or nil when no row
// matches.
func (r *PGArticleRepository) BySlug(ctx context.Context, slug string) (*articles.Article, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+articleColumns+`
		FROM articles
		WHERE slug = $1
	`, slug)

	a, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get article by slug: %w", err)
	}

	return &a, nil
}

// UpsertArticles writes the batch in a single multi-row INSERT keyed on
// slug, overwriting every column on conflict so re-runs converge on the
// source state.
func (r *PGArticleRepository) UpsertArticles(ctx context.Context, batch []articles.Article) error {
	if len(batch) == 0 {
		return nil
	}

	const cols = 18
	placeholders := make([]string, 0, len(batch))
	args := make([]interface{}, 0, len(batch)*cols)

	for i, a := range batch {
		base := i * cols
		marks := make([]string, cols)
		for j := range marks {
			marks[j] = fmt.Sprintf("$%d", base+j+1)
		}
		placeholders = append(placeholders, "("+strings.Join(marks, ", ")+")")
		args = append(args,
			a.Title, a.Slug, a.Author, a.PublishedDate, a.Content, a.Excerpt,
			a.Category, a.Subcategory, pq.Array(a.Tags), a.Source, a.Image,
			a.ImageCaption, a.ImageAlt, a.ImageCredit, a.PDFURL, a.AuthorBio,
			a.IsFeatured, a.MongoID,
		)
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO articles (
			title, slug, author, published_date, content, excerpt,
			category, subcategory, tags, source, image, image_caption,
			image_alt, image_credit, pdf_url, author_bio, is_featured, mongo_id
		) VALUES `+strings.Join(placeholders, ", ")+`
		ON CONFLICT (slug) DO UPDATE SET
			title = EXCLUDED.title,
			author = EXCLUDED.author,
			published_date = EXCLUDED.published_date,
			content = EXCLUDED.content,
			excerpt = EXCLUDED.excerpt,
			category = EXCLUDED.category,
			subcategory = EXCLUDED.subcategory,
			tags = EXCLUDED.tags,
			source = EXCLUDED.source,
			image = EXCLUDED.image,
			image_caption = EXCLUDED.image_caption,
			image_alt = EXCLUDED.image_alt,
			image_credit = EXCLUDED.image_credit,
			pdf_url = EXCLUDED.pdf_url,
			author_bio = EXCLUDED.author_bio,
			is_featured = EXCLUDED.is_featured,
			mongo_id = EXCLUDED.mongo_id
	`, args...)

	if err != nil {
		return fmt.Errorf("failed to upsert articles: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanArticle(row rowScanner) (articles.Article, error) {
	var a articles.Article
	err := row.Scan(
		&a.ID, &a.Title, &a.Slug, &a.Author, &a.PublishedDate, &a.Content,
		&a.Excerpt, &a.Category, &a.Subcategory, pq.Array(&a.Tags), &a.Source,
		&a.Image, &a.ImageCaption, &a.ImageAlt, &a.ImageCredit, &a.PDFURL,
		&a.AuthorBio, &a.IsFeatured, &a.MongoID,
	)
	if err != nil {
		return articles.Article{}, err
	}
	if a.Tags == nil {
		a.Tags = []string{}
	}
	return a, nil
}
