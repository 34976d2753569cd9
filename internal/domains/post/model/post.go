package model

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// WordsPerMinute is the reading speed used for ReadingTime.
const WordsPerMinute = 200

// BlogCategory and BlogTag are looked up by slug and created on first use.
type BlogCategory struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"`
	Slug string    `json:"slug" db:"slug"`
}

type BlogTag struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"`
	Slug string    `json:"slug" db:"slug"`
}

// Post is a row of the posts table with its category and tags attached.
type Post struct {
	ID              uuid.UUID     `json:"id" db:"id"`
	Title           string        `json:"title" db:"title"`
	Slug            string        `json:"slug" db:"slug"`
	Content         string        `json:"content" db:"content"`
	Excerpt         *string       `json:"excerpt" db:"excerpt"`
	CoverImage      *string       `json:"cover_image" db:"cover_image"`
	Category        *BlogCategory `json:"category"`
	Tags            []BlogTag     `json:"tags"`
	Published       bool          `json:"published" db:"published"`
	Featured        bool          `json:"featured" db:"featured"`
	PublishedAt     *time.Time    `json:"published_at" db:"published_at"`
	ReadingTime     int           `json:"reading_time" db:"reading_time"`
	MetaTitle       *string       `json:"meta_title" db:"meta_title"`
	MetaDescription *string       `json:"meta_description" db:"meta_description"`
	MetaKeywords    *string       `json:"meta_keywords" db:"meta_keywords"`
	OGImage         *string       `json:"og_image" db:"og_image"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" db:"updated_at"`
}

func (p Post) Clone() Post {
	out := p
	if p.Category != nil {
		c := *p.Category
		out.Category = &c
	}
	if p.Tags != nil {
		out.Tags = append([]BlogTag(nil), p.Tags...)
	}
	out.Excerpt = clonePtr(p.Excerpt)
	out.CoverImage = clonePtr(p.CoverImage)
	out.PublishedAt = clonePtr(p.PublishedAt)
	out.MetaTitle = clonePtr(p.MetaTitle)
	out.MetaDescription = clonePtr(p.MetaDescription)
	out.MetaKeywords = clonePtr(p.MetaKeywords)
	out.OGImage = clonePtr(p.OGImage)
	return out
}

// SortTime is the listing order key: publishedAt, else createdAt.
func (p Post) SortTime() time.Time {
	if p.PublishedAt != nil {
		return *p.PublishedAt
	}
	return p.CreatedAt
}

// MediaURLs are the URLs this post may own in object storage.
func (p Post) MediaURLs() []string {
	var urls []string
	if p.CoverImage != nil && *p.CoverImage != "" {
		urls = append(urls, *p.CoverImage)
	}
	if p.OGImage != nil && *p.OGImage != "" && (p.CoverImage == nil || *p.OGImage != *p.CoverImage) {
		urls = append(urls, *p.OGImage)
	}
	return urls
}

// ReadingTime is ceil(words/WordsPerMinute) minutes, at least 1.
func ReadingTime(content string) int {
	words := len(strings.Fields(content))
	minutes := int(math.Ceil(float64(words) / WordsPerMinute))
	return max(minutes, 1)
}

// TaxonomyInput names the category and tags to attach on write.
// A nil Category or Tags leaves that association unchanged; an empty
// Category detaches the post from its category.
type TaxonomyInput struct {
	Category *string
	Tags     *[]string
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
