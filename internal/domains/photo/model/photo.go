package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Category string

const (
	CategoryNature       Category = "NATURE"
	CategoryPortrait     Category = "PORTRAIT"
	CategoryStreet       Category = "STREET"
	CategoryCreative     Category = "CREATIVE"
	CategoryArchitecture Category = "ARCHITECTURE"
	CategoryTravel       Category = "TRAVEL"

	DefaultCategory = CategoryNature
)

var Categories = []Category{
	CategoryNature,
	CategoryPortrait,
	CategoryStreet,
	CategoryCreative,
	CategoryArchitecture,
	CategoryTravel,
}

// ParseCategory is case-insensitive.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Categories {
		if c == known {
			return c, true
		}
	}
	return "", false
}

// Photo is a row of the photos table.
type Photo struct {
	ID          uuid.UUID      `json:"id" db:"id"`
	Title       string         `json:"title" db:"title"`
	Description *string        `json:"description" db:"description"`
	ImageURL    string         `json:"image_url" db:"image_url"`
	Thumbnail   *string        `json:"thumbnail" db:"thumbnail"`
	Category    Category       `json:"category" db:"category"`
	Tags        pq.StringArray `json:"tags" db:"tags"`
	Featured    bool           `json:"featured" db:"featured"`
	Visible     bool           `json:"visible" db:"visible"`
	Likes       *int           `json:"likes" db:"likes"`
	Views       *int           `json:"views" db:"views"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`
}

// Clone deep-copies the slice and pointer fields.
func (p Photo) Clone() Photo {
	out := p
	if p.Tags != nil {
		out.Tags = append(pq.StringArray(nil), p.Tags...)
	}
	out.Description = clonePtr(p.Description)
	out.Thumbnail = clonePtr(p.Thumbnail)
	out.Likes = clonePtr(p.Likes)
	out.Views = clonePtr(p.Views)
	return out
}

// MediaURLs are the URLs this photo may own in object storage.
func (p Photo) MediaURLs() []string {
	urls := []string{p.ImageURL}
	if p.Thumbnail != nil && *p.Thumbnail != p.ImageURL {
		urls = append(urls, *p.Thumbnail)
	}
	return urls
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
