package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Category string

const (
	CategoryTech     Category = "TECH"
	CategoryTutorial Category = "TUTORIAL"
	CategoryProject  Category = "PROJECT"
	CategoryVlog     Category = "VLOG"
	CategoryOther    Category = "OTHER"

	DefaultCategory = CategoryTech
)

var Categories = []Category{CategoryTech, CategoryTutorial, CategoryProject, CategoryVlog, CategoryOther}

func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Categories {
		if c == known {
			return c, true
		}
	}
	return "", false
}

// Video is a row of the videos table. YoutubeID may hold legacy values
// that are not valid identifiers; the transform copes with those.
type Video struct {
	ID          uuid.UUID      `json:"id" db:"id"`
	Title       string         `json:"title" db:"title"`
	Description *string        `json:"description" db:"description"`
	YoutubeID   *string        `json:"youtube_id" db:"youtube_id"`
	VideoURL    *string        `json:"video_url" db:"video_url"`
	Thumbnail   *string        `json:"thumbnail" db:"thumbnail"`
	Category    Category       `json:"category" db:"category"`
	Tags        pq.StringArray `json:"tags" db:"tags"`
	Featured    bool           `json:"featured" db:"featured"`
	Visible     bool           `json:"visible" db:"visible"`
	Duration    *int           `json:"duration" db:"duration"` // seconds
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`
}

func (v Video) Clone() Video {
	out := v
	if v.Tags != nil {
		out.Tags = append(pq.StringArray(nil), v.Tags...)
	}
	out.Description = clonePtr(v.Description)
	out.YoutubeID = clonePtr(v.YoutubeID)
	out.VideoURL = clonePtr(v.VideoURL)
	out.Thumbnail = clonePtr(v.Thumbnail)
	out.Duration = clonePtr(v.Duration)
	return out
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
