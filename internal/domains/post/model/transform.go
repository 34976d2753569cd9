package model

import (
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/shared/query"
)

type PostResponse struct {
	ID              uuid.UUID     `json:"id"`
	Title           string        `json:"title"`
	Slug            string        `json:"slug"`
	Content         string        `json:"content"`
	Excerpt         string        `json:"excerpt"`
	CoverImage      string        `json:"coverImage"`
	Category        *BlogCategory `json:"category"`
	Tags            []BlogTag     `json:"tags"`
	Published       bool          `json:"published"`
	Featured        bool          `json:"featured"`
	PublishedAt     *time.Time    `json:"publishedAt"`
	ReadingTime     int           `json:"readingTime"`
	MetaTitle       string        `json:"metaTitle"`
	MetaDescription string        `json:"metaDescription"`
	MetaKeywords    string        `json:"metaKeywords"`
	OGImage         string        `json:"ogImage"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// ToResponse passes the post through with tags never null. A missing
// stored reading time is computed from the content.
func ToResponse(p Post) PostResponse {
	resp := PostResponse{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Content:     p.Content,
		Excerpt:     deref(p.Excerpt),
		CoverImage:  deref(p.CoverImage),
		Tags:        []BlogTag{},
		Published:   p.Published,
		Featured:    p.Featured,
		PublishedAt: p.PublishedAt,
		ReadingTime: p.ReadingTime,

		MetaTitle:       deref(p.MetaTitle),
		MetaDescription: deref(p.MetaDescription),
		MetaKeywords:    deref(p.MetaKeywords),
		OGImage:         deref(p.OGImage),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	if p.Category != nil {
		c := *p.Category
		resp.Category = &c
	}
	if len(p.Tags) > 0 {
		resp.Tags = append(resp.Tags, p.Tags...)
	}
	if resp.ReadingTime < 1 {
		resp.ReadingTime = ReadingTime(p.Content)
	}
	return resp
}

type ListPostsResponse struct {
	Posts      []PostResponse   `json:"posts"`
	Pagination query.Pagination `json:"pagination"`
}

type ListCategoriesResponse struct {
	Categories []BlogCategory `json:"categories"`
}

type ListTagsResponse struct {
	Tags []BlogTag `json:"tags"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
