package model

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/shared/query"
)

// PhotoResponse is the client shape of a photo.
type PhotoResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Thumbnail   string    `json:"thumbnail"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	Featured    bool      `json:"featured"`
	Visible     bool      `json:"visible"`
	Likes       int       `json:"likes"`
	Views       int       `json:"views"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToResponse never fails: category is lower-cased, tags are never null,
// counters default to 0 and the thumbnail falls back to the image.
func ToResponse(p Photo) PhotoResponse {
	resp := PhotoResponse{
		ID:        p.ID,
		Title:     p.Title,
		ImageURL:  p.ImageURL,
		Thumbnail: p.ImageURL,
		Category:  strings.ToLower(string(p.Category)),
		Tags:      []string{},
		Featured:  p.Featured,
		Visible:   p.Visible,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.Description != nil {
		resp.Description = *p.Description
	}
	if p.Thumbnail != nil && *p.Thumbnail != "" {
		resp.Thumbnail = *p.Thumbnail
	}
	if len(p.Tags) > 0 {
		resp.Tags = append(resp.Tags, p.Tags...)
	}
	if p.Likes != nil {
		resp.Likes = *p.Likes
	}
	if p.Views != nil {
		resp.Views = *p.Views
	}
	return resp
}

// ListPhotosResponse is the list envelope.
type ListPhotosResponse struct {
	Photos     []PhotoResponse  `json:"photos"`
	Pagination query.Pagination `json:"pagination"`
}
