package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"portfolio-backend/internal/shared/utils"
)

func categoryValues() []interface{} {
	out := make([]interface{}, len(Categories))
	for i, c := range Categories {
		out[i] = string(c)
	}
	return out
}

// CreateVideoRequest - POST /admin/videos. The identifier is derived from YoutubeURL.
type CreateVideoRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	YoutubeURL  string   `json:"youtubeUrl"`
	VideoURL    *string  `json:"videoUrl"`
	Thumbnail   *string  `json:"thumbnail"`
	Category    *string  `json:"category"`
	Tags        []string `json:"tags"`
	Featured    *bool    `json:"featured"`
	Visible     *bool    `json:"visible"`
	Duration    *int     `json:"duration"`
}

func (r *CreateVideoRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.YoutubeURL = strings.TrimSpace(r.YoutubeURL)
	r.Description = trimPtr(r.Description)
	r.VideoURL = trimPtr(r.VideoURL)
	r.Thumbnail = trimPtr(r.Thumbnail)
	r.Category = upperPtr(r.Category)
	r.Tags = utils.NormalizeTags(r.Tags)
}

func (r CreateVideoRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.RuneLength(1, 200),
		),
		validation.Field(&r.YoutubeURL, validation.Required.Error("youtubeUrl is required")),
		validation.Field(&r.VideoURL, is.URL.Error("videoUrl must be a valid URL")),
		validation.Field(&r.Thumbnail, is.URL.Error("thumbnail must be a valid URL")),
		validation.Field(&r.Category, validation.In(categoryValues()...).Error("unknown video category")),
		validation.Field(&r.Tags, validation.Each(validation.RuneLength(1, 50))),
		validation.Field(&r.Duration, validation.Min(0).Error("duration must not be negative")),
	)
}

// UpdateVideoRequest - PUT/PATCH /admin/videos/:id. Nil fields are left unchanged.
type UpdateVideoRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	YoutubeURL  *string   `json:"youtubeUrl"`
	VideoURL    *string   `json:"videoUrl"`
	Thumbnail   *string   `json:"thumbnail"`
	Category    *string   `json:"category"`
	Tags        *[]string `json:"tags"`
	Featured    *bool     `json:"featured"`
	Visible     *bool     `json:"visible"`
	Duration    *int      `json:"duration"`
}

func (r *UpdateVideoRequest) Normalize() {
	r.Title = trimPtr(r.Title)
	r.YoutubeURL = trimPtr(r.YoutubeURL)
	r.Description = trimPtr(r.Description)
	r.VideoURL = trimPtr(r.VideoURL)
	r.Thumbnail = trimPtr(r.Thumbnail)
	r.Category = upperPtr(r.Category)
	if r.Tags != nil {
		tags := utils.NormalizeTags(*r.Tags)
		r.Tags = &tags
	}
}

func (r UpdateVideoRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title cannot be empty"),
			validation.RuneLength(1, 200),
		),
		validation.Field(&r.YoutubeURL, validation.NilOrNotEmpty.Error("youtubeUrl cannot be empty")),
		validation.Field(&r.VideoURL, is.URL.Error("videoUrl must be a valid URL")),
		validation.Field(&r.Thumbnail, is.URL.Error("thumbnail must be a valid URL")),
		validation.Field(&r.Category, validation.In(categoryValues()...).Error("unknown video category")),
		validation.Field(&r.Duration, validation.Min(0).Error("duration must not be negative")),
	)
}

// Apply overwrites the sent fields except YoutubeURL, which the service
// resolves because it can fail.
func (r UpdateVideoRequest) Apply(v *Video) {
	if r.Title != nil {
		v.Title = *r.Title
	}
	if r.Description != nil {
		v.Description = utils.NilIfEmpty(*r.Description)
	}
	if r.VideoURL != nil {
		v.VideoURL = utils.NilIfEmpty(*r.VideoURL)
	}
	if r.Thumbnail != nil {
		v.Thumbnail = utils.NilIfEmpty(*r.Thumbnail)
	}
	if r.Category != nil && *r.Category != "" {
		v.Category = Category(*r.Category)
	}
	if r.Tags != nil {
		v.Tags = append(v.Tags[:0:0], *r.Tags...)
	}
	if r.Featured != nil {
		v.Featured = *r.Featured
	}
	if r.Visible != nil {
		v.Visible = *r.Visible
	}
	if r.Duration != nil {
		v.Duration = r.Duration
	}
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

func upperPtr(s *string) *string {
	if s == nil {
		return nil
	}
	u := strings.ToUpper(strings.TrimSpace(*s))
	return &u
}
