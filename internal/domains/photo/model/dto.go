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

// CreatePhotoRequest - POST /admin/photos
type CreatePhotoRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	Thumbnail   *string  `json:"thumbnail"`
	Category    *string  `json:"category"`
	Tags        []string `json:"tags"`
	Featured    *bool    `json:"featured"`
	Visible     *bool    `json:"visible"`
}

// Normalize trims text and upper-cases the category before validation.
func (r *CreatePhotoRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.ImageURL = strings.TrimSpace(r.ImageURL)
	r.Description = trimPtr(r.Description)
	r.Thumbnail = trimPtr(r.Thumbnail)
	if r.Category != nil {
		upper := strings.ToUpper(strings.TrimSpace(*r.Category))
		r.Category = &upper
	}
	r.Tags = utils.NormalizeTags(r.Tags)
}

func (r CreatePhotoRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.RuneLength(1, 200),
		),
		validation.Field(&r.ImageURL,
			validation.Required.Error("imageUrl is required"),
			is.URL.Error("imageUrl must be a valid URL"),
		),
		validation.Field(&r.Thumbnail, is.URL.Error("thumbnail must be a valid URL")),
		validation.Field(&r.Category, validation.In(categoryValues()...).Error("unknown photo category")),
		validation.Field(&r.Tags, validation.Each(validation.RuneLength(1, 50))),
	)
}

// UpdatePhotoRequest - PUT/PATCH /admin/photos/:id. Nil fields are left unchanged.
type UpdatePhotoRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	ImageURL    *string   `json:"imageUrl"`
	Thumbnail   *string   `json:"thumbnail"`
	Category    *string   `json:"category"`
	Tags        *[]string `json:"tags"`
	Featured    *bool     `json:"featured"`
	Visible     *bool     `json:"visible"`
}

func (r *UpdatePhotoRequest) Normalize() {
	r.Title = trimPtr(r.Title)
	r.ImageURL = trimPtr(r.ImageURL)
	r.Description = trimPtr(r.Description)
	r.Thumbnail = trimPtr(r.Thumbnail)
	if r.Category != nil {
		upper := strings.ToUpper(strings.TrimSpace(*r.Category))
		r.Category = &upper
	}
	if r.Tags != nil {
		tags := utils.NormalizeTags(*r.Tags)
		r.Tags = &tags
	}
}

func (r UpdatePhotoRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title cannot be empty"),
			validation.RuneLength(1, 200),
		),
		validation.Field(&r.ImageURL,
			validation.NilOrNotEmpty.Error("imageUrl cannot be empty"),
			is.URL.Error("imageUrl must be a valid URL"),
		),
		validation.Field(&r.Thumbnail, is.URL.Error("thumbnail must be a valid URL")),
		validation.Field(&r.Category, validation.In(categoryValues()...).Error("unknown photo category")),
		validation.Field(&r.Tags, validation.By(func(value interface{}) error {
			if tags, _ := value.(*[]string); tags != nil {
				return validation.Validate(*tags, validation.Each(validation.RuneLength(1, 50)))
			}
			return nil
		})),
	)
}

// Apply overwrites the fields that were sent. An empty description or
// thumbnail clears the stored value.
func (r UpdatePhotoRequest) Apply(p *Photo) {
	if r.Title != nil {
		p.Title = *r.Title
	}
	if r.Description != nil {
		p.Description = utils.NilIfEmpty(*r.Description)
	}
	if r.ImageURL != nil {
		p.ImageURL = *r.ImageURL
	}
	if r.Thumbnail != nil {
		p.Thumbnail = utils.NilIfEmpty(*r.Thumbnail)
	}
	if r.Category != nil && *r.Category != "" {
		p.Category = Category(*r.Category)
	}
	if r.Tags != nil {
		p.Tags = append(p.Tags[:0:0], *r.Tags...)
	}
	if r.Featured != nil {
		p.Featured = *r.Featured
	}
	if r.Visible != nil {
		p.Visible = *r.Visible
	}
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
