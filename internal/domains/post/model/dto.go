package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"portfolio-backend/internal/shared/utils"
)

// CreatePostRequest - POST /admin/blog
type CreatePostRequest struct {
	Title           string   `json:"title"`
	Content         string   `json:"content"`
	Excerpt         *string  `json:"excerpt"`
	CoverImage      *string  `json:"coverImage"`
	Category        *string  `json:"category"`
	Tags            []string `json:"tags"`
	Published       *bool    `json:"published"`
	Featured        *bool    `json:"featured"`
	MetaTitle       *string  `json:"metaTitle"`
	MetaDescription *string  `json:"metaDescription"`
	MetaKeywords    *string  `json:"metaKeywords"`
	OGImage         *string  `json:"ogImage"`
}

func (r *CreatePostRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Excerpt = trimPtr(r.Excerpt)
	r.CoverImage = trimPtr(r.CoverImage)
	r.Category = trimPtr(r.Category)
	r.Tags = NormalizeTagNames(r.Tags)
	r.MetaTitle = trimPtr(r.MetaTitle)
	r.MetaDescription = trimPtr(r.MetaDescription)
	r.MetaKeywords = trimPtr(r.MetaKeywords)
	r.OGImage = trimPtr(r.OGImage)
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.RuneLength(1, 200),
		),
		validation.Field(&r.Content, validation.Required.Error("content is required")),
		validation.Field(&r.Excerpt, validation.RuneLength(0, 500)),
		validation.Field(&r.CoverImage, is.URL.Error("coverImage must be a valid URL")),
		validation.Field(&r.Category, validation.RuneLength(0, 100)),
		validation.Field(&r.Tags, validation.Each(validation.RuneLength(1, 50))),
		validation.Field(&r.MetaTitle, validation.RuneLength(0, 200)),
		validation.Field(&r.MetaDescription, validation.RuneLength(0, 500)),
		validation.Field(&r.OGImage, is.URL.Error("ogImage must be a valid URL")),
	)
}

// Taxonomy returns the category and tag names to attach on create.
func (r CreatePostRequest) Taxonomy() TaxonomyInput {
	tags := r.Tags
	return TaxonomyInput{Category: r.Category, Tags: &tags}
}

// UpdatePostRequest - PUT/PATCH /admin/blog/:id. Nil fields are left
// unchanged and the slug is never recomputed.
type UpdatePostRequest struct {
	Title           *string   `json:"title"`
	Content         *string   `json:"content"`
	Excerpt         *string   `json:"excerpt"`
	CoverImage      *string   `json:"coverImage"`
	Category        *string   `json:"category"`
	Tags            *[]string `json:"tags"`
	Published       *bool     `json:"published"`
	Featured        *bool     `json:"featured"`
	MetaTitle       *string   `json:"metaTitle"`
	MetaDescription *string   `json:"metaDescription"`
	MetaKeywords    *string   `json:"metaKeywords"`
	OGImage         *string   `json:"ogImage"`
}

func (r *UpdatePostRequest) Normalize() {
	r.Title = trimPtr(r.Title)
	r.Excerpt = trimPtr(r.Excerpt)
	r.CoverImage = trimPtr(r.CoverImage)
	r.Category = trimPtr(r.Category)
	if r.Tags != nil {
		tags := NormalizeTagNames(*r.Tags)
		r.Tags = &tags
	}
	r.MetaTitle = trimPtr(r.MetaTitle)
	r.MetaDescription = trimPtr(r.MetaDescription)
	r.MetaKeywords = trimPtr(r.MetaKeywords)
	r.OGImage = trimPtr(r.OGImage)
}

func (r UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title cannot be empty"),
			validation.RuneLength(1, 200),
		),
		validation.Field(&r.Content, validation.NilOrNotEmpty.Error("content cannot be empty")),
		validation.Field(&r.Excerpt, validation.RuneLength(0, 500)),
		validation.Field(&r.CoverImage, is.URL.Error("coverImage must be a valid URL")),
		validation.Field(&r.Category, validation.RuneLength(0, 100)),
		validation.Field(&r.MetaTitle, validation.RuneLength(0, 200)),
		validation.Field(&r.MetaDescription, validation.RuneLength(0, 500)),
		validation.Field(&r.OGImage, is.URL.Error("ogImage must be a valid URL")),
	)
}

func (r UpdatePostRequest) Taxonomy() TaxonomyInput {
	return TaxonomyInput{Category: r.Category, Tags: r.Tags}
}

// Apply overwrites the sent scalar fields. Publishing, reading time and
// taxonomy are resolved by the service.
func (r UpdatePostRequest) Apply(p *Post) {
	if r.Title != nil {
		p.Title = *r.Title
	}
	if r.Content != nil {
		p.Content = *r.Content
	}
	if r.Excerpt != nil {
		p.Excerpt = utils.NilIfEmpty(*r.Excerpt)
	}
	if r.CoverImage != nil {
		p.CoverImage = utils.NilIfEmpty(*r.CoverImage)
	}
	if r.Published != nil {
		p.Published = *r.Published
	}
	if r.Featured != nil {
		p.Featured = *r.Featured
	}
	if r.MetaTitle != nil {
		p.MetaTitle = utils.NilIfEmpty(*r.MetaTitle)
	}
	if r.MetaDescription != nil {
		p.MetaDescription = utils.NilIfEmpty(*r.MetaDescription)
	}
	if r.MetaKeywords != nil {
		p.MetaKeywords = utils.NilIfEmpty(*r.MetaKeywords)
	}
	if r.OGImage != nil {
		p.OGImage = utils.NilIfEmpty(*r.OGImage)
	}
}

// NormalizeTagNames trims names and drops those whose slug is empty or
// repeats an earlier one. Display casing is kept.
func NormalizeTagNames(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		slug := utils.GenerateSlug(n)
		if slug == "" {
			continue
		}
		if _, ok := seen[slug]; ok {
			continue
		}
		seen[slug] = struct{}{}
		out = append(out, n)
	}
	return out
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
