package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestToResponse_Defaults(t *testing.T) {
	p := Photo{
		ID:        uuid.New(),
		Title:     "Fog",
		ImageURL:  "https://cdn.example.com/photos/fog.jpg",
		Category:  CategoryNature,
		Visible:   true,
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	resp := ToResponse(p)

	assert.Equal(t, "nature", resp.Category)
	assert.Equal(t, p.ImageURL, resp.Thumbnail)
	assert.NotNil(t, resp.Tags)
	assert.Empty(t, resp.Tags)
	assert.Equal(t, 0, resp.Likes)
	assert.Equal(t, 0, resp.Views)
	assert.Equal(t, "", resp.Description)
	assert.True(t, resp.Visible)
}

func TestToResponse_StoredValuesWin(t *testing.T) {
	p := Photo{
		ImageURL:    "https://cdn.example.com/a.jpg",
		Thumbnail:   strPtr("https://cdn.example.com/a_thumb.jpg"),
		Description: strPtr("desc"),
		Category:    CategoryStreet,
		Tags:        pq.StringArray{"night", "city"},
		Likes:       intPtr(3),
		Views:       intPtr(40),
	}

	resp := ToResponse(p)

	assert.Equal(t, "https://cdn.example.com/a_thumb.jpg", resp.Thumbnail)
	assert.Equal(t, "desc", resp.Description)
	assert.Equal(t, "street", resp.Category)
	assert.Equal(t, []string{"night", "city"}, resp.Tags)
	assert.Equal(t, 3, resp.Likes)
	assert.Equal(t, 40, resp.Views)
}

func TestToResponse_EmptyThumbnailFallsBack(t *testing.T) {
	resp := ToResponse(Photo{ImageURL: "https://x/y.jpg", Thumbnail: strPtr("")})
	assert.Equal(t, "https://x/y.jpg", resp.Thumbnail)
}

func TestParseCategory(t *testing.T) {
	c, ok := ParseCategory(" travel ")
	assert.True(t, ok)
	assert.Equal(t, CategoryTravel, c)

	_, ok = ParseCategory("food")
	assert.False(t, ok)
}

func TestCreatePhotoRequest_Validate(t *testing.T) {
	valid := CreatePhotoRequest{Title: "t", ImageURL: "https://x/y.jpg"}
	assert.NoError(t, valid.Validate())

	t.Run("missing imageUrl", func(t *testing.T) {
		r := CreatePhotoRequest{Title: "t"}
		assert.Error(t, r.Validate())
	})

	t.Run("missing title", func(t *testing.T) {
		r := CreatePhotoRequest{ImageURL: "https://x/y.jpg"}
		assert.Error(t, r.Validate())
	})

	t.Run("unknown category", func(t *testing.T) {
		r := CreatePhotoRequest{Title: "t", ImageURL: "https://x/y.jpg", Category: strPtr("food")}
		r.Normalize()
		assert.Error(t, r.Validate())
	})

	t.Run("category is case-insensitive", func(t *testing.T) {
		r := CreatePhotoRequest{Title: "t", ImageURL: "https://x/y.jpg", Category: strPtr("portrait")}
		r.Normalize()
		assert.NoError(t, r.Validate())
		assert.Equal(t, "PORTRAIT", *r.Category)
	})
}

func TestUpdatePhotoRequest_Apply(t *testing.T) {
	p := Photo{Title: "old", Description: strPtr("d"), Tags: pq.StringArray{"a"}, Visible: true}
	tags := []string{"b", "c"}
	req := UpdatePhotoRequest{Title: strPtr("new"), Description: strPtr(""), Tags: &tags, Visible: new(bool)}
	req.Apply(&p)

	assert.Equal(t, "new", p.Title)
	assert.Nil(t, p.Description)
	assert.Equal(t, pq.StringArray{"b", "c"}, p.Tags)
	assert.False(t, p.Visible)
}

func TestUpdatePhotoRequest_RejectsEmptyTitle(t *testing.T) {
	req := UpdatePhotoRequest{Title: strPtr("  ")}
	req.Normalize()
	assert.Error(t, req.Validate())
}
