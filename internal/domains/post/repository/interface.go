package repository

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/post/model"
	"portfolio-backend/internal/shared/query"
)

// Repository persists posts together with their category and tags.
// Create and Update resolve the TaxonomyInput (reusing records by slug)
// in the same transaction as the post write and fill post.Category and
// post.Tags. A slug collision is reported as model.ErrSlugTaken.
type Repository interface {
	query.Lister[model.Post]
	FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	FindBySlug(ctx context.Context, slug string) (*model.Post, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, post *model.Post, taxonomy model.TaxonomyInput) error
	Update(ctx context.Context, post *model.Post, taxonomy model.TaxonomyInput) error
	Delete(ctx context.Context, id uuid.UUID) (*model.Post, error)
	ListCategories(ctx context.Context) ([]model.BlogCategory, error)
	ListTags(ctx context.Context) ([]model.BlogTag, error)
}
