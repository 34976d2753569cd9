package service

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/post/model"
	"portfolio-backend/internal/shared/query"
)

type ServiceInterface interface {
	List(ctx context.Context, spec query.Spec) (query.Page[model.PostResponse], error)
	Get(ctx context.Context, id uuid.UUID, publicOnly bool) (*model.PostResponse, error)
	GetBySlug(ctx context.Context, slug string, publicOnly bool) (*model.PostResponse, error)
	Create(ctx context.Context, req model.CreatePostRequest) (*model.PostResponse, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdatePostRequest) (*model.PostResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.PostResponse, error)
	ListCategories(ctx context.Context) ([]model.BlogCategory, error)
	ListTags(ctx context.Context) ([]model.BlogTag, error)
}
