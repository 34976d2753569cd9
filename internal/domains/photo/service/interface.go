package service

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/photo/model"
	"portfolio-backend/internal/shared/query"
)

type ServiceInterface interface {
	List(ctx context.Context, spec query.Spec) (query.Page[model.PhotoResponse], error)
	// Get hides non-visible photos when publicOnly is set.
	Get(ctx context.Context, id uuid.UUID, publicOnly bool) (*model.PhotoResponse, error)
	Create(ctx context.Context, req model.CreatePhotoRequest) (*model.PhotoResponse, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdatePhotoRequest) (*model.PhotoResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.PhotoResponse, error)
}
