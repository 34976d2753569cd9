package service

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/video/model"
	"portfolio-backend/internal/shared/query"
)

type ServiceInterface interface {
	List(ctx context.Context, spec query.Spec) (query.Page[model.VideoResponse], error)
	Get(ctx context.Context, id uuid.UUID, publicOnly bool) (*model.VideoResponse, error)
	Create(ctx context.Context, req model.CreateVideoRequest) (*model.VideoResponse, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateVideoRequest) (*model.VideoResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.VideoResponse, error)
}
