package repository

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/video/model"
	"portfolio-backend/internal/shared/query"
)

type Repository interface {
	query.Lister[model.Video]
	FindByID(ctx context.Context, id uuid.UUID) (*model.Video, error)
	Create(ctx context.Context, video *model.Video) error
	Update(ctx context.Context, video *model.Video) error
	Delete(ctx context.Context, id uuid.UUID) (*model.Video, error)
}
