package repository

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/photo/model"
	"portfolio-backend/internal/shared/query"
)

// Repository is implemented by the Postgres and memory stores.
type Repository interface {
	query.Lister[model.Photo]
	FindByID(ctx context.Context, id uuid.UUID) (*model.Photo, error)
	Create(ctx context.Context, photo *model.Photo) error
	// Update overwrites every column; no version check.
	Update(ctx context.Context, photo *model.Photo) error
	// Delete removes the row and returns it.
	Delete(ctx context.Context, id uuid.UUID) (*model.Photo, error)
}
