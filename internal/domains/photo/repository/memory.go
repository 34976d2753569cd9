package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/photo/model"
	"portfolio-backend/internal/infrastructure/memstore"
	"portfolio-backend/internal/shared/query"
)

type memoryRepository struct {
	table *memstore.Table[model.Photo]
}

// NewMemoryRepository backs STORE_DRIVER=memory and the service/handler tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{table: memstore.NewTable(model.Photo.Clone)}
}

func matches(p model.Photo, spec query.Spec) bool {
	for _, f := range spec.Filters {
		switch f := f.(type) {
		case query.CategoryFilter:
			if string(p.Category) != f.Value {
				return false
			}
		case query.TagFilter:
			if !slices.ContainsFunc(p.Tags, func(t string) bool { return strings.ToLower(t) == f.Value }) {
				return false
			}
		case query.SearchFilter:
			term := strings.ToLower(f.Term)
			desc := ""
			if p.Description != nil {
				desc = *p.Description
			}
			if !strings.Contains(strings.ToLower(p.Title), term) && !strings.Contains(strings.ToLower(desc), term) {
				return false
			}
		case query.FeaturedFilter:
			if p.Featured != f.Value {
				return false
			}
		case query.PublicOnlyFilter:
			if !p.Visible {
				return false
			}
		}
	}
	return true
}

func newestFirst(a, b model.Photo) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return strings.Compare(b.ID.String(), a.ID.String())
}

func (r *memoryRepository) Count(ctx context.Context, spec query.Spec) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return r.table.Count(func(p model.Photo) bool { return matches(p, spec) }), nil
}

func (r *memoryRepository) Find(ctx context.Context, spec query.Spec) ([]model.Photo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows := r.table.Select(func(p model.Photo) bool { return matches(p, spec) })
	slices.SortFunc(rows, newestFirst)
	return memstore.Paginate(rows, spec.Skip(), spec.Take()), nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Photo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, ok := r.table.Get(id)
	if !ok {
		return nil, model.ErrPhotoNotFound
	}
	return &p, nil
}

func (r *memoryRepository) Create(ctx context.Context, p *model.Photo) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.table.Insert(p.ID, *p); err != nil {
		return fmt.Errorf("insert photo: %w", err)
	}
	return nil
}

func (r *memoryRepository) Update(ctx context.Context, p *model.Photo) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := r.table.Update(p.ID, func(stored *model.Photo) error {
		createdAt := stored.CreatedAt
		*stored = p.Clone()
		stored.CreatedAt = createdAt
		return nil
	})
	if errors.Is(err, memstore.ErrNotFound) {
		return model.ErrPhotoNotFound
	}
	return err
}

func (r *memoryRepository) Delete(ctx context.Context, id uuid.UUID) (*model.Photo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, ok := r.table.Delete(id)
	if !ok {
		return nil, model.ErrPhotoNotFound
	}
	return &p, nil
}
