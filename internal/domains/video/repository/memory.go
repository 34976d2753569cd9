package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/video/model"
	"portfolio-backend/internal/infrastructure/memstore"
	"portfolio-backend/internal/shared/query"
)

type memoryRepository struct {
	table *memstore.Table[model.Video]
}

func NewMemoryRepository() Repository {
	return &memoryRepository{table: memstore.NewTable(model.Video.Clone)}
}

func matches(v model.Video, spec query.Spec) bool {
	for _, f := range spec.Filters {
		switch f := f.(type) {
		case query.CategoryFilter:
			if string(v.Category) != f.Value {
				return false
			}
		case query.TagFilter:
			if !slices.ContainsFunc(v.Tags, func(t string) bool { return strings.ToLower(t) == f.Value }) {
				return false
			}
		case query.SearchFilter:
			term := strings.ToLower(f.Term)
			desc := ""
			if v.Description != nil {
				desc = strings.ToLower(*v.Description)
			}
			if !strings.Contains(strings.ToLower(v.Title), term) && !strings.Contains(desc, term) {
				return false
			}
		case query.FeaturedFilter:
			if v.Featured != f.Value {
				return false
			}
		case query.PublicOnlyFilter:
			if !v.Visible {
				return false
			}
		}
	}
	return true
}

func (r *memoryRepository) Count(ctx context.Context, spec query.Spec) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return r.table.Count(func(v model.Video) bool { return matches(v, spec) }), nil
}

func (r *memoryRepository) Find(ctx context.Context, spec query.Spec) ([]model.Video, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows := r.table.Select(func(v model.Video) bool { return matches(v, spec) })
	slices.SortFunc(rows, func(a, b model.Video) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID.String(), a.ID.String())
	})
	return memstore.Paginate(rows, spec.Skip(), spec.Take()), nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v, ok := r.table.Get(id)
	if !ok {
		return nil, model.ErrVideoNotFound
	}
	return &v, nil
}

func (r *memoryRepository) Create(ctx context.Context, v *model.Video) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.table.Insert(v.ID, *v); err != nil {
		return fmt.Errorf("insert video: %w", err)
	}
	return nil
}

func (r *memoryRepository) Update(ctx context.Context, v *model.Video) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := r.table.Update(v.ID, func(stored *model.Video) error {
		createdAt := stored.CreatedAt
		*stored = v.Clone()
		stored.CreatedAt = createdAt
		return nil
	})
	if errors.Is(err, memstore.ErrNotFound) {
		return model.ErrVideoNotFound
	}
	return err
}

func (r *memoryRepository) Delete(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v, ok := r.table.Delete(id)
	if !ok {
		return nil, model.ErrVideoNotFound
	}
	return &v, nil
}
