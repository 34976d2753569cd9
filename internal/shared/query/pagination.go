package query

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Pagination is the metadata attached to every list response.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalCount int  `json:"totalCount"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// NewPagination computes totalPages = ceil(total/limit). page is not clamped.
func NewPagination(total, page, limit int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		TotalCount: total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// Page is one page of items plus its metadata.
type Page[T any] struct {
	Items      []T
	Pagination Pagination
}

// Lister is implemented by every collection repository.
type Lister[T any] interface {
	Count(ctx context.Context, spec Spec) (int, error)
	Find(ctx context.Context, spec Spec) ([]T, error)
}

// FetchPage runs Count and Find concurrently and joins them.
// Either failure cancels the other.
func FetchPage[T any](ctx context.Context, l Lister[T], spec Spec) (Page[T], error) {
	var (
		total int
		items []T
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := l.Count(gctx, spec)
		total = n
		return err
	})
	g.Go(func() error {
		rows, err := l.Find(gctx, spec)
		items = rows
		return err
	})
	if err := g.Wait(); err != nil {
		return Page[T]{}, err
	}

	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Pagination: NewPagination(total, spec.Page, spec.Limit)}, nil
}

// Map transforms the items of a page, keeping the metadata.
func Map[T, R any](p Page[T], fn func(T) R) Page[R] {
	out := make([]R, len(p.Items))
	for i, item := range p.Items {
		out[i] = fn(item)
	}
	return Page[R]{Items: out, Pagination: p.Pagination}
}
