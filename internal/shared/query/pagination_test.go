package query

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		total, page, limit int
		totalPages         int
		hasNext, hasPrev   bool
	}{
		{total: 0, page: 1, limit: 20, totalPages: 0, hasNext: false, hasPrev: false},
		{total: 1, page: 1, limit: 20, totalPages: 1, hasNext: false, hasPrev: false},
		{total: 20, page: 1, limit: 20, totalPages: 1, hasNext: false, hasPrev: false},
		{total: 21, page: 1, limit: 20, totalPages: 2, hasNext: true, hasPrev: false},
		{total: 21, page: 2, limit: 20, totalPages: 2, hasNext: false, hasPrev: true},
		{total: 100, page: 5, limit: 12, totalPages: 9, hasNext: true, hasPrev: true},
		{total: 10, page: 7, limit: 5, totalPages: 2, hasNext: false, hasPrev: true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("total=%d page=%d limit=%d", tt.total, tt.page, tt.limit), func(t *testing.T) {
			p := NewPagination(tt.total, tt.page, tt.limit)
			assert.Equal(t, tt.totalPages, p.TotalPages)
			assert.Equal(t, tt.hasNext, p.HasNext)
			assert.Equal(t, tt.hasPrev, p.HasPrev)
			assert.Equal(t, tt.total, p.TotalCount)
		})
	}
}

func TestNewPagination_CeilProperty(t *testing.T) {
	for total := 0; total <= 60; total++ {
		for limit := 1; limit <= 13; limit++ {
			p := NewPagination(total, 1, limit)
			want := total / limit
			if total%limit != 0 {
				want++
			}
			require.Equal(t, want, p.TotalPages)
			for page := 1; page <= want+1; page++ {
				require.Equal(t, page < want, NewPagination(total, page, limit).HasNext)
			}
		}
	}
}

type fakeLister struct {
	items    []string
	countErr error
	findErr  error
}

func (f fakeLister) Count(ctx context.Context, spec Spec) (int, error) {
	return len(f.items), f.countErr
}

func (f fakeLister) Find(ctx context.Context, spec Spec) ([]string, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	end := min(spec.Skip()+spec.Take(), len(f.items))
	if spec.Skip() >= end {
		return nil, nil
	}
	return f.items[spec.Skip():end], nil
}

func TestFetchPage(t *testing.T) {
	l := fakeLister{items: []string{"a", "b", "c", "d", "e"}}

	t.Run("middle page", func(t *testing.T) {
		page, err := FetchPage[string](context.Background(), l, Spec{Page: 2, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, []string{"c", "d"}, page.Items)
		assert.Equal(t, 3, page.Pagination.TotalPages)
		assert.True(t, page.Pagination.HasNext)
		assert.True(t, page.Pagination.HasPrev)
	})

	t.Run("past the end is empty, not nil", func(t *testing.T) {
		page, err := FetchPage[string](context.Background(), l, Spec{Page: 9, Limit: 2})
		require.NoError(t, err)
		assert.NotNil(t, page.Items)
		assert.Empty(t, page.Items)
		assert.False(t, page.Pagination.HasNext)
	})

	t.Run("count failure", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := FetchPage[string](context.Background(), fakeLister{countErr: boom}, Spec{Page: 1, Limit: 2})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("find failure", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := FetchPage[string](context.Background(), fakeLister{findErr: boom}, Spec{Page: 1, Limit: 2})
		assert.ErrorIs(t, err, boom)
	})
}

func TestMap(t *testing.T) {
	in := Page[int]{Items: []int{1, 2}, Pagination: NewPagination(2, 1, 10)}
	out := Map(in, func(i int) string { return fmt.Sprint(i * 10) })
	assert.Equal(t, []string{"10", "20"}, out.Items)
	assert.Equal(t, in.Pagination, out.Pagination)
}
