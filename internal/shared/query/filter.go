// Package query turns list request parameters into a typed, store-agnostic
// filter specification and computes pagination metadata.
package query

// Filter is a closed set of list predicates. Stores type-switch over the
// concrete variants below; anything else is a programming error.
type Filter interface {
	isFilter()
}

// CategoryFilter matches the stored category exactly (already case-normalized).
type CategoryFilter struct {
	Value string
}

// TagFilter matches records carrying the tag (lower-case).
type TagFilter struct {
	Value string
}

// SearchFilter is a case-insensitive substring match over the
// collection's text columns, OR-combined.
type SearchFilter struct {
	Term string
}

// FeaturedFilter matches the featured flag.
type FeaturedFilter struct {
	Value bool
}

// PublicOnlyFilter restricts to visible photos/videos or published posts.
type PublicOnlyFilter struct{}

func (CategoryFilter) isFilter()   {}
func (TagFilter) isFilter()        {}
func (SearchFilter) isFilter()     {}
func (FeaturedFilter) isFilter()   {}
func (PublicOnlyFilter) isFilter() {}

// Spec is the full description of one list request.
// Ordering is always newest first.
type Spec struct {
	Filters []Filter
	Page    int
	Limit   int
}

// Skip is the row offset: (page-1)*limit.
func (s Spec) Skip() int {
	return (s.Page - 1) * s.Limit
}

// Take is the page size.
func (s Spec) Take() int {
	return s.Limit
}

// IsPublic reports whether the spec carries PublicOnlyFilter.
func (s Spec) IsPublic() bool {
	for _, f := range s.Filters {
		if _, ok := f.(PublicOnlyFilter); ok {
			return true
		}
	}
	return false
}

// With returns a copy of s with f appended.
func (s Spec) With(f Filter) Spec {
	filters := make([]Filter, 0, len(s.Filters)+1)
	filters = append(filters, s.Filters...)
	s.Filters = append(filters, f)
	return s
}
