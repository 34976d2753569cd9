package query

import (
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var photoOpts = Options{DefaultLimit: 20, CategoryCase: CategoryUpper}

func TestParse_Defaults(t *testing.T) {
	spec, err := Parse(url.Values{}, photoOpts, true)
	require.NoError(t, err)

	assert.Equal(t, 1, spec.Page)
	assert.Equal(t, 20, spec.Limit)
	assert.Equal(t, 0, spec.Skip())
	assert.Equal(t, 20, spec.Take())
	assert.Equal(t, []Filter{PublicOnlyFilter{}}, spec.Filters)
	assert.True(t, spec.IsPublic())
}

func TestParse_AllParameters(t *testing.T) {
	values := url.Values{
		"page":     {"3"},
		"limit":    {"5"},
		"category": {"nature"},
		"tag":      {"Sunset"},
		"search":   {"  golden hour "},
		"featured": {"true"},
	}

	spec, err := Parse(values, photoOpts, false)
	require.NoError(t, err)

	assert.Equal(t, 10, spec.Skip())
	assert.Equal(t, 5, spec.Take())
	assert.Equal(t, []Filter{
		CategoryFilter{Value: "NATURE"},
		TagFilter{Value: "sunset"},
		SearchFilter{Term: "golden hour"},
		FeaturedFilter{Value: true},
	}, spec.Filters)
	assert.False(t, spec.IsPublic())
}

func TestParse_LowerCategory(t *testing.T) {
	spec, err := Parse(url.Values{"category": {"Web-Dev"}}, Options{DefaultLimit: 12, CategoryCase: CategoryLower}, true)
	require.NoError(t, err)
	assert.Contains(t, spec.Filters, Filter(CategoryFilter{Value: "web-dev"}))
}

func TestParse_LimitCapped(t *testing.T) {
	spec, err := Parse(url.Values{"limit": {"500"}}, photoOpts, true)
	require.NoError(t, err)
	assert.Equal(t, MaxLimit, spec.Limit)
}

func TestParse_LargestPageKeepsSkipPositive(t *testing.T) {
	values := url.Values{"page": {strconv.Itoa(MaxPage)}, "limit": {"500"}}

	spec, err := Parse(values, photoOpts, true)
	require.NoError(t, err)
	assert.Equal(t, MaxPage, spec.Page)
	assert.Positive(t, spec.Skip())
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		values url.Values
		param  string
	}{
		{"non-numeric page", url.Values{"page": {"abc"}}, "page"},
		{"zero page", url.Values{"page": {"0"}}, "page"},
		{"negative limit", url.Values{"limit": {"-4"}}, "limit"},
		{"fractional limit", url.Values{"limit": {"2.5"}}, "limit"},
		{"page overflowing skip", url.Values{"page": {"92233720368547760"}, "limit": {"100"}}, "page"},
		{"page beyond int", url.Values{"page": {"99999999999999999999"}}, "page"},
		{"non-boolean featured", url.Values{"featured": {"yes"}}, "featured"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.values, photoOpts, true)
			require.Error(t, err)

			var perr *ParamError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.param, perr.Param)
		})
	}
}

func TestSpec_WithDoesNotAlias(t *testing.T) {
	base := Spec{Filters: make([]Filter, 0, 4), Page: 1, Limit: 10}
	a := base.With(TagFilter{Value: "a"})
	b := base.With(TagFilter{Value: "b"})

	assert.Equal(t, []Filter{TagFilter{Value: "a"}}, a.Filters)
	assert.Equal(t, []Filter{TagFilter{Value: "b"}}, b.Filters)
	assert.Empty(t, base.Filters)
}
