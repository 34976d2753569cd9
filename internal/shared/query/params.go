package query

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultPage = 1
	MaxLimit    = 100

	// MaxPage keeps (page-1)*limit within int for any accepted limit.
	MaxPage = math.MaxInt / MaxLimit
)

// CategoryCase controls how the category parameter is normalized.
type CategoryCase int

const (
	CategoryUpper CategoryCase = iota // photo/video enums
	CategoryLower                     // post category slugs
)

// Options are the per-collection parsing defaults.
type Options struct {
	DefaultLimit int
	CategoryCase CategoryCase
}

// ParamError is returned for malformed list parameters.
type ParamError struct {
	Param string
	Value string
	Msg   string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Param, e.Value, e.Msg)
}

// Parse builds a Spec from query parameters. Absent parameters default;
// non-numeric or < 1 page/limit, page above MaxPage and non-boolean featured
// are rejected.
// limit above MaxLimit is capped. When public is true PublicOnlyFilter is added.
func Parse(values url.Values, opts Options, public bool) (Spec, error) {
	spec := Spec{Page: DefaultPage, Limit: opts.DefaultLimit}

	if raw := strings.TrimSpace(values.Get("page")); raw != "" {
		page, err := parsePositive("page", raw)
		if err != nil {
			return Spec{}, err
		}
		if page > MaxPage {
			return Spec{}, &ParamError{Param: "page", Value: raw, Msg: fmt.Sprintf("must be at most %d", MaxPage)}
		}
		spec.Page = page
	}

	if raw := strings.TrimSpace(values.Get("limit")); raw != "" {
		limit, err := parsePositive("limit", raw)
		if err != nil {
			return Spec{}, err
		}
		spec.Limit = min(limit, MaxLimit)
	}

	if category := strings.TrimSpace(values.Get("category")); category != "" {
		if opts.CategoryCase == CategoryUpper {
			category = strings.ToUpper(category)
		} else {
			category = strings.ToLower(category)
		}
		spec.Filters = append(spec.Filters, CategoryFilter{Value: category})
	}

	if tag := strings.ToLower(strings.TrimSpace(values.Get("tag"))); tag != "" {
		spec.Filters = append(spec.Filters, TagFilter{Value: tag})
	}

	if search := strings.TrimSpace(values.Get("search")); search != "" {
		spec.Filters = append(spec.Filters, SearchFilter{Term: search})
	}

	if raw := strings.TrimSpace(values.Get("featured")); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			return Spec{}, &ParamError{Param: "featured", Value: raw, Msg: "must be true or false"}
		}
		spec.Filters = append(spec.Filters, FeaturedFilter{Value: featured})
	}

	if public {
		spec.Filters = append(spec.Filters, PublicOnlyFilter{})
	}

	return spec, nil
}

func parsePositive(name, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ParamError{Param: name, Value: raw, Msg: "must be an integer"}
	}
	if n < 1 {
		return 0, &ParamError{Param: name, Value: raw, Msg: "must be at least 1"}
	}
	return n, nil
}
