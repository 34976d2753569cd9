// Package dbtest fakes pgx rows for repository unit tests.
package dbtest

import (
	"database/sql"
	"fmt"
	"reflect"

	"github.com/lib/pq"
)

// Row satisfies pgx.Row. Values are assigned to the scan destinations in
// column order; Dest records what the repository passed in.
type Row struct {
	Values []any
	Err    error
	Dest   []any
}

func (r *Row) Scan(dest ...any) error {
	r.Dest = dest
	if r.Err != nil {
		return r.Err
	}
	if len(dest) != len(r.Values) {
		return fmt.Errorf("dbtest: %d values for %d destinations", len(r.Values), len(dest))
	}
	for i, d := range dest {
		if err := assign(d, r.Values[i]); err != nil {
			return fmt.Errorf("dbtest: column %d: %w", i, err)
		}
	}
	return nil
}

// assign mirrors what pgx does for the destinations repositories use:
// sql.Scanner gets the raw value, native slices accept array text such as
// "{a,b}", pointers to T become nil on NULL.
func assign(dest, src any) error {
	if s, ok := dest.(sql.Scanner); ok {
		return s.Scan(src)
	}
	if arr, ok := dest.(*[]string); ok {
		if text, ok := src.(string); ok {
			var parsed pq.StringArray
			if err := parsed.Scan(text); err != nil {
				return err
			}
			*arr = parsed
			return nil
		}
	}

	dv := reflect.ValueOf(dest)
	if dv.Kind() != reflect.Pointer || dv.IsNil() {
		return fmt.Errorf("destination %T is not a non-nil pointer", dest)
	}
	dv = dv.Elem()
	if src == nil {
		dv.SetZero()
		return nil
	}

	target := dv.Type()
	if target.Kind() == reflect.Pointer {
		target = target.Elem()
	}
	sv := reflect.ValueOf(src)
	if sv.Kind() != target.Kind() || !sv.Type().ConvertibleTo(target) {
		return fmt.Errorf("cannot assign %T to %s", src, dv.Type())
	}

	if dv.Kind() == reflect.Pointer {
		p := reflect.New(target)
		p.Elem().Set(sv.Convert(target))
		dv.Set(p)
		return nil
	}
	dv.Set(sv.Convert(target))
	return nil
}
