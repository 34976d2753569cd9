package utils

import (
	"fmt"
	"strings"
)

// WhereBuilder accumulates SQL predicates with positional ($n) arguments.
type WhereBuilder struct {
	clauses []string
	args    []any
}

// Arg registers a value and returns its placeholder.
func (w *WhereBuilder) Arg(v any) string {
	w.args = append(w.args, v)
	return fmt.Sprintf("$%d", len(w.args))
}

// Add appends a predicate that may reference placeholders obtained from Arg.
func (w *WhereBuilder) Add(clause string) {
	w.clauses = append(w.clauses, clause)
}

// SQL renders "WHERE a AND b", or "" when empty.
func (w *WhereBuilder) SQL() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return "WHERE " + JoinWithAnd(w.clauses)
}

func (w *WhereBuilder) Args() []any {
	return w.args
}

// JoinWithAnd joins clauses with AND
func JoinWithAnd(clauses []string) string {
	return strings.Join(clauses, " AND ")
}

// JoinWithOr joins clauses with OR, parenthesised
func JoinWithOr(clauses []string) string {
	return "(" + strings.Join(clauses, " OR ") + ")"
}

// EscapeLike escapes LIKE wildcards so user search text matches literally.
func EscapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
