// File: internal/query/filter.go
package query

import (
	"fmt"
	"strings"
)

// Filters accumulates optional predicates in call order and renders them as a
// parameterized WHERE clause. Only column names chosen by the caller are ever
// inlined into SQL; every value travels through the positional argument list.
type Filters struct {
	conds []string
	args  []any
}

// Equals adds an exact-match predicate: column = $n.
func (f *Filters) Equals(column string, value any) {
	f.conds = append(f.conds, fmt.Sprintf("%s = $%d", column, len(f.args)+1))
	f.args = append(f.args, value)
}

// Fuzzy adds a case-insensitive substring match across one or more columns,
// OR-joined, binding the wrapped term once and reusing its placeholder.
// Wildcard metacharacters inside term are not escaped.
func (f *Filters) Fuzzy(term string, columns ...string) {
	n := len(f.args) + 1
	parts := make([]string, len(columns))
	for i, col := range columns {
		parts[i] = fmt.Sprintf("%s ILIKE $%d", col, n)
	}
	f.conds = append(f.conds, "("+strings.Join(parts, " OR ")+")")
	f.args = append(f.args, "%"+term+"%")
}

// Where renders the accumulated predicates as " WHERE a AND b" plus the bound
// values in placeholder order. With no predicates it returns "" and nil so the
// query is emitted without a WHERE clause.
func (f *Filters) Where() (string, []any) {
	if len(f.conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(f.conds, " AND "), f.args
}

// NextIndex is the positional index the next placeholder after the filters
// should use, so LIMIT/OFFSET continue the sequence.
func (f *Filters) NextIndex() int {
	return len(f.args) + 1
}
