// Package query describes store lookups as plain values: a predicate tree,
// a column projection and nested relation fetches. Repositories translate a
// Spec into SQL (or ORM calls) for the tables they own.
package query

import (
	"errors"
	"fmt"
	"sort"

	sq "github.com/Masterminds/squirrel"
)

var ErrUnknownColumn = errors.New("unknown column")

type op int

const (
	opNone op = iota
	opAnd
	opEq
	opIsNull
)

// Predicate is a node of a boolean filter. The zero value matches every row.
type Predicate struct {
	op       op
	column   string
	value    any
	children []Predicate
}

// And is the conjunction of preds. Empty predicates are skipped.
func And(preds ...Predicate) Predicate {
	children := make([]Predicate, 0, len(preds))
	for _, p := range preds {
		if !p.IsEmpty() {
			children = append(children, p)
		}
	}
	switch len(children) {
	case 0:
		return Predicate{}
	case 1:
		return children[0]
	}
	return Predicate{op: opAnd, children: children}
}

// Eq matches rows whose column equals value. value must not be nil; use IsNull.
func Eq(column string, value any) Predicate {
	return Predicate{op: opEq, column: column, value: value}
}

func IsNull(column string) Predicate {
	return Predicate{op: opIsNull, column: column}
}

func (p Predicate) IsEmpty() bool {
	return p.op == opNone
}

// Columns returns the distinct column names referenced by p, sorted.
func (p Predicate) Columns() []string {
	seen := map[string]struct{}{}
	p.walk(func(n Predicate) {
		if n.column != "" {
			seen[n.column] = struct{}{}
		}
	})
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func (p Predicate) walk(fn func(Predicate)) {
	fn(p)
	for _, c := range p.children {
		c.walk(fn)
	}
}

// Sqlizer renders p for squirrel. Column names are prefixed with
// qualifier+"." when qualifier is non-empty. An empty predicate yields nil.
func (p Predicate) Sqlizer(qualifier string) sq.Sqlizer {
	name := func(col string) string {
		if qualifier == "" {
			return col
		}
		return qualifier + "." + col
	}
	switch p.op {
	case opAnd:
		parts := make(sq.And, 0, len(p.children))
		for _, c := range p.children {
			parts = append(parts, c.Sqlizer(qualifier))
		}
		return parts
	case opEq:
		return sq.Eq{name(p.column): p.value}
	case opIsNull:
		return sq.Eq{name(p.column): nil}
	}
	return nil
}

// ToSQL renders p as a fragment with '?' placeholders. Conjunctions come
// back wrapped in parentheses, e.g. "(org_id = ? AND deleted_at_m IS NULL)".
// An empty predicate renders as "".
func ToSQL(p Predicate, qualifier string) (string, []any, error) {
	s := p.Sqlizer(qualifier)
	if s == nil {
		return "", nil, nil
	}
	return s.ToSql()
}

// Include describes a nested relation fetch.
type Include struct {
	Where Predicate
	// Columns limits the populated fields; empty means all columns.
	Columns []string
}

// Spec is a single-entity lookup with optional eager-loaded relations keyed
// by relation name.
type Spec struct {
	Where Predicate
	With  map[string]Include
}

// ColumnSet is the set of column names a table exposes.
type ColumnSet map[string]struct{}

func NewColumnSet(cols ...string) ColumnSet {
	s := make(ColumnSet, len(cols))
	for _, c := range cols {
		s[c] = struct{}{}
	}
	return s
}

func (s ColumnSet) Has(col string) bool {
	_, ok := s[col]
	return ok
}

// Validate rejects columns outside s.
func (s ColumnSet) Validate(cols ...string) error {
	for _, c := range cols {
		if !s.Has(c) {
			return fmt.Errorf("%w: %q", ErrUnknownColumn, c)
		}
	}
	return nil
}
