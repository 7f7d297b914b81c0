// Package feature holds the ordered numeric representation of a student
// profile that the classifier consumes.
package feature

import (
	"fmt"
	"strings"
)

// Vector is an ordered mapping from column name to value. It is immutable
// once built.
type Vector struct {
	columns []string
	values  []float64
	pos     map[string]int
}

// Builder accumulates columns in order.
type Builder struct {
	columns []string
	values  []float64
}

// Add appends a column. Duplicate names are reported by Build.
func (b *Builder) Add(column string, value float64) {
	b.columns = append(b.columns, column)
	b.values = append(b.values, value)
}

// Build freezes the accumulated columns into a Vector.
func (b *Builder) Build() (Vector, error) {
	pos := make(map[string]int, len(b.columns))
	for i, c := range b.columns {
		if _, dup := pos[c]; dup {
			return Vector{}, fmt.Errorf("duplicate column %q", c)
		}
		pos[c] = i
	}
	return Vector{
		columns: append([]string(nil), b.columns...),
		values:  append([]float64(nil), b.values...),
		pos:     pos,
	}, nil
}

// Len returns the number of columns.
func (v Vector) Len() int { return len(v.columns) }

// Columns returns a copy of the column names in order.
func (v Vector) Columns() []string { return append([]string(nil), v.columns...) }

// Values returns a copy of the values in column order.
func (v Vector) Values() []float64 { return append([]float64(nil), v.values...) }

// Get returns the value of a column.
func (v Vector) Get(column string) (float64, bool) {
	i, ok := v.pos[column]
	if !ok {
		return 0, false
	}
	return v.values[i], true
}

// Equal reports whether both vectors have the same columns, order and values.
func (v Vector) Equal(o Vector) bool {
	if len(v.columns) != len(o.columns) {
		return false
	}
	for i := range v.columns {
		if v.columns[i] != o.columns[i] || v.values[i] != o.values[i] {
			return false
		}
	}
	return true
}

// MismatchError reports a column set that differs from the one a model
// expects.
type MismatchError struct {
	Missing    []string
	Unexpected []string
}

func (e *MismatchError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing columns: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Unexpected) > 0 {
		parts = append(parts, "unexpected columns: "+strings.Join(e.Unexpected, ", "))
	}
	return "feature columns do not match model: " + strings.Join(parts, "; ")
}

// Reindex reorders v to the expected column order. The column sets must be
// identical; nothing is zero-filled or dropped.
func Reindex(v Vector, expected []string) (Vector, error) {
	var mismatch MismatchError
	seen := make(map[string]bool, len(expected))
	for _, c := range expected {
		if seen[c] {
			return Vector{}, fmt.Errorf("expected columns contain duplicate %q", c)
		}
		seen[c] = true
		if _, ok := v.pos[c]; !ok {
			mismatch.Missing = append(mismatch.Missing, c)
		}
	}
	for _, c := range v.columns {
		if !seen[c] {
			mismatch.Unexpected = append(mismatch.Unexpected, c)
		}
	}
	if len(mismatch.Missing) > 0 || len(mismatch.Unexpected) > 0 {
		return Vector{}, &mismatch
	}

	var b Builder
	for _, c := range expected {
		b.Add(c, v.values[v.pos[c]])
	}
	return b.Build()
}

// Conforms reports whether v has exactly the expected columns in order.
func Conforms(v Vector, expected []string) bool {
	if len(v.columns) != len(expected) {
		return false
	}
	for i, c := range expected {
		if v.columns[i] != c {
			return false
		}
	}
	return true
}
