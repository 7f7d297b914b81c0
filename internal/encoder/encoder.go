// Package encoder turns a StudentProfile into the numeric feature vector the
// classifier expects. The mapping is a single fold over a declarative rule
// table; the table is checked against the profile schema when the encoder
// is built so a misspelt option or column fails at start-up.
package encoder

import (
	"fmt"

	"github.com/abhisek/passpredict/internal/feature"
	"github.com/abhisek/passpredict/internal/profile"
)

// Encoder applies a validated rule table.
type Encoder struct {
	rules   []Rule
	columns []string
}

// New validates rules against the profile schema and returns an Encoder.
func New(rules []Rule) (*Encoder, error) {
	var columns []string
	seen := make(map[string]string)
	fields := make(map[string]bool)

	addColumn := func(field, col string) error {
		if col == "" {
			return fmt.Errorf("rule %s: empty column name", field)
		}
		if other, dup := seen[col]; dup {
			return fmt.Errorf("rule %s: column %q already produced by %s", field, col, other)
		}
		seen[col] = field
		columns = append(columns, col)
		return nil
	}

	for _, r := range rules {
		f, ok := profile.Lookup(r.Field)
		if !ok {
			return nil, fmt.Errorf("rule %s: unknown profile field", r.Field)
		}
		if fields[r.Field] {
			return nil, fmt.Errorf("rule %s: field encoded twice", r.Field)
		}
		fields[r.Field] = true

		switch r.Kind {
		case Numeric:
			if f.Kind != profile.KindInteger && f.Kind != profile.KindDecimal {
				return nil, fmt.Errorf("rule %s: numeric rule on %s field", r.Field, f.Kind)
			}
			if err := addColumn(r.Field, r.Field); err != nil {
				return nil, err
			}

		case Binary:
			if f.Kind != profile.KindChoice || len(f.Options) != 2 {
				return nil, fmt.Errorf("rule %s: binary rule needs a two-option field", r.Field)
			}
			if !f.HasOption(r.Positive) {
				return nil, fmt.Errorf("rule %s: positive option %q not offered", r.Field, r.Positive)
			}
			// Column order follows the sorted dummy layout of the training data.
			first, second := r.On, r.Off
			if second < first {
				first, second = second, first
			}
			if err := addColumn(r.Field, first); err != nil {
				return nil, err
			}
			if err := addColumn(r.Field, second); err != nil {
				return nil, err
			}

		case OneHot:
			if f.Kind != profile.KindChoice {
				return nil, fmt.Errorf("rule %s: one-hot rule on %s field", r.Field, f.Kind)
			}
			claimed := make(map[int]string, len(f.Options))
			for _, opt := range f.Options {
				i, ok := r.Index[opt]
				if !ok {
					return nil, fmt.Errorf("rule %s: option %q has no index", r.Field, opt)
				}
				if i < 0 || i >= len(r.Columns) {
					return nil, fmt.Errorf("rule %s: option %q index %d has no column", r.Field, opt, i)
				}
				if prev, dup := claimed[i]; dup {
					return nil, fmt.Errorf("rule %s: options %q and %q share index %d", r.Field, prev, opt, i)
				}
				claimed[i] = opt
			}
			if len(r.Index) != len(r.Columns) {
				return nil, fmt.Errorf("rule %s: %d indexed options for %d columns", r.Field, len(r.Index), len(r.Columns))
			}
			if len(claimed) != len(r.Columns) {
				return nil, fmt.Errorf("rule %s: %d of %d columns reachable", r.Field, len(claimed), len(r.Columns))
			}
			for _, c := range r.Columns {
				if err := addColumn(r.Field, c); err != nil {
					return nil, err
				}
			}

		default:
			return nil, fmt.Errorf("rule %s: unknown rule kind %d", r.Field, r.Kind)
		}
	}

	return &Encoder{rules: append([]Rule(nil), rules...), columns: columns}, nil
}

// Default returns the encoder for DefaultRules.
func Default() *Encoder {
	enc, err := New(DefaultRules())
	if err != nil {
		panic(fmt.Sprintf("encoder: default rules are invalid: %v", err))
	}
	return enc
}

// Columns returns the encoder's output layout before reindexing.
func (e *Encoder) Columns() []string {
	return append([]string(nil), e.columns...)
}

// Encode maps a complete profile to a feature vector in the encoder's own
// column order.
func (e *Encoder) Encode(p *profile.StudentProfile) (feature.Vector, error) {
	if err := p.Validate(); err != nil {
		return feature.Vector{}, err
	}

	var b feature.Builder
	for _, r := range e.rules {
		switch r.Kind {
		case Numeric:
			v, _ := p.Number(r.Field)
			b.Add(r.Field, v)

		case Binary:
			opt, _ := p.Choice(r.Field)
			on := 0.0
			if opt == r.Positive {
				on = 1
			}
			if r.On < r.Off {
				b.Add(r.On, on)
				b.Add(r.Off, 1-on)
			} else {
				b.Add(r.Off, 1-on)
				b.Add(r.On, on)
			}

		case OneHot:
			opt, _ := p.Choice(r.Field)
			hot := r.Index[opt]
			for i, c := range r.Columns {
				if i == hot {
					b.Add(c, 1)
				} else {
					b.Add(c, 0)
				}
			}
		}
	}
	return b.Build()
}

// EncodeFor encodes p and reindexes the result to the expected columns.
func (e *Encoder) EncodeFor(p *profile.StudentProfile, expected []string) (feature.Vector, error) {
	v, err := e.Encode(p)
	if err != nil {
		return feature.Vector{}, err
	}
	return feature.Reindex(v, expected)
}
