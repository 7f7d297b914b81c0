package profile

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// answer holds a single collected value. Choice fields use choice,
// numeric fields use number.
type answer struct {
	choice string
	number float64
}

// StudentProfile is the set of raw answers collected for one prediction.
type StudentProfile struct {
	Name    string
	answers map[string]answer
}

// New returns a profile with every field at its widget default.
func New(name string) *StudentProfile {
	p := &StudentProfile{
		Name:    name,
		answers: make(map[string]answer, len(schema)),
	}
	for _, f := range schema {
		switch f.Kind {
		case KindChoice:
			p.answers[f.Key] = answer{choice: f.DefaultChoice()}
		case KindInteger, KindDecimal:
			p.answers[f.Key] = answer{number: f.DefaultNumber}
		}
	}
	return p
}

// Parse builds a profile from key/value input such as a submitted web form
// or a profile file. Every field of the schema must be present; there is
// no partial-profile mode.
func Parse(values map[string]string) (*StudentProfile, error) {
	p := &StudentProfile{answers: make(map[string]answer, len(schema))}
	for _, f := range schema {
		raw, ok := values[f.Key]
		if !ok {
			return nil, &FieldError{Key: f.Key, Err: ErrMissing}
		}
		if err := p.Set(f.Key, raw); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Set assigns a raw string value, converting it according to the field kind.
func (p *StudentProfile) Set(key, raw string) error {
	f, ok := Lookup(key)
	if !ok {
		return &FieldError{Key: key, Err: ErrUnknownField}
	}
	switch f.Kind {
	case KindText:
		p.Name = strings.TrimSpace(raw)
		return nil
	case KindChoice:
		return p.SetChoice(key, strings.TrimSpace(raw))
	default:
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return &FieldError{Key: key, Err: fmt.Errorf("%w: %q", ErrNotNumeric, raw)}
		}
		return p.SetNumber(key, v)
	}
}

// SetChoice selects an option of a categorical field.
func (p *StudentProfile) SetChoice(key, opt string) error {
	f, ok := Lookup(key)
	if !ok || f.Kind != KindChoice {
		return &FieldError{Key: key, Err: ErrUnknownField}
	}
	if !f.HasOption(opt) {
		return &FieldError{Key: key, Err: fmt.Errorf("%w: %q", ErrUnknownOption, opt)}
	}
	p.ensure()
	p.answers[key] = answer{choice: opt}
	return nil
}

// SetNumber assigns a numeric field, rejecting values outside its domain.
func (p *StudentProfile) SetNumber(key string, v float64) error {
	f, ok := Lookup(key)
	if !ok || (f.Kind != KindInteger && f.Kind != KindDecimal) {
		return &FieldError{Key: key, Err: ErrUnknownField}
	}
	if !f.Contains(v) {
		return &FieldError{Key: key, Err: fmt.Errorf("%w: %v not in [%v, %v]", ErrOutOfRange, v, f.Min, f.Max)}
	}
	if !f.OnStep(v) {
		return &FieldError{Key: key, Err: fmt.Errorf("%w: %v is not a multiple of %v", ErrOffStep, v, f.Step)}
	}
	p.ensure()
	p.answers[key] = answer{number: v}
	return nil
}

func (p *StudentProfile) ensure() {
	if p.answers == nil {
		p.answers = make(map[string]answer, len(schema))
	}
}

// Choice returns the selected option of a categorical field.
func (p *StudentProfile) Choice(key string) (string, bool) {
	a, ok := p.answers[key]
	if !ok || a.choice == "" {
		return "", false
	}
	return a.choice, true
}

// Number returns the value of a numeric field.
func (p *StudentProfile) Number(key string) (float64, bool) {
	f, ok := Lookup(key)
	if !ok || (f.Kind != KindInteger && f.Kind != KindDecimal) {
		return 0, false
	}
	a, ok := p.answers[key]
	return a.number, ok
}

// Int returns a numeric field truncated to an int. Missing fields read as 0;
// callers that need the guard use Validate first.
func (p *StudentProfile) Int(key string) int {
	v, _ := p.Number(key)
	return int(math.Trunc(v))
}

// Validate checks that every field of the schema is present and in domain.
func (p *StudentProfile) Validate() error {
	for _, f := range schema {
		switch f.Kind {
		case KindText:
			continue
		case KindChoice:
			opt, ok := p.Choice(f.Key)
			if !ok {
				return &FieldError{Key: f.Key, Err: ErrMissing}
			}
			if !f.HasOption(opt) {
				return &FieldError{Key: f.Key, Err: fmt.Errorf("%w: %q", ErrUnknownOption, opt)}
			}
		default:
			v, ok := p.Number(f.Key)
			if !ok {
				return &FieldError{Key: f.Key, Err: ErrMissing}
			}
			if !f.Contains(v) {
				return &FieldError{Key: f.Key, Err: ErrOutOfRange}
			}
			if !f.OnStep(v) {
				return &FieldError{Key: f.Key, Err: ErrOffStep}
			}
		}
	}
	return nil
}

// Values renders the profile back into the key/value form accepted by Parse.
func (p *StudentProfile) Values() map[string]string {
	out := make(map[string]string, len(schema))
	for _, f := range schema {
		switch f.Kind {
		case KindText:
			out[f.Key] = p.Name
		case KindChoice:
			if opt, ok := p.Choice(f.Key); ok {
				out[f.Key] = opt
			}
		default:
			if v, ok := p.Number(f.Key); ok {
				out[f.Key] = f.FormatNumber(v)
			}
		}
	}
	return out
}
