package profile

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Decode reads a profile document (YAML or JSON) mapping field keys to
// scalar values and parses it with the same rules as Parse. Null values
// count as missing.
func Decode(r io.Reader) (*StudentProfile, error) {
	var doc map[string]any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("decode profile: empty document")
		}
		return nil, fmt.Errorf("decode profile: %w", err)
	}

	values := make(map[string]string, len(doc))
	for k, v := range doc {
		if _, ok := Lookup(k); !ok {
			return nil, &FieldError{Key: k, Err: ErrUnknownField}
		}
		switch v := v.(type) {
		case nil:
		case string:
			values[k] = v
		case int:
			values[k] = strconv.Itoa(v)
		case float64:
			values[k] = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			values[k] = strconv.FormatBool(v)
		default:
			return nil, &FieldError{Key: k, Err: fmt.Errorf("%w: not a scalar", ErrNotNumeric)}
		}
	}
	return Parse(values)
}
