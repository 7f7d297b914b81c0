package profile

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func defaultsYAML(t *testing.T, name string) string {
	t.Helper()
	out, err := yaml.Marshal(New(name).Values())
	require.NoError(t, err)
	return string(out)
}

func TestDecode_YAML(t *testing.T) {
	doc := defaultsYAML(t, "Ana")
	doc = strings.Replace(doc, "absences: \"10\"", "absences: 4", 1)
	doc = strings.Replace(doc, "GPA: \"2.00\"", "GPA: 3.5", 1)

	p, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "Ana", p.Name)
	assert.Equal(t, 4, p.Int(Absences))
	gpa, _ := p.Number(GPA)
	assert.Equal(t, 3.5, gpa)
}

func TestDecode_JSON(t *testing.T) {
	var b strings.Builder
	b.WriteString("{")
	first := true
	for k, v := range New("Bo").Values() {
		if !first {
			b.WriteString(",")
		}
		first = false
		b.WriteString(`"` + k + `":"` + v + `"`)
	}
	b.WriteString("}")

	p, err := Decode(strings.NewReader(b.String()))
	require.NoError(t, err)
	assert.Equal(t, New("Bo").Values(), p.Values())
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode(strings.NewReader(""))
	require.Error(t, err)

	_, err = Decode(strings.NewReader("name: Ana\nage: 17\n"))
	require.ErrorIs(t, err, ErrMissing)

	_, err = Decode(strings.NewReader(defaultsYAML(t, "Ana") + "shoe_size: 42\n"))
	require.ErrorIs(t, err, ErrUnknownField)

	doc := strings.Replace(defaultsYAML(t, "Ana"), "age: \"17\"", "age: [17]", 1)
	_, err = Decode(strings.NewReader(doc))
	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, Age, fe.Key)

	doc = strings.Replace(defaultsYAML(t, "Ana"), "age: \"17\"", "age: null", 1)
	_, err = Decode(strings.NewReader(doc))
	require.ErrorIs(t, err, ErrMissing)
}
