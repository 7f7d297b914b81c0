package profile

import (
	"math"
	"strconv"
)

// Kind is the domain type of a form field.
type Kind int

const (
	KindText Kind = iota
	KindInteger
	KindDecimal
	KindChoice
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInteger:
		return "integer"
	case KindDecimal:
		return "decimal"
	case KindChoice:
		return "choice"
	default:
		return "unknown"
	}
}

// Field keys. Keys follow the column names of the student performance
// dataset the classifier is trained on.
const (
	Name       = "name"
	Sex        = "sex"
	Age        = "age"
	Address    = "address"
	FamSize    = "famsize"
	Pstatus    = "Pstatus"
	Medu       = "Medu"
	Fedu       = "Fedu"
	Mjob       = "Mjob"
	Fjob       = "Fjob"
	Reason     = "reason"
	Guardian   = "guardian"
	TravelTime = "traveltime"
	StudyTime  = "studytime"
	Failures   = "failures"
	SchoolSup  = "schoolsup"
	FamSup     = "famsup"
	Paid       = "paid"
	Activities = "activities"
	Nursery    = "nursery"
	Higher     = "higher"
	Internet   = "internet"
	Romantic   = "romantic"
	FamRel     = "famrel"
	FreeTime   = "freetime"
	GoOut      = "goout"
	Dalc       = "Dalc"
	Walc       = "Walc"
	Health     = "health"
	G3         = "G3"
	GPA        = "GPA"
	Absences   = "absences"
)

// Option labels shared by several fields.
const (
	No  = "No"
	Yes = "Yes"
)

var (
	jobOptions    = []string{"Teacher", "Healthcare", "Services", "At Home", "Other"}
	yesNoOptions  = []string{No, Yes}
	reasonOptions = []string{"Close to Home", "School Reputation", "Course Preference", "Other"}
)

// Field describes one input of the student form: its domain, its default
// and the visual column it is rendered in.
type Field struct {
	Key   string
	Label string
	Kind  Kind

	// Numeric domain (KindInteger, KindDecimal). Bounds are inclusive.
	Min, Max, Step float64
	DefaultNumber  float64

	// Categorical domain (KindChoice). The first option is the default.
	Options []string

	// Column is the 1-based visual column of the input tab.
	Column int
}

// DefaultChoice returns the option selected before the user changes anything.
func (f Field) DefaultChoice() string {
	if len(f.Options) == 0 {
		return ""
	}
	return f.Options[0]
}

// HasOption reports whether opt is one of the field's options.
func (f Field) HasOption(opt string) bool {
	for _, o := range f.Options {
		if o == opt {
			return true
		}
	}
	return false
}

// Contains reports whether v lies inside the numeric domain.
func (f Field) Contains(v float64) bool {
	if math.IsNaN(v) || v < f.Min || v > f.Max {
		return false
	}
	if f.Kind == KindInteger && v != math.Trunc(v) {
		return false
	}
	return true
}

// OnStep reports whether v lies on the Min + n*Step grid the widget offers.
func (f Field) OnStep(v float64) bool {
	if f.Step <= 0 {
		return true
	}
	n := (v - f.Min) / f.Step
	return math.Abs(n-math.Round(n)) <= 1e-6
}

// FormatNumber renders v the way the field's widget shows it.
func (f Field) FormatNumber(v float64) string {
	if f.Kind == KindDecimal {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func integer(key, label string, min, max, def float64, column int) Field {
	return Field{Key: key, Label: label, Kind: KindInteger, Min: min, Max: max, Step: 1, DefaultNumber: def, Column: column}
}

func choice(key, label string, options []string, column int) Field {
	return Field{Key: key, Label: label, Kind: KindChoice, Options: options, Column: column}
}

var schema = []Field{
	{Key: Name, Label: "Student Name", Kind: KindText, Column: 1},
	choice(Sex, "Sex", []string{"Female", "Male"}, 1),
	integer(Age, "Age", 15, 22, 17, 1),
	choice(Address, "Address", []string{"Urban", "Rural"}, 1),
	choice(FamSize, "Family Size", []string{"3 or Less", "More than 3"}, 1),
	choice(Pstatus, "Parents' Status", []string{"Living Together", "Apart"}, 1),
	integer(Medu, "Mother's Education (0-4)", 0, 4, 2, 1),
	integer(Fedu, "Father's Education (0-4)", 0, 4, 2, 1),
	choice(Mjob, "Mother's Job", jobOptions, 1),
	choice(Fjob, "Father's Job", jobOptions, 1),

	choice(Reason, "School Choice Reason", reasonOptions, 2),
	choice(Guardian, "Guardian", []string{"Mother", "Father", "Other"}, 2),
	integer(TravelTime, "Travel Time (1-4)", 1, 4, 2, 2),
	integer(StudyTime, "Study Time (1-4)", 1, 4, 2, 2),
	integer(Failures, "Past Failures", 0, 3, 0, 2),
	choice(SchoolSup, "School Support", yesNoOptions, 2),
	choice(FamSup, "Family Support", yesNoOptions, 2),
	choice(Paid, "Paid Classes", yesNoOptions, 2),
	choice(Activities, "Extra Activities", yesNoOptions, 2),
	choice(Nursery, "Attended Nursery", yesNoOptions, 2),
	choice(Higher, "Wants Higher Ed", yesNoOptions, 2),
	choice(Internet, "Internet Access", yesNoOptions, 2),
	choice(Romantic, "Romantic Relationship", yesNoOptions, 2),

	integer(FamRel, "Family Relationship", 1, 5, 3, 3),
	integer(FreeTime, "Free Time", 1, 5, 3, 3),
	integer(GoOut, "Going Out", 1, 5, 3, 3),

	integer(Dalc, "Workday Alcohol", 1, 5, 3, 4),
	integer(Walc, "Weekend Alcohol", 1, 5, 3, 4),
	integer(Health, "Health Status", 1, 5, 3, 4),
	integer(G3, "Final Grade (G3)", 1, 20, 10, 4),
	{Key: GPA, Label: "GPA (0.0 - 4.0)", Kind: KindDecimal, Min: 0, Max: 4, Step: 0.01, DefaultNumber: 2, Column: 4},
	integer(Absences, "Absences", 0, 50, 10, 4),
}

var index = func() map[string]int {
	m := make(map[string]int, len(schema))
	for i, f := range schema {
		m[f.Key] = i
	}
	return m
}()

// Fields returns the form schema in display order.
func Fields() []Field {
	out := make([]Field, len(schema))
	copy(out, schema)
	return out
}

// Lookup returns the field with the given key.
func Lookup(key string) (Field, bool) {
	i, ok := index[key]
	if !ok {
		return Field{}, false
	}
	return schema[i], true
}

// Columns returns the number of visual columns in the input tab.
func Columns() int {
	n := 0
	for _, f := range schema {
		if f.Column > n {
			n = f.Column
		}
	}
	return n
}
