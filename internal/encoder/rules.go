package encoder

import "github.com/abhisek/passpredict/internal/profile"

// RuleKind selects how a profile field becomes feature columns.
type RuleKind int

const (
	// Numeric copies the field value into a column of the same name.
	Numeric RuleKind = iota
	// Binary emits a complementary pair of 0/1 columns from one decision.
	Binary
	// OneHot maps each option to an index and emits one column per index.
	OneHot
)

// Rule is one entry of the declarative encoding table.
type Rule struct {
	Field string
	Kind  RuleKind

	// Binary: the option that sets On to 1 (and Off to 0).
	Positive string
	On, Off  string

	// OneHot: option -> position in Columns.
	Index   map[string]int
	Columns []string
}

func numeric(field string) Rule {
	return Rule{Field: field, Kind: Numeric}
}

func binary(field, positive, on, off string) Rule {
	return Rule{Field: field, Kind: Binary, Positive: positive, On: on, Off: off}
}

func yesNo(field, prefix string) Rule {
	return binary(field, profile.Yes, prefix+"_yes", prefix+"_no")
}

var jobIndex = map[string]int{"At Home": 0, "Healthcare": 1, "Other": 2, "Services": 3, "Teacher": 4}

func job(field string) Rule {
	return Rule{
		Field: field,
		Kind:  OneHot,
		Index: jobIndex,
		Columns: []string{
			field + "_at_home", field + "_health", field + "_other", field + "_services", field + "_teacher",
		},
	}
}

// DefaultRules is the column layout the pass/fail classifier was trained on.
func DefaultRules() []Rule {
	return []Rule{
		binary(profile.Sex, "Female", "sex_F", "sex_M"),
		numeric(profile.Age),
		binary(profile.Address, "Urban", "address_U", "address_R"),
		binary(profile.FamSize, "3 or Less", "famsize_LE3", "famsize_GT3"),
		binary(profile.Pstatus, "Living Together", "Pstatus_T", "Pstatus_A"),
		job(profile.Mjob),
		job(profile.Fjob),
		{
			Field:   profile.Reason,
			Kind:    OneHot,
			Index:   map[string]int{"Close to Home": 0, "Course Preference": 1, "Other": 2, "School Reputation": 3},
			Columns: []string{"reason_home", "reason_course", "reason_other", "reason_reputation"},
		},
		{
			Field:   profile.Guardian,
			Kind:    OneHot,
			Index:   map[string]int{"Father": 0, "Mother": 1, "Other": 2},
			Columns: []string{"guardian_father", "guardian_mother", "guardian_other"},
		},
		yesNo(profile.SchoolSup, "schoolsup"),
		yesNo(profile.FamSup, "famsup"),
		yesNo(profile.Paid, "paid"),
		yesNo(profile.Activities, "activities"),
		yesNo(profile.Nursery, "nursery"),
		yesNo(profile.Higher, "higher"),
		yesNo(profile.Internet, "internet"),
		yesNo(profile.Romantic, "romantic"),
		numeric(profile.Medu),
		numeric(profile.Fedu),
		numeric(profile.StudyTime),
		numeric(profile.Failures),
		numeric(profile.FamRel),
		numeric(profile.FreeTime),
		numeric(profile.GoOut),
		numeric(profile.Dalc),
		numeric(profile.Walc),
		numeric(profile.Health),
		numeric(profile.G3),
		numeric(profile.GPA),
		numeric(profile.Absences),
		numeric(profile.TravelTime),
	}
}
