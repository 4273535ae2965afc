package store

import (
	"strings"

	"employee-directory/internal/models"
)

// Filter narrows List results. Nil fields do not constrain.
type Filter struct {
	Name      *string
	MinSalary *float64
	MaxSalary *float64
}

// Match reports whether e satisfies every criterion set on f. A record with
// no salary never satisfies a salary bound.
func (f Filter) Match(e models.Employee) bool {
	return f.matchName(e) && f.matchMin(e) && f.matchMax(e)
}

func (f Filter) matchName(e models.Employee) bool {
	if f.Name == nil {
		return true
	}
	needle := strings.ToLower(*f.Name)
	return strings.Contains(strings.ToLower(e.FirstName), needle) ||
		strings.Contains(strings.ToLower(e.LastName), needle)
}

func (f Filter) matchMin(e models.Employee) bool {
	if f.MinSalary == nil {
		return true
	}
	return e.Salary != nil && *e.Salary >= *f.MinSalary
}

func (f Filter) matchMax(e models.Employee) bool {
	if f.MaxSalary == nil {
		return true
	}
	return e.Salary != nil && *e.Salary <= *f.MaxSalary
}
