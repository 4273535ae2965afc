package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"employee-directory/internal/models"
)

func strPtr(s string) *string { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestFilter_Match(t *testing.T) {
	smith := models.Employee{FirstName: "John", LastName: "Smithson", Department: "Ops", Salary: floatPtr(60000)}
	noSalary := models.Employee{FirstName: "Anna", LastName: "Blacksmith", Department: "Ops"}

	cases := []struct {
		name   string
		filter Filter
		emp    models.Employee
		want   bool
	}{
		{"empty filter", Filter{}, noSalary, true},
		{"name in last name", Filter{Name: strPtr("SMITH")}, smith, true},
		{"name in first name", Filter{Name: strPtr("ann")}, noSalary, true},
		{"name miss", Filter{Name: strPtr("jones")}, smith, false},
		{"empty name matches", Filter{Name: strPtr("")}, smith, true},
		{"min inclusive", Filter{MinSalary: floatPtr(60000)}, smith, true},
		{"min above", Filter{MinSalary: floatPtr(60000.5)}, smith, false},
		{"max inclusive", Filter{MaxSalary: floatPtr(60000)}, smith, true},
		{"max below", Filter{MaxSalary: floatPtr(59999)}, smith, false},
		{"range", Filter{MinSalary: floatPtr(50000), MaxSalary: floatPtr(80000)}, smith, true},
		{"min without salary", Filter{MinSalary: floatPtr(0)}, noSalary, false},
		{"max without salary", Filter{MaxSalary: floatPtr(1e9)}, noSalary, false},
		{"name and range both required", Filter{Name: strPtr("smith"), MaxSalary: floatPtr(100)}, smith, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.filter.Match(tc.emp))
		})
	}
}
