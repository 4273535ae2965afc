package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// Date is a calendar date that travels as "YYYY-MM-DD" in JSON.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("date must be YYYY-MM-DD: %q", s)
	}
	return Date{t}, nil
}

func (d Date) String() string { return d.Format(DateLayout) }

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	raw, err := strconv.Unquote(s)
	if err != nil {
		return fmt.Errorf("date must be a string: %s", s)
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Employee is the persisted record. Optional fields are pointers so they
// round-trip as JSON null.
type Employee struct {
	ID          int      `json:"id"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	DateOfBirth *Date    `json:"dateOfBirth"`
	Salary      *float64 `json:"salary"`
	JoinDate    *Date    `json:"joinDate"`
	Department  string   `json:"department"`
}

type CreateEmployeeDTO struct {
	FirstName   string   `json:"firstName" binding:"required,notblank"`
	LastName    string   `json:"lastName" binding:"required,notblank"`
	DateOfBirth *Date    `json:"dateOfBirth"`
	Salary      *float64 `json:"salary" binding:"omitempty,digits"`
	JoinDate    *Date    `json:"joinDate"`
	Department  string   `json:"department" binding:"required,notblank"`
}

// Employee converts the payload into an unsaved record (ID 0).
func (in CreateEmployeeDTO) Employee() Employee {
	return Employee{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		DateOfBirth: in.DateOfBirth,
		Salary:      in.Salary,
		JoinDate:    in.JoinDate,
		Department:  in.Department,
	}
}
