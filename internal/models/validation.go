package models

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Salary precision: up to 6 integer and 3 fractional digits.
const (
	SalaryIntegerDigits  = 6
	SalaryFractionDigits = 3
)

// RegisterValidators installs the custom tags used by the request DTOs on
// gin's default validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	if err := v.RegisterValidation("notblank", notBlank); err != nil {
		return err
	}
	return v.RegisterValidation("digits", salaryDigits)
}

func notBlank(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() != reflect.String {
		return false
	}
	return strings.TrimSpace(f.String()) != ""
}

func salaryDigits(fl validator.FieldLevel) bool {
	f := fl.Field()
	switch f.Kind() {
	case reflect.Float32, reflect.Float64:
		return WithinDigits(f.Float(), SalaryIntegerDigits, SalaryFractionDigits)
	default:
		return false
	}
}

// WithinDigits reports whether v has at most intDigits digits before the
// decimal point and at most fracDigits after it.
func WithinDigits(v float64, intDigits, fracDigits int) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	s := strconv.FormatFloat(math.Abs(v), 'f', -1, 64)
	whole, frac, _ := strings.Cut(s, ".")
	whole = strings.TrimLeft(whole, "0")
	return len(whole) <= intDigits && len(frac) <= fracDigits
}
