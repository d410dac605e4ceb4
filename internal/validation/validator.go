// Package validation runs the local, pre-network checks of every form.
// Failures come back as Errors, one human-readable message per field, and
// never reach the backend.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	indianMobile = regexp.MustCompile(`^[6-9]\d{9}$`)
	simpleEmail  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Validate is the shared validator with the custom tags registered.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	must(v.RegisterValidation("indian_mobile", func(fl validator.FieldLevel) bool {
		return indianMobile.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("simple_email", func(fl validator.FieldLevel) bool {
		return simpleEmail.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("has_upper", func(fl validator.FieldLevel) bool {
		return strings.IndexFunc(fl.Field().String(), unicode.IsUpper) >= 0
	}))
	must(v.RegisterValidation("trimmed_min", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len([]rune(strings.TrimSpace(fl.Field().String()))) >= n
	}))
	must(v.RegisterValidation("query_type", func(fl validator.FieldLevel) bool {
		return contains(QueryTypes, fl.Field().String())
	}))
	must(v.RegisterValidation("indian_state", func(fl validator.FieldLevel) bool {
		return contains(IndianStates, fl.Field().String())
	}))
	must(v.RegisterValidation("marital_status", func(fl validator.FieldLevel) bool {
		return contains(MaritalStatuses, fl.Field().String())
	}))
	must(v.RegisterValidation("religion", func(fl validator.FieldLevel) bool {
		return contains(Religions, fl.Field().String())
	}))
	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Errors maps a form field name to its message. An empty map means valid.
type Errors map[string]string

func (e Errors) Ok() bool { return len(e) == 0 }

// Get returns the message for field, "" when the field is fine.
func (e Errors) Get(field string) string { return e[field] }

// messages holds the text per field and failing tag. A "*" tag matches any
// tag for that field.
type messages map[string]map[string]string

func (m messages) lookup(field, tag string) string {
	if byTag, ok := m[field]; ok {
		if msg, ok := byTag[tag]; ok {
			return msg
		}
		if msg, ok := byTag["*"]; ok {
			return msg
		}
	}
	return "Invalid value"
}

// check validates s and keeps the first failing rule of each field.
func check(s any, msgs messages) Errors {
	out := Errors{}
	err := Validate.Struct(s)
	if err == nil {
		return out
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["_"] = err.Error()
		return out
	}
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = msgs.lookup(fe.Field(), fe.Tag())
	}
	return out
}
