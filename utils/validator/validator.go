package validatorx

import (
	"regexp"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// phoneRegex is deliberately permissive: digits with optional leading +,
// spaces, dashes, dots and parentheses, 7-20 characters.
var phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 .()-]{5,18}[0-9]$`)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()
	_ = v.RegisterValidation("phone", func(fl gpvalidator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}
