// Package inputval holds the field-level checks shared by the entity
// validators. Each check answers one yes/no question; composing checks
// into ordered, message-bearing validation lives with each feature.
package inputval

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// emailPattern is deliberately loose: word characters, dots and dashes
// in the local part, one or more dotted labels, and a 2–4 character TLD.
var emailPattern = regexp.MustCompile(`^[\w\-.]+@([\w-]+\.)+[\w-]{2,4}$`)

// MinPasswordLen is the shortest accepted password.
const MinPasswordLen = 6

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return primitive.IsValidObjectID(fl.Field().String())
	})
	_ = v.RegisterValidation("pokeremail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	return v
}

// IsBlank reports whether s is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsValidEmail reports whether the trimmed address matches the accepted
// email pattern.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	return validate.Var(s, "pokeremail") == nil
}

// IsValidObjectID reports whether s is a structurally valid identifier
// (24 hex characters).
func IsValidObjectID(s string) bool {
	return validate.Var(s, "required,objectid") == nil
}

// IsValidPassword reports whether s is at least MinPasswordLen characters.
func IsValidPassword(s string) bool {
	return validate.Var(s, "min="+strconv.Itoa(MinPasswordLen)) == nil
}

// OneOf reports whether s is exactly one of allowed.
func OneOf(s string, allowed []string) bool {
	if s == "" || len(allowed) == 0 {
		return false
	}
	return validate.Var(s, "oneof="+strings.Join(allowed, " ")) == nil
}
