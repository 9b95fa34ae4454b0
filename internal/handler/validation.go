package handler

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Romanian phone numbers only: country code 00/+40/40/0, then a mobile,
// Bucharest landline, regional landline or special-service prefix, then
// three-digit groups with optional spaces.
var romanianPhonePattern = regexp.MustCompile(`^(00|\+?40|0)(7\d{2}|\d{2}[13]|[2-37]\d|8[02-9]|9[0-2])\s?\d{3}\s?\d{3}$`)

const passwordSpecials = "@#$%^&+-=()"

// RegisterValidations installs the custom binding rules on gin's validator
// engine. Call once before building the router (and from handler tests).
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("password", validPassword); err != nil {
		return err
	}
	return v.RegisterValidation("rophone", validRomanianPhone)
}

// validPassword enforces the account password policy: 8-30 characters with
// at least one digit, one lower case, one upper case and one special
// character, and no whitespace.
func validPassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 || len(password) > 30 {
		return false
	}
	var digit, lower, upper, special bool
	for _, r := range password {
		switch {
		case unicode.IsSpace(r):
			return false
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	return digit && lower && upper && special
}

func validRomanianPhone(fl validator.FieldLevel) bool {
	return romanianPhonePattern.MatchString(fl.Field().String())
}
