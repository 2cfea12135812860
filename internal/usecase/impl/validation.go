// Package impl contains the implementation of the application's business logic.
package impl

import (
	"fmt"
	"regexp"

	domainerrors "tetatete/internal/domain/errors"
)

const (
	categoryInfoMinLen = 10
	categoryInfoMaxLen = 1000
	workTextMinLen     = 3
	workTextMaxLen     = 120
	incomeMin          = 1
	incomeMax          = 999_999_999
	partnerMinAgeLow   = 18
	partnerMinAgeHigh  = 98
	partnerMaxAgeLow   = 19
	partnerMaxAgeHigh  = 99
	profileAgeMin      = 18
	profileAgeMax      = 100
	passwordMinLen     = 5
)

var (
	categoryTextPattern = regexp.MustCompile(`^[a-zA-Z ,.]+$`)
	fullNamePattern     = regexp.MustCompile(`^[a-zA-Z ]+$`)
	emailPattern        = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern        = regexp.MustCompile(`^\+1-\d{3}-\d{3}-\d{4}$`)
)

func validationError(format string, args ...any) error {
	return domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf(format, args...))
}

// validateCategoryInfo checks the free-form description of the friends and
// love categories: 10 to 1000 latin letters, spaces, commas and periods.
func validateCategoryInfo(field, info string) error {
	if len(info) < categoryInfoMinLen || len(info) > categoryInfoMaxLen {
		return validationError("%s must be between %d and %d characters", field, categoryInfoMinLen, categoryInfoMaxLen)
	}
	if !categoryTextPattern.MatchString(info) {
		return validationError("%s may only contain latin letters, spaces, commas and periods", field)
	}

	return nil
}

// validateWorkText checks the short work-category texts: 3 to 120 characters
// over the same charset as the category descriptions.
func validateWorkText(field, text string) error {
	if len(text) < workTextMinLen || len(text) > workTextMaxLen {
		return validationError("%s must be between %d and %d characters", field, workTextMinLen, workTextMaxLen)
	}
	if !categoryTextPattern.MatchString(text) {
		return validationError("%s may only contain latin letters, spaces, commas and periods", field)
	}

	return nil
}

func validateIncome(income int64) error {
	if income < incomeMin || income > incomeMax {
		return validationError("income must be between %d and %d", incomeMin, incomeMax)
	}

	return nil
}

// validatePartnerAgeRange checks the preferred partner age bounds of a love
// profile. The bounds must be both set or both unset, and min below max.
func validatePartnerAgeRange(minAge, maxAge *int) error {
	if minAge == nil && maxAge == nil {
		return nil
	}
	if minAge == nil || maxAge == nil {
		return validationError("minAge and maxAge must be provided together")
	}
	if *minAge < partnerMinAgeLow || *minAge > partnerMinAgeHigh {
		return validationError("minAge must be between %d and %d", partnerMinAgeLow, partnerMinAgeHigh)
	}
	if *maxAge < partnerMaxAgeLow || *maxAge > partnerMaxAgeHigh {
		return validationError("maxAge must be between %d and %d", partnerMaxAgeLow, partnerMaxAgeHigh)
	}
	if *minAge >= *maxAge {
		return validationError("minAge must be less than maxAge")
	}

	return nil
}

func validateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return validationError("email address is not valid")
	}

	return nil
}

func validatePhone(phone string) error {
	if !phonePattern.MatchString(phone) {
		return validationError("phone must match the +1-XXX-XXX-XXXX format")
	}

	return nil
}

// validatePassword enforces the password policy: at least five latin letters
// or digits, with at least one uppercase letter and one digit. The policy is
// checked by hand because regexp does not support lookaheads.
func validatePassword(password string) error {
	if len(password) < passwordMinLen {
		return validationError("password must be at least %d characters", passwordMinLen)
	}

	var hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			return validationError("password may only contain latin letters and digits")
		}
	}

	if !hasUpper || !hasDigit {
		return validationError("password must contain at least one uppercase letter and one digit")
	}

	return nil
}

func validateFullName(fullName string) error {
	if fullName == "" || !fullNamePattern.MatchString(fullName) {
		return validationError("full name may only contain latin letters and spaces")
	}

	return nil
}

func validateProfileAge(age int) error {
	if age < profileAgeMin || age > profileAgeMax {
		return validationError("age must be between %d and %d", profileAgeMin, profileAgeMax)
	}

	return nil
}
