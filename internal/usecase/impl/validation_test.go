package impl

import (
	"strings"
	"testing"

	domainerrors "tetatete/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestValidateCategoryInfo(t *testing.T) {
	tests := []struct {
		name    string
		info    string
		wantErr bool
	}{
		{name: "valid description", info: "I like hiking, books and quiet evenings."},
		{name: "minimum length", info: "abcdefghij"},
		{name: "maximum length", info: strings.Repeat("a", 1000)},
		{name: "too short", info: "too short", wantErr: true},
		{name: "too long", info: strings.Repeat("a", 1001), wantErr: true},
		{name: "digits rejected", info: "I am 25 years old and friendly", wantErr: true},
		{name: "cyrillic rejected", info: "привет, ищу друзей здесь", wantErr: true},
		{name: "empty", info: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCategoryInfo("info", tt.info)
			if tt.wantErr {
				assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateWorkText(t *testing.T) {
	assert.NoError(t, validateWorkText("occupation", "Software engineer"))
	assert.NoError(t, validateWorkText("occupation", "abc"))
	assert.NoError(t, validateWorkText("skills", strings.Repeat("a", 120)))

	assert.Error(t, validateWorkText("occupation", "ab"))
	assert.Error(t, validateWorkText("occupation", strings.Repeat("a", 121)))
	assert.Error(t, validateWorkText("occupation", "engineer 3rd grade"))
}

func TestValidateIncome(t *testing.T) {
	assert.NoError(t, validateIncome(1))
	assert.NoError(t, validateIncome(999_999_999))

	assert.Error(t, validateIncome(0))
	assert.Error(t, validateIncome(-5))
	assert.Error(t, validateIncome(1_000_000_000))
}

func TestValidatePartnerAgeRange(t *testing.T) {
	age := func(v int) *int { return &v }

	assert.NoError(t, validatePartnerAgeRange(nil, nil))
	assert.NoError(t, validatePartnerAgeRange(age(18), age(99)))
	assert.NoError(t, validatePartnerAgeRange(age(25), age(26)))

	// Bounds come as a pair or not at all.
	assert.Error(t, validatePartnerAgeRange(age(25), nil))
	assert.Error(t, validatePartnerAgeRange(nil, age(30)))

	assert.Error(t, validatePartnerAgeRange(age(17), age(30)))
	assert.Error(t, validatePartnerAgeRange(age(99), age(99)))
	assert.Error(t, validatePartnerAgeRange(age(20), age(100)))
	assert.Error(t, validatePartnerAgeRange(age(30), age(25)))
	assert.Error(t, validatePartnerAgeRange(age(30), age(30)))
}

func TestValidatePhone(t *testing.T) {
	assert.NoError(t, validatePhone("+1-555-123-4567"))

	assert.Error(t, validatePhone("+15551234567"))
	assert.Error(t, validatePhone("+2-555-123-4567"))
	assert.Error(t, validatePhone("555-123-4567"))
	assert.Error(t, validatePhone("+1-555-123-456"))
	assert.Error(t, validatePhone(""))
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid", password: "Passw0rd"},
		{name: "minimum length", password: "Abcd1"},
		{name: "too short", password: "Ab1", wantErr: true},
		{name: "no uppercase", password: "passw0rd", wantErr: true},
		{name: "no digit", password: "Password", wantErr: true},
		{name: "special characters rejected", password: "Passw0rd!", wantErr: true},
		{name: "spaces rejected", password: "Pass w0rd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateFullName(t *testing.T) {
	assert.NoError(t, validateFullName("Jane Doe"))
	assert.NoError(t, validateFullName("Jane"))

	assert.Error(t, validateFullName(""))
	assert.Error(t, validateFullName("Jane Doe 2"))
	assert.Error(t, validateFullName("Jane-Doe"))
}

func TestValidateProfileAge(t *testing.T) {
	assert.NoError(t, validateProfileAge(18))
	assert.NoError(t, validateProfileAge(100))

	assert.Error(t, validateProfileAge(17))
	assert.Error(t, validateProfileAge(101))
}
