package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type passwordForm struct {
	Password string `validate:"required,min=8,max=16,password"`
}

func TestValidateStruct_PasswordRule(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"valid", "Abcdef1!", true},
		{"no uppercase", "abcdef1!", false},
		{"no special", "Abcdefg1", false},
		{"too short", "Ab1!", false},
		{"too long", "Abcdefghijklmn1!!", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateStruct(passwordForm{Password: tt.password})
			if tt.valid {
				assert.Empty(t, errs)
			} else {
				assert.Contains(t, errs, "Password")
			}
		})
	}
}

type nameForm struct {
	Name string `validate:"required,min=20,max=60"`
}

func TestValidateStruct_NameLength(t *testing.T) {
	errs := ValidateStruct(nameForm{Name: "Too Short"})
	require.Contains(t, errs, "Name")
	assert.Equal(t, "Minimum length is 20", errs["Name"])

	errs = ValidateStruct(nameForm{Name: "A Name That Is Long Enough To Pass"})
	assert.Empty(t, errs)
}

type ratingForm struct {
	Rating int `validate:"required,min=1,max=5"`
}

func TestValidateStruct_RatingRange(t *testing.T) {
	assert.Contains(t, ValidateStruct(ratingForm{Rating: 0}), "Rating")
	assert.Contains(t, ValidateStruct(ratingForm{Rating: 6}), "Rating")
	assert.Empty(t, ValidateStruct(ratingForm{Rating: 1}))
	assert.Empty(t, ValidateStruct(ratingForm{Rating: 5}))
}

func TestFormatValidationErrors(t *testing.T) {
	out := FormatValidationErrors(map[string]string{"Name": "Minimum length is 20"})
	assert.Equal(t, "Name: Minimum length is 20", out)
}
