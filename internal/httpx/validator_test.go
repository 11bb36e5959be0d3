package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct_ISBN(t *testing.T) {
	type payload struct {
		ISBN string `validate:"required,isbn"`
	}

	valid := []string{
		"9780132350884",
		"978-0-13-235088-4",
		"0132350882",
		"043942089X",
	}
	for _, isbn := range valid {
		assert.Nil(t, ValidateStruct(payload{ISBN: isbn}), "expected %q to be valid", isbn)
	}

	invalid := []string{
		"",
		"abc",
		"12345",
		"97801323508841",
	}
	for _, isbn := range invalid {
		assert.NotNil(t, ValidateStruct(payload{ISBN: isbn}), "expected %q to be invalid", isbn)
	}
}

func TestValidateStruct_FieldDetails(t *testing.T) {
	type payload struct {
		Customer string `validate:"required,max=100"`
		Email    string `validate:"omitempty,email"`
	}

	details := ValidateStruct(payload{Customer: "", Email: "not-an-email"})

	assert.Len(t, details, 2)
	assert.Equal(t, "customer", details[0].Field)
	assert.Equal(t, "email", details[1].Field)
}
