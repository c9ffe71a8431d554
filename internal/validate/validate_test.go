package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"accountd/internal/model"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{"plain address", "user@example.com", true},
		{"minimal address", "a@b.c", true},
		{"uppercase normalized", "USER@EXAMPLE.COM", true},
		{"surrounding whitespace trimmed", "  user@example.com  ", true},
		{"subdomain", "user@mail.example.com", true},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"no at sign", "userexample.com", false},
		{"two at signs", "user@@example.com", false},
		{"no dot in domain", "user@examplecom", false},
		{"single-label domain", "a@b", false},
		{"empty local part", "@b.com", false},
		{"empty domain", "a@", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Email(tt.email)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, model.ErrInvalidEmail)
			}
		})
	}
}

func TestEmailErrorEchoesAddress(t *testing.T) {
	err := Email("user@@example.com")
	assert.ErrorContains(t, err, "user@@example.com")
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeEmail("  User@Example.COM "))
}

func TestUsername(t *testing.T) {
	assert.NoError(t, Username("john_doe"))
	assert.NoError(t, Username("  padded  "))
	assert.ErrorIs(t, Username(""), model.ErrInvalidUsername)
	assert.ErrorIs(t, Username("   "), model.ErrInvalidUsername)
}

func TestPassword(t *testing.T) {
	assert.NoError(t, Password("secret123"))
	assert.NoError(t, Password("sixchr"))
	assert.ErrorIs(t, Password("short"), model.ErrInvalidPassword)
	assert.ErrorIs(t, Password(""), model.ErrInvalidPassword)
}

func TestAge(t *testing.T) {
	assert.NoError(t, Age(0))
	assert.NoError(t, Age(25))
	assert.NoError(t, Age(150))
	assert.ErrorIs(t, Age(-1), model.ErrInvalidAge)
	assert.ErrorIs(t, Age(151), model.ErrInvalidAge)
}
