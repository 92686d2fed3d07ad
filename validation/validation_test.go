package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	tiers "github.com/gettupp/backoffice/tiers/domain"
)

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"(305) 555-0100", true},
		{"+1 305 555 0100", true},
		{"555-0100", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPhone(tt.phone))
		})
	}
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "Club &lt;b&gt;Space&lt;/b&gt;", SanitizeString("  Club   <b>Space</b> "))
}

func TestNormalizeInstagram(t *testing.T) {
	for _, in := range []string{"@ClubSpace", "https://www.instagram.com/clubspace/", "clubspace"} {
		assert.Equal(t, "clubspace", NormalizeInstagram(in))
	}
}

func TestValidateBooking(t *testing.T) {
	tests := []struct {
		name       string
		in         BookingInput
		wantFields []string
	}{
		{
			name: "valid booking",
			in:   BookingInput{Name: "Club Space", Email: "owner@clubspace.com", Phone: "305-555-0100"},
		},
		{
			name:       "short name and bad email",
			in:         BookingInput{Name: "C", Email: "nope"},
			wantFields: []string{"name", "email"},
		},
		{
			name:       "bad phone",
			in:         BookingInput{Name: "Club Space", Email: "owner@clubspace.com", Phone: "12"},
			wantFields: []string{"phone"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBooking(tt.in)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			var fe FieldErrors
			assert.True(t, errors.As(err, &fe))
			assert.Len(t, fe, len(tt.wantFields))

			for _, field := range tt.wantFields {
				assert.Contains(t, fe, field)
			}
		})
	}
}

func TestFieldErrors_Error(t *testing.T) {
	err := FieldErrors{"phone": "Invalid phone number format", "email": "Valid email is required"}
	assert.Equal(t, "Valid email is required; Invalid phone number format", err.Error())
}

func TestValidateShootDate(t *testing.T) {
	now := time.Date(2024, time.June, 10, 15, 0, 0, 0, time.UTC)

	assert.NoError(t, ValidateShootDate(now.Add(-time.Hour), now))
	assert.NoError(t, ValidateShootDate(now.AddDate(0, 0, 3), now))
	assert.ErrorIs(t, ValidateShootDate(now.AddDate(0, 0, -1), now), ErrPastDate)
}

func TestStruct(t *testing.T) {
	type payload struct {
		Tier  tiers.Tier `json:"tier" validate:"required,tier"`
		Phone string     `json:"phone" validate:"omitempty,phone"`
	}

	assert.NoError(t, Struct(payload{Tier: tiers.TierVIP}))

	err := Struct(payload{Tier: "platinum", Phone: "1"})

	var fe FieldErrors
	assert.True(t, errors.As(err, &fe))
	assert.Equal(t, tiers.ErrInvalidTier.Error(), fe["tier"])
	assert.Equal(t, "Invalid phone number format", fe["phone"])
}
