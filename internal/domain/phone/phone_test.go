package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killyross/barbershop-booking/internal/httperr"
)

func TestFormat_PT(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"bare nine digits", "912345678", "+351912345678"},
		{"already normalized", "+351912345678", "+351912345678"},
		{"international 00 prefix", "00351912345678", "+351912345678"},
		{"spaces stripped", "912 345 678", "+351912345678"},
		{"prefixed with spaces", "+351 912 345 678", "+351912345678"},
		{"leading zeros trimmed", "0912345678", "+351912345678"},
		{"landline", "212345678", "+351212345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.raw, "PT")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_Idempotent(t *testing.T) {
	once, err := Format("912345678", "PT")
	require.NoError(t, err)

	twice, err := Format(once, "PT")
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestFormat_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"too short", "91234567"},
		{"too long", "9123456789"},
		{"letters", "91234567a"},
		{"empty", ""},
		{"only prefix", "+351"},
		{"all zeros", "000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Format(tt.raw, "PT")
			assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidPhoneFormat))
		})
	}
}

func TestFormat_UnknownCountry(t *testing.T) {
	_, err := Format("912345678", "ES")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidPhoneFormat))
}
