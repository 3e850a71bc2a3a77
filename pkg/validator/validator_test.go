package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type form struct {
	Email  string `validate:"required,email"`
	Mobile string `validate:"omitempty,mobile"`
	Year   string `validate:"omitempty,passoutyear"`
}

func TestValidateOK(t *testing.T) {
	err := Validate(context.Background(), form{
		Email:  "a@x.com",
		Mobile: "+4915112345678",
		Year:   "2015",
	})
	require.NoError(t, err)
}

func TestValidateMissingEmail(t *testing.T) {
	err := Validate(context.Background(), form{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrFieldRequired)
}

func TestValidateBadMobile(t *testing.T) {
	err := Validate(context.Background(), form{Email: "a@x.com", Mobile: "call-me"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Mobile number")
}

func TestValidatePassoutYear(t *testing.T) {
	for _, bad := range []string{"15", "20155", "3000", "abcd"} {
		err := Validate(context.Background(), form{Email: "a@x.com", Year: bad})
		assert.Error(t, err, "year %q should be rejected", bad)
	}

	err := Validate(context.Background(), form{Email: "a@x.com", Year: "1999"})
	assert.NoError(t, err)
}
