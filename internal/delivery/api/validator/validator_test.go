package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Nested   struct {
		Pincode string `json:"pincode" validate:"len=6"`
	} `json:"address"`
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	req := signupRequest{Email: "not-an-email", Password: "short"}
	req.Nested.Pincode = "12"

	err := v.Validate(&req)
	require.Error(t, err)

	assert.Equal(t, map[string]string{
		"email":           "email",
		"password":        "min=8",
		"address.pincode": "len=6",
	}, FieldErrors(err))
}

func TestValidate_Valid(t *testing.T) {
	v := New()

	req := signupRequest{Email: "asha@example.com", Password: "longenough"}
	req.Nested.Pincode = "560001"

	assert.NoError(t, v.Validate(&req))
}

func TestFieldErrors_OtherError(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
}
