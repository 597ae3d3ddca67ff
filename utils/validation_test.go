package utils

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type refPayload struct {
	BookingID string `json:"bookingId" binding:"required,objectid"`
	DateID    string `json:"dateId" binding:"omitempty,objectid"`
}

func bindRef(t *testing.T, payload refPayload) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, RegisterValidators())
	return binding.Validator.ValidateStruct(&payload)
}

func TestObjectIDRule(t *testing.T) {
	valid := "5f2a6c9e8d1b4a3c2e1f0a9b"

	assert.NoError(t, bindRef(t, refPayload{BookingID: valid}))
	assert.NoError(t, bindRef(t, refPayload{BookingID: valid, DateID: valid}))
	assert.Error(t, bindRef(t, refPayload{BookingID: "too-short"}))
	assert.Error(t, bindRef(t, refPayload{BookingID: valid, DateID: "zz2a6c9e8d1b4a3c2e1f0a9b"}))
}

func TestObjectIDRuleComposesWithOmitempty(t *testing.T) {
	valid := "5f2a6c9e8d1b4a3c2e1f0a9b"
	assert.NoError(t, bindRef(t, refPayload{BookingID: valid, DateID: ""}))
}

func TestExtractFieldErrorsUsesJSONNames(t *testing.T) {
	err := bindRef(t, refPayload{BookingID: "nope"})
	require.Error(t, err)

	fields := ExtractFieldErrors(err)
	require.Len(t, fields, 1)
	assert.Equal(t, "bookingId", fields[0].Field)
	assert.Contains(t, fields[0].Reason, "24-character")
}

func TestExtractFieldErrorsNonValidatorError(t *testing.T) {
	fields := ExtractFieldErrors(assert.AnError)
	require.Len(t, fields, 1)
	assert.Equal(t, "body", fields[0].Field)
}
