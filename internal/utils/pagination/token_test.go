package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	weekStart := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, 5, 10, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(weekStart, createdAt)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedWeekStart, decodedCreatedAt, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, weekStart, decodedWeekStart, "Week start date should match after decode")
	assert.Equal(t, createdAt, decodedCreatedAt, "Created at time should match after decode")
}

func TestDecodeToken_Invalid(t *testing.T) {
	_, _, err := DecodeToken("not-base64!!")
	assert.Error(t, err, "Non-base64 input should fail")

	// Valid base64 but missing the separator.
	_, _, err = DecodeToken("aGVsbG8=")
	assert.Error(t, err, "Token without separator should fail")
}
