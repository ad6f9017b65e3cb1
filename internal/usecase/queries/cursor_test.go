//go:build unit

package queries

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursorRoundTrip(t *testing.T) {
	at := time.Date(2025, 3, 1, 9, 30, 15, 123456789, time.UTC)
	id := uuid.New()

	gotAt, gotID, err := DecodeAfterCursor(EncodeAfterCursor(at, id))

	require.NoError(t, err)
	assert.True(t, gotAt.Equal(at.Truncate(time.Microsecond)))
	assert.Equal(t, id, gotID)
}

func TestDecodeAfterCursorRejects(t *testing.T) {
	tests := []struct {
		name   string
		cursor string
	}{
		{"empty", ""},
		{"not base64", "%%%"},
		{"missing version", base64.URLEncoding.EncodeToString([]byte("12345-" + uuid.NewString()))},
		{"bad timestamp", base64.URLEncoding.EncodeToString([]byte("v1:abc-" + uuid.NewString()))},
		{"bad uuid", base64.URLEncoding.EncodeToString([]byte("v1:12345-nope"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeAfterCursor(tt.cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, DefaultHistoryLimit, ValidateLimit(0))
	assert.Equal(t, DefaultHistoryLimit, ValidateLimit(-3))
	assert.Equal(t, 7, ValidateLimit(7))
	assert.Equal(t, MaxHistoryLimit, ValidateLimit(MaxHistoryLimit+1))
}
