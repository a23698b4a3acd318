package pagination

import (
	"encoding/base64"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, 1, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(date, createdAt)
	require.NotEmpty(t, token)

	gotDate, gotCreated, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, date.Equal(gotDate))
	assert.True(t, createdAt.Equal(gotCreated))
}

func TestEncodeToken_NormalisesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	local := time.Date(2024, 3, 1, 9, 0, 0, 0, loc)

	gotDate, _, err := DecodeToken(EncodeToken(local, local))

	require.NoError(t, err)
	assert.True(t, local.Equal(gotDate))
	assert.Equal(t, time.UTC, gotDate.Location())
}

func TestEncodeToken_SafeInQueryString(t *testing.T) {
	// Nanosecond timestamps push the standard alphabet into '+' and '/'.
	for i := 0; i < 500; i++ {
		ts := time.Date(2024, 1, 1, 0, 0, 0, i*7919, time.UTC).Add(time.Duration(i) * time.Hour)
		token := EncodeToken(ts, ts)
		assert.Equal(t, token, url.QueryEscape(token))
	}
}

func TestDecodeToken_Errors(t *testing.T) {
	enc := func(s string) string { return base64.RawURLEncoding.EncodeToString([]byte(s)) }

	tests := []struct {
		name  string
		token string
	}{
		{"not base64", "this is not base64!"},
		{"missing separator", enc("2024-01-15T00:00:00Z")},
		{"bad date", enc("notadate|2024-01-15T14:30:45Z")},
		{"bad created_at", enc("2024-01-15T00:00:00Z|later")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
