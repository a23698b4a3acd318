package pagination

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano

// ErrInvalidToken is returned for any token this package did not produce.
var ErrInvalidToken = errors.New("invalid pagination token")

// EncodeToken builds the cursor for keyset pagination over (date, created_at)
// descending. The token travels in query strings, so it uses the URL-safe
// alphabet without padding.
func EncodeToken(date time.Time, createdAt time.Time) string {
	raw := date.UTC().Format(timeFormat) + "|" + createdAt.UTC().Format(timeFormat)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeToken parses a token made by EncodeToken back into its date and creation time.
func DecodeToken(token string) (time.Time, time.Time, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: not base64url", ErrInvalidToken)
	}

	dateStr, createdStr, ok := strings.Cut(string(decoded), "|")
	if !ok {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: missing separator", ErrInvalidToken)
	}

	date, err := time.Parse(timeFormat, dateStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: date: %v", ErrInvalidToken, err)
	}
	createdAt, err := time.Parse(timeFormat, createdStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: created_at: %v", ErrInvalidToken, err)
	}
	return date, createdAt, nil
}
