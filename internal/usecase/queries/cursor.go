package queries

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const (
	MaxListLimit    = 200
	CursorVersionV1 = "v1"
)

// Reservation and user listings are ordered by mutable columns (status,
// last activity), so the cursor carries a row offset rather than a key.
func EncodeOffsetCursor(offset int) string {
	cursorData := fmt.Sprintf("%s:%d", CursorVersionV1, offset)
	return base64.URLEncoding.EncodeToString([]byte(cursorData))
}

func DecodeOffsetCursor(cursor string) (int, error) {
	if cursor == "" {
		return 0, fmt.Errorf("cursor cannot be empty")
	}

	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return 0, fmt.Errorf("invalid cursor encoding: %w", err)
	}

	payload, ok := strings.CutPrefix(string(decoded), CursorVersionV1+":")
	if !ok {
		return 0, fmt.Errorf("unsupported cursor version")
	}

	offset, err := strconv.Atoi(payload)
	if err != nil {
		return 0, fmt.Errorf("invalid offset: %w", err)
	}
	if offset < 0 {
		return 0, fmt.Errorf("negative offset")
	}
	return offset, nil
}

type Cursor struct {
	After string `json:"after,omitempty"`
}

func (c *Cursor) offset() (int, error) {
	if c == nil || c.After == "" {
		return 0, nil
	}
	offset, err := DecodeOffsetCursor(c.After)
	if err != nil {
		return 0, ErrInvalidCursor
	}
	return offset, nil
}

// nextCursor trims a limit+1 fetch to limit and reports whether another page exists.
func nextCursor[T any](rows []T, offset, limit int) ([]T, *Cursor) {
	if len(rows) <= limit {
		return rows, nil
	}
	return rows[:limit], &Cursor{After: EncodeOffsetCursor(offset + limit)}
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return 20 // default limit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
