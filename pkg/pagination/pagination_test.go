package pagination

import (
	"testing"
	"time"
)

func TestNormalizeLimit(t *testing.T) {
	if got := NormalizeLimit(0); got != DefaultLimit {
		t.Fatalf("expected default %d, got %d", DefaultLimit, got)
	}
	if got := NormalizeLimit(-3); got != DefaultLimit {
		t.Fatalf("expected default %d for negative, got %d", DefaultLimit, got)
	}
	if got := NormalizeLimit(MaxLimit + 50); got != MaxLimit {
		t.Fatalf("expected cap %d, got %d", MaxLimit, got)
	}
	if got := NormalizeLimit(10); got != 10 {
		t.Fatalf("expected 10, got %d", got)
	}
	if got := LimitWithBuffer(10); got != 11 {
		t.Fatalf("expected buffered 11, got %d", got)
	}
}

func TestCursorRoundTrip(t *testing.T) {
	created := time.Date(2025, time.March, 14, 9, 26, 53, 0, time.UTC)
	encoded := EncodeCursor(Cursor{CreatedAt: created, ID: 987})

	cursor, err := ParseCursor(encoded)
	if err != nil {
		t.Fatalf("parse cursor: %v", err)
	}
	if cursor == nil {
		t.Fatal("expected cursor, got nil")
	}
	if !cursor.CreatedAt.Equal(created) {
		t.Fatalf("expected %v, got %v", created, cursor.CreatedAt)
	}
	if cursor.ID != 987 {
		t.Fatalf("expected id 987, got %d", cursor.ID)
	}
}

func TestParseCursorEmptyAndInvalid(t *testing.T) {
	cursor, err := ParseCursor("  ")
	if err != nil || cursor != nil {
		t.Fatalf("blank cursor should be nil/nil, got %v/%v", cursor, err)
	}

	if _, err := ParseCursor("%%%not-base64%%%"); err == nil {
		t.Fatal("expected error for invalid base64")
	}
	if _, err := ParseCursor("bm8tcGlwZXM"); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}
