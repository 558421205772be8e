package auth

import (
	"strings"
	"testing"
	"time"
)

func TestNewMockToken(t *testing.T) {
	t.Parallel()

	now := time.UnixMilli(1700000000123)
	got := NewMockToken(now)

	if got != "mock_token_1700000000123" {
		t.Fatalf("token mismatch: got %q", got)
	}
}

func TestNewMockToken_ChangesWithTime(t *testing.T) {
	t.Parallel()

	a := NewMockToken(time.UnixMilli(1))
	b := NewMockToken(time.UnixMilli(2))

	if a == b {
		t.Fatalf("tokens must differ across milliseconds: %q", a)
	}
	if !strings.HasPrefix(a, TokenPrefix) {
		t.Fatalf("missing prefix: %q", a)
	}
}
