package security_test

import (
	"regexp"
	"testing"

	"github.com/allandeluna/brainstash/internal/pkg/security"
)

func TestGenerateNumericCode(t *testing.T) {
	t.Parallel()

	codeRe := regexp.MustCompile(`^[1-9][0-9]{5}$`)
	seen := make(map[string]bool)
	for range 50 {
		code, err := security.GenerateNumericCode(6)
		if err != nil {
			t.Fatalf("GenerateNumericCode(6) returned error: %v", err)
		}
		if !codeRe.MatchString(code) {
			t.Fatalf("GenerateNumericCode(6) = %q, want 6 digits without a leading zero", code)
		}
		seen[code] = true
	}

	if len(seen) < 2 {
		t.Error("GenerateNumericCode(6) produced the same code 50 times")
	}
}

func TestGenerateNumericCode_ZeroDigits(t *testing.T) {
	t.Parallel()

	if _, err := security.GenerateNumericCode(0); err == nil {
		t.Error("GenerateNumericCode(0) should return an error")
	}
}

func TestGenerateRandomBytesURLEncoded(t *testing.T) {
	t.Parallel()

	got, err := security.GenerateRandomBytesURLEncoded(32)
	if err != nil {
		t.Fatalf("GenerateRandomBytesURLEncoded(32) returned error: %v", err)
	}
	if got == "" {
		t.Error("GenerateRandomBytesURLEncoded(32) returned an empty string")
	}
}
