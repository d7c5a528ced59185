package idgen

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewCodeHasPrefixAndFixedLength(t *testing.T) {
	code, err := NewCode("RC")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.HasPrefix(code, "RC") {
		t.Fatalf("expected RC prefix, got %s", code)
	}
	if len(code) != len("RC")+16 {
		t.Fatalf("expected 18 characters, got %d (%s)", len(code), code)
	}
}

func TestNewCodeUniqueInTightLoop(t *testing.T) {
	const n = 10000
	seen := make(map[string]struct{}, n)
	var previous string
	for i := 0; i < n; i++ {
		code, err := NewCode("M")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if _, ok := seen[code]; ok {
			t.Fatalf("duplicate code %s after %d iterations", code, i)
		}
		if previous != "" && code <= previous {
			t.Fatalf("expected increasing codes, got %s after %s", code, previous)
		}
		seen[code] = struct{}{}
		previous = code
	}
}

func TestNewIDIsUUID(t *testing.T) {
	if _, err := uuid.Parse(NewID()); err != nil {
		t.Fatalf("expected uuid, got error %v", err)
	}
}
