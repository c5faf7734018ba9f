package srs

import (
	"errors"
	"testing"
)

func TestAlgorithmString(t *testing.T) {
	tests := []struct {
		a    Algorithm
		want string
	}{
		{Classic, "classic"},
		{SessionOptimized, "session"},
		{ExpandingRetrieval, "expanding"},
		{Algorithm(0), "Algorithm(0)"},
		{Algorithm(9), "Algorithm(9)"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", int(tt.a), got, tt.want)
		}
	}
}

func TestParseAlgorithm(t *testing.T) {
	for _, name := range []string{"classic", "session", "expanding", "CLASSIC", "Session"} {
		a, err := ParseAlgorithm(name)
		if err != nil {
			t.Errorf("ParseAlgorithm(%q): %v", name, err)
		}
		if !a.IsValid() {
			t.Errorf("ParseAlgorithm(%q) = invalid %d", name, int(a))
		}
	}

	_, err := ParseAlgorithm("sm17")
	if !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("err = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestAlgorithmTextRoundTrip(t *testing.T) {
	for _, a := range []Algorithm{Classic, SessionOptimized, ExpandingRetrieval} {
		text, err := a.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", a, err)
		}
		var back Algorithm
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != a {
			t.Errorf("round trip %v → %q → %v", a, text, back)
		}
	}

	if _, err := Algorithm(42).MarshalText(); err == nil {
		t.Error("MarshalText should reject invalid algorithm")
	}
}
