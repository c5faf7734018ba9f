package srs

import (
	"encoding"
	"fmt"
	"strings"
)

// Algorithm selects one of the interchangeable scheduling strategies.
// The set is closed; callers pick a variant explicitly per update.
type Algorithm int

const (
	// Classic is the unmodified SM-2 schedule with day-grained intervals.
	Classic Algorithm = iota + 1
	// SessionOptimized tunes intervals (in minutes) for short learning
	// sessions targeting the 24-hour retention checkpoint.
	SessionOptimized
	// ExpandingRetrieval packs retrieval practice into a fixed 30-minute
	// dual-session window before falling back to 24-hour spacing.
	ExpandingRetrieval
)

var (
	algorithmNames = [...]string{
		Classic:            "classic",
		SessionOptimized:   "session",
		ExpandingRetrieval: "expanding",
	}
	algorithmByName = map[string]Algorithm{
		"classic":   Classic,
		"session":   SessionOptimized,
		"expanding": ExpandingRetrieval,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = Algorithm(0)
	_ encoding.TextMarshaler   = Algorithm(0)
	_ encoding.TextUnmarshaler = (*Algorithm)(nil)
)

// IsValid reports whether a names one of the three variants.
func (a Algorithm) IsValid() bool {
	return a >= Classic && a <= ExpandingRetrieval
}

// String returns the algorithm's name ("classic", "session", "expanding").
// For invalid values it returns "Algorithm(n)".
func (a Algorithm) String() string {
	if a.IsValid() {
		return algorithmNames[a]
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	return []byte(algorithmNames[a]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Matching is
// case-insensitive.
func (a *Algorithm) UnmarshalText(text []byte) error {
	v, ok := algorithmByName[strings.ToLower(string(text))]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, text)
	}
	*a = v
	return nil
}

// ParseAlgorithm converts a name into an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	var a Algorithm
	if err := a.UnmarshalText([]byte(name)); err != nil {
		return 0, err
	}
	return a, nil
}
