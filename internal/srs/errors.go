package srs

import "errors"

// Sentinel errors for the srs package.
// Use errors.Is to check: errors.Is(err, srs.ErrInvalidQuality)
var (
	ErrInvalidQuality   = errors.New("srs: quality out of range")
	ErrUnknownAlgorithm = errors.New("srs: unknown algorithm")
	ErrMissingWord      = errors.New("srs: record has no word key")
)
