// Package errs defines the error values returned by linecode packages.
//
// Input errors are sentinel values matched with errors.Is. Errors that carry a
// position, such as InvalidBitError, unwrap to their sentinel so callers can
// match either the category or the concrete type:
//
//	if errors.Is(err, errs.ErrInvalidBit) { ... }
//
//	var bitErr *errs.InvalidBitError
//	if errors.As(err, &bitErr) {
//	    fmt.Println(bitErr.Index)
//	}
package errs

import (
	"errors"
	"fmt"
)

// Codec errors.
var (
	ErrInvalidScheme      = errors.New("invalid line coding scheme")
	ErrInvalidBit         = errors.New("invalid bit value")
	ErrInvalidLevel       = errors.New("invalid signal level")
	ErrInvalidProbability = errors.New("noise probability must be within [0, 1]")
	ErrInvalidFrameSize   = errors.New("frame size must not be negative")
)

// Channel and FEC errors.
var (
	ErrInvalidTrialCount  = errors.New("trial count must be positive")
	ErrInvalidConcurrency = errors.New("concurrency must be positive")
	ErrEmptyInput         = errors.New("input sequence is empty")
	ErrCodewordLength     = errors.New("coded length does not match expected codeword length")
)

// Capture container errors.
var (
	ErrInvalidHeaderSize  = errors.New("invalid capture header size")
	ErrInvalidMagicNumber = errors.New("invalid capture magic number")
	ErrInvalidHeaderFlags = errors.New("invalid capture header flags")
	ErrInvalidCompression = errors.New("invalid compression type")
	ErrInvalidPayloadSize = errors.New("capture payload size mismatch")
	ErrChecksumMismatch   = errors.New("capture payload checksum mismatch")
	ErrLevelCountMismatch = errors.New("capture level count mismatch")
	ErrTooManyLevels      = errors.New("too many levels for a single capture")
	ErrEncoderFinished    = errors.New("capture encoder already finished")
)

// InvalidBitError reports an input bit that is neither 0 nor 1.
type InvalidBitError struct {
	Index int
	Value uint8
}

func (e *InvalidBitError) Error() string {
	return fmt.Sprintf("%s: value %d at index %d", ErrInvalidBit, e.Value, e.Index)
}

func (e *InvalidBitError) Unwrap() error {
	return ErrInvalidBit
}

// InvalidLevelError reports a level outside the alphabet of the named scheme.
type InvalidLevelError struct {
	Index  int
	Value  int8
	Scheme string
}

func (e *InvalidLevelError) Error() string {
	return fmt.Sprintf("%s: value %d at index %d is outside the %s alphabet", ErrInvalidLevel, e.Value, e.Index, e.Scheme)
}

func (e *InvalidLevelError) Unwrap() error {
	return ErrInvalidLevel
}
