package encoding

import (
	"github.com/arloliu/linecode/errs"
	"github.com/arloliu/linecode/format"
	"github.com/hashicorp/go-multierror"
)

// maxReportedErrors caps the number of positions listed in a validation error.
const maxReportedErrors = 8

// ValidateBits checks that every bit is 0 or 1.
//
// The returned error aggregates up to 8 *errs.InvalidBitError values and
// matches errs.ErrInvalidBit with errors.Is.
func ValidateBits(bits []Bit) error {
	var result *multierror.Error
	for i, b := range bits {
		if b <= 1 {
			continue
		}
		result = multierror.Append(result, &errs.InvalidBitError{Index: i, Value: uint8(b)})
		if len(result.Errors) == maxReportedErrors {
			break
		}
	}

	return result.ErrorOrNil()
}

// ValidateLevels checks that every level belongs to the scheme's alphabet.
//
// The returned error aggregates up to 8 *errs.InvalidLevelError values and
// matches errs.ErrInvalidLevel with errors.Is. The scheme must be valid.
func ValidateLevels(levels []Level, scheme format.Scheme) error {
	var result *multierror.Error
	for i, l := range levels {
		if scheme.Contains(int8(l)) {
			continue
		}
		result = multierror.Append(result, &errs.InvalidLevelError{Index: i, Value: int8(l), Scheme: scheme.String()})
		if len(result.Errors) == maxReportedErrors {
			break
		}
	}

	return result.ErrorOrNil()
}
