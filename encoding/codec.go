package encoding

import (
	"fmt"

	"github.com/arloliu/linecode/errs"
	"github.com/arloliu/linecode/format"
	"github.com/arloliu/linecode/internal/options"
)

// Encode converts bits to the level sequence of the given scheme.
//
// Encoding itself cannot fail; errors come only from input validation, which
// runs first.
//
// Parameters:
//   - bits: Data bits, each 0 or 1 (not modified)
//   - scheme: Line coding scheme
//
// Returns:
//   - []Level: len(bits) * scheme.LevelsPerBit() levels
//   - error: errs.ErrInvalidScheme for an unknown scheme, errs.ErrInvalidBit if any bit is not 0 or 1
func Encode(bits []Bit, scheme format.Scheme) ([]Level, error) {
	if !scheme.IsValid() {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidScheme, uint8(scheme))
	}
	if err := ValidateBits(bits); err != nil {
		return nil, err
	}

	out := make([]Level, 0, len(bits)*scheme.LevelsPerBit())

	switch scheme {
	case format.SchemeNRZ:
		return encodeNRZ(bits, out), nil
	case format.SchemeNRZI:
		return encodeNRZI(bits, out), nil
	case format.SchemeAMI:
		return encodeAMI(bits, out), nil
	case format.SchemeManchester:
		return encodeManchester(bits, out), nil
	case format.SchemeDifferentialManchester:
		return encodeDifferentialManchester(bits, out), nil
	case format.SchemeBiphaseMark:
		return encodeBiphase(bits, out, 1), nil
	case format.SchemeBiphaseSpace:
		return encodeBiphase(bits, out, 0), nil
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidScheme, uint8(scheme))
	}
}

// Decode converts a received level sequence back to bits.
//
// Corrupted symbols do not stop decoding; they are recovered and reported in
// the returned warnings, see the package documentation for the policies. After
// decoding the output is padded with 0-bits to a multiple of the frame size
// and a WarningPadding entry reports how many were added.
//
// Parameters:
//   - levels: Received levels (not modified)
//   - scheme: Line coding scheme the levels were produced with
//   - opts: Decode options such as WithFrameSize or WithoutPadding
//
// Returns:
//   - []Bit: Decoded bits, padded to the frame size
//   - []DecodeWarning: Recovered anomalies and the padding report, in stream order
//   - error: Returned before any decoding happens; errs.ErrInvalidScheme,
//     errs.ErrInvalidFrameSize or errs.ErrInvalidLevel
func Decode(levels []Level, scheme format.Scheme, opts ...DecodeOption) ([]Bit, []DecodeWarning, error) {
	if !scheme.IsValid() {
		return nil, nil, fmt.Errorf("%w: %d", errs.ErrInvalidScheme, uint8(scheme))
	}

	cfg := newDecodeConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, nil, err
	}

	if err := ValidateLevels(levels, scheme); err != nil {
		return nil, nil, err
	}

	d := &decoder{cfg: cfg}

	var bits []Bit
	switch scheme {
	case format.SchemeNRZ:
		bits = d.nrz(levels)
	case format.SchemeNRZI:
		bits = d.nrzi(levels)
	case format.SchemeAMI:
		bits = d.ami(levels)
	case format.SchemeManchester:
		bits = d.manchester(levels)
	case format.SchemeDifferentialManchester:
		bits = d.differentialManchester(levels)
	case format.SchemeBiphaseMark:
		bits = d.biphase(levels, 1)
	case format.SchemeBiphaseSpace:
		bits = d.biphase(levels, 0)
	default:
		return nil, nil, fmt.Errorf("%w: %d", errs.ErrInvalidScheme, uint8(scheme))
	}

	bits = d.pad(bits)

	return bits, d.warnings, nil
}

// decoder carries the per-call decode settings and collected warnings.
type decoder struct {
	cfg      *DecodeConfig
	warnings []DecodeWarning
}

func (d *decoder) warn(w DecodeWarning) {
	d.warnings = append(d.warnings, w)
}

// symbols returns the number of complete two-level symbols in levels and
// reports a dangling trailing level.
func (d *decoder) symbols(levels []Level) int {
	n := len(levels) / 2
	if len(levels)%2 != 0 {
		d.warn(DecodeWarning{
			Kind:   WarningTruncatedSymbol,
			Symbol: n,
			Offset: len(levels) - 1,
		})
	}

	return n
}

// checkMidTransition reports a symbol whose halves are equal.
func (d *decoder) checkMidTransition(levels []Level, symbol int, bit Bit) {
	if levels[2*symbol] != levels[2*symbol+1] {
		return
	}
	d.warn(DecodeWarning{
		Kind:   WarningMissingTransition,
		Symbol: symbol,
		Offset: 2 * symbol,
		Bit:    bit,
	})
}
