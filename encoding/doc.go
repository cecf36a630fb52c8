// Package encoding implements the line codec: the transformation between a bit
// sequence and the level sequence a transmitter puts on the wire, and its
// inverse for a received signal.
//
// # Schemes
//
// Seven schemes are supported, selected by format.Scheme:
//
//	Scheme                   Levels/bit  Alphabet     Encoder state
//	NRZ                      1           {0, 1}       none
//	NRZI                     1           {0, 1}       current level, starts at 0
//	AMI                      1           {-1, 0, +1}  last mark polarity, starts at +1
//	Manchester               2           {0, 1}       none
//	Differential_Manchester  2           {0, 1}       current level, starts at 0
//	Biphase_Mark             2           {0, 1}       current level, starts at 0
//	Biphase_Space            2           {0, 1}       current level, starts at 0
//
// State never outlives a call: every Encode and Decode starts from the initial
// values above, so concurrent calls need no locking.
//
// # Encoding
//
//	levels, err := encoding.Encode([]encoding.Bit{0, 0, 1, 0}, format.SchemeManchester)
//	// levels == [0 1 0 1 1 0 0 1]
//
// Encode rejects an unknown scheme with errs.ErrInvalidScheme and any bit other
// than 0 or 1 with errs.ErrInvalidBit before producing output.
//
// # Decoding
//
// Decode never aborts on a corrupted symbol. Anomalies found in the stream are
// recovered locally and returned as DecodeWarning values next to the bits:
//
//   - WarningInvalidTransition: a Manchester symbol of (0,0) or (1,1). The
//     previous decoded bit is repeated, or 0 for the first symbol.
//   - WarningMissingTransition: a Differential Manchester or Biphase symbol
//     without its mandatory mid-symbol transition. The bit is still decoded.
//   - WarningBipolarViolation: two AMI marks of the same polarity in a row.
//   - WarningTruncatedSymbol: a trailing level that does not form a full
//     two-level symbol. It is dropped.
//   - WarningPadding: 0-bits appended so the bit count is a multiple of the
//     frame size (8 by default, see WithFrameSize and WithoutPadding).
//
// Stateful decoders (NRZI, Differential Manchester, Biphase) compare the first
// symbol with the encoder's initial level 0. A receiver that joined the line
// mid-stream does not know that level; WithUnknownInitialLevel skips the first
// symbol instead (NRZI and Differential Manchester then return one bit less,
// Biphase skips the first symbol's bit).
//
// Round trip:
//
//	bits, warnings, err := encoding.Decode(levels, format.SchemeManchester)
//	bits = encoding.StripPadding(bits, warnings)
package encoding
