// Package fec adds forward error correction to bit sequences before they are
// line coded.
//
// Bits are protected with the extended binary Golay code (24,12): every 12
// data bits become a 24-bit codeword, and up to 3 flipped bits per codeword
// are corrected on recovery. The last codeword is zero-filled when the input
// is not a multiple of 12 bits.
//
//	coded, err := fec.Protect(bits)
//	levels, err := encoding.Encode(coded, format.SchemeManchester)
//	...
//	recovered, err := fec.Recover(received, len(bits))
package fec

import (
	"fmt"

	"github.com/arloliu/linecode/encoding"
	"github.com/arloliu/linecode/errs"
	"github.com/arloliu/linecode/internal/bitpack"
	"github.com/yyyoichi/golay"
)

const (
	DataBits          = 12 // data bits per codeword
	CodewordBits      = 24 // coded bits per codeword
	CorrectableErrors = 3  // bit errors corrected per codeword
)

// EncodedLen returns the number of coded bits Protect produces for n data bits.
func EncodedLen(n int) int {
	if n <= 0 {
		return 0
	}

	return golay.EncodedBits(n)
}

// Protect encodes bits with the Golay code. bits is not modified.
func Protect(bits []encoding.Bit) ([]encoding.Bit, error) {
	if err := encoding.ValidateBits(bits); err != nil {
		return nil, err
	}
	if len(bits) == 0 {
		return []encoding.Bit{}, nil
	}

	words, size := bitpack.PackBits(bits)

	var encoded []uint64
	enc := golay.NewEncoder(&encoded)
	if err := enc.Encode(words, size); err != nil {
		return nil, fmt.Errorf("fec: golay encode: %w", err)
	}

	return bitpack.UnpackBits[encoding.Bit](encoded, enc.Bits()), nil
}

// Recover decodes n data bits from coded, correcting up to
// CorrectableErrors flipped bits in each codeword. len(coded) must equal
// EncodedLen(n).
func Recover(coded []encoding.Bit, n int) ([]encoding.Bit, error) {
	if n < 0 || len(coded) != EncodedLen(n) {
		return nil, fmt.Errorf("%w: got %d bits, want %d for %d data bits", errs.ErrCodewordLength, len(coded), EncodedLen(max(n, 0)), n)
	}
	if err := encoding.ValidateBits(coded); err != nil {
		return nil, err
	}
	if n == 0 {
		return []encoding.Bit{}, nil
	}

	words, size := bitpack.PackBits(coded)

	var decoded []uint64
	dec := golay.NewDecoder(words, size)
	if err := dec.Decode(&decoded); err != nil {
		return nil, fmt.Errorf("fec: golay decode: %w", err)
	}

	return bitpack.UnpackBits[encoding.Bit](decoded, n), nil
}
