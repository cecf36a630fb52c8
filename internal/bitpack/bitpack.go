// Package bitpack packs bit and level sequences into 64-bit words.
//
// Binary values take one bit each. Ternary levels take two bits: a mark bit
// followed by a sign bit, so 0 is 00, +1 is 10 and -1 is 11. The pattern 01
// never appears in packed data and is rejected when unpacking.
package bitpack

import (
	"errors"
	"fmt"

	"github.com/yyyoichi/bitstream-go"
)

// ErrInvalidTernaryCode reports the unused 01 pattern in packed ternary data.
var ErrInvalidTernaryCode = errors.New("invalid ternary level code")

// PackBits packs values treated as booleans (non-zero is 1) and returns the
// words and the number of bits written.
func PackBits[T ~uint8](bits []T) ([]uint64, int) {
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, b := range bits {
		w.WriteBool(b != 0)
	}

	return fitWords(w.Data(), WordCount(len(bits), false)), w.Bits()
}

// UnpackBits reads n bits from words. Bits beyond the end of words read as 0.
func UnpackBits[T ~uint8](words []uint64, n int) []T {
	r := bitstream.NewBitReader(words, 0, 0)
	out := make([]T, n)
	for i := range out {
		if i >= len(words)*64 {
			break
		}
		if bit, _ := r.ReadBitAt(i); bit {
			out[i] = 1
		}
	}

	return out
}

// Width returns the number of bits used per level.
func Width(ternary bool) int {
	if ternary {
		return 2
	}

	return 1
}

// PackLevels packs a level sequence. Binary levels must be 0 or 1, ternary
// levels -1, 0 or +1; callers validate before packing.
func PackLevels[T ~int8](levels []T, ternary bool) []uint64 {
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, l := range levels {
		w.WriteBool(l != 0)
		if ternary {
			w.WriteBool(l < 0)
		}
	}

	return fitWords(w.Data(), WordCount(len(levels), ternary))
}

// UnpackLevels reads n levels packed by PackLevels.
func UnpackLevels[T ~int8](words []uint64, n int, ternary bool) ([]T, error) {
	width := Width(ternary)
	if n*width > len(words)*64 {
		return nil, fmt.Errorf("bitpack: %d levels need %d bits, have %d", n, n*width, len(words)*64)
	}

	r := bitstream.NewBitReader(words, 0, 0)
	out := make([]T, n)
	for i := range out {
		mark, _ := r.ReadBitAt(i * width)
		if !ternary {
			if mark {
				out[i] = 1
			}
			continue
		}

		negative, _ := r.ReadBitAt(i*width + 1)
		switch {
		case mark && negative:
			out[i] = -1
		case mark:
			out[i] = 1
		case negative:
			return nil, fmt.Errorf("%w at level %d", ErrInvalidTernaryCode, i)
		}
	}

	return out, nil
}

// WordCount returns the number of 64-bit words needed for n levels.
func WordCount(n int, ternary bool) int {
	return (n*Width(ternary) + 63) / 64
}

// fitWords trims or zero-extends words to exactly n entries.
func fitWords(words []uint64, n int) []uint64 {
	if len(words) >= n {
		return words[:n:n]
	}

	out := make([]uint64, n)
	copy(out, words)

	return out
}
