package capture

import (
	"fmt"

	"github.com/arloliu/linecode/compress"
	"github.com/arloliu/linecode/encoding"
	"github.com/arloliu/linecode/endian"
	"github.com/arloliu/linecode/errs"
	"github.com/arloliu/linecode/format"
	"github.com/arloliu/linecode/internal/bitpack"
	"github.com/arloliu/linecode/internal/hash"
	"github.com/arloliu/linecode/section"
)

// Decoder reads a serialized capture.
type Decoder struct {
	header section.Header
	words  []uint64
}

// NewDecoder parses data and verifies its header, payload size and checksum.
// The payload is decompressed eagerly; data is not retained.
//
// Parameters:
//   - data: Serialized capture, header followed by payload
//
// Returns:
//   - *Decoder: Decoder over the verified payload
//   - error: errs.ErrInvalidHeaderSize, errs.ErrInvalidMagicNumber, errs.ErrInvalidPayloadSize,
//     errs.ErrChecksumMismatch, errs.ErrLevelCountMismatch or a decompression error
func NewDecoder(data []byte) (*Decoder, error) {
	header, err := section.ParseHeader(data)
	if err != nil {
		return nil, err
	}

	payload := data[section.PayloadOffset:]
	if uint64(len(payload)) != uint64(header.PayloadSize) {
		return nil, fmt.Errorf("%w: header says %d bytes, have %d", errs.ErrInvalidPayloadSize, header.PayloadSize, len(payload))
	}

	if !hash.Verify(payload, header.Checksum) {
		return nil, errs.ErrChecksumMismatch
	}

	codec, err := compress.GetCodec(header.Flag.Compression())
	if err != nil {
		return nil, err
	}

	packed, err := codec.Decompress(payload)
	if err != nil {
		return nil, err
	}

	words, err := endian.ReadWords(packed, header.Flag.GetEndianEngine())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrLevelCountMismatch, err)
	}

	ternary := header.Flag.LineScheme().IsTernary()
	if len(words) != bitpack.WordCount(int(header.LevelCount), ternary) {
		return nil, fmt.Errorf("%w: %d levels in %d words", errs.ErrLevelCountMismatch, header.LevelCount, len(words))
	}

	return &Decoder{header: header, words: words}, nil
}

// Header returns the parsed header.
func (d *Decoder) Header() section.Header {
	return d.header
}

// Scheme returns the scheme the levels were encoded with.
func (d *Decoder) Scheme() format.Scheme {
	return d.header.Flag.LineScheme()
}

// SourceBits returns the recorded number of data bits, or 0 if unknown.
func (d *Decoder) SourceBits() int {
	return int(d.header.SourceBits)
}

// LevelCount returns the number of stored levels.
func (d *Decoder) LevelCount() int {
	return int(d.header.LevelCount)
}

// Levels unpacks the stored level sequence.
func (d *Decoder) Levels() ([]encoding.Level, error) {
	levels, err := bitpack.UnpackLevels[encoding.Level](d.words, d.LevelCount(), d.Scheme().IsTernary())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidLevel, err)
	}

	return levels, nil
}

// Bits decodes the stored levels. When the capture records its source bit
// count, frame padding is dropped and exactly that many bits are returned;
// the WarningPadding entry is then removed, or reduced to the padding bits
// still present, so encoding.StripPadding stays correct.
func (d *Decoder) Bits(opts ...encoding.DecodeOption) ([]encoding.Bit, []encoding.DecodeWarning, error) {
	levels, err := d.Levels()
	if err != nil {
		return nil, nil, err
	}

	bits, warnings, err := encoding.Decode(levels, d.Scheme(), opts...)
	if err != nil {
		return nil, nil, err
	}

	if n := d.SourceBits(); n > 0 && n < len(bits) {
		warnings = trimPadding(warnings, len(bits)-n)
		bits = bits[:n]
	}

	return bits, warnings, nil
}

// trimPadding accounts for removed trailing bits in the padding warning.
func trimPadding(warnings []encoding.DecodeWarning, removed int) []encoding.DecodeWarning {
	out := warnings[:0:0]
	for _, w := range warnings {
		if w.Kind == encoding.WarningPadding {
			if w.Count <= removed {
				continue
			}
			w.Count -= removed
		}
		out = append(out, w)
	}

	return out
}
