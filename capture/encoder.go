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
	"github.com/arloliu/linecode/internal/options"
	"github.com/arloliu/linecode/internal/pool"
	"github.com/arloliu/linecode/section"
)

// Encoder accumulates levels and serializes them into a Capture.
type Encoder struct {
	header   *section.Header
	codec    compress.Codec
	engine   endian.EndianEngine
	levels   []encoding.Level
	finished bool
}

// NewEncoder creates an encoder for levels produced by scheme.
//
// Parameters:
//   - scheme: Scheme of the levels that will be written
//   - opts: Compression, byte order, source bit count and timestamp
//
// Returns:
//   - *Encoder: Encoder ready for WriteLevels
//   - error: errs.ErrInvalidScheme, errs.ErrInvalidCompression or an invalid option
func NewEncoder(scheme format.Scheme, opts ...EncoderOption) (*Encoder, error) {
	if !scheme.IsValid() {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidScheme, uint8(scheme))
	}

	cfg := newEncoderConfig(scheme)
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(cfg.header.Flag.Compression())
	if err != nil {
		return nil, err
	}

	return &Encoder{
		header: cfg.header,
		codec:  codec,
		engine: cfg.header.Flag.GetEndianEngine(),
	}, nil
}

// Scheme returns the scheme the encoder was created for.
func (e *Encoder) Scheme() format.Scheme {
	return e.header.Flag.LineScheme()
}

// Len returns the number of levels written so far.
func (e *Encoder) Len() int {
	return len(e.levels)
}

// WriteLevels appends levels to the capture. Every level must belong to the
// scheme's alphabet; on error nothing is appended.
func (e *Encoder) WriteLevels(levels []encoding.Level) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}

	if uint64(len(e.levels))+uint64(len(levels)) > section.MaxLevelCount {
		return errs.ErrTooManyLevels
	}

	if err := encoding.ValidateLevels(levels, e.Scheme()); err != nil {
		return fmt.Errorf("capture: level %d onward: %w", len(e.levels), err)
	}

	e.levels = append(e.levels, levels...)

	return nil
}

// Finish serializes the capture. The encoder cannot be used afterwards.
func (e *Encoder) Finish() (Capture, error) {
	if e.finished {
		return Capture{}, errs.ErrEncoderFinished
	}
	e.finished = true

	ternary := e.Scheme().IsTernary()
	words := bitpack.PackLevels(e.levels, ternary)

	buf := pool.GetCaptureBuffer()
	defer pool.PutCaptureBuffer(buf)

	buf.Grow(len(words) * 8)
	buf.B = endian.AppendWords(buf.B, words, e.engine)

	payload, stats, err := compress.CompressWithStats(e.codec, e.header.Flag.Compression(), buf.Bytes())
	if err != nil {
		return Capture{}, err
	}

	if uint64(len(payload)) > section.MaxLevelCount {
		return Capture{}, fmt.Errorf("%w: %d bytes", errs.ErrInvalidPayloadSize, len(payload))
	}

	header := *e.header
	header.LevelCount = uint32(len(e.levels)) //nolint: gosec
	header.PayloadSize = uint32(len(payload)) //nolint: gosec
	header.Checksum = hash.Checksum(payload)

	data := make([]byte, 0, section.HeaderSize+len(payload))
	data = header.AppendTo(data)
	data = append(data, payload...)

	e.levels = nil

	return Capture{data: data, stats: stats}, nil
}
