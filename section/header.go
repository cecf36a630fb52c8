package section

import (
	"time"

	"github.com/arloliu/linecode/errs"
	"github.com/arloliu/linecode/format"
)

// Header is the fixed-size header at the start of a capture.
type Header struct {
	// LevelCount is the number of levels stored in the payload.
	LevelCount uint32 // byte offset 4-7
	// SourceBits is the number of data bits the levels were encoded from.
	// Zero when unknown.
	SourceBits uint32 // byte offset 8-11
	// PayloadSize is the stored, possibly compressed, payload size.
	PayloadSize uint32 // byte offset 12-15
	// Checksum is the xxHash64 of the stored payload.
	Checksum uint64 // byte offset 16-23
	// Timestamp is the capture time in Unix microseconds.
	Timestamp int64 // byte offset 24-31

	Flag Flag // byte offset 0-3
}

// NewHeader returns a header for scheme captured at t. Counts and checksum
// are filled in when the encoder finishes.
func NewHeader(scheme format.Scheme, t time.Time) *Header {
	return &Header{
		Flag:      NewFlag(scheme),
		Timestamp: t.UnixMicro(),
	}
}

// Parse decodes exactly HeaderSize bytes into h and validates the flag.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Flag.Options = uint16(data[0]) | uint16(data[1])<<8
	h.Flag.Scheme = data[2]
	h.Flag.CompressionType = data[3]

	engine := h.Flag.GetEndianEngine()

	h.LevelCount = engine.Uint32(data[4:8])
	h.SourceBits = engine.Uint32(data[8:12])
	h.PayloadSize = engine.Uint32(data[12:16])
	h.Checksum = engine.Uint64(data[16:24])
	h.Timestamp = int64(engine.Uint64(data[24:32])) //nolint: gosec

	return h.Flag.Validate()
}

// Bytes serializes h into a new HeaderSize slice.
func (h *Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to dst.
func (h *Header) AppendTo(dst []byte) []byte {
	engine := h.Flag.GetEndianEngine()

	dst = append(dst, byte(h.Flag.Options), byte(h.Flag.Options>>8), h.Flag.Scheme, h.Flag.CompressionType)
	dst = engine.AppendUint32(dst, h.LevelCount)
	dst = engine.AppendUint32(dst, h.SourceBits)
	dst = engine.AppendUint32(dst, h.PayloadSize)
	dst = engine.AppendUint64(dst, h.Checksum)
	dst = engine.AppendUint64(dst, uint64(h.Timestamp)) //nolint: gosec

	return dst
}

// TimestampAsTime returns the capture time.
func (h *Header) TimestampAsTime() time.Time {
	return time.UnixMicro(h.Timestamp)
}

// ParseHeader parses the header at the start of data. Bytes after the
// header are ignored.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}

// IsCapture reports whether data starts with a valid capture header.
func IsCapture(data []byte) bool {
	_, err := ParseHeader(data)

	return err == nil
}
