package section

import (
	"fmt"

	"github.com/arloliu/linecode/endian"
	"github.com/arloliu/linecode/errs"
	"github.com/arloliu/linecode/format"
)

// Flag is the packed first four bytes of a capture header.
type Flag struct {
	// Options holds the magic number in bits 4-15 and the endianness in bit 0.
	Options uint16
	// Scheme is the line coding scheme of the stored levels.
	Scheme uint8
	// CompressionType is the payload compression.
	CompressionType uint8
}

// NewFlag returns a little-endian flag for scheme with no compression.
func NewFlag(scheme format.Scheme) Flag {
	return Flag{
		Options:         MagicCaptureV1Opt,
		Scheme:          uint8(scheme),
		CompressionType: uint8(format.CompressionNone),
	}
}

// IsLittleEndian reports whether the header and payload are little-endian.
func (f Flag) IsLittleEndian() bool {
	return f.Options&EndiannessMask == 0
}

// IsBigEndian reports whether the header and payload are big-endian.
func (f Flag) IsBigEndian() bool {
	return f.Options&EndiannessMask != 0
}

// WithLittleEndian selects little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian selects big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic bits of Options.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// LineScheme returns the scheme field as a format.Scheme.
func (f Flag) LineScheme() format.Scheme {
	return format.Scheme(f.Scheme)
}

// Compression returns the compression field as a format.CompressionType.
func (f Flag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression sets the payload compression.
func (f *Flag) SetCompression(compression format.CompressionType) {
	f.CompressionType = uint8(compression)
}

// GetEndianEngine returns the engine matching the endianness bit.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}

// Validate checks the magic number, reserved bits, scheme and compression.
func (f Flag) Validate() error {
	if f.GetMagicNumber() != MagicCaptureV1Opt {
		return fmt.Errorf("%w: 0x%04X", errs.ErrInvalidMagicNumber, f.GetMagicNumber())
	}

	if f.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: reserved bits 0x%04X", errs.ErrInvalidHeaderFlags, f.Options&ReservedBitsMask)
	}

	if !f.LineScheme().IsValid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidScheme, f.Scheme)
	}

	if !f.Compression().IsValid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidCompression, f.CompressionType)
	}

	return nil
}
