// Package endian provides the byte order used for capture headers and packed
// level payloads.
//
// Captures are little-endian unless the encoder is configured otherwise; the
// choice is recorded in the header flag so decoders pick the matching engine.
//
//	engine := endian.GetLittleEndianEngine()
//	buf = endian.AppendWords(buf, words, engine)
//
// All functions in this package are safe for concurrent use.
package endian

import (
	"encoding/binary"
	"fmt"
	"unsafe"
)

// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder.
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness returns the host byte order.
func CheckEndianness() binary.ByteOrder {
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// AppendWords appends each word as 8 bytes in the engine's byte order.
func AppendWords(dst []byte, words []uint64, engine EndianEngine) []byte {
	for _, w := range words {
		dst = engine.AppendUint64(dst, w)
	}

	return dst
}

// ReadWords decodes data written by AppendWords. The length of data must be
// a multiple of 8.
func ReadWords(data []byte, engine EndianEngine) ([]uint64, error) {
	if len(data)%8 != 0 {
		return nil, fmt.Errorf("endian: word data length %d is not a multiple of 8", len(data))
	}

	words := make([]uint64, len(data)/8)
	for i := range words {
		words[i] = engine.Uint64(data[i*8:])
	}

	return words, nil
}
