package section

import "math"

const (
	EndiannessMask   = 0x0001 // bit 0: 0=little, 1=big
	ReservedBitsMask = 0x000E // bits 1-3, must be zero
	MagicNumberMask  = 0xFFF0 // bits 4-15

	MagicCaptureV1Opt = 0xEC10 // capture container, version 1
)

const (
	HeaderSize    = 32             // fixed header size in bytes
	PayloadOffset = HeaderSize     // byte offset where the payload starts
	MaxLevelCount = math.MaxUint32 // largest level count a header can record
)
