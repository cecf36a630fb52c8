// Package section defines the binary header of a capture container.
//
// A capture is a fixed 32-byte header followed by the stored payload:
//
//	Bytes  | Field        | Type   | Description
//	-------|--------------|--------|---------------------------------------
//	0-1    | Flag.Options | uint16 | magic (bits 4-15), endianness (bit 0)
//	2      | Flag.Scheme  | uint8  | format.Scheme of the levels
//	3      | Flag.Comp    | uint8  | format.CompressionType of the payload
//	4-7    | LevelCount   | uint32 | number of levels in the payload
//	8-11   | SourceBits   | uint32 | data bits the levels were encoded from
//	12-15  | PayloadSize  | uint32 | stored payload size in bytes
//	16-23  | Checksum     | uint64 | xxHash64 of the stored payload
//	24-31  | Timestamp    | int64  | capture time, Unix microseconds
//
// The Options field is always little-endian so the endianness bit can be read
// before the rest of the header. Every other field uses the byte order the
// flag names.
package section
