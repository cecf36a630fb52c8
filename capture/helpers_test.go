package capture

import (
	"github.com/arloliu/linecode/endian"
	"github.com/arloliu/linecode/internal/bitpack"
	"github.com/arloliu/linecode/internal/hash"
)

func checksumOf(data []byte) uint64 {
	return hash.Checksum(data)
}

func packedBits(bits []uint8) []byte {
	words, _ := bitpack.PackBits(bits)

	return endian.AppendWords(nil, words, endian.GetLittleEndianEngine())
}
