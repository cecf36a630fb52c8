package compress

// ZstdCompressor compresses payloads with Zstandard.
//
// It gives the best ratio of the built-in codecs and suits captures that are
// archived or shipped over slow links.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor returns a Zstd codec using the default level.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
