// Package compress provides the payload codecs used by capture containers.
//
// A capture payload is the bit-packed level stream of an encoded signal. Long
// runs of identical levels, as produced by NRZ or AMI on sparse data, compress
// well; Manchester-family payloads are closer to random and usually gain
// little.
//
// Four algorithms are available, selected by format.CompressionType:
//
//	None  no compression, the payload is passed through
//	Zstd  best ratio, slower to compress
//	S2    fast, moderate ratio
//	LZ4   fastest decompression
//
// Codecs are obtained through GetCodec, which returns shared stateless
// instances, or CreateCodec, which returns a fresh one:
//
//	codec, err := compress.GetCodec(format.CompressionS2)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
//
// The Zstd codec uses klauspost/compress by default. Building with the
// gozstd tag and cgo enabled switches it to the libzstd binding from
// valyala/gozstd.
//
// All codecs are safe for concurrent use.
package compress
