package capture

import (
	"github.com/arloliu/linecode/compress"
	"github.com/arloliu/linecode/section"
)

// Capture is a finished, serialized capture.
type Capture struct {
	data  []byte
	stats compress.Stats
}

// Bytes returns the serialized capture. The slice must not be modified.
func (c Capture) Bytes() []byte {
	return c.data
}

// Len returns the total size in bytes.
func (c Capture) Len() int {
	return len(c.data)
}

// Stats reports the payload size before and after compression.
func (c Capture) Stats() compress.Stats {
	return c.stats
}

// Header returns the parsed header. A Capture produced by Encoder.Finish
// always has a valid one.
func (c Capture) Header() section.Header {
	h, _ := section.ParseHeader(c.data)

	return h
}
