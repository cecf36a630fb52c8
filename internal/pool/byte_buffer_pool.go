// Package pool provides reusable buffers for capture encoding and decoding.
package pool

import "sync"

const (
	CaptureBufferDefaultSize  = 1024 * 4   // 4KiB
	CaptureBufferMaxThreshold = 1024 * 256 // 256KiB
)

// ByteBuffer is a growable byte slice that can be returned to a pool.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer and keeps its memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the number of bytes written.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Grow makes room for n more bytes without reallocating on the next write.
//
// Small buffers grow by CaptureBufferDefaultSize, larger ones by a quarter of
// their capacity, and always by at least n.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}

	growBy := CaptureBufferDefaultSize
	if cap(bb.B) > 4*CaptureBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	growBy = max(growBy, n)

	buf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(buf, bb.B)
	bb.B = buf
}

// Write appends data to the buffer. It never fails.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// ByteBufferPool pools ByteBuffers and drops ones that grew past maxThreshold.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool of buffers with the given initial capacity.
// A maxThreshold of 0 keeps buffers of any size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty ByteBuffer.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns bb to the pool.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var captureDefaultPool = NewByteBufferPool(CaptureBufferDefaultSize, CaptureBufferMaxThreshold)

// GetCaptureBuffer retrieves a buffer from the shared capture pool.
func GetCaptureBuffer() *ByteBuffer {
	return captureDefaultPool.Get()
}

// PutCaptureBuffer returns a buffer to the shared capture pool.
func PutCaptureBuffer(bb *ByteBuffer) {
	captureDefaultPool.Put(bb)
}
