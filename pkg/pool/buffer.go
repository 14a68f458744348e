package pool

import (
	"sync"
)

// BufferPool manages a pool of fixed-size byte slices for chunked reads.
type BufferPool struct {
	size int       // Length of each buffer.
	pool sync.Pool // Thread-safe pool of buffers.
}

// Creates a new buffer pool handing out slices of the specified size.
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		size: size,
		pool: sync.Pool{
			New: func() any {
				buf := make([]byte, size)
				return &buf
			},
		},
	}
}

// Retrieves a full-length buffer from the pool.
func (bp *BufferPool) Get() []byte {
	buf := bp.pool.Get().(*[]byte)
	return (*buf)[:bp.size]
}

// Returns a buffer to the pool. Buffers of a foreign capacity are dropped.
func (bp *BufferPool) Put(buf []byte) {
	if cap(buf) < bp.size {
		return
	}

	buf = buf[:bp.size]
	bp.pool.Put(&buf)
}
