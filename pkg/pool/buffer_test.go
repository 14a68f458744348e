package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferPoolGet(t *testing.T) {
	bp := NewBufferPool(64)

	buf := bp.Get()
	require.Len(t, buf, 64)

	// Reuse must hand back full-length buffers even if the caller resliced.
	bp.Put(buf[:10])
	again := bp.Get()
	assert.Len(t, again, 64)
}

func TestBufferPoolDropsForeignBuffers(t *testing.T) {
	bp := NewBufferPool(64)

	// Must not panic and must not poison the pool.
	bp.Put(make([]byte, 8))
	assert.Len(t, bp.Get(), 64)
}
