package checksum

import (
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrcUpdate(t *testing.T) {
	c := NewCrc()
	assert.Zero(t, c.Sum())
	assert.Zero(t, c.Amount())

	c.Update([]byte("hello"))
	assert.Equal(t, uint32(0x3610a686), c.Sum())
	assert.Equal(t, uint64(5), c.Amount())

	// Incremental updates must equal a single pass.
	c.Update([]byte("world"))
	assert.Equal(t, crc32.ChecksumIEEE([]byte("helloworld")), c.Sum())
	assert.Equal(t, uint64(10), c.Amount())
}

func TestCrcReset(t *testing.T) {
	var c Crc
	c.Update([]byte("scratch"))
	c.Reset()

	assert.Zero(t, c.Sum())
	assert.Zero(t, c.Amount())
}

func TestCrcCombine(t *testing.T) {
	var a, b Crc
	a.Update([]byte("hello"))
	b.Update([]byte("world"))

	a.Combine(&b)
	assert.Equal(t, crc32.ChecksumIEEE([]byte("helloworld")), a.Sum())
	assert.Equal(t, uint64(10), a.Amount())

	// The argument is untouched.
	require.Equal(t, crc32.ChecksumIEEE([]byte("world")), b.Sum())
	require.Equal(t, uint64(5), b.Amount())
}

func TestCrcCombineEmpty(t *testing.T) {
	var a, empty Crc
	a.Update([]byte("payload"))
	before := a.Sum()

	a.Combine(&empty)
	assert.Equal(t, before, a.Sum())
	assert.Equal(t, uint64(7), a.Amount())
}
