package checksum

import (
	"bytes"
	"hash/crc32"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineMatchesSequentialChecksum(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		a := make([]byte, rng.Intn(512))
		b := make([]byte, rng.Intn(512))
		rng.Read(a)
		rng.Read(b)

		want := crc32.ChecksumIEEE(append(append([]byte{}, a...), b...))
		got := Combine(crc32.ChecksumIEEE(a), crc32.ChecksumIEEE(b), uint64(len(b)))
		require.Equal(t, want, got, "a=%d bytes, b=%d bytes", len(a), len(b))
	}
}

func TestCombineHelloWorld(t *testing.T) {
	a := []byte("hello")
	b := []byte("world")

	require.Equal(t, uint32(0x3610a686), crc32.ChecksumIEEE(a))

	got := Combine(crc32.ChecksumIEEE(a), crc32.ChecksumIEEE(b), uint64(len(b)))
	assert.Equal(t, uint32(4192936109), got)
	assert.Equal(t, crc32.ChecksumIEEE([]byte("helloworld")), got)
}

func TestCombineEmptySuffix(t *testing.T) {
	// crc32("") == 0, and appending nothing must be the identity for any
	// starting checksum, not just valid ones.
	require.Zero(t, crc32.ChecksumIEEE(nil))

	for _, c := range []uint32{0, 1, 0xDEADBEEF, 0xFFFFFFFF, crc32.ChecksumIEEE([]byte("abc"))} {
		assert.Equal(t, c, Combine(c, 0, 0))
	}
}

func TestCombineSingleByteSuffix(t *testing.T) {
	a := []byte("boundary")
	crcA := crc32.ChecksumIEEE(a)

	for b := 0; b < 256; b++ {
		suffix := []byte{byte(b)}
		want := crc32.ChecksumIEEE(append(append([]byte{}, a...), suffix...))
		got := Combine(crcA, crc32.ChecksumIEEE(suffix), 1)
		require.Equal(t, want, got, "suffix byte %#02x", b)
	}
}

func TestCombineChaining(t *testing.T) {
	a := []byte("write-ahead ")
	b := []byte("logs are ")
	c := []byte("sequential")

	ab := Combine(crc32.ChecksumIEEE(a), crc32.ChecksumIEEE(b), uint64(len(b)))
	abc := Combine(ab, crc32.ChecksumIEEE(c), uint64(len(c)))

	whole := bytes.Join([][]byte{a, b, c}, nil)
	assert.Equal(t, crc32.ChecksumIEEE(whole), abc)
}

func TestCombineLargeLength(t *testing.T) {
	// A 1 MiB suffix takes 20 squaring rounds, not 2^20 update steps; this
	// exercises the high bits of the exponentiation loop.
	a := []byte("prefix")
	b := make([]byte, 1<<20)

	want := crc32.ChecksumIEEE(append(append([]byte{}, a...), b...))
	got := Combine(crc32.ChecksumIEEE(a), crc32.ChecksumIEEE(b), uint64(len(b)))
	assert.Equal(t, want, got)
}

func TestCombineDeterministic(t *testing.T) {
	first := Combine(0x12345678, 0x9ABCDEF0, 77)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Combine(0x12345678, 0x9ABCDEF0, 77))
	}
}

func TestCombineConcurrent(t *testing.T) {
	a := []byte("shared prefix")
	b := []byte("shared suffix")
	want := crc32.ChecksumIEEE(append(append([]byte{}, a...), b...))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := Combine(crc32.ChecksumIEEE(a), crc32.ChecksumIEEE(b), uint64(len(b))); got != want {
					t.Errorf("got %#08x, want %#08x", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}
