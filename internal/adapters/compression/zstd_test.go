package compression

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamNilotpal/checksum/internal/core/domain"
)

func TestZstdRoundTrip(t *testing.T) {
	z, err := NewZstdCompression(Options{Level: DefaultLevel, EncoderConcurrency: 1, DecoderConcurrency: 1})
	require.NoError(t, err)
	defer z.Close()

	payload := bytes.Repeat([]byte(`{"offset":0,"length":1048576,"checksum":123456}`), 100)

	compressed, err := z.Compress(payload)
	require.NoError(t, err)
	assert.Less(t, len(compressed), len(payload))

	restored, err := z.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, payload, restored)
}

func TestZstdRoundTripsIncompressibleData(t *testing.T) {
	z, err := NewZstdCompression(Options{Level: FastestLevel, EncoderConcurrency: 1, DecoderConcurrency: 1})
	require.NoError(t, err)
	defer z.Close()

	// Even tiny inputs must come back as valid frames.
	compressed, err := z.Compress([]byte{0x01})
	require.NoError(t, err)

	restored, err := z.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01}, restored)
}

func TestZstdRejectsGarbage(t *testing.T) {
	z, err := NewZstdCompression(Options{Level: DefaultLevel, EncoderConcurrency: 1, DecoderConcurrency: 1})
	require.NoError(t, err)
	defer z.Close()

	_, err = z.Decompress([]byte("not a zstd frame"))
	assert.Error(t, err)
}

func TestValidateLevelBounds(t *testing.T) {
	assert.Error(t, Validate(&domain.CompressionOptions{Level: 0}))
	assert.Error(t, Validate(&domain.CompressionOptions{Level: BestLevel + 1}))
	assert.NoError(t, Validate(&domain.CompressionOptions{Level: DefaultLevel}))
}
