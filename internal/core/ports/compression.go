package ports

// CompressionPort abstracts the codec used for on-disk manifests so the
// algorithm can be swapped without touching service logic.
type CompressionPort interface {
	// Compress reduces data size.
	Compress(data []byte) ([]byte, error)

	// Decompress restores the original data.
	Decompress(data []byte) ([]byte, error)

	// Level returns the configured compression level.
	Level() uint8

	// Close releases codec resources. The port is unusable afterwards.
	Close() error
}
