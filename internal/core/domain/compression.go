package domain

// CompressionOptions configures compression of on-disk manifests.
// Chunked manifests of large files are long and repetitive, so they
// compress well.
type CompressionOptions struct {
	// Enable toggles compression of saved manifests. Loading transparently
	// handles both compressed and plain manifests regardless of this flag.
	Enable bool

	// Level defines the zstd compression level when compression is enabled.
	// Supported levels:
	//   - FastestLevel: fastest compression, lowest ratio
	//   - DefaultLevel: balanced speed and ratio
	//   - BestLevel: maximum ratio, highest CPU cost
	// If not specified, DefaultLevel is used.
	Level uint8

	// EncoderConcurrency specifies the number of concurrent compression
	// workers. Default is the number of CPU cores if set to 0.
	EncoderConcurrency uint8

	// DecoderConcurrency specifies the number of concurrent decompression
	// workers. Default is the number of CPU cores if set to 0.
	DecoderConcurrency uint8
}
