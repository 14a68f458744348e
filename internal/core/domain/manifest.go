package domain

// Chunk records the checksum of one fixed-size slice of a file.
type Chunk struct {
	// Byte offset of the chunk within the file.
	Offset uint64 `json:"offset"`

	// Chunk length in bytes. Only the final chunk may be shorter than the
	// manifest's nominal chunk size.
	Length uint64 `json:"length"`

	// Digest of the chunk contents.
	Checksum uint64 `json:"checksum"`
}

// Manifest describes a file as an ordered sequence of checksummed chunks.
// Per-chunk checksums localize corruption to a single chunk, and for
// combinable algorithms they fold into the whole-file checksum without
// re-reading the file.
type Manifest struct {
	// Path of the file the manifest describes.
	Path string `json:"path"`

	// Total file size in bytes.
	Size uint64 `json:"size"`

	// Nominal chunk length used during Build.
	ChunkSize uint32 `json:"chunk_size"`

	// Name of the checksum algorithm the chunks were digested with.
	Algorithm string `json:"algorithm"`

	// Chunks in file order.
	Chunks []Chunk `json:"chunks"`
}

// ManifestOptions defines configurable parameters for the manifest service.
type ManifestOptions struct {
	// ChunkSize is the number of bytes digested per chunk. Smaller chunks
	// localize corruption more precisely but grow the manifest.
	// Must be between 4KB and 16MB.
	//
	// Default: 1MB
	ChunkSize uint32

	// Checksum configures the chunk digest algorithm.
	Checksum *ChecksumOptions

	// Compression configures on-disk manifest compression.
	Compression *CompressionOptions
}
