package ports

// ChecksumPort calculates and verifies data digests. Implementations of
// narrower checksums widen their result into the uint64 return value.
type ChecksumPort interface {
	// Calculates the checksum of data.
	Calculate(data []byte) uint64

	// Reports whether data matches the expected checksum.
	Verify(data []byte, expected uint64) bool

	// Size returns the digest width in bytes.
	Size() uint8

	// Name returns a stable algorithm identifier.
	Name() string
}

// Combiner is implemented by checksum algorithms whose composition over
// concatenated inputs is linear, so the checksum of A++B can be derived
// from the two block checksums and len(B) without re-reading any data.
// Detected by type assertion on a ChecksumPort.
type Combiner interface {
	// Combine returns the checksum of the concatenation of two sequences
	// given their individual checksums and the byte length of the second.
	Combine(c1, c2 uint64, len2 uint64) uint64
}
