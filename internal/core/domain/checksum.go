package domain

import (
	"github.com/iamNilotpal/checksum/internal/core/ports"
)

// ChecksumAlgorithm identifies a supported checksum algorithm.
type ChecksumAlgorithm string

// ChecksumOptions configures digest computation for manifest chunks.
type ChecksumOptions struct {
	// Algorithm selects the digest used for chunk checksums.
	// Defaults to CRC32-IEEE, the only built-in algorithm whose chunk
	// checksums merge into a whole-file checksum without re-reading data.
	Algorithm ChecksumAlgorithm

	// Custom allows using a caller-provided ChecksumPort implementation.
	// If provided, it takes precedence over Algorithm.
	Custom ports.ChecksumPort
}
