package checksum

import (
	"fmt"

	"github.com/iamNilotpal/checksum/internal/core/domain"
	"github.com/iamNilotpal/checksum/internal/core/ports"
)

const (
	// CRC32IEEE uses the IEEE polynomial for CRC32 checksums.
	// It is the only built-in algorithm that supports checksum combination.
	CRC32IEEE domain.ChecksumAlgorithm = "crc32-ieee"

	// CRC64ISO uses the ISO polynomial for CRC64 checksums.
	CRC64ISO domain.ChecksumAlgorithm = "crc64-iso"

	// CRC64ECMA uses the ECMA polynomial for CRC64 checksums.
	CRC64ECMA domain.ChecksumAlgorithm = "crc64-ecma"

	// SHA256 provides SHA-256 checksums, truncated to 64 bits.
	SHA256 domain.ChecksumAlgorithm = "sha256"
)

// Returns recommended checksum settings.
func DefaultOptions() *domain.ChecksumOptions {
	return &domain.ChecksumOptions{
		Algorithm: CRC32IEEE,
	}
}

func Validate(input *domain.ChecksumOptions) error {
	if input.Custom == nil {
		switch input.Algorithm {
		case CRC32IEEE, CRC64ISO, CRC64ECMA, SHA256:
		default:
			return fmt.Errorf("unsupported checksum algorithm: %s", input.Algorithm)
		}
	}
	return nil
}

// New constructs the ChecksumPort for the configured algorithm. A custom
// implementation, when present, wins over the named algorithm.
func New(opts *domain.ChecksumOptions) (ports.ChecksumPort, error) {
	if opts.Custom != nil {
		return opts.Custom, nil
	}

	switch opts.Algorithm {
	case CRC32IEEE:
		return NewCRC32IEEE(), nil
	case CRC64ISO:
		return NewCRC64ISO(), nil
	case CRC64ECMA:
		return NewCRC64ECMA(), nil
	case SHA256:
		return NewSHA256(), nil
	default:
		return nil, fmt.Errorf("unsupported checksum algorithm: %s", opts.Algorithm)
	}
}
