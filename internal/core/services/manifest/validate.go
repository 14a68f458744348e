package manifest

import (
	"fmt"

	"github.com/iamNilotpal/checksum/internal/adapters/checksum"
	"github.com/iamNilotpal/checksum/internal/adapters/compression"
	"github.com/iamNilotpal/checksum/internal/core/domain"
	validation "github.com/iamNilotpal/checksum/pkg/errors"
)

func Validate(opts *domain.ManifestOptions) error {
	if opts.ChunkSize != 0 && (opts.ChunkSize < MinChunkSize || opts.ChunkSize > MaxChunkSize) {
		return validation.NewValidationError(
			"ChunkSize", opts.ChunkSize,
			fmt.Errorf("chunk size must be between %d and %d", MinChunkSize, MaxChunkSize),
		)
	}

	if opts.Checksum != nil {
		if err := checksum.Validate(opts.Checksum); err != nil {
			return validation.NewValidationError("Checksum", opts.Checksum.Algorithm, err)
		}
	}

	if opts.Compression != nil && opts.Compression.Level != 0 {
		if err := compression.Validate(opts.Compression); err != nil {
			return validation.NewValidationError("Compression", opts.Compression.Level, err)
		}
	}

	return nil
}
