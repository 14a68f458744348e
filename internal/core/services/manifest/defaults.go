package manifest

import (
	"github.com/iamNilotpal/checksum/internal/adapters/checksum"
	"github.com/iamNilotpal/checksum/internal/adapters/compression"
	"github.com/iamNilotpal/checksum/internal/core/domain"
)

const (
	// DefaultChunkSize balances manifest size against corruption locality.
	DefaultChunkSize = 1024 * 1024 // 1MB

	// MinChunkSize keeps manifests from ballooning on large files.
	MinChunkSize = 4096 // 4KB

	// MaxChunkSize bounds the pooled read buffers.
	MaxChunkSize = 16 * 1024 * 1024 // 16MB
)

func prepareDefaults(opts *domain.ManifestOptions) *domain.ManifestOptions {
	if opts.ChunkSize == 0 {
		opts.ChunkSize = DefaultChunkSize
	}

	if opts.Checksum == nil {
		opts.Checksum = checksum.DefaultOptions()
	}

	if opts.Compression == nil {
		opts.Compression = compression.DefaultOptions()
	} else {
		if opts.Compression.Level == 0 {
			opts.Compression.Level = compression.DefaultLevel
		}
		if opts.Compression.EncoderConcurrency == 0 {
			opts.Compression.EncoderConcurrency = 1
		}
		if opts.Compression.DecoderConcurrency == 0 {
			opts.Compression.DecoderConcurrency = 1
		}
	}

	return opts
}
