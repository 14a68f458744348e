// Package manifest builds, merges, and verifies chunked-file checksum
// manifests. A manifest records one checksum per fixed-size chunk; for
// combinable algorithms the chunk checksums fold into the whole-file
// checksum without re-reading the file.
package manifest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/iamNilotpal/checksum/internal/adapters/checksum"
	"github.com/iamNilotpal/checksum/internal/adapters/compression"
	"github.com/iamNilotpal/checksum/internal/core/domain"
	"github.com/iamNilotpal/checksum/internal/core/ports"
	"github.com/iamNilotpal/checksum/internal/core/services"
	"github.com/iamNilotpal/checksum/internal/serialize"
	"github.com/iamNilotpal/checksum/pkg/fs"
	"github.com/iamNilotpal/checksum/pkg/logger"
	"github.com/iamNilotpal/checksum/pkg/pool"
	"github.com/iamNilotpal/checksum/pkg/system"
)

var (
	// ErrServiceClosed indicates an operation on a closed service.
	ErrServiceClosed = errors.New("manifest service is closed")

	// ErrNotCombinable indicates that the configured checksum algorithm
	// cannot derive a whole-file checksum from chunk checksums.
	ErrNotCombinable = errors.New("checksum algorithm does not support combination")

	// ErrAlgorithmMismatch indicates a manifest digested with a different
	// algorithm than the service is configured for.
	ErrAlgorithmMismatch = errors.New("manifest algorithm differs from configured algorithm")
)

// ChunkMismatch reports the first chunk whose data no longer matches its
// recorded checksum.
type ChunkMismatch struct {
	Index    int    // Position of the chunk in the manifest.
	Offset   uint64 // Byte offset of the chunk within the file.
	Expected uint64 // Checksum recorded in the manifest.
	Actual   uint64 // Checksum of the data on disk.
}

func (e *ChunkMismatch) Error() string {
	return fmt.Sprintf(
		"chunk %d at offset %d: checksum mismatch (manifest %#x, data %#x)",
		e.Index, e.Offset, e.Expected, e.Actual,
	)
}

// zstdMagic prefixes every zstd frame; Load sniffs it so compressed and
// plain manifests can coexist in one directory.
var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

// Service provides thread-safe manifest operations over a configured
// checksum algorithm, codec, and filesystem.
type Service struct {
	options *domain.ManifestOptions

	checksum   ports.ChecksumPort    // Chunk digest implementation.
	compressor ports.CompressionPort // Codec for saved manifests.
	fs         ports.FileSystemPort  // Disk access, swappable in tests.

	buffers *pool.BufferPool // Reusable chunk-sized read buffers.
	log     *zap.SugaredLogger

	closed atomic.Bool // Set once Close has begun.
}

// New creates a manifest service. A nil opts selects defaults (CRC32-IEEE
// chunks of 1MB, compressed manifests); a nil log creates a named logger.
func New(opts *domain.ManifestOptions, log *zap.SugaredLogger) (*Service, error) {
	if opts != nil {
		if err := Validate(opts); err != nil {
			return nil, err
		}
	} else {
		opts = &domain.ManifestOptions{}
	}
	opts = prepareDefaults(opts)

	if log == nil {
		log = logger.New("manifest")
	}

	checksumPort, err := checksum.New(opts.Checksum)
	if err != nil {
		return nil, err
	}

	// The codec is constructed even when saving uncompressed, since Load
	// must be able to read manifests written by other configurations.
	compressor, err := compression.NewZstdCompression(compression.Options{
		Level:              opts.Compression.Level,
		EncoderConcurrency: opts.Compression.EncoderConcurrency,
		DecoderConcurrency: opts.Compression.DecoderConcurrency,
	})
	if err != nil {
		return nil, err
	}

	return &Service{
		options:    opts,
		checksum:   checksumPort,
		compressor: compressor,
		fs:         fs.NewLocalFileSystem(),
		buffers:    pool.NewBufferPool(int(opts.ChunkSize)),
		log:        log,
	}, nil
}

// Build reads the file at path in fixed-size chunks and records one
// checksum per chunk. The context is checked between chunks, so large
// files can be abandoned promptly.
func (s *Service) Build(ctx context.Context, path string) (*domain.Manifest, error) {
	if s.closed.Load() {
		return nil, ErrServiceClosed
	}

	file, err := s.fs.Open(path)
	if err != nil {
		return nil, services.NewError("build", domain.ErrorIO, err)
	}
	defer file.Close()

	buf := s.buffers.Get()
	defer s.buffers.Put(buf)

	manifest := domain.Manifest{
		Path:      path,
		ChunkSize: s.options.ChunkSize,
		Algorithm: s.checksum.Name(),
	}

	var offset uint64
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n, err := io.ReadFull(file, buf)
		if n > 0 {
			manifest.Chunks = append(manifest.Chunks, domain.Chunk{
				Offset:   offset,
				Length:   uint64(n),
				Checksum: s.checksum.Calculate(buf[:n]),
			})
			offset += uint64(n)
		}

		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return nil, services.NewError("build", domain.ErrorIO, err)
		}
	}

	manifest.Size = offset
	s.log.Infow("manifest built",
		"path", path, "size", manifest.Size,
		"chunks", len(manifest.Chunks), "algorithm", manifest.Algorithm,
	)
	return &manifest, nil
}

// Merge folds the per-chunk checksums into the checksum of the whole file,
// without reading any file data. Only algorithms implementing the Combiner
// port support this; for others ErrNotCombinable is returned.
func (s *Service) Merge(manifest *domain.Manifest) (uint64, error) {
	if s.closed.Load() {
		return 0, ErrServiceClosed
	}

	if manifest.Algorithm != s.checksum.Name() {
		return 0, services.NewError("merge", domain.ErrorManifest,
			fmt.Errorf("%w: manifest %q, configured %q", ErrAlgorithmMismatch, manifest.Algorithm, s.checksum.Name()))
	}

	combiner, ok := s.checksum.(ports.Combiner)
	if !ok {
		return 0, services.NewError("merge", domain.ErrorManifest,
			fmt.Errorf("%w: %s", ErrNotCombinable, s.checksum.Name()))
	}

	if err := checkChunkLayout(manifest); err != nil {
		return 0, services.NewError("merge", domain.ErrorManifest, err)
	}

	// An empty file has the empty digest.
	if len(manifest.Chunks) == 0 {
		return s.checksum.Calculate(nil), nil
	}

	total := manifest.Chunks[0].Checksum
	for _, chunk := range manifest.Chunks[1:] {
		total = combiner.Combine(total, chunk.Checksum, chunk.Length)
	}
	return total, nil
}

// Verify re-reads the file chunk by chunk and compares against the
// manifest. The returned error wraps a *ChunkMismatch for the first chunk
// that differs.
func (s *Service) Verify(ctx context.Context, path string, manifest *domain.Manifest) error {
	if s.closed.Load() {
		return ErrServiceClosed
	}

	if manifest.Algorithm != s.checksum.Name() {
		return services.NewError("verify", domain.ErrorManifest,
			fmt.Errorf("%w: manifest %q, configured %q", ErrAlgorithmMismatch, manifest.Algorithm, s.checksum.Name()))
	}

	file, err := s.fs.Open(path)
	if err != nil {
		return services.NewError("verify", domain.ErrorIO, err)
	}
	defer file.Close()

	buf := s.buffers.Get()
	defer s.buffers.Put(buf)

	for i, chunk := range manifest.Chunks {
		if err := ctx.Err(); err != nil {
			return err
		}

		if chunk.Length > uint64(len(buf)) {
			return services.NewError("verify", domain.ErrorManifest,
				fmt.Errorf("chunk %d length %d exceeds chunk size %d", i, chunk.Length, len(buf)))
		}

		if _, err := io.ReadFull(file, buf[:chunk.Length]); err != nil {
			return services.NewError("verify", domain.ErrorIO,
				fmt.Errorf("reading chunk %d at offset %d: %w", i, chunk.Offset, err))
		}

		if actual := s.checksum.Calculate(buf[:chunk.Length]); actual != chunk.Checksum {
			mismatch := &ChunkMismatch{
				Index:    i,
				Offset:   chunk.Offset,
				Expected: chunk.Checksum,
				Actual:   actual,
			}
			s.log.Errorw("verification failed",
				"path", path, "chunk", i, "offset", chunk.Offset,
			)
			return services.NewError("verify", domain.ErrorVerification, mismatch)
		}
	}

	// Trailing data beyond the manifest also counts as a mismatch.
	var tail [1]byte
	if n, _ := file.Read(tail[:]); n > 0 {
		return services.NewError("verify", domain.ErrorVerification,
			fmt.Errorf("file is larger than the %d bytes described by the manifest", manifest.Size))
	}

	return nil
}

// Save serializes the manifest to path, compressed when the service is
// configured for it; plain manifests are written human-readable.
func (s *Service) Save(manifest *domain.Manifest, path string) error {
	if s.closed.Load() {
		return ErrServiceClosed
	}

	var data []byte
	var err error
	if s.options.Compression.Enable {
		if data, err = serialize.Marshal(manifest); err == nil {
			data, err = s.compressor.Compress(data)
			if err != nil {
				return services.NewError("save", domain.ErrorCompression, err)
			}
		}
	} else {
		data, err = serialize.MarshalIndent(manifest)
	}
	if err != nil {
		return services.NewError("save", domain.ErrorManifest, err)
	}

	if err := s.fs.WriteFile(path, 0644, data); err != nil {
		return services.NewError("save", domain.ErrorIO, err)
	}

	s.log.Infow("manifest saved", "path", path, "bytes", len(data), "compressed", s.options.Compression.Enable)
	return nil
}

// Load reads a manifest from path, transparently decompressing zstd-framed
// files regardless of the service's own compression setting.
func (s *Service) Load(path string) (*domain.Manifest, error) {
	if s.closed.Load() {
		return nil, ErrServiceClosed
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, services.NewError("load", domain.ErrorIO, err)
	}

	if bytes.HasPrefix(data, zstdMagic) {
		if data, err = s.compressor.Decompress(data); err != nil {
			return nil, services.NewError("load", domain.ErrorCompression, err)
		}
	}

	var manifest domain.Manifest
	if err := serialize.Unmarshal(data, &manifest); err != nil {
		return nil, services.NewError("load", domain.ErrorManifest, err)
	}

	return &manifest, nil
}

// Close tears down the codec under context control. Further operations
// fail with ErrServiceClosed.
func (s *Service) Close(ctx context.Context) error {
	if !s.closed.CompareAndSwap(false, true) {
		return ErrServiceClosed
	}

	return system.RunWithContext(ctx, func(context.Context) error {
		return s.compressor.Close()
	})
}

// checkChunkLayout verifies that the chunks tile the file contiguously
// from offset zero up to the recorded size.
func checkChunkLayout(manifest *domain.Manifest) error {
	var offset uint64
	for i, chunk := range manifest.Chunks {
		if chunk.Offset != offset {
			return fmt.Errorf("chunk %d starts at offset %d, expected %d", i, chunk.Offset, offset)
		}
		if chunk.Length == 0 {
			return fmt.Errorf("chunk %d has zero length", i)
		}
		offset += chunk.Length
	}

	if offset != manifest.Size {
		return fmt.Errorf("chunks cover %d bytes, manifest records %d", offset, manifest.Size)
	}
	return nil
}
