package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/iamNilotpal/checksum/config"
	"github.com/iamNilotpal/checksum/internal/core/domain"
	"github.com/iamNilotpal/checksum/internal/core/services/manifest"
	pkgerrors "github.com/iamNilotpal/checksum/pkg/errors"
	"github.com/iamNilotpal/checksum/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	verify := flag.Bool("verify", false, "verify the file against an existing manifest instead of building one")
	flag.Parse()

	log := logger.New("checksum")
	defer log.Sync()

	if flag.NArg() != 1 {
		log.Error("usage: checksum [-config file] [-verify] <file>")
		os.Exit(2)
	}
	target := flag.Arg(0)

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			log.Errorw("load config error", "path", *configPath, "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	svc, err := manifest.New(&domain.ManifestOptions{
		ChunkSize: cfg.Manifest.ChunkSize,
		Checksum:  &domain.ChecksumOptions{Algorithm: domain.ChecksumAlgorithm(cfg.Manifest.Algorithm)},
		Compression: &domain.CompressionOptions{
			Enable: cfg.Manifest.Compress,
			Level:  cfg.Manifest.CompressionLevel,
		},
	}, log)
	if err != nil {
		if ve := pkgerrors.AsValidationError(err); ve != nil {
			log.Errorw("create service error", "field", ve.Field, "value", ve.Value, "error", ve.Err)
		} else {
			log.Errorw("create service error", "error", err)
		}
		os.Exit(1)
	}
	defer func() {
		if err := svc.Close(context.Background()); err != nil {
			log.Errorw("error closing service", "error", err)
		}
	}()

	manifestPath := filepath.Join(cfg.ManifestDir, filepath.Base(target)+".manifest")

	if *verify {
		runVerify(log, svc, target, manifestPath)
		return
	}

	m, err := svc.Build(context.Background(), target)
	if err != nil {
		log.Errorw("build error", "file", target, "error", err)
		os.Exit(1)
	}

	total, err := svc.Merge(m)
	if err != nil {
		if errors.Is(err, manifest.ErrNotCombinable) {
			log.Infow("chunk checksums recorded; algorithm has no whole-file merge",
				"algorithm", m.Algorithm)
		} else {
			log.Errorw("merge error", "error", err)
			os.Exit(1)
		}
	} else {
		log.Infow("whole-file checksum derived from chunks", "checksum", total)
	}

	if err := svc.Save(m, manifestPath); err != nil {
		log.Errorw("save error", "path", manifestPath, "error", err)
		os.Exit(1)
	}
}

func runVerify(log *zap.SugaredLogger, svc *manifest.Service, target, manifestPath string) {
	m, err := svc.Load(manifestPath)
	if err != nil {
		log.Errorw("load manifest error", "path", manifestPath, "error", err)
		os.Exit(1)
	}

	if err := svc.Verify(context.Background(), target, m); err != nil {
		var mismatch *manifest.ChunkMismatch
		if errors.As(err, &mismatch) {
			log.Errorw("file is corrupted",
				"file", target, "chunk", mismatch.Index, "offset", mismatch.Offset)
		} else {
			log.Errorw("verify error", "error", err)
		}
		os.Exit(1)
	}

	log.Infow("file matches manifest", "file", target, "chunks", len(m.Chunks))
}
