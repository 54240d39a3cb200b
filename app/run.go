package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/joshjon/kit/errtag"

	"github.com/coro-sh/domaingen/domaingen"
	"github.com/coro-sh/domaingen/id"
	"github.com/coro-sh/domaingen/log"
	"github.com/coro-sh/domaingen/logkey"
	"github.com/coro-sh/domaingen/rng"
	"github.com/coro-sh/domaingen/sink"
)

// Run writes count domain names generated from seed to the output configured
// in cfg, falling back to stdout. Nothing is written when validation fails.
func Run(ctx context.Context, logger log.Logger, cfg Config, count int, seed int64, stdout io.Writer) error {
	if count < 0 {
		return errtag.Tag[UsageError](
			fmt.Errorf("negative domain count %d", count),
			errtag.WithMsg("Count must be zero or greater"),
		)
	}
	if err := cfg.Validation().ToError(); err != nil {
		return errtag.Tag[UsageError](err)
	}

	alg, err := rng.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return errtag.Tag[UsageError](err)
	}
	src, err := rng.New(alg, seed)
	if err != nil {
		return err
	}

	logger = logger.With(logkey.RunID, id.NewRunID().String())

	if err = ctx.Err(); err != nil {
		return err
	}
	out, err := sink.Open(sink.Config{
		Path:      cfg.Output.Path,
		Gzip:      cfg.Output.Gzip,
		GzipLevel: cfg.Output.GzipLevel,
	}, stdout)
	if err != nil {
		return err
	}

	logger.Debug("generating domain names",
		logkey.RNGAlgorithm, string(alg),
		logkey.RNGSeed, seed,
		logkey.DomainCount, count,
		logkey.OutputPath, out.Path(),
		logkey.OutputGzip, cfg.Output.Gzip,
	)

	start := time.Now()
	written, err := domaingen.Write(ctx, out, domaingen.NewGenerator(src).Names(count))
	if cerr := out.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		logger.Warn("domain generation stopped early", logkey.DomainWritten, written, logkey.DomainCount, count)
		return err
	}

	logger.Info("generated domain names",
		logkey.RNGAlgorithm, string(alg),
		logkey.RNGSeed, seed,
		logkey.DomainWritten, written,
		logkey.OutputPath, out.Path(),
		logkey.Duration, time.Since(start),
	)
	return nil
}
