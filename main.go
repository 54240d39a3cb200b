package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"os/signal"
	"slices"
	"strconv"
	"strings"
	"syscall"

	"github.com/cohesivestack/valgo"
	"github.com/joshjon/kit/errtag"
	"github.com/urfave/cli/v2"

	"github.com/coro-sh/domaingen/app"
	"github.com/coro-sh/domaingen/constants"
	"github.com/coro-sh/domaingen/internal/valgoutil"
	"github.com/coro-sh/domaingen/log"
	"github.com/coro-sh/domaingen/rng"
)

const (
	exitCodeError = 1
	exitCodeUsage = 2
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args, os.Stdout, os.Stderr); err != nil {
		cancel()
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errtag.HasTag[app.UsageError](err):
		return exitCodeUsage
	default:
		return exitCodeError
	}
}

func run(ctx context.Context, args []string, stdout io.Writer, stderr io.Writer) error {
	cliApp := cli.NewApp()
	cliApp.Name = constants.AppName
	cliApp.Usage = "Generate seeded fake .com domain names for regression fixtures"
	cliApp.UsageText = constants.AppName + " [options] [--] <count> <seed>"
	cliApp.ArgsUsage = "<count> <seed>"
	cliApp.HideHelpCommand = true
	cliApp.Writer = stdout
	cliApp.ErrWriter = stderr

	cliApp.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "algorithm",
			Aliases: []string{"a"},
			Value:   string(rng.Default),
			Usage:   fmt.Sprintf("pseudo-random algorithm (%s)", strings.Join(rng.AlgorithmNames(), ", ")),
			EnvVars: []string{constants.EnvVar("ALGORITHM")},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Value:   "",
			Usage:   "write names to this file instead of stdout",
			EnvVars: []string{constants.EnvVar("OUTPUT")},
		},
		&cli.BoolFlag{
			Name:    "gzip",
			Aliases: []string{"z"},
			Usage:   "gzip-compress the output",
			EnvVars: []string{constants.EnvVar("GZIP")},
		},
		&cli.IntFlag{
			Name:    "gzip-level",
			Value:   -1,
			Usage:   "gzip compression level (-2 huffman only, -1 default, 0-9)",
			EnvVars: []string{constants.EnvVar("GZIP_LEVEL")},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Aliases: []string{"l"},
			Value:   "warn",
			Usage:   "log level written to stderr (debug, info, warn, error)",
			EnvVars: []string{constants.EnvVar("LOG_LEVEL")},
		},
		&cli.BoolFlag{
			Name:    "log-structured",
			Usage:   "write JSON logs instead of human-readable logs",
			EnvVars: []string{constants.EnvVar("LOG_STRUCTURED")},
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Value:   "",
			Usage:   "path to yaml config file",
		},
	}

	cliApp.OnUsageError = func(c *cli.Context, err error, _ bool) error {
		return usageError(c, err.Error(), nil)
	}

	cliApp.Action = func(c *cli.Context) error {
		a, err := parseArgs(c)
		if err != nil {
			return err
		}
		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}

		logger := loggerFromConfig(cfg.Logger, c.App.ErrWriter)
		if err = app.Run(c.Context, logger, cfg, a.count, a.seed, stdout); err != nil {
			logger.Error("failed to generate domain names", "error", err)
			return err
		}
		return nil
	}

	return cliApp.RunContext(ctx, args)
}

type positionalArgs struct {
	count int
	seed  int64
}

func parseArgs(c *cli.Context) (positionalArgs, error) {
	if c.NArg() != 2 {
		return positionalArgs{}, usageError(c, "", valgo.Is(
			valgo.Int(c.NArg(), "arguments").EqualTo(2, "Exactly 2 arguments are required: <count> <seed>"),
		))
	}

	rawCount, rawSeed := c.Args().Get(0), c.Args().Get(1)
	v := valgo.Is(
		valgoutil.IntStringValidator(rawCount, strconv.IntSize, "count"),
		valgoutil.IntStringValidator(rawSeed, 64, "seed"),
	)
	if v.ToError() != nil {
		return positionalArgs{}, usageError(c, "", v)
	}

	count, _ := strconv.Atoi(rawCount)
	seed, _ := strconv.ParseInt(rawSeed, 10, 64)

	if v = valgo.Is(valgo.Int(count, "count").GreaterOrEqualTo(0, "{{title}} must be zero or greater")); v.ToError() != nil {
		return positionalArgs{}, usageError(c, "", v)
	}
	return positionalArgs{count: count, seed: seed}, nil
}

// loadConfig builds the run config from defaults, the optional config file,
// and any flags or environment variables that were set, in that order.
func loadConfig(c *cli.Context) (app.Config, error) {
	var cfg app.Config
	cfg.InitDefaults()

	if path := c.String("config"); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return app.Config{}, usageError(c, err.Error(), nil)
		}
	}

	if c.IsSet("algorithm") {
		cfg.Algorithm = c.String("algorithm")
	}
	if c.IsSet("output") {
		cfg.Output.Path = c.String("output")
	}
	if c.IsSet("gzip") {
		cfg.Output.Gzip = c.Bool("gzip")
	}
	if c.IsSet("gzip-level") {
		cfg.Output.GzipLevel = c.Int("gzip-level")
	}
	if c.IsSet("log-level") {
		cfg.Logger.Level = c.String("log-level")
	}
	if c.IsSet("log-structured") {
		cfg.Logger.Structured = c.Bool("log-structured")
	}

	if v := cfg.Validation(); v.ToError() != nil {
		return app.Config{}, usageError(c, "", v)
	}
	return cfg, nil
}

// usageError reports invalid input on stderr followed by the app help and
// returns it tagged as an app.UsageError.
func usageError(c *cli.Context, msg string, v *valgo.Validation) error {
	w := c.App.ErrWriter

	if msg != "" {
		fmt.Fprintf(w, "Incorrect usage: %s\n", msg) //nolint:errcheck
	}

	cause := errors.New(msg)
	if v != nil && v.ToError() != nil {
		cause = v.ToError()
		fmt.Fprintln(w, "Argument errors:") //nolint:errcheck

		verrs := v.ToError().(*valgo.Error).Errors()
		for _, name := range slices.Sorted(maps.Keys(verrs)) {
			fmt.Fprintf(w, "  %s: %s\n", name, strings.Join(verrs[name].Messages(), ",")) //nolint:errcheck
		}
	}

	fmt.Fprintln(w) //nolint:errcheck
	cli.HelpPrinter(w, cli.AppHelpTemplate, c.App)

	return errtag.Tag[app.UsageError](cause)
}

func loggerFromConfig(cfg app.LoggerConfig, w io.Writer) log.Logger {
	level, ok := log.ParseLevel(cfg.Level)
	if !ok {
		level = slog.LevelWarn
	}
	opts := []log.LoggerOption{log.WithLevel(level), log.WithWriter(w)}
	if !cfg.Structured {
		opts = append(opts, log.WithDevelopment())
	}
	return log.NewLogger(opts...)
}
