package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jxsl13/dir-list/config"
	"github.com/jxsl13/dir-list/listing"
)

const envPrefix = "DIRLIST_"

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func NewRootCmd() *cobra.Command {
	var cfg config.Config

	cmd := &cobra.Command{
		Use:           "dir-list",
		Short:         "print a long format listing of the current working directory",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd, &cfg); err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), newLogger(cfg.Level))
		},
	}

	config.RegisterFlags(cmd.Flags(), config.Default())
	return cmd
}

// loadConfig layers the struct defaults, DIRLIST_ environment variables and
// the command line flags, in that order of increasing precedence.
func loadConfig(cmd *cobra.Command, cfg *config.Config) error {
	k := koanf.New(".")

	err := k.Load(structs.Provider(config.Default(), "koanf"), nil)
	if err != nil {
		return fmt.Errorf("failed to load default config: %w", err)
	}

	err = k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}

	err = k.Load(posflag.ProviderWithValue(cmd.Flags(), ".", k, func(key, value string) (string, interface{}) {
		return strings.ReplaceAll(key, "-", "."), value
	}), nil)
	if err != nil {
		return fmt.Errorf("failed to load flag config: %w", err)
	}

	err = k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf", FlatPaths: true})
	if err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg.Validate()
}

func newLogger(lvl zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	return zerolog.New(os.Stderr).With().Timestamp().Logger().Level(lvl)
}

// run lists the current working directory. Per-field metadata failures have
// been absorbed by the collector at this point; any error returned here is
// fatal to the whole listing.
func run(out io.Writer, logger zerolog.Logger) error {
	src := listing.OSSource{}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to determine working directory: %w", err)
	}

	dir, err := src.Realpath(wd)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", wd, err)
	}

	collector := listing.NewCollector(src, logger)
	entries, widths, err := collector.Collect(dir)
	if err != nil {
		return err
	}

	if diag := collector.Absorbed(); diag != nil {
		logger.Debug().Err(diag).Msg("listing completed with degraded fields")
	}

	return listing.Render(out, entries, widths, time.Now())
}
