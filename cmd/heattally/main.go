package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/sunnerberg/heattally/internal/cliconfig"
	"github.com/sunnerberg/heattally/internal/parse"
	"github.com/sunnerberg/heattally/internal/report"
	"github.com/sunnerberg/heattally/internal/tally"
	"github.com/sunnerberg/heattally/internal/validate"
	"github.com/sunnerberg/heattally/internal/watch"
)

const helpDescription = `
Tally one heat of the song competition from a forms export.

Highlights:
  - Validates every ballot against the fixed point set (1-6, 8, 10, sum 39).
  - Ranks songs with a deterministic tie-break cascade and flags ties the
    data cannot resolve.
  - Reports champions (top votes) and haters (bottom votes) per song, plus
    every invalid ballot with its reason.
  - Reads TSV and XLSX exports; configure via file, env, or flags.
`

var exampleUsage = strings.TrimSpace(`
  heattally votes.tsv
  heattally --config heat3.toml --chart totals.png votes.xlsx
  heattally --watch --title "DELTÄVLING 2" votes.tsv
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:          "heattally [input-file]",
		Short:        "Tally and validate one heat of the song competition",
		Long:         strings.TrimSpace(helpDescription),
		Example:      exampleUsage,
		Version:      fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default $HOME/.heattally/config.toml),
			// then env, then flag overrides.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			// Apply environment variables (HEATTALLY_*)
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			// The positional argument beats every other input source.
			if len(args) == 1 {
				cfg.Input = args[0]
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			cliconfig.SetQuiet(cfg.Quiet)
			log = cliconfig.Logger()
			log.Info().
				Str("input", cfg.Input).
				Ints("points", cfg.Rules.PointValues).
				Int("required_sum", cfg.Rules.RequiredSum).
				Bool("strict", cfg.Strict).
				Msg("configuration")

			if cfg.Watch {
				return runWatch(cfg, log)
			}

			invalid, err := runOnce(cfg, log)
			if err != nil {
				return err
			}
			if cfg.Strict && invalid > 0 {
				return fmt.Errorf("%d invalid ballot(s)", invalid)
			}
			return nil
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.heattally/config.toml)")
	root.Flags().StringVar(&cfg.Title, "title", cfg.Title, "report heading")
	root.Flags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "write the report to a file instead of stdout")
	root.Flags().StringVar(&cfg.Chart, "chart", cfg.Chart, "write a PNG bar chart of totals to this path")

	root.Flags().BoolVar(&cfg.Strict, "strict", cfg.Strict, "exit non-zero when any ballot is invalid")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "re-run the tally when the input file changes")
	root.Flags().BoolVarP(&cfg.Quiet, "quiet", "q", cfg.Quiet, "only log errors")

	root.Flags().IntSliceVar(&cfg.Rules.PointValues, "points", cfg.Rules.PointValues, "legal point values (sum requirement is derived)")
	root.Flags().IntVar(&cfg.Rules.Finalists, "finalists", cfg.Rules.Finalists, "ranks that advance directly to the final")
	root.Flags().IntVar(&cfg.Rules.SecondChance, "second-chance", cfg.Rules.SecondChance, "ranks that go to the second-chance round")

	root.Flags().StringVar(&cfg.Schema.SongColumnPrefix, "song-prefix", cfg.Schema.SongColumnPrefix, "header prefix marking song columns")
	root.Flags().StringVar(&cfg.Schema.NameColumnMatch, "name-match", cfg.Schema.NameColumnMatch, "substring identifying the voter-name column")
	root.Flags().StringVar(&cfg.Schema.PointSuffix, "point-suffix", cfg.Schema.PointSuffix, "suffix after the integer in vote cells")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("heattally")
		os.Exit(1)
	}
}

// runOnce executes the full pipeline for one invocation and returns the
// number of invalid ballots.
func runOnce(cfg cliconfig.Config, log zerolog.Logger) (int, error) {
	data, err := os.ReadFile(cfg.Input)
	if err != nil {
		return 0, fmt.Errorf("read input: %w", err)
	}

	parser, err := parse.ForFile(cfg.Input, cfg.Schema)
	if err != nil {
		return 0, err
	}
	heat, err := parser.Parse(data)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", cfg.Input, err)
	}

	valid, invalid := validate.Partition(heat.Ballots, cfg.Rules, heat.Songs)
	tallies := tally.Aggregate(valid, cfg.Rules, heat.Songs)
	placements := tally.Rank(tallies, cfg.Rules)

	log.Info().
		Int("songs", len(heat.Songs)).
		Int("ballots", len(heat.Ballots)).
		Int("invalid", len(invalid)).
		Msg("tally complete")
	for _, group := range tally.Unresolved(placements) {
		log.Warn().Strs("songs", group).Msg("unresolved tie")
	}

	result := report.Result{
		Title:      cfg.Title,
		Rules:      cfg.Rules,
		Songs:      heat.Songs,
		Ballots:    heat.Ballots,
		Valid:      valid,
		Invalid:    invalid,
		Placements: placements,
	}

	var out io.Writer = os.Stdout
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return 0, fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}
	if err := report.Write(out, result); err != nil {
		return 0, err
	}

	if cfg.Chart != "" {
		png, err := report.Chart(placements)
		if err != nil {
			return 0, err
		}
		if err := os.WriteFile(cfg.Chart, png, 0o644); err != nil {
			return 0, fmt.Errorf("write chart: %w", err)
		}
		log.Info().Str("path", cfg.Chart).Msg("chart written")
	}

	return len(invalid), nil
}

// runWatch re-tallies on every change of the input file until interrupted.
// Per-run failures are logged, not fatal; strictness does not apply because
// the file is expected to be mid-export some of the time.
func runWatch(cfg cliconfig.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := watch.New(log, cfg.Input, func() {
		if _, err := runOnce(cfg, log); err != nil {
			log.Error().Err(err).Msg("tally failed")
		}
	})
	if err := w.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	log.Info().Msg("stopping")
	return nil
}
