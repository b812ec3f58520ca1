// Command prosecoach annotates prose with readability and style feedback.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"prosecoach/internal/config"
	"prosecoach/internal/ingest"
	"prosecoach/internal/workspace"
)

type rootFlags struct {
	configPath string
	dbPath     string
	logLevel   string
}

type runtimeEnv struct {
	cfg *config.Config
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:           "prosecoach",
		Short:         "Readability and style feedback for prose",
		Long:          "prosecoach highlights hard sentences, adverbs, passive voice and complex words, and can score a text for brevity, conversational tone or marketing effectiveness.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "YAML config file (defaults to $PROSECOACH_CONFIG)")
	root.PersistentFlags().StringVar(&flags.dbPath, "db", "", "SQLite run store (defaults to the workspace database)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "trace, debug, info, warn, error or disabled")

	root.AddCommand(
		newAnalyzeCmd(flags),
		newMetricsCmd(flags),
		newBatchCmd(flags),
		newHistoryCmd(flags),
		newInitCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (f *rootFlags) setup(cmd *cobra.Command) (*runtimeEnv, error) {
	path := f.configPath
	if path == "" {
		path = os.Getenv("PROSECOACH_CONFIG")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if f.dbPath != "" {
		cfg.DBPath = f.dbPath
	}
	if f.logLevel != "" {
		cfg.LogLevel = strings.ToLower(f.logLevel)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return &runtimeEnv{cfg: cfg, log: newLogger(cmd.ErrOrStderr(), cfg.LogLevel)}, nil
}

func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// resolveDBPath falls back to the database in the default workspace.
func (e *runtimeEnv) resolveDBPath() (string, error) {
	if e.cfg.DBPath != "" {
		return e.cfg.DBPath, nil
	}
	root, err := workspace.EnsureDefault()
	if err != nil {
		return "", err
	}
	return workspace.DBPath(root), nil
}

// readInput parses the named file, or standard input as plain text when the
// name is empty or "-".
func readInput(cmd *cobra.Command, name string) (*ingest.Parsed, []byte, error) {
	if name == "" || name == "-" {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, nil, fmt.Errorf("read stdin: %w", err)
		}
		parsed, err := ingest.Parse("stdin.txt", raw)
		return parsed, raw, err
	}
	raw, err := os.ReadFile(name)
	if err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}
	parsed, err := ingest.Parse(filepath.Clean(name), raw)
	return parsed, raw, err
}
