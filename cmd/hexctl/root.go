package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/hexkit/internal/config"
	"github.com/joshuapare/hexkit/internal/logger"
	"github.com/joshuapare/hexkit/pkg/hexedit"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	configPath string

	// cfg is loaded before every command runs.
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "hexctl",
	Short: "Inspect and patch binary files in place",
	Long: `hexctl views and edits binary files from the command line. Byte
patches are written in place through a memory mapping; inserting or
deleting bytes rebuilds the file through a temporary copy and an atomic
rename.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", config.DefaultPath(), "Config file (TOML)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		printError("%v\n", err)
		os.Exit(1)
	}
}

// setup loads the config and wires the logger. Verbose mode sends debug
// records to stderr regardless of the config.
func setup(_ *cobra.Command, _ []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = loaded

	if verbose {
		return logger.Init(logger.Options{Enabled: true, Writer: os.Stderr, Level: slog.LevelDebug})
	}
	lo, err := cfg.LoggerOptions()
	if err != nil {
		return err
	}
	return logger.Init(lo)
}

// openSession opens path with the session options from the config.
func openSession(path string) (*hexedit.Session, error) {
	opts, err := cfg.SessionOptions()
	if err != nil {
		return nil, err
	}
	printVerbose("Opening file: %s\n", path)
	return hexedit.Open(path, &opts)
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// parseOffset accepts decimal, 0x hex, 0o octal, and 0b binary.
func parseOffset(s, what string) (int64, error) {
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", what, s, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("invalid %s %q: must not be negative", what, s)
	}
	return v, nil
}

// formatSize renders a byte count the way info reports it.
func formatSize(size int64) string {
	switch {
	case size < 1024:
		return fmt.Sprintf("%d bytes", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(size)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
	}
}
