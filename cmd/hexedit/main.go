package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/hexkit/internal/config"
	"github.com/joshuapare/hexkit/internal/logger"
	"github.com/joshuapare/hexkit/pkg/hexedit"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Parse flags first (before positional args)
	args := os.Args[1:]
	debugMode := false

	filteredArgs := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "--debug" || arg == "-d" {
			debugMode = true
		} else {
			filteredArgs = append(filteredArgs, arg)
		}
	}

	if len(filteredArgs) < 1 {
		printUsage()
		os.Exit(1)
	}

	if filteredArgs[0] == "--help" || filteredArgs[0] == "-h" {
		printHelp()
		os.Exit(0)
	}

	if filteredArgs[0] == "--version" || filteredArgs[0] == "-v" {
		fmt.Printf("hexedit %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		os.Exit(0)
	}

	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger (must be before any logging calls)
	logOpts, err := cfg.LoggerOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if debugMode {
		logOpts.Enabled = true
		logOpts.Level = slog.LevelDebug
	}
	if err := logger.Init(logOpts); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}
	defer logger.Close()

	path := filteredArgs[0]
	logger.Info("starting hexedit", "path", path, "debug", debugMode)

	opts, err := cfg.SessionOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	s, err := hexedit.Open(path, &opts)
	if err != nil {
		logger.Error("open failed", "path", path, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	m := NewModel(s, cfg.Editor.Width, cfg.Charset())

	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		_ = s.Close()
		os.Exit(1)
	}

	if model, ok := finalModel.(Model); ok {
		if err := model.Close(); err != nil {
			logger.Warn("error closing file", "error", err)
		}
	}

	logger.Info("hexedit exited normally")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: hexedit [options] <file>\n")
	fmt.Fprintf(os.Stderr, "Try 'hexedit --help' for more information.\n")
}

func printHelp() {
	fmt.Println("hexedit - Terminal hex editor that edits files in place")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  hexedit [options] <file>")
	fmt.Println()
	fmt.Println("DESCRIPTION:")
	fmt.Println("  Shows the file as a hex and text grid. Edits stay in memory until")
	fmt.Println("  saved with Ctrl+S, which writes them through a memory mapping.")
	fmt.Println("  Inserting or deleting bytes rewrites the file and needs all edits")
	fmt.Println("  to be saved or discarded first.")
	fmt.Println()
	fmt.Println("  Keys:")
	fmt.Println("    Tab          Switch between hex and text panes")
	fmt.Println("    0-9 a-f      Edit a nibble (hex pane)")
	fmt.Println("    any char     Edit a byte (text pane)")
	fmt.Println("    Backspace    Step back and revert the byte")
	fmt.Println("    Ctrl+S       Save          Ctrl+A  Discard edits")
	fmt.Println("    Ctrl+N       Insert bytes  Ctrl+D  Delete bytes")
	fmt.Println("    Ctrl+G       Go to offset  Ctrl+Y  Copy row as hex")
	fmt.Println("    ?            Show help     q       Quit")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -d, --debug    Enable debug logging to ~/.hexkit/logs/")
	fmt.Println("  -h, --help     Show this help message")
	fmt.Println("  -v, --version  Show version information")
	fmt.Println()
	fmt.Println("Settings are read from the hexkit config file; see 'hexctl config'.")
}
