package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/hexkit/hexfile/rebuild"
	"github.com/joshuapare/hexkit/internal/format"
	"github.com/joshuapare/hexkit/internal/mmfile"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Report size and layout of a file",
		Long: `The info command reports the file size, how many rows it occupies at
the configured width, a byte histogram summary, and whether a backup or a
leftover rebuild file sits next to it.

Example:
  hexctl info firmware.bin
  hexctl info firmware.bin --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

// fileInfo is the JSON shape of info.
type fileInfo struct {
	Path      string `json:"path"`
	Size      int64  `json:"size"`
	Mode      string `json:"mode"`
	Rows      int64  `json:"rows"`
	Width     int    `json:"width"`
	Zero      int64  `json:"zero_bytes"`
	Printable int64  `json:"printable_bytes"`
	Head      string `json:"head"`
	Backup    bool   `json:"backup"`
	StaleTemp bool   `json:"stale_temp"`
}

func runInfo(args []string) error {
	path := args[0]

	printVerbose("Mapping file: %s\n", path)

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}
	if !st.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", path)
	}

	r, err := mmfile.Map(path)
	if err != nil {
		return fmt.Errorf("failed to map file: %w", err)
	}
	defer r.Close()

	data := r.Bytes()
	width := cfg.Editor.Width

	info := fileInfo{
		Path:      path,
		Size:      r.FileSize(),
		Mode:      st.Mode().Perm().String(),
		Rows:      (r.FileSize() + int64(width) - 1) / int64(width),
		Width:     width,
		Head:      format.HexString(data[:min(len(data), width)]),
		Backup:    exists(rebuild.BackupPath(path)),
		StaleTemp: exists(rebuild.TempPath(path)),
	}
	for _, b := range data {
		switch {
		case b == 0:
			info.Zero++
		case format.IsPrintableASCII(b):
			info.Printable++
		}
	}

	if jsonOut {
		return printJSON(info)
	}

	printInfo("\nFile Information:\n")
	printInfo("  File: %s\n", info.Path)
	printInfo("  Size: %s (%d bytes)\n", formatSize(info.Size), info.Size)
	printInfo("  Mode: %s\n", info.Mode)
	printInfo("  Rows: %d at width %d\n", info.Rows, info.Width)
	printInfo("  Zero bytes: %d\n", info.Zero)
	printInfo("  Printable bytes: %d\n", info.Printable)
	if info.Head != "" {
		printInfo("  Head: %s\n", info.Head)
	}
	if info.Backup {
		printInfo("  Backup: %s\n", rebuild.BackupPath(path))
	}
	if info.StaleTemp {
		printInfo("\n⚠ Leftover rebuild file %s (an insert or delete was interrupted)\n",
			rebuild.TempPath(path))
	}

	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
