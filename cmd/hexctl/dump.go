package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/hexkit/internal/format"
	"github.com/joshuapare/hexkit/internal/mmfile"
)

var (
	dumpOffset  string
	dumpLength  string
	dumpWidth   int
	dumpCharset string
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().StringVarP(&dumpOffset, "offset", "o", "0", "Start offset (decimal or 0x hex)")
	cmd.Flags().StringVarP(&dumpLength, "length", "n", "256", "Number of bytes (0 = to end of file)")
	cmd.Flags().IntVarP(&dumpWidth, "width", "w", 0, "Bytes per row (default from config)")
	cmd.Flags().StringVar(&dumpCharset, "charset", "", "ASCII column charset: ascii, latin1, cp437, cp1252")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print a hexdump of part of a file",
		Long: `The dump command prints rows of offset, hex bytes, and characters.
The file is mapped read-only.

Example:
  hexctl dump firmware.bin
  hexctl dump firmware.bin --offset 0x200 --length 64
  hexctl dump firmware.bin -n 0 --charset cp437`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

// dumpRow is the JSON shape of one dump row.
type dumpRow struct {
	Offset int64  `json:"offset"`
	Hex    string `json:"hex"`
	Text   string `json:"text"`
}

func runDump(args []string) error {
	path := args[0]

	off, err := parseOffset(dumpOffset, "offset")
	if err != nil {
		return err
	}
	n, err := parseOffset(dumpLength, "length")
	if err != nil {
		return err
	}
	if n == 0 {
		n = -1
	}

	width := dumpWidth
	if width <= 0 {
		width = cfg.Editor.Width
	}
	cs := cfg.Charset()
	if dumpCharset != "" {
		if cs, err = format.ParseCharset(dumpCharset); err != nil {
			return err
		}
	}

	printVerbose("Mapping %s from %d\n", path, off)

	r, err := mmfile.MapRange(path, off, n)
	if err != nil {
		return fmt.Errorf("failed to map file: %w", err)
	}
	defer r.Close()

	data := r.Bytes()
	rows := make([]dumpRow, 0, (len(data)+width-1)/width)
	for i := 0; i < len(data); i += width {
		row := data[i:min(i+width, len(data))]
		if jsonOut {
			text := make([]rune, len(row))
			for j, b := range row {
				text[j] = cs.Glyph(b)
			}
			rows = append(rows, dumpRow{
				Offset: off + int64(i),
				Hex:    format.HexString(row),
				Text:   string(text),
			})
			continue
		}
		printInfo("%s\n", format.FormatRow(off+int64(i), row, width, cs))
	}

	if jsonOut {
		return printJSON(rows)
	}
	return nil
}
