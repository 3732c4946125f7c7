package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/hexkit/internal/format"
)

var setText bool

func init() {
	cmd := newSetCmd()
	cmd.Flags().BoolVar(&setText, "text", false, "Treat the value as literal text instead of hex")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <file> <offset> <bytes>",
		Short: "Overwrite bytes in place and save",
		Long: `The set command overwrites bytes starting at offset and saves them
through the memory mapping. The file size never changes; writing past the
end is refused.

Example:
  hexctl set firmware.bin 0x10 "DE AD BE EF"
  hexctl set firmware.bin 4 hello --text`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(cmd.Context(), args)
		},
	}
	return cmd
}

func runSet(ctx context.Context, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	path := args[0]

	off, err := parseOffset(args[1], "offset")
	if err != nil {
		return err
	}

	var patch []byte
	if setText {
		patch = []byte(args[2])
	} else if patch, err = format.ParseHexBytes(args[2]); err != nil {
		return fmt.Errorf("failed to parse bytes: %w", err)
	}
	if len(patch) == 0 {
		return fmt.Errorf("nothing to write")
	}

	s, err := openSession(path)
	if err != nil {
		return err
	}
	defer s.Close()

	if end := off + int64(len(patch)); end > s.Size() {
		return fmt.Errorf("patch [%d,%d) runs past end of %d-byte file", off, end, s.Size())
	}

	for i, b := range patch {
		if err := s.EditByte(off+int64(i), b); err != nil {
			return err
		}
	}
	printVerbose("%d of %d bytes differ from disk\n", s.PendingCount(), len(patch))

	n, err := s.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to save: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]any{
			"file":    path,
			"offset":  off,
			"length":  len(patch),
			"changed": n,
			"success": true,
		})
	}

	printInfo("\nPatched %s at %s:\n", path, format.FormatOffset(off))
	printInfo("  Bytes: %s\n", format.HexString(patch))
	if n == 0 {
		printInfo("\n✓ No change; file already holds these bytes\n")
	} else {
		printInfo("\n✓ %d byte(s) saved\n", n)
	}
	return nil
}
