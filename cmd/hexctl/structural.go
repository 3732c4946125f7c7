package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/hexkit/internal/format"
	"github.com/joshuapare/hexkit/pkg/types"
)

var insertFill string

func init() {
	ins := newInsertCmd()
	ins.Flags().StringVar(&insertFill, "fill", "", "Fill byte in hex (default from config)")
	rootCmd.AddCommand(ins)
	rootCmd.AddCommand(newDeleteCmd())
}

func newInsertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insert <file> <offset> <count>",
		Short: "Insert bytes, growing the file",
		Long: `The insert command adds count fill bytes before offset. An offset
equal to the file size appends. The file is rebuilt through <file>.hxtmp
and renamed over the original.

Example:
  hexctl insert firmware.bin 0x100 16
  hexctl insert firmware.bin 0 4 --fill FF`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInsert(cmd.Context(), args)
		},
	}
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <file> <offset> <count>",
		Short: "Delete bytes, shrinking the file",
		Long: `The delete command removes count bytes starting at offset. The file
is rebuilt through <file>.hxtmp and renamed over the original.

Example:
  hexctl delete firmware.bin 0x100 16`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd.Context(), args)
		},
	}
}

func runInsert(ctx context.Context, args []string) error {
	if insertFill != "" {
		fill, err := format.ParseHexBytes(insertFill)
		if err != nil || len(fill) != 1 {
			return fmt.Errorf("invalid fill %q: want one hex byte", insertFill)
		}
		cfg.Editor.Fill = int(fill[0])
	}
	return runStructural(ctx, "insert", args)
}

func runDelete(ctx context.Context, args []string) error {
	return runStructural(ctx, "delete", args)
}

func runStructural(ctx context.Context, op string, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	path := args[0]

	off, err := parseOffset(args[1], "offset")
	if err != nil {
		return err
	}
	n, err := parseOffset(args[2], "count")
	if err != nil {
		return err
	}

	s, err := openSession(path)
	if err != nil {
		return err
	}
	defer s.Close()

	before := s.Size()
	if op == "insert" {
		err = s.Insert(ctx, off, n)
	} else {
		err = s.Delete(ctx, off, n)
	}

	emptied := types.IsKind(err, types.ErrKindClosed)
	if err != nil && !emptied {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	after := s.Size()

	if jsonOut {
		return printJSON(map[string]any{
			"file":     path,
			"op":       op,
			"offset":   off,
			"count":    n,
			"old_size": before,
			"new_size": after,
			"success":  true,
		})
	}

	printInfo("\n%s %d byte(s) at %s in %s\n", opVerb(op), n, format.FormatOffset(off), path)
	printInfo("  Size: %d → %d bytes\n", before, after)
	if emptied {
		printInfo("\n⚠ File is now empty\n")
	}
	if cfg.Storage.Backup {
		printInfo("Backup created: %s.bak\n", path)
	}
	return nil
}

func opVerb(op string) string {
	if op == "insert" {
		return "Inserted"
	}
	return "Deleted"
}
