package main

import (
	"encoding/binary"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/hexkit/internal/buf"
	"github.com/joshuapare/hexkit/internal/format"
	"github.com/joshuapare/hexkit/internal/mmfile"
)

func init() {
	rootCmd.AddCommand(newInspectCmd())
}

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file> <offset>",
		Short: "Decode the integers stored at an offset",
		Long: `The inspect command reads up to eight bytes at offset and shows them
as signed and unsigned integers in both byte orders.

Example:
  hexctl inspect firmware.bin 0x3C
  hexctl inspect firmware.bin 0x3C --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args)
		},
	}
	return cmd
}

// intValue is one integer width decoded both ways.
type intValue struct {
	Bits     int    `json:"bits"`
	LE       uint64 `json:"le"`
	BE       uint64 `json:"be"`
	SignedLE int64  `json:"signed_le"`
	SignedBE int64  `json:"signed_be"`
}

// inspection is the JSON shape of inspect. Widths the file is too short
// for are left out.
type inspection struct {
	Offset int64      `json:"offset"`
	Bytes  string     `json:"bytes"`
	Values []intValue `json:"values"`
}

func inspectBytes(off int64, b []byte) inspection {
	in := inspection{Offset: off, Bytes: format.HexString(b)}
	for _, size := range buf.Widths {
		w, ok := buf.Slice(b, 0, size)
		if !ok {
			break
		}
		le, _ := buf.Uint(w, size, binary.LittleEndian)
		be, _ := buf.Uint(w, size, binary.BigEndian)
		sle, _ := buf.Int(w, size, binary.LittleEndian)
		sbe, _ := buf.Int(w, size, binary.BigEndian)
		in.Values = append(in.Values, intValue{
			Bits: size * 8, LE: le, BE: be, SignedLE: sle, SignedBE: sbe,
		})
	}
	return in
}

func runInspect(args []string) error {
	path := args[0]
	off, err := parseOffset(args[1], "offset")
	if err != nil {
		return err
	}

	r, err := mmfile.MapRange(path, off, 8)
	if err != nil {
		return fmt.Errorf("failed to map file: %w", err)
	}
	defer r.Close()

	if len(r.Bytes()) == 0 {
		return fmt.Errorf("offset %d is at end of file", off)
	}
	in := inspectBytes(off, r.Bytes())

	if jsonOut {
		return printJSON(in)
	}

	printInfo("\nValues at %s:\n", format.FormatOffset(off))
	printInfo("  Bytes: %s\n", in.Bytes)
	for _, v := range in.Values {
		u, i := fmt.Sprintf("u%d:", v.Bits), fmt.Sprintf("i%d:", v.Bits)
		if v.Bits == 8 {
			printInfo("  %-5s%d\n", u, v.LE)
			printInfo("  %-5s%d\n", i, v.SignedLE)
			continue
		}
		printInfo("  %-5s%d (LE)  %d (BE)\n", u, v.LE, v.BE)
		printInfo("  %-5s%d (LE)  %d (BE)\n", i, v.SignedLE, v.SignedBE)
	}
	return nil
}
