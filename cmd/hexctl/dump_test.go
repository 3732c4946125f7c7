package main

import (
	"testing"
)

func TestDumpCommand(t *testing.T) {
	data := []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ\x00\xb0")

	tests := []struct {
		name           string
		offset         string
		length         string
		width          int
		charset        string
		json           bool
		wantErr        bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:        "whole file",
			length:      "0",
			wantContain: []string{"00000000  41 42 43", "|ABCDEFGHIJKLMNOP|", "00000010  51 52", "|QRSTUVWXYZ..|"},
		},
		{
			name:           "offset and length",
			offset:         "0x4",
			length:         "4",
			wantContain:    []string{"00000004  45 46 47 48", "|EFGH|"},
			wantNotContain: []string{"41 42", "49"},
		},
		{
			name:        "custom width",
			length:      "8",
			width:       4,
			wantContain: []string{"00000000  41 42 43 44  |ABCD|", "00000004  45 46 47 48  |EFGH|"},
		},
		{
			name:        "cp437 glyphs",
			offset:      "26",
			charset:     "cp437",
			wantContain: []string{"0000001A  00 B0", "|.░|"},
		},
		{
			name:        "json rows",
			length:      "4",
			json:        true,
			wantContain: []string{`"offset": 0`, `"hex": "41 42 43 44"`, `"text": "ABCD"`},
		},
		{
			name:    "bad offset",
			offset:  "zz",
			wantErr: true,
		},
		{
			name:    "offset past end",
			offset:  "100",
			wantErr: true,
		},
		{
			name:    "unknown charset",
			charset: "ebcdic",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			path := testFile(t, data)

			if tt.offset != "" {
				dumpOffset = tt.offset
			}
			if tt.length != "" {
				dumpLength = tt.length
			}
			dumpWidth = tt.width
			dumpCharset = tt.charset
			jsonOut = tt.json

			output, err := captureOutput(t, func() error {
				return runDump([]string{path})
			})

			if (err != nil) != tt.wantErr {
				t.Fatalf("runDump() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if tt.json {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}
