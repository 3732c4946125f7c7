package main

import (
	"testing"
)

func TestInspectCommand(t *testing.T) {
	data := []byte{0xFF, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x7F}

	tests := []struct {
		name           string
		offset         string
		json           bool
		wantErr        bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:   "full width",
			offset: "0",
			wantContain: []string{
				"Bytes: FF 01 00 00 00 00 00 80",
				"u8:  255",
				"i8:  -1",
				"u16: 511 (LE)  65281 (BE)",
				"u32: 511 (LE)  4278255616 (BE)",
				"i64: -9223372036854775297 (LE)",
			},
		},
		{
			name:           "near end",
			offset:         "7",
			wantContain:    []string{"Bytes: 80 7F", "u8:  128", "i8:  -128", "u16: 32640 (LE)  32895 (BE)"},
			wantNotContain: []string{"u32", "u64"},
		},
		{
			name:           "json",
			offset:         "8",
			json:           true,
			wantContain:    []string{`"bits": 8`, `"le": 127`, `"offset": 8`},
			wantNotContain: []string{`"bits": 16`},
		},
		{
			name:    "at end",
			offset:  "9",
			wantErr: true,
		},
		{
			name:    "bad offset",
			offset:  "x",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			path := testFile(t, data)
			jsonOut = tt.json

			output, err := captureOutput(t, func() error {
				return runInspect([]string{path, tt.offset})
			})

			if (err != nil) != tt.wantErr {
				t.Fatalf("runInspect() error = %v, wantErr %v", err, tt.wantErr)
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
