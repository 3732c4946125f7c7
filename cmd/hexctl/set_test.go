package main

import (
	"context"
	"testing"
)

func TestSetCommand(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		text        bool
		json        bool
		wantErr     bool
		wantFile    string
		wantContain []string
	}{
		{
			name:        "single byte",
			args:        []string{"2", "5A"},
			wantFile:    "01Z3456789",
			wantContain: []string{"Patched", "00000002", "5A", "1 byte(s) saved"},
		},
		{
			name:        "spaced hex",
			args:        []string{"0x0", "41 42"},
			wantFile:    "AB23456789",
			wantContain: []string{"2 byte(s) saved"},
		},
		{
			name:        "literal text",
			args:        []string{"6", "xyz"},
			text:        true,
			wantFile:    "012345xyz9",
			wantContain: []string{"78 79 7A"},
		},
		{
			name:        "same bytes",
			args:        []string{"0", "3031"},
			wantFile:    "0123456789",
			wantContain: []string{"No change"},
		},
		{
			name:        "json",
			args:        []string{"9", "21"},
			json:        true,
			wantFile:    "012345678!",
			wantContain: []string{`"changed": 1`, `"success": true`},
		},
		{
			name:     "past end",
			args:     []string{"9", "4142"},
			wantErr:  true,
			wantFile: "0123456789",
		},
		{
			name:     "odd hex",
			args:     []string{"0", "414"},
			wantErr:  true,
			wantFile: "0123456789",
		},
		{
			name:     "negative offset",
			args:     []string{"-1", "41"},
			wantErr:  true,
			wantFile: "0123456789",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			path := testFile(t, []byte("0123456789"))
			setText = tt.text
			jsonOut = tt.json

			output, err := captureOutput(t, func() error {
				return runSet(context.Background(), append([]string{path}, tt.args...))
			})

			if (err != nil) != tt.wantErr {
				t.Fatalf("runSet() error = %v, wantErr %v", err, tt.wantErr)
			}
			assertFile(t, path, []byte(tt.wantFile))
			if tt.wantErr {
				return
			}
			if tt.json {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
		})
	}
}

func TestSetCommand_Quiet(t *testing.T) {
	resetFlags()
	quiet = true
	path := testFile(t, []byte("0123456789"))

	output, err := captureOutput(t, func() error {
		return runSet(context.Background(), []string{path, "0", "FF"})
	})
	if err != nil {
		t.Fatalf("runSet() error = %v", err)
	}
	if output != "" {
		t.Errorf("quiet mode printed %q", output)
	}
	assertFile(t, path, []byte("\xff123456789"))
}
