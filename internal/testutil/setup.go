// Package testutil holds file fixtures shared by the hexkit test suites.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/hexkit/hexfile"
)

// Digits is the ten-byte fixture used by most editing scenarios.
const Digits = "0123456789"

// WriteFile writes data to name inside a fresh temp directory and returns
// the full path. The directory is removed when the test ends.
//
// Example:
//
//	path := testutil.WriteFile(t, "digits.bin", []byte(testutil.Digits))
func WriteFile(t testing.TB, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to write fixture %s: %v", name, err)
	}
	return path
}

// ReadFile returns the on-disk contents of path, failing the test on error.
func ReadFile(t testing.TB, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return data
}

// Pattern returns n bytes cycling through 0x00..0xFF.
func Pattern(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i % 256)
	}
	return data
}

// SetupTestFile writes data to a temp file and opens it as a mapped
// hexfile.File. Returns the file and a cleanup function.
//
// Example:
//
//	f, cleanup := testutil.SetupTestFile(t, []byte(testutil.Digits))
//	defer cleanup()
func SetupTestFile(t testing.TB, data []byte) (*hexfile.File, func()) {
	t.Helper()

	path := WriteFile(t, "test.bin", data)

	f, err := hexfile.Open(path)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}

	cleanup := func() {
		f.Close()
	}

	return f, cleanup
}

// ListDir returns the names of the entries in dir.
func ListDir(t testing.TB, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to list %s: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
