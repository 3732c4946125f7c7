//go:build !unix

package rebuild

// syncDir is a no-op where directories cannot be opened for syncing.
func syncDir(string) {}
