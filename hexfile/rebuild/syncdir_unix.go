//go:build unix

package rebuild

import (
	"path/filepath"

	"golang.org/x/sys/unix"
)

// syncDir fsyncs the directory holding path so the rename itself is
// durable. Failures are ignored; some filesystems reject directory fsync.
func syncDir(path string) {
	fd, err := unix.Open(filepath.Dir(path), unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC, 0)
	if err != nil {
		return
	}
	_ = unix.Fsync(fd)
	_ = unix.Close(fd)
}
