// Package rebuild inserts or deletes byte ranges of a file. A flat file
// cannot grow or shrink in the middle, so the file is rewritten into a
// temporary sibling and renamed over the original.
//
// Algorithm:
//  1. Create <path>.hxtmp with the original's permission bits
//  2. Copy [0, off) unchanged
//  3. Insert: write n fill bytes. Delete: skip n source bytes
//  4. Copy the rest of the original
//  5. Optionally fsync and back up the original to <path>.bak
//  6. Rename the temporary file over the original
//
// Any failure before step 6 removes the temporary file and leaves the
// original untouched. The caller must close its mapping of the file before
// calling and reopen it afterwards.
package rebuild

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joshuapare/hexkit/internal/buf"
)

const (
	// TempSuffix is appended to the original path to name the rebuild file.
	TempSuffix = ".hxtmp"

	// BackupSuffix is appended to the original path for optional backups.
	BackupSuffix = ".bak"

	// chunkSize is the copy buffer size.
	chunkSize = 64 * 1024
)

var (
	// ErrPrecondition is wrapped by every argument check failure.
	ErrPrecondition = errors.New("rebuild: precondition failed")

	// ErrShortSource is returned when the file ends before the expected size.
	ErrShortSource = errors.New("rebuild: source shorter than expected")
)

// Op selects the structural operation.
type Op int

const (
	OpInsert Op = iota
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// Options tunes a rebuild.
type Options struct {
	// Fill is the value of inserted bytes.
	Fill byte

	// Sync fsyncs the temporary file before the rename and the parent
	// directory after it.
	Sync bool

	// Backup copies the original to <path>.bak before replacing it.
	Backup bool
}

// DefaultOptions returns zero fill with sync enabled.
func DefaultOptions() Options {
	return Options{Sync: true}
}

// Result describes a completed rebuild.
type Result struct {
	NewSize    int64
	BackupPath string // empty unless Options.Backup
}

// TempPath returns the deterministic temporary file name for path.
func TempPath(path string) string {
	return path + TempSuffix
}

// BackupPath returns the backup file name for path.
func BackupPath(path string) string {
	return path + BackupSuffix
}

// Check validates the range arguments of op against a file of size bytes.
func Check(op Op, size, off, n int64) error {
	if n < 1 {
		return fmt.Errorf("%w: %s count %d must be at least 1", ErrPrecondition, op, n)
	}
	if off < 0 {
		return fmt.Errorf("%w: negative offset %d", ErrPrecondition, off)
	}
	switch op {
	case OpInsert:
		if off > size {
			return fmt.Errorf("%w: insert offset %d past end of %d-byte file", ErrPrecondition, off, size)
		}
		if _, ok := buf.AddOverflowSafe(size, n); !ok {
			return fmt.Errorf("%w: insert of %d bytes overflows", ErrPrecondition, n)
		}
	case OpDelete:
		if _, err := buf.CheckRange(size, off, n); err != nil {
			return fmt.Errorf("%w: delete %v", ErrPrecondition, err)
		}
	default:
		return fmt.Errorf("%w: unknown operation %s", ErrPrecondition, op)
	}
	return nil
}

// Insert rewrites path with n fill bytes inserted before off.
func Insert(ctx context.Context, path string, size, off, n int64, opts Options) (Result, error) {
	return run(ctx, OpInsert, path, size, off, n, opts)
}

// Delete rewrites path without the n bytes starting at off.
func Delete(ctx context.Context, path string, size, off, n int64, opts Options) (Result, error) {
	return run(ctx, OpDelete, path, size, off, n, opts)
}

func run(ctx context.Context, op Op, path string, size, off, n int64, opts Options) (Result, error) {
	if err := Check(op, size, off, n); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	src, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open source: %w", err)
	}
	defer src.Close()

	st, err := src.Stat()
	if err != nil {
		return Result{}, fmt.Errorf("stat source: %w", err)
	}

	tmp := TempPath(path)
	written, err := writeTemp(ctx, op, src, tmp, st.Mode().Perm(), off, n, opts)
	if err != nil {
		_ = os.Remove(tmp)
		return Result{}, err
	}

	want := size + n
	if op == OpDelete {
		want = size - n
	}
	if written != want {
		_ = os.Remove(tmp)
		return Result{}, fmt.Errorf("%w: wrote %d bytes, expected %d", ErrShortSource, written, want)
	}

	res := Result{NewSize: written}
	if opts.Backup {
		res.BackupPath = BackupPath(path)
		if err := copyFile(path, res.BackupPath); err != nil {
			_ = os.Remove(tmp)
			return Result{}, fmt.Errorf("create backup: %w", err)
		}
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return Result{}, fmt.Errorf("replace original: %w", err)
	}

	if opts.Sync {
		syncDir(path)
	}

	return res, nil
}

// writeTemp produces the rebuilt content in tmp and returns its length.
func writeTemp(
	ctx context.Context,
	op Op,
	src *os.File,
	tmp string,
	perm os.FileMode,
	off, n int64,
	opts Options,
) (int64, error) {
	dst, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return 0, fmt.Errorf("create temp file: %w", err)
	}
	// Umask may have narrowed the bits.
	_ = dst.Chmod(perm)

	written, err := copyRebuilt(ctx, op, src, dst, off, n, opts.Fill)
	if err == nil && opts.Sync {
		if syncErr := dst.Sync(); syncErr != nil {
			err = fmt.Errorf("sync temp file: %w", syncErr)
		}
	}
	if closeErr := dst.Close(); closeErr != nil && err == nil {
		err = fmt.Errorf("close temp file: %w", closeErr)
	}
	return written, err
}

func copyRebuilt(ctx context.Context, op Op, src io.ReadSeeker, dst io.Writer, off, n int64, fill byte) (int64, error) {
	chunk := make([]byte, chunkSize)
	r := &ctxReader{ctx: ctx, r: src}

	// Head
	head, err := io.CopyBuffer(dst, io.LimitReader(r, off), chunk)
	if err != nil {
		return head, fmt.Errorf("copy head: %w", err)
	}
	if head != off {
		return head, fmt.Errorf("%w: head ended at %d, expected %d", ErrShortSource, head, off)
	}
	total := head

	// Gap
	switch op {
	case OpInsert:
		w, err := writeFill(ctx, dst, chunk, n, fill)
		total += w
		if err != nil {
			return total, fmt.Errorf("write fill: %w", err)
		}
	case OpDelete:
		if _, err := src.Seek(off+n, io.SeekStart); err != nil {
			return total, fmt.Errorf("skip deleted range: %w", err)
		}
	}

	// Tail
	tail, err := io.CopyBuffer(dst, r, chunk)
	total += tail
	if err != nil {
		return total, fmt.Errorf("copy tail: %w", err)
	}
	return total, nil
}

func writeFill(ctx context.Context, dst io.Writer, chunk []byte, n int64, fill byte) (int64, error) {
	for i := range chunk {
		chunk[i] = fill
	}
	var total int64
	for total < n {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		step := min(int64(len(chunk)), n-total)
		w, err := dst.Write(chunk[:step])
		total += int64(w)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// ctxReader fails reads once ctx is done, so a long copy stops between
// chunks.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

// copyFile copies src to dst, preserving permission bits.
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer srcFile.Close()

	st, err := srcFile.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat source: %w", err)
	}

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, st.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}
	defer dstFile.Close()

	if _, copyErr := io.Copy(dstFile, srcFile); copyErr != nil {
		return fmt.Errorf("failed to copy data: %w", copyErr)
	}

	return dstFile.Close()
}
