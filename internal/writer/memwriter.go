package writer

// MemWriter captures written contents in memory.
type MemWriter struct {
	Buf    []byte
	Writes int
}

// WriteAll replaces Buf with a copy of data.
func (w *MemWriter) WriteAll(data []byte) error {
	w.Buf = append(w.Buf[:0], data...)
	w.Writes++
	return nil
}

var (
	_ Sink = (*FileWriter)(nil)
	_ Sink = (*MemWriter)(nil)
)
