package checksum

import "io"

// Writer wraps an io.Writer and checksums the bytes as they are written
// through it.
type Writer struct {
	inner io.Writer
	crc   Crc
}

// NewWriter creates a checksumming wrapper around w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{inner: w}
}

// Crc returns the accumulator covering the bytes written so far.
func (w *Writer) Crc() *Crc {
	return &w.crc
}

// Reset clears the running checksum without touching the underlying writer.
func (w *Writer) Reset() {
	w.crc.Reset()
}

// Write writes to the underlying writer and updates the checksum with the
// bytes it accepted. On a short write only the accepted prefix is counted.
func (w *Writer) Write(p []byte) (int, error) {
	n, err := w.inner.Write(p)
	w.crc.Update(p[:n])
	return n, err
}
