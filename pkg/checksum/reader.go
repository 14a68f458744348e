package checksum

import "io"

// Reader wraps an io.Reader and checksums the bytes as they are read
// through it.
type Reader struct {
	inner io.Reader
	crc   Crc
}

// NewReader creates a checksumming wrapper around r.
func NewReader(r io.Reader) *Reader {
	return &Reader{inner: r}
}

// Crc returns the accumulator covering the bytes read so far.
func (r *Reader) Crc() *Crc {
	return &r.crc
}

// Reset clears the running checksum without touching the underlying reader.
func (r *Reader) Reset() {
	r.crc.Reset()
}

// Read reads from the underlying reader and updates the checksum with
// whatever was actually read, including bytes returned alongside an error.
func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.inner.Read(p)
	r.crc.Update(p[:n])
	return n, err
}
