package checksum

import "hash/crc32"

// Crc tracks a running CRC-32 (IEEE) together with the number of bytes it
// covers, so checksums computed independently over adjacent blocks can later
// be merged with Combine.
//
// The zero value is ready to use. A Crc must not be shared between
// goroutines without external synchronization.
type Crc struct {
	sum    uint32
	amount uint64
}

// NewCrc returns a fresh accumulator.
func NewCrc() *Crc {
	return &Crc{}
}

// Update feeds data into the running checksum.
func (c *Crc) Update(data []byte) {
	c.sum = crc32.Update(c.sum, ieeeTable, data)
	c.amount += uint64(len(data))
}

// Sum returns the current checksum value.
func (c *Crc) Sum() uint32 {
	return c.sum
}

// Amount returns the number of bytes consumed so far.
func (c *Crc) Amount() uint64 {
	return c.amount
}

// Reset returns the accumulator to its initial state.
func (c *Crc) Reset() {
	c.sum = 0
	c.amount = 0
}

// Combine merges the checksum of a subsequent block into c, producing the
// same state as if the bytes behind other had been fed to c directly.
// other is left unchanged.
func (c *Crc) Combine(other *Crc) {
	c.sum = Combine(c.sum, other.sum, other.amount)
	c.amount += other.amount
}
