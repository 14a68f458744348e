package checksum

// gf2Matrix is a 32x32 bit-matrix over GF(2), stored as one uint32 row per
// input bit position: row n is the image of the n-th basis vector, so the
// matrix acting on a vector is the XOR of the rows selected by the vector's
// set bits.
type gf2Matrix [32]uint32

// Multiplies the matrix with a 32-bit vector over GF(2). Iterates the set
// bits of vec from least to most significant and stops early once the
// remaining high bits are all zero.
func (m *gf2Matrix) apply(vec uint32) uint32 {
	var sum uint32
	for n := 0; n < 32 && vec > 0; n++ {
		if vec&1 > 0 {
			sum ^= m[n]
		}
		vec >>= 1
	}
	return sum
}

// Squares the matrix into dst. Applying dst once has the same effect as
// applying m twice. dst must not alias m.
func (m *gf2Matrix) square(dst *gf2Matrix) {
	for n := 0; n < 32; n++ {
		dst[n] = m.apply(m[n])
	}
}
