package checksum

// crc32Poly is the reflected CRC-32 generator polynomial, the same one
// hash/crc32 uses for its IEEE table.
const crc32Poly uint32 = 0xEDB88320

// Combine computes the CRC-32 of the concatenation of two byte sequences A
// and B given only crc1 = Checksum(A), crc2 = Checksum(B) and len2 = len(B),
// without re-reading either sequence:
//
//	Checksum(append(a, b...)) == Combine(Checksum(a), Checksum(b), uint64(len(b)))
//
// Appending len2 zero bytes to A transforms crc1 by a linear operator over
// GF(2)^32. Combine raises the single-zero-bit shift operator to the power
// 8*len2 by repeated squaring, costing O(log len2) matrix squarings instead
// of O(len2) byte-wise updates, then folds crc2 in by XOR.
//
// Both checksums must have been computed with the same polynomial and the
// same initial/final XOR convention. A mismatched (crc2, len2) pair yields a
// well-defined but meaningless result; it cannot be detected here.
func Combine(crc1, crc2 uint32, len2 uint64) uint32 {
	// Appending nothing leaves the checksum untouched.
	if len2 == 0 {
		return crc1
	}

	var even, odd gf2Matrix

	// Operator for one zero bit: shift the register right by one, feeding the
	// vacated high bit with zero and folding the polynomial back in when the
	// bit shifted out was set.
	odd[0] = crc32Poly
	row := uint32(1)
	for n := 1; n < 32; n++ {
		odd[n] = row
		row <<= 1
	}

	// Operator for two zero bits, then four.
	odd.square(&even)
	even.square(&odd)

	// Consume len2 bit by bit, low to high. Each squaring doubles the shift
	// distance, so the first one below turns the four-zero-bit operator into
	// the operator for a single zero byte.
	for {
		odd.square(&even)
		if len2&1 > 0 {
			crc1 = even.apply(crc1)
		}
		len2 >>= 1
		if len2 == 0 {
			break
		}

		// Same round with the even and odd roles swapped.
		even.square(&odd)
		if len2&1 > 0 {
			crc1 = odd.apply(crc1)
		}
		len2 >>= 1
		if len2 == 0 {
			break
		}
	}

	return crc1 ^ crc2
}
