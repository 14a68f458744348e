// Package checksum provides CRC-32 (IEEE) computation, an incremental
// accumulator with checksum combination, and io.Reader/io.Writer wrappers
// that checksum data as it passes through.
package checksum

import "hash/crc32"

var ieeeTable = crc32.MakeTable(crc32.IEEE)

// Checksum calculates the CRC-32 (IEEE) of data.
func Checksum(data []byte) uint32 {
	return crc32.Checksum(data, ieeeTable)
}

// VerifyChecksum reports whether data matches the expected checksum.
func VerifyChecksum(data []byte, checksum uint32) bool {
	return crc32.Checksum(data, ieeeTable) == checksum
}
