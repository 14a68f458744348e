package checksum

import (
	"hash/crc32"

	crc "github.com/iamNilotpal/checksum/pkg/checksum"
)

type crc32IEEE struct {
	name  string
	table *crc32.Table
}

func NewCRC32IEEE() *crc32IEEE {
	return &crc32IEEE{
		name:  string(CRC32IEEE),
		table: crc32.MakeTable(crc32.IEEE),
	}
}

func (c *crc32IEEE) Calculate(data []byte) uint64 {
	return uint64(crc32.Checksum(data, c.table))
}

func (c *crc32IEEE) Verify(data []byte, expected uint64) bool {
	checksum := uint64(crc32.Checksum(data, c.table))
	return checksum == expected
}

// Combine derives the checksum of the concatenation of two blocks from
// their individual checksums and the byte length of the second block.
// Values wider than 32 bits in c1/c2 are caller errors; only the low 32
// bits carry the CRC.
func (c *crc32IEEE) Combine(c1, c2 uint64, len2 uint64) uint64 {
	return uint64(crc.Combine(uint32(c1), uint32(c2), len2))
}

func (c *crc32IEEE) Size() uint8 {
	return crc32.Size
}

func (c *crc32IEEE) Name() string {
	return c.name
}
