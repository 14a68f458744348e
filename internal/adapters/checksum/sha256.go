package checksum

import (
	sha256_lib "crypto/sha256"
	"encoding/binary"
)

type sha256 struct {
	name string
}

func NewSHA256() *sha256 {
	return &sha256{name: string(SHA256)}
}

// Calculate truncates the SHA-256 digest to its first 8 bytes so it fits
// the uint64 port contract. Truncation keeps corruption detection strength
// comparable to CRC64 while staying cheap to store per chunk.
func (s *sha256) Calculate(data []byte) uint64 {
	sum := sha256_lib.Sum256(data)
	return binary.BigEndian.Uint64(sum[:8])
}

func (s *sha256) Verify(data []byte, expected uint64) bool {
	return s.Calculate(data) == expected
}

func (s *sha256) Size() uint8 {
	return 8
}

func (s *sha256) Name() string {
	return s.name
}
