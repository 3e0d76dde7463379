package xrpcodec

import (
	"github.com/minio/sha256-simd"
)

const checksumLen = 4

// checksum returns the 4-byte integrity tag for the given bytes: the first
// four bytes of SHA-256(SHA-256(b)). The digest and truncation point must
// not change, they define the wire-compatible identifier format.
func checksum(b []byte) [checksumLen]byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	var sum [checksumLen]byte
	copy(sum[:], second[:checksumLen])
	return sum
}
