package program

import (
	"strconv"

	"github.com/minio/highwayhash"
)

// fingerprintKey must stay stable, fingerprints are compared across runs
var fingerprintKey = []byte("0123456789ABCDEF0123456789ABCDEF")

// Hash returns 64-bit highwayhash fingerprint of source code
func Hash(data []byte) uint64 {
	return highwayhash.Sum64(data, fingerprintKey)
}

// FormatHash returns fingerprint as hex
func FormatHash(hash uint64) string {
	return strconv.FormatUint(hash, 16)
}
