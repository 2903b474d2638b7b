package race

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Rehash condenses a raw MinHash signature into a bucket vector that can address the sketch.
// The signature is split into repetitions blocks of hashPower values; each block is serialised
// and hashed to a single bucket in [0, hashRange). Two signatures that agree on every value of
// a block land in the same bucket for that row.
func Rehash(signature []int32, buckets []int, repetitions, hashPower, hashRange int) {
	buf := make([]byte, 4*hashPower)
	for i := 0; i < repetitions; i++ {
		for j := 0; j < hashPower; j++ {
			binary.LittleEndian.PutUint32(buf[j*4:], uint32(signature[(i*hashPower)+j]))
		}
		buckets[i] = int(xxhash.Sum64(buf) % uint64(hashRange))
	}
}
