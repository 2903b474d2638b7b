// Package minhash contains a seeded MinHash feature extractor for sequence reads. The extractor uses the ntHash rolling hash function to decompose a read into k-mers.
package minhash

import (
	"fmt"
	"math"

	"github.com/will-rowe/ntHash"
)

// CANONICAL tells ntHash whether to return the canonical k-mer - the sampler hashes reads strand-specifically
const CANONICAL bool = false

// SENTINEL is the value given to every sketch slot when a sequence contains no k-mer (i.e. it is shorter than k)
const SENTINEL int32 = math.MaxInt32

// SequenceMinHash is the structure for the minwise hash signature generator
type SequenceMinHash struct {
	numHashes int
	seeds     []uint64
}

// NewSequenceMinHash is the constructor for a SequenceMinHash, deriving numHashes independent hash seeds from the supplied seed
func NewSequenceMinHash(numHashes int, seed uint64) (*SequenceMinHash, error) {
	if numHashes < 1 {
		return nil, fmt.Errorf("minhash signature length must be a positive integer: %d", numHashes)
	}

	// derive a reproducible seed table, one entry per hash function
	seeds := make([]uint64, numHashes)
	state := seed
	for i := range seeds {
		state += 0x9e3779b97f4a7c15
		seeds[i] = splitmix64(state)
	}
	return &SequenceMinHash{
		numHashes: numHashes,
		seeds:     seeds,
	}, nil
}

// NumHashes is a method to return the signature length of the extractor
func (SequenceMinHash *SequenceMinHash) NumHashes() int {
	return SequenceMinHash.numHashes
}

// GetHash is a method to decompose a sequence to k-mers, hash each k-mer under every seed and record the per-seed minimums in the supplied signature slice
func (SequenceMinHash *SequenceMinHash) GetHash(kmerSize int, sequence []byte, signature []int32) error {

	// check the holder matches the seed table
	if len(signature) != SequenceMinHash.numHashes {
		return fmt.Errorf("signature holder length (%d) does not match number of hash functions (%d)", len(signature), SequenceMinHash.numHashes)
	}

	// reset the signature before collecting minimums
	for i := range signature {
		signature[i] = SENTINEL
	}

	// a sequence shorter than k contributes no k-mer and keeps the sentinel signature
	if len(sequence) < kmerSize {
		return nil
	}

	// initiate the rolling ntHash
	hasher, err := ntHash.New(&sequence, uint(kmerSize))
	if err != nil {
		return err
	}

	// get hashed k-mers from the sequence and evaluate each sketch slot
	for baseHash := range hasher.Hash(CANONICAL) {
		for i, seed := range SequenceMinHash.seeds {

			// derive the slot value from the base k-mer hash and the slot seed
			hv := int32(splitmix64(baseHash^seed) & math.MaxInt32)
			if hv < signature[i] {
				signature[i] = hv
			}
		}
	}
	return nil
}

// splitmix64 is a 64-bit finalizer, used to derive the seed table and to turn base k-mer hashes into per-seed values
func splitmix64(key uint64) uint64 {
	key = (key ^ (key >> 31) ^ (key >> 62)) * uint64(0x319642b2d24d8ec3)
	key = (key ^ (key >> 27) ^ (key >> 54)) * uint64(0x96de1b173f119089)
	key = key ^ (key >> 30) ^ (key >> 60)
	return key
}
