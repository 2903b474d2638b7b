package minhash

import (
	"testing"
)

var (
	kmerSize  = 4
	numHashes = 8
	seed      = uint64(42)
	seqA      = []byte("ACGTACGT")
	// seqB is a rotation of seqA, so it holds the same set of 4-mers
	seqB = []byte("CGTACGTA")
	seqC = []byte("TTTTGGGGCCCC")
)

// Constructor test
func TestSequenceMinHashConstructor(t *testing.T) {
	if _, err := NewSequenceMinHash(0, seed); err == nil {
		t.Fatal("constructor should fault on a non-positive signature length")
	}
	mh, err := NewSequenceMinHash(numHashes, seed)
	if err != nil {
		t.Fatal(err)
	}
	if mh.NumHashes() != numHashes {
		t.Fatalf("NewSequenceMinHash did not set up the seed table correctly")
	}
}

// a sequence shorter than k has no k-mer and must yield the sentinel signature
func TestGetHashSentinel(t *testing.T) {
	mh, err := NewSequenceMinHash(numHashes, seed)
	if err != nil {
		t.Fatal(err)
	}
	signature := make([]int32, numHashes)
	if err := mh.GetHash(kmerSize, seqA[0:2], signature); err != nil {
		t.Fatal(err)
	}
	for _, value := range signature {
		if value != SENTINEL {
			t.Fatalf("short sequence should give a sentinel signature, got: %d", value)
		}
	}
}

// the signature must depend only on the k-mer content of the sequence
func TestGetHashKmerSetDependence(t *testing.T) {
	mh, err := NewSequenceMinHash(numHashes, seed)
	if err != nil {
		t.Fatal(err)
	}
	sigA := make([]int32, numHashes)
	sigB := make([]int32, numHashes)
	if err := mh.GetHash(kmerSize, seqA, sigA); err != nil {
		t.Fatal(err)
	}
	if err := mh.GetHash(kmerSize, seqB, sigB); err != nil {
		t.Fatal(err)
	}
	for i := range sigA {
		if sigA[i] != sigB[i] {
			t.Fatalf("sequences with identical k-mer sets gave different signatures at slot %d: %d vs %d", i, sigA[i], sigB[i])
		}
	}
}

// two extractors built from the same seed must agree; a different seed should give a different signature
func TestGetHashSeeding(t *testing.T) {
	mh1, err := NewSequenceMinHash(numHashes, seed)
	if err != nil {
		t.Fatal(err)
	}
	mh2, err := NewSequenceMinHash(numHashes, seed)
	if err != nil {
		t.Fatal(err)
	}
	mh3, err := NewSequenceMinHash(numHashes, seed+1)
	if err != nil {
		t.Fatal(err)
	}
	sig1 := make([]int32, numHashes)
	sig2 := make([]int32, numHashes)
	sig3 := make([]int32, numHashes)
	if err := mh1.GetHash(kmerSize, seqC, sig1); err != nil {
		t.Fatal(err)
	}
	if err := mh2.GetHash(kmerSize, seqC, sig2); err != nil {
		t.Fatal(err)
	}
	if err := mh3.GetHash(kmerSize, seqC, sig3); err != nil {
		t.Fatal(err)
	}
	identical := true
	for i := range sig1 {
		if sig1[i] != sig2[i] {
			t.Fatalf("extractors with the same seed disagree at slot %d", i)
		}
		if sig1[i] != sig3[i] {
			identical = false
		}
	}
	if identical {
		t.Fatal("extractors with different seeds gave an identical signature")
	}
}

// the signature holder must match the seed table
func TestGetHashHolderCheck(t *testing.T) {
	mh, err := NewSequenceMinHash(numHashes, seed)
	if err != nil {
		t.Fatal(err)
	}
	if err := mh.GetHash(kmerSize, seqA, make([]int32, numHashes-1)); err == nil {
		t.Fatal("should fault as the signature holder is shorter than the seed table")
	}
}

// benchmark the extractor
func BenchmarkGetHash(b *testing.B) {
	mh, err := NewSequenceMinHash(numHashes, seed)
	if err != nil {
		b.Fatal(err)
	}
	signature := make([]int32, numHashes)

	// run the extractor b.N times
	for n := 0; n < b.N; n++ {
		if err := mh.GetHash(kmerSize, seqC, signature); err != nil {
			b.Fatal(err)
		}
	}
}
