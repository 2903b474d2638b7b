// Package reservoir contains a fixed-capacity weighted reservoir implementing the A-Res (exponential key) retention rule.
package reservoir

import (
	"container/heap"
	"fmt"
	"io"
	"math"
	"math/rand"
)

// entry is a single retained record - the verbatim chunk plus the weight, KDE and A-Res key it arrived with
type entry struct {
	chunk  []byte
	weight float64
	kde    float64
	key    float64
}

// Reservoir is the structure for the weighted reservoir
type Reservoir struct {
	size    int
	rng     *rand.Rand
	entries *entryHeap
}

// NewReservoir is the constructor for a Reservoir with the given capacity. The reservoir owns its RNG so that runs with the same seed retain the same records.
func NewReservoir(size int, seed int64) (*Reservoir, error) {
	if size < 1 {
		return nil, fmt.Errorf("reservoir capacity must be a positive integer: %d", size)
	}
	entries := make(entryHeap, 0, size)
	newReservoir := &Reservoir{
		size:    size,
		rng:     rand.New(rand.NewSource(seed)),
		entries: &entries,
	}
	heap.Init(newReservoir.entries)
	return newReservoir, nil
}

// Put is a method to offer one record to the reservoir
func (Reservoir *Reservoir) Put(chunk []byte, weight, kde float64) {

	// always draw, so that reservoirs constructed from the same seed stay in lockstep over a shared offer sequence
	u := Reservoir.rng.Float64()
	var key float64
	switch {
	case weight == 0:
		key = 0
	case math.IsInf(weight, 1):
		key = 1
	default:
		key = math.Pow(u, 1/weight)
	}

	// if the reservoir isn't full yet, go ahead and add the record
	if Reservoir.entries.Len() < Reservoir.size {
		heap.Push(Reservoir.entries, &entry{chunk: chunk, weight: weight, kde: kde, key: key})
		return
	}

	// or if the incoming key beats the smallest key held, replace that minimum
	if key > (*Reservoir.entries)[0].key {
		(*Reservoir.entries)[0] = &entry{chunk: chunk, weight: weight, kde: kde, key: key}
		heap.Fix(Reservoir.entries, 0)
	}
}

// Len is a method to return the number of records currently held
func (Reservoir *Reservoir) Len() int {
	return Reservoir.entries.Len()
}

// Report is a method to return the weights and KDEs of the held records, in drain order
func (Reservoir *Reservoir) Report() ([]float64, []float64) {
	weights := make([]float64, Reservoir.entries.Len())
	kdes := make([]float64, Reservoir.entries.Len())
	for i, entry := range *Reservoir.entries {
		weights[i] = entry.weight
		kdes[i] = entry.kde
	}
	return weights, kdes
}

// Drain is a method to empty the reservoir, writing each retained chunk to the sample sink and a "<weight> <kde>" line to the weight sink. The i-th weight line corresponds to the i-th drained chunk.
func (Reservoir *Reservoir) Drain(samples io.Writer, weights io.Writer) error {
	for _, entry := range *Reservoir.entries {
		if _, err := samples.Write(entry.chunk); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(weights, "%g %g\n", entry.weight, entry.kde); err != nil {
			return err
		}
	}
	*Reservoir.entries = (*Reservoir.entries)[:0]
	return nil
}
