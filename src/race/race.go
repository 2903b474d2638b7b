// Package race contains the Repeated Array-of-Counts Estimator (RACE) sketch, which maintains an online kernel density estimate over the reads seen so far.
package race

import (
	"fmt"
)

// RACE is the structure for the counter sketch - a matrix of repetitions x hashRange counters
type RACE struct {
	repetitions int
	hashRange   int
	counts      [][]uint32
}

// NewRACE is the constructor for a RACE sketch, allocating a zeroed repetitions x hashRange counter matrix
func NewRACE(repetitions, hashRange int) (*RACE, error) {
	if repetitions < 1 {
		return nil, fmt.Errorf("number of sketch repetitions must be a positive integer: %d", repetitions)
	}
	if hashRange < 1 {
		return nil, fmt.Errorf("sketch hash range must be a positive integer: %d", hashRange)
	}
	counts := make([][]uint32, repetitions)
	for i := range counts {
		counts[i] = make([]uint32, hashRange)
	}
	return &RACE{
		repetitions: repetitions,
		hashRange:   hashRange,
		counts:      counts,
	}, nil
}

// Query is a method to report the KDE for a bucket vector, i.e. the mean of the addressed counters
func (RACE *RACE) Query(buckets []int) float64 {
	var total uint64
	for i, row := range RACE.counts {
		total += uint64(row[buckets[i]])
	}
	return float64(total) / float64(RACE.repetitions)
}

// Add is a method to increment the counter addressed by the bucket vector in every row
func (RACE *RACE) Add(buckets []int) {
	for i, row := range RACE.counts {
		row[buckets[i]]++
	}
}

// QueryAndAdd is a method to report the KDE for a bucket vector and then register the vector with the sketch. The returned KDE reflects the counters before the increment.
func (RACE *RACE) QueryAndAdd(buckets []int) float64 {
	kde := RACE.Query(buckets)
	RACE.Add(buckets)
	return kde
}

// Repetitions is a method to return the number of rows held by the sketch
func (RACE *RACE) Repetitions() int {
	return RACE.repetitions
}

// HashRange is a method to return the counter range of each row
func (RACE *RACE) HashRange() int {
	return RACE.hashRange
}

// RowSum is a method to sum the counters of a single row - after n additions every row sums to n
func (RACE *RACE) RowSum(row int) uint64 {
	var total uint64
	for _, count := range RACE.counts[row] {
		total += uint64(count)
	}
	return total
}
