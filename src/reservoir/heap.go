package reservoir

// entryHeap is a min-heap of reservoir entries, keyed on the A-Res key (we're satisfying the heap interface: https://golang.org/pkg/container/heap/)
type entryHeap []*entry

// the less method keeps the smallest key at index position 0 in the heap, so it is the eviction candidate
func (entryHeap entryHeap) Less(i, j int) bool { return entryHeap[i].key < entryHeap[j].key }
func (entryHeap entryHeap) Swap(i, j int)      { entryHeap[i], entryHeap[j] = entryHeap[j], entryHeap[i] }
func (entryHeap entryHeap) Len() int           { return len(entryHeap) }

// Push is a method to add an entry to the heap
func (entryHeap *entryHeap) Push(x interface{}) {
	// dereference the pointer to modify the slice's length, not just its contents
	*entryHeap = append(*entryHeap, x.(*entry))
}

// Pop is a method to remove an entry from the heap
func (entryHeap *entryHeap) Pop() interface{} {
	old := *entryHeap
	n := len(old)
	x := old[n-1]
	*entryHeap = old[0 : n-1]
	return x
}
