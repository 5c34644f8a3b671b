package softgl

// nameAllocator hands out non-zero object names. Freed names are kept on a
// free list and reused LIFO by the next allocation; name 0 is never issued
// since it always denotes the default object.
type nameAllocator struct {
	next uint32
	free []uint32
}

// allocate returns n fresh, pairwise-distinct names. n must be
// non-negative; the caller validates.
func (a *nameAllocator) allocate(n int) []uint32 {
	names := make([]uint32, n)
	for i := range names {
		if l := len(a.free); l > 0 {
			names[i] = a.free[l-1]
			a.free = a.free[:l-1]
			continue
		}
		a.next++
		names[i] = a.next
	}
	return names
}

// release returns a name to the allocator for reuse.
func (a *nameAllocator) release(name uint32) {
	a.free = append(a.free, name)
}

// allocateRange returns the first of n consecutive fresh names. The free
// list is skipped so the range is always contiguous.
func (a *nameAllocator) allocateRange(n int) uint32 {
	base := a.next + 1
	a.next += uint32(n)
	return base
}
