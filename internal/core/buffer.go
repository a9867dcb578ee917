package core

// buffer tracks a region of the array, s[base:base+len], that is used both
// as scratch space during merges and as the sorted set of distinct "keys"
// used to track block identity during blockMerge. Keys are appended to an
// unsorted tail and merged into the sorted prefix by sort, so callers can
// batch several insertions before paying for the merge.
type buffer[T any] struct {
	base     int
	len      int
	unsorted int
}

// insert appends the element currently at s[idx] to the buffer's unsorted
// tail by swapping it into place.
func (b *buffer[T]) insert(s []T, idx int) {
	dst := b.base + b.len
	s[dst], s[idx] = s[idx], s[dst]
	b.len++
	b.unsorted++
}

// shift moves the buffer's base by delta elements (positive or negative)
// without touching its contents; used when the live region the buffer sits
// inside of is rotated or resized around it.
func (b *buffer[T]) shift(delta int) {
	b.base += delta
}

// sort merges the unsorted tail into the buffer's sorted prefix via plain
// insertion sort (the tail is always small relative to the already-sorted
// prefix, so this is the cheap regime) and marks the whole buffer sorted.
func (b *buffer[T]) sort(s []T, lt less[T]) {
	start := b.base + b.len - b.unsorted

	for i := start; i < b.base+b.len; i++ {
		pos := searchRight(s, b.base, i-b.base, i, lt)
		if shift := i - (b.base + pos); shift > 0 {
			insertLeft(s, i, shift)
		}
	}

	b.unsorted = 0
}

// beginMerge ensures the buffer is fully sorted and ready to serve as
// scratch/key storage for a merge, sorting any outstanding unsorted tail
// first.
func (b *buffer[T]) beginMerge(s []T, lt less[T]) {
	if b.unsorted > 0 {
		b.sort(s, lt)
	}
}

// binaryFindKeys collects up to idealKeys pairwise-distinct elements out of
// s[start:start+length] into a sorted run at the front of that range,
// appending each one found to the buffer, and returns the number of keys
// actually found (fewer than idealKeys if the region has fewer than
// idealKeys distinct values).
//
// It scans element by element and uses binary search against the keys
// collected so far to test distinctness, the way GrailSort's collectKeys
// does: every rejected (non-distinct) element scanned along the way is
// shuffled in front of the keys block rather than discarded, so a single
// pass both finds the keys and leaves everything else untouched in order.
func (b *buffer[T]) binaryFindKeys(s []T, start, length, idealKeys int, lt less[T]) int {
	if length == 0 {
		return 0
	}

	firstKey := 0
	keysFound := 1

	for cur := 1; cur < length && keysFound < idealKeys; cur++ {
		idx := start + cur
		pos := lowerBound(keysFound, func(i int) bool {
			return lt(s[start+firstKey+i], s[idx])
		})

		at := start + firstKey + pos
		if pos != keysFound && !lt(s[at], s[idx]) && !lt(s[idx], s[at]) {
			continue
		}

		rotate(s, start+firstKey, keysFound, cur-(firstKey+keysFound))
		firstKey = cur - keysFound
		insertLeft(s, idx, idx-(start+firstKey+pos))
		keysFound++
	}

	rotate(s, start, firstKey, keysFound)

	for i := range keysFound {
		b.insert(s, start+i)
	}
	b.sort(s, lt)

	return keysFound
}

// blockFindKeys is the fast path for a region already composed of numBlocks
// sorted blocks of blockLen elements each (as produced by buildRuns): since
// each block is individually sorted, its first element is a natural key
// candidate, so this samples one candidate per block and moves whole blocks
// around instead of scanning and shuffling element by element.
func (b *buffer[T]) blockFindKeys(s []T, start, numBlocks, blockLen, idealKeys int, lt less[T]) int {
	if numBlocks == 0 {
		return 0
	}

	firstKey := 0
	keysFound := 1

	for blk := 1; blk < numBlocks && keysFound < idealKeys; blk++ {
		idx := start + blk*blockLen
		pos := lowerBound(keysFound, func(i int) bool {
			return lt(s[start+(firstKey+i)*blockLen], s[idx])
		})

		at := start + (firstKey+pos)*blockLen
		if pos != keysFound && !lt(s[at], s[idx]) && !lt(s[idx], s[at]) {
			continue
		}

		rotate(s, start+firstKey*blockLen, keysFound*blockLen, (blk-(firstKey+keysFound))*blockLen)
		firstKey = blk - keysFound
		rotate(s, start+(firstKey+pos)*blockLen, (keysFound-pos)*blockLen, blockLen)
		keysFound++
	}

	rotate(s, start, firstKey*blockLen, keysFound*blockLen)

	for i := range keysFound {
		b.insert(s, start+i*blockLen)
	}
	b.sort(s, lt)

	return keysFound
}

// batchFindKeys is invoked by the orchestrator over ranges already known to
// be sorted (via buildRuns/nextSortedRun), so it always has block structure
// available and delegates to blockFindKeys.
func (b *buffer[T]) batchFindKeys(s []T, start, numBlocks, blockLen, idealKeys int, lt less[T]) int {
	return b.blockFindKeys(s, start, numBlocks, blockLen, idealKeys, lt)
}
