package core

// Tuning constants controlling which regime handles a given size. These
// mirror the thresholds a block-merge sort needs in practice: below
// minMergeSort the buffer/block machinery costs more than it saves, and
// above minOptFindKeys key collection switches to the block-granularity
// scan since the region is already known to be built from sorted runs.
const (
	minRun          = 32
	minFastLazy     = 512
	ratioBinMerge   = 8
	minScan         = 8
	minMergeSort    = 64
	minOptFindKeys  = 4096
	minDistinct     = 12
	maxAppendBlocks = 3
)

// insertSortOne inserts the element currently at idx into the sorted run
// s[start:idx), walking backward and shifting larger elements right by one
// as it goes. Built on hole rather than a raw temporary-and-shift so that a
// less which panics partway through the walk still leaves the slice a
// valid permutation: the deferred finish writes the stashed value into
// whatever slot the walk had reached when the panic unwound through it.
func insertSortOne[T any](s []T, start, idx int, lt less[T]) {
	if idx <= start {
		return
	}

	h := newHole(s, idx)
	defer h.finish()

	j := idx - 1
	for j >= start && lt(h.val, s[j]) {
		h.cycle(j, j+1)
		j--
	}
}

// insertSort inserts each element of s[start+sortedLen:start+newLen], in
// order, into the already-sorted s[start:start+sortedLen).
func insertSort[T any](s []T, start, sortedLen, newLen int, lt less[T]) {
	for idx := start + sortedLen; idx < start+newLen; idx++ {
		insertSortOne(s, start, idx, lt)
	}
}

// arrayBlockLength returns the block length to decompose n elements into
// for the block-merge phase: the smallest power of two whose square is at
// least n, so that roughly sqrt(n) blocks of roughly sqrt(n) elements each
// cover the array.
func arrayBlockLength(n int) int {
	b := 1
	for b*b < n {
		b <<= 1
	}
	return b
}

// bufferBlockLength returns the number of blockLen-sized blocks the
// internal buffer needs to hold one key per block of an n-element region.
func bufferBlockLength(n, blockLen int) int {
	return (n + blockLen - 1) / blockLen
}

// mergeSortInPlace runs a fixed-width bottom-up merge sort over
// s[start:end] with no internal buffer at all: insertion-sort minRun-sized
// chunks, then repeatedly merge adjacent pairs of doubling width via
// mergeLazy. Used below minMergeSort, where the buffer/block machinery
// would cost more than it saves.
func mergeSortInPlace[T any](s []T, start, end int, lt less[T]) {
	for i := start; i < end; i += minRun {
		insertSort(s, i, 1, min(minRun, end-i), lt)
	}

	for width := minRun; width < end-start; width *= 2 {
		for lo := start; lo < end; lo += 2 * width {
			mid := min(lo+width, end)
			hi := min(lo+2*width, end)
			if mid < hi {
				mergeLazy(s, lo, mid-lo, hi-mid, lt)
			}
		}
	}
}

// sortSpecial handles the case where key collection over s[start:end]
// found fewer than minDistinct distinct values: block identity can't be
// tracked reliably with that few tags, so this falls back to sorting the
// region in two pieces instead — the head already found in the middle of
// key collection (length headLen, already a sorted run on its own) and
// whatever remains after it — then merging the two without a buffer.
func sortSpecial[T any](s []T, start, end, headLen int, lt less[T]) {
	tail := end - (start + headLen)

	if headLen == 0 {
		mergeSortInPlace(s, start, end, lt)
		return
	}

	mergeSortInPlace(s, start, start+headLen, lt)

	if tail > 0 {
		mergeSortInPlace(s, start+headLen, end, lt)
		mergeLazy(s, start, headLen, tail, lt)
	}
}

// blockMergeSort is the main O(n log n) / O(1)-auxiliary-memory path: it
// builds minRun-sorted natural runs, carves an internal buffer of distinct
// keys out of the front of the array, and uses that buffer to drive
// buffered block merges for a bottom-up doubling merge pass, falling back
// to the rotation-only mergeLazy for any pass width the buffer can't cover.
func blockMergeSort[T any](s []T, start, end int, lt less[T]) {
	n := end - start
	blockLen := arrayBlockLength(n)
	idealKeys := bufferBlockLength(n, blockLen) + blockLen

	buildRuns(s, start, end, minRun, lt, func(runStart, runLen int) {})

	var buf buffer[T]
	buf.base = start

	// Element-by-element key collection is capped at minOptFindKeys: below
	// that the whole region gets scanned directly, above it whatever keys
	// are still missing are topped up at block granularity over the
	// remainder, which buildRuns has already left composed of sorted runs.
	scanLen := min(n, minOptFindKeys)
	keysFound := buf.binaryFindKeys(s, start, scanLen, idealKeys, lt)

	if keysFound < idealKeys && start+scanLen < end {
		remaining := end - (start + scanLen)
		keysFound += buf.batchFindKeys(s, start+scanLen, bufferBlockLength(remaining, blockLen), blockLen, idealKeys-keysFound, lt)
	}

	if keysFound < minDistinct {
		sortSpecial(s, start, end, keysFound, lt)
		return
	}

	buf.beginMerge(s, lt)

	dataStart := start + buf.len
	width := minRun

	for width < end-dataStart {
		for lo := dataStart; lo < end; lo += 2 * width {
			mid := min(lo+width, end)
			hi := min(lo+2*width, end)
			if mid >= hi {
				continue
			}

			aLen, bLen := mid-lo, hi-mid
			if min(aLen, bLen) <= buf.len {
				mergeInPlace(s, &buf, lo, aLen, bLen, lt)
				continue
			}

			// Neither run divides evenly into whole blocks in general.
			// Move A's unaligned tail (remA elements) past the entire B
			// run first, so the aligned A-blocks sit directly against B
			// and blockMerge's block-contiguity assumption holds; B's own
			// unaligned tail (remB elements) is left where it is, right
			// before remA, and both get folded back in by the final
			// lazy merge below.
			numA, numB := aLen/blockLen, bLen/blockLen
			remA, remB := aLen-numA*blockLen, bLen-numB*blockLen

			alignedA := lo + numA*blockLen
			rotate(s, alignedA, remA, bLen)

			blockMerge(s, lo, blockLen, numA, numB, &buf, lt)

			tailStart := alignedA + numB*blockLen
			if remB > 0 && remA > 0 {
				mergeLazy(s, tailStart, remB, remA, lt)
			}
			if tailStart > lo {
				mergeLazy(s, lo, tailStart-lo, hi-tailStart, lt)
			}
		}
		width *= 2
	}

	// The buffer region is still fully sorted (nothing in the doubling
	// pass above ever touches s[start:dataStart]); fold it back into the
	// now fully-sorted data region it was carved out of.
	mergeLazy(s, start, buf.len, end-dataStart, lt)
}

// Sort sorts s in place using lt as the strict weak order, dispatching to
// the buffer-free path below minMergeSort and to the full block-merge
// machinery above it.
func Sort[T any](s []T, lt less[T]) {
	if len(s) < 2 {
		return
	}

	if len(s) < minMergeSort {
		mergeSortInPlace(s, 0, len(s), lt)
		return
	}

	blockMergeSort(s, 0, len(s), lt)
}
