package core

// mergeLeft merges a copy of the left run (aLen elements starting at
// bufStart) with the right run in place (bLen elements starting at
// dest+aLen), writing the merged result back starting at dest, left to
// right. The caller has already swapped the left run out to bufStart
// before calling, so dest is free to overwrite.
func mergeLeft[T any](s []T, bufStart, aLen, dest, bLen int, lt less[T]) {
	aEnd, bEnd := bufStart+aLen, dest+aLen+bLen
	i, j, k := bufStart, dest+aLen, dest

	for i < aEnd && j < bEnd {
		if lt(s[j], s[i]) {
			s[k] = s[j]
			j++
		} else {
			s[k] = s[i]
			i++
		}
		k++
	}

	copy(s[k:k+aEnd-i], s[i:aEnd])
}

// mergeRight is mergeLeft's mirror image: the left run (aLen elements) is
// already in place at dest, the right run has been copied out to bufStart
// (bLen elements), and the merge runs right to left so it never needs to
// read a destination cell before the value that belongs there has been
// read out.
func mergeRight[T any](s []T, dest, aLen, bufStart, bLen int, lt less[T]) {
	i, j, k := dest+aLen-1, bufStart+bLen-1, dest+aLen+bLen-1

	for i >= dest && j >= bufStart {
		if lt(s[j], s[i]) {
			s[k] = s[i]
			i--
		} else {
			s[k] = s[j]
			j--
		}
		k--
	}

	copy(s[dest:dest+(j-bufStart+1)], s[bufStart:j+1])
}

// binaryMergeLeft is mergeLeft's galloping counterpart: instead of
// comparing one pair at a time, it uses binary search to find how many
// elements of one side can be bulk-copied before the next boundary
// crossing, which pays off once the two runs are sufficiently imbalanced
// in length.
func binaryMergeLeft[T any](s []T, bufStart, aLen, dest, bLen int, lt less[T]) {
	aEnd, bEnd := bufStart+aLen, dest+aLen+bLen
	i, j, k := bufStart, dest+aLen, dest

	for i < aEnd && j < bEnd {
		run := searchRight(s, i, aEnd-i, j, lt)
		if run > 0 {
			copy(s[k:k+run], s[i:i+run])
			i += run
			k += run
			continue
		}

		run = searchLeft(s, j, bEnd-j, i, lt)
		copy(s[k:k+run], s[j:j+run])
		j += run
		k += run
	}

	copy(s[k:k+aEnd-i], s[i:aEnd])
}

// binaryMergeRight mirrors binaryMergeLeft, galloping right to left.
func binaryMergeRight[T any](s []T, dest, aLen, bufStart, bLen int, lt less[T]) {
	i, j, k := dest+aLen-1, bufStart+bLen-1, dest+aLen+bLen-1

	for i >= dest && j >= bufStart {
		run := (i - dest + 1) - searchRight(s, dest, i-dest+1, j, lt)
		if run > 0 {
			copy(s[k-run+1:k+1], s[i-run+1:i+1])
			i -= run
			k -= run
			continue
		}

		run = (j - bufStart + 1) - searchLeft(s, bufStart, j-bufStart+1, i, lt)
		copy(s[k-run+1:k+1], s[j-run+1:j+1])
		j -= run
		k -= run
	}

	copy(s[dest:k+1], s[bufStart:j+1])
}

// merge merges the two adjacent sorted runs s[aStart:aStart+aLen] and
// s[aStart+aLen:aStart+aLen+bLen] using s[bufStart:] as scratch for
// whichever run is shorter, choosing the galloping kernel once the runs are
// imbalanced enough (ratio at least ratioBinMerge) for the extra binary
// searches to pay for themselves, and the plain linear kernel otherwise.
func merge[T any](s []T, bufStart, aStart, aLen, bLen int, lt less[T]) {
	if aLen <= bLen {
		swapNonoverlapping(s, bufStart, aStart, aLen)
		if bLen >= ratioBinMerge*max(aLen, 1) {
			binaryMergeLeft(s, bufStart, aLen, aStart, bLen, lt)
		} else {
			mergeLeft(s, bufStart, aLen, aStart, bLen, lt)
		}
		return
	}

	bStart := aStart + aLen
	swapNonoverlapping(s, bufStart, bStart, bLen)
	if aLen >= ratioBinMerge*max(bLen, 1) {
		binaryMergeRight(s, aStart, aLen, bufStart, bLen, lt)
	} else {
		mergeRight(s, aStart, aLen, bufStart, bLen, lt)
	}
}

// mergeLazy merges two adjacent sorted runs in place using only rotation,
// for when no internal buffer is available to hold a copy of either side.
// Each iteration either steps past the left run's first element, when no
// element of the right run is less than it, or finds via searchLeft how many
// leading elements of the right run are less than it and rotates exactly
// that many in front of the left run. This needs no scratch space at all at
// the cost of more total element moves than the buffered kernels above.
func mergeLazy[T any](s []T, aStart, aLen, bLen int, lt less[T]) {
	for aLen > 0 && bLen > 0 {
		bStart := aStart + aLen
		if !lt(s[bStart], s[aStart]) {
			aStart++
			aLen--
			continue
		}

		run := searchLeft(s, bStart, bLen, aStart, lt)

		rotate(s, aStart, aLen, run)
		aStart += run
		bLen -= run
	}
}

// mergeInPlace merges the two adjacent sorted runs s[aStart:aStart+aLen]
// and s[aStart+aLen:aStart+aLen+bLen], preferring buf as scratch when it
// holds enough elements for the shorter run and falling back to mergeLazy
// otherwise.
func mergeInPlace[T any](s []T, buf *buffer[T], aStart, aLen, bLen int, lt less[T]) {
	if buf != nil && buf.len >= min(aLen, bLen) {
		merge(s, buf.base, aStart, aLen, bLen, lt)
		return
	}

	mergeLazy(s, aStart, aLen, bLen, lt)
}
