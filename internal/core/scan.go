package core

// nextNonDescRun returns the length of the longest non-descending run
// starting at s[start], within s[start:end]. A run of length 1 is always
// valid (no comparison needed to establish it).
func nextNonDescRun[T any](s []T, start, end int, lt less[T]) int {
	i := start + 1
	for i < end && !lt(s[i], s[i-1]) {
		i++
	}
	return i - start
}

// nextSortedRun returns the length of the longest sorted run starting at
// s[start]. A run that starts strictly descending is extended over every
// following element that is not greater than its predecessor and reversed
// in place, so the returned range is always non-descending. Each segment of
// equal elements inside such a run is reversed first, so the final
// reversal leaves equal keys in their original relative order.
func nextSortedRun[T any](s []T, start, end int, lt less[T]) int {
	if start+1 >= end {
		return end - start
	}

	if lt(s[start+1], s[start]) {
		i := start + 1
		for i < end && !lt(s[i-1], s[i]) {
			if !lt(s[i], s[i-1]) {
				j := i + 1
				for j < end && !lt(s[j], s[j-1]) && !lt(s[j-1], s[j]) {
					j++
				}
				reverse(s, i-1, j)
				i = j
				continue
			}
			i++
		}
		reverse(s, start, i)
		return i - start
	}

	return nextNonDescRun(s, start, end, lt)
}

// buildRuns scans s[start:end] into sorted runs of at least minRun elements
// each, except that the last run may be shorter (a natural run that falls
// short is extended by insertion-sorting the elements after it into it),
// calling visit(runStart, runLen) once per run
// found, left to right. Takes a visitor rather than returning the run
// boundaries so the scan needs no heap allocation proportional to n.
func buildRuns[T any](s []T, start, end, minRun int, lt less[T], visit func(runStart, runLen int)) {
	for i := start; i < end; {
		runLen := nextSortedRun(s, i, end, lt)

		for runLen < minRun && i+runLen < end {
			extra := min(minRun-runLen, end-(i+runLen))
			insertSort(s, i, runLen, runLen+extra, lt)
			runLen += extra
		}

		visit(i, runLen)
		i += runLen
	}
}
