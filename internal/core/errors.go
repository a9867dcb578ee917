package core

import "errors"

// ErrOrderingViolated is raised (via panic) by localMerge when the two runs
// it is asked to merge are not contiguous in the slice.
var ErrOrderingViolated = errors.New("dustsort: ordering predicate violated (less is not a strict weak order)")
