// Package core implements the dustsort block-merge-sort engine.
//
// Every operation described in the project's design notes for rotation,
// run-scanning, buffered/lazy merging, block permutation, and the top-level
// orchestrator lives here. The public dustsort package is a thin façade over
// [Sort].
//
// Rust's raw pointer arithmetic has no direct Go equivalent, so every
// function here takes the backing slice plus one or more absolute integer
// offsets into it instead of a pointer — (s []T, i int) stands in for *mut T.
// The buffer, the two runs being merged, and the key region are all windows
// into the same backing slice; nothing is ever copied onto the heap.
package core
