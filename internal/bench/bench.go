// Package bench generates benchmark datasets for dustsort and records the
// comparator count and wall time a sort over them takes.
package bench

import (
	"math/rand/v2"
	"time"
)

// Kind names one of the dataset shapes below.
type Kind string

const (
	KindRandom       Kind = "random"
	KindSawtooth     Kind = "sawtooth"
	KindOrganPipe    Kind = "organ-pipe"
	KindNearlySorted Kind = "nearly-sorted"
	KindFewUnique    Kind = "few-unique"
	KindAdversarial  Kind = "adversarial"
)

// AllKinds lists every dataset kind Generate knows how to build, in a
// stable order for CLI flag help text and report iteration.
func AllKinds() []Kind {
	return []Kind{KindRandom, KindSawtooth, KindOrganPipe, KindNearlySorted, KindFewUnique, KindAdversarial}
}

// Generate builds an n-element int dataset of the given kind, seeded for
// reproducibility.
func Generate(kind Kind, n int, seed uint64) []int {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	switch kind {
	case KindRandom:
		return random(r, n)
	case KindSawtooth:
		return sawtooth(n)
	case KindOrganPipe:
		return organPipe(n)
	case KindNearlySorted:
		return nearlySorted(r, n)
	case KindFewUnique:
		return fewUnique(r, n)
	case KindAdversarial:
		return adversarial(n)
	default:
		return random(r, n)
	}
}

func random(r *rand.Rand, n int) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = r.IntN(n + 1)
	}
	return v
}

// sawtooth repeats an ascending ramp of a fixed width, producing many short
// sorted runs back to back — the case buildRuns's run-merging exists for.
func sawtooth(n int) []int {
	const width = 50
	v := make([]int, n)
	for i := range v {
		v[i] = i % width
	}
	return v
}

// organPipe rises then falls, giving one ascending run and one descending
// run (which nextSortedRun reverses in place into a second ascending run).
func organPipe(n int) []int {
	v := make([]int, n)
	mid := n / 2
	for i := 0; i < n; i++ {
		if i <= mid {
			v[i] = i
		} else {
			v[i] = n - i
		}
	}
	return v
}

// nearlySorted starts from an ascending sequence and performs a small
// number of random adjacent-ish swaps, the shape block-merge-sort's
// natural-run detection is meant to exploit.
func nearlySorted(r *rand.Rand, n int) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = i
	}
	swaps := max(1, n/100)
	for i := 0; i < swaps; i++ {
		a := r.IntN(n)
		b := min(n-1, a+r.IntN(8))
		v[a], v[b] = v[b], v[a]
	}
	return v
}

// fewUnique draws from a tiny value domain, stressing key collection's
// distinctness search and the minDistinct fallback path.
func fewUnique(r *rand.Rand, n int) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = r.IntN(8)
	}
	return v
}

// adversarial places two descending ramps back to back, a pattern used
// to stress merge-sort variants that assume runs trend ascending.
func adversarial(n int) []int {
	v := make([]int, n)
	half := n / 2
	for i := 0; i < half; i++ {
		v[i] = half - i
	}
	for i := half; i < n; i++ {
		v[i] = n - i
	}
	return v
}

// Result captures the cost of one sort run: how many times the comparator
// was called and how long it took.
type Result struct {
	Kind       Kind          `json:"kind"`
	N          int           `json:"n"`
	Seed       uint64        `json:"seed"`
	Compares   int           `json:"compares"`
	Elapsed    time.Duration `json:"elapsed"`
	ElapsedStr string        `json:"elapsed_human"`
}

// Finalize fills derived display fields before a Result is serialized.
func (r *Result) Finalize() {
	r.ElapsedStr = r.Elapsed.String()
}
