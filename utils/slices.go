package utils

import (
	"iter"

	"cosmossdk.io/math"
)

// Map lazily applies fn to every element of s.
func Map[S any, T any](s []S, fn func(S) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// Filter lazily yields the elements of s for which keep returns true.
func Filter[S any](s []S, keep func(S) bool) iter.Seq[S] {
	return func(yield func(S) bool) {
		for _, v := range s {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// SafeSum adds up every value of seq, failing on the first overflow.
// An empty sequence sums to zero.
func SafeSum(seq iter.Seq[math.Int]) (math.Int, error) {
	sum := math.ZeroInt()
	for v := range seq {
		var err error
		if sum, err = sum.SafeAdd(v); err != nil {
			return math.Int{}, err
		}
	}
	return sum, nil
}
