package seq

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// ErrLengthMismatch reports a selection mask whose length differs from
// the sequence it is applied to.
var ErrLengthMismatch = errors.New("mask length does not match sequence length")

// Pair holds two positionally related values.
type Pair[A, B any] struct {
	A A
	B B
}

// Concat returns a new slice holding the elements of a followed by the
// elements of b. Neither input is modified.
func Concat[S ~[]E, E any](a, b S) S {
	out := make(S, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// ConcatStrings returns a concatenated with b.
func ConcatStrings(a, b string) string {
	return a + b
}

// MaskSelect returns the elements of s whose flag in mask is true,
// preserving order. It fails with ErrLengthMismatch when mask and s have
// different lengths.
func MaskSelect[S ~[]E, E any](s S, mask []bool) (S, error) {
	if len(mask) != len(s) {
		return nil, fmt.Errorf("%w: %d flags for %d elements", ErrLengthMismatch, len(mask), len(s))
	}
	var out S
	for i, keep := range mask {
		if keep {
			out = append(out, s[i])
		}
	}
	return out, nil
}

// MaskSelectString returns the characters of s whose flag in mask is
// true. The mask length is compared against the rune count of s.
func MaskSelectString(s string, mask []bool) (string, error) {
	runes := []rune(s)
	if len(mask) != len(runes) {
		return "", fmt.Errorf("%w: %d flags for %d characters", ErrLengthMismatch, len(mask), len(runes))
	}
	var b strings.Builder
	for i, keep := range mask {
		if keep {
			b.WriteRune(runes[i])
		}
	}
	return b.String(), nil
}

// Apply calls fn on each argument in order and collects the results.
func Apply[A, R any](fn func(A) R, args []A) []R {
	out := make([]R, len(args))
	for i, a := range args {
		out[i] = fn(a)
	}
	return out
}

// Apply2 calls fn on each argument pair in order and collects the
// results.
func Apply2[A, B, R any](fn func(A, B) R, args []Pair[A, B]) []R {
	out := make([]R, len(args))
	for i, p := range args {
		out[i] = fn(p.A, p.B)
	}
	return out
}

// Zip lazily yields pairs (a[i], b[i]) up to the length of the shorter
// input.
func Zip[A, B any](a []A, b []B) iter.Seq[Pair[A, B]] {
	n := min(len(a), len(b))
	return func(yield func(Pair[A, B]) bool) {
		for i := 0; i < n; i++ {
			if !yield(Pair[A, B]{A: a[i], B: b[i]}) {
				return
			}
		}
	}
}

// Unique lazily yields the first occurrence of each distinct element of
// s, preserving encounter order.
func Unique[E comparable](s iter.Seq[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		seen := make(map[E]struct{})
		for e := range s {
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			if !yield(e) {
				return
			}
		}
	}
}

// UniqueSlice returns the distinct elements of s in encounter order.
func UniqueSlice[S ~[]E, E comparable](s S) S {
	seen := make(map[E]struct{}, len(s))
	var out S
	for _, e := range s {
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}

// Partition splits s into the elements satisfying pred and those that do
// not, preserving relative order within each part.
func Partition[S ~[]E, E any](s S, pred func(E) bool) (matches, rest S) {
	for _, e := range s {
		if pred(e) {
			matches = append(matches, e)
		} else {
			rest = append(rest, e)
		}
	}
	return matches, rest
}

// TakeWhile lazily yields elements of s until the first element failing
// pred, then stops permanently even if later elements would satisfy it.
func TakeWhile[E any](s iter.Seq[E], pred func(E) bool) iter.Seq[E] {
	return func(yield func(E) bool) {
		for e := range s {
			if !pred(e) {
				return
			}
			if !yield(e) {
				return
			}
		}
	}
}
