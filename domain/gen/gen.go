// Package gen implements composable deterministic random value generation.
//
// A Generator[T] is an immutable, reusable recipe for producing a T from a
// stream.State: a pure function State -> (T, State). Building a generator
// performs no randomness; only running it against a seeded state does.
// The same generator value may be run any number of times, with any seeds,
// and a fixed (generator, seed) pair yields the same value forever.
//
// # Determinism
//
// Every combinator threads the stream state explicitly. Map2 and Map3 run
// their sub-generators strictly left to right, each against the state the
// previous one left behind, so argument order is part of the contract:
// swapping two sub-generators changes the produced value for a fixed seed.
//
// # Failure
//
// Primitive constructors validate their arguments eagerly and panic with a
// sentinel error (ErrInvalidBound, ErrNegativeLength, ErrEmptyItems) on
// invalid input, the same contract as math/rand's Intn. Panics raised inside
// caller-supplied functions passed to Map, Map2, Map3 or Then are not caught
// or wrapped; they propagate unchanged to the RunWithSeed caller.
package gen

import (
	"errors"

	"gomonte/domain/stream"
)

// ErrInvalidBound indicates a non-positive bound passed to Int.
var ErrInvalidBound = errors.New("bound must be a positive integer")

// ErrNegativeLength indicates a negative length passed to ListOf.
var ErrNegativeLength = errors.New("length must be non-negative")

// ErrEmptyItems indicates an empty slice where shuffling or selection
// requires at least one element.
var ErrEmptyItems = errors.New("at least one item must be provided")

// Generator is a pure recipe for deriving a value of type T from a random
// state. Calling it returns the value and the advanced state; the input
// state is never mutated.
type Generator[T any] func(stream.State) (T, stream.State)

// Always returns a generator that yields v without consuming any
// randomness. It is the identity element for Then.
func Always[T any](v T) Generator[T] {
	return func(st stream.State) (T, stream.State) {
		return v, st
	}
}

// Map transforms the value produced by g with f. No extra randomness is
// consumed; the state g leaves behind passes through untouched.
func Map[T, U any](g Generator[T], f func(T) U) Generator[U] {
	return func(st stream.State) (U, stream.State) {
		v, next := g(st)
		return f(v), next
	}
}

// Map2 runs ga then gb, threading the state from ga into gb, and combines
// the two values with f.
func Map2[A, B, U any](ga Generator[A], gb Generator[B], f func(A, B) U) Generator[U] {
	return func(st stream.State) (U, stream.State) {
		a, st1 := ga(st)
		b, st2 := gb(st1)
		return f(a, b), st2
	}
}

// Map3 runs ga, gb and gc in order, threading state left to right, and
// combines the three values with f.
func Map3[A, B, C, U any](ga Generator[A], gb Generator[B], gc Generator[C], f func(A, B, C) U) Generator[U] {
	return func(st stream.State) (U, stream.State) {
		a, st1 := ga(st)
		b, st2 := gb(st1)
		c, st3 := gc(st2)
		return f(a, b, c), st3
	}
}

// Collect runs any number of same-typed generators in argument order,
// threading state left to right, and yields their values as a slice. It is
// the arbitrary-arity companion to Map2 and Map3 for homogeneous element
// types.
func Collect[T any](gens ...Generator[T]) Generator[[]T] {
	return func(st stream.State) ([]T, stream.State) {
		out := make([]T, len(gens))
		for i, g := range gens {
			out[i], st = g(st)
		}
		return out, st
	}
}

// Then is monadic bind: it runs g, feeds the produced value to f to obtain
// the next generator, and runs that against the advanced state. This lets a
// later generator's shape depend on an earlier generator's drawn value.
func Then[T, U any](g Generator[T], f func(T) Generator[U]) Generator[U] {
	return func(st stream.State) (U, stream.State) {
		v, next := g(st)
		return f(v)(next)
	}
}

// Float generates a uniform float64 in [0, 1).
func Float() Generator[float64] {
	return func(st stream.State) (float64, stream.State) {
		return st.Float64()
	}
}

// Int generates a uniform int in [0, bound). Panics with ErrInvalidBound if
// bound < 1.
func Int(bound int) Generator[int] {
	if bound < 1 {
		panic(ErrInvalidBound)
	}
	return func(st stream.State) (int, stream.State) {
		return st.Intn(bound)
	}
}

// Bool generates true or false with equal probability, defined as a float
// draw compared against 0.5.
func Bool() Generator[bool] {
	return Map(Float(), func(r float64) bool { return r < 0.5 })
}

// ListOf generates a slice of exactly length values from elem, drawn
// sequentially with the state threaded through each draw. length of 0 yields
// an empty slice. Panics with ErrNegativeLength if length < 0.
func ListOf[T any](elem Generator[T], length int) Generator[[]T] {
	if length < 0 {
		panic(ErrNegativeLength)
	}
	return func(st stream.State) ([]T, stream.State) {
		out := make([]T, length)
		for i := range out {
			out[i], st = elem(st)
		}
		return out, st
	}
}

// Shuffle generates a uniformly random permutation of items. The input
// slice is never modified; each run returns a fresh slice with the same
// length and the same multiset of elements. Panics with ErrEmptyItems if
// items is empty.
func Shuffle[T any](items []T) Generator[[]T] {
	if len(items) == 0 {
		panic(ErrEmptyItems)
	}
	fixed := make([]T, len(items))
	copy(fixed, items)
	return func(st stream.State) ([]T, stream.State) {
		out := make([]T, len(fixed))
		copy(out, fixed)
		// Fisher–Yates; each prefix draw is uniform, so the resulting
		// permutation is uniform over all n! orderings.
		for i := len(out) - 1; i > 0; i-- {
			var j int
			j, st = st.Intn(i + 1)
			out[i], out[j] = out[j], out[i]
		}
		return out, st
	}
}

// OneOf generates a uniformly selected element of items. Panics with
// ErrEmptyItems if items is empty.
func OneOf[T any](items []T) Generator[T] {
	if len(items) == 0 {
		panic(ErrEmptyItems)
	}
	fixed := make([]T, len(items))
	copy(fixed, items)
	return func(st stream.State) (T, stream.State) {
		i, next := st.Intn(len(fixed))
		return fixed[i], next
	}
}

// RunWithSeed seeds a fresh stream state, runs g against it once, discards
// the final state and returns the value. It never fails on its own; a panic
// raised by a user-supplied combinator function propagates to the caller.
func RunWithSeed[T any](g Generator[T], seed int64) T {
	v, _ := g(stream.Seed(seed))
	return v
}
