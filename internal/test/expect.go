// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect functions report a failure with t.Errorf() and let the test
// continue. The Demand functions are fatal and should be used when the value
// being tested is needed by the rest of the test.
package test

import (
	"iter"
	"slices"
	"testing"
)

// ExpectEquality is used to test equality between one value and another.
func ExpectEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) bool {
	t.Helper()
	if v != expectedValue {
		t.Errorf("%sequality test of type %T failed: '%v' does not equal '%v'", id(tags...), v, v, expectedValue)
		return false
	}
	return true
}

// DemandEquality is used to test equality between one value and another. If
// the test fails it is a testing fatality.
func DemandEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) {
	t.Helper()
	if v != expectedValue {
		t.Fatalf("%sequality test of type %T failed: '%v' does not equal '%v'", id(tags...), v, v, expectedValue)
	}
}

// ExpectSuccess tests argument v for a success condition suitable for its
// type. Currently supported types:
//
//	bool -> bool == true
//	error -> error == nil
//
// If v is nil then the test will succeed.
func ExpectSuccess(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	if !expect(t, v) {
		t.Errorf("%sa success value is expected for type %T (%v)", id(tags...), v, v)
		return false
	}
	return true
}

// ExpectFailure tests argument v for a failure condition suitable for its
// type. See ExpectSuccess() for the supported types.
func ExpectFailure(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	if expect(t, v) {
		t.Errorf("%sa failure value is expected for type %T", id(tags...), v)
		return false
	}
	return true
}

// DemandSuccess is the fatal version of ExpectSuccess().
func DemandSuccess(t *testing.T, v any, tags ...any) {
	t.Helper()
	if !expect(t, v) {
		t.Fatalf("%sa success value is demanded for type %T (%v)", id(tags...), v, v)
	}
}

// ExpectSet tests that the sequence yields exactly the expected values, in any
// order. Duplicates in the sequence are a failure.
func ExpectSet[T comparable](t *testing.T, seq iter.Seq[T], expected []T, tags ...any) bool {
	t.Helper()

	var got []T
	seen := make(map[T]bool)
	for v := range seq {
		if seen[v] {
			t.Errorf("%sset test failed: '%v' yielded more than once", id(tags...), v)
			return false
		}
		seen[v] = true
		got = append(got, v)
	}

	want := make(map[T]bool)
	for _, v := range expected {
		want[v] = true
	}

	if len(seen) != len(want) {
		t.Errorf("%sset test failed: got %v, wanted %v", id(tags...), got, expected)
		return false
	}
	for v := range want {
		if !seen[v] {
			t.Errorf("%sset test failed: got %v, wanted %v", id(tags...), got, expected)
			return false
		}
	}
	return true
}

// ExpectSequence tests that the sequence yields exactly the expected values in
// the expected order.
func ExpectSequence[T comparable](t *testing.T, seq iter.Seq[T], expected []T, tags ...any) bool {
	t.Helper()
	got := slices.Collect(seq)
	if !slices.Equal(got, expected) {
		t.Errorf("%ssequence test failed: got %v, wanted %v", id(tags...), got, expected)
		return false
	}
	return true
}

func expect(t *testing.T, v any) bool {
	t.Helper()
	switch v := v.(type) {
	case nil:
		return true
	case bool:
		return v
	case error:
		return v == nil
	default:
		t.Fatalf("unsupported type (%T) for expectation testing", v)
	}
	return false
}
