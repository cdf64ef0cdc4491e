// Package testutil provides shared test utilities and fixtures.
//
// This package centralises common geometric test helpers to reduce code
// duplication across test files and improve test maintainability.
package testutil

import (
	"testing"

	"github.com/wardmap-data/influence.map/internal/influence"
)

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// LoopContains reports whether the loop encloses the point, using an
// even-odd ray cast. Handy for asserting that a computed territory covers
// or excludes specific map positions.
func LoopContains(loop influence.ContourLoop, p influence.Point) bool {
	inside := false
	j := len(loop) - 1
	for i := range loop {
		pi, pj := loop[i], loop[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// OuterLoops flattens a result into every outer loop emitted for the given
// faction, across all of its disjoint shapes.
func OuterLoops(res *influence.Result, factionID string) []influence.ContourLoop {
	ft := res.Faction(factionID)
	if ft == nil {
		return nil
	}
	loops := make([]influence.ContourLoop, 0, len(ft.Shapes))
	for _, s := range ft.Shapes {
		loops = append(loops, s.Outer)
	}
	return loops
}
