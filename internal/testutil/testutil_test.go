package testutil

import (
	"errors"
	"testing"

	"github.com/wardmap-data/influence.map/internal/influence"
)

func TestLoopContains(t *testing.T) {
	square := influence.ContourLoop{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}

	if !LoopContains(square, influence.Point{X: 5, Y: 5}) {
		t.Error("centre of square should be inside")
	}
	if LoopContains(square, influence.Point{X: 15, Y: 5}) {
		t.Error("point beyond the right edge should be outside")
	}
	if LoopContains(square, influence.Point{X: -1, Y: -1}) {
		t.Error("point below-left of the square should be outside")
	}
}

func TestAssertHelpers(t *testing.T) {
	// Exercise the passing paths; the failing paths would abort the test.
	AssertNoError(t, nil)
	AssertError(t, errors.New("boom"))
}
