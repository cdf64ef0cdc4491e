package influence

import "testing"

func TestStitchLoops_ClosesSquare(t *testing.T) {
	segments := []LineSegment{
		{Point{0, 0}, Point{1, 0}},
		{Point{1, 0}, Point{1, 1}},
		{Point{1, 1}, Point{0, 1}},
		{Point{0, 1}, Point{0, 0}},
	}
	loops := stitchLoops(segments, 0.1)

	if len(loops) != 1 {
		t.Fatalf("got %d loops, want 1", len(loops))
	}
	if len(loops[0]) != 4 {
		t.Errorf("loop has %d points, want 4", len(loops[0]))
	}
}

func TestStitchLoops_OrderAndOrientationIndependent(t *testing.T) {
	// Same square, segments shuffled and some endpoints swapped; the
	// stitcher must flip and reorder as needed.
	segments := []LineSegment{
		{Point{1, 1}, Point{0, 1}},
		{Point{0, 0}, Point{1, 0}},
		{Point{0, 0}, Point{0, 1}}, // reversed
		{Point{1, 1}, Point{1, 0}}, // reversed
	}
	loops := stitchLoops(segments, 0.1)

	if len(loops) != 1 {
		t.Fatalf("got %d loops, want 1", len(loops))
	}
	if len(loops[0]) != 4 {
		t.Errorf("loop has %d points, want 4", len(loops[0]))
	}
}

func TestStitchLoops_JoinsWithinEpsilon(t *testing.T) {
	// Endpoints jittered by less than epsilon must still chain.
	segments := []LineSegment{
		{Point{0, 0}, Point{1, 0}},
		{Point{1.05, 0}, Point{1, 1}},
		{Point{1, 1.05}, Point{0, 1}},
		{Point{0, 1.05}, Point{0.05, 0}},
	}
	loops := stitchLoops(segments, 0.1)

	if len(loops) != 1 {
		t.Fatalf("got %d loops, want 1", len(loops))
	}
}

func TestStitchLoops_DropsDanglingChain(t *testing.T) {
	// An open polyline never closes and must be dropped, not rendered
	// partially.
	segments := []LineSegment{
		{Point{0, 0}, Point{1, 0}},
		{Point{1, 0}, Point{2, 0}},
		{Point{2, 0}, Point{3, 0}},
	}
	if loops := stitchLoops(segments, 0.1); len(loops) != 0 {
		t.Errorf("got %d loops from a dangling chain, want 0", len(loops))
	}
}

func TestStitchLoops_DropsDegenerateLoop(t *testing.T) {
	// Two segments that double back within epsilon would form a 2-point
	// "loop"; degenerate loops must not survive.
	segments := []LineSegment{
		{Point{0, 0}, Point{1, 0}},
		{Point{1, 0}, Point{0.01, 0}},
	}
	if loops := stitchLoops(segments, 0.1); len(loops) != 0 {
		t.Errorf("got %d loops from degenerate input, want 0", len(loops))
	}
}

func TestStitchLoops_MultipleIndependentLoops(t *testing.T) {
	// Two disjoint triangles stitch into two separate loops.
	segments := []LineSegment{
		{Point{0, 0}, Point{1, 0}},
		{Point{1, 0}, Point{0.5, 1}},
		{Point{0.5, 1}, Point{0, 0}},

		{Point{10, 0}, Point{11, 0}},
		{Point{11, 0}, Point{10.5, 1}},
		{Point{10.5, 1}, Point{10, 0}},
	}
	loops := stitchLoops(segments, 0.1)

	if len(loops) != 2 {
		t.Fatalf("got %d loops, want 2", len(loops))
	}
	for i, loop := range loops {
		if len(loop) != 3 {
			t.Errorf("loop %d has %d points, want 3", i, len(loop))
		}
	}
}

func TestStitchLoops_EmptyInput(t *testing.T) {
	if loops := stitchLoops(nil, 0.1); len(loops) != 0 {
		t.Errorf("got %d loops from empty input, want 0", len(loops))
	}
}
