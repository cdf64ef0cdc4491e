package influence

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// cellGrid builds a minimal 2x2 grid (one marching cell) with unit cell
// size, so field values map directly onto the four corner cases.
func cellGrid() *dominanceGrid {
	return &dominanceGrid{origin: Point{0, 0}, cellSize: 1, cols: 2, rows: 2}
}

func TestMarchSegments_UniformCellsEmitNothing(t *testing.T) {
	g := cellGrid()

	if segs := marchSegments(g, []float64{0, 0, 0, 0}, 0.3); len(segs) != 0 {
		t.Errorf("all-below cell emitted %d segments, want 0", len(segs))
	}
	if segs := marchSegments(g, []float64{1, 1, 1, 1}, 0.3); len(segs) != 0 {
		t.Errorf("all-above cell emitted %d segments, want 0", len(segs))
	}
}

func TestMarchSegments_SingleCorner(t *testing.T) {
	g := cellGrid()

	// Only the lower-left corner is above threshold. The boundary must cut
	// the left and bottom edges at the interpolated crossing t = 0.7.
	segs := marchSegments(g, []float64{1, 0, 0, 0}, 0.3)
	if len(segs) != 1 {
		t.Fatalf("single-corner cell emitted %d segments, want 1", len(segs))
	}

	seg := segs[0]
	wantLeft := Point{0, 0.7}
	wantBottom := Point{0.7, 0}
	if !pointNear(seg.P0, wantLeft, 1e-12) || !pointNear(seg.P1, wantBottom, 1e-12) {
		t.Errorf("segment = %+v, want %v -> %v", seg, wantLeft, wantBottom)
	}
}

func TestMarchSegments_ThresholdIsInclusive(t *testing.T) {
	g := cellGrid()

	// A corner exactly at the threshold counts as inside.
	segs := marchSegments(g, []float64{0.3, 0, 0, 0}, 0.3)
	if len(segs) != 1 {
		t.Fatalf("threshold-valued corner emitted %d segments, want 1", len(segs))
	}
}

func TestMarchSegments_SaddleEmitsTwoDiagonals(t *testing.T) {
	g := cellGrid()

	// Opposite corners above threshold: the ambiguous checkerboard cases
	// must resolve to two independent diagonal segments each.
	for _, field := range [][]float64{
		{1, 0, 0, 1}, // a and d inside
		{0, 1, 1, 0}, // b and c inside
	} {
		segs := marchSegments(g, field, 0.3)
		if len(segs) != 2 {
			t.Errorf("saddle field %v emitted %d segments, want 2", field, len(segs))
		}
	}
}

func TestMarchSegments_AllMixedCasesEmitOneSegment(t *testing.T) {
	g := cellGrid()

	// Every non-uniform, non-saddle code yields exactly one segment.
	for code := 1; code < 15; code++ {
		if code == 6 || code == 9 {
			continue
		}
		field := make([]float64, 4)
		for bit := 0; bit < 4; bit++ {
			if code&(1<<bit) != 0 {
				field[bit] = 1
			}
		}
		segs := marchSegments(g, field, 0.3)
		if len(segs) != 1 {
			t.Errorf("code %d emitted %d segments, want 1", code, len(segs))
		}
	}
}

func TestEdgeCrossing_Interpolation(t *testing.T) {
	p := edgeCrossing(Point{0, 0}, Point{10, 0}, 1, 0, 0.3)
	if !scalar.EqualWithinAbs(p.X, 7, 1e-12) || p.Y != 0 {
		t.Errorf("crossing = %+v, want (7, 0)", p)
	}
}

func TestEdgeCrossing_MidpointFallback(t *testing.T) {
	// Nearly equal corner values must fall back to the midpoint rather
	// than dividing by a vanishing difference.
	p := edgeCrossing(Point{0, 0}, Point{10, 0}, 0.3, 0.3+1e-12, 0.3)
	if !scalar.EqualWithinAbs(p.X, 5, 1e-9) {
		t.Errorf("crossing X = %g, want midpoint 5", p.X)
	}
}

func pointNear(a, b Point, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}
