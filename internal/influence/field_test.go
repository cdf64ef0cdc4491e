package influence

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestSourceStrength(t *testing.T) {
	s := Source{X: 0, Y: 0, Radius: 100, Power: 2, FactionID: "azure"}

	tests := []struct {
		name string
		at   Point
		want float64
	}{
		{"centre carries full power", Point{0, 0}, 2.0},
		{"halfway out", Point{50, 0}, 2 * (1 - 0.25)},
		{"exactly on the radius", Point{100, 0}, 0},
		{"outside the radius", Point{150, 0}, 0},
		{"diagonal inside", Point{30, 40}, 2 * (1 - 0.25)}, // distance 50
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sourceStrength(s, tt.at)
			if !scalar.EqualWithinAbs(got, tt.want, 1e-12) {
				t.Errorf("sourceStrength = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestSourceStrengthNeverNegative(t *testing.T) {
	s := Source{X: 0, Y: 0, Radius: 10, Power: 1}
	for _, d := range []float64{10.0001, 11, 100, 1e6} {
		if got := sourceStrength(s, Point{d, 0}); got != 0 {
			t.Errorf("strength at distance %g = %g, want 0", d, got)
		}
	}
}

func TestFactionStrengthSumsContributions(t *testing.T) {
	sources := []Source{
		{X: -20, Y: 0, Radius: 100, Power: 1, FactionID: "azure"},
		{X: 20, Y: 0, Radius: 100, Power: 1, FactionID: "azure"},
	}
	// Both sources sit 20 units from the origin.
	want := 2 * (1 - 0.04)
	got := factionStrength(sources, Point{0, 0})
	if !scalar.EqualWithinAbs(got, want, 1e-12) {
		t.Errorf("factionStrength = %g, want %g", got, want)
	}
}

func TestDistance(t *testing.T) {
	if got := distance(Point{0, 0}, Point{3, 4}); got != 5 {
		t.Errorf("distance = %g, want 5", got)
	}
}
