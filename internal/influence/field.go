package influence

import "math"

// sourceStrength returns one source's contribution to the scalar field at p.
// Falloff is quadratic: full Power at the centre, smoothly reaching zero at
// the radius boundary, and exactly zero beyond it. Callers must have
// filtered degenerate sources already.
func sourceStrength(s Source, p Point) float64 {
	dx := p.X - s.X
	dy := p.Y - s.Y
	d2 := dx*dx + dy*dy
	r2 := s.Radius * s.Radius
	if d2 > r2 {
		return 0
	}
	return s.Power * (1 - d2/r2)
}

// factionStrength sums the contributions of one faction's sources at p.
func factionStrength(sources []Source, p Point) float64 {
	total := 0.0
	for _, s := range sources {
		total += sourceStrength(s, p)
	}
	return total
}

// distance returns the Euclidean distance between two points.
func distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
