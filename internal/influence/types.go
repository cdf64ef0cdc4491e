package influence

import "image/color"

// Point is a position in map coordinates (world units, Y up).
type Point struct {
	X, Y float64
}

// Source is one influence-projecting point object. A source contributes a
// radially decaying scalar field to its faction; the faction with the
// largest aggregate field at a point dominates that point.
//
// Sources are supplied fresh by the caller on every compute and are never
// mutated or retained by this package.
type Source struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Radius    float64 `json:"radius"`    // Influence radius in map units; must be > 0 to count
	Power     float64 `json:"power"`     // Field strength at the source centre; must be > 0 to count
	FactionID string  `json:"factionId"` // Opaque grouping key; compared only for equality and order
}

// Position returns the source centre as a Point.
func (s Source) Position() Point {
	return Point{X: s.X, Y: s.Y}
}

// valid reports whether the source participates in field sampling.
// Degenerate radius or power is normal transient user data (a placed but
// not yet configured object), so invalid sources are filtered, not errors.
func (s Source) valid() bool {
	return s.Radius > 0 && s.Power > 0
}

// LineSegment is one undirected boundary edge emitted by a single
// marching-squares cell classification. Segments carry no orientation;
// the stitcher flips them as needed while chaining.
type LineSegment struct {
	P0, P1 Point
}

// ContourLoop is an ordered closed polyline bounding one connected region.
// The closing edge from the last point back to the first is implicit; the
// first point is not repeated at the end. Loops with fewer than 3 points
// are degenerate and never leave the stitcher.
type ContourLoop []Point

// TerritoryShape is the final per-region output for one faction: a filled
// outer boundary plus zero or more hole loops cut from its interior.
type TerritoryShape struct {
	Outer ContourLoop
	Holes []ContourLoop
}

// FactionTerritory groups everything emitted for one faction: its resolved
// display colour and every disjoint territory shape it controls.
type FactionTerritory struct {
	FactionID string
	Color     color.RGBA
	Shapes    []TerritoryShape
}

// DebugCircle is a diagnostic shape emitted only in debug mode: one
// source's raw influence radius, before any field maths. It has no effect
// on the primary output.
type DebugCircle struct {
	Center    Point
	Radius    float64
	FactionID string
}

// Result is the complete output of one Compute call. Factions appear in
// ascending FactionID order so repeated runs over the same input produce
// identical output. The caller owns the result; the next Compute call
// builds a fresh one rather than patching this one.
type Result struct {
	Factions []FactionTerritory

	// DebugCircles is populated only when Options.DebugMode is set.
	DebugCircles []DebugCircle
}

// Faction returns the territory entry for the given faction id, or nil if
// the faction controls no territory in this result.
func (r *Result) Faction(factionID string) *FactionTerritory {
	for i := range r.Factions {
		if r.Factions[i].FactionID == factionID {
			return &r.Factions[i]
		}
	}
	return nil
}
