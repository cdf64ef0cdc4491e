package influence

import (
	"errors"
	"fmt"
	"image/color"
)

// Tuning defaults and policy constants. These are the knobs the original
// map tool exposed; everything else in the pipeline derives from them.
const (
	// DefaultCellSize is the default dominance grid resolution in map
	// units. Smaller cells give more accurate contours at O(rows*cols*sources)
	// sampling cost.
	DefaultCellSize = 10.0

	// DefaultContourThreshold is the field level at which territory
	// boundaries are drawn. 0.3 is deliberately conservative so that
	// equal-strength borders between adjacent factions do not produce
	// overlapping contours.
	DefaultContourThreshold = 0.3

	// DefaultBoundaryPadding is the margin added around the union of all
	// source discs when sizing the grid, so boundary contours never touch
	// the grid edge.
	DefaultBoundaryPadding = 20.0

	// StitchEpsilonCells scales the grid cell size into the endpoint
	// matching distance used when chaining segments into loops. Segments
	// whose endpoints fall within 1.5 cells of a chain's open end are
	// considered connected.
	StitchEpsilonCells = 1.5

	// interpEpsilon guards the edge-crossing interpolation against
	// division blow-up when two corner values are nearly equal; below it
	// the crossing falls back to the edge midpoint.
	interpEpsilon = 1e-9
)

// ErrConfiguration marks a programming or configuration mistake (as opposed
// to bad user data, which is filtered silently). Callers can detect it with
// errors.Is.
var ErrConfiguration = errors.New("influence: invalid configuration")

// Options configures one Compute call.
type Options struct {
	// CellSize is the dominance grid resolution in map units. Must be > 0.
	CellSize float64

	// ContourThreshold is the marching-squares iso level. Must lie in (0,1);
	// it is compared against fields whose per-source maximum is Power.
	ContourThreshold float64

	// BoundaryPadding is the extra margin around the auto-computed bounding
	// box. Must be >= 0.
	BoundaryPadding float64

	// DebugMode additionally emits each source's raw radius circle as a
	// diagnostic shape. It never alters the primary output.
	DebugMode bool

	// ColorOverrides maps faction ids to explicit display colours,
	// bypassing the hash-derived default for those factions.
	ColorOverrides map[string]color.RGBA
}

// DefaultOptions returns an Options populated with the package defaults.
func DefaultOptions() Options {
	return Options{
		CellSize:         DefaultCellSize,
		ContourThreshold: DefaultContourThreshold,
		BoundaryPadding:  DefaultBoundaryPadding,
	}
}

// Validate fails fast on configuration mistakes. Unlike degenerate sources,
// a bad option set would silently produce a misleading empty or malformed
// render, so it is treated as an error.
func (o Options) Validate() error {
	if o.CellSize <= 0 {
		return fmt.Errorf("%w: cell size must be positive, got %g", ErrConfiguration, o.CellSize)
	}
	if o.ContourThreshold <= 0 || o.ContourThreshold >= 1 {
		return fmt.Errorf("%w: contour threshold must lie in (0,1), got %g", ErrConfiguration, o.ContourThreshold)
	}
	if o.BoundaryPadding < 0 {
		return fmt.Errorf("%w: boundary padding must be non-negative, got %g", ErrConfiguration, o.BoundaryPadding)
	}
	return nil
}

// stitchEpsilon is the endpoint matching distance for this option set.
func (o Options) stitchEpsilon() float64 {
	return StitchEpsilonCells * o.CellSize
}
