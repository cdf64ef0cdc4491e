package influence

import (
	"context"

	"github.com/wardmap-data/influence.map/internal/monitoring"
)

// Compute runs the full territory pipeline for one set of sources:
// dominance grid sampling, per-faction contour extraction, segment
// stitching and fill/hole nesting.
//
// The call is synchronous and run-to-completion; the context is consulted
// only between grid rows. The result is a fresh value on every call — there
// is no cache and nothing carries over from previous computations, so a
// recompute after clearing all sources yields an empty result.
//
// Degenerate sources (non-positive radius or power) are filtered silently;
// they are normal transient user data. An empty effective source set is a
// no-op, not an error. Only configuration mistakes (see Options.Validate)
// return an error besides context cancellation.
func Compute(ctx context.Context, sources []Source, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	valid := make([]Source, 0, len(sources))
	for _, s := range sources {
		if s.valid() {
			valid = append(valid, s)
		}
	}
	res := &Result{}
	if len(valid) == 0 {
		return res, nil
	}

	grid, err := buildDominanceGrid(ctx, valid, opts)
	if err != nil {
		return nil, err
	}

	// Trace and stitch each faction's gated field independently; the
	// containment hierarchy then runs across the combined loop set so
	// that one faction's pocket correctly punches a hole in another's
	// region.
	var loops []nestedLoop
	epsilon := opts.stitchEpsilon()
	for fi, factionID := range grid.factions {
		segs := marchSegments(grid, grid.factionField(fi), opts.ContourThreshold)
		for _, loop := range stitchLoops(segs, epsilon) {
			loops = append(loops, nestedLoop{
				factionID: factionID,
				loop:      loop,
				area:      loopArea(loop),
			})
		}
	}

	buildHierarchy(loops)
	shapes, orphans := assembleShapes(loops)
	for _, i := range orphans {
		monitoring.Logf("influence: dropping orphan hole loop for faction %s (area %.1f)",
			loops[i].factionID, loops[i].area)
	}

	for _, factionID := range grid.factions {
		fs := shapes[factionID]
		if len(fs) == 0 {
			continue
		}
		res.Factions = append(res.Factions, FactionTerritory{
			FactionID: factionID,
			Color:     factionColor(factionID, opts.ColorOverrides),
			Shapes:    fs,
		})
	}

	if opts.DebugMode {
		for _, s := range valid {
			res.DebugCircles = append(res.DebugCircles, DebugCircle{
				Center:    s.Position(),
				Radius:    s.Radius,
				FactionID: s.FactionID,
			})
		}
	}
	return res, nil
}
