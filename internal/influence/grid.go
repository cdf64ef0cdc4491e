package influence

import (
	"context"
	"math"
	"sort"
)

// bounds is an axis-aligned bounding box in map coordinates.
type bounds struct {
	minX, minY float64
	maxX, maxY float64
}

// sourceBounds returns the union of every source's influence disc, expanded
// by padding on all sides, so boundary effects never touch the grid edge.
func sourceBounds(sources []Source, padding float64) bounds {
	b := bounds{
		minX: math.Inf(1), minY: math.Inf(1),
		maxX: math.Inf(-1), maxY: math.Inf(-1),
	}
	for _, s := range sources {
		b.minX = math.Min(b.minX, s.X-s.Radius)
		b.minY = math.Min(b.minY, s.Y-s.Radius)
		b.maxX = math.Max(b.maxX, s.X+s.Radius)
		b.maxY = math.Max(b.maxY, s.Y+s.Radius)
	}
	b.minX -= padding
	b.minY -= padding
	b.maxX += padding
	b.maxY += padding
	return b
}

// dominanceGrid holds one sampling pass over the bounding region: per node,
// which faction won and with what aggregate strength. The grid is ephemeral;
// it exists only between sampling and contour extraction within one Compute
// call and holds no per-faction strength history.
type dominanceGrid struct {
	origin   Point
	cellSize float64
	cols     int
	rows     int

	// factions lists the participating faction ids in ascending order.
	// winner stores an index into factions per node, or unclaimed.
	factions []string
	winner   []int
	strength []float64
}

// unclaimed marks a node where every faction's aggregate strength is zero.
const unclaimed = -1

// groupByFaction buckets valid sources per faction id and returns the
// sorted list of participating faction ids. The map is rebuilt from scratch
// on every compute call; it is never incrementally mutated.
func groupByFaction(sources []Source) (map[string][]Source, []string) {
	byFaction := make(map[string][]Source)
	for _, s := range sources {
		byFaction[s.FactionID] = append(byFaction[s.FactionID], s)
	}
	ids := make([]string, 0, len(byFaction))
	for id := range byFaction {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return byFaction, ids
}

// buildDominanceGrid samples every node of a regular grid over the padded
// bounding box of the given sources and records the winning faction and its
// strength at each node.
//
// Dominance ties are broken deterministically in favour of the
// lexicographically smallest faction id: factions are scanned in ascending
// id order and a later faction must be strictly stronger to displace the
// current winner.
//
// The context is checked between grid rows; a cancelled context aborts the
// pass and returns ctx.Err() with no partial grid.
func buildDominanceGrid(ctx context.Context, sources []Source, opts Options) (*dominanceGrid, error) {
	byFaction, ids := groupByFaction(sources)

	b := sourceBounds(sources, opts.BoundaryPadding)
	cols := int(math.Ceil((b.maxX-b.minX)/opts.CellSize)) + 1
	rows := int(math.Ceil((b.maxY-b.minY)/opts.CellSize)) + 1

	g := &dominanceGrid{
		origin:   Point{X: b.minX, Y: b.minY},
		cellSize: opts.CellSize,
		cols:     cols,
		rows:     rows,
		factions: ids,
		winner:   make([]int, cols*rows),
		strength: make([]float64, cols*rows),
	}

	for row := 0; row < rows; row++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for col := 0; col < cols; col++ {
			p := g.nodePos(col, row)
			best := unclaimed
			bestStrength := 0.0
			for fi, id := range ids {
				v := factionStrength(byFaction[id], p)
				if v > bestStrength {
					best = fi
					bestStrength = v
				}
			}
			idx := row*cols + col
			g.winner[idx] = best
			g.strength[idx] = bestStrength
		}
	}
	return g, nil
}

// nodePos returns the map-space position of a grid node.
func (g *dominanceGrid) nodePos(col, row int) Point {
	return Point{
		X: g.origin.X + float64(col)*g.cellSize,
		Y: g.origin.Y + float64(row)*g.cellSize,
	}
}

// factionField extracts the single-faction scalar field used as marching
// squares input: the node's winning strength where the faction already
// dominates, zero everywhere else.
//
// Gating by "already won this node" is load-bearing: a faction's raw field
// would leak its contour into a neighbour's dominated region, while the
// gated field keeps contours mutually exclusive by construction except
// where dominance itself changes, which is exactly the shared boundary.
func (g *dominanceGrid) factionField(faction int) []float64 {
	field := make([]float64, len(g.winner))
	for i, w := range g.winner {
		if w == faction {
			field[i] = g.strength[i]
		}
	}
	return field
}
