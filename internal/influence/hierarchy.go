package influence

import (
	"math"
	"sort"
)

// containmentSamples is how many vertices of a candidate child loop are
// ray-cast against a potential parent. Loops out of the stitcher do not
// self-intersect, so a small majority vote is sufficient and cheap.
const containmentSamples = 3

// nestedLoop is one stitched loop annotated with its place in the global
// containment hierarchy. Parent search runs across the loops of every
// faction, because a hole in one faction's region is frequently another
// faction's territory.
type nestedLoop struct {
	factionID string
	loop      ContourLoop
	area      float64
	parent    int // index into the loop slice, or noParent
	depth     int // nesting depth; even = filled outer, odd = hole
}

const noParent = -1

// loopArea returns the absolute area of a loop via the shoelace formula.
func loopArea(loop ContourLoop) float64 {
	sum := 0.0
	j := len(loop) - 1
	for i := range loop {
		sum += loop[j].X*loop[i].Y - loop[i].X*loop[j].Y
		j = i
	}
	return math.Abs(sum) / 2
}

// pointInLoop tests containment with a standard even-odd ray cast.
func pointInLoop(loop ContourLoop, p Point) bool {
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

// loopContains reports whether outer contains child, judged by ray-casting
// a small evenly spaced sample of child's vertices and taking the majority.
func loopContains(outer, child ContourLoop) bool {
	n := containmentSamples
	if len(child) < n {
		n = len(child)
	}
	stride := len(child) / n
	inside := 0
	for i := 0; i < n; i++ {
		if pointInLoop(outer, child[i*stride]) {
			inside++
		}
	}
	return inside*2 > n
}

// buildHierarchy assigns every loop its immediate parent (the smallest-area
// loop that contains it) and its nesting depth. Depth parity follows
// standard even-odd polygon semantics: even depths fill, odd depths cut
// holes, and an island inside a hole fills again.
func buildHierarchy(loops []nestedLoop) {
	for i := range loops {
		best := noParent
		bestArea := math.Inf(1)
		for j := range loops {
			if i == j || loops[j].area <= loops[i].area {
				continue
			}
			if loops[j].area < bestArea && loopContains(loops[j].loop, loops[i].loop) {
				best = j
				bestArea = loops[j].area
			}
		}
		loops[i].parent = best
	}

	// Depth follows parent chains. Processing in descending area order
	// guarantees a parent's depth is final before its children ask for it.
	order := make([]int, len(loops))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return loops[order[a]].area > loops[order[b]].area
	})
	for _, i := range order {
		if loops[i].parent == noParent {
			loops[i].depth = 0
		} else {
			loops[i].depth = loops[loops[i].parent].depth + 1
		}
	}
}

// assembleShapes turns the annotated loop set into per-faction territory
// shapes: every even-depth loop becomes a filled outer boundary, and each
// odd-depth loop attaches as a hole to its immediate parent. A hole whose
// parent belongs to a different faction indicates a stitching artifact; it
// is dropped and logged by the caller rather than misattributed.
func assembleShapes(loops []nestedLoop) (map[string][]TerritoryShape, []int) {
	shapeIndex := make(map[int]int, len(loops)) // loop index -> shape slot
	shapes := make(map[string][]TerritoryShape)
	var orphans []int

	// Outers first so holes always find their shape slot.
	for i := range loops {
		if loops[i].depth%2 != 0 {
			continue
		}
		shapes[loops[i].factionID] = append(shapes[loops[i].factionID], TerritoryShape{
			Outer: loops[i].loop,
		})
		shapeIndex[i] = len(shapes[loops[i].factionID]) - 1
	}
	for i := range loops {
		if loops[i].depth%2 == 0 {
			continue
		}
		parent := loops[i].parent
		if parent == noParent || loops[parent].factionID != loops[i].factionID {
			orphans = append(orphans, i)
			continue
		}
		slot := shapeIndex[parent]
		fs := shapes[loops[parent].factionID]
		fs[slot].Holes = append(fs[slot].Holes, loops[i].loop)
	}
	return shapes, orphans
}
