package influence

// stitchLoops joins an unordered segment bag into closed contour loops.
//
// The algorithm is greedy: pop one unused segment to start a chain, then
// repeatedly scan the pool for a segment with an endpoint within epsilon of
// the chain's open end, orienting and appending it. A chain closes once its
// open end falls back within epsilon of its start.
//
// Loops shorter than 3 points are dropped as degenerate. Chains that never
// close (floating-point noise, pathological field shapes) are dropped
// rather than rendered partially; the next recompute starts from scratch,
// so the loss is bounded to one cycle. Worst case is O(segments^2), which
// is acceptable for the modest grids this package runs on.
func stitchLoops(segments []LineSegment, epsilon float64) []ContourLoop {
	used := make([]bool, len(segments))
	var loops []ContourLoop

	for start := range segments {
		if used[start] {
			continue
		}
		used[start] = true
		chain := []Point{segments[start].P0, segments[start].P1}

		for {
			end := chain[len(chain)-1]
			if len(chain) > 3 && distance(end, chain[0]) <= epsilon {
				// Closed; the implicit closing edge replaces the
				// near-coincident final point.
				loops = append(loops, ContourLoop(chain[:len(chain)-1]))
				break
			}

			next, flipped := findConnecting(segments, used, end, epsilon)
			if next < 0 {
				// Dangling chain; drop it.
				break
			}
			used[next] = true
			p := segments[next].P1
			if flipped {
				p = segments[next].P0
			}
			chain = append(chain, p)
		}
	}
	return loops
}

// findConnecting scans the pool for an unused segment with an endpoint
// within epsilon of end. It returns the segment index and whether the
// segment must be flipped to extend the chain, or -1 if none connects.
func findConnecting(segments []LineSegment, used []bool, end Point, epsilon float64) (int, bool) {
	for i, seg := range segments {
		if used[i] {
			continue
		}
		if distance(seg.P0, end) <= epsilon {
			return i, false
		}
		if distance(seg.P1, end) <= epsilon {
			return i, true
		}
	}
	return -1, false
}
