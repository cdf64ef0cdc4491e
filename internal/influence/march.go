package influence

import "math"

// marchSegments runs marching squares over one faction's gated field and
// returns the unordered bag of boundary segments where the field crosses
// the threshold. Cells fully inside or fully outside contribute nothing.
//
// Corner bit layout per 2x2 cell, with (x0,y0) the lower-left node:
//
//	c --- d        bit 0: a >= threshold
//	|     |        bit 1: b >= threshold
//	a --- b        bit 2: c >= threshold
//	               bit 3: d >= threshold
//
// The two checkerboard codes (6 and 9, opposite corners above threshold)
// are genuinely ambiguous; they are resolved by always emitting two
// independent diagonal segments. That slightly over-connects the contour
// at exact field saddle points, which continuous source data essentially
// never produces.
func marchSegments(g *dominanceGrid, field []float64, threshold float64) []LineSegment {
	var segs []LineSegment

	for row := 0; row < g.rows-1; row++ {
		for col := 0; col < g.cols-1; col++ {
			va := field[row*g.cols+col]
			vb := field[row*g.cols+col+1]
			vc := field[(row+1)*g.cols+col]
			vd := field[(row+1)*g.cols+col+1]

			code := 0
			if va >= threshold {
				code |= 1
			}
			if vb >= threshold {
				code |= 2
			}
			if vc >= threshold {
				code |= 4
			}
			if vd >= threshold {
				code |= 8
			}
			if code == 0 || code == 15 {
				continue
			}

			pa := g.nodePos(col, row)
			pb := g.nodePos(col+1, row)
			pc := g.nodePos(col, row+1)
			pd := g.nodePos(col+1, row+1)

			// Threshold crossings on the four cell edges. Only the
			// edges named by the case below are ever evaluated with
			// mixed-sign corners, so the interpolation stays in range.
			bottom := func() Point { return edgeCrossing(pa, pb, va, vb, threshold) }
			top := func() Point { return edgeCrossing(pc, pd, vc, vd, threshold) }
			left := func() Point { return edgeCrossing(pa, pc, va, vc, threshold) }
			right := func() Point { return edgeCrossing(pb, pd, vb, vd, threshold) }

			switch code {
			case 1:
				segs = appendSegment(segs, left(), bottom())
			case 2:
				segs = appendSegment(segs, bottom(), right())
			case 3:
				segs = appendSegment(segs, left(), right())
			case 4:
				segs = appendSegment(segs, top(), left())
			case 5:
				segs = appendSegment(segs, top(), bottom())
			case 6:
				// Saddle: b and c inside. Two diagonal connections.
				segs = appendSegment(segs, bottom(), right())
				segs = appendSegment(segs, top(), left())
			case 7:
				segs = appendSegment(segs, top(), right())
			case 8:
				segs = appendSegment(segs, right(), top())
			case 9:
				// Saddle: a and d inside. Two diagonal connections.
				segs = appendSegment(segs, left(), bottom())
				segs = appendSegment(segs, right(), top())
			case 10:
				segs = appendSegment(segs, bottom(), top())
			case 11:
				segs = appendSegment(segs, left(), top())
			case 12:
				segs = appendSegment(segs, right(), left())
			case 13:
				segs = appendSegment(segs, bottom(), right())
			case 14:
				segs = appendSegment(segs, left(), bottom())
			}
		}
	}
	return segs
}

// edgeCrossing finds where the field crosses the threshold along the cell
// edge from p0 (value v0) to p1 (value v1) by linear interpolation. When
// the corner values are nearly equal the midpoint is used instead, which
// avoids division blow-up without visibly moving the contour.
func edgeCrossing(p0, p1 Point, v0, v1, threshold float64) Point {
	t := 0.5
	if math.Abs(v1-v0) >= interpEpsilon {
		t = (threshold - v0) / (v1 - v0)
	}
	return Point{
		X: p0.X + t*(p1.X-p0.X),
		Y: p0.Y + t*(p1.Y-p0.Y),
	}
}

// appendSegment adds a boundary segment, dropping zero-length degenerates
// that arise when two crossings coincide at a cell corner.
func appendSegment(segs []LineSegment, p0, p1 Point) []LineSegment {
	if p0 == p1 {
		return segs
	}
	return append(segs, LineSegment{P0: p0, P1: p1})
}
