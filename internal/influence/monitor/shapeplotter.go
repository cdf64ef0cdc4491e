// Package monitor renders computed territory results for visual
// inspection. Nothing here feeds back into the compute pipeline; both
// outputs are diagnostic artifacts written to local files.
package monitor

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/wardmap-data/influence.map/internal/influence"
)

// Plot output defaults.
const (
	// plotSize is the rendered width and height. Territory maps are kept
	// square so map distances read the same on both axes.
	plotSize = 20 * vg.Centimeter

	// fillAlpha softens territory fills so overlapping debug circles and
	// grid artifacts stay visible underneath.
	fillAlpha = 96

	// circleSteps is the segment count used to approximate debug radius
	// circles.
	circleSteps = 64
)

// ShapePlotter renders a Result to an image file using gonum/plot. The
// output format follows the file extension (.png, .svg, .pdf).
type ShapePlotter struct {
	// Title is the plot heading; empty means "Territory Map".
	Title string
}

// Save renders every faction's shapes (and any debug circles) to outPath.
func (sp *ShapePlotter) Save(res *influence.Result, outPath string) error {
	p := plot.New()
	p.Title.Text = sp.Title
	if p.Title.Text == "" {
		p.Title.Text = "Territory Map"
	}
	p.X.Label.Text = "X (map units)"
	p.Y.Label.Text = "Y (map units)"

	for _, faction := range res.Factions {
		for _, shape := range faction.Shapes {
			rings := make([]plotter.XYer, 0, 1+len(shape.Holes))
			rings = append(rings, loopXYs(shape.Outer))
			for _, hole := range shape.Holes {
				rings = append(rings, loopXYs(hole))
			}

			poly, err := plotter.NewPolygon(rings...)
			if err != nil {
				return fmt.Errorf("failed to build polygon for faction %s: %w", faction.FactionID, err)
			}
			poly.Color = withAlpha(faction.Color, fillAlpha)
			poly.LineStyle.Color = faction.Color
			p.Add(poly)
		}
	}

	for _, dc := range res.DebugCircles {
		line, err := plotter.NewLine(circleXYs(dc.Center, dc.Radius))
		if err != nil {
			return fmt.Errorf("failed to build debug circle: %w", err)
		}
		line.LineStyle.Color = color.RGBA{R: 128, G: 128, B: 128, A: 255}
		line.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
		p.Add(line)
	}

	if err := p.Save(plotSize, plotSize, outPath); err != nil {
		return fmt.Errorf("failed to save territory plot: %w", err)
	}
	return nil
}

// loopXYs converts a contour loop to plot coordinates, repeating the first
// point so the drawn ring closes visually.
func loopXYs(loop influence.ContourLoop) plotter.XYs {
	xys := make(plotter.XYs, 0, len(loop)+1)
	for _, pt := range loop {
		xys = append(xys, plotter.XY{X: pt.X, Y: pt.Y})
	}
	if len(loop) > 0 {
		xys = append(xys, plotter.XY{X: loop[0].X, Y: loop[0].Y})
	}
	return xys
}

// circleXYs samples a circle outline for debug rendering.
func circleXYs(center influence.Point, radius float64) plotter.XYs {
	xys := make(plotter.XYs, 0, circleSteps+1)
	for i := 0; i <= circleSteps; i++ {
		theta := 2 * math.Pi * float64(i) / circleSteps
		xys = append(xys, plotter.XY{
			X: center.X + radius*math.Cos(theta),
			Y: center.Y + radius*math.Sin(theta),
		})
	}
	return xys
}

// withAlpha returns the colour with its alpha channel replaced.
func withAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}
