package monitor

import (
	"fmt"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/wardmap-data/influence.map/internal/influence"
)

// RenderHTML writes an interactive scatter view of the territory outlines
// to an HTML file: one series per faction, coloured with the faction's
// resolved display colour. This is a quick visual check of the contour
// output without any rendering frontend.
func RenderHTML(res *influence.Result, title, outPath string) error {
	// Symmetric axis ranges keep the plot square so territory proportions
	// are not distorted.
	maxAbs := 1.0
	for _, faction := range res.Factions {
		for _, shape := range faction.Shapes {
			for _, loop := range append([]influence.ContourLoop{shape.Outer}, shape.Holes...) {
				for _, pt := range loop {
					if v := math.Abs(pt.X); v > maxAbs {
						maxAbs = v
					}
					if v := math.Abs(pt.Y); v > maxAbs {
						maxAbs = v
					}
				}
			}
		}
	}
	pad := maxAbs * 1.05

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Theme: "dark", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("factions=%d", len(res.Factions))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Min: -pad, Max: pad, Name: "X", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Min: -pad, Max: pad, Name: "Y", NameLocation: "middle", NameGap: 30}),
	)

	for _, faction := range res.Factions {
		var data []opts.ScatterData
		for _, shape := range faction.Shapes {
			for _, loop := range append([]influence.ContourLoop{shape.Outer}, shape.Holes...) {
				for _, pt := range loop {
					data = append(data, opts.ScatterData{Value: []interface{}{pt.X, pt.Y}})
				}
			}
		}
		hex := fmt.Sprintf("#%02x%02x%02x", faction.Color.R, faction.Color.G, faction.Color.B)
		scatter.AddSeries(faction.FactionID, data,
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 4}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: hex}),
		)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create HTML output: %w", err)
	}
	defer f.Close()

	if err := scatter.Render(f); err != nil {
		return fmt.Errorf("failed to render territory chart: %w", err)
	}
	return nil
}
