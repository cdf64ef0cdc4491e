package influence

import (
	"hash/fnv"
	"image/color"
	"math"
)

// Display colour derivation constants. Saturation and value are fixed so
// every derived faction colour sits in the same readable band; only the
// hue varies with the faction id.
const (
	colorSaturation = 0.65
	colorValue      = 0.90
)

// factionColor resolves the display colour for a faction: an explicit
// override wins, otherwise a stable hash of the faction id picks a hue.
// The same id always maps to the same colour across runs and processes.
func factionColor(factionID string, overrides map[string]color.RGBA) color.RGBA {
	if c, ok := overrides[factionID]; ok {
		return c
	}
	h := fnv.New32a()
	h.Write([]byte(factionID))
	hue := float64(h.Sum32() % 360)
	return hsvToRGB(hue, colorSaturation, colorValue)
}

// hsvToRGB converts hue (degrees), saturation and value in [0,1] to an
// opaque RGBA colour.
func hsvToRGB(h, s, v float64) color.RGBA {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return color.RGBA{
		R: uint8((r + m) * 255),
		G: uint8((g + m) * 255),
		B: uint8((b + m) * 255),
		A: 255,
	}
}
