package influence

import (
	"image/color"
	"testing"
)

func TestFactionColorStable(t *testing.T) {
	first := factionColor("azure", nil)
	for i := 0; i < 10; i++ {
		if got := factionColor("azure", nil); got != first {
			t.Fatalf("colour changed between calls: %v vs %v", got, first)
		}
	}
	if first.A != 255 {
		t.Errorf("derived colour must be opaque, got alpha %d", first.A)
	}
}

func TestFactionColorDistinguishesIDs(t *testing.T) {
	// Not a guarantee for arbitrary ids, but these well-known ones must
	// not collide or the map would be unreadable.
	a := factionColor("azure", nil)
	b := factionColor("crimson", nil)
	if a == b {
		t.Errorf("azure and crimson derived the same colour %v", a)
	}
}

func TestFactionColorOverride(t *testing.T) {
	want := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	overrides := map[string]color.RGBA{"azure": want}

	if got := factionColor("azure", overrides); got != want {
		t.Errorf("override ignored: got %v, want %v", got, want)
	}
	// Other factions still derive from the hash.
	if got := factionColor("crimson", overrides); got == want {
		t.Error("non-overridden faction received the override colour")
	}
}

func TestHSVToRGB(t *testing.T) {
	// Hue 0 at full saturation/value is pure red.
	if got := hsvToRGB(0, 1, 1); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("hsvToRGB(0,1,1) = %v, want pure red", got)
	}
	// Zero saturation is grey regardless of hue.
	grey := hsvToRGB(200, 0, 0.5)
	if grey.R != grey.G || grey.G != grey.B {
		t.Errorf("zero saturation should be grey, got %v", grey)
	}
}
