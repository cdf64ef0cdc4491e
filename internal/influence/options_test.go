package influence

import (
	"errors"
	"testing"
)

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Options)
		wantErr bool
	}{
		{"defaults are valid", func(o *Options) {}, false},
		{"zero cell size", func(o *Options) { o.CellSize = 0 }, true},
		{"negative cell size", func(o *Options) { o.CellSize = -5 }, true},
		{"zero threshold", func(o *Options) { o.ContourThreshold = 0 }, true},
		{"threshold of one", func(o *Options) { o.ContourThreshold = 1 }, true},
		{"threshold above one", func(o *Options) { o.ContourThreshold = 1.5 }, true},
		{"negative padding", func(o *Options) { o.BoundaryPadding = -1 }, true},
		{"zero padding is fine", func(o *Options) { o.BoundaryPadding = 0 }, false},
		{"small threshold is fine", func(o *Options) { o.ContourThreshold = 0.01 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)
			err := opts.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrConfiguration) {
					t.Errorf("error %v should wrap ErrConfiguration", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestStitchEpsilonScalesWithCellSize(t *testing.T) {
	opts := DefaultOptions()
	opts.CellSize = 4
	if got := opts.stitchEpsilon(); got != 6 {
		t.Errorf("stitchEpsilon = %g, want 6", got)
	}
}
