package render

import (
	"testing"
)

func TestBlendModes(t *testing.T) {
	dst := RGB{100, 100, 100}
	src := RGB{200, 50, 0}

	tests := []struct {
		name string
		got  RGB
		want RGB
	}{
		{"Blend opaque", Blend(dst, src, 1), src},
		{"Blend transparent", Blend(dst, src, 0), dst},
		{"Blend half", Blend(dst, src, 0.5), RGB{150, 75, 50}},
		{"Add clamps", Add(dst, src, 1), RGB{255, 150, 100}},
		{"Max", Max(dst, src, 1), RGB{200, 100, 100}},
		{"Screen black is identity", Screen(dst, RGBBlack, 1), dst},
		{"Screen white saturates", Screen(dst, RGBWhite, 1), RGBWhite},
		{"Scale saturates", Scale(RGB{200, 10, 0}, 2), RGB{255, 20, 0}},
		{"Lerp start", Lerp(dst, src, 0), dst},
		{"Lerp end", Lerp(dst, src, 1), src},
		{"Hex", Hex(0xff4500), RGB{255, 69, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}
