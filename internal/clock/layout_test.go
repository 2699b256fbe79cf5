package clock

import (
	"image"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"periph.io/x/devices/v3/ssd1306/image1bit"

	"github.com/flavioheleno/ledclock/internal/config"
	"github.com/flavioheleno/ledclock/internal/font"
)

func render(f func(img *image1bit.VerticalLSB)) *image1bit.VerticalLSB {
	img := image1bit.NewVerticalLSB(image.Rect(0, 0, 32, 8))
	f(img)
	return img
}

func TestSplitClock(t *testing.T) {
	tests := []struct {
		in       string
		hh, mm   string
	}{
		{"07:05", "07", "05"},
		{"23:59", "23", "59"},
		{"0705", "07", "05"},
		{"8", "88", "88"},
		{"", "88", "88"},
	}
	for _, tt := range tests {
		hh, mm := splitClock(tt.in)
		if hh != tt.hh || mm != tt.mm {
			t.Errorf("splitClock(%q) = (%q, %q), want (%q, %q)", tt.in, hh, mm, tt.hh, tt.mm)
		}
	}
}

func TestDrawTimeRightAligned(t *testing.T) {
	img := render(func(img *image1bit.VerticalLSB) {
		drawTime(img, font.Tiny, "12:34", false, 11, 2, 0)
	})

	// Tiny "12" is 7 px, colon block 3 px, "34" is 7 px: 17 px total,
	// right-aligned means the minutes end at the right edge (x=31).
	if !lit(img, 31, 1) {
		t.Error("rightmost column of minutes not at display edge")
	}
	// Hours start after the reserved area: x0=4, hours at x=15.
	if !lit(img, 16, 1) {
		t.Error("hour digits not at expected column")
	}
	// Colon dots in a single column separated by vgap=2.
	if !lit(img, 23, 2) || !lit(img, 23, 4) {
		t.Error("colon dots not at expected positions")
	}
	if lit(img, 23, 3) {
		t.Error("colon column lit between the two dots")
	}
}

func TestDrawTimeBlinkOnlyTogglesColon(t *testing.T) {
	solid := render(func(img *image1bit.VerticalLSB) {
		drawTime(img, font.Tiny, "12:34", false, 11, 2, 0)
	})
	blink := render(func(img *image1bit.VerticalLSB) {
		drawTime(img, font.Tiny, "12:34", true, 11, 2, 0)
	})

	for y := 0; y < 8; y++ {
		for x := 0; x < 32; x++ {
			a, b := lit(solid, x, y), lit(blink, x, y)
			if a == b {
				continue
			}
			if x != 23 || (y != 2 && y != 4) {
				t.Errorf("blink changed pixel (%d,%d); only the colon may toggle", x, y)
			}
		}
	}
	if lit(blink, 23, 2) || lit(blink, 23, 4) {
		t.Error("colon dots still lit while blinking")
	}
}

func TestDrawTimeReservationNeverShifts(t *testing.T) {
	// However much is reserved on the left, the time stays right-aligned at
	// the same pixels; an oversized reservation is shrunk, never honored at
	// the cost of clipping.
	base := render(func(img *image1bit.VerticalLSB) {
		drawTime(img, font.Tiny, "12:34", false, 0, 2, 0)
	})
	for _, reserved := range []int{5, 11, 15, 20, 100} {
		got := render(func(img *image1bit.VerticalLSB) {
			drawTime(img, font.Tiny, "12:34", false, reserved, 2, 0)
		})
		if diff := cmp.Diff(base.Pix, got.Pix); diff != "" {
			t.Errorf("reserved=%d shifted the time (-base +got):\n%s", reserved, diff)
		}
	}
}

func TestDrawTimeMalformedFallsBack(t *testing.T) {
	img := render(func(img *image1bit.VerticalLSB) {
		drawTime(img, font.Tiny, "nocolon", false, 0, 2, 0)
	})
	want := render(func(img *image1bit.VerticalLSB) {
		drawTime(img, font.Tiny, "88:88", false, 0, 2, 0)
	})
	if diff := cmp.Diff(want.Pix, img.Pix); diff != "" {
		t.Errorf("malformed time not rendered as 88:88 (-want +got):\n%s", diff)
	}
}

func TestTempLayout(t *testing.T) {
	cfg := config.Config{DrawTemp: true, TempShowC: true}
	tests := []struct {
		name         string
		cfg          config.Config
		width, wTime int
		reading      string
		wantTxt      string
		wantReserved int
	}{
		{"unit fits", cfg, 32, 17, "48", "48C", 11},
		{"no unit configured", config.Config{DrawTemp: true}, 32, 17, "48", "48", 7},
		{"unit dropped when tight", cfg, 32, 24, "48", "48", 7},
		{"three digits with unit", cfg, 32, 17, "199", "199C", 15},
		{"nothing fits", cfg, 32, 30, "48", "", 0},
		{"widget disabled", config.Config{}, 32, 17, "48", "", 0},
		{"placeholder", cfg, 32, 17, "--", "--C", 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txt, reserved := tempLayout(tt.cfg, tt.width, tt.wTime, tt.reading)
			if txt != tt.wantTxt || reserved != tt.wantReserved {
				t.Errorf("tempLayout() = (%q, %d), want (%q, %d)", txt, reserved, tt.wantTxt, tt.wantReserved)
			}
		})
	}
}

func TestTempLayoutStableWithinDigitBucket(t *testing.T) {
	// 48 and 51 have the same digit count; the reservation must not move.
	cfg := config.Config{DrawTemp: true, TempShowC: true}
	_, r1 := tempLayout(cfg, 32, 17, "48")
	_, r2 := tempLayout(cfg, 32, 17, "51")
	if r1 != r2 {
		t.Errorf("reservation changed within digit bucket: %d vs %d", r1, r2)
	}
}

func TestDrawSecondsBar(t *testing.T) {
	sec := func(s int, ns int) time.Time {
		return time.Date(2025, 8, 10, 12, 0, s, ns, time.UTC)
	}

	countBottom := func(img *image1bit.VerticalLSB) int {
		n := 0
		for x := 0; x < 32; x++ {
			if lit(img, x, 7) {
				n++
			}
		}
		return n
	}

	empty := render(func(img *image1bit.VerticalLSB) {
		drawSecondsBar(img, sec(0, 0), false)
	})
	if got := countBottom(empty); got != 0 {
		t.Errorf("bar at second 0 has %d pixels, want 0", got)
	}

	half := render(func(img *image1bit.VerticalLSB) {
		drawSecondsBar(img, sec(30, 0), false)
	})
	if got := countBottom(half); got != 16 {
		t.Errorf("bar at second 30 has %d pixels, want 16", got)
	}

	full := render(func(img *image1bit.VerticalLSB) {
		drawSecondsBar(img, sec(59, 999_000_000), false)
	})
	if got := countBottom(full); got != 31 {
		t.Errorf("bar at 59.999 has %d pixels, want 31 (approaching full width)", got)
	}
}

func TestDrawSecondsBarMonotonic(t *testing.T) {
	prev := -1
	for s := 0; s < 60; s++ {
		for _, ns := range []int{0, 500_000_000} {
			img := render(func(img *image1bit.VerticalLSB) {
				drawSecondsBar(img, time.Date(2025, 8, 10, 12, 0, s, ns, time.UTC), false)
			})
			n := 0
			for x := 0; x < 32; x++ {
				if lit(img, x, 7) {
					n++
				}
			}
			if n < prev {
				t.Fatalf("bar shrank within the minute at %d.%ds: %d < %d", s, ns, n, prev)
			}
			prev = n
		}
	}
}

func TestDrawSecondsBarDotted(t *testing.T) {
	img := render(func(img *image1bit.VerticalLSB) {
		drawSecondsBar(img, time.Date(2025, 8, 10, 12, 0, 59, 999_000_000, time.UTC), true)
	})
	for x := 0; x < 31; x++ {
		want := x%2 == 0
		if lit(img, x, 7) != want {
			t.Errorf("dotted bar pixel (%d,7) lit = %v, want %v", x, lit(img, x, 7), want)
		}
	}
}
