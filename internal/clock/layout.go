package clock

import (
	"image/draw"
	"strings"
	"time"

	"periph.io/x/devices/v3/ssd1306/image1bit"

	"github.com/flavioheleno/ledclock/internal/config"
	"github.com/flavioheleno/ledclock/internal/font"
)

// Fixed geometry of the time block: 1 px gaps around a 1 px colon column.
const (
	timeGap = 1
	colonW  = 1
)

// splitClock splits "HH:MM" on the colon; formats without one fall back to a
// fixed slicing heuristic.
func splitClock(s string) (hh, mm string) {
	if h, m, ok := strings.Cut(s, ":"); ok {
		return h, m
	}
	if len(s) < 4 {
		return "88", "88"
	}
	return s[:2], s[len(s)-2:]
}

// timeWidth is the total pixel width of the rendered time block.
func timeWidth(f *font.Font, hh, mm string) int {
	wh, _ := f.Extent(hh)
	wm, _ := f.Extent(mm)
	return wh + timeGap + colonW + timeGap + wm
}

// drawTime renders right-aligned HH:MM with the custom two-dot colon.
//
// leftReserved pixels on the left belong to the temperature widget; if the
// reservation would push the time off-screen it is shrunk so the time always
// fits and never shifts because of it. blink suppresses the colon dots.
// offset shifts the whole block right, used by the swipe animation.
func drawTime(img draw.Image, f *font.Font, timestr string, blink bool, leftReserved, colonVGap, offset int) {
	bounds := img.Bounds()
	hh, mm, ok := strings.Cut(timestr, ":")
	if !ok {
		hh, mm = "88", "88"
	}

	wh, h := f.Extent(hh)
	wTime := timeWidth(f, hh, mm)

	if leftReserved+wTime > bounds.Dx() {
		leftReserved = max(0, bounds.Dx()-wTime)
	}

	x0 := max(0, bounds.Dx()-(leftReserved+wTime)) + offset
	y := max(0, (bounds.Dy()-h)/2)

	f.Draw(img, x0+leftReserved, y, hh)

	// Colon: two dots in one column, vertically separated by colonVGap.
	cx := x0 + leftReserved + wh + timeGap
	if !blink {
		t1 := y + max(0, (h-1-colonVGap)/2)
		t2 := min(y+h-1, t1+colonVGap)
		img.Set(cx, t1, image1bit.On)
		img.Set(cx, t2, image1bit.On)
	}

	f.Draw(img, cx+colonW+timeGap, y, mm)
}

// tempLayout picks the temperature text and the pixel width reserved for it
// on the left. The text is empty when the widget is disabled, doesn't fit, or
// space is too tight for even one glyph.
func tempLayout(cfg config.Config, width, wTime int, reading string) (txt string, reserved int) {
	leftMax := max(0, width-wTime)
	if !cfg.DrawTemp || leftMax < 3 {
		return "", 0
	}

	wBare, _ := font.Small.Extent(reading)
	withUnit := reading + "C"
	wUnit, _ := font.Small.Extent(withUnit)

	switch {
	case cfg.TempShowC && wUnit <= leftMax:
		txt = withUnit
	case wBare <= leftMax:
		txt = reading
	default:
		return "", 0
	}

	w, _ := font.Small.Extent(txt)
	return txt, min(leftMax, w)
}

// drawTemp renders the temperature widget at the left edge, vertically
// centered.
func drawTemp(img draw.Image, txt string) {
	if txt == "" {
		return
	}
	y0 := (img.Bounds().Dy() - font.Small.Height()) / 2
	font.Small.Draw(img, 0, y0, txt)
}

// drawSecondsBar fills the bottom row proportionally to the elapsed part of
// the current minute, including the sub-second fraction.
func drawSecondsBar(img draw.Image, now time.Time, dotted bool) {
	bounds := img.Bounds()
	frac := (float64(now.Second()) + float64(now.Nanosecond())/1e9) / 60.0
	filled := int(frac * float64(bounds.Dx()))

	y := bounds.Dy() - 1
	step := 1
	if dotted {
		step = 2
	}
	for x := 0; x < filled; x += step {
		img.Set(x, y, image1bit.On)
	}
}
