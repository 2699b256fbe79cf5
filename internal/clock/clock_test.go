package clock

import (
	"context"
	"image"
	"image/draw"

	"periph.io/x/devices/v3/ssd1306/image1bit"

	"github.com/flavioheleno/ledclock/internal/config"
)

// fakeDisplay captures every rendered frame and contrast change.
type fakeDisplay struct {
	bounds    image.Rectangle
	frames    []*image1bit.VerticalLSB
	contrasts []byte
	onDraw    func()
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{bounds: image.Rect(0, 0, 32, 8)}
}

func (f *fakeDisplay) Bounds() image.Rectangle { return f.bounds }

func (f *fakeDisplay) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	img := image1bit.NewVerticalLSB(f.bounds)
	draw.Draw(img, dst, src, sp, draw.Src)
	f.frames = append(f.frames, img)
	if f.onDraw != nil {
		f.onDraw()
	}
	return nil
}

func (f *fakeDisplay) SetContrast(level byte) error {
	f.contrasts = append(f.contrasts, level)
	return nil
}

func (f *fakeDisplay) lastFrame() *image1bit.VerticalLSB {
	if len(f.frames) == 0 {
		return nil
	}
	return f.frames[len(f.frames)-1]
}

type fakeTemp struct {
	v  float64
	ok bool
}

func (f fakeTemp) ReadC(ctx context.Context) (float64, bool) { return f.v, f.ok }

func lit(img *image1bit.VerticalLSB, x, y int) bool {
	return img.BitAt(x, y) == image1bit.On
}

func litCount(img *image1bit.VerticalLSB) int {
	n := 0
	b := img.Bounds()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			if lit(img, x, y) {
				n++
			}
		}
	}
	return n
}

// quietConfig disables everything so tests can enable one feature at a time.
func quietConfig() config.Config {
	return config.Config{
		TimeFont:       1,
		TimeFormat:     "15:04",
		ColonVGap:      2,
		TickerFont:     1,
		TickerGap:      16,
		TickerEverySec: 3600,
		TickerWithYear: true,
		DayBrightness:  12,
	}
}
