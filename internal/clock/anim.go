package clock

import (
	"context"
	"image/draw"
	"time"

	"periph.io/x/devices/v3/ssd1306/image1bit"

	"github.com/flavioheleno/ledclock/internal/font"
)

// sparkle flashes full-frame random noise for the configured duration, each
// pixel lit independently with the configured probability. Cancelling ctx
// stops it between frames.
func (l *Loop) sparkle(ctx context.Context) error {
	fps := max(1, l.cfg.SparkleFPS)
	frameDt := time.Second / time.Duration(fps)
	deadline := time.Now().Add(max(l.cfg.SparkleDuration(), 50*time.Millisecond))

	for time.Now().Before(deadline) {
		if ctx.Err() != nil {
			return nil
		}
		err := l.frame(func(img draw.Image) {
			b := img.Bounds()
			for x := 0; x < b.Dx(); x++ {
				for y := 0; y < b.Dy(); y++ {
					if l.rand() < l.cfg.SparkleDensity {
						img.Set(x, y, image1bit.On)
					}
				}
			}
		})
		if err != nil {
			return err
		}
		if !sleep(ctx, frameDt) {
			return nil
		}
	}
	return nil
}

// swipe slides the new time in from a positive horizontal offset down to
// zero while the temperature widget stays put. The colon is kept solid for
// the duration of the slide.
func (l *Loop) swipe(ctx context.Context, timestr, tempTxt string, reserved int) error {
	f := font.ByIndex(l.cfg.TimeFont)
	for dx := max(1, l.cfg.MinuteSwipePx); dx >= 0; dx-- {
		if ctx.Err() != nil {
			return nil
		}
		err := l.frame(func(img draw.Image) {
			drawTemp(img, tempTxt)
			drawTime(img, f, timestr, false, reserved, l.cfg.ColonVGap, dx)
		})
		if err != nil {
			return err
		}
		if !sleep(ctx, l.cfg.MinuteSwipeDelay()) {
			return nil
		}
	}
	return nil
}
