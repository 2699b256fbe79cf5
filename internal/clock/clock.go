// Package clock renders the LED matrix clock: right-aligned time with a
// custom colon, CPU temperature widget, scrolling date ticker, seconds bar,
// day/night brightness scheduling and the hour/minute animations.
package clock

import (
	"context"
	"image"
	"image/draw"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"periph.io/x/devices/v3/ssd1306/image1bit"

	"github.com/flavioheleno/ledclock/internal/config"
	"github.com/flavioheleno/ledclock/internal/font"
	"github.com/flavioheleno/ledclock/internal/sensor"
)

// tick is the base cadence of the render loop.
const tick = 200 * time.Millisecond

// Display is the subset of the max7219 driver the render loop needs.
type Display interface {
	Bounds() image.Rectangle
	Draw(dst image.Rectangle, src image.Image, sp image.Point) error
	SetContrast(level byte) error
}

// TempReader yields CPU temperature readings.
type TempReader interface {
	ReadC(ctx context.Context) (float64, bool)
}

// Loop owns the per-iteration state of the render loop.
type Loop struct {
	cfg  config.Config
	disp Display
	temp TempReader
	log  zerolog.Logger

	// injectable for tests
	now  func() time.Time
	rand func() float64

	brightness    int // current contrast level, -1 before the first apply
	lastDimMinute int // last minute the auto-dim check ran
	lastMinute    int // last minute rendered, drives the swipe
	lastTicker    time.Time
}

// New assembles a render loop. The display must already be initialized.
func New(cfg config.Config, disp Display, temp TempReader, logger zerolog.Logger) *Loop {
	return &Loop{
		cfg:           cfg,
		disp:          disp,
		temp:          temp,
		log:           logger,
		now:           time.Now,
		rand:          rand.Float64,
		brightness:    -1,
		lastDimMinute: -1,
		lastMinute:    -1,
	}
}

// Run drives the display until ctx is cancelled. The display is left as
// drawn; the caller is responsible for clearing it on shutdown.
func (l *Loop) Run(ctx context.Context) error {
	l.applyBrightness(l.now())
	l.lastTicker = l.now()

	for ctx.Err() == nil {
		if err := l.step(ctx, l.now()); err != nil {
			return err
		}
		sleep(ctx, tick)
	}
	return nil
}

// step performs one iteration of the render loop.
func (l *Loop) step(ctx context.Context, now time.Time) error {
	// Auto-dim check once per minute boundary.
	if l.cfg.AutoDim && now.Minute() != l.lastDimMinute {
		l.lastDimMinute = now.Minute()
		l.applyBrightness(now)
	}

	topOfHour := now.Minute() == 0 && now.Second() == 0

	// Hour sparkle at exactly second zero.
	if l.cfg.SparkleOnHour && topOfHour {
		if err := l.sparkle(ctx); err != nil {
			return err
		}
	}

	// Date ticker, skipped when it coincides with the sparkle instant.
	if now.Sub(l.lastTicker) >= l.cfg.TickerEvery() && !topOfHour {
		if err := l.runTicker(ctx, formatDate(now, l.cfg.TickerWithYear)); err != nil {
			return err
		}
		l.lastTicker = l.now()
	}

	s := now.Format(l.cfg.TimeFormat)
	blink := l.cfg.BlinkColon && now.Second()%2 == 1

	// Precompute widths so the time column never jitters while the
	// temperature text stays in the same digit-count bucket.
	f := font.ByIndex(l.cfg.TimeFont)
	hh, mm := splitClock(s)
	wTime := timeWidth(f, hh, mm)

	reading, ok := l.temp.ReadC(ctx)
	tempTxt, reserved := tempLayout(l.cfg, l.disp.Bounds().Dx(), wTime, sensor.Format(reading, ok))

	// Minute-change swipe; the new minute slides in, then the static frame
	// below is still drawn for this iteration.
	if l.cfg.MinuteSwipe && now.Minute() != l.lastMinute {
		if err := l.swipe(ctx, s, tempTxt, reserved); err != nil {
			return err
		}
		l.lastMinute = now.Minute()
	}

	return l.frame(func(img draw.Image) {
		drawTemp(img, tempTxt)
		drawTime(img, f, s, blink, reserved, l.cfg.ColonVGap, 0)
		if l.cfg.SecondsBar {
			drawSecondsBar(img, now, l.cfg.SecondsBarDotted)
		}
	})
}

// applyBrightness sets the contrast matching the current time of day.
func (l *Loop) applyBrightness(now time.Time) {
	target := l.cfg.DayBrightness
	if l.cfg.NightWindow().Contains(now) {
		target = l.cfg.NightBrightness
	}
	if target == l.brightness {
		return
	}
	if err := l.disp.SetContrast(byte(min(255, max(0, target)))); err != nil {
		l.log.Warn().Err(err).Msg("failed to set brightness")
		return
	}
	l.log.Debug().Int("level", target).Msg("brightness changed")
	l.brightness = target
}

// frame renders one full frame through a fresh 1-bit buffer, so a partially
// drawn frame is never visible on the device.
func (l *Loop) frame(render func(img draw.Image)) error {
	img := image1bit.NewVerticalLSB(l.disp.Bounds())
	render(img)
	return l.disp.Draw(l.disp.Bounds(), img, image.Point{})
}

// sleep waits for d or until ctx is cancelled; it reports false on
// cancellation.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
