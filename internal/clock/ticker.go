package clock

import (
	"context"
	"fmt"
	"image/draw"
	"time"

	"github.com/flavioheleno/ledclock/internal/font"
)

var (
	weekdays = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	months   = [...]string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	}
)

// formatDate renders the English date line, e.g. "Sun 10 Aug 2025".
func formatDate(t time.Time, withYear bool) string {
	s := fmt.Sprintf("%s %02d %s", weekdays[t.Weekday()], t.Day(), months[t.Month()-1])
	if withYear {
		s = fmt.Sprintf("%s %d", s, t.Year())
	}
	return s
}

// runTicker scrolls text right-to-left across the display once, one pixel per
// frame, from fully off-screen right to fully off-screen left plus the
// configured trailing gap. Cancelling ctx aborts mid-scroll.
func (l *Loop) runTicker(ctx context.Context, text string) error {
	f := font.ByIndex(l.cfg.TickerFont)
	w, h := f.Extent(text)
	bounds := l.disp.Bounds()
	y := max(0, (bounds.Dy()-h)/2)

	total := bounds.Dx() + w + l.cfg.TickerGap
	for offset := 0; offset < total; offset++ {
		if ctx.Err() != nil {
			return nil
		}
		x := bounds.Dx() - offset
		err := l.frame(func(img draw.Image) {
			f.Draw(img, x, y, text)
		})
		if err != nil {
			return err
		}
		if !sleep(ctx, l.cfg.TickerSpeed()) {
			return nil
		}
	}
	return nil
}
