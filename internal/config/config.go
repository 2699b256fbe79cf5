// Package config loads the clock's settings from LED_* environment variables.
//
// Every variable has a documented default and parsing is never fatal: a value
// that fails to parse is dropped (with a warning) and its default applies.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config is the full environment-variable surface of the clock.
type Config struct {
	// Hardware wiring
	SPIPort     int `env:"LED_SPI_PORT" envDefault:"0"`
	SPIDevice   int `env:"LED_SPI_DEVICE" envDefault:"0"`
	BusHz       int `env:"LED_BUS_HZ" envDefault:"16000000"`
	Cascaded    int `env:"LED_CASCADED" envDefault:"4"`
	Orientation int `env:"LED_ORIENTATION" envDefault:"-90"`
	Rotate      int `env:"LED_ROTATE" envDefault:"0"`

	// Time & fonts
	TimeFont   int    `env:"LED_FONT" envDefault:"1"`        // 1=tiny, 2=sinclair
	TimeFormat string `env:"LED_TIME_FMT" envDefault:"15:04"`
	BlinkColon bool   `env:"LED_BLINK_COLON" envDefault:"1"`
	ColonVGap  int    `env:"LED_COLON_VGAP" envDefault:"2"` // vertical gap between colon dots

	// Date ticker
	TickerEverySec float64 `env:"LED_TICKER_EVERY" envDefault:"60"`
	TickerSpeedSec float64 `env:"LED_TICKER_SPEED" envDefault:"0.07"` // higher = slower scroll
	TickerGap      int     `env:"LED_TICKER_GAP" envDefault:"16"`
	TickerWithYear bool    `env:"LED_TICKER_WITH_YEAR" envDefault:"1"`
	TickerFont     int     `env:"LED_TICKER_FONT" envDefault:"1"`

	// Temperature widget
	DrawTemp  bool `env:"LED_DRAW_TEMP" envDefault:"1"`
	TempShowC bool `env:"LED_TEMP_SHOW_C" envDefault:"1"`

	// Auto brightness (day/night)
	AutoDim         bool `env:"LED_AUTO_DIM" envDefault:"1"`
	DayBrightness   int  `env:"LED_BRIGHTNESS_DAY" envDefault:"12"`   // 0..255
	NightBrightness int  `env:"LED_BRIGHTNESS_NIGHT" envDefault:"3"`  // 0..255
	NightFrom       HHMM `env:"LED_NIGHT_FROM" envDefault:"22:30"`
	NightTo         HHMM `env:"LED_NIGHT_TO" envDefault:"07:00"` // may cross midnight

	// Visual add-ons
	SecondsBar       bool `env:"LED_SECONDS_BAR" envDefault:"1"`
	SecondsBarDotted bool `env:"LED_SECONDS_BAR_DOTTED" envDefault:"0"`

	SparkleOnHour      bool    `env:"LED_SPARKLE_ON_HOUR" envDefault:"1"`
	SparkleDurationSec float64 `env:"LED_SPARKLE_DURATION" envDefault:"0.45"`
	SparkleDensity     float64 `env:"LED_SPARKLE_DENSITY" envDefault:"0.15"`
	SparkleFPS         int     `env:"LED_SPARKLE_FPS" envDefault:"20"`

	MinuteSwipe         bool    `env:"LED_MINUTE_SWIPE" envDefault:"1"`
	MinuteSwipePx       int     `env:"LED_MINUTE_SWIPE_PX" envDefault:"8"`
	MinuteSwipeDelaySec float64 `env:"LED_MINUTE_SWIPE_DELAY" envDefault:"0.03"`
}

// Durations configured as plain seconds, converted for callers.

func (c Config) TickerEvery() time.Duration      { return secs(c.TickerEverySec) }
func (c Config) TickerSpeed() time.Duration      { return secs(c.TickerSpeedSec) }
func (c Config) SparkleDuration() time.Duration  { return secs(c.SparkleDurationSec) }
func (c Config) MinuteSwipeDelay() time.Duration { return secs(c.MinuteSwipeDelaySec) }

func secs(s float64) time.Duration {
	// Round to the nearest nanosecond so values like 0.03 don't truncate short.
	return time.Duration(math.Round(s * float64(time.Second)))
}

// NightWindow returns the configured night-time brightness window.
func (c Config) NightWindow() Window {
	return Window{From: c.NightFrom, To: c.NightTo}
}

// Load reads the configuration from the environment.
//
// Variables that fail to parse are reported on logger, removed from the
// environment and re-parsed so their defaults apply. Load never fails.
func Load(logger zerolog.Logger) Config {
	for attempt := 0; attempt < 4; attempt++ {
		cfg, err := env.ParseAs[Config]()
		if err == nil {
			return cfg
		}

		var agg env.AggregateError
		if !errors.As(err, &agg) {
			logger.Warn().Err(err).Msg("configuration unreadable, using defaults")
			break
		}
		for _, e := range agg.Errors {
			var pe env.ParseError
			if !errors.As(e, &pe) {
				continue
			}
			if key := envKey(pe.Name); key != "" {
				logger.Warn().Str("var", key).Err(pe.Err).Msg("ignoring invalid value, using default")
				os.Unsetenv(key)
			}
		}
	}

	// Last resort: parse against an empty environment so only defaults apply.
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Environment: map[string]string{}})
	if err != nil {
		// Defaults are compile-time constants; this cannot happen.
		panic(fmt.Sprintf("config: defaults failed to parse: %v", err))
	}
	return cfg
}

// envKey resolves a Config field name to its environment variable name.
func envKey(field string) string {
	f, ok := reflect.TypeOf(Config{}).FieldByName(field)
	if !ok {
		return ""
	}
	return f.Tag.Get("env")
}

// HHMM is a wall-clock instant in hours and minutes, parsed from "HH:MM".
type HHMM struct {
	Hour   int
	Minute int
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Hours wrap modulo 24 and minutes modulo 60, matching the display's clock.
func (t *HHMM) UnmarshalText(b []byte) error {
	h, m, ok := strings.Cut(string(b), ":")
	if !ok {
		return fmt.Errorf("config: %q is not in HH:MM form", b)
	}
	hv, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return fmt.Errorf("config: bad hour in %q: %w", b, err)
	}
	mv, err := strconv.Atoi(strings.TrimSpace(m))
	if err != nil {
		return fmt.Errorf("config: bad minute in %q: %w", b, err)
	}
	t.Hour = ((hv % 24) + 24) % 24
	t.Minute = ((mv % 60) + 60) % 60
	return nil
}

func (t HHMM) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t HHMM) minuteOfDay() int {
	return t.Hour*60 + t.Minute
}

// Window is a [From, To) wall-clock window. From later than To means the
// window crosses midnight.
type Window struct {
	From HHMM
	To   HHMM
}

func (w Window) String() string {
	return w.From.String() + "-" + w.To.String()
}

// Contains reports whether now falls inside the window, with minute
// granularity. The end boundary is exclusive.
func (w Window) Contains(now time.Time) bool {
	cur := now.Hour()*60 + now.Minute()
	s := w.From.minuteOfDay()
	e := w.To.minuteOfDay()
	if s <= e {
		return s <= cur && cur < e
	}
	return cur >= s || cur < e
}
