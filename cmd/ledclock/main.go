// Command ledclock drives a clock on a cascaded MAX7219 LED dot-matrix
// display connected over SPI.
//
// All behavior is configured through LED_* environment variables; see the
// config package for the full list and defaults. SIGINT or SIGTERM shuts the
// clock down and blanks the display.
//
// Hardware Setup:
//
//	Display    Raspberry Pi
//	GND        GND
//	VCC        5V
//	DIN        GPIO10 (SPI0 MOSI)
//	CS         GPIO8 (SPI0 CE0)
//	CLK        GPIO11 (SPI0 CLK)
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/flavioheleno/ledclock/internal/clock"
	"github.com/flavioheleno/ledclock/internal/config"
	"github.com/flavioheleno/ledclock/internal/sensor"
	"github.com/flavioheleno/ledclock/max7219"
)

func main() {
	logger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := run(logger); err != nil {
		logger.Fatal().Err(err).Msg("ledclock failed")
	}
}

func run(logger zerolog.Logger) error {
	cfg := config.Load(logger)

	if _, err := host.Init(); err != nil {
		return fmt.Errorf("initializing host: %w", err)
	}

	port, err := spireg.Open(fmt.Sprintf("SPI%d.%d", cfg.SPIPort, cfg.SPIDevice))
	if err != nil {
		return fmt.Errorf("opening SPI port: %w", err)
	}
	defer port.Close()

	dev, err := max7219.NewSPI(port, &max7219.Opts{
		Cascaded:         cfg.Cascaded,
		BlockOrientation: cfg.Orientation,
		Rotate:           cfg.Rotate,
		Hz:               cfg.BusHz,
	})
	if err != nil {
		return fmt.Errorf("initializing display: %w", err)
	}
	defer dev.Clear()

	logger.Info().
		Stringer("display", dev).
		Str("night", cfg.NightWindow().String()).
		Msg("starting clock")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = clock.New(cfg, dev, sensor.NewCPU(), logger).Run(ctx)

	logger.Info().Msg("shutting down, blanking display")
	return err
}
