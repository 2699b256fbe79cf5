// Package max7219 controls a chain of MAX7219-driven 8x8 LED matrices via SPI.
//
// The MAX7219 is an 8-digit LED display driver. Generic matrix modules wire it
// to an 8x8 dot matrix, and several modules are commonly daisy-chained into a
// single wide display (for example 4 modules = 32x8 pixels).
//
// # Display Characteristics
//
// - 1-bit pixels (LED on or off)
// - Cascading: up to 16 chained modules treated as one logical display
// - Per-block orientation correction (-90°, 0°, 90°) for pre-rotated modules
// - Whole-display rotation in quarter turns
// - 16 intensity steps, exposed as a 0-255 contrast range
//
// # Hardware Connection
//
// Connect the first module to your system via SPI:
//
//	Module Pin → System Pin
//	GND        → GND
//	VCC        → 5V
//	DIN        → SPI Data (MOSI)
//	CS         → SPI Chip Select
//	CLK        → SPI Clock (SCLK)
//
// Chained modules connect DOUT of one module to DIN of the next.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"image"
//
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/devices/v3/ssd1306/image1bit"
//		"periph.io/x/host/v3"
//
//		"github.com/flavioheleno/ledclock/max7219"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open SPI bus
//		port, _ := spireg.Open("")
//
//		// Create device (4 cascaded blocks, -90° block orientation)
//		dev, _ := max7219.NewSPI(port, &max7219.Opts{
//			Cascaded:         4,
//			BlockOrientation: -90,
//		})
//		defer dev.Halt()
//
//		// Render a 1-bit frame
//		img := image1bit.NewVerticalLSB(dev.Bounds())
//		img.SetBit(0, 0, image1bit.On)
//		dev.Draw(dev.Bounds(), img, image.Point{})
//	}
//
// Pixel data is rasterized through image1bit.VerticalLSB and remapped into
// per-digit register writes across the cascade, so any image.Image source can
// be drawn. Identical consecutive frames are not re-transmitted.
package max7219
