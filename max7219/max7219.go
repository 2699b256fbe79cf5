package max7219

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// MAX7219 register map (datasheet table 2).
const (
	regNoop        = 0x00
	regDigit0      = 0x01
	regDecodeMode  = 0x09
	regIntensity   = 0x0A
	regScanLimit   = 0x0B
	regShutdown    = 0x0C
	regDisplayTest = 0x0F
)

// Opts is the configuration for the MAX7219 display chain.
type Opts struct {
	// Cascaded is the number of daisy-chained 8x8 modules (1-16).
	Cascaded int

	// BlockOrientation corrects modules whose matrix is mounted rotated
	// relative to the chain axis. Valid values: -90, 0, 90 (degrees).
	BlockOrientation int

	// Rotate rotates the whole logical display by quarter turns (0-3,
	// clockwise). Odd values swap the logical width and height.
	Rotate int

	// Hz is the SPI bus speed. Defaults to 16MHz when zero.
	Hz int
}

// DefaultOpts matches the common 4-module 32x8 board.
var DefaultOpts = Opts{Cascaded: 4, BlockOrientation: -90, Hz: 16 * 1000 * 1000}

// Dev is the device handle for a MAX7219 display chain.
type Dev struct {
	// Communication
	c conn.Conn // SPI connection

	// Display geometry
	blocks      int
	orientation int
	rotate      int
	rect        image.Rectangle // logical bounds after rotation

	// Pixel buffers
	next  *image1bit.VerticalLSB // logical framebuffer
	frame []byte                 // digit register values, frame[block*8+row]
	last  []byte                 // last transmitted frame

	// State
	haveLast bool
	halted   bool
}

// NewSPI creates a new MAX7219 device chain connected via SPI.
//
// The SPI port is configured for Mode0 (CPOL=0, CPHA=0), 8-bit transfers.
// opts can be nil to use defaults (4 cascaded blocks, -90° orientation).
func NewSPI(p spi.Port, opts *Opts) (*Dev, error) {
	if opts == nil {
		o := DefaultOpts
		opts = &o
	}

	if opts.Cascaded < 1 || opts.Cascaded > 16 {
		return nil, errors.New("max7219: cascaded block count must be between 1 and 16")
	}
	switch opts.BlockOrientation {
	case -90, 0, 90:
	default:
		return nil, errors.New("max7219: block orientation must be -90, 0 or 90")
	}
	if opts.Rotate < 0 || opts.Rotate > 3 {
		return nil, errors.New("max7219: rotate must be between 0 and 3")
	}
	hz := opts.Hz
	if hz == 0 {
		hz = DefaultOpts.Hz
	}
	if hz < 0 {
		return nil, errors.New("max7219: bus speed must be positive")
	}

	c, err := p.Connect(physic.Frequency(hz)*physic.Hertz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}

	w, h := opts.Cascaded*8, 8
	if opts.Rotate%2 == 1 {
		w, h = h, w
	}

	d := &Dev{
		c:           c,
		blocks:      opts.Cascaded,
		orientation: opts.BlockOrientation,
		rotate:      opts.Rotate,
		rect:        image.Rect(0, 0, w, h),
		frame:       make([]byte, opts.Cascaded*8),
		last:        make([]byte, opts.Cascaded*8),
	}

	if err := d.init(); err != nil {
		return nil, err
	}
	return d, nil
}

// init brings all chips out of shutdown with decoding disabled and a blank frame.
func (d *Dev) init() error {
	seq := [][2]byte{
		{regDisplayTest, 0x00}, // display test off
		{regScanLimit, 0x07},   // drive all 8 digit rows
		{regDecodeMode, 0x00},  // raw pixel data, no BCD decode
		{regShutdown, 0x01},    // normal operation
		{regIntensity, 0x00},   // minimum intensity until the caller sets contrast
	}
	for _, cmd := range seq {
		if err := d.writeAll(cmd[0], cmd[1]); err != nil {
			return fmt.Errorf("max7219: init failed: %w", err)
		}
	}
	return d.flush()
}

// writeAll latches the same register/value pair into every chip in the chain.
func (d *Dev) writeAll(reg, value byte) error {
	packet := make([]byte, 2*d.blocks)
	for i := 0; i < d.blocks; i++ {
		packet[2*i] = reg
		packet[2*i+1] = value
	}
	return d.c.Tx(packet, nil)
}

// flush transmits the whole frame, one digit row across the cascade per transfer.
//
// Bytes clocked in first end up in the chip farthest from the bus input, so the
// packet is assembled in reverse block order.
func (d *Dev) flush() error {
	packet := make([]byte, 2*d.blocks)
	for row := 0; row < 8; row++ {
		for i := 0; i < d.blocks; i++ {
			block := d.blocks - 1 - i
			packet[2*i] = byte(regDigit0 + row)
			packet[2*i+1] = d.frame[block*8+row]
		}
		if err := d.c.Tx(packet, nil); err != nil {
			return err
		}
	}
	return nil
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the logical image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Draw draws an image onto the display.
//
// The dst rectangle specifies the destination region on the display; sp is the
// source point within src. The frame is rasterized through a 1-bit buffer and
// transmitted as per-digit register writes; a frame identical to the last one
// transmitted is skipped.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errors.New("max7219: halted")
	}

	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}

	if d.next == nil {
		d.next = image1bit.NewVerticalLSB(d.rect)
	}
	draw.Draw(d.next, dst, src, sp, draw.Src)
	d.rasterize()

	if d.haveLast && bytes.Equal(d.frame, d.last) {
		return nil
	}
	if err := d.flush(); err != nil {
		return err
	}
	copy(d.last, d.frame)
	d.haveLast = true
	return nil
}

// rasterize converts the logical framebuffer into digit register values.
func (d *Dev) rasterize() {
	for i := range d.frame {
		d.frame[i] = 0
	}
	for y := 0; y < d.rect.Dy(); y++ {
		for x := 0; x < d.rect.Dx(); x++ {
			if d.next.BitAt(x, y) != image1bit.On {
				continue
			}
			block, row, mask := d.physical(x, y)
			d.frame[block*8+row] |= mask
		}
	}
}

// physical maps a logical pixel to its chip, digit row and segment bit.
func (d *Dev) physical(x, y int) (block, row int, mask byte) {
	panelW := d.blocks * 8

	// Undo the whole-display rotation: (px, py) are panel coordinates.
	var px, py int
	switch d.rotate {
	case 1:
		px, py = y, 7-x
	case 2:
		px, py = panelW-1-x, 7-y
	case 3:
		px, py = panelW-1-y, x
	default:
		px, py = x, y
	}

	// Apply the per-block orientation correction.
	block = px / 8
	lx, ly := px%8, py
	switch d.orientation {
	case -90:
		lx, ly = ly, 7-lx
	case 90:
		lx, ly = 7-ly, lx
	}

	return block, ly, 0x80 >> lx
}

// Clear blanks every pixel on the display.
func (d *Dev) Clear() error {
	if d.halted {
		return errors.New("max7219: halted")
	}
	if d.next != nil {
		for i := range d.next.Pix {
			d.next.Pix[i] = 0
		}
	}
	for i := range d.frame {
		d.frame[i] = 0
	}
	if err := d.flush(); err != nil {
		return err
	}
	copy(d.last, d.frame)
	d.haveLast = true
	return nil
}

// SetContrast sets the display brightness (0-255).
//
// The MAX7219 has 16 intensity steps; the level is mapped onto them.
func (d *Dev) SetContrast(level byte) error {
	if d.halted {
		return errors.New("max7219: halted")
	}
	return d.writeAll(regIntensity, level>>4)
}

// Halt puts every chip in the chain into shutdown mode.
// After calling Halt, the device must be re-initialized before further use.
func (d *Dev) Halt() error {
	if err := d.writeAll(regShutdown, 0x00); err != nil {
		return err
	}
	d.halted = true
	return nil
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("max7219.Dev{%dx%d, cascade=%d}", d.rect.Dx(), d.rect.Dy(), d.blocks)
}
