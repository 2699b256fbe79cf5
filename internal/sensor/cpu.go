// Package sensor probes the host CPU temperature.
package sensor

import (
	"context"
	"math"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

// DefaultThermalFile is the sysfs thermal zone exposing the CPU temperature
// in millidegrees Celsius.
const DefaultThermalFile = "/sys/class/thermal/thermal_zone0/temp"

// Placeholder is rendered when no reading is available.
const Placeholder = "--"

var vcgencmdPattern = regexp.MustCompile(`temp=([\d.]+)`)

// CPU reads the CPU temperature, preferring the sysfs thermal zone and
// falling back to the vendor command-line tool. The zero value is not usable;
// use NewCPU.
type CPU struct {
	// ThermalFile is the sysfs file to read first.
	ThermalFile string
	// Command is the fallback command whose output is matched against
	// a temp=N.N pattern. Empty disables the fallback.
	Command []string
}

// NewCPU returns a probe configured for a Raspberry Pi class host.
func NewCPU() *CPU {
	return &CPU{
		ThermalFile: DefaultThermalFile,
		Command:     []string{"vcgencmd", "measure_temp"},
	}
}

// ReadC returns the CPU temperature in degrees Celsius.
// The second return value is false when neither source yields a reading.
func (c *CPU) ReadC(ctx context.Context) (float64, bool) {
	if c.ThermalFile != "" {
		if b, err := os.ReadFile(c.ThermalFile); err == nil {
			if v, err := strconv.Atoi(strings.TrimSpace(string(b))); err == nil {
				return float64(v) / 1000.0, true
			}
		}
	}
	if len(c.Command) > 0 {
		out, err := exec.CommandContext(ctx, c.Command[0], c.Command[1:]...).Output()
		if err == nil {
			if m := vcgencmdPattern.FindSubmatch(out); m != nil {
				if v, err := strconv.ParseFloat(string(m[1]), 64); err == nil {
					return v, true
				}
			}
		}
	}
	return 0, false
}

// DisplayValue rounds a reading and clamps it to the range the matrix can
// show without clipping, [-99, 199].
func DisplayValue(t float64) int {
	return int(math.Round(math.Max(-99, math.Min(199, t))))
}

// Format renders a reading as the integer string shown on the display, or the
// placeholder when ok is false.
func Format(t float64, ok bool) string {
	if !ok {
		return Placeholder
	}
	return strconv.Itoa(DisplayValue(t))
}
