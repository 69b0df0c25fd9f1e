// Package color converts hex color strings to RGB and HSL representations.
package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/AdenMGB/devtoolbox/internal/model"
	"github.com/maxbolgarin/errm"
)

// Parse parses a hex color string into an RGB color.
// The input may carry a leading '#' and must contain exactly 3 or 6 hex
// digits; the 3-digit form expands each digit (abc -> aabbcc).
func Parse(input string) (model.Color, error) {
	s := strings.TrimPrefix(strings.TrimSpace(input), "#")

	switch len(s) {
	case 3:
		s = expandShorthand(s)
	case 6:
	default:
		return model.Color{}, errm.Wrap(model.ErrInvalidFormat, "hex color must have 3 or 6 digits")
	}

	value, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return model.Color{}, errm.Wrap(model.ErrInvalidFormat, "hex color contains non-hex characters")
	}

	return model.Color{
		R: int(value >> 16 & 0xff),
		G: int(value >> 8 & 0xff),
		B: int(value & 0xff),
	}, nil
}

// Hex renders a color as its canonical form: lowercase, 6 digits, leading '#'.
func Hex(c model.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ToHSL converts an RGB color to hue/saturation/lightness.
// Hue is in degrees, saturation and lightness in percent, each rounded
// to the nearest integer independently.
func ToHSL(c model.Color) model.HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	var h, s float64
	if max != min {
		d := max - min
		if l > 0.5 {
			s = d / (2 - max - min)
		} else {
			s = d / (max + min)
		}

		// red wins ties over green, green over blue
		switch max {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	return model.HSL{
		H: int(math.Round(h * 360)),
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}

func expandShorthand(s string) string {
	var sb strings.Builder
	sb.Grow(6)
	for _, c := range s {
		sb.WriteRune(c)
		sb.WriteRune(c)
	}
	return sb.String()
}
