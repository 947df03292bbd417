// Package colorhash derives stable display colors from tag names.
package colorhash

import (
	"crypto/md5"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit color triple.
type RGB [3]uint8

// Colorize maps text to a color. The channels are the hex pairs at offsets
// 0, 1 and 2 of the MD5 digest, so neighbouring channels share a nibble.
func Colorize(text string) RGB {
	sum := md5.Sum([]byte(text))
	return RGB{
		sum[0],
		sum[0]<<4 | sum[1]>>4,
		sum[1],
	}
}

// R returns the red channel.
func (c RGB) R() uint8 { return c[0] }

// G returns the green channel.
func (c RGB) G() uint8 { return c[1] }

// B returns the blue channel.
func (c RGB) B() uint8 { return c[2] }

// Hex renders the color as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}

// Color converts the triple for use with terminal renderers.
func (c RGB) Color() colorful.Color {
	return colorful.Color{
		R: float64(c[0]) / 255,
		G: float64(c[1]) / 255,
		B: float64(c[2]) / 255,
	}
}

// Foreground picks black or white text, whichever reads better on c.
func (c RGB) Foreground() RGB {
	l, _, _ := c.Color().Lab()
	if l > 0.6 {
		return RGB{0, 0, 0}
	}
	return RGB{255, 255, 255}
}

// Ints returns the channels widened to ints, the shape used in JSON payloads.
func (c RGB) Ints() []int {
	return []int{int(c[0]), int(c[1]), int(c[2])}
}
