package renderer

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// intensity is the range a gamma-corrected channel is clamped to before
// scaling to a byte
var intensity = core.NewInterval(0.000, 0.999)

// linearToGamma applies gamma 2. Non-positive and NaN inputs map to 0.
func linearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// ToByte converts a linear color channel to an 8-bit value
func ToByte(linear float64) int {
	return int(256 * intensity.Clamp(linearToGamma(linear)))
}

// WritePPM writes img as a plain-text PPM (P3) with one pixel per line
func WritePPM(w io.Writer, img *Image) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return fmt.Errorf("while writing PPM header: %w", err)
	}

	for _, pixel := range img.Pixels {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", ToByte(pixel.X), ToByte(pixel.Y), ToByte(pixel.Z)); err != nil {
			return fmt.Errorf("while writing PPM pixels: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while flushing PPM output: %w", err)
	}
	return nil
}
