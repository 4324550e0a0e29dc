// Package resample converts a mono signal from one sample rate to
// another. The analysis pipeline only ever needs one thing from a
// resampler — downsample a decoded file to a fixed, very low analysis
// rate — so this is a small one-shot cubic/linear interpolator rather
// than a general-purpose multi-stage resampling engine.
package resample

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig indicates invalid resampling parameters.
var ErrInvalidConfig = errors.New("invalid resampler configuration")

// QualityPreset selects the interpolation algorithm used by
// ResampleMonoFloat32.
type QualityPreset int

const (
	// QualityLow uses linear interpolation. Cheapest, and good enough for
	// content that will itself be discarded after a rough comparison.
	QualityLow QualityPreset = iota

	// QualityMedium uses cubic Hermite interpolation. The default: a
	// meaningful quality step up from linear for a cost that's still
	// negligible next to the FFT work downstream.
	QualityMedium

	// QualityHigh is an alias for QualityMedium. Analysis signals have no
	// listener to notice the difference a steeper anti-aliasing filter
	// would make, so there is no higher tier to offer.
	QualityHigh = QualityMedium
)

// ResampleMonoFloat32 resamples input from inputRate to outputRate and
// returns the result. inputRate and outputRate must be positive.
func ResampleMonoFloat32(input []float32, inputRate, outputRate float64, quality QualityPreset) ([]float32, error) {
	if inputRate <= 0 || outputRate <= 0 {
		return nil, fmt.Errorf("%w: sample rates must be positive", ErrInvalidConfig)
	}
	if len(input) == 0 {
		return nil, nil
	}
	if inputRate == outputRate {
		out := make([]float32, len(input))
		copy(out, input)
		return out, nil
	}

	ratio := outputRate / inputRate
	outLen := int(math.Ceil(float64(len(input)) * ratio))
	out := make([]float32, outLen)

	interpolate := cubicHermite
	if quality == QualityLow {
		interpolate = linear
	}

	step := 1 / ratio
	for i := range out {
		srcPos := float64(i) * step
		idx := int(srcPos)
		frac := srcPos - float64(idx)
		out[i] = interpolate(input, idx, float32(frac))
	}
	return out, nil
}

// sampleAt returns input[i], clamping to the nearest valid index so
// interpolation near either edge degrades gracefully instead of reading
// out of bounds.
func sampleAt(input []float32, i int) float32 {
	if i < 0 {
		i = 0
	} else if i >= len(input) {
		i = len(input) - 1
	}
	return input[i]
}

// linear interpolates between the two samples surrounding frac.
func linear(input []float32, idx int, frac float32) float32 {
	y0 := sampleAt(input, idx)
	y1 := sampleAt(input, idx+1)
	return y0 + (y1-y0)*frac
}

// cubicHermite interpolates using the four samples surrounding frac, the
// same 4-point Catmull-Rom-style Hermite basis used throughout the
// digital audio resampling literature.
func cubicHermite(input []float32, idx int, frac float32) float32 {
	y0 := sampleAt(input, idx-1)
	y1 := sampleAt(input, idx)
	y2 := sampleAt(input, idx+1)
	y3 := sampleAt(input, idx+2)

	a := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	b := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	c := -0.5*y0 + 0.5*y2
	d := y1

	x := frac
	return ((a*x+b)*x+c)*x + d
}
