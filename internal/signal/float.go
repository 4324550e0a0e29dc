// Package signal provides the aligned float and complex buffers that the
// rest of the intro-detection engine is built on: in-place scalar
// arithmetic, basic statistics, and padded construction for the
// overlap-save convolver.
package signal

import (
	"fmt"
	"math"

	"github.com/tphakala/simd/f32"
)

// FloatSignal is an owned, contiguous sequence of 32-bit float samples.
// It is the analysis-domain equivalent of a single mono PCM channel.
type FloatSignal struct {
	data []float32
}

// NewFloatSignal allocates a zero-filled signal of the given length.
func NewFloatSignal(size int) *FloatSignal {
	return &FloatSignal{data: make([]float32, size)}
}

// NewFloatSignalFromData copies src into a new, owned signal.
func NewFloatSignalFromData(src []float32) *FloatSignal {
	s := NewFloatSignal(len(src))
	copy(s.data, src)
	return s
}

// NewPaddedFloatSignal allocates a signal of length padBefore+len(src)+padAfter,
// copies src at offset padBefore, and zero-fills the rest.
func NewPaddedFloatSignal(src []float32, padBefore, padAfter int) *FloatSignal {
	s := NewFloatSignal(padBefore + len(src) + padAfter)
	copy(s.data[padBefore:], src)
	return s
}

// Len returns the number of samples in the signal.
func (s *FloatSignal) Len() int { return len(s.data) }

// Data exposes the underlying sample slice. Callers that want an
// independent copy should use Clone.
func (s *FloatSignal) Data() []float32 { return s.data }

// Clone returns a new signal holding a copy of s's samples.
func (s *FloatSignal) Clone() *FloatSignal {
	return NewFloatSignalFromData(s.data)
}

// AddScalar adds x to every sample in place.
func (s *FloatSignal) AddScalar(x float32) {
	for i := range s.data {
		s.data[i] += x
	}
}

// SubScalar subtracts x from every sample in place.
func (s *FloatSignal) SubScalar(x float32) {
	for i := range s.data {
		s.data[i] -= x
	}
}

// MulScalar multiplies every sample by x in place.
func (s *FloatSignal) MulScalar(x float32) {
	f32.Scale(s.data, s.data, x)
}

// DivScalar divides every sample by x in place.
func (s *FloatSignal) DivScalar(x float32) {
	s.MulScalar(1 / x)
}

// Mean returns the arithmetic mean of the samples, 0 for an empty signal.
func (s *FloatSignal) Mean() float32 {
	if len(s.data) == 0 {
		return 0
	}
	return f32.Sum(s.data) / float32(len(s.data))
}

// Std returns the population standard deviation: the square root of the
// mean of the squared deviations |x-mean|.
func (s *FloatSignal) Std() float32 {
	if len(s.data) == 0 {
		return 0
	}
	mean := s.Mean()
	var sum float32
	for _, v := range s.data {
		d := v - mean
		if d < 0 {
			d = -d
		}
		sum += d * d
	}
	return float32(math.Sqrt(float64(sum) / float64(len(s.data))))
}

// Sub returns a new signal copying [start:start+length) of s, zero-padding
// the tail if the source runs out before length samples are available.
// It panics if start is beyond the end of s, matching the invariant that a
// caller never asks for a slice entirely outside the signal.
func (s *FloatSignal) Sub(start, length int) *FloatSignal {
	if start >= len(s.data) {
		panic(fmt.Sprintf("signal: Sub start %d is beyond signal length %d", start, len(s.data)))
	}
	out := NewFloatSignal(length)
	avail := len(s.data) - start
	if avail > length {
		avail = length
	}
	copy(out.data, s.data[start:start+avail])
	return out
}
