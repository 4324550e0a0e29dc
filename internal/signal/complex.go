package signal

// ComplexSignal is an owned, contiguous sequence of (real, imag) pairs,
// stored as native complex64 values so spectral arithmetic can use Go's
// built-in complex operators instead of hand-rolled real/imag bookkeeping.
type ComplexSignal struct {
	data []complex64
}

// NewComplexSignal allocates a zero-filled complex signal of the given length.
func NewComplexSignal(size int) *ComplexSignal {
	return &ComplexSignal{data: make([]complex64, size)}
}

// Len returns the number of complex samples.
func (s *ComplexSignal) Len() int { return len(s.data) }

// Data exposes the underlying sample slice.
func (s *ComplexSignal) Data() []complex64 { return s.data }

// AddScalar adds x to the real component of every sample in place,
// leaving the imaginary component untouched.
func (s *ComplexSignal) AddScalar(x float32) {
	for i := range s.data {
		s.data[i] += complex(x, 0)
	}
}

// AddComplex adds x to every sample in place.
func (s *ComplexSignal) AddComplex(x complex64) {
	for i := range s.data {
		s.data[i] += x
	}
}

// MulScalar multiplies every sample by the real scalar x in place.
func (s *ComplexSignal) MulScalar(x float32) {
	for i := range s.data {
		s.data[i] *= complex(x, 0)
	}
}

// RealComplexRatioOK reports whether complexSize equals floor(realSize/2)+1,
// the size relationship every forward/backward FFT plan pair must satisfy.
func RealComplexRatioOK(realSize, complexSize int) bool {
	return complexSize == realSize/2+1
}
