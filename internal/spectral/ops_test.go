package spectral

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-audio-tools/introfinder/internal/signal"
)

func TestConvolutionMultipliesElementwise(t *testing.T) {
	a := signal.NewComplexSignal(2)
	a.Data()[0], a.Data()[1] = complex(1, 2), complex(3, 4)
	b := signal.NewComplexSignal(2)
	b.Data()[0], b.Data()[1] = complex(5, 6), complex(7, 8)
	r := signal.NewComplexSignal(2)

	Convolution(a, b, r)

	assert.Equal(t, complex64(complex(1*5-2*6, 1*6+2*5)), r.Data()[0])
	assert.Equal(t, complex64(complex(3*7-4*8, 3*8+4*7)), r.Data()[1])
}

func TestCorrelationMultipliesByConjugate(t *testing.T) {
	a := signal.NewComplexSignal(1)
	a.Data()[0] = complex(1, 2)
	b := signal.NewComplexSignal(1)
	b.Data()[0] = complex(3, 4)
	r := signal.NewComplexSignal(1)

	Correlation(a, b, r)

	// a * conj(b) = (1+2i)(3-4i) = 3-4i+6i+8 = 11+2i
	assert.Equal(t, complex64(complex(11, 2)), r.Data()[0])
}

func TestMismatchedLengthsPanics(t *testing.T) {
	a := signal.NewComplexSignal(2)
	b := signal.NewComplexSignal(3)
	r := signal.NewComplexSignal(2)
	assert.Panics(t, func() { Convolution(a, b, r) })
}
