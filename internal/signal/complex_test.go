package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRealComplexRatioOK(t *testing.T) {
	assert.True(t, RealComplexRatioOK(8, 5))
	assert.True(t, RealComplexRatioOK(7, 4))
	assert.False(t, RealComplexRatioOK(8, 4))
}

func TestComplexSignalAddScalarOnlyTouchesReal(t *testing.T) {
	s := NewComplexSignal(2)
	s.Data()[0] = complex(1, 2)
	s.AddScalar(3)
	assert.Equal(t, complex64(complex(4, 2)), s.Data()[0])
}

func TestComplexSignalMulScalar(t *testing.T) {
	s := NewComplexSignal(1)
	s.Data()[0] = complex(2, 3)
	s.MulScalar(2)
	assert.Equal(t, complex64(complex(4, 6)), s.Data()[0])
}
