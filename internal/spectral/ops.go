// Package spectral implements the element-wise complex products the
// overlap-save convolver needs once its chunks are in the frequency
// domain. Neither operation parallelizes internally — both are called
// from within an already-parallel chunk loop, so an inner loop of
// goroutines here would only add contention.
package spectral

import (
	"fmt"

	"github.com/go-audio-tools/introfinder/internal/signal"
)

func checkSameLength(a, b, r *signal.ComplexSignal, who string) {
	if a.Len() != b.Len() || a.Len() != r.Len() {
		panic(fmt.Sprintf("spectral: %s: mismatched lengths a=%d b=%d result=%d", who, a.Len(), b.Len(), r.Len()))
	}
}

// Convolution computes result[i] = a[i] * b[i] for every i.
func Convolution(a, b, result *signal.ComplexSignal) {
	checkSameLength(a, b, result, "Convolution")
	da, db, dr := a.Data(), b.Data(), result.Data()
	for i := range da {
		dr[i] = da[i] * db[i]
	}
}

// Correlation computes result[i] = a[i] * conj(b[i]) for every i.
func Correlation(a, b, result *signal.ComplexSignal) {
	checkSameLength(a, b, result, "Correlation")
	da, db, dr := a.Data(), b.Data(), result.Data()
	for i := range da {
		bi := db[i]
		conj := complex(real(bi), -imag(bi))
		dr[i] = da[i] * conj
	}
}
