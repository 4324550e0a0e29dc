// Package fftplan wraps gonum's real-input FFT behind the forward/backward
// plan abstraction the overlap-save convolver expects: a plan is bound to a
// pair of buffers at construction and transforms them in place on Execute.
//
// Plan construction is serialized behind a single process-wide mutex, since
// building the underlying transform is the part of the FFT backend that
// historically wants single-threaded access (this mirrors FFTW's planner
// lock). Once built, distinct plan handles execute concurrently without
// contention — each owns its own gonum *fourier.FFT instance and scratch
// buffers, so two goroutines never touch the same transform object.
package fftplan

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/go-audio-tools/introfinder/internal/signal"
)

var planMu sync.Mutex

// newTransform constructs a gonum real-FFT of the given size under the
// process-wide planner lock.
func newTransform(size int) *fourier.FFT {
	planMu.Lock()
	defer planMu.Unlock()
	return fourier.NewFFT(size)
}

// ForwardPlan performs a real-to-complex 1-D transform, writing its result
// into the bound complex signal each time Execute is called.
type ForwardPlan struct {
	transform *fourier.FFT
	real      *signal.FloatSignal
	cplx      *signal.ComplexSignal
	scratchR  []float64
	scratchC  []complex128
}

// NewForwardPlan binds real and cplx for repeated forward transforms.
// It returns an error if the buffers don't satisfy the real/complex size
// ratio required by a real FFT (complexSize == realSize/2 + 1).
func NewForwardPlan(real *signal.FloatSignal, cplx *signal.ComplexSignal) (*ForwardPlan, error) {
	if !signal.RealComplexRatioOK(real.Len(), cplx.Len()) {
		return nil, fmt.Errorf("fftplan: NewForwardPlan: complex size %d must equal real size %d /2+1",
			cplx.Len(), real.Len())
	}
	return &ForwardPlan{
		transform: newTransform(real.Len()),
		real:      real,
		cplx:      cplx,
		scratchR:  make([]float64, real.Len()),
		scratchC:  make([]complex128, cplx.Len()),
	}, nil
}

// Execute runs the forward transform, reading the bound real signal and
// overwriting the bound complex signal.
func (p *ForwardPlan) Execute() {
	src := p.real.Data()
	for i, v := range src {
		p.scratchR[i] = float64(v)
	}
	p.transform.Coefficients(p.scratchC, p.scratchR)
	dst := p.cplx.Data()
	for i, c := range p.scratchC {
		dst[i] = complex64(c)
	}
}

// BackwardPlan performs a complex-to-real 1-D inverse transform, writing
// its (unnormalized) result into the bound real signal on Execute.
// Callers are responsible for the 1/N normalization gonum's inverse
// transform does not apply.
type BackwardPlan struct {
	transform *fourier.FFT
	cplx      *signal.ComplexSignal
	real      *signal.FloatSignal
	scratchC  []complex128
	scratchR  []float64
}

// NewBackwardPlan binds cplx and real for repeated backward transforms.
func NewBackwardPlan(cplx *signal.ComplexSignal, real *signal.FloatSignal) (*BackwardPlan, error) {
	if !signal.RealComplexRatioOK(real.Len(), cplx.Len()) {
		return nil, fmt.Errorf("fftplan: NewBackwardPlan: complex size %d must equal real size %d /2+1",
			cplx.Len(), real.Len())
	}
	return &BackwardPlan{
		transform: newTransform(real.Len()),
		cplx:      cplx,
		real:      real,
		scratchC:  make([]complex128, cplx.Len()),
		scratchR:  make([]float64, real.Len()),
	}, nil
}

// Execute runs the backward transform, reading the bound complex signal and
// overwriting the bound real signal.
func (p *BackwardPlan) Execute() {
	src := p.cplx.Data()
	for i, c := range src {
		p.scratchC[i] = complex128(c)
	}
	p.transform.Sequence(p.scratchR, p.scratchC)
	dst := p.real.Data()
	for i, v := range p.scratchR {
		dst[i] = float32(v)
	}
}
