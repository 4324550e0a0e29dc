// Package overlapsave implements overlap-save FFT convolution and
// cross-correlation between a long "signal" and a short "patch": the
// signal is split into overlapping chunks, each chunk is transformed,
// multiplied against the patch's spectrum, and transformed back, and the
// valid portions of the results are concatenated into one output signal
// of length len(signal)+len(patch)-1.
//
// Construction pads the inputs and builds one FFT plan per chunk; a single
// convolver is meant to run exactly one of ExecuteConv or ExecuteXcorr and
// then have ExtractResult called on it. Calling ExtractResult before
// running a transform is a programming error and panics.
package overlapsave

import (
	"fmt"
	"math"

	"github.com/go-audio-tools/introfinder/internal/fftplan"
	"github.com/go-audio-tools/introfinder/internal/signal"
	"github.com/go-audio-tools/introfinder/internal/spectral"
	"github.com/go-audio-tools/introfinder/internal/workerpool"
)

// pow2Ceil returns the smallest power of two that is >= x.
func pow2Ceil(x int) int {
	if x <= 1 {
		return 1
	}
	return 1 << int(math.Ceil(math.Log2(float64(x))))
}

type state int

const (
	stateUninitialized state = iota
	stateConv
	stateXcorr
)

// Convolver holds the padded copies, chunk buffers and FFT plans needed to
// run overlap-save convolution or cross-correlation between a fixed signal
// and patch pair. Chunk buffers are exclusively owned by the convolver;
// there is nothing to explicitly release since Go's GC reclaims them once
// the convolver is dropped.
type Convolver struct {
	signalSize int
	patchSize  int
	resultSize int

	chunkSize        int // X
	chunkSizeComplex int // X/2+1
	stride           int // L

	paddedPatch   *signal.FloatSignal
	paddedPatchFT *signal.ComplexSignal

	signalChunks  []*signal.FloatSignal
	signalChunksC []*signal.ComplexSignal
	resultChunks  []*signal.FloatSignal
	resultChunksC []*signal.ComplexSignal

	forwardPlans  []*fftplan.ForwardPlan
	backwardPlans []*fftplan.BackwardPlan

	state state
}

// New builds a convolver for the given signal and patch. len(patch) must
// not exceed len(signal).
func New(sig, patch *signal.FloatSignal) (*Convolver, error) {
	signalSize, patchSize := sig.Len(), patch.Len()
	if patchSize > signalSize {
		return nil, fmt.Errorf("overlapsave: patch length %d exceeds signal length %d", patchSize, signalSize)
	}

	resultSize := signalSize + patchSize - 1
	chunkSize := 2 * pow2Ceil(patchSize)
	stride := chunkSize - patchSize + 1

	c := &Convolver{
		signalSize:       signalSize,
		patchSize:        patchSize,
		resultSize:       resultSize,
		chunkSize:        chunkSize,
		chunkSizeComplex: chunkSize/2 + 1,
		stride:           stride,
	}

	c.paddedPatch = signal.NewPaddedFloatSignal(patch.Data(), 0, chunkSize-patchSize)
	c.paddedPatchFT = signal.NewComplexSignal(c.chunkSizeComplex)

	padAfter := chunkSize - (resultSize % stride)
	paddedSignal := signal.NewPaddedFloatSignal(sig.Data(), patchSize-1, padAfter)

	for i := 0; i+chunkSize <= paddedSignal.Len(); i += stride {
		chunk := signal.NewFloatSignalFromData(paddedSignal.Data()[i : i+chunkSize])
		c.signalChunks = append(c.signalChunks, chunk)
		c.signalChunksC = append(c.signalChunksC, signal.NewComplexSignal(c.chunkSizeComplex))
		c.resultChunks = append(c.resultChunks, signal.NewFloatSignal(chunkSize))
		c.resultChunksC = append(c.resultChunksC, signal.NewComplexSignal(c.chunkSizeComplex))
	}

	patchPlan, err := fftplan.NewForwardPlan(c.paddedPatch, c.paddedPatchFT)
	if err != nil {
		return nil, fmt.Errorf("overlapsave: patch forward plan: %w", err)
	}
	c.forwardPlans = append(c.forwardPlans, patchPlan)

	for i := range c.signalChunks {
		fwd, err := fftplan.NewForwardPlan(c.signalChunks[i], c.signalChunksC[i])
		if err != nil {
			return nil, fmt.Errorf("overlapsave: chunk %d forward plan: %w", i, err)
		}
		c.forwardPlans = append(c.forwardPlans, fwd)

		bwd, err := fftplan.NewBackwardPlan(c.resultChunksC[i], c.resultChunks[i])
		if err != nil {
			return nil, fmt.Errorf("overlapsave: chunk %d backward plan: %w", i, err)
		}
		c.backwardPlans = append(c.backwardPlans, bwd)
	}

	return c, nil
}

// ExecuteConv runs the forward/multiply/inverse pipeline as a convolution.
func (c *Convolver) ExecuteConv() { c.execute(spectral.Convolution); c.state = stateConv }

// ExecuteXcorr runs the forward/multiply/inverse pipeline as a cross-correlation.
func (c *Convolver) ExecuteXcorr() { c.execute(spectral.Correlation); c.state = stateXcorr }

func (c *Convolver) execute(op func(a, b, result *signal.ComplexSignal)) {
	workerpool.ParallelFor(len(c.forwardPlans), func(i int) {
		c.forwardPlans[i].Execute()
	})

	workerpool.ParallelFor(len(c.resultChunksC), func(i int) {
		op(c.signalChunksC[i], c.paddedPatchFT, c.resultChunksC[i])
	})

	workerpool.ParallelFor(len(c.backwardPlans), func(i int) {
		c.backwardPlans[i].Execute()
		c.resultChunks[i].DivScalar(float32(c.chunkSize))
	})
}

// ExtractResult assembles the final signal of length len(signal)+len(patch)-1
// from the chunk results of the last transform run. It panics if no
// transform has been executed yet.
func (c *Convolver) ExtractResult() *signal.FloatSignal {
	if c.state == stateUninitialized {
		panic("overlapsave: ExtractResult called before ExecuteConv or ExecuteXcorr")
	}

	discardOffset := 0
	if c.state == stateConv {
		discardOffset = c.chunkSize - c.stride
	}

	result := signal.NewFloatSignal(c.resultSize)
	dst := result.Data()
	for i, chunk := range c.resultChunks {
		begin := i * c.stride
		copySize := c.stride
		if begin+copySize > c.resultSize {
			copySize = c.resultSize - begin
		}
		if copySize <= 0 {
			continue
		}
		copy(dst[begin:begin+copySize], chunk.Data()[discardOffset:discardOffset+copySize])
	}
	return result
}

// ResultSize returns len(signal)+len(patch)-1.
func (c *Convolver) ResultSize() int { return c.resultSize }

// PatchSize returns the length of the patch this convolver was built with.
func (c *Convolver) PatchSize() int { return c.patchSize }
