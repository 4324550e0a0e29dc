// Package similarity provides the three primitives the rest of the
// intro-detection pipeline is built from: locating a patch's best
// alignment inside a longer source, scoring how alike two clips are, and
// slicing a signal by a time range.
package similarity

import (
	"fmt"

	"github.com/go-audio-tools/introfinder/internal/overlapsave"
	"github.com/go-audio-tools/introfinder/internal/signal"
	"github.com/go-audio-tools/introfinder/internal/timing"
)

// CorrelateResult is the outcome of locating a patch inside a source: the
// sample offset of the best alignment, the correlation value there, and
// the corresponding timestamp in seconds.
type CorrelateResult struct {
	SampleIndex int
	Value       float32
	Timestamp   float32
}

// BestPatchPosition finds where patch best aligns inside source by running
// an overlap-save cross-correlation and taking the argmax over the valid
// region (the first match wins on ties). The cross-correlation value at
// index k covers the patch starting at source sample k-(len(patch)-1), and
// SampleIndex is that start offset. Only positive correlation values are
// candidates: if none is positive, the result is offset 0 with value 0.
// len(source) must be >= len(patch).
func BestPatchPosition(source, patch *signal.FloatSignal, sampleRate float32) (CorrelateResult, error) {
	conv, err := overlapsave.New(source, patch)
	if err != nil {
		return CorrelateResult{}, fmt.Errorf("similarity: BestPatchPosition: %w", err)
	}
	conv.ExecuteXcorr()
	xcorr := conv.ExtractResult()

	data := xcorr.Data()
	patchSize := patch.Len()
	var max float32
	maxIdx := 0
	for i := patchSize - 1; i < len(data); i++ {
		if data[i] > max {
			max = data[i]
			maxIdx = i - (patchSize - 1)
		}
	}

	return CorrelateResult{
		SampleIndex: maxIdx,
		Value:       max,
		Timestamp:   float32(maxIdx) / sampleRate,
	}, nil
}

// HowCloseAreSignals scores how alike two clips are. Both are truncated to
// their shared length and independently normalized (copies only — neither
// input signal is mutated) so that the cross-correlation dot product
// yields the Pearson correlation coefficient. BestPatchPosition is run in
// both directions, since the restricted argmax range only fully covers the
// alignment space from one side when the clips are nearly the same length;
// the larger of the two results is returned.
func HowCloseAreSignals(a, b *signal.FloatSignal, sampleRate float32) (CorrelateResult, error) {
	defer timing.Track("similarity.HowCloseAreSignals")()

	size := a.Len()
	if b.Len() < size {
		size = b.Len()
	}
	if size == 0 {
		return CorrelateResult{}, nil
	}

	forward, err := bestPatchPositionNormalized(a, b, size, sampleRate)
	if err != nil {
		return CorrelateResult{}, err
	}
	backward, err := bestPatchPositionNormalized(b, a, size, sampleRate)
	if err != nil {
		return CorrelateResult{}, err
	}

	if forward.Value > backward.Value {
		return forward, nil
	}
	return backward, nil
}

// bestPatchPositionNormalized normalizes truncated copies of one, two to
// unit-variance, zero-mean form and runs BestPatchPosition(one, two).
func bestPatchPositionNormalized(one, two *signal.FloatSignal, size int, sampleRate float32) (CorrelateResult, error) {
	a := one.Sub(0, size)
	b := two.Sub(0, size)

	a.SubScalar(a.Mean())
	a.DivScalar(a.Std() * float32(size))
	b.SubScalar(b.Mean())
	b.DivScalar(b.Std())

	return BestPatchPosition(a, b, sampleRate)
}

// Slice returns a new signal covering [startSec, endSec) of src at the
// given sample rate. If src runs out before endSec, the tail is
// zero-padded. It returns an error if startSec is beyond the end of src.
func Slice(src *signal.FloatSignal, startSec, endSec, sampleRate float32) (*signal.FloatSignal, error) {
	start := int(startSec * sampleRate)
	end := int(endSec * sampleRate)
	if start >= src.Len() {
		return nil, fmt.Errorf("similarity: Slice: start %.3fs (sample %d) is beyond signal length %d", startSec, start, src.Len())
	}
	return src.Sub(start, end-start), nil
}
