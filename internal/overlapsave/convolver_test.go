package overlapsave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-audio-tools/introfinder/internal/signal"
)

func TestResultLengthMatchesSignalPlusPatchMinusOne(t *testing.T) {
	sig := signal.NewFloatSignal(4096)
	patch := signal.NewFloatSignal(256)
	c, err := New(sig, patch)
	require.NoError(t, err)

	c.ExecuteXcorr()
	result := c.ExtractResult()
	assert.Equal(t, sig.Len()+patch.Len()-1, result.Len())
}

func TestPatchLongerThanSignalErrors(t *testing.T) {
	sig := signal.NewFloatSignal(10)
	patch := signal.NewFloatSignal(20)
	_, err := New(sig, patch)
	assert.Error(t, err)
}

func TestExtractResultBeforeExecutePanics(t *testing.T) {
	sig := signal.NewFloatSignal(256)
	patch := signal.NewFloatSignal(16)
	c, err := New(sig, patch)
	require.NoError(t, err)
	assert.Panics(t, func() { c.ExtractResult() })
}

func TestXcorrMatchesDotProductAtValidIndices(t *testing.T) {
	const signalLen, patchLen = 64, 8
	sigData := make([]float32, signalLen)
	for i := range sigData {
		sigData[i] = float32(i%5) - 2
	}
	patchData := make([]float32, patchLen)
	for i := range patchData {
		patchData[i] = float32(i%3) - 1
	}

	sig := signal.NewFloatSignalFromData(sigData)
	patch := signal.NewFloatSignalFromData(patchData)

	c, err := New(sig, patch)
	require.NoError(t, err)
	c.ExecuteXcorr()
	result := c.ExtractResult()

	for k := 0; k < signalLen-patchLen; k++ {
		idx := patchLen - 1 + k
		var want float32
		for j := 0; j < patchLen; j++ {
			want += patchData[j] * sigData[k+j]
		}
		assert.InDelta(t, want, result.Data()[idx], 1e-2, "index %d", idx)
	}
}

func TestBestPatchPositionOnKnownShift(t *testing.T) {
	const signalLen = 8192
	sigData := make([]float32, signalLen)
	for i := 2000; i < 2256; i++ {
		sigData[i] = 1
	}
	patchData := make([]float32, 256)
	for i := range patchData {
		patchData[i] = 1
	}

	sig := signal.NewFloatSignalFromData(sigData)
	patch := signal.NewFloatSignalFromData(patchData)

	c, err := New(sig, patch)
	require.NoError(t, err)
	c.ExecuteXcorr()
	result := c.ExtractResult()

	patchSize := patch.Len()
	var maxVal float32
	maxIdx := 0
	data := result.Data()
	for i := patchSize; i < len(data); i++ {
		if data[i] > maxVal {
			maxVal = data[i]
			maxIdx = i - (patchSize - 1)
		}
	}
	assert.Equal(t, 2000, maxIdx)
}
