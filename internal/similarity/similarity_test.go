package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-audio-tools/introfinder/internal/signal"
)

const testSampleRate = 1024

func TestBestPatchPositionOnKnownShift(t *testing.T) {
	sigData := make([]float32, 8192)
	for i := 2000; i < 2256; i++ {
		sigData[i] = 1
	}
	patchData := make([]float32, 256)
	for i := range patchData {
		patchData[i] = 1
	}

	result, err := BestPatchPosition(
		signal.NewFloatSignalFromData(sigData),
		signal.NewFloatSignalFromData(patchData),
		testSampleRate,
	)
	require.NoError(t, err)
	assert.Equal(t, 2000, result.SampleIndex)
	assert.InDelta(t, 2000.0/testSampleRate, result.Timestamp, 1e-6)
}

func TestBestPatchPositionPatchLongerThanSourceErrors(t *testing.T) {
	_, err := BestPatchPosition(
		signal.NewFloatSignal(10),
		signal.NewFloatSignal(20),
		testSampleRate,
	)
	assert.Error(t, err)
}

func TestHowCloseAreSignalsIdenticalSignalsScoreHigherThanUnrelated(t *testing.T) {
	base := make([]float32, 2048)
	for i := range base {
		base[i] = float32(i%7) - 3
	}
	identical, err := HowCloseAreSignals(
		signal.NewFloatSignalFromData(base),
		signal.NewFloatSignalFromData(base),
		testSampleRate,
	)
	require.NoError(t, err)

	unrelated := make([]float32, 2048)
	for i := range unrelated {
		unrelated[i] = float32((i*37)%11) - 5
	}
	different, err := HowCloseAreSignals(
		signal.NewFloatSignalFromData(base),
		signal.NewFloatSignalFromData(unrelated),
		testSampleRate,
	)
	require.NoError(t, err)

	assert.Greater(t, identical.Value, different.Value)
}

func TestHowCloseAreSignalsDoesNotMutateInputs(t *testing.T) {
	a := signal.NewFloatSignalFromData([]float32{1, 2, 3, 4, 5})
	b := signal.NewFloatSignalFromData([]float32{5, 4, 3, 2, 1})
	aBefore := append([]float32{}, a.Data()...)
	bBefore := append([]float32{}, b.Data()...)

	_, err := HowCloseAreSignals(a, b, testSampleRate)
	require.NoError(t, err)

	assert.Equal(t, aBefore, a.Data())
	assert.Equal(t, bBefore, b.Data())
}

func TestHowCloseAreSignalsEmptySignalIsNoop(t *testing.T) {
	result, err := HowCloseAreSignals(signal.NewFloatSignal(0), signal.NewFloatSignal(0), testSampleRate)
	require.NoError(t, err)
	assert.Equal(t, CorrelateResult{}, result)
}

func TestSliceZeroPadsTail(t *testing.T) {
	src := signal.NewFloatSignalFromData([]float32{1, 2, 3, 4})
	out, err := Slice(src, 0, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2}, out.Data())

	padded, err := Slice(src, 2, 6, 1)
	require.NoError(t, err)
	assert.Equal(t, []float32{3, 4, 0, 0}, padded.Data())
}

func TestSliceErrorsWhenStartBeyondSignal(t *testing.T) {
	src := signal.NewFloatSignal(4)
	_, err := Slice(src, 10, 20, 1)
	assert.Error(t, err)
}
