package discovery

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-audio-tools/introfinder/internal/signal"
)

func defaultConfig() Config {
	return Config{
		SampleRate:          1024,
		SourceEnd:           60,
		PatchDuration:       4,
		AcceptanceThreshold: 0.80,
		MinIntroLength:      5,
		BadStreakLimit:      5,
	}
}

func makeFileWithSharedRegion(sampleRate, sourceEnd float32, introStartSec, introLenSec int, seed int) []float32 {
	size := int(sourceEnd * sampleRate)
	data := make([]float32, size)
	introStart := int(float32(introStartSec) * sampleRate)
	introLen := int(float32(introLenSec) * sampleRate)
	for i := 0; i < introLen && introStart+i < size; i++ {
		data[introStart+i] = float32((i%97)-48) / 48
	}
	_ = seed
	return data
}

func TestNextBestIntroReturnsNegativeIndexWhenNoPairQualifies(t *testing.T) {
	cfg := defaultConfig()
	files := []FileSignal{
		{Path: "a.wav", Signal: signal.NewFloatSignal(int(cfg.SourceEnd * cfg.SampleRate))},
		{Path: "b.wav", Signal: signal.NewFloatSignal(int(cfg.SourceEnd * cfg.SampleRate))},
	}
	_, idx, err := NextBestIntro(files, 0, cfg)
	require.NoError(t, err)
	assert.Equal(t, -1, idx)
}

func TestNextBestIntroSkipsPairThatFailsToScanAndKeepsLooking(t *testing.T) {
	cfg := defaultConfig()
	shared := makeFileWithSharedRegion(cfg.SampleRate, cfg.SourceEnd, 5, 15, 0)

	files := []FileSignal{
		// Far too short to even hold one patchDuration-second chunk, so
		// scanning it against its neighbor fails outright.
		{Path: "short.wav", Signal: signal.NewFloatSignal(int(cfg.SampleRate))},
		{Path: "b.wav", Signal: signal.NewFloatSignalFromData(append([]float32{}, shared...))},
		{Path: "c.wav", Signal: signal.NewFloatSignalFromData(append([]float32{}, shared...))},
	}

	intro, idx, err := NextBestIntro(files, 0, cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.True(t, intro.EndTime > intro.StartTime)
}

func TestRunEmitsOneFinalProgressResultPerUnresolvedFile(t *testing.T) {
	cfg := defaultConfig()
	files := []FileSignal{
		{Path: "a.wav", Signal: signal.NewFloatSignal(int(cfg.SourceEnd * cfg.SampleRate))},
		{Path: "b.wav", Signal: signal.NewFloatSignal(int(cfg.SourceEnd * cfg.SampleRate))},
		{Path: "c.wav", Signal: signal.NewFloatSignal(int(cfg.SourceEnd * cfg.SampleRate))},
	}

	var results []Result
	err := Run(context.Background(), files, cfg, func(r Result) { results = append(results, r) })
	require.NoError(t, err)

	progressOnly := 0
	for _, r := range results {
		if r.IsProgress && r.File == "" {
			progressOnly++
		}
	}
	assert.Equal(t, len(files), progressOnly)
}

func TestRunFindsSharedIntroAcrossFiles(t *testing.T) {
	cfg := defaultConfig()
	shared := makeFileWithSharedRegion(cfg.SampleRate, cfg.SourceEnd, 5, 15, 0)

	files := []FileSignal{
		{Path: "a.wav", Signal: signal.NewFloatSignalFromData(append([]float32{}, shared...))},
		{Path: "b.wav", Signal: signal.NewFloatSignalFromData(append([]float32{}, shared...))},
		{Path: "c.wav", Signal: signal.NewFloatSignalFromData(append([]float32{}, shared...))},
	}

	var results []Result
	err := Run(context.Background(), files, cfg, func(r Result) { results = append(results, r) })
	require.NoError(t, err)
	assert.NotEmpty(t, results)
}
