// Package decode turns a WAV file on disk into the mono, analysis-rate
// FloatSignal the rest of the engine operates on: downmixing to a single
// channel, resampling to the target rate, and windowing the result to the
// requested [start, start+duration) span.
package decode

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/go-audio-tools/introfinder/internal/resample"
	"github.com/go-audio-tools/introfinder/internal/signal"
	"github.com/go-audio-tools/introfinder/internal/similarity"
)

// ErrInvalidFile is returned when the input is not a readable WAV file.
// This is a decoder failure: the caller decides how to surface it.
var ErrInvalidFile = errors.New("decode: not a valid WAV file")

// ErrEmptyAudio is returned when a file decodes to zero samples. This is
// an input deficiency, not a defect in the decoder itself; callers treat
// it as a no-op rather than a failure.
var ErrEmptyAudio = errors.New("decode: audio file contains no samples")

// IsInputDeficiency reports whether err represents a no-op input
// deficiency (an audio file with no samples) rather than a genuine
// decoder failure a caller needs to act on.
func IsInputDeficiency(err error) bool {
	return errors.Is(err, ErrEmptyAudio)
}

// Decoder turns an audio file on disk into an analysis-rate mono signal.
type Decoder interface {
	Decode(path string, startSec, durationSec float32) (*signal.FloatSignal, error)
}

// WAVDecoder decodes PCM WAV files via go-audio/wav, downmixes to mono,
// and resamples to TargetRate using the resample package.
type WAVDecoder struct {
	// TargetRate is the analysis sample rate every decoded signal is
	// resampled to, in Hz.
	TargetRate float64

	// Quality controls the resampler's speed/fidelity tradeoff: linear
	// interpolation for QualityLow, cubic Hermite otherwise. NewWAVDecoder
	// sets QualityMedium; analysis signals are compared against each other
	// at a very low rate, so no higher tier is needed — unlike audio meant
	// for playback, there is no listener to notice filter ripple.
	Quality resample.QualityPreset
}

// NewWAVDecoder returns a WAVDecoder targeting targetRate with a quality
// preset suited to analysis rather than playback.
func NewWAVDecoder(targetRate float64) *WAVDecoder {
	return &WAVDecoder{TargetRate: targetRate, Quality: resample.QualityMedium}
}

// Decode reads path, downmixes and resamples it to TargetRate, and
// returns the [startSec, startSec+durationSec) window of the result,
// zero-padding the tail if the source is shorter than requested.
func (d *WAVDecoder) Decode(path string, startSec, durationSec float32) (*signal.FloatSignal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFile, path, err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFile, path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: reading PCM data: %v", ErrInvalidFile, path, err)
	}
	if buf.NumFrames() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyAudio, path)
	}

	mono := downmix(buf)
	sourceRate := float64(buf.Format.SampleRate)

	if sourceRate != d.TargetRate {
		mono, err = resample.ResampleMonoFloat32(mono, sourceRate, d.TargetRate, d.Quality)
		if err != nil {
			return nil, fmt.Errorf("decode: %s: resampling to %gHz: %w", path, d.TargetRate, err)
		}
	}

	full := signal.NewFloatSignalFromData(mono)
	return similarity.Slice(full, startSec, startSec+durationSec, float32(d.TargetRate))
}

// downmix averages every channel in buf into a single mono float32 track.
// Samples keep the integer PCM scale of buf; they are not rescaled.
func downmix(buf *audio.IntBuffer) []float32 {
	channels := buf.Format.NumChannels
	if channels < 1 {
		channels = 1
	}
	floatBuf := buf.AsFloatBuffer()
	frames := len(floatBuf.Data) / channels

	mono := make([]float32, frames)
	for i := 0; i < frames; i++ {
		var sum float64
		for c := 0; c < channels; c++ {
			sum += floatBuf.Data[i*channels+c]
		}
		mono[i] = float32(sum / float64(channels))
	}
	return mono
}
