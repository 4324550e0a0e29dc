package resample

import (
	"math"
	"testing"
)

func TestResampleMonoFloat32_OutputLengthMatchesRatio(t *testing.T) {
	tests := []struct {
		name       string
		inputRate  float64
		outputRate float64
		quality    QualityPreset
	}{
		{"downsample_high", 44100, 1024, QualityHigh},
		{"upsample_medium", 22050, 44100, QualityMedium},
		{"downsample_low", 48000, 16000, QualityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const numSamples = 4410
			input := make([]float32, numSamples)
			for i := range input {
				input[i] = float32(math.Sin(2 * math.Pi * 220 * float64(i) / tt.inputRate))
			}

			out, err := ResampleMonoFloat32(input, tt.inputRate, tt.outputRate, tt.quality)
			if err != nil {
				t.Fatalf("ResampleMonoFloat32 failed: %v", err)
			}

			want := int(math.Ceil(float64(numSamples) * tt.outputRate / tt.inputRate))
			if len(out) != want {
				t.Errorf("len(out) = %d, want %d", len(out), want)
			}
		})
	}
}

func TestResampleMonoFloat32_SameRateReturnsCopy(t *testing.T) {
	input := []float32{1, 2, 3, 4, 5}
	out, err := ResampleMonoFloat32(input, 1024, 1024, QualityMedium)
	if err != nil {
		t.Fatalf("ResampleMonoFloat32 failed: %v", err)
	}
	if len(out) != len(input) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(input))
	}
	for i := range input {
		if out[i] != input[i] {
			t.Errorf("out[%d] = %v, want %v", i, out[i], input[i])
		}
	}
	out[0] = 99
	if input[0] == 99 {
		t.Error("ResampleMonoFloat32 mutated its input on the same-rate path")
	}
}

func TestResampleMonoFloat32_EmptyInput(t *testing.T) {
	out, err := ResampleMonoFloat32(nil, 44100, 1024, QualityMedium)
	if err != nil {
		t.Fatalf("ResampleMonoFloat32 failed: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("len(out) = %d, want 0", len(out))
	}
}

func TestResampleMonoFloat32_RejectsNonPositiveRates(t *testing.T) {
	_, err := ResampleMonoFloat32([]float32{1, 2, 3}, 0, 1024, QualityMedium)
	if err == nil {
		t.Fatal("expected an error for a zero input rate")
	}
}
