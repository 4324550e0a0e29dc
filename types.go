package introfinder

import "github.com/go-audio-tools/introfinder/internal/discovery"

// Result is one file's outcome against the current candidate intro. The
// set of Results delivered over a run converges as discovery narrows in
// on files that clear the acceptance threshold; IsBetter marks a Result
// that improved on that file's previous best score, and IsSourceOfIntro
// marks the file the current candidate intro was itself extracted from.
type Result = discovery.Result

// Config bundles the analysis parameters a Run needs. DefaultConfig
// returns sensible values for broadcast TV episodes; override individual
// fields for other source material.
type Config struct {
	// SampleRate is the analysis sample rate, in Hz, audio is resampled
	// to before comparison.
	SampleRate float32

	// SourceStart is the offset, in seconds, decoding starts from.
	SourceStart float32

	// SourceEnd is how far into each file, in seconds, discovery looks
	// for a shared intro.
	SourceEnd float32

	// PatchDuration is the length, in seconds, of each chunk cut during a
	// scan for a candidate intro region.
	PatchDuration int

	// AcceptanceThreshold is the minimum closeness score for a candidate
	// intro to be accepted as a match, in [0, 1].
	AcceptanceThreshold float32

	// MinIntroLength is the shortest span, in seconds, accepted as a real
	// intro rather than a coincidental short match.
	MinIntroLength float32

	// BadStreakLimit is how many consecutive never-matched files a run
	// tolerates before abandoning the current seed pair.
	BadStreakLimit int

	// WisdomPath, if set, is a JSON file of FFT sizes that Run passes to
	// fftplan.LoadWisdom before decoding starts; the plans built during
	// discovery do not reuse anything it constructs. A missing or
	// unreadable wisdom file is logged as a warning, not a fatal error.
	WisdomPath string
}

// DefaultConfig returns the package's default analysis parameters.
func DefaultConfig() Config {
	return Config{
		SampleRate:          DefaultSampleRate,
		SourceStart:         DefaultSourceStart,
		SourceEnd:           DefaultSourceEnd,
		PatchDuration:       DefaultPatchDuration,
		AcceptanceThreshold: DefaultAcceptanceThreshold,
		MinIntroLength:      DefaultMinIntroLength,
		BadStreakLimit:      DefaultBadStreakLimit,
	}
}

func (c Config) discoveryConfig() discovery.Config {
	return discovery.Config{
		SampleRate:          c.SampleRate,
		SourceEnd:           c.SourceEnd,
		PatchDuration:       c.PatchDuration,
		AcceptanceThreshold: c.AcceptanceThreshold,
		MinIntroLength:      c.MinIntroLength,
		BadStreakLimit:      c.BadStreakLimit,
	}
}
