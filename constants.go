package introfinder

// Default analysis parameters. None of these are tunable per call today —
// they describe properties of the source material (episodes run to
// roughly ten minutes of lead-in, a real intro is at least twenty seconds
// long) rather than knobs a caller should reasonably want to override per
// file. Config exposes them anyway so a future caller with different
// source material doesn't have to fork the package.
const (
	// DefaultSampleRate is the analysis sample rate, in Hz, every decoded
	// signal is resampled to before comparison. It is far below any audio
	// playback rate — at this scale a full ten-minute episode window is
	// only a few hundred thousand samples, which is what keeps the
	// overlap-save convolutions in this package cheap enough to run over
	// every pair of files in a season.
	DefaultSampleRate = 1024

	// DefaultSourceStart is the offset, in seconds, from which decoded
	// audio is read.
	DefaultSourceStart = 0

	// DefaultSourceEnd is how far into each file, in seconds, discovery
	// looks for a shared intro. Ten minutes comfortably covers any intro
	// and pre-intro cold open without decoding an entire episode.
	DefaultSourceEnd = 600

	// DefaultPatchDuration is the length, in seconds, of each chunk cut
	// during a scan for a candidate intro region.
	DefaultPatchDuration = 4

	// DefaultAcceptanceThreshold is the minimum howCloseAreSignals score
	// for a candidate intro to be accepted as a match.
	DefaultAcceptanceThreshold = 0.80

	// DefaultMinIntroLength is the shortest span, in seconds, that is
	// accepted as a real intro rather than a coincidental short match.
	DefaultMinIntroLength = 20

	// DefaultBadStreakLimit is how many consecutive never-matched files a
	// discovery run will tolerate before abandoning the current seed pair
	// and retrying with the next adjacent pair.
	DefaultBadStreakLimit = 5
)
