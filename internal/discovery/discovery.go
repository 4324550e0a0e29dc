// Package discovery runs the multi-file search that narrows an episode
// set down to the shared intro region: it seeds a candidate from one
// adjacent pair, then checks every other file against that candidate,
// keeping track of each file's best score so far and retrying with a new
// seed when a long streak of files all scores badly.
package discovery

import (
	"context"
	"fmt"
	"log"

	"github.com/go-audio-tools/introfinder/internal/pairing"
	"github.com/go-audio-tools/introfinder/internal/signal"
	"github.com/go-audio-tools/introfinder/internal/similarity"
)

// FileSignal pairs a decoded, analysis-rate signal with the path it came
// from.
type FileSignal struct {
	Path   string
	Signal *signal.FloatSignal
}

// Intro is a candidate intro region found in one file, together with the
// corresponding region located in the adjacent file that produced it.
type Intro struct {
	StartTime      float32
	EndTime        float32
	MatchPercent   float32
	OtherStartTime float32
	OtherEndTime   float32
	Signal         *signal.FloatSignal
}

// Result is one file's outcome against the current candidate intro,
// emitted at most once per file per discovery round.
type Result struct {
	File            string
	Index           int
	StartTime       float32
	EndTime         float32
	MatchPercent    float32
	IsProgress      bool
	IsBetter        bool
	IsSourceOfIntro bool
}

// Config bundles the analysis parameters a discovery run needs. There is
// no single correct value for these independent of the source material;
// callers own picking them (typically from package-level defaults).
type Config struct {
	SampleRate          float32
	SourceEnd           float32
	PatchDuration       int
	AcceptanceThreshold float32
	MinIntroLength      float32
	BadStreakLimit      int
}

// NextBestIntro scans adjacent pairs in files, starting at index start,
// for the first pair whose candidate intro clears the acceptance
// threshold, isn't too close to the end of the scanned source audio, and
// is long enough to be a real intro rather than a coincidental match. It
// returns a negative index with a nil error if no pair qualifies — a
// clean "nothing found" outcome, not a failure.
//
// A pair that fails to produce any candidate at all (for example, one
// file is too short to yield even a single scan chunk) is treated like a
// pair that simply didn't qualify: it's logged and scanning continues
// with the next adjacent pair, rather than aborting the entire run over
// one edge-case file.
func NextBestIntro(files []FileSignal, start int, cfg Config) (Intro, int, error) {
	for i := start; i < len(files)-1; i++ {
		info, err := pairing.GetIntroFromPair(files[i].Signal, files[i+1].Signal, cfg.PatchDuration, cfg.SourceEnd, cfg.SampleRate)
		if err != nil {
			log.Printf("discovery: NextBestIntro: skipping pair (%q, %q): %v", files[i].Path, files[i+1].Path, err)
			continue
		}

		tooCloseToEnd := info.EndTime >= cfg.SourceEnd-cfg.MinIntroLength || info.OtherEndTime >= cfg.SourceEnd-cfg.MinIntroLength
		tooShort := info.EndTime-info.StartTime <= cfg.MinIntroLength

		if info.MatchPercent >= cfg.AcceptanceThreshold && !tooCloseToEnd && !tooShort {
			introSignal, err := similarity.Slice(files[i].Signal, info.StartTime, info.EndTime, cfg.SampleRate)
			if err != nil {
				return Intro{}, -1, fmt.Errorf("discovery: NextBestIntro: slicing accepted intro: %w", err)
			}
			return Intro{
				StartTime:      info.StartTime,
				EndTime:        info.EndTime,
				MatchPercent:   info.MatchPercent,
				OtherStartTime: info.OtherStartTime,
				OtherEndTime:   info.OtherEndTime,
				Signal:         introSignal,
			}, i, nil
		}
	}

	return Intro{}, -1, nil
}

// Run drives the full discovery state machine over files, calling emit
// once per Result as each file is evaluated against the current
// candidate intro. It returns once every file has either graduated past
// the acceptance threshold or been carried forward into a final
// progress-only emission.
//
// A panic raised while evaluating a single file (an invariant violation
// inside the matching primitives) is treated as a fatal defect in that
// one file's evaluation: it is logged and the file is dropped from
// further consideration for this round, but the run as a whole
// continues.
//
// Run checks ctx for cancellation between outer rounds and before
// evaluating each file, so a caller can stop a long multi-file search
// without waiting for it to reach a natural stopping point.
func Run(ctx context.Context, files []FileSignal, cfg Config, emit func(Result)) error {
	rest := make([]FileSignal, len(files))
	copy(rest, files)

	bestMatches := make(map[string]float32)
	lastBestIntroIdx := 0

	for len(rest) > 1 {
		if err := ctx.Err(); err != nil {
			return err
		}

		badStreak := 0

		introInfo, idx, err := NextBestIntro(rest, lastBestIntroIdx, cfg)
		if err != nil {
			return err
		}
		if idx < 0 {
			break
		}
		lastBestIntroIdx = idx
		sourceOfIntroFile := rest[idx].Path
		intro := introInfo.Signal

		rest = rest[:0]
		for i, fs := range files {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, keepInRest, extendsBadStreak, ok := evaluateFile(fs, i, intro, introInfo, bestMatches, sourceOfIntroFile, cfg)
			if !ok {
				continue
			}
			emit(res)

			if keepInRest {
				rest = append(rest, fs)
			}

			if extendsBadStreak {
				badStreak++
			} else {
				badStreak = 0
			}

			if badStreak >= cfg.BadStreakLimit {
				lastBestIntroIdx = idx + 1
				rest = rest[:0]
				for _, fs2 := range files {
					if bestMatches[fs2.Path] < cfg.AcceptanceThreshold {
						rest = append(rest, fs2)
					}
				}
				break
			}
		}
	}

	for range rest {
		emit(Result{IsProgress: true})
	}
	return nil
}

// evaluateFile scores one file against the current candidate intro and
// reports whether it belongs back in the working set for the next round.
// ok is false when the file already scored 0.9 or better, when locating,
// slicing or scoring it returned an error, or when a category-1 invariant
// violation was recovered from; the caller should simply skip this file
// and move on.
func evaluateFile(fs FileSignal, index int, intro *signal.FloatSignal, introInfo Intro, bestMatches map[string]float32, sourceOfIntroFile string, cfg Config) (res Result, keepInRest, extendsBadStreak, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("discovery: invariant violation evaluating %q, dropping from this round: %v", fs.Path, r)
			ok = false
		}
	}()

	bestValue := bestMatches[fs.Path]
	if bestValue >= 0.9 {
		return Result{}, false, false, false
	}

	find, err := similarity.BestPatchPosition(fs.Signal, intro, cfg.SampleRate)
	if err != nil {
		log.Printf("discovery: skipping %q: %v", fs.Path, err)
		return Result{}, false, false, false
	}
	startTime := find.Timestamp
	endTime := startTime + (introInfo.EndTime - introInfo.StartTime)

	otherIntro, err := similarity.Slice(fs.Signal, startTime, endTime, cfg.SampleRate)
	if err != nil {
		log.Printf("discovery: skipping %q: %v", fs.Path, err)
		return Result{}, false, false, false
	}

	howClose, err := similarity.HowCloseAreSignals(otherIntro, intro, cfg.SampleRate)
	if err != nil {
		log.Printf("discovery: skipping %q: %v", fs.Path, err)
		return Result{}, false, false, false
	}

	isBetter := bestValue < howClose.Value
	if isBetter {
		bestMatches[fs.Path] = howClose.Value
	}

	isProgress := bestValue < cfg.AcceptanceThreshold && howClose.Value >= cfg.AcceptanceThreshold
	keepInRest = howClose.Value < cfg.AcceptanceThreshold && bestValue < cfg.AcceptanceThreshold
	extendsBadStreak = howClose.Value < 0.2 && bestValue == 0

	return Result{
		File:            fs.Path,
		Index:           index,
		StartTime:       startTime,
		EndTime:         endTime,
		MatchPercent:    howClose.Value,
		IsProgress:      isProgress,
		IsBetter:        isBetter,
		IsSourceOfIntro: fs.Path == sourceOfIntroFile,
	}, keepInRest, extendsBadStreak, true
}
