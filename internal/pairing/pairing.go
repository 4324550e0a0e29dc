// Package pairing finds a candidate intro region shared by two signals:
// it locates a contiguous match region in the first signal via a chunk
// scan against the second, then finds where that region best realigns
// inside the second signal and scores the resulting pair.
package pairing

import (
	"fmt"

	"github.com/go-audio-tools/introfinder/internal/scanner"
	"github.com/go-audio-tools/introfinder/internal/signal"
	"github.com/go-audio-tools/introfinder/internal/similarity"
	"github.com/go-audio-tools/introfinder/internal/timing"
)

// Info describes a candidate intro region found in a pair of signals: its
// span in the first signal, the corresponding span in the second, and how
// closely the two spans actually match.
type Info struct {
	StartTime      float32
	EndTime        float32
	MatchPercent   float32
	OtherStartTime float32
	OtherEndTime   float32
}

// GetIntroFromPair chunk-scans two against one to find a candidate region
// in one, then locates that region's best realignment inside two and
// scores the pair with HowCloseAreSignals.
func GetIntroFromPair(one, two *signal.FloatSignal, patchDuration int, sourceEnd, sampleRate float32) (Info, error) {
	defer timing.Track("pairing.GetIntroFromPair")()

	scanResult, err := scanner.Scan(one, two, 0, int(sourceEnd), patchDuration, sourceEnd, sampleRate)
	if err != nil {
		return Info{}, fmt.Errorf("pairing: GetIntroFromPair: chunk scan: %w", err)
	}

	introOne, err := similarity.Slice(one, scanResult.StartTime, scanResult.EndTime, sampleRate)
	if err != nil {
		return Info{}, fmt.Errorf("pairing: GetIntroFromPair: slicing candidate region: %w", err)
	}

	find, err := similarity.BestPatchPosition(two, introOne, sampleRate)
	if err != nil {
		return Info{}, fmt.Errorf("pairing: GetIntroFromPair: realigning in second signal: %w", err)
	}

	otherStart := find.Timestamp
	otherEnd := otherStart + (scanResult.EndTime - scanResult.StartTime)
	introTwo, err := similarity.Slice(two, otherStart, otherEnd, sampleRate)
	if err != nil {
		return Info{}, fmt.Errorf("pairing: GetIntroFromPair: slicing realigned region: %w", err)
	}

	howClose, err := similarity.HowCloseAreSignals(introOne, introTwo, sampleRate)
	if err != nil {
		return Info{}, fmt.Errorf("pairing: GetIntroFromPair: scoring pair: %w", err)
	}

	return Info{
		StartTime:      scanResult.StartTime,
		EndTime:        scanResult.EndTime,
		MatchPercent:   howClose.Value,
		OtherStartTime: otherStart,
		OtherEndTime:   otherEnd,
	}, nil
}
