// Package scanner implements the chunk-scan step used to locate a
// candidate intro region inside one signal by repeatedly matching short
// patches cut from a second signal against it and clustering the
// resulting match positions into contiguous blocks.
package scanner

import (
	"fmt"
	"math"

	"github.com/go-audio-tools/introfinder/internal/signal"
	"github.com/go-audio-tools/introfinder/internal/similarity"
)

// Result describes the contiguous block of match positions chosen as the
// best candidate intro region, in seconds relative to the start of the
// signal that was scanned against.
type Result struct {
	StartTime  float32
	EndTime    float32
	PatchStart int
	PatchEnd   int
}

// block is a contiguous run of above-average match positions being
// accumulated while scanning results in order.
type block struct {
	startTime, endTime   float32
	patchStart, patchEnd int
}

// Cluster groups a sequence of per-patch correlation results (one per
// patchDuration-second chunk, in chunk order) into contiguous blocks and
// returns the one spanning the largest timespan, extended by one
// patchDuration to account for the chunk whose start position was
// recorded as its match timestamp.
//
// A result joins the current block if its timestamp lands within
// patchDuration+1 seconds of the block's end, or if it falls strictly
// inside the block's existing span (the patch may have matched an
// earlier, more self-similar occurrence inside the same intro); otherwise
// it starts a new block. Only results at or above the mean match value
// are considered at all.
func Cluster(results []similarity.CorrelateResult, patchDuration int) (Result, error) {
	if len(results) == 0 {
		return Result{}, fmt.Errorf("scanner: Cluster: no results to cluster")
	}

	var valueSum float32
	for _, r := range results {
		valueSum += r.Value
	}
	valueMean := valueSum / float32(len(results))

	blocks := []block{{
		startTime: results[0].Timestamp,
		endTime:   results[0].Timestamp,
	}}
	cur := 0

	for i, r := range results {
		if r.Value < valueMean {
			continue
		}

		timespan := float32(math.Abs(float64(r.Timestamp - blocks[cur].endTime)))
		switch {
		case timespan < float32(patchDuration+1):
			if r.Timestamp > blocks[cur].endTime {
				blocks[cur].endTime = r.Timestamp
			}
			blocks[cur].patchEnd = i * patchDuration
		case r.Timestamp > blocks[cur].startTime && r.Timestamp < blocks[cur].endTime:
			blocks[cur].endTime += float32(patchDuration)
			blocks[cur].patchEnd = i * patchDuration
		default:
			blocks = append(blocks, block{
				startTime:  r.Timestamp,
				endTime:    r.Timestamp,
				patchStart: i * patchDuration,
				patchEnd:   i * patchDuration,
			})
			cur++
		}
	}

	best := blocks[0]
	bestSpan := best.endTime - best.startTime
	for _, b := range blocks[1:] {
		span := b.endTime - b.startTime
		if span > bestSpan {
			best = b
			bestSpan = span
		}
	}

	if best.startTime >= best.endTime {
		return Result{}, fmt.Errorf("scanner: Cluster: best block has non-positive timespan")
	}

	best.endTime += float32(patchDuration)
	return Result{
		StartTime:  best.startTime,
		EndTime:    best.endTime,
		PatchStart: best.patchStart,
		PatchEnd:   best.patchEnd,
	}, nil
}

// Scan cuts two into non-overlapping patchDuration-second patches over
// [patchStart, min(patchEnd, sourceEnd)) seconds, locates each patch's best
// alignment inside one, and clusters the resulting positions with Cluster.
func Scan(one, two *signal.FloatSignal, patchStart, patchEnd, patchDuration int, sourceEnd float32, sampleRate float32) (Result, error) {
	if patchEnd <= patchStart {
		return Result{}, fmt.Errorf("scanner: Scan: patchEnd %d must be greater than patchStart %d", patchEnd, patchStart)
	}

	var results []similarity.CorrelateResult
	for i := patchStart; float32(i+patchDuration) < float32(patchEnd) && float32(i) < sourceEnd; i += patchDuration {
		patch, err := similarity.Slice(two, float32(i), float32(i+patchDuration), sampleRate)
		if err != nil {
			return Result{}, fmt.Errorf("scanner: Scan: slicing patch at %ds: %w", i, err)
		}
		match, err := similarity.BestPatchPosition(one, patch, sampleRate)
		if err != nil {
			return Result{}, fmt.Errorf("scanner: Scan: matching patch at %ds: %w", i, err)
		}
		results = append(results, match)
	}

	return Cluster(results, patchDuration)
}
