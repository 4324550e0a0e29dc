// Package introfinder locates the shared intro within a set of TV
// episode audio files by cross-correlating decoded, downsampled signals
// against each other in the frequency domain.
//
// # Quick Start
//
//	eng := introfinder.New(introfinder.DefaultConfig())
//	eng.AddFiles([]string{"s01e01.wav", "s01e02.wav", "s01e03.wav"})
//
//	go func() {
//	    for result := range eng.Results() {
//	        if result.IsBetter {
//	            log.Printf("%s: %.0f%% match at %.1fs-%.1fs",
//	                result.File, result.MatchPercent*100, result.StartTime, result.EndTime)
//	        }
//	    }
//	}()
//
//	if err := eng.Run(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
//
// # Architecture
//
// Audio is decoded and resampled to a very low analysis rate ([internal/decode]),
// then compared pairwise using overlap-save FFT cross-correlation
// ([internal/overlapsave], built on [internal/fftplan] and [internal/spectral]).
// [internal/similarity] turns raw cross-correlation into a best-alignment
// position and a normalized closeness score; [internal/scanner] clusters a
// sequence of those scores into a candidate intro span; [internal/pairing]
// turns a candidate span into a scored pair; and [internal/discovery] runs
// the multi-file search that seeds a candidate from one adjacent pair and
// checks it against every other file, retrying with a new seed when a
// seed's candidate never catches on.
//
// # Thread Safety
//
// A single [Engine] value is meant to be configured, have AddFiles called
// on it, and then have Run called exactly once. Run performs its own
// internal concurrency (files are decoded on worker goroutines; discovery
// then runs on the goroutine that called Run) and delivers results over
// the channels returned by Results
// and Progress; Engine itself is not safe for concurrent use from
// multiple goroutines beyond that.
package introfinder
