// Package timing provides a small scoped-timer helper for logging how
// long the expensive per-pair extraction and scoring operations take. The original
// tooling this engine is modeled on had these checks wired in but
// commented out in production; they are enabled here since an idle
// log.Printf costs nothing once discovery is already dominated by FFT
// work.
package timing

import (
	"log"
	"time"
)

// Track starts a timer for name and returns a function that logs the
// elapsed duration when called. The intended use is a deferred call at
// the top of the operation being measured:
//
//	defer timing.Track("getIntroFromPair")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		log.Printf("%s took %s", name, time.Since(start))
	}
}
