// Command introfind scans a set of episode audio files for a shared
// intro and prints the files, time ranges, and match scores it finds.
//
// Usage:
//
//	introfind s01e01.wav s01e02.wav s01e03.wav
//	introfind -threshold 0.85 -wisdom fft.wisdom *.wav
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-audio-tools/introfinder"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	threshold := flag.Float64("threshold", float64(introfinder.DefaultAcceptanceThreshold), "acceptance threshold in [0,1]")
	sourceEnd := flag.Float64("source-end", float64(introfinder.DefaultSourceEnd), "seconds of each file to search")
	minLength := flag.Float64("min-length", float64(introfinder.DefaultMinIntroLength), "shortest span, in seconds, accepted as a real intro")
	wisdom := flag.String("wisdom", "", "path to a precomputed FFT wisdom file")
	verbose := flag.Bool("v", false, "verbose output")
	flag.Parse()

	paths := flag.Args()
	if len(paths) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] file1.wav file2.wav [...]\n\n", os.Args[0])
		flag.PrintDefaults()
		return fmt.Errorf("at least two files are required")
	}

	cfg := introfinder.DefaultConfig()
	cfg.AcceptanceThreshold = float32(*threshold)
	cfg.SourceEnd = float32(*sourceEnd)
	cfg.MinIntroLength = float32(*minLength)
	cfg.WisdomPath = *wisdom

	if *verbose {
		log.Printf("Files: %d", len(paths))
		log.Printf("Acceptance threshold: %.2f", cfg.AcceptanceThreshold)
		log.Printf("Source window: %.0fs", cfg.SourceEnd)
	}

	eng := introfinder.New(cfg)
	eng.AddFiles(paths)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case result, ok := <-eng.Results():
				if !ok {
					return
				}
				if result.File == "" {
					continue
				}
				if result.IsBetter {
					fmt.Printf("%-40s %6.1f%%  [%6.1fs - %6.1fs]%s\n",
						result.File, result.MatchPercent*100, result.StartTime, result.EndTime,
						sourceMarker(result.IsSourceOfIntro))
				}
			case _, ok := <-eng.Progress():
				if !ok {
					continue
				}
				if *verbose {
					fmt.Fprint(os.Stderr, ".")
				}
			}
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	err := eng.Run(ctx)
	<-done

	if errors.Is(err, introfinder.ErrNoIntroFound) {
		fmt.Println("no shared intro found")
		return nil
	}
	return err
}

func sourceMarker(isSource bool) string {
	if isSource {
		return "  (seed)"
	}
	return ""
}
