package introfinder

import (
	"context"
	"fmt"
	"log"

	"github.com/go-audio-tools/introfinder/internal/decode"
	"github.com/go-audio-tools/introfinder/internal/discovery"
	"github.com/go-audio-tools/introfinder/internal/fftplan"
	"github.com/go-audio-tools/introfinder/internal/workerpool"
)

// Engine decodes a set of audio files and searches them for a shared
// intro. Configure it, call AddFiles, start reading from Results and
// Progress, and then call Run.
type Engine struct {
	cfg     Config
	decoder decode.Decoder
	paths   []string

	results  chan Result
	progress chan struct{}
}

// New returns an Engine configured with cfg, decoding files with the
// default WAV decoder at cfg.SampleRate.
func New(cfg Config) *Engine {
	const channelBuffer = 256
	return &Engine{
		cfg:      cfg,
		decoder:  decode.NewWAVDecoder(float64(cfg.SampleRate)),
		results:  make(chan Result, channelBuffer),
		progress: make(chan struct{}, channelBuffer),
	}
}

// WithDecoder overrides the decoder used to turn file paths into
// analysis-rate signals; useful for testing or for decoding formats other
// than WAV.
func (e *Engine) WithDecoder(d decode.Decoder) *Engine {
	e.decoder = d
	return e
}

// AddFiles queues filepaths for decoding on the next call to Run.
func (e *Engine) AddFiles(filepaths []string) {
	e.paths = append(e.paths, filepaths...)
}

// Results returns the channel Run delivers per-file match outcomes on.
// It is closed when Run returns.
func (e *Engine) Results() <-chan Result { return e.results }

// Progress returns the channel Run pings once per file as it is decoded,
// once per file whose score first reaches the acceptance threshold, and
// once per file still unresolved when discovery ends. It is closed when
// Run returns.
func (e *Engine) Progress() <-chan struct{} { return e.progress }

// Run decodes every queued file and searches them for a shared intro,
// delivering results over Results and progress pings over Progress as it
// goes. It returns ErrTooFewFiles if fewer than two files decode
// successfully, ErrNoIntroFound if no file's score ever reached the
// acceptance threshold, or the first decoder failure encountered. It
// returns ctx.Err() if ctx is canceled before the search completes.
func (e *Engine) Run(ctx context.Context) error {
	defer close(e.results)
	defer close(e.progress)

	if e.cfg.WisdomPath != "" {
		if err := fftplan.LoadWisdom(e.cfg.WisdomPath); err != nil {
			log.Printf("introfinder: loading FFT wisdom from %q: %v", e.cfg.WisdomPath, err)
		}
	}

	files, err := e.decodeAll(ctx)
	if err != nil {
		return err
	}
	if len(files) < 2 {
		return ErrTooFewFiles
	}

	foundAny := false
	emit := func(r Result) {
		if r.IsProgress {
			e.progress <- struct{}{}
			if r.File != "" {
				foundAny = true
			}
		}
		e.results <- r
	}

	if err := discovery.Run(ctx, files, e.cfg.discoveryConfig(), emit); err != nil {
		return err
	}
	if !foundAny {
		return ErrNoIntroFound
	}
	return nil
}

// decodeAll decodes every queued file concurrently, skipping files with
// no audio content (an input deficiency, not a failure) and surfacing the
// first genuine decoder failure to the caller.
func (e *Engine) decodeAll(ctx context.Context) ([]discovery.FileSignal, error) {
	decoded := make([]discovery.FileSignal, len(e.paths))
	errs := make([]error, len(e.paths))

	workerpool.ParallelFor(len(e.paths), func(i int) {
		if ctx.Err() != nil {
			return
		}
		sig, err := e.decoder.Decode(e.paths[i], e.cfg.SourceStart, e.cfg.SourceEnd-e.cfg.SourceStart)
		switch {
		case err == nil:
			decoded[i] = discovery.FileSignal{Path: e.paths[i], Signal: sig}
		case decode.IsInputDeficiency(err):
			log.Printf("introfinder: skipping %q: %v", e.paths[i], err)
		default:
			errs[i] = err
		}
		e.progress <- struct{}{}
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("introfinder: decoding %q: %w", e.paths[i], err)
		}
	}

	files := decoded[:0]
	for _, fs := range decoded {
		if fs.Signal != nil {
			files = append(files, fs)
		}
	}
	return files, nil
}
