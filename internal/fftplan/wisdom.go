package fftplan

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadWisdom reads a persisted list of FFT sizes from path and constructs a
// transform for each positive size under the planner lock. The transforms
// are discarded afterwards: plans built later construct their own, so
// loading wisdom does not shorten their construction.
// A missing or unparseable file is reported as an error for the caller to
// log as a warning; it is never fatal, matching the backend's "wisdom is
// optional" contract.
func LoadWisdom(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("fftplan: could not read wisdom file %q: %w", path, err)
	}
	var sizes []int
	if err := json.Unmarshal(raw, &sizes); err != nil {
		return fmt.Errorf("fftplan: could not parse wisdom file %q: %w", path, err)
	}
	for _, n := range sizes {
		if n <= 0 {
			continue
		}
		newTransform(n)
	}
	return nil
}

// ExportWisdom persists the given FFT sizes to path as JSON, in the format
// LoadWisdom reads.
func ExportWisdom(path string, sizes []int) error {
	raw, err := json.Marshal(sizes)
	if err != nil {
		return fmt.Errorf("fftplan: could not encode wisdom: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("fftplan: could not write wisdom file %q: %w", path, err)
	}
	return nil
}
