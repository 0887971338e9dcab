package mdp

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
)

// Save writes the utility table as a flat JSON object keyed by KeyFunc,
// indented by two spaces with keys sorted.
func (vi *ValueIteration[S, A]) Save(w io.Writer) error {
	vi.mu.RLock()
	flat := make(map[string]float64, len(vi.utilities))
	for s, u := range vi.utilities {
		flat[vi.key(s)] = u
	}
	vi.mu.RUnlock()

	out, err := json.MarshalIndent(flat, "", "  ")
	if err != nil {
		return fmt.Errorf("mdp: encode utilities: %w", err)
	}
	out = append(out, '\n')
	if _, err = w.Write(out); err != nil {
		return fmt.Errorf("mdp: write utilities: %w", err)
	}

	return nil
}

// Load replaces the utility table with the one read from r. States absent
// from the input, and terminal states, are reset to 0. A key that names no
// state is ErrUnknownStateKey and leaves the table untouched.
func (vi *ValueIteration[S, A]) Load(r io.Reader) error {
	var flat map[string]float64
	if err := json.NewDecoder(r).Decode(&flat); err != nil {
		return fmt.Errorf("mdp: decode utilities: %w", err)
	}

	next := make(map[S]float64, len(vi.states))
	for _, s := range vi.states {
		next[s] = 0
	}
	for k, u := range flat {
		s, ok := vi.byKey[k]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownStateKey, k)
		}
		if !vi.mdp.IsTerminal(s) {
			next[s] = u
		}
	}

	vi.mu.Lock()
	vi.utilities = next
	vi.mu.Unlock()
	log.Debug().Int("states", len(flat)).Msg("utilities-loaded")

	return nil
}

// SaveFile writes the utilities to path, creating or truncating it.
func (vi *ValueIteration[S, A]) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("mdp: %w", err)
	}
	if err = vi.Save(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// LoadFile reads utilities previously written by SaveFile.
func (vi *ValueIteration[S, A]) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("mdp: %w", err)
	}
	defer f.Close()

	return vi.Load(f)
}
