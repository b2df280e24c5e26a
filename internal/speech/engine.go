// Package speech delivers spoken feedback via a local text-to-speech
// binary, degrading to log output when none is available.
package speech

import (
	"fmt"
	"log"
	"os/exec"
	"strconv"
)

// Engine is the speech surface the frame loop talks to. Speak blocks until
// the utterance finishes, matching the trainer's pacing: a rep announcement
// holds the loop the way a human coach would.
type Engine interface {
	Speak(msg string) error
	Close() error
}

// Options configures engine selection.
type Options struct {
	// Enabled selects the speaking engine; when false the text engine is
	// used regardless of what binaries exist.
	Enabled bool

	// Rate is the speech rate in words per minute.
	Rate int

	// Volume is the speech volume, 0.0 to 1.0.
	Volume float64
}

// candidates are the TTS binaries probed in order.
var candidates = []string{"espeak-ng", "espeak", "say", "flite"}

// New selects an engine: the first available TTS binary on PATH when speech
// is enabled, otherwise a text-only fallback. Missing binaries degrade to
// the fallback rather than failing startup.
func New(opts Options) Engine {
	if !opts.Enabled {
		return &textEngine{}
	}

	for _, name := range candidates {
		path, err := exec.LookPath(name)
		if err != nil {
			continue
		}
		return &commandEngine{
			name:   name,
			path:   path,
			rate:   opts.Rate,
			volume: opts.Volume,
		}
	}

	log.Println("No TTS binary found, speech feedback degrades to text")
	return &textEngine{}
}

// commandEngine shells out to a local TTS binary for each utterance.
type commandEngine struct {
	name   string
	path   string
	rate   int
	volume float64
}

// args builds the binary-specific argument list for one utterance.
func (e *commandEngine) args(msg string) []string {
	switch e.name {
	case "espeak-ng", "espeak":
		// Amplitude range is 0-200.
		amplitude := int(e.volume * 200)
		return []string{"-s", strconv.Itoa(e.rate), "-a", strconv.Itoa(amplitude), msg}
	case "say":
		return []string{"-r", strconv.Itoa(e.rate), msg}
	default:
		return []string{"-t", msg}
	}
}

func (e *commandEngine) Speak(msg string) error {
	if msg == "" {
		return nil
	}
	cmd := exec.Command(e.path, e.args(msg)...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("speak via %s: %w", e.name, err)
	}
	return nil
}

func (e *commandEngine) Close() error { return nil }

// textEngine prints feedback instead of speaking it.
type textEngine struct{}

func (e *textEngine) Speak(msg string) error {
	if msg == "" {
		return nil
	}
	log.Printf("TTS: %s", msg)
	return nil
}

func (e *textEngine) Close() error { return nil }
