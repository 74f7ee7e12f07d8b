// Package feed produces the stream of pitch estimates that drives the gauge.
// Audio analysis lives elsewhere; the sources here are synthetic and exist so
// the gauge can be exercised and demonstrated without an input device.
package feed

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/edward-ap/minituner/internal/pitch"
)

// Reading is a single pitch estimate.
type Reading struct {
	Frequency float64
	Detected  bool
}

// Source yields the reading at a point in time measured from the start of
// the feed.
type Source interface {
	Sample(elapsed time.Duration) Reading
}

// Mode names a feed selectable from the config and the UI.
type Mode string

const (
	ModeSweep   Mode = "sweep"
	ModeStrings Mode = "strings"
	ModeManual  Mode = "manual"
)

// Modes lists the selectable modes in menu order.
func Modes() []Mode { return []Mode{ModeStrings, ModeSweep, ModeManual} }

var (
	// ErrUnknownMode is returned for mode names that are not recognised.
	ErrUnknownMode = errors.New("unknown feed mode")
	// ErrNoSource is returned by New for modes driven by user input.
	ErrNoSource = errors.New("mode has no automatic source")
)

// ParseMode accepts mode names case-insensitively.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes() {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Options tunes the synthetic sources.
type Options struct {
	SweepPeriod time.Duration
	Dwell       time.Duration
	Gap         time.Duration
	DetuneCents float64
}

// New builds the source for mode.
func New(mode Mode, opts Options) (Source, error) {
	switch mode {
	case ModeSweep:
		return NewSweep(pitch.MinFrequency, pitch.MaxFrequency, opts.SweepPeriod), nil
	case ModeStrings:
		return NewStrings(opts.Dwell, opts.Gap, opts.DetuneCents), nil
	case ModeManual:
		return nil, ErrNoSource
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

// Sweep glides exponentially from From to To over Period and starts over.
type Sweep struct {
	From, To float64
	Period   time.Duration
}

// NewSweep returns a sweep; a non-positive period falls back to ten seconds.
func NewSweep(from, to float64, period time.Duration) *Sweep {
	if period <= 0 {
		period = 10 * time.Second
	}
	return &Sweep{From: from, To: to, Period: period}
}

// Sample implements Source.
func (s *Sweep) Sample(elapsed time.Duration) Reading {
	if s.From <= 0 || s.To <= 0 {
		return Reading{}
	}
	if s.Period <= 0 {
		return Reading{Frequency: s.From, Detected: true}
	}
	progress := float64(elapsed%s.Period) / float64(s.Period)
	if progress < 0 {
		progress += 1
	}
	return Reading{
		Frequency: s.From * math.Pow(s.To/s.From, progress),
		Detected:  true,
	}
}

// Strings plays each open string in turn: a short silence, then the string
// starting DetuneCents sharp and settling onto pitch over Dwell.
type Strings struct {
	Dwell       time.Duration
	Gap         time.Duration
	DetuneCents float64
	labels      []pitch.Label
}

// NewStrings returns a string cycler with defaults for non-positive timings.
func NewStrings(dwell, gap time.Duration, detuneCents float64) *Strings {
	if dwell <= 0 {
		dwell = 3 * time.Second
	}
	if gap < 0 {
		gap = 0
	}
	return &Strings{Dwell: dwell, Gap: gap, DetuneCents: detuneCents, labels: pitch.StringLabels()}
}

// Sample implements Source.
func (s *Strings) Sample(elapsed time.Duration) Reading {
	slot := s.Dwell + s.Gap
	if len(s.labels) == 0 || s.Dwell <= 0 || slot <= 0 {
		return Reading{}
	}
	cycle := slot * time.Duration(len(s.labels))
	at := elapsed % cycle
	if at < 0 {
		at += cycle
	}
	label := s.labels[int(at/slot)]
	within := at % slot
	if within < s.Gap {
		// keep the indicator where the next string will appear
		return Reading{Frequency: label.Frequency}
	}
	settle := 1 - float64(within-s.Gap)/float64(s.Dwell)
	cents := s.DetuneCents * settle
	return Reading{
		Frequency: label.Frequency * math.Pow(2, cents/1200),
		Detected:  true,
	}
}

// Fixed always reports the same reading.
type Fixed Reading

// Sample implements Source.
func (f Fixed) Sample(time.Duration) Reading { return Reading(f) }
