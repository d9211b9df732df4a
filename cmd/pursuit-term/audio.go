package main

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/milk9111/pursuit/assets"
)

const sampleRate = beep.SampleRate(44100)

// loop plays the shared background arpeggio through the speaker.
type loop struct {
	ctrl *beep.Ctrl
}

func newLoop() (*loop, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	arpeggio, err := arpeggioStreamer(sampleRate, assets.LoopNotes(), assets.BeatDuration)
	if err != nil {
		return nil, err
	}
	ctrl := &beep.Ctrl{Streamer: &effects.Volume{Streamer: arpeggio, Base: 2, Volume: -3}, Paused: true}
	speaker.Play(ctrl)
	return &loop{ctrl: ctrl}, nil
}

// arpeggioStreamer cycles through notes forever, one beat each.
func arpeggioStreamer(sr beep.SampleRate, notes []float64, beat time.Duration) (beep.Streamer, error) {
	if len(notes) == 0 {
		return nil, fmt.Errorf("arpeggio: no notes")
	}
	tones := make([]beep.Streamer, len(notes))
	for i, freq := range notes {
		tone, err := generators.SineTone(sr, freq)
		if err != nil {
			return nil, fmt.Errorf("arpeggio: note %d: %w", i, err)
		}
		tones[i] = tone
	}
	n := sr.N(beat)
	next := 0
	return beep.Iterate(func() beep.Streamer {
		s := beep.Take(n, tones[next])
		next = (next + 1) % len(tones)
		return s
	}), nil
}

// Toggle flips playback and reports whether the loop is now audible.
func (l *loop) Toggle() bool {
	if l == nil {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	l.ctrl.Paused = !l.ctrl.Paused
	return !l.ctrl.Paused
}

func (l *loop) Close() {
	if l == nil {
		return
	}
	speaker.Clear()
	speaker.Close()
}
