package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const SampleRate = 44100

// loopNotes is the background arpeggio in Hz, one note per beat.
var loopNotes = []float64{
	220.00, 261.63, 329.63, 392.00,
	196.00, 246.94, 293.66, 392.00,
	174.61, 220.00, 261.63, 349.23,
	196.00, 246.94, 293.66, 369.99,
}

const beatSeconds = 0.25

// BeatDuration is how long each loop note sounds.
const BeatDuration = time.Duration(beatSeconds * float64(time.Second))

// LoopNotes returns the background arpeggio so other audio backends can play
// the same loop.
func LoopNotes() []float64 {
	return append([]float64(nil), loopNotes...)
}

// SynthesizeLoop renders the background loop as 16-bit little-endian stereo
// PCM, the format ebiten's audio players consume.
func SynthesizeLoop(sampleRate int) []byte {
	perBeat := int(float64(sampleRate) * beatSeconds)
	buf := make([]byte, 0, perBeat*len(loopNotes)*4)
	var frame [4]byte

	for _, freq := range loopNotes {
		for i := 0; i < perBeat; i++ {
			t := float64(i) / float64(sampleRate)
			// Short attack, exponential tail.
			env := math.Min(1, float64(i)/(0.01*float64(sampleRate))) * math.Exp(-4*t)
			v := 0.6*math.Sin(2*math.Pi*freq*t) + 0.2*math.Sin(2*math.Pi*freq*2*t)
			s := int16(v * env * 0.35 * math.MaxInt16)
			binary.LittleEndian.PutUint16(frame[0:], uint16(s))
			binary.LittleEndian.PutUint16(frame[2:], uint16(s))
			buf = append(buf, frame[:]...)
		}
	}
	return buf
}

func audioContext() *audio.Context {
	if ctx := audio.CurrentContext(); ctx != nil {
		return ctx
	}
	return audio.NewContext(SampleRate)
}

// LoopPlayer plays the synthesized loop forever and is toggled by the host.
type LoopPlayer struct {
	player *audio.Player
}

func NewLoopPlayer(volume float64) (*LoopPlayer, error) {
	ctx := audioContext()
	pcm := SynthesizeLoop(ctx.SampleRate())
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	p, err := ctx.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("assets: loop player: %w", err)
	}
	p.SetVolume(volume)
	return &LoopPlayer{player: p}, nil
}

// Toggle flips between playing and paused and reports the new state.
func (l *LoopPlayer) Toggle() bool {
	if l == nil || l.player == nil {
		return false
	}
	if l.player.IsPlaying() {
		l.player.Pause()
		return false
	}
	l.player.Play()
	return true
}

func (l *LoopPlayer) Playing() bool {
	return l != nil && l.player != nil && l.player.IsPlaying()
}

func (l *LoopPlayer) Close() error {
	if l == nil || l.player == nil {
		return nil
	}
	return l.player.Close()
}
