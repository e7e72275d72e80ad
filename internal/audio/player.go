// Package audio synthesizes all sound effects at runtime, so the binary
// ships no assets. Speaker initialization failure disables sound instead of
// failing the game.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Player owns the mixer and maps game events to short synthesized effects.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewPlayer creates a player with sound disabled until Initialize succeeds.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. On error the player stays silent and the
// error is returned for logging only.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences everything.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.mixer.Clear()
	p.initialized = false
}

// SetMuted toggles sound without tearing down the speaker.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// Muted reports the current mute state.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// ToggleMute flips the mute state and returns the new value.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return p.muted
}

// play queues a finite streamer on the mixer.
func (p *Player) play(streamer beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	p.mixer.Add(streamer)
}

// WallBounce is a short mid blip.
func (p *Player) WallBounce() {
	p.play(tone(440, 40*time.Millisecond, 0.12))
}

// PaddleBounce is slightly lower and longer than a wall hit.
func (p *Player) PaddleBounce() {
	p.play(tone(330, 60*time.Millisecond, 0.15))
}

// BrickBreak pitches up with the brick's palette index so rows sound
// different.
func (p *Player) BrickBreak(color int) {
	freq := 520 + 40*float64(color%10)
	p.play(tone(freq, 70*time.Millisecond, 0.16))
}

// CollectibleCaught is a quick upward chirp.
func (p *Player) CollectibleCaught() {
	p.play(sweep(400, 900, 120*time.Millisecond, 0.14))
}

// LifeLost is a falling tone.
func (p *Player) LifeLost() {
	p.play(sweep(440, 110, 350*time.Millisecond, 0.18))
}

// LevelCleared is a rising fanfare sweep.
func (p *Player) LevelCleared() {
	p.play(sweep(260, 1040, 450*time.Millisecond, 0.16))
}

// SessionWon is the long victory sweep.
func (p *Player) SessionWon() {
	p.play(sweep(260, 1560, 900*time.Millisecond, 0.18))
}

// SessionLost is a long falling groan.
func (p *Player) SessionLost() {
	p.play(sweep(330, 65, 900*time.Millisecond, 0.18))
}

// tone returns a fixed-frequency sine burst with an exponential decay
// envelope.
func tone(freq float64, dur time.Duration, gain float64) beep.Streamer {
	return beep.Take(sampleRate.N(dur), &toneGenerator{freq: freq, gain: gain})
}

// sweep returns a sine burst whose frequency glides from start to end over
// the duration.
func sweep(startFreq, endFreq float64, dur time.Duration, gain float64) beep.Streamer {
	total := sampleRate.N(dur)
	return beep.Take(total, &sweepGenerator{
		startFreq: startFreq,
		endFreq:   endFreq,
		total:     total,
		gain:      gain,
	})
}

type toneGenerator struct {
	freq  float64
	gain  float64
	pos   int
	phase float64
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(sampleRate)

		// Quick attack, exponential decay
		envelope := math.Min(t/0.005, 1.0) * math.Exp(-t*18)
		sample := g.gain * envelope * math.Sin(g.phase)

		g.phase += 2 * math.Pi * g.freq / float64(sampleRate)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error {
	return nil
}

type sweepGenerator struct {
	startFreq float64
	endFreq   float64
	total     int
	gain      float64
	pos       int
	phase     float64
}

func (g *sweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := float64(g.pos) / float64(g.total)
		if progress > 1 {
			progress = 1
		}
		freq := g.startFreq + (g.endFreq-g.startFreq)*progress

		// Fade in and out at the edges of the sweep
		envelope := math.Min(progress/0.05, 1.0) * math.Min((1-progress)/0.15+1e-9, 1.0)
		sample := g.gain * envelope * math.Sin(g.phase)

		g.phase += 2 * math.Pi * freq / float64(sampleRate)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *sweepGenerator) Err() error {
	return nil
}
