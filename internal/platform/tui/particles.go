package tui

import (
	"math"
	"math/rand"

	"github.com/breakline/arkanoid/internal/core"
	"github.com/breakline/arkanoid/internal/engine"
)

const (
	burstSize       = 18
	particleGravity = 200.0
	starCount       = 48
)

// particle is a short-lived debris fragment in field coordinates.
type particle struct {
	x, y   float64
	vx, vy float64
	life   float64
	color  core.Color
}

// ParticleSystem owns all cosmetic effects. It reads the engine's events but
// never feeds anything back, so the simulation stays deterministic whether or
// not effects run.
type ParticleSystem struct {
	particles []particle
	rng       *rand.Rand
	elapsed   float64
}

// NewParticleSystem creates an effect system with its own random stream.
func NewParticleSystem(seed int64) *ParticleSystem {
	return &ParticleSystem{rng: rand.New(rand.NewSource(seed))}
}

// HandleEvents spawns effects for the step's event batch.
func (ps *ParticleSystem) HandleEvents(events []engine.Event) {
	for _, e := range events {
		switch e.Kind {
		case engine.EventBrickBreak:
			ps.burst(e.X, e.Y, burstSize, core.BrickColor(e.Color))
		case engine.EventCollectibleCaught:
			ps.burst(e.X, e.Y, burstSize/2, core.ColorBrightYellow)
		case engine.EventLifeLost:
			ps.burst(e.X, e.Y, burstSize, core.ColorBrightRed)
		}
	}
}

// burst scatters n fragments from a point.
func (ps *ParticleSystem) burst(x, y float64, n int, color core.Color) {
	for i := 0; i < n; i++ {
		angle := ps.rng.Float64() * 2 * math.Pi
		speed := 60 + ps.rng.Float64()*120
		ps.particles = append(ps.particles, particle{
			x:     x,
			y:     y,
			vx:    math.Cos(angle) * speed,
			vy:    math.Sin(angle)*speed - 40,
			life:  0.5 + ps.rng.Float64()*0.5,
			color: color,
		})
	}
}

// Update advances all fragments and drops the expired ones.
func (ps *ParticleSystem) Update(dt float64) {
	ps.elapsed += dt

	alive := ps.particles[:0]
	for _, p := range ps.particles {
		p.life -= dt
		if p.life <= 0 {
			continue
		}
		p.vy += particleGravity * dt
		p.x += p.vx * dt
		p.y += p.vy * dt
		alive = append(alive, p)
	}
	ps.particles = alive
}

// Count reports the number of live fragments.
func (ps *ParticleSystem) Count() int {
	return len(ps.particles)
}

// Clear drops all fragments, used when leaving play.
func (ps *ParticleSystem) Clear() {
	ps.particles = ps.particles[:0]
}

// Draw paints fragments over the playfield.
func (ps *ParticleSystem) Draw(s *core.Screen, vp viewport) {
	for _, p := range ps.particles {
		cx, cy := vp.toCell(p.x, p.y)
		ch := '·'
		if p.life > 0.4 {
			ch = '•'
		}
		s.SetColored(cx, cy, ch, p.color)
	}
}

// DrawStarfield paints a twinkling backdrop for the menu. Star positions are
// hashed from their index so the field is stable across frames, only the
// twinkle phase moves.
func (ps *ParticleSystem) DrawStarfield(s *core.Screen) {
	w, h := s.Width(), s.Height()
	if w == 0 || h == 0 {
		return
	}
	for i := 0; i < starCount; i++ {
		hash := uint32(i)*2654435761 + 12345
		x := int(hash % uint32(w))
		y := int((hash / uint32(w)) % uint32(h))

		phase := ps.elapsed*2 + float64(i)*0.7
		if math.Sin(phase) > 0.2 {
			s.SetColored(x, y, '·', core.ColorGray)
		}
	}
}
