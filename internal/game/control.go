package game

import "math"

// Input is the sampled key state for the player paddle, one sample per tick.
type Input struct {
	Up   bool
	Down bool
}

// controlPlayer sets the player paddle's vertical velocity from the key
// state. Down wins when both keys are held. Horizontal velocity stays zero.
func (w *World) controlPlayer(in Input) {
	var vy float64
	if in.Down {
		vy = PaddleSpeed
	} else if in.Up {
		vy = -PaddleSpeed
	}
	w.store.SetVel(w.player, 0, vy)
}

// controlBot tracks the nearest live ball: proportional vertical velocity,
// capped at BotMaxSpeed so the paddle never overshoots the ball in one tick.
// With no balls live the velocity is left untouched.
func (w *World) controlBot() {
	s := w.store
	bi, ok := s.index[w.bot]
	if !ok {
		return
	}
	bx, by := s.posX[bi], s.posY[bi]

	best := -1
	bestDist := math.MaxFloat64
	for i := range s.tags {
		if s.tags[i] != TagBall {
			continue
		}
		dx, dy := s.posX[i]-bx, s.posY[i]-by
		if d := dx*dx + dy*dy; d < bestDist {
			bestDist = d
			best = i
		}
	}
	if best < 0 {
		return
	}

	dy := s.posY[best] - by
	vy := math.Min(math.Abs(dy), BotMaxSpeed)
	if dy < 0 {
		vy = -vy
	}
	s.velY[bi] = vy
}

// clampPaddles repositions any paddle whose edge crossed a vertical bound so
// the edge sits exactly on it. Hard clamp, no bounce.
func (w *World) clampPaddles() {
	s := w.store
	for _, p := range w.paddles {
		i, ok := s.index[p.ID]
		if !ok {
			continue
		}
		hh := p.Height / 2
		if s.posY[i]+hh > w.halfH {
			s.posY[i] = w.halfH - hh
		} else if s.posY[i]-hh < -w.halfH {
			s.posY[i] = -w.halfH + hh
		}
	}
}
