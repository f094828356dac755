package game

import "math"

// resolveCollisions runs the per-ball checks in order: wall bounce, goal
// detection, paddle bounce. Each may rewrite the ball's velocity and later
// checks see the updated value. Wall bounce and goal detection are
// independent, so a ball in a corner can trigger both in one tick.
func (w *World) resolveCollisions() {
	s := w.store
	const half = BallSize / 2

	// Paddle rects are fixed for the whole pass.
	type rect struct {
		x, y, hw, hh float64
	}
	var rects [2]rect
	for side, p := range w.paddles {
		x, y, _ := s.Pos(p.ID)
		rects[side] = rect{x: x, y: y, hw: p.Width / 2, hh: p.Height / 2}
	}

	for i := range s.tags {
		if s.tags[i] != TagBall {
			continue
		}
		x, y := s.posX[i], s.posY[i]

		// Top/bottom wall: flip the vertical component, magnitude unchanged.
		if y+half > w.halfH || y-half < -w.halfH {
			s.velY[i] = -s.velY[i]
		}

		// Goal line: the breached side is the one the ball exited through.
		// Despawn is the lifecycle manager's job, not done here.
		if x+half > w.halfW || x-half < -w.halfW {
			breached := SideOpponent
			if x < 0 {
				breached = SidePlayer
			}
			w.goals = append(w.goals, GoalEvent{Ball: s.ids[i], Breached: breached})
		}

		// Paddles: on overlap the ball is redirected away from the paddle
		// center at constant speed. Sequential, last overlap wins.
		for _, r := range rects {
			if x-half < r.x+r.hw && x+half > r.x-r.hw &&
				y-half < r.y+r.hh && y+half > r.y-r.hh {
				dx, dy := x-r.x, y-r.y
				n := math.Hypot(dx, dy)
				if n == 0 {
					// Ball exactly on the paddle center: push it out flat.
					dx, n = 1, 1
				}
				s.velX[i] = dx / n * BallSpeed
				s.velY[i] = dy / n * BallSpeed
				w.paddleHits++
			}
		}
	}
}
