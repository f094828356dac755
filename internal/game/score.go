package game

import "strconv"

// Score is one side's counter together with its display string. Text is
// refreshed whenever Count changes.
type Score struct {
	Side  Side
	Count int
	Text  string
}

func (s *Score) refreshText() {
	if s.Count < 0 {
		// Cannot happen through scoring, but the display never shows garbage.
		s.Text = "0"
		return
	}
	s.Text = strconv.Itoa(s.Count)
}

// applyGoals drains the tick's goal events through both consumers: the score
// update and the despawn/counter decrement. Each event is handled exactly
// once by each, and the queue is cleared at the start of the next tick.
func (w *World) applyGoals() {
	for _, g := range w.goals {
		winner := g.Breached.Opponent()
		w.scores[winner].Count++
		w.scores[winner].refreshText()
		w.scoreChanges = append(w.scoreChanges, ScoreChangedEvent{Winner: winner})
	}

	for _, g := range w.goals {
		if w.store.Despawn(g.Ball) {
			w.ballCount--
		}
	}
}
