package game

// Side identifies a half of the playfield. The player defends the left goal,
// the opponent (bot) defends the right.
type Side uint8

const (
	SidePlayer Side = iota
	SideOpponent
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SidePlayer {
		return SideOpponent
	}
	return SidePlayer
}

func (s Side) String() string {
	if s == SidePlayer {
		return "player"
	}
	return "opponent"
}

// GoalEvent records a ball crossing a side's goal line. Breached is the side
// whose goal was crossed; the opposite side scores. Events live for one tick.
type GoalEvent struct {
	Ball     EntityID
	Breached Side
}

// ScoreChangedEvent announces a point for Winner. Produced once per goal and
// kept until the next tick so external consumers (audio, UI) can react.
type ScoreChangedEvent struct {
	Winner Side
}
