package game

// EntityID is a stable handle to an entity. IDs are never reused within a run.
type EntityID uint32

// Tag classifies an entity for predicate scans.
type Tag uint8

const (
	TagPlayer Tag = iota
	TagBot
	TagBall
)

// Store is the entity table. Components live in parallel arrays indexed
// densely; a lookup map gives O(1) access by stable ID. Despawn swap-removes,
// so iteration order is stable between despawns but not across them.
type Store struct {
	ids  []EntityID
	tags []Tag
	posX []float64
	posY []float64
	velX []float64
	velY []float64

	index  map[EntityID]int
	nextID EntityID
}

func NewStore() *Store {
	return &Store{
		index:  make(map[EntityID]int),
		nextID: 1,
	}
}

// Spawn creates an entity at the given center position with zero velocity.
func (s *Store) Spawn(tag Tag, x, y float64) EntityID {
	id := s.nextID
	s.nextID++

	s.index[id] = len(s.ids)
	s.ids = append(s.ids, id)
	s.tags = append(s.tags, tag)
	s.posX = append(s.posX, x)
	s.posY = append(s.posY, y)
	s.velX = append(s.velX, 0)
	s.velY = append(s.velY, 0)

	return id
}

// Despawn removes an entity. It reports whether the entity was live.
func (s *Store) Despawn(id EntityID) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}

	last := len(s.ids) - 1
	if i != last {
		s.ids[i] = s.ids[last]
		s.tags[i] = s.tags[last]
		s.posX[i] = s.posX[last]
		s.posY[i] = s.posY[last]
		s.velX[i] = s.velX[last]
		s.velY[i] = s.velY[last]
		s.index[s.ids[i]] = i
	}

	s.ids = s.ids[:last]
	s.tags = s.tags[:last]
	s.posX = s.posX[:last]
	s.posY = s.posY[:last]
	s.velX = s.velX[:last]
	s.velY = s.velY[:last]
	delete(s.index, id)

	return true
}

// Len returns the number of live entities.
func (s *Store) Len() int {
	return len(s.ids)
}

// Count returns the number of live entities carrying the given tag.
func (s *Store) Count(tag Tag) int {
	n := 0
	for _, t := range s.tags {
		if t == tag {
			n++
		}
	}
	return n
}

// Pos returns an entity's center position.
func (s *Store) Pos(id EntityID) (x, y float64, ok bool) {
	i, ok := s.index[id]
	if !ok {
		return 0, 0, false
	}
	return s.posX[i], s.posY[i], true
}

// Vel returns an entity's velocity.
func (s *Store) Vel(id EntityID) (vx, vy float64, ok bool) {
	i, ok := s.index[id]
	if !ok {
		return 0, 0, false
	}
	return s.velX[i], s.velY[i], true
}

// SetPos moves an entity. Missing IDs are ignored.
func (s *Store) SetPos(id EntityID, x, y float64) {
	if i, ok := s.index[id]; ok {
		s.posX[i] = x
		s.posY[i] = y
	}
}

// SetVel sets an entity's velocity. Missing IDs are ignored.
func (s *Store) SetVel(id EntityID, vx, vy float64) {
	if i, ok := s.index[id]; ok {
		s.velX[i] = vx
		s.velY[i] = vy
	}
}
