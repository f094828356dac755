package game

// integrate advances every entity by its velocity. No bounds checks here:
// collision resolution runs afterwards and sees the post-move positions.
func (w *World) integrate() {
	s := w.store
	for i := range s.posX {
		s.posX[i] += s.velX[i]
		s.posY[i] += s.velY[i]
	}
}
