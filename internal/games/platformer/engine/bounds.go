package engine

// Arena is the fixed playable rectangle [0, W) x [0, H).
type Arena struct {
	W, H float64
}

// TouchesWall reports whether a box at pos would overlap or cross an arena edge.
// Low edges are strict (a box may sit at 0) while high edges are inclusive
// (a box may not end exactly at W or H).
func (a Arena) TouchesWall(pos, size Vec) bool {
	top := pos.Y()
	left := pos.X()
	bottom := top + size.Y()
	right := left + size.X()

	return top < 0 || left < 0 ||
		bottom >= a.H || right >= a.W
}

// Contains reports whether the box lies fully inside the arena.
func (a Arena) Contains(pos, size Vec) bool {
	return !a.TouchesWall(pos, size)
}
