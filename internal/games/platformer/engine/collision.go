package engine

// Overlap reports strict AABB intersection. Boxes that only share an edge
// do not overlap.
func Overlap(a, b Actor) bool {
	return a.Right() > b.Pos.X() &&
		a.Pos.X() < b.Right() &&
		a.Bottom() > b.Pos.Y() &&
		a.Pos.Y() < b.Bottom()
}

// firstContact returns the index of the first live actor overlapping the
// player, scanning in roster order. Returns -1 when nothing overlaps.
func (s State) firstContact() int {
	if len(s.actors) == 0 || s.actors[0].Kind != KindPlayer {
		return -1
	}
	player := s.actors[0]
	for i := 1; i < len(s.actors); i++ {
		if Overlap(s.actors[i], player) {
			return i
		}
	}
	return -1
}

// collide resolves contact between the player and the enemy at index i.
// A falling player stomps the enemy and rebounds at half jump speed;
// any other contact kills the player. The receiver is not modified.
func (s State) collide(i int) State {
	player := s.actors[0]
	enemy := s.actors[i]

	if player.Speed.Y() > 0 {
		player.Speed = V(player.Speed.X(), -s.params.JumpSpeed/2)

		actors := make([]Actor, 0, len(s.actors)-1)
		actors = append(actors, player)
		actors = append(actors, s.actors[1:i]...)
		actors = append(actors, s.actors[i+1:]...)

		next := State{
			params: s.params,
			actors: actors,
			dead:   appendDead(s.dead, enemy),
			status: Playing,
		}
		if next.Enemies() == 0 {
			next.status = Won
		}
		return next
	}

	actors := make([]Actor, len(s.actors)-1)
	copy(actors, s.actors[1:])
	return State{
		params: s.params,
		actors: actors,
		dead:   appendDead(s.dead, player),
		status: Lost,
	}
}

// appendDead returns a new dead roster; the old backing array is never shared.
func appendDead(dead []Actor, a Actor) []Actor {
	out := make([]Actor, len(dead), len(dead)+1)
	copy(out, dead)
	return append(out, a)
}
