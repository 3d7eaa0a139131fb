package burrow

// Path is one amphipod's intended movement between two cells.
type Path struct {
	From, To Position
}

// Steps returns the number of elementary moves along the path.
func (p Path) Steps() int {
	return Steps(p.From, p.To)
}

// Move is a single legal movement of one amphipod, the unit the search
// explores.
type Move struct {
	Kind Kind
	Path Path
}

// Cost returns the energy the move takes.
func (m Move) Cost() int {
	return m.Path.Steps() * m.Kind.Cost()
}

// Moves enumerates every legal single-amphipod move out of s. Settled
// amphipods never move; the rest may walk into the deepest open cell
// of their home room when it holds no other kind, and amphipods still
// inside a room may step out to any free hallway stop. A move is only
// emitted when every cell along its path is free.
func (s State) Moves() []Move {
	moves := make([]Move, 0, len(HallStops)*numKinds)
	for ki := 0; ki < numKinds; ki++ {
		k := Kind(ki)
		home, canEnter := s.homeSlot(k)
		for _, p := range s.positions(k) {
			if s.settled(p, k) {
				continue
			}
			if canEnter && (p.hall || p.room != k) && !s.blocked(p, home) {
				moves = append(moves, Move{k, Path{p, home}})
			}
			if p.hall {
				continue
			}
			for _, h := range HallStops {
				if dest := Hall(h); !s.blocked(p, dest) {
					moves = append(moves, Move{k, Path{p, dest}})
				}
			}
		}
	}
	return moves
}

// blocked reports whether any cell on the path from p to dest,
// destination included, is occupied.
func (s State) blocked(p, dest Position) bool {
	hit := false
	walkFrom(p, dest, func(c Position) bool {
		if s.occupied(c) {
			hit = true
			return false
		}
		return true
	})
	return hit
}
