package burrow

import (
	"fmt"
	"log"
	"math"
	"slices"
	"strings"

	"tailscale.com/util/deephash"
)

// State is one configuration of the burrow: where every amphipod
// stands. It is a pure value; Apply returns a fresh State and never
// modifies the receiver.
//
// Pos holds numKinds*RoomSize cells grouped by kind, kind k's group at
// Pos[int(k)*RoomSize:(int(k)+1)*RoomSize]. Each group is kept sorted
// so that equal configurations are equal values.
type State struct {
	RoomSize int
	Pos      []Position
}

// FromRows builds a starting state from the room contents, the row next
// to the hallway first. Each row lists the four room cells left to
// right, e.g. "BCBD". The number of rows sets the room size.
func FromRows(rows ...string) State {
	size := len(rows)
	if size == 0 {
		log.Fatalf("burrow: no room rows")
	}
	var buckets [numKinds][]Position
	for depth, row := range rows {
		if len(row) != numKinds {
			log.Fatalf("burrow: bad room row %q", row)
		}
		for room := 0; room < numKinds; room++ {
			c := row[room]
			if c < 'A' || c > 'D' {
				log.Fatalf("burrow: bad amphipod %q in row %q", c, row)
			}
			k := Kind(c - 'A')
			buckets[k] = append(buckets[k], Slot(Kind(room), depth))
		}
	}
	s := State{RoomSize: size, Pos: make([]Position, 0, size*numKinds)}
	for ki, b := range buckets {
		if len(b) != size {
			log.Fatalf("burrow: %d %v amphipods, want %d", len(b), Kind(ki), size)
		}
		slices.SortFunc(b, Position.compare)
		s.Pos = append(s.Pos, b...)
	}
	return s
}

// Goal returns the solved burrow for the given room size.
func Goal(roomSize int) State {
	s := State{RoomSize: roomSize, Pos: make([]Position, 0, roomSize*numKinds)}
	for ki := 0; ki < numKinds; ki++ {
		for d := roomSize - 1; d >= 0; d-- {
			s.Pos = append(s.Pos, Slot(Kind(ki), d))
		}
	}
	return s
}

// positions returns kind k's group of cells, sorted canonically.
func (s State) positions(k Kind) []Position {
	return s.Pos[int(k)*s.RoomSize : (int(k)+1)*s.RoomSize]
}

// Occupant reports which kind, if any, stands at p.
func (s State) Occupant(p Position) (Kind, bool) {
	for i, q := range s.Pos {
		if q == p {
			return Kind(i / s.RoomSize), true
		}
	}
	return 0, false
}

func (s State) occupied(p Position) bool {
	_, ok := s.Occupant(p)
	return ok
}

// IsGoal reports whether every amphipod stands in its home room.
func (s State) IsGoal() bool {
	for ki := 0; ki < numKinds; ki++ {
		for _, p := range s.positions(Kind(ki)) {
			if p.hall || p.room != Kind(ki) {
				return false
			}
		}
	}
	return true
}

// CanEnterHomeRoom reports whether k's room holds no other kind, the
// precondition for any of k's amphipods to move in.
func (s State) CanEnterHomeRoom(k Kind) bool {
	for d := 0; d < s.RoomSize; d++ {
		if o, ok := s.Occupant(Slot(k, d)); ok && o != k {
			return false
		}
	}
	return true
}

// homeSlot returns the deepest open cell of k's room, or ok=false when
// the room holds another kind or is full.
func (s State) homeSlot(k Kind) (Position, bool) {
	open := -1
	for d := s.RoomSize - 1; d >= 0; d-- {
		if o, ok := s.Occupant(Slot(k, d)); ok {
			if o != k {
				return Position{}, false
			}
		} else if open == -1 {
			open = d
		}
	}
	if open == -1 {
		return Position{}, false
	}
	return Slot(k, open), true
}

// settled reports whether the k amphipod at p already stands in its
// home room with only its own kind behind it, so it never needs to
// move again.
func (s State) settled(p Position, k Kind) bool {
	if p.hall || p.room != k {
		return false
	}
	for d := int(p.depth) + 1; d < s.RoomSize; d++ {
		if o, ok := s.Occupant(Slot(k, d)); !ok || o != k {
			return false
		}
	}
	return true
}

// settledSuffix returns how many cells at the back of k's room already
// hold settled k amphipods.
func (s State) settledSuffix(k Kind) int {
	n := 0
	for d := s.RoomSize - 1; d >= 0; d-- {
		if o, ok := s.Occupant(Slot(k, d)); !ok || o != k {
			break
		}
		n++
	}
	return n
}

// HeuristicLowerBound returns an admissible estimate of the energy
// still needed to reach the goal: per kind, the amphipods not yet
// settled are matched to the remaining home-room depths by the
// cheapest assignment of collision-free path costs. The estimate never
// exceeds the true remaining cost and decreases by at most the cost of
// any legal move.
func (s State) HeuristicLowerBound() int {
	total := 0
	for ki := 0; ki < numKinds; ki++ {
		k := Kind(ki)
		depths := s.RoomSize - s.settledSuffix(k)
		if depths == 0 {
			continue
		}
		away := make([]Position, 0, depths)
		for _, p := range s.positions(k) {
			if !s.settled(p, k) {
				away = append(away, p)
			}
		}
		total += minAssignment(away, k, depths)
	}
	return total
}

// minAssignment returns the cheapest way to match each position with a
// distinct target depth 0..depths-1 of k's room, pricing each pair at
// its unobstructed path cost.
func minAssignment(pos []Position, k Kind, depths int) int {
	best := math.MaxInt
	var rec func(i int, used uint, sum int)
	rec = func(i int, used uint, sum int) {
		if sum >= best {
			return
		}
		if i == len(pos) {
			best = sum
			return
		}
		for d := 0; d < depths; d++ {
			if used&(1<<d) == 0 {
				rec(i+1, used|1<<d, sum+Steps(pos[i], Slot(k, d))*k.Cost())
			}
		}
	}
	rec(0, 0, 0)
	return best
}

// Apply returns the state after m. The path's start must hold an
// amphipod of m's kind; anything else is a bug in the caller.
func (s State) Apply(m Move) State {
	out := State{RoomSize: s.RoomSize, Pos: slices.Clone(s.Pos)}
	w := out.positions(m.Kind)
	i := slices.Index(w, m.Path.From)
	if i < 0 {
		panic(fmt.Sprintf("burrow: no %v amphipod at %v", m.Kind, m.Path.From))
	}
	w[i] = m.Path.To
	slices.SortFunc(w, Position.compare)
	return out
}

// Equal reports whether two states describe the same configuration.
func (s State) Equal(o State) bool {
	return s.RoomSize == o.RoomSize && slices.Equal(s.Pos, o.Pos)
}

var stateHasher = deephash.HasherForType[State]()

// Hash returns a compact digest of the configuration, usable as the
// dedup key during search.
func (s State) Hash() deephash.Sum {
	return stateHasher(&s)
}

func (s State) String() string {
	var b strings.Builder
	for h := 0; h <= 10; h++ {
		b.WriteString(s.cell(Hall(h)))
	}
	b.WriteByte('\n')
	for d := 0; d < s.RoomSize; d++ {
		b.WriteString(" ")
		for ki := 0; ki < numKinds; ki++ {
			b.WriteByte(' ')
			b.WriteString(s.cell(Slot(Kind(ki), d)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (s State) cell(p Position) string {
	if k, ok := s.Occupant(p); ok {
		return k.String()
	}
	return "."
}
