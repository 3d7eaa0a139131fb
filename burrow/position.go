// Package burrow models the day 23 amphipod burrow and finds the
// cheapest sequence of moves that sorts every amphipod into its home
// room.
//
// The burrow is a hallway of offsets 0 through 10 with four rooms
// opening below offsets 2, 4, 6 and 8, one room per amphipod kind.
// Room depth 0 is the cell next to the hallway; greater depths are
// further back. Amphipods may stop in the hallway only at the offsets
// not directly above a room.
package burrow

import (
	"fmt"

	"github.com/ggazebo/aoc2021/aoc"
)

// Kind is one of the four amphipod families.
type Kind uint8

const (
	Amber Kind = iota
	Bronze
	Copper
	Desert
)

const numKinds = 4

// Cost returns the energy a single step costs the kind.
func (k Kind) Cost() int {
	return [numKinds]int{1, 10, 100, 1000}[k]
}

// Mouth returns the hallway offset directly above the kind's home room.
func (k Kind) Mouth() int {
	return (int(k) + 1) * 2
}

func (k Kind) String() string {
	return string('A' + rune(k))
}

// HallStops are the hallway offsets where an amphipod may stop.
var HallStops = [...]int{0, 1, 3, 5, 7, 9, 10}

// Position is a single cell of the burrow: either a hallway cell or a
// slot inside one of the rooms. Positions order rooms before hallway,
// same-room cells deeper first, which fixes the canonical order of a
// state's position groups.
type Position struct {
	hall  bool
	off   uint8
	room  Kind
	depth uint8
}

// Hall returns the hallway cell at the given offset.
func Hall(offset int) Position {
	if offset < 0 || offset > 10 {
		panic(fmt.Sprintf("burrow: hallway offset %d out of range", offset))
	}
	return Position{hall: true, off: uint8(offset)}
}

// Slot returns the cell of k's room at the given depth.
func Slot(k Kind, depth int) Position {
	if depth < 0 {
		panic(fmt.Sprintf("burrow: negative room depth %d", depth))
	}
	return Position{room: k, depth: uint8(depth)}
}

// InHallway reports whether p is a hallway cell.
func (p Position) InHallway() bool {
	return p.hall
}

func (p Position) String() string {
	if p.hall {
		return fmt.Sprintf("h%d", p.off)
	}
	return fmt.Sprintf("%v%d", p.room, p.depth)
}

// mouth returns the hallway offset above p's room, or p's own offset
// for hallway cells.
func (p Position) mouth() int {
	if p.hall {
		return int(p.off)
	}
	return p.room.Mouth()
}

func (p Position) compare(q Position) int {
	switch {
	case p == q:
		return 0
	case p.hall != q.hall:
		if q.hall {
			return -1
		}
		return 1
	case p.hall:
		return int(p.off) - int(q.off)
	case p.room != q.room:
		return int(p.room) - int(q.room)
	default:
		return int(q.depth) - int(p.depth)
	}
}

// Steps returns the number of elementary cell moves between a and b,
// ignoring occupancy: out of the room, along the hallway, into the
// target room. Cells of the same room are measured within the room.
func Steps(a, b Position) int {
	switch {
	case a.hall && b.hall:
		return aoc.AbsDiff(int(a.off), int(b.off))
	case !a.hall && !b.hall && a.room == b.room:
		return aoc.AbsDiff(int(a.depth), int(b.depth))
	case !a.hall && !b.hall:
		return int(a.depth) + int(b.depth) + 2 + aoc.AbsDiff(a.room.Mouth(), b.room.Mouth())
	case a.hall:
		return int(b.depth) + 1 + aoc.AbsDiff(int(a.off), b.room.Mouth())
	default:
		return int(a.depth) + 1 + aoc.AbsDiff(a.room.Mouth(), int(b.off))
	}
}

// walkFrom visits every cell of the direct path from a to b in walking
// order, excluding a and including b. It stops early if visit returns
// false. The number of cells visited equals Steps(a, b).
func walkFrom(a, b Position, visit func(Position) bool) {
	for p := a; p != b; {
		p = nextToward(p, b)
		if !visit(p) {
			return
		}
	}
}

func nextToward(p, b Position) Position {
	if !p.hall {
		if !b.hall && p.room == b.room {
			if p.depth > b.depth {
				return Slot(p.room, int(p.depth)-1)
			}
			return Slot(p.room, int(p.depth)+1)
		}
		if p.depth > 0 {
			return Slot(p.room, int(p.depth)-1)
		}
		return Hall(p.room.Mouth())
	}
	if t := b.mouth(); int(p.off) != t {
		if int(p.off) < t {
			return Hall(int(p.off) + 1)
		}
		return Hall(int(p.off) - 1)
	}
	// Above b's room; b cannot be a hallway cell here or the walk
	// would already have ended.
	return Slot(b.room, 0)
}
