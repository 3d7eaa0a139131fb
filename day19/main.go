package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/ggazebo/aoc2021/aoc"
)

type rotation func(aoc.Pt3Int) aoc.Pt3Int

// rotations holds the 24 orientations a scanner can be in: the signed
// axis permutations with determinant +1.
var rotations = buildRotations()

func buildRotations() []rotation {
	perms := []struct {
		idx    [3]int
		parity int
	}{
		{[3]int{0, 1, 2}, 1}, {[3]int{0, 2, 1}, -1},
		{[3]int{1, 0, 2}, -1}, {[3]int{1, 2, 0}, 1},
		{[3]int{2, 0, 1}, 1}, {[3]int{2, 1, 0}, -1},
	}
	var out []rotation
	for _, perm := range perms {
		for bits := 0; bits < 8; bits++ {
			s := [3]int{1, 1, 1}
			for i := 0; i < 3; i++ {
				if bits>>i&1 == 1 {
					s[i] = -1
				}
			}
			if perm.parity*s[0]*s[1]*s[2] != 1 {
				continue
			}
			idx := perm.idx
			out = append(out, func(p aoc.Pt3Int) aoc.Pt3Int {
				c := [3]int{p.X, p.Y, p.Z}
				return aoc.Pt3Int{X: s[0] * c[idx[0]], Y: s[1] * c[idx[1]], Z: s[2] * c[idx[2]]}
			})
		}
	}
	return out
}

func parse(in []byte) [][]aoc.Pt3Int {
	var scanners [][]aoc.Pt3Int
	for _, block := range aoc.Blocks(in) {
		lines := strings.Split(block, "\n")
		var beacons []aoc.Pt3Int
		for _, line := range lines[1:] {
			c := aoc.Ints(strings.Split(line, ",")...)
			if len(c) != 3 {
				log.Fatalf("bad beacon %q", line)
			}
			beacons = append(beacons, aoc.Pt3Int{X: c[0], Y: c[1], Z: c[2]})
		}
		scanners = append(scanners, beacons)
	}
	return scanners
}

// match tries to overlap the readings with an already placed scanner's
// beacons. On success it returns the scanner offset and the readings
// translated into the placed frame. Twelve beacons must line up.
func match(placed, readings []aoc.Pt3Int) (aoc.Pt3Int, []aoc.Pt3Int, bool) {
	for _, rot := range rotations {
		rotated := make([]aoc.Pt3Int, len(readings))
		for i, b := range readings {
			rotated[i] = rot(b)
		}
		offsets := map[aoc.Pt3Int]int{}
		for _, p := range placed {
			for _, b := range rotated {
				offsets[p.Sub(b)]++
			}
		}
		for off, n := range offsets {
			if n >= 12 {
				for i := range rotated {
					rotated[i] = rotated[i].Add(off)
				}
				return off, rotated, true
			}
		}
	}
	return aoc.Pt3Int{}, nil, false
}

type placement struct {
	offset  aoc.Pt3Int
	beacons []aoc.Pt3Int
}

// assemble anchors scanner 0 and grows outward, matching each newly
// placed scanner against the still unplaced ones in parallel.
func assemble(scanners [][]aoc.Pt3Int) []placement {
	placed := make([]*placement, len(scanners))
	placed[0] = &placement{beacons: scanners[0]}
	work := aoc.NewQueue(0)
	work.While(func(base int) bool {
		var unplaced []int
		for i := range scanners {
			if placed[i] == nil {
				unplaced = append(unplaced, i)
			}
		}
		results := aoc.Parallel(unplaced, func(i int) *placement {
			off, beacons, ok := match(placed[base].beacons, scanners[i])
			if !ok {
				return nil
			}
			return &placement{off, beacons}
		})
		for j, p := range results {
			if p != nil && placed[unplaced[j]] == nil {
				placed[unplaced[j]] = p
				work.Push(unplaced[j])
			}
		}
		return true
	})
	out := make([]placement, len(scanners))
	for i, p := range placed {
		if p == nil {
			log.Fatalf("scanner %d never overlapped anything", i)
		}
		out[i] = *p
	}
	return out
}

func part1(placements []placement) int {
	beacons := map[aoc.Pt3Int]bool{}
	for _, p := range placements {
		for _, b := range p.beacons {
			beacons[b] = true
		}
	}
	return len(beacons)
}

func part2(placements []placement) int {
	most := 0
	for _, a := range placements {
		for _, b := range placements {
			most = max(most, a.offset.MDist(b.offset))
		}
	}
	return most
}

func main() {
	placements := assemble(parse(aoc.Input()))
	fmt.Println(part1(placements))
	fmt.Println(part2(placements))
}
