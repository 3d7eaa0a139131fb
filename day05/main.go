package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/ggazebo/aoc2021/aoc"
)

func parse(in []byte) []aoc.Segment {
	var segs []aoc.Segment
	aoc.ForLines(in, func(line string) {
		a, b, ok := strings.Cut(line, " -> ")
		if !ok {
			log.Fatalf("bad segment %q", line)
		}
		segs = append(segs, aoc.Segment{A: pt(a), B: pt(b)})
	})
	return segs
}

func pt(s string) aoc.Pt {
	x, y, ok := strings.Cut(s, ",")
	if !ok {
		log.Fatalf("bad point %q", s)
	}
	return aoc.Pt{X: aoc.Int(x), Y: aoc.Int(y)}
}

// overlaps counts the points covered by more than one vent line,
// optionally including the 45 degree diagonals.
func overlaps(segs []aoc.Segment, diagonals bool) int {
	counts := map[aoc.Pt]int{}
	for _, s := range segs {
		if !diagonals && s.A.X != s.B.X && s.A.Y != s.B.Y {
			continue
		}
		for p := s.A; ; p = p.Toward(s.B) {
			counts[p]++
			if p == s.B {
				break
			}
		}
	}
	n := 0
	for _, c := range counts {
		if c > 1 {
			n++
		}
	}
	return n
}

func main() {
	segs := parse(aoc.Input())
	fmt.Println(overlaps(segs, false))
	fmt.Println(overlaps(segs, true))
}
