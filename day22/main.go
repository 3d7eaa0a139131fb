package main

import (
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/ggazebo/aoc2021/aoc"
)

type cuboid struct {
	min, max aoc.Pt3Int // inclusive corners
}

type step struct {
	on bool
	c  cuboid
}

func parse(in []byte) []step {
	var steps []step
	aoc.ForLines(in, func(line string) {
		state, rest, ok := strings.Cut(line, " ")
		if !ok || (state != "on" && state != "off") {
			log.Fatalf("bad step %q", line)
		}
		axes := strings.Split(rest, ",")
		if len(axes) != 3 {
			log.Fatalf("bad cuboid %q", rest)
		}
		var c cuboid
		span := func(s string, lo, hi *int) {
			a, b, ok := strings.Cut(s[2:], "..")
			if !ok {
				log.Fatalf("bad range %q", s)
			}
			*lo, *hi = aoc.Int(a), aoc.Int(b)
		}
		span(axes[0], &c.min.X, &c.max.X)
		span(axes[1], &c.min.Y, &c.max.Y)
		span(axes[2], &c.min.Z, &c.max.Z)
		steps = append(steps, step{state == "on", c})
	})
	return steps
}

func (c cuboid) intersect(o cuboid) (cuboid, bool) {
	r := cuboid{
		min: aoc.Pt3Int{X: max(c.min.X, o.min.X), Y: max(c.min.Y, o.min.Y), Z: max(c.min.Z, o.min.Z)},
		max: aoc.Pt3Int{X: min(c.max.X, o.max.X), Y: min(c.max.Y, o.max.Y), Z: min(c.max.Z, o.max.Z)},
	}
	return r, r.min.X <= r.max.X && r.min.Y <= r.max.Y && r.min.Z <= r.max.Z
}

func (c cuboid) volume() int {
	return (c.max.X - c.min.X + 1) * (c.max.Y - c.min.Y + 1) * (c.max.Z - c.min.Z + 1)
}

// litCount replays the steps over a list of signed cuboids whose
// volumes sum to the number of lit cubes. Each new step first cancels
// its overlap with every recorded cuboid, then an "on" step records
// itself with weight +1.
func litCount(steps []step) int {
	type signed struct {
		c      cuboid
		weight int
	}
	var acc []signed
	for _, s := range steps {
		for _, prev := range slices.Clone(acc) {
			if overlap, ok := s.c.intersect(prev.c); ok {
				acc = append(acc, signed{overlap, -prev.weight})
			}
		}
		if s.on {
			acc = append(acc, signed{s.c, 1})
		}
	}
	n := 0
	for _, e := range acc {
		n += e.c.volume() * e.weight
	}
	return n
}

// initOnly keeps the steps fully inside the -50..50 initialization zone.
func initOnly(steps []step) []step {
	zone := cuboid{
		min: aoc.Pt3Int{X: -50, Y: -50, Z: -50},
		max: aoc.Pt3Int{X: 50, Y: 50, Z: 50},
	}
	var out []step
	for _, s := range steps {
		if c, ok := s.c.intersect(zone); ok && c == s.c {
			out = append(out, s)
		}
	}
	return out
}

func main() {
	steps := parse(aoc.Input())
	fmt.Println(litCount(initOnly(steps)))
	fmt.Println(litCount(steps))
}
