package main

import (
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/ggazebo/aoc2021/aoc"
)

type target struct {
	min, max aoc.Pt
}

func parse(in []byte) target {
	rest := aoc.TrimPrefix(strings.TrimSpace(string(in)), "target area: x=")
	xs, ys, ok := strings.Cut(rest, ", y=")
	if !ok {
		log.Fatalf("bad target %q", rest)
	}
	x0, x1, _ := strings.Cut(xs, "..")
	y0, y1, _ := strings.Cut(ys, "..")
	return target{
		min: aoc.Pt{X: aoc.Int(x0), Y: aoc.Int(y0)},
		max: aoc.Pt{X: aoc.Int(x1), Y: aoc.Int(y1)},
	}
}

// hits simulates one launch step by step.
func (t target) hits(v aoc.Pt) bool {
	for p := (aoc.Pt{}); p.X <= t.max.X && p.Y >= t.min.Y; {
		p.X += v.X
		p.Y += v.Y
		if p.X >= t.min.X && p.X <= t.max.X && p.Y >= t.min.Y && p.Y <= t.max.Y {
			return true
		}
		if v.X > 0 {
			v.X--
		}
		v.Y--
	}
	return false
}

// part1: launched up with velocity vy, the probe passes y=0 again at
// velocity -vy-1, so the steepest shot that still clips the area has
// vy = -ymin-1 and peaks at the triangular number.
func part1(t target) int {
	vy := -t.min.Y - 1
	return vy * (vy + 1) / 2
}

// part2 counts every velocity that lands in the area. Horizontal drag
// means vx must satisfy vx(vx+1)/2 >= xmin, the positive root of the
// quadratic; beyond xmax the first step overshoots. The vy range is
// bounded the same way part1's peak is.
func part2(t target) int {
	vxMin, _ := aoc.SolveQuad(1, 1, -2*t.min.X)
	var vs []aoc.Pt
	for vx := int(math.Ceil(vxMin)); vx <= t.max.X; vx++ {
		for vy := t.min.Y; vy < -t.min.Y; vy++ {
			vs = append(vs, aoc.Pt{X: vx, Y: vy})
		}
	}
	return aoc.ParallelMapFold(vs, t.hits, func(n int, hit bool) int {
		if hit {
			n++
		}
		return n
	}, 0)
}

func main() {
	t := parse(aoc.Input())
	fmt.Println(part1(t))
	fmt.Println(part2(t))
}
