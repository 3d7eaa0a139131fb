package main

import (
	"fmt"

	"github.com/ggazebo/aoc2021/aoc"
)

func parse(in []byte) aoc.Grid[int] {
	var g aoc.Grid[int]
	aoc.ForLines(in, func(line string) {
		g = append(g, aoc.Digits(line))
	})
	return g
}

// step advances the octopus grid once and returns how many flashed.
// Energy bumps propagate through a queue; an octopus flashes the
// moment it passes 9 and is reset to 0 afterwards.
func step(g aoc.Grid[int]) int {
	var flashed []aoc.Pt
	bumps := aoc.NewQueue[aoc.Pt]()
	size := g.Size()
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			bumps.Push(aoc.Pt{X: x, Y: y})
		}
	}
	bumps.While(func(p aoc.Pt) bool {
		g.Set(p, g.At(p)+1)
		if g.At(p) == 10 {
			flashed = append(flashed, p)
			p.ForNeighbors(func(n aoc.Pt) bool {
				if _, ok := g.AtOk(n); ok {
					bumps.Push(n)
				}
				return true
			})
		}
		return true
	})
	for _, p := range flashed {
		g.Set(p, 0)
	}
	return len(flashed)
}

func main() {
	g := parse(aoc.Input())
	size := g.Size()
	flashes, sync := 0, 0
	for i := 1; sync == 0 || i <= 100; i++ {
		n := step(g)
		if i <= 100 {
			flashes += n
		}
		if sync == 0 && n == size.X*size.Y {
			sync = i
		}
	}
	fmt.Println(flashes)
	fmt.Println(sync)
}
