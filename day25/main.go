package main

import (
	"fmt"

	"github.com/ggazebo/aoc2021/aoc"
)

func parse(in []byte) aoc.Grid[byte] {
	var g aoc.Grid[byte]
	aoc.ForLines(in, func(line string) {
		g = append(g, []byte(line))
	})
	return g
}

// stepHerd advances every cucumber of kind c one cell in dir, wrapping at
// the edges. All of them look before any of them move. Reports whether
// anything moved.
func stepHerd(g aoc.Grid[byte], c byte, dir aoc.Pt) bool {
	size := g.Size()
	var movers []aoc.Pt
	for y, row := range g {
		for x, v := range row {
			if v != c {
				continue
			}
			p := aoc.Pt{X: x, Y: y}
			if g.At(aoc.StandardizePt(p.Add(dir), size)) == '.' {
				movers = append(movers, p)
			}
		}
	}
	for _, p := range movers {
		g.Set(p, '.')
		g.Set(aoc.StandardizePt(p.Add(dir), size), c)
	}
	return len(movers) > 0
}

// step runs one full step, east herd then south herd.
func step(g aoc.Grid[byte]) bool {
	east := stepHerd(g, '>', aoc.Pt{X: 1})
	south := stepHerd(g, 'v', aoc.Pt{Y: 1})
	return east || south
}

// solve returns the first step on which no cucumber moves.
func solve(g aoc.Grid[byte]) int {
	steps := 1
	for step(g) {
		steps++
	}
	return steps
}

func main() {
	fmt.Println(solve(parse(aoc.Input())))
}
