package main

import (
	"fmt"
	"log"

	"github.com/ggazebo/aoc2021/aoc"
)

func parse(in []byte) aoc.Grid[int] {
	var g aoc.Grid[int]
	aoc.ForLines(in, func(line string) {
		g = append(g, aoc.Digits(line))
	})
	return g
}

// lowestRisk finds the cheapest path from the top-left to the
// bottom-right corner. Manhattan distance is a safe estimate since
// every step risks at least 1.
func lowestRisk(g aoc.Grid[int]) int {
	size := g.Size()
	end := aoc.Pt{X: size.X - 1, Y: size.Y - 1}
	risk, _, ok := aoc.AStar(aoc.Pt{},
		func(p aoc.Pt) bool { return p == end },
		func(p aoc.Pt, visit func(aoc.Pt, int)) {
			p.ForImmediateNeighbors(func(n aoc.Pt) bool {
				if v, ok := g.AtOk(n); ok {
					visit(n, v)
				}
				return true
			})
		},
		func(p aoc.Pt) int { return p.MDist(end) },
	)
	if !ok {
		log.Fatalf("no path to %v", end)
	}
	return risk
}

// tile repeats the grid five times in each direction, raising the risk
// by the tile distance and wrapping 9 back to 1.
func tile(g aoc.Grid[int]) aoc.Grid[int] {
	size := g.Size()
	out := aoc.MakeGrid[int](size.X*5, size.Y*5)
	for y := range out {
		for x := range out[y] {
			v := g[y%size.Y][x%size.X] + x/size.X + y/size.Y
			out[y][x] = (v-1)%9 + 1
		}
	}
	return out
}

func main() {
	g := parse(aoc.Input())
	fmt.Println(lowestRisk(g))
	fmt.Println(lowestRisk(tile(g)))
}
