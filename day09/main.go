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

// riskSum adds up height+1 over the cells lower than all their
// neighbors.
func riskSum(g aoc.Grid[int]) int {
	sum := 0
	size := g.Size()
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			p := aoc.Pt{X: x, Y: y}
			low := true
			p.ForImmediateNeighbors(func(n aoc.Pt) bool {
				if v, ok := g.AtOk(n); ok && v <= g.At(p) {
					low = false
					return false
				}
				return true
			})
			if low {
				sum += g.At(p) + 1
			}
		}
	}
	return sum
}

// largestBasins floods every basin, bounded by height 9 ridges, and
// multiplies the three largest sizes. It consumes the grid.
func largestBasins(g aoc.Grid[int]) int {
	sizes := aoc.MaxQueue[int]()
	gridSize := g.Size()
	for y := 0; y < gridSize.Y; y++ {
		for x := 0; x < gridSize.X; x++ {
			p := aoc.Pt{X: x, Y: y}
			if n := aoc.FloodFill(g, p, false, func(v int) bool { return v < 9 }, 9); n > 0 {
				sizes.Push(&aoc.PQI[int]{V: n, P: n})
			}
		}
	}
	return sizes.Pop().V * sizes.Pop().V * sizes.Pop().V
}

func main() {
	g := parse(aoc.Input())
	fmt.Println(riskSum(g))
	fmt.Println(largestBasins(g))
}
