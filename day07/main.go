package main

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/ggazebo/aoc2021/aoc"
)

// fuel returns the cheapest total cost of aligning every crab on one
// position, trying each position in the occupied range.
func fuel(crabs []int, cost func(dist int) int) int {
	best := math.MaxInt
	for target := slices.Min(crabs); target <= slices.Max(crabs); target++ {
		total := 0
		for _, c := range crabs {
			total += cost(aoc.AbsDiff(c, target))
		}
		best = min(best, total)
	}
	return best
}

func main() {
	crabs := aoc.Ints(strings.Split(aoc.Lines(aoc.Input())[0], ",")...)
	fmt.Println(fuel(crabs, func(d int) int { return d }))
	fmt.Println(fuel(crabs, func(d int) int { return d * (d + 1) / 2 }))
}
