package main

import (
	"fmt"

	"github.com/ggazebo/aoc2021/aoc"
)

func main() {
	depths := aoc.Ints(aoc.Lines(aoc.Input())...)
	fmt.Println(increases(depths, 1))
	fmt.Println(increases(depths, 3))
}

// increases counts how often the sum of a sliding window grows from one
// position to the next. Consecutive windows share all but two elements,
// so only those two need comparing.
func increases(depths []int, window int) int {
	n := 0
	for i := window; i < len(depths); i++ {
		if depths[i] > depths[i-window] {
			n++
		}
	}
	return n
}
