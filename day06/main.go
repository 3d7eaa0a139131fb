package main

import (
	"fmt"
	"strings"

	"github.com/ggazebo/aoc2021/aoc"
)

// grow advances the lanternfish population the given number of days.
// Fish are interchangeable, so only the count per timer value matters.
func grow(timers []int, days int) int {
	var buckets [9]int
	for _, t := range timers {
		buckets[t]++
	}
	for ; days > 0; days-- {
		spawning := buckets[0]
		copy(buckets[:], buckets[1:])
		buckets[6] += spawning
		buckets[8] = spawning
	}
	return aoc.Sum(buckets[:]...)
}

func main() {
	timers := aoc.Ints(strings.Split(aoc.Lines(aoc.Input())[0], ",")...)
	fmt.Println(grow(timers, 80))
	fmt.Println(grow(timers, 256))
}
