package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ggazebo/aoc2021/aoc"
)

func main() {
	lines := aoc.Lines(aoc.Input())
	fmt.Println(powerConsumption(lines))
	fmt.Println(lifeSupport(lines))
}

func bitGrid(lines []string) aoc.Grid[byte] {
	g := make(aoc.Grid[byte], 0, len(lines))
	for _, l := range lines {
		g = append(g, []byte(l))
	}
	return g
}

func ones(column []byte) int {
	n := 0
	for _, b := range column {
		if b == '1' {
			n++
		}
	}
	return n
}

func powerConsumption(lines []string) int64 {
	var gamma, epsilon strings.Builder
	for _, column := range bitGrid(lines).Transpose() {
		if ones(column)*2 >= len(column) {
			gamma.WriteByte('1')
			epsilon.WriteByte('0')
		} else {
			gamma.WriteByte('0')
			epsilon.WriteByte('1')
		}
	}
	return aoc.ParseBinary(gamma.String()) * aoc.ParseBinary(epsilon.String())
}

func lifeSupport(lines []string) int64 {
	return rating(lines, true) * rating(lines, false)
}

// rating repeatedly keeps the values whose next bit is in the majority
// (or minority, with ties going to '1' and '0' respectively) until one
// value remains.
func rating(lines []string, most bool) int64 {
	left := slices.Clone(lines)
	for i := 0; len(left) > 1; i++ {
		n := 0
		for _, l := range left {
			if l[i] == '1' {
				n++
			}
		}
		keep := byte('0')
		if (n*2 >= len(left)) == most {
			keep = '1'
		}
		left = slices.DeleteFunc(left, func(l string) bool {
			return l[i] != keep
		})
	}
	return aoc.ParseBinary(left[0])
}
