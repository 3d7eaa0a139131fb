package main

import (
	"fmt"
	"slices"

	"github.com/ggazebo/aoc2021/aoc"
)

var (
	pairs         = map[rune]rune{'(': ')', '[': ']', '{': '}', '<': '>'}
	corruptScore  = map[rune]int{')': 3, ']': 57, '}': 1197, '>': 25137}
	completeScore = map[rune]int{')': 1, ']': 2, '}': 3, '>': 4}
)

// check returns the corruption score for a corrupted line, or the
// completion score with corrupt == false for an incomplete one.
func check(line string) (score int, corrupt bool) {
	var open aoc.Stack[rune]
	for _, c := range line {
		if _, ok := pairs[c]; ok {
			open.Push(c)
			continue
		}
		o, ok := open.Pop()
		if !ok || pairs[o] != c {
			return corruptScore[c], true
		}
	}
	open.While(func(o rune) bool {
		score = score*5 + completeScore[pairs[o]]
		return true
	})
	return score, false
}

func main() {
	corrupt := 0
	var incomplete []int
	for _, line := range aoc.Lines(aoc.Input()) {
		if s, bad := check(line); bad {
			corrupt += s
		} else {
			incomplete = append(incomplete, s)
		}
	}
	slices.Sort(incomplete)
	fmt.Println(corrupt)
	fmt.Println(incomplete[len(incomplete)/2])
}
