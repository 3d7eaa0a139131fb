package main

import (
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/ggazebo/aoc2021/aoc"
)

type board struct {
	g      aoc.Grid[int]
	marked aoc.Grid[bool]
}

func parse(in []byte) ([]int, []*board) {
	blocks := aoc.Blocks(in)
	draws := aoc.Ints(strings.Split(blocks[0], ",")...)
	var boards []*board
	for _, b := range blocks[1:] {
		boards = append(boards, newBoard(b))
	}
	return draws, boards
}

func newBoard(block string) *board {
	b := &board{marked: aoc.MakeGrid[bool](5, 5)}
	for _, line := range strings.Split(block, "\n") {
		b.g = append(b.g, aoc.Ints(strings.Fields(line)...))
	}
	if b.g.Size() != (aoc.Pt{X: 5, Y: 5}) {
		log.Fatalf("bad board %q", block)
	}
	return b
}

func (b *board) mark(n int) {
	for y, row := range b.g {
		for x, v := range row {
			if v == n {
				b.marked[y][x] = true
			}
		}
	}
}

func (b *board) wins() bool {
	for _, g := range []aoc.Grid[bool]{b.marked, b.marked.Transpose()} {
		for _, row := range g {
			if !slices.Contains(row, false) {
				return true
			}
		}
	}
	return false
}

func (b *board) score(draw int) int {
	sum := 0
	for y, row := range b.g {
		for x, v := range row {
			if !b.marked[y][x] {
				sum += v
			}
		}
	}
	return sum * draw
}

// scores plays the draws against every board and returns each board's
// final score in the order the boards win.
func scores(draws []int, boards []*board) []int {
	var out []int
	won := make([]bool, len(boards))
	for _, d := range draws {
		for i, b := range boards {
			if won[i] {
				continue
			}
			b.mark(d)
			if b.wins() {
				won[i] = true
				out = append(out, b.score(d))
			}
		}
	}
	return out
}

func main() {
	s := scores(parse(aoc.Input()))
	fmt.Println(s[0])
	fmt.Println(s[len(s)-1])
}
