package main

import (
	"fmt"
	"slices"

	"github.com/ggazebo/aoc2021/aoc"
)

// element is one regular number of a snailfish number, tagged with its
// nesting depth. A whole snailfish number is its in-order leaf list;
// the bracket structure is fully recoverable from the depths, so
// explode and split become local list edits.
type element struct {
	value, depth int
}

type number []element

func parseNumber(s string) number {
	var n number
	depth := 0
	for _, c := range s {
		switch c {
		case '[':
			depth++
		case ']':
			depth--
		case ',':
		default:
			n = append(n, element{aoc.Digit(c), depth})
		}
	}
	return n
}

// explode blows up the leftmost pair nested five deep, spilling its
// halves onto the neighbors.
func (n number) explode() (number, bool) {
	for i := 0; i+1 < len(n); i++ {
		if n[i].depth < 5 {
			continue
		}
		if i > 0 {
			n[i-1].value += n[i].value
		}
		if i+2 < len(n) {
			n[i+2].value += n[i+1].value
		}
		n[i] = element{0, n[i].depth - 1}
		return slices.Delete(n, i+1, i+2), true
	}
	return n, false
}

// split replaces the leftmost value of 10 or more with a pair of its
// halves, the right one rounded up.
func (n number) split() (number, bool) {
	for i, e := range n {
		if e.value < 10 {
			continue
		}
		n = slices.Insert(n, i+1, element{(e.value + 1) / 2, e.depth + 1})
		n[i] = element{e.value / 2, e.depth + 1}
		return n, true
	}
	return n, false
}

func (n number) reduce() number {
	for {
		var did bool
		if n, did = n.explode(); did {
			continue
		}
		if n, did = n.split(); did {
			continue
		}
		return n
	}
}

func add(a, b number) number {
	out := make(number, 0, len(a)+len(b))
	for _, e := range append(slices.Clone(a), b...) {
		out = append(out, element{e.value, e.depth + 1})
	}
	return out.reduce()
}

// magnitude repeatedly collapses the deepest pairs into 3a+2b. Two
// adjacent leaves at the maximum depth are always siblings.
func (n number) magnitude() int {
	work := slices.Clone(n)
	for len(work) > 1 {
		deepest := 0
		for _, e := range work {
			deepest = max(deepest, e.depth)
		}
		for i := 0; i+1 < len(work); i++ {
			if work[i].depth == deepest && work[i+1].depth == deepest {
				work[i] = element{3*work[i].value + 2*work[i+1].value, deepest - 1}
				work = slices.Delete(work, i+1, i+2)
				break
			}
		}
	}
	return work[0].value
}

func parse(in []byte) []number {
	var ns []number
	aoc.ForLines(in, func(line string) {
		ns = append(ns, parseNumber(line))
	})
	return ns
}

func part1(ns []number) int {
	sum := ns[0]
	for _, n := range ns[1:] {
		sum = add(sum, n)
	}
	return sum.magnitude()
}

// part2 finds the largest magnitude of any ordered pairwise sum.
func part2(ns []number) int {
	var pairs [][2]number
	for i, a := range ns {
		for j, b := range ns {
			if i != j {
				pairs = append(pairs, [2]number{a, b})
			}
		}
	}
	return slices.Max(aoc.Parallel(pairs, func(p [2]number) int {
		return add(p[0], p[1]).magnitude()
	}))
}

func main() {
	ns := parse(aoc.Input())
	fmt.Println(part1(ns))
	fmt.Println(part2(ns))
}
