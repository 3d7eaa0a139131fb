package main

import (
	"fmt"
	"log"
	"math/bits"
	"strings"

	"github.com/ggazebo/aoc2021/aoc"
)

type entry struct {
	patterns, outputs []uint8
}

// mask packs a segment string, "a" through "g", into a bitmask.
func mask(s string) uint8 {
	var m uint8
	for _, c := range s {
		if c < 'a' || c > 'g' {
			log.Fatalf("bad segment %q", s)
		}
		m |= 1 << (c - 'a')
	}
	return m
}

func masks(s string) []uint8 {
	var out []uint8
	for _, f := range strings.Fields(s) {
		out = append(out, mask(f))
	}
	return out
}

func parse(in []byte) []entry {
	var entries []entry
	aoc.ForLines(in, func(line string) {
		pats, outs, ok := strings.Cut(line, " | ")
		if !ok {
			log.Fatalf("bad entry %q", line)
		}
		entries = append(entries, entry{masks(pats), masks(outs)})
	})
	return entries
}

func part1(entries []entry) int {
	n := 0
	for _, e := range entries {
		for _, o := range e.outputs {
			switch bits.OnesCount8(o) {
			case 2, 3, 4, 7: // 1, 7, 4, 8
				n++
			}
		}
	}
	return n
}

// decode identifies each scrambled pattern by its segment count and its
// overlap with the patterns for 1 and 4, then reads off the output.
func decode(e entry) int {
	var one, four uint8
	for _, p := range e.patterns {
		switch bits.OnesCount8(p) {
		case 2:
			one = p
		case 4:
			four = p
		}
	}
	digit := func(p uint8) int {
		n := bits.OnesCount8(p)
		o1 := bits.OnesCount8(p & one)
		o4 := bits.OnesCount8(p & four)
		switch {
		case n == 2:
			return 1
		case n == 3:
			return 7
		case n == 4:
			return 4
		case n == 7:
			return 8
		case n == 5 && o1 == 2:
			return 3
		case n == 5 && o4 == 3:
			return 5
		case n == 5:
			return 2
		case n == 6 && o4 == 4:
			return 9
		case n == 6 && o1 == 2:
			return 0
		default:
			return 6
		}
	}
	n := 0
	for _, o := range e.outputs {
		n = n*10 + digit(o)
	}
	return n
}

func part2(entries []entry) int {
	sum := 0
	for _, e := range entries {
		sum += decode(e)
	}
	return sum
}

func main() {
	entries := parse(aoc.Input())
	fmt.Println(part1(entries))
	fmt.Println(part2(entries))
}
