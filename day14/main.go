package main

import (
	"fmt"
	"log"
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/ggazebo/aoc2021/aoc"
)

func parse(in []byte) (string, map[string]byte) {
	blocks := aoc.Blocks(in)
	rules := map[string]byte{}
	for _, line := range strings.Split(blocks[1], "\n") {
		pair, ins, ok := strings.Cut(line, " -> ")
		if !ok || len(pair) != 2 || len(ins) != 1 {
			log.Fatalf("bad rule %q", line)
		}
		rules[pair] = ins[0]
	}
	return blocks[0], rules
}

// grow runs the pair insertion process on pair counts, never
// materializing the polymer, and returns most minus least common
// element count.
func grow(tmpl string, rules map[string]byte, steps int) int {
	pairs := map[string]int{}
	for i := 0; i+1 < len(tmpl); i++ {
		pairs[tmpl[i:i+2]]++
	}
	for ; steps > 0; steps-- {
		next := map[string]int{}
		for p, n := range pairs {
			if ins, ok := rules[p]; ok {
				next[string([]byte{p[0], ins})] += n
				next[string([]byte{ins, p[1]})] += n
			} else {
				next[p] += n
			}
		}
		pairs = next
	}
	// Each element heads exactly one pair, except the very last one.
	counts := map[byte]int{tmpl[len(tmpl)-1]: 1}
	for p, n := range pairs {
		counts[p[0]] += n
	}
	all := maps.Values(counts)
	return slices.Max(all) - slices.Min(all)
}

func main() {
	tmpl, rules := parse(aoc.Input())
	fmt.Println(grow(tmpl, rules, 10))
	fmt.Println(grow(tmpl, rules, 40))
}
