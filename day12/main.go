package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/ggazebo/aoc2021/aoc"
)

func parse(in []byte) *aoc.Graph[string] {
	g := &aoc.Graph[string]{}
	aoc.ForLines(in, func(line string) {
		a, b, ok := strings.Cut(line, "-")
		if !ok {
			log.Fatalf("bad edge %q", line)
		}
		g.AddEdge(a, b, 1)
	})
	return g
}

func small(cave string) bool {
	return cave == strings.ToLower(cave)
}

func part1(g *aoc.Graph[string]) int {
	return g.NumPathsWithRestriction("start", "end", func(cave string, visited map[string]int) bool {
		return !small(cave) || visited[cave] == 0
	})
}

func part2(g *aoc.Graph[string]) int {
	return g.NumPathsWithRestriction("start", "end", func(cave string, visited map[string]int) bool {
		switch {
		case cave == "start":
			return false
		case !small(cave) || visited[cave] == 0:
			return true
		default:
			// A single small cave may be entered twice.
			for c, n := range visited {
				if small(c) && n > 1 {
					return false
				}
			}
			return true
		}
	})
}

func main() {
	g := parse(aoc.Input())
	fmt.Println(part1(g))
	fmt.Println(part2(g))
}
