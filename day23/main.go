package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/ggazebo/aoc2021/aoc"
	"github.com/ggazebo/aoc2021/burrow"
)

// parse pulls the room rows out of the burrow diagram, top row first.
func parse(in []byte) []string {
	var rows []string
	aoc.ForLines(in, func(line string) {
		row := strings.Map(func(r rune) rune {
			if r >= 'A' && r <= 'D' {
				return r
			}
			return -1
		}, line)
		if row != "" {
			rows = append(rows, row)
		}
	})
	if len(rows) != 2 {
		log.Fatalf("want 2 room rows, got %d", len(rows))
	}
	return rows
}

// unfold inserts the two folded-up rows between the diagram's rows.
func unfold(rows []string) []string {
	return []string{rows[0], "DCBA", "DBAC", rows[1]}
}

func solve(rows []string) int {
	energy, ok := burrow.Solve(burrow.FromRows(rows...))
	if !ok {
		log.Fatalf("no way to sort %v", rows)
	}
	return energy
}

func main() {
	rows := parse(aoc.Input())
	fmt.Println(solve(rows))
	fmt.Println(solve(unfold(rows)))
}
