package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/ggazebo/aoc2021/aoc"
)

type command struct {
	verb string
	n    int
}

func parse(in []byte) []command {
	var cmds []command
	aoc.ForLines(in, func(line string) {
		verb, n, ok := strings.Cut(line, " ")
		if !ok {
			log.Fatalf("bad command %q", line)
		}
		cmds = append(cmds, command{verb, aoc.Int(n)})
	})
	return cmds
}

func part1(cmds []command) int {
	var pos aoc.Pt
	for _, c := range cmds {
		switch c.verb {
		case "forward":
			pos.X += c.n
		case "down":
			pos.Y += c.n
		case "up":
			pos.Y -= c.n
		default:
			log.Fatalf("bad verb %q", c.verb)
		}
	}
	return pos.X * pos.Y
}

func part2(cmds []command) int {
	var pos aoc.Pt
	aim := 0
	for _, c := range cmds {
		switch c.verb {
		case "forward":
			pos.X += c.n
			pos.Y += aim * c.n
		case "down":
			aim += c.n
		case "up":
			aim -= c.n
		default:
			log.Fatalf("bad verb %q", c.verb)
		}
	}
	return pos.X * pos.Y
}

func main() {
	cmds := parse(aoc.Input())
	fmt.Println(part1(cmds))
	fmt.Println(part2(cmds))
}
