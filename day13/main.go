package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/ggazebo/aoc2021/aoc"
)

type fold struct {
	axis byte // 'x' or 'y'
	at   int
}

func parse(in []byte) (map[aoc.Pt]bool, []fold) {
	blocks := aoc.Blocks(in)
	dots := map[aoc.Pt]bool{}
	for _, line := range strings.Split(blocks[0], "\n") {
		x, y, ok := strings.Cut(line, ",")
		if !ok {
			log.Fatalf("bad dot %q", line)
		}
		dots[aoc.Pt{X: aoc.Int(x), Y: aoc.Int(y)}] = true
	}
	var folds []fold
	for _, line := range strings.Split(blocks[1], "\n") {
		axis, at, ok := strings.Cut(aoc.TrimPrefix(line, "fold along "), "=")
		if !ok || len(axis) != 1 {
			log.Fatalf("bad fold %q", line)
		}
		folds = append(folds, fold{axis[0], aoc.Int(at)})
	}
	return dots, folds
}

// apply mirrors every dot beyond the fold line back onto the kept half.
func apply(dots map[aoc.Pt]bool, f fold) map[aoc.Pt]bool {
	out := make(map[aoc.Pt]bool, len(dots))
	for p := range dots {
		if f.axis == 'x' && p.X > f.at {
			p.X = 2*f.at - p.X
		} else if f.axis == 'y' && p.Y > f.at {
			p.Y = 2*f.at - p.Y
		}
		out[p] = true
	}
	return out
}

func render(dots map[aoc.Pt]bool) string {
	var size aoc.Pt
	for p := range dots {
		size.X = max(size.X, p.X+1)
		size.Y = max(size.Y, p.Y+1)
	}
	var b strings.Builder
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			if dots[aoc.Pt{X: x, Y: y}] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func main() {
	dots, folds := parse(aoc.Input())
	fmt.Println(len(apply(dots, folds[0])))
	for _, f := range folds {
		dots = apply(dots, f)
	}
	fmt.Print(render(dots))
}
