package main

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/ggazebo/aoc2021/aoc"
)

// image is a finite canvas in an infinite sea of background pixels.
// The background matters: an algorithm with entry 0 lit flips the
// whole plane on odd rounds.
type image struct {
	g          aoc.Grid[byte]
	background byte
}

func parse(in []byte) (string, image) {
	blocks := aoc.Blocks(in)
	algo := strings.ReplaceAll(blocks[0], "\n", "")
	if len(algo) != 512 {
		log.Fatalf("algorithm has %d entries, want 512", len(algo))
	}
	var g aoc.Grid[byte]
	for _, line := range strings.Split(blocks[1], "\n") {
		g = append(g, []byte(line))
	}
	return algo, image{g: g, background: '.'}
}

// enhance runs one round, growing the canvas by one pixel on each side.
func enhance(algo string, img image) image {
	size := img.g.Size()
	out := image{g: aoc.MakeGrid[byte](size.X+2, size.Y+2)}
	if img.background == '.' {
		out.background = algo[0]
	} else {
		out.background = algo[511]
	}
	for y := -1; y <= size.Y; y++ {
		for x := -1; x <= size.X; x++ {
			idx := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					v, ok := img.g.AtOk(aoc.Pt{X: x + dx, Y: y + dy})
					if !ok {
						v = img.background
					}
					idx <<= 1
					if v == '#' {
						idx |= 1
					}
				}
			}
			out.g[y+1][x+1] = algo[idx]
		}
	}
	return out
}

func litAfter(algo string, img image, rounds int) int {
	for ; rounds > 0; rounds-- {
		img = enhance(algo, img)
	}
	if img.background == '#' {
		log.Fatalf("infinitely many lit pixels")
	}
	n := 0
	for _, row := range img.g {
		n += bytes.Count(row, []byte{'#'})
	}
	return n
}

func main() {
	algo, img := parse(aoc.Input())
	fmt.Println(litAfter(algo, img, 2))
	fmt.Println(litAfter(algo, img, 50))
}
