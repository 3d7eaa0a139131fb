package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ggazebo/aoc2021/aoc"
)

func grid(rows ...string) aoc.Grid[byte] {
	var g aoc.Grid[byte]
	for _, r := range rows {
		g = append(g, []byte(r))
	}
	return g
}

// algoFromBit builds an algorithm that copies one bit of the 9-bit
// neighborhood index straight through. Bit 4 is the center pixel, so
// the result is the identity; bit 3 is the right-hand neighbor.
func algoFromBit(bit int) string {
	var b strings.Builder
	for i := 0; i < 512; i++ {
		if i>>bit&1 == 1 {
			b.WriteByte('#')
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}

func TestEnhanceIdentity(t *testing.T) {
	algo := algoFromBit(4)
	img := image{g: grid("##.", ".#."), background: '.'}
	out := enhance(algo, img)
	require.Equal(t, byte('.'), out.background)
	require.Equal(t, grid(".....", ".##..", "..#..", "....."), out.g)
	require.Equal(t, 3, litAfter(algo, img, 7), "identity keeps the count forever")
}

func TestEnhanceShift(t *testing.T) {
	img := image{g: grid("##.", ".#."), background: '.'}
	out := enhance(algoFromBit(3), img)
	require.Equal(t, grid(".....", "##...", ".#...", "....."), out.g,
		"every pixel takes its right neighbor's value")
}

func TestBackgroundFlip(t *testing.T) {
	algo := "#" + strings.Repeat(".", 511)
	out := enhance(algo, image{g: grid("..."), background: '.'})
	require.Equal(t, byte('#'), out.background, "entry 0 lights the infinite background")
	out = enhance(algo, out)
	require.Equal(t, byte('.'), out.background, "and entry 511 turns it back off")
}

func TestAllDark(t *testing.T) {
	require.Zero(t, litAfter(strings.Repeat(".", 512), image{g: grid("###"), background: '.'}, 1))
}
