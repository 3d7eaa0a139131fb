package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ggazebo/aoc2021/aoc"
)

const sample = "target area: x=20..30, y=-10..-5\n"

func TestHits(t *testing.T) {
	tgt := parse([]byte(sample))
	require.Equal(t, aoc.Pt{X: 20, Y: -10}, tgt.min)
	require.Equal(t, aoc.Pt{X: 30, Y: -5}, tgt.max)
	require.True(t, tgt.hits(aoc.Pt{X: 7, Y: 2}))
	require.True(t, tgt.hits(aoc.Pt{X: 6, Y: 3}))
	require.True(t, tgt.hits(aoc.Pt{X: 9, Y: 0}))
	require.False(t, tgt.hits(aoc.Pt{X: 17, Y: -4}), "overshoots on the first step")
	require.True(t, tgt.hits(aoc.Pt{X: 6, Y: 9}), "the highest shot")
}

func TestParts(t *testing.T) {
	tgt := parse([]byte(sample))
	require.Equal(t, 45, part1(tgt))
	require.Equal(t, 112, part2(tgt))
}
