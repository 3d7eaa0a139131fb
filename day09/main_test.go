package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sample = `2199943210
3987894921
9856789892
8767896789
9899965678
`

func TestBasins(t *testing.T) {
	g := parse([]byte(sample))
	require.Equal(t, 15, riskSum(g))
	require.Equal(t, 1134, largestBasins(g))
}
