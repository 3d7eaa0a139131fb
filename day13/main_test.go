package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sample = `6,10
0,14
9,10
0,3
10,4
4,11
6,0
6,12
4,1
0,13
10,12
3,4
3,0
8,4
1,10
2,14
8,10
9,0

fold along y=7
fold along x=5
`

func TestOrigami(t *testing.T) {
	dots, folds := parse([]byte(sample))
	require.Len(t, dots, 18)
	require.Equal(t, []fold{{'y', 7}, {'x', 5}}, folds)

	dots = apply(dots, folds[0])
	require.Len(t, dots, 17)

	dots = apply(dots, folds[1])
	require.Equal(t, `#####
#...#
#...#
#...#
#####
`, render(dots))
}
