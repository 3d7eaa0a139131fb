package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sample = `7,4,9,5,11,17,23,2,0,14,21,24,10,16,13,6,15,25,12,22,18,20,8,19,3,26,1

22 13 17 11  0
 8  2 23  4 24
21  9 14 16  7
 6 10  3 18  5
 1 12 20 15 19

 3 15  0  2 22
 9 18 13 17  5
19  8  7 25 23
20 11 10 24  4
14 21 16 12  6

14 21 17 24  4
10 16 15  9 19
18  8 23 26 20
22 11 13  6  5
 2  0 12  3  7
`

func TestBingo(t *testing.T) {
	draws, boards := parse([]byte(sample))
	require.Len(t, draws, 27)
	require.Len(t, boards, 3)
	s := scores(draws, boards)
	require.Len(t, s, 3, "every board eventually wins")
	require.Equal(t, 4512, s[0])
	require.Equal(t, 1924, s[len(s)-1])
}

func TestWins(t *testing.T) {
	b := newBoard("1 2 3 4 5\n6 7 8 9 10\n11 12 13 14 15\n16 17 18 19 20\n21 22 23 24 25")
	for _, n := range []int{1, 2, 3, 4} {
		b.mark(n)
		require.False(t, b.wins())
	}
	b.mark(5)
	require.True(t, b.wins(), "a full row wins")

	c := newBoard("1 2 3 4 5\n6 7 8 9 10\n11 12 13 14 15\n16 17 18 19 20\n21 22 23 24 25")
	for _, n := range []int{3, 8, 13, 18, 23} {
		c.mark(n)
	}
	require.True(t, c.wins(), "a full column wins")
}
