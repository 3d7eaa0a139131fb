package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExplode(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"[[[[[9,8],1],2],3],4]", "[[[[0,9],2],3],4]"},
		{"[7,[6,[5,[4,[3,2]]]]]", "[7,[6,[5,[7,0]]]]"},
		{"[[6,[5,[4,[3,2]]]],1]", "[[6,[5,[7,0]]],3]"},
		{"[[3,[2,[1,[7,3]]]],[6,[5,[4,[3,2]]]]]", "[[3,[2,[8,0]]],[9,[5,[4,[3,2]]]]]"},
		{"[[3,[2,[8,0]]],[9,[5,[4,[3,2]]]]]", "[[3,[2,[8,0]]],[9,[5,[7,0]]]]"},
	}
	for _, tc := range tests {
		got, did := parseNumber(tc.in).explode()
		require.True(t, did, tc.in)
		require.Equal(t, parseNumber(tc.want), got, tc.in)
	}
	_, did := parseNumber("[1,[2,3]]").explode()
	require.False(t, did)
}

func TestSplit(t *testing.T) {
	// 10 splits into [5,5], 11 into [5,6].
	n := number{{10, 1}, {11, 1}}
	n, did := n.split()
	require.True(t, did)
	require.Equal(t, number{{5, 2}, {5, 2}, {11, 1}}, n)
	n, did = n.split()
	require.True(t, did)
	require.Equal(t, number{{5, 2}, {5, 2}, {5, 2}, {6, 2}}, n)
}

func TestAdd(t *testing.T) {
	got := add(parseNumber("[[[[4,3],4],4],[7,[[8,4],9]]]"), parseNumber("[1,1]"))
	require.Equal(t, parseNumber("[[[[0,7],4],[[7,8],[6,0]]],[8,1]]"), got)

	sum := parseNumber("[1,1]")
	for _, s := range []string{"[2,2]", "[3,3]", "[4,4]"} {
		sum = add(sum, parseNumber(s))
	}
	require.Equal(t, parseNumber("[[[[1,1],[2,2]],[3,3]],[4,4]]"), sum)
	sum = add(sum, parseNumber("[5,5]"))
	require.Equal(t, parseNumber("[[[[3,0],[5,3]],[4,4]],[5,5]]"), sum)
	sum = add(sum, parseNumber("[6,6]"))
	require.Equal(t, parseNumber("[[[[5,0],[7,4]],[5,5]],[6,6]]"), sum)
}

func TestMagnitude(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"[9,1]", 29},
		{"[1,9]", 21},
		{"[[9,1],[1,9]]", 129},
		{"[[1,2],[[3,4],5]]", 143},
		{"[[[[0,7],4],[[7,8],[6,0]]],[8,1]]", 1384},
		{"[[[[1,1],[2,2]],[3,3]],[4,4]]", 445},
		{"[[[[3,0],[5,3]],[4,4]],[5,5]]", 791},
		{"[[[[5,0],[7,4]],[5,5]],[6,6]]", 1137},
		{"[[[[8,7],[7,7]],[[8,6],[7,7]]],[[[0,7],[6,6]],[8,7]]]", 3488},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, parseNumber(tc.in).magnitude(), tc.in)
	}
}

const homework = `[[[0,[5,8]],[[1,7],[9,6]]],[[4,[1,2]],[[1,4],2]]]
[[[5,[2,8]],4],[5,[[9,9],0]]]
[6,[[[6,2],[5,6]],[[7,6],[4,7]]]]
[[[6,[0,7]],[0,9]],[4,[9,[9,0]]]]
[[[7,[6,4]],[3,[1,3]]],[[[5,5],1],9]]
[[6,[[7,3],[3,2]]],[[[3,8],[5,7]],4]]
[[[[5,4],[7,7]],8],[[8,3],8]]
[[9,3],[[9,9],[6,[4,9]]]]
[[2,[[7,7],7]],[[5,8],[[9,3],[0,2]]]]
[[[[5,2],5],[8,[3,7]]],[[5,[7,5]],[4,4]]]
`

func TestHomework(t *testing.T) {
	ns := parse([]byte(homework))
	require.Equal(t, 4140, part1(ns))
	require.Equal(t, 3993, part2(ns))
}
