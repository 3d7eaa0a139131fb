package main

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

var sample = []string{
	"[({(<(())[]>[[{[]{<()<>>",
	"[(()[<>])]({[<{<<[]>>(",
	"{([(<{}[<>[]}>{[]{[(<()>",
	"(((({<>}<{<{<>}{[]{[]{}",
	"[[<[([]))<([[{}[[()]]]",
	"[{[{({}]{}}([{[{{{}}([]",
	"{<[[]]>}<{[{[{[]{()[[[]",
	"[<(<(<(<{}))><([]([]()",
	"<{([([[(<>()){}]>(<<{{",
	"<{([{{}}[<[[[<>{}]]]>[]]",
}

func TestCheck(t *testing.T) {
	s, corrupt := check("{([(<{}[<>[]}>{[]{[(<()>")
	require.True(t, corrupt)
	require.Equal(t, 1197, s, "expected ], but found } instead")

	s, corrupt = check("<{([{{}}[<[[[<>{}]]]>[]]")
	require.False(t, corrupt)
	require.Equal(t, 294, s, "complete by adding ])}>")
}

func TestSampleScores(t *testing.T) {
	corrupt := 0
	var incomplete []int
	for _, line := range sample {
		if s, bad := check(line); bad {
			corrupt += s
		} else {
			incomplete = append(incomplete, s)
		}
	}
	require.Equal(t, 26397, corrupt)
	slices.Sort(incomplete)
	require.Equal(t, 288957, incomplete[len(incomplete)/2])
}
