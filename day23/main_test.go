package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var sample = []byte(`#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########
`)

func TestParse(t *testing.T) {
	require.Equal(t, []string{"BCBD", "ADCA"}, parse(sample))
}

func TestUnfold(t *testing.T) {
	require.Equal(t, []string{"BCBD", "DCBA", "DBAC", "ADCA"}, unfold(parse(sample)))
}

func TestSample(t *testing.T) {
	require.Equal(t, 12521, solve(parse(sample)))
}
