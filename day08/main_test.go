package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const line = "acedgfb cdfbe gcdfa fbcad dab cefabd cdfgeb eafb cagedb ab | cdfeb fcadb cdfeb cdbaf"

func TestDecode(t *testing.T) {
	entries := parse([]byte(line + "\n"))
	require.Len(t, entries, 1)
	require.Equal(t, 5353, decode(entries[0]))
	require.Zero(t, part1(entries), "every output digit is a five-segment one")
}

// An unscrambled entry: patterns are the true segment sets for 0-9.
func TestDecodeIdentityWiring(t *testing.T) {
	e := entry{
		patterns: masks("abcefg cf acdeg acdfg bcdf abdfg abdefg acf abcdefg abcdfg"),
		outputs:  masks("cf acf bcdf abcdefg"),
	}
	require.Equal(t, 1748, decode(e))
	require.Equal(t, 4, part1([]entry{e}), "1, 7, 4 and 8 all have unique sizes")
}
