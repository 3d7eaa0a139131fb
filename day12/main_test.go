package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	tiny = `start-A
start-b
A-c
A-b
b-d
A-end
b-end
`
	medium = `dc-end
HN-start
start-kj
dc-start
dc-HN
LN-dc
HN-end
kj-sa
kj-HN
kj-dc
`
	large = `fs-end
he-DX
fs-he
start-DX
pj-DX
end-zg
zg-sl
zg-pj
pj-he
RW-he
fs-DX
pj-RW
zg-RW
start-pj
he-WI
zg-he
pj-fs
start-RW
`
)

func TestPaths(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		want1, want2 int
	}{
		{"tiny", tiny, 10, 36},
		{"medium", medium, 19, 103},
		{"large", large, 226, 3509},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := parse([]byte(tc.input))
			require.Equal(t, tc.want1, part1(g))
			require.Equal(t, tc.want2, part2(g))
		})
	}
}
