package main

import (
	"fmt"

	"github.com/ggazebo/aoc2021/aoc"
)

func parse(in []byte) (int, int) {
	lines := aoc.Lines(in)
	return aoc.Int(aoc.TrimPrefix(lines[0], "Player 1 starting position: ")),
		aoc.Int(aoc.TrimPrefix(lines[1], "Player 2 starting position: "))
}

// deterministic plays the practice game with the deterministic
// 100-sided die to 1000 points and returns loser score times rolls.
func deterministic(p1, p2 int) int {
	pos := [2]int{p1, p2}
	var score [2]int
	die, rolls := 0, 0
	roll := func() int {
		die = die%100 + 1
		rolls++
		return die
	}
	for i := 0; ; i ^= 1 {
		pos[i] = (pos[i]+roll()+roll()+roll()-1)%10 + 1
		score[i] += pos[i]
		if score[i] >= 1000 {
			return score[i^1] * rolls
		}
	}
}

type game struct {
	pos, score [2]int
	turn       int
}

// rollFreq maps the sum of three Dirac die rolls to how many of the 27
// universes produce it.
var rollFreq = map[int]int{3: 1, 4: 3, 5: 6, 6: 7, 7: 6, 8: 3, 9: 1}

// quantum counts the universes in which each player wins playing to 21
// with the quantum die, and returns the larger count. The game tree
// collapses nicely because only (positions, scores, turn) matter.
func quantum(p1, p2 int) int {
	memo := map[game][2]int{}
	var wins func(game) [2]int
	wins = func(g game) [2]int {
		if w, ok := memo[g]; ok {
			return w
		}
		var total [2]int
		for move, freq := range rollFreq {
			n := g
			n.pos[g.turn] = (n.pos[g.turn]+move-1)%10 + 1
			n.score[g.turn] += n.pos[g.turn]
			n.turn ^= 1
			if n.score[g.turn] >= 21 {
				total[g.turn] += freq
			} else {
				for i, w := range wins(n) {
					total[i] += freq * w
				}
			}
		}
		memo[g] = total
		return total
	}
	w := wins(game{pos: [2]int{p1, p2}})
	return max(w[0], w[1])
}

func main() {
	p1, p2 := parse(aoc.Input())
	fmt.Println(deterministic(p1, p2))
	fmt.Println(quantum(p1, p2))
}
