package burrow

import "github.com/ggazebo/aoc2021/aoc"

// Solve returns the least total energy that sorts every amphipod into
// its home room, or ok=false when no sequence of legal moves reaches
// the goal.
func Solve(start State) (energy int, ok bool) {
	expanded := 0
	energy, path, ok := aoc.AStarKeyed(start,
		State.IsGoal,
		func(s State, visit func(State, int)) {
			expanded++
			for _, m := range s.Moves() {
				visit(s.Apply(m), m.Cost())
			}
		},
		State.HeuristicLowerBound,
		State.Hash,
	)
	aoc.Debugf("burrow: expanded %d states, %d on the best path", expanded, len(path))
	return energy, ok
}
