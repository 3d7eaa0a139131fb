package aoc

import "testing"

// riskNeighbors treats entering a cell as costing that cell's value.
func riskNeighbors(g Grid[int]) func(Pt, func(Pt, int)) {
	return func(p Pt, visit func(Pt, int)) {
		p.ForImmediateNeighbors(func(n Pt) bool {
			if v, ok := g.AtOk(n); ok {
				visit(n, v)
			}
			return true
		})
	}
}

func TestAStar(t *testing.T) {
	g := Grid[int]{
		{1, 9, 1},
		{1, 9, 1},
		{1, 1, 1},
	}
	end := Pt{2, 0}
	goal := func(p Pt) bool { return p == end }
	h := func(p Pt) int { return p.MDist(end) }

	cost, path, ok := AStar(Pt{0, 0}, goal, riskNeighbors(g), h)
	if !ok {
		t.Fatal("no path found")
	}
	if cost != 6 {
		t.Errorf("cost = %v, want 6", cost)
	}
	if len(path) != 7 || path[0] != (Pt{0, 0}) || path[6] != end {
		t.Errorf("path = %v", path)
	}

	// Dijkstra (nil heuristic) agrees.
	cost2, _, ok := AStar(Pt{0, 0}, goal, riskNeighbors(g), nil)
	if !ok || cost2 != cost {
		t.Errorf("nil-h cost = %v, want %v", cost2, cost)
	}
}

func TestAStarStartIsGoal(t *testing.T) {
	cost, path, ok := AStar(7, func(n int) bool { return n == 7 }, func(n int, visit func(int, int)) {}, nil)
	if !ok || cost != 0 || len(path) != 1 {
		t.Errorf("got %v, %v, %v", cost, path, ok)
	}
}

func TestAStarNoPath(t *testing.T) {
	neighbors := func(n int, visit func(int, int)) {
		if n < 3 {
			visit(n+1, 1)
		}
	}
	_, _, ok := AStar(0, func(n int) bool { return n == 10 }, neighbors, nil)
	if ok {
		t.Error("found a path to an unreachable goal")
	}
}

func TestAStarKeyed(t *testing.T) {
	// Nodes carry a non-comparable trace; the key collapses them by value.
	type node struct {
		x     int
		trace []int
	}
	neighbors := func(n node, visit func(node, int)) {
		for _, d := range []int{-1, 1} {
			visit(node{n.x + d, append(append([]int(nil), n.trace...), n.x+d)}, 1)
		}
	}
	cost, path, ok := AStarKeyed(node{x: 0}, func(n node) bool { return n.x == 3 }, neighbors, nil, func(n node) int { return n.x })
	if !ok || cost != 3 {
		t.Fatalf("cost = %v, ok = %v, want 3, true", cost, ok)
	}
	if len(path) != 4 || path[3].x != 3 {
		t.Errorf("path = %v", path)
	}
}
