package aoc

import "slices"

// AStar finds a cheapest path from start to any node satisfying goal over an
// implicit graph. neighbors calls visit once per edge out of a node with the
// edge's non-negative cost; h is an admissible lower bound on the remaining
// cost to a goal, or nil, which turns the search into Dijkstra's. It returns
// the total cost, the node sequence from start to the reached goal, and
// whether a goal was reached at all.
func AStar[N comparable](start N, goal func(N) bool, neighbors func(n N, visit func(to N, cost int)), h func(N) int) (int, []N, bool) {
	return AStarKeyed(start, goal, neighbors, h, func(n N) N { return n })
}

// AStarKeyed is AStar for node types that are not comparable; key must map
// each node to a unique comparable value.
func AStarKeyed[N any, K comparable](start N, goal func(N) bool, neighbors func(n N, visit func(to N, cost int)), h func(N) int, key func(N) K) (int, []N, bool) {
	if h == nil {
		h = func(N) int { return 0 }
	}
	var (
		dist  = map[K]int{key(start): 0}
		prev  = map[K]N{}
		items = map[K]*PQI[N]{}
		q     = MinQueue[N]()
	)
	q.Push(&PQI[N]{V: start, P: h(start)})
	for q.Len() > 0 {
		cur := q.Pop()
		n := cur.V
		k := key(n)
		if goal(n) {
			return dist[k], assemblePath(prev, key, n), true
		}
		d := dist[k]
		neighbors(n, func(to N, cost int) {
			kt := key(to)
			nd := d + cost
			if old, ok := dist[kt]; ok && old <= nd {
				return
			}
			dist[kt] = nd
			prev[kt] = n
			if it, ok := items[kt]; ok && it.Index() != -1 {
				it.V = to
				it.P = nd + h(to)
				q.Update(it)
			} else {
				it := &PQI[N]{V: to, P: nd + h(to)}
				items[kt] = it
				q.Push(it)
			}
		})
	}
	return 0, nil, false
}

func assemblePath[N any, K comparable](prev map[K]N, key func(N) K, end N) []N {
	path := []N{end}
	for {
		p, ok := prev[key(path[len(path)-1])]
		if !ok {
			break
		}
		path = append(path, p)
	}
	slices.Reverse(path)
	return path
}
