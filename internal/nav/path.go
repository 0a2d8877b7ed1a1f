package nav

import "github.com/vovakirdan/pursuit/internal/core"

type heapEntry struct {
	node Node
	dist int
}

// minHeap is a binary heap ordered by dist.
type minHeap []heapEntry

func (h *minHeap) push(e heapEntry) {
	*h = append(*h, e)
	i := len(*h) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if (*h)[parent].dist <= (*h)[i].dist {
			break
		}
		(*h)[parent], (*h)[i] = (*h)[i], (*h)[parent]
		i = parent
	}
}

func (h *minHeap) pop() heapEntry {
	old := *h
	n := len(old)
	e := old[0]
	old[0] = old[n-1]
	*h = old[:n-1]

	i := 0
	for {
		left := 2*i + 1
		if left >= len(*h) {
			break
		}
		smallest := left
		if right := left + 1; right < len(*h) && (*h)[right].dist < (*h)[left].dist {
			smallest = right
		}
		if (*h)[i].dist <= (*h)[smallest].dist {
			break
		}
		(*h)[i], (*h)[smallest] = (*h)[smallest], (*h)[i]
		i = smallest
	}
	return e
}

// ShortestPath runs Dijkstra from start to goal over unit-weight edges and
// returns the node sequence including both ends. It returns nil when either
// end is not a node or goal is unreachable; start == goal yields [start].
func ShortestPath(g *Graph, start, goal Node) []Node {
	if !g.Free(start) || !g.Free(goal) {
		return nil
	}
	if start == goal {
		return []Node{start}
	}

	size := g.Cols * g.Rows
	dist := make([]int, size)
	prev := make([]int, size)
	for i := range dist {
		dist[i] = -1
		prev[i] = -1
	}

	h := make(minHeap, 0, size/4)
	dist[g.index(start)] = 0
	h.push(heapEntry{node: start, dist: 0})

	goalIdx := g.index(goal)
	neighbors := make([]Node, 0, 4)

	for len(h) > 0 {
		e := h.pop()
		idx := g.index(e.node)
		if e.dist > dist[idx] {
			continue // Stale entry
		}
		if idx == goalIdx {
			break
		}

		neighbors = g.Neighbors(neighbors[:0], e.node)
		for _, next := range neighbors {
			nIdx := g.index(next)
			nd := e.dist + 1
			if dist[nIdx] == -1 || nd < dist[nIdx] {
				dist[nIdx] = nd
				prev[nIdx] = idx
				h.push(heapEntry{node: next, dist: nd})
			}
		}
	}

	if dist[goalIdx] == -1 {
		return nil
	}

	path := make([]Node, dist[goalIdx]+1)
	for i, idx := len(path)-1, goalIdx; i >= 0; i-- {
		path[i] = Node{Col: idx % g.Cols, Row: idx / g.Cols}
		idx = prev[idx]
	}
	return path
}

// DirectionFromPath returns the cardinal direction of the first hop. ok is
// false for paths shorter than two nodes.
func DirectionFromPath(path []Node) (core.Direction, bool) {
	if len(path) < 2 {
		return core.DirNone, false
	}
	dc := path[1].Col - path[0].Col
	dr := path[1].Row - path[0].Row
	switch {
	case dc > 0:
		return core.DirRight, true
	case dc < 0:
		return core.DirLeft, true
	case dr > 0:
		return core.DirDown, true
	case dr < 0:
		return core.DirUp, true
	}
	return core.DirNone, false
}

// DistanceField holds hop counts from every node to one goal.
type DistanceField struct {
	g    *Graph
	dist []int
}

// Distances runs a breadth-first search outward from goal. Edges are
// undirected, so the result is also each node's distance to goal.
func Distances(g *Graph, goal Node) *DistanceField {
	f := &DistanceField{g: g, dist: make([]int, g.Cols*g.Rows)}
	for i := range f.dist {
		f.dist[i] = -1
	}
	if !g.Free(goal) {
		return f
	}

	f.dist[g.index(goal)] = 0
	queue := []Node{goal}
	neighbors := make([]Node, 0, 4)
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		d := f.dist[g.index(n)]
		neighbors = g.Neighbors(neighbors[:0], n)
		for _, next := range neighbors {
			if idx := g.index(next); f.dist[idx] == -1 {
				f.dist[idx] = d + 1
				queue = append(queue, next)
			}
		}
	}
	return f
}

// Dist returns the hop count from n to the goal. ok is false when n is not a
// node or cannot reach the goal.
func (f *DistanceField) Dist(n Node) (int, bool) {
	if !f.g.Free(n) {
		return 0, false
	}
	d := f.dist[f.g.index(n)]
	return d, d >= 0
}

// Descends reports whether stepping from n in dir moves one hop closer to
// the goal, that is whether dir starts some shortest path from n.
func (f *DistanceField) Descends(n Node, dir core.Direction) bool {
	if dir == core.DirNone {
		return false
	}
	d, ok := f.Dist(n)
	if !ok {
		return false
	}
	next, ok := f.Dist(n.Step(dir))
	return ok && next == d-1
}
