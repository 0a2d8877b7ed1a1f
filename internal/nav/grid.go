// Package nav discretizes a maze into a grid graph and finds shortest paths
// over it for ghost pursuit.
package nav

import (
	"math"

	"github.com/vovakirdan/pursuit/internal/core"
	"github.com/vovakirdan/pursuit/internal/maze"
)

// probeInset shrinks each cell's probe so walls that only touch a cell edge
// do not exclude it.
const probeInset = 1.0

// Node identifies a grid cell.
type Node struct {
	Col, Row int
}

// Graph is the adjacency structure over the free cells of a maze. Edges are
// implicit: a free cell connects to each free 4-neighbour with weight 1.
//
// A graph built for an agent footprint treats each cell's top-left corner as
// an anchor: the cell is free only when an agent-sized rectangle placed on
// the anchor clears every wall and the bounds. Moving between two adjacent
// free anchors is then always collision-free for that agent, as long as the
// agent is at least one cell wide and tall.
type Graph struct {
	Cols, Rows int
	CellSize   float64
	Origin     maze.Point // Top-left of cell (0,0) in pixels
	AgentW     float64    // Zero for a plain cell graph
	AgentH     float64

	free []bool
}

// BuildGraph partitions the maze bounds into cellSize cells and keeps every
// cell whose probe rectangle stays clear of walls and the bounds edge.
// Runs in O(cells × walls).
func BuildGraph(m *maze.Maze, cellSize float64) *Graph {
	return BuildAgentGraph(m, cellSize, 0, 0)
}

// BuildAgentGraph is BuildGraph with each cell probed by an agentW × agentH
// rectangle anchored on the cell's top-left corner. Non-positive sizes fall
// back to the plain cell probe.
func BuildAgentGraph(m *maze.Maze, cellSize, agentW, agentH float64) *Graph {
	cols := int(math.Round(m.Bounds.W / cellSize))
	rows := int(math.Round(m.Bounds.H / cellSize))

	g := &Graph{
		Cols:     cols,
		Rows:     rows,
		CellSize: cellSize,
		Origin:   maze.Point{X: m.Bounds.X, Y: m.Bounds.Y},
		free:     make([]bool, cols*rows),
	}
	if agentW > 0 && agentH > 0 {
		g.AgentW, g.AgentH = agentW, agentH
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			g.free[row*cols+col] = !m.Blocked(g.Probe(Node{col, row}))
		}
	}
	return g
}

// Footprint reports whether the graph was built for an agent size.
func (g *Graph) Footprint() bool {
	return g.AgentW > 0
}

// Probe returns the rectangle tested against the maze for n: the agent
// placed on the anchor, or the cell shrunk by probeInset.
func (g *Graph) Probe(n Node) core.Rect {
	if g.Footprint() {
		x, y := g.Anchor(n)
		return core.NewRect(x, y, g.AgentW, g.AgentH)
	}
	return g.CellRect(n).Inflate(-probeInset)
}

// Anchor returns the top-left pixel of n.
func (g *Graph) Anchor(n Node) (float64, float64) {
	return g.Origin.X + float64(n.Col)*g.CellSize, g.Origin.Y + float64(n.Row)*g.CellSize
}

// CellRect returns the full pixel rectangle of a cell.
func (g *Graph) CellRect(n Node) core.Rect {
	x, y := g.Anchor(n)
	return core.NewRect(x, y, g.CellSize, g.CellSize)
}

// InGrid reports whether n lies within the grid.
func (g *Graph) InGrid(n Node) bool {
	return n.Col >= 0 && n.Col < g.Cols && n.Row >= 0 && n.Row < g.Rows
}

// Free reports whether n is a node of the graph.
func (g *Graph) Free(n Node) bool {
	return g.InGrid(n) && g.free[g.index(n)]
}

// FreeCount returns the number of nodes.
func (g *Graph) FreeCount() int {
	count := 0
	for _, f := range g.free {
		if f {
			count++
		}
	}
	return count
}

// NodeAt returns the cell containing pixel (x, y). ok is false when the point
// lies outside the grid.
func (g *Graph) NodeAt(x, y float64) (Node, bool) {
	n := Node{
		Col: int(math.Floor((x - g.Origin.X) / g.CellSize)),
		Row: int(math.Floor((y - g.Origin.Y) / g.CellSize)),
	}
	return n, g.InGrid(n)
}

// NodeOf maps r onto the graph. A plain cell graph returns the cell holding
// r's center. A footprint graph returns the nearest free anchor among the
// cells around r's top-left corner, so an agent between two anchors maps to
// one it can actually occupy; ok is false when none of them is free.
func (g *Graph) NodeOf(r core.Rect) (Node, bool) {
	if !g.Footprint() {
		cx, cy := r.Center()
		return g.NodeAt(cx, cy)
	}

	fx := (r.X - g.Origin.X) / g.CellSize
	fy := (r.Y - g.Origin.Y) / g.CellSize
	cols := [2]int{int(math.Floor(fx)), int(math.Ceil(fx))}
	rows := [2]int{int(math.Floor(fy)), int(math.Ceil(fy))}

	var best Node
	found := false
	bestDist := math.Inf(1)
	for _, row := range rows {
		for _, col := range cols {
			n := Node{col, row}
			if !g.Free(n) {
				continue
			}
			x, y := g.Anchor(n)
			d := (x-r.X)*(x-r.X) + (y-r.Y)*(y-r.Y)
			if d < bestDist {
				best, bestDist, found = n, d, true
			}
		}
	}
	return best, found
}

// Step returns the neighbour of n one cell away in dir.
func (n Node) Step(dir core.Direction) Node {
	dx, dy := dir.Delta()
	return Node{n.Col + int(dx), n.Row + int(dy)}
}

// Neighbors appends the free 4-neighbours of n to dst, in clockwise order
// starting from up.
func (g *Graph) Neighbors(dst []Node, n Node) []Node {
	for _, d := range core.Directions {
		if next := n.Step(d); g.Free(next) {
			dst = append(dst, next)
		}
	}
	return dst
}

func (g *Graph) index(n Node) int {
	return n.Row*g.Cols + n.Col
}
