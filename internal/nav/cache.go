package nav

import (
	"time"

	"github.com/vovakirdan/pursuit/internal/maze"
)

// GraphCache holds the last built graph and rebuilds it once it is older
// than MaxAge. Callers must tolerate a graph that is up to MaxAge stale.
type GraphCache struct {
	Maze     *maze.Maze
	CellSize float64
	AgentW   float64 // Footprint the graph is built for; zero for plain cells
	AgentH   float64
	MaxAge   time.Duration

	graph       *Graph
	lastBuiltAt time.Time
	builds      int
}

// NewGraphCache creates an empty cache for agents of agentW × agentH; the
// first GetOrRebuild builds.
func NewGraphCache(m *maze.Maze, cellSize, agentW, agentH float64, maxAge time.Duration) *GraphCache {
	return &GraphCache{
		Maze:     m,
		CellSize: cellSize,
		AgentW:   agentW,
		AgentH:   agentH,
		MaxAge:   maxAge,
	}
}

// GetOrRebuild returns the cached graph, rebuilding it in place first when
// none exists or it was built more than MaxAge before now. rebuilt reports
// whether a build happened.
func (c *GraphCache) GetOrRebuild(now time.Time) (g *Graph, rebuilt bool) {
	if c.graph == nil || now.Sub(c.lastBuiltAt) > c.MaxAge {
		c.graph = BuildAgentGraph(c.Maze, c.CellSize, c.AgentW, c.AgentH)
		c.lastBuiltAt = now
		c.builds++
		return c.graph, true
	}
	return c.graph, false
}

// LastBuiltAt returns when the current graph was built.
func (c *GraphCache) LastBuiltAt() time.Time {
	return c.lastBuiltAt
}

// Builds returns how many times the graph has been built.
func (c *GraphCache) Builds() int {
	return c.builds
}

// Invalidate drops the cached graph so the next call rebuilds.
func (c *GraphCache) Invalidate() {
	c.graph = nil
}
