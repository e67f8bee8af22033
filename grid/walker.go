package grid

import (
	"math"
	"time"

	"github.com/clipperhouse/bopomofo/reading"
)

// WalkNode is a plain value copy of one Node chosen along the best path,
// detached from the grid so callers can hold onto a WalkResult after the
// grid mutates further.
type WalkNode struct {
	Reading    reading.Reading
	Value      string
	Score      float64
	SpanLength int
}

// WalkResult is the outcome of walking a grid, plus bookkeeping for
// diagnostics.
type WalkResult struct {
	Nodes           []WalkNode
	VerticesVisited int
	EdgesRelaxed    int
	Elapsed         time.Duration
}

// Walk finds the highest-scoring left-to-right path across every reading
// position, by dynamic programming backwards from the end of the grid
// (longest path in a DAG, via reverse topological order). Ties prefer the
// longer span, then the Node inserted earlier into its span.
func (g *ReadingGrid) Walk() WalkResult {
	start := time.Now()
	n := len(g.readings)

	dist := make([]float64, n+1)
	choice := make([]*Node, n+1)
	for i := range dist {
		dist[i] = math.Inf(-1)
	}
	dist[n] = 0

	edgesRelaxed := 0
	verticesVisited := 0

	for p := n - 1; p >= 0; p-- {
		verticesVisited++
		var best *Node
		bestTotal := math.Inf(-1)
		for length := 1; length <= MaxSpan && p+length <= n; length++ {
			node, ok := g.spans[p].get(length)
			if !ok {
				continue
			}
			edgesRelaxed++
			total := node.Score() + dist[p+length]
			if total > bestTotal ||
				(total == bestTotal && better(node, best)) {
				bestTotal = total
				best = node
			}
		}
		dist[p] = bestTotal
		choice[p] = best
	}

	var nodes []WalkNode
	for p := 0; p < n; {
		node := choice[p]
		if node == nil {
			// No candidate covers position p: the grid is missing a
			// length-1 Node here, which InsertReading's validation is
			// meant to prevent. Stop rather than loop forever.
			break
		}
		nodes = append(nodes, WalkNode{
			Reading:    node.Reading,
			Value:      node.Value(),
			Score:      node.Score(),
			SpanLength: node.SpanLength,
		})
		p += node.SpanLength
	}

	return WalkResult{
		Nodes:           nodes,
		VerticesVisited: verticesVisited,
		EdgesRelaxed:    edgesRelaxed,
		Elapsed:         time.Since(start),
	}
}

// better reports whether candidate should replace incumbent given an equal
// path score: prefer the longer span, then the one inserted first.
func better(candidate, incumbent *Node) bool {
	if incumbent == nil {
		return true
	}
	if candidate.SpanLength != incumbent.SpanLength {
		return candidate.SpanLength > incumbent.SpanLength
	}
	return candidate.seq < incumbent.seq
}
