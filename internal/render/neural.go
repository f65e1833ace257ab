package render

import (
	"image"
	"math"
)

// Graph is a fixed decorative node layout with index-pair connections.
type Graph struct {
	Nodes []image.Point
	Edges [][2]int
}

// Tier holds the drawing parameters for one class of node.
type Tier struct {
	OuterRadius     int
	OuterAlpha      uint8
	CoreRadius      int
	CoreAlpha       uint8
	HighlightRadius int
}

var tiers = [...]Tier{
	{OuterRadius: 12, OuterAlpha: 60, CoreRadius: 7, CoreAlpha: 220, HighlightRadius: 4}, // root
	{OuterRadius: 10, OuterAlpha: 50, CoreRadius: 6, CoreAlpha: 200, HighlightRadius: 3},
	{OuterRadius: 8, OuterAlpha: 45, CoreRadius: 5, CoreAlpha: 180, HighlightRadius: 2},
	{OuterRadius: 7, OuterAlpha: 40, CoreRadius: 4, CoreAlpha: 160, HighlightRadius: 2},
	{OuterRadius: 6, OuterAlpha: 35, CoreRadius: 4, CoreAlpha: 140, HighlightRadius: 2},
}

// TierFor classifies a chest node by its index: 0 is the root, 1-3, 4-7 and
// 8-12 are the inner layers, everything after that is the outermost layer.
func TierFor(i int) Tier {
	switch {
	case i <= 0:
		return tiers[0]
	case i <= 3:
		return tiers[1]
	case i <= 7:
		return tiers[2]
	case i <= 12:
		return tiers[3]
	default:
		return tiers[4]
	}
}

const (
	edgeBaseAlpha = 100
	edgeBoost     = 50
	edgeMaxDist   = 200.0
)

// EdgeAlpha fades a chest connection with its length: shorter edges are more opaque.
func EdgeAlpha(a, b image.Point) uint8 {
	dist := math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y))
	return uint8(edgeBaseAlpha + int(edgeBoost*(1-math.Min(dist/edgeMaxDist, 1))))
}

// ChestGraph is the tree of pathways on the owl's chest, rooted at the top of
// the chest and widening over four layers before narrowing again.
func ChestGraph(top image.Point) Graph {
	at := func(dx, dy int) image.Point { return top.Add(image.Pt(dx, dy)) }
	return Graph{
		Nodes: []image.Point{
			at(0, 10),
			at(-35, 55), at(35, 55), at(0, 70),
			at(-70, 100), at(-25, 110), at(25, 110), at(70, 100),
			at(-100, 155), at(-55, 160), at(0, 170), at(55, 160), at(100, 155),
			at(-70, 210), at(-25, 220), at(25, 220), at(70, 210),
		},
		Edges: [][2]int{
			{0, 1}, {0, 2}, {0, 3},
			{1, 4}, {1, 5}, {2, 6}, {2, 7}, {3, 5}, {3, 6},
			{4, 8}, {4, 9}, {5, 9}, {5, 10}, {6, 10}, {6, 11}, {7, 11}, {7, 12},
			{8, 13}, {9, 13}, {9, 14}, {10, 14}, {10, 15}, {11, 15}, {11, 16}, {12, 16},
			// lateral
			{1, 3}, {2, 3},
			{4, 5}, {6, 7},
			{8, 9}, {9, 10}, {10, 11}, {11, 12},
			{13, 14}, {14, 15}, {15, 16},
		},
	}
}

// HeadGraph is the smaller pattern on the forehead, relative to the head center.
func HeadGraph(head image.Point) Graph {
	at := func(dx, dy int) image.Point { return head.Add(image.Pt(dx, dy)) }
	return Graph{
		Nodes: []image.Point{
			at(0, -85),
			at(-35, -70), at(35, -70),
			at(-55, -45), at(-18, -48), at(18, -48), at(55, -45),
			at(0, -28),
		},
		Edges: [][2]int{
			{0, 1}, {0, 2},
			{1, 3}, {1, 4}, {2, 5}, {2, 6},
			{3, 4}, {4, 7}, {5, 7}, {5, 6},
			{1, 2}, {4, 5},
		},
	}
}

// Endpoints returns the two nodes joined by edge e.
func (g Graph) Endpoints(e [2]int) (image.Point, image.Point) {
	return g.Nodes[e[0]], g.Nodes[e[1]]
}
