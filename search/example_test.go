// Package search_test provides runnable examples for the engine.
// Each example runs via "go test -run Example", showing code and output.
package search_test

import (
	"fmt"

	"github.com/tesselic/waypath/core"
	"github.com/tesselic/waypath/geo"
	"github.com/tesselic/waypath/search"
)

// ExampleDijkstra demonstrates the cheaper two-hop route beating the
// direct edge on a triangle of road segments.
func ExampleDijkstra() {
	// 1) Build the road network: three intersections, weights in meters.
	g := core.NewGraph()
	a := core.Node{ID: "a", Lat: 40.7500, Lon: -73.9800}
	b := core.Node{ID: "b", Lat: 40.7510, Lon: -73.9800}
	c := core.Node{ID: "c", Lat: 40.7520, Lon: -73.9800}
	_ = g.AddEdge(a, b, 100)
	_ = g.AddEdge(b, c, 200)
	_ = g.AddEdge(a, c, 500)

	// 2) Search a → c. The engine relaxes a—b—c down to 300 m and leaves
	//    the 500 m direct edge unused.
	out, err := search.Dijkstra(g, "a", "c")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Print the route.
	for i, n := range out.Path {
		if i > 0 {
			fmt.Print(" -> ")
		}
		fmt.Print(n.ID)
	}
	fmt.Printf("\ncost=%.0fm expanded=%d\n", out.TotalCost, out.NodesExpanded)
	// Output:
	// a -> b -> c
	// cost=300m expanded=2
}

// ExampleAStar demonstrates explicit heuristic selection: Estimator wraps
// the haversine distance, keeping A* admissible on road networks.
func ExampleAStar() {
	g := core.NewGraph()
	a := core.Node{ID: "a", Lat: 40.7500, Lon: -73.9800}
	b := core.Node{ID: "b", Lat: 40.7510, Lon: -73.9800}
	c := core.Node{ID: "c", Lat: 40.7520, Lon: -73.9800}
	_ = g.AddEdge(a, b, 120)
	_ = g.AddEdge(b, c, 120)

	out, err := search.AStar(g, "a", "c", search.Estimator(geo.Haversine))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("found=%v hops=%d cost=%.0fm\n", out.Found, len(out.Path)-1, out.TotalCost)
	// Output:
	// found=true hops=2 cost=240m
}

// ExampleDijkstra_notFound shows failure reported as data: a goal in a
// disconnected component yields a NoPath outcome, not an error.
func ExampleDijkstra_notFound() {
	g := core.NewGraph()
	_ = g.AddEdge(core.Node{ID: "a"}, core.Node{ID: "b", Lon: 0.001}, 100)
	_ = g.AddEdge(core.Node{ID: "x", Lat: 1}, core.Node{ID: "y", Lat: 1, Lon: 1.001}, 100)

	out, err := search.Dijkstra(g, "a", "y")
	fmt.Printf("err=%v found=%v reason=%s\n", err, out.Found, out.Reason)
	// Output:
	// err=<nil> found=false reason=no path
}
