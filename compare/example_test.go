package compare_test

import (
	"context"
	"fmt"

	"github.com/tesselic/waypath/compare"
	"github.com/tesselic/waypath/core"
	"github.com/tesselic/waypath/geo"
	"github.com/tesselic/waypath/search"
)

// ExampleRun races both algorithms over a small road triangle and checks
// that the admissible heuristic kept A* optimal.
func ExampleRun() {
	g := core.NewGraph()
	a := core.Node{ID: "a", Lat: 40.7500, Lon: -73.9800}
	b := core.Node{ID: "b", Lat: 40.7510, Lon: -73.9800}
	c := core.Node{ID: "c", Lat: 40.7520, Lon: -73.9800}
	_ = g.AddEdge(a, b, 120)
	_ = g.AddEdge(b, c, 130)
	_ = g.AddEdge(a, c, 400)

	cmp, err := compare.Run(context.Background(), g, "a", "c", search.Estimator(geo.Haversine))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("dijkstra=%.0fm astar=%.0fm agree=%v\n",
		cmp.Dijkstra.Outcome.TotalCost,
		cmp.AStar.Outcome.TotalCost,
		cmp.CostsAgree(compare.DefaultCostTolerance))
	// Output:
	// dijkstra=250m astar=250m agree=true
}
