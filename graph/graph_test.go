package graph

import (
    "testing"
    "local/eurorails/simple"
)

func c(row, col int) simple.Coord {
    return simple.Coord{Row: row, Col: col}
}

func seg(a, b simple.Coord) simple.TrackSegment {
    return simple.TrackSegment{From: a, To: b}
}

// A long route over own track must beat a short route over an opponent's:
// the cost is opponent edges used, not hop count.
func TestCheapestPathPrefersOwnTrack(t *testing.T) {
    g := New()
    // Short route: two opponent edges.
    g.AddEdge(c(0, 0), c(0, 1), "opp")
    g.AddEdge(c(0, 1), c(0, 2), "opp")
    // Long route: five own edges.
    g.AddEdge(c(0, 0), c(1, 0), "me")
    g.AddEdge(c(1, 0), c(2, 0), "me")
    g.AddEdge(c(2, 0), c(2, 1), "me")
    g.AddEdge(c(2, 1), c(2, 2), "me")
    g.AddEdge(c(2, 2), c(0, 2), "me")

    r := g.CheapestPath(c(0, 0), c(0, 2), "me")
    if !r.Valid {
        t.Fatalf("expected a valid path")
    }
    if r.OpponentEdges != 0 {
        t.Errorf("own route should cost 0 opponent edges, got %d", r.OpponentEdges)
    }
    if len(r.Opponents) != 0 {
        t.Errorf("own route should name no opponents, got %v", r.Opponents)
    }
    if len(r.Path) != 6 {
        t.Errorf("expected the 5-edge own route, got %d mileposts", len(r.Path))
    }
}

func TestCheapestPathThroughOpponent(t *testing.T) {
    g := New()
    g.AddEdge(c(0, 0), c(0, 1), "opp")
    g.AddEdge(c(0, 1), c(0, 2), "me")

    r := g.CheapestPath(c(0, 0), c(0, 2), "me")
    if !r.Valid {
        t.Fatalf("expected a valid path")
    }
    if r.OpponentEdges != 1 {
        t.Errorf("expected 1 opponent edge, got %d", r.OpponentEdges)
    }
    if !r.Opponents["opp"] {
        t.Errorf("expected opp among opponents, got %v", r.Opponents)
    }
}

func TestCheapestPathDisconnected(t *testing.T) {
    g := New()
    g.AddEdge(c(0, 0), c(0, 1), "me")
    g.AddEdge(c(5, 5), c(5, 6), "me")

    r := g.CheapestPath(c(0, 0), c(5, 6), "me")
    if r.Valid {
        t.Errorf("disconnected mileposts should not yield a path")
    }
    if g.CheapestPath(c(9, 9), c(0, 0), "me").Valid {
        t.Errorf("unknown milepost should not yield a path")
    }
}

func TestOwnedExclusivelyByOther(t *testing.T) {
    g := New()
    g.AddEdge(c(0, 0), c(0, 1), "opp")
    g.AddEdge(c(0, 1), c(0, 2), "opp")
    g.AddEdge(c(0, 1), c(0, 2), "me")
    g.AddEdge(c(1, 0), c(1, 1), "")

    cases := []struct {
        name string
        a, b simple.Coord
        want bool
    }{
        {"opponent only", c(0, 0), c(0, 1), true},
        {"shared with me", c(0, 1), c(0, 2), false},
        {"public edge", c(1, 0), c(1, 1), false},
        {"unbuilt", c(3, 3), c(3, 4), false},
    }
    for _, tc := range cases {
        if got := g.OwnedExclusivelyByOther(tc.a, tc.b, "me"); got != tc.want {
            t.Errorf("%s: got %t, want %t", tc.name, got, tc.want)
        }
    }
}

func testCities() []simple.MajorCity {
    return []simple.MajorCity{
        {Name: "A", Center: c(0, 0), Outposts: []simple.Coord{c(0, 1), c(1, 0)}},
        {Name: "B", Center: c(0, 5), Outposts: []simple.Coord{c(0, 4)}},
        {Name: "C", Center: c(5, 5), Outposts: []simple.Coord{c(5, 4)}},
    }
}

func TestConnectedMajorCityCount(t *testing.T) {
    link := []simple.TrackSegment{
        seg(c(0, 1), c(0, 2)),
        seg(c(0, 2), c(0, 3)),
        seg(c(0, 3), c(0, 4)),
    }

    cases := []struct {
        name string
        segments []simple.TrackSegment
        want int
    }{
        {"no track", nil, 0},
        {"track touching no city", []simple.TrackSegment{seg(c(8, 8), c(8, 9))}, 0},
        {"two cities linked", link, 2},
        {"largest component wins", append(append([]simple.TrackSegment{}, link...),
            seg(c(5, 4), c(5, 3))), 2},
    }
    for _, tc := range cases {
        got := ConnectedMajorCityCount(tc.segments, testCities(), nil)
        if got != tc.want {
            t.Errorf("%s: got %d, want %d", tc.name, got, tc.want)
        }
    }
}

// A city's internal center<->outpost connectors alone must not make it
// "connected"; some built segment has to touch the component.
func TestConnectedMajorCityCountNeedsBuiltTrack(t *testing.T) {
    segments := []simple.TrackSegment{seg(c(0, 1), c(0, 2))}
    got := ConnectedMajorCityCount(segments, testCities(), nil)
    if got != 1 {
        t.Errorf("expected only A connected, got %d", got)
    }
}

func TestFerryEdgesArePublic(t *testing.T) {
    ferries := []simple.Ferry{{Name: "Strait", A: c(2, 2), B: c(3, 3), Cost: 3}}
    g := Build(map[string][]simple.TrackSegment{
        "me": {seg(c(2, 1), c(2, 2))},
    }, nil, ferries)

    if !g.IsFerryEdge(c(2, 2), c(3, 3)) {
        t.Errorf("ferry crossing should be marked")
    }
    if g.IsFerryEdge(c(2, 1), c(2, 2)) {
        t.Errorf("built segment should not be marked as ferry")
    }
    r := g.CheapestPath(c(2, 1), c(3, 3), "me")
    if !r.Valid || r.OpponentEdges != 0 {
        t.Errorf("ferry should be free to cross, got %+v", r)
    }
}
