package graph

import (
    "sort"
    "local/eurorails/simple"
)

// TrackGraph is the union of every player's track plus the implicit public
// edges: major city center<->outpost connectors and ferry crossings.  It is
// derived fresh from a snapshot, never persisted.
type TrackGraph struct {
    adj map[string][]simple.Coord
    owners map[string]map[string]bool
    ferryEdges map[string]bool
    coords map[string]simple.Coord
}

type PathResult struct {
    Valid bool
    Path []simple.Coord

    // Players other than the searcher whose exclusive track the path uses.
    Opponents map[string]bool

    // Count of opponent-owned edges on the path (the Dijkstra cost).
    OpponentEdges int
}

func New() *TrackGraph {
    return &TrackGraph{
        adj: make(map[string][]simple.Coord),
        owners: make(map[string]map[string]bool),
        ferryEdges: make(map[string]bool),
        coords: make(map[string]simple.Coord),
    }
}

// Build makes the union graph.  Track edges are tagged with every player
// who built them; city connectors and ferries are added with no owner.
func Build(all map[string][]simple.TrackSegment, cities []simple.MajorCity, ferries []simple.Ferry) *TrackGraph {
    g := New()
    for player, segments := range all {
        for _, s := range segments {
            g.AddEdge(s.From, s.To, player)
        }
    }
    g.addPublicEdges(cities, ferries)
    return g
}

func (g *TrackGraph) addPublicEdges(cities []simple.MajorCity, ferries []simple.Ferry) {
    for _, c := range cities {
        for _, o := range c.Outposts {
            g.AddEdge(c.Center, o, "")
        }
    }
    for _, f := range ferries {
        g.AddEdge(f.A, f.B, "")
        g.ferryEdges[simple.EdgeKeyFor(f.A, f.B)] = true
    }
}

// AddEdge with owner "" adds a public edge.  Adding the same edge twice for
// different players tags both as owners.
func (g *TrackGraph) AddEdge(a, b simple.Coord, owner string) {
    ek := simple.EdgeKeyFor(a, b)
    _, seen := g.owners[ek]
    if !seen {
        g.owners[ek] = make(map[string]bool)
        g.addNeighbor(a, b)
        g.addNeighbor(b, a)
    }
    if owner != "" {
        g.owners[ek][owner] = true
    }
}

func (g *TrackGraph) addNeighbor(a, b simple.Coord) {
    g.coords[a.Key()] = a
    g.coords[b.Key()] = b
    g.adj[a.Key()] = append(g.adj[a.Key()], b)
}

func (g *TrackGraph) HasNode(c simple.Coord) bool {
    _, ok := g.adj[c.Key()]
    return ok
}

func (g *TrackGraph) Neighbors(c simple.Coord) []simple.Coord {
    return g.adj[c.Key()]
}

func (g *TrackGraph) IsFerryEdge(a, b simple.Coord) bool {
    return g.ferryEdges[simple.EdgeKeyFor(a, b)]
}

// Nodes in sorted key order, so traversals are deterministic.
func (g *TrackGraph) Nodes() []simple.Coord {
    keys := make([]string, 0, len(g.coords))
    for k := range g.coords {
        keys = append(keys, k)
    }
    sort.Strings(keys)
    r := make([]simple.Coord, 0, len(keys))
    for _, k := range keys {
        r = append(r, g.coords[k])
    }
    return r
}

// An edge costs a fee when it is owned and the player is not among the
// owners.  Public edges (no owner) are free for everyone.
func (g *TrackGraph) edgeOpponentOwned(a, b simple.Coord, player string) bool {
    own, ok := g.owners[simple.EdgeKeyFor(a, b)]
    if !ok || len(own) == 0 {
        return false
    }
    return !own[player]
}

// OwnedExclusivelyByOther reports an edge the budgeted build pathfinder
// must route around: built, and not by this player.
func (g *TrackGraph) OwnedExclusivelyByOther(a, b simple.Coord, player string) bool {
    return g.edgeOpponentOwned(a, b, player)
}

func (g *TrackGraph) HasEdge(a, b simple.Coord) bool {
    _, ok := g.owners[simple.EdgeKeyFor(a, b)]
    return ok
}

// CheapestPath minimizes the number of opponent-owned edges used, not hop
// count: own and public edges cost 0, exclusively-opponent edges cost 1.
// A long route over own track therefore always beats a short route over an
// opponent's.  Ties fall to discovery order.  Implemented as a 0-1 BFS.
func (g *TrackGraph) CheapestPath(from, to simple.Coord, player string) PathResult {
    if !g.HasNode(from) || !g.HasNode(to) {
        return PathResult{Opponents: map[string]bool{}}
    }

    dist := map[string]int{from.Key(): 0}
    parent := map[string]simple.Coord{}
    deque := []simple.Coord{from}
    for len(deque) > 0 {
        cur := deque[0]
        deque = deque[1:]
        for _, n := range g.adj[cur.Key()] {
            w := 0
            if g.edgeOpponentOwned(cur, n, player) {
                w = 1
            }
            nd := dist[cur.Key()] + w
            if old, seen := dist[n.Key()]; !seen || nd < old {
                dist[n.Key()] = nd
                parent[n.Key()] = cur
                if w == 0 {
                    deque = append([]simple.Coord{n}, deque...)
                } else {
                    deque = append(deque, n)
                }
            }
        }
    }

    if _, ok := dist[to.Key()]; !ok {
        return PathResult{Opponents: map[string]bool{}}
    }

    path := []simple.Coord{to}
    for path[0].Key() != from.Key() {
        path = append([]simple.Coord{parent[path[0].Key()]}, path...)
    }

    opponents := map[string]bool{}
    for i := 1; i < len(path); i++ {
        if !g.edgeOpponentOwned(path[i-1], path[i], player) {
            continue
        }
        for o := range g.owners[simple.EdgeKeyFor(path[i-1], path[i])] {
            if o != player {
                opponents[o] = true
            }
        }
    }

    return PathResult{
        Valid: true,
        Path: path,
        Opponents: opponents,
        OpponentEdges: dist[to.Key()],
    }
}

// ConnectedMajorCityCount counts distinct major cities whose center or any
// outpost sits in the player's best-connected component.  When components
// tie, any maximal count is valid; we return the max over all components.
func ConnectedMajorCityCount(segments []simple.TrackSegment, cities []simple.MajorCity, ferries []simple.Ferry) int {
    if len(segments) == 0 {
        return 0
    }

    g := New()
    for _, s := range segments {
        g.AddEdge(s.From, s.To, "")
    }
    g.addPublicEdges(cities, ferries)

    cityByCoord := map[string]string{}
    for _, c := range cities {
        cityByCoord[c.Center.Key()] = c.Name
        for _, o := range c.Outposts {
            cityByCoord[o.Key()] = c.Name
        }
    }

    // A lone city's internal connectors form a component with no player
    // track; only components touching a built segment count.
    built := map[string]bool{}
    for _, s := range segments {
        built[s.From.Key()] = true
        built[s.To.Key()] = true
    }

    best := 0
    visited := map[string]bool{}
    for _, start := range g.Nodes() {
        if visited[start.Key()] {
            continue
        }
        component := []simple.Coord{start}
        visited[start.Key()] = true
        touchesTrack := built[start.Key()]
        for i := 0; i < len(component); i++ {
            for _, n := range g.Neighbors(component[i]) {
                if visited[n.Key()] {
                    continue
                }
                visited[n.Key()] = true
                component = append(component, n)
                if built[n.Key()] {
                    touchesTrack = true
                }
            }
        }
        if !touchesTrack {
            continue
        }
        names := map[string]bool{}
        for _, c := range component {
            if name, ok := cityByCoord[c.Key()]; ok {
                names[name] = true
            }
        }
        if len(names) > best {
            best = len(names)
        }
    }
    return best
}
