package bot

import (
    "local/eurorails/graph"
    "local/eurorails/simple"
)

// buildPath is the budgeted pathfinder's answer: the affordable contiguous
// prefix for this turn plus the full remaining cost, so chain ranking can
// estimate how many build turns a target still needs.
type buildPath struct {
    Segments []simple.TrackSegment
    TurnCost int
    TotalCost int
    Reached bool
}

// buildToward finds the cheapest buildable route from any start milepost to
// any target milepost.  Edge cost is the terrain cost of the milepost being
// entered; edges the bot already owns cost nothing and emit no segment;
// edges owned by any other player are never used.  The returned segment
// list never exceeds budget and stops at the first unaffordable segment so
// it stays contiguous.
func (g *Generator) buildToward(union *graph.TrackGraph, snap Snapshot, starts []simple.Coord, targets []simple.Coord, budget int) buildPath {
    player := snap.Bot.PlayerId
    targetSet := map[string]bool{}
    for _, t := range targets {
        targetSet[t.Key()] = true
    }

    ownEdges := map[string]bool{}
    for _, s := range snap.Bot.Track {
        ownEdges[s.EdgeKey()] = true
    }

    dist := map[string]int{}
    parent := map[string]simple.Coord{}
    coords := map[string]simple.Coord{}
    visited := map[string]bool{}
    for _, s := range starts {
        dist[s.Key()] = 0
        coords[s.Key()] = s
    }

    goal := ""
    for {
        // Linear min selection, key tie-break for determinism.  Boards are
        // a few thousand mileposts so this never matters for speed.
        cur := ""
        for k, d := range dist {
            if visited[k] {
                continue
            }
            if cur == "" || d < dist[cur] || (d == dist[cur] && k < cur) {
                cur = k
            }
        }
        if cur == "" {
            break
        }
        if targetSet[cur] {
            goal = cur
            break
        }
        visited[cur] = true

        c := coords[cur]
        for _, n := range g.grid.Neighbors(c) {
            if visited[n.Key()] {
                continue
            }
            owned := ownEdges[simple.EdgeKeyFor(c, n)]
            if !owned && union.OwnedExclusivelyByOther(c, n, player) {
                continue
            }
            cost := 0
            if !owned {
                if !g.grid.TerrainAt(n).Buildable() {
                    continue
                }
                cost = g.grid.BuildCost(n)
            }
            nd := dist[cur] + cost
            if old, seen := dist[n.Key()]; !seen || nd < old {
                dist[n.Key()] = nd
                parent[n.Key()] = c
                coords[n.Key()] = n
            }
        }
    }

    if goal == "" {
        return buildPath{}
    }

    path := []simple.Coord{coords[goal]}
    for {
        p, ok := parent[path[0].Key()]
        if !ok {
            break
        }
        path = append([]simple.Coord{p}, path...)
    }

    r := buildPath{Reached: true}
    affordable := true
    for i := 1; i < len(path); i++ {
        a, b := path[i-1], path[i]
        if ownEdges[simple.EdgeKeyFor(a, b)] {
            continue
        }
        seg := simple.TrackSegment{
            From: a,
            To: b,
            FromTerrain: g.grid.TerrainAt(a),
            ToTerrain: g.grid.TerrainAt(b),
            Cost: g.grid.BuildCost(b),
        }
        r.TotalCost += seg.Cost
        if affordable && r.TurnCost+seg.Cost <= budget {
            r.Segments = append(r.Segments, seg)
            r.TurnCost += seg.Cost
        } else {
            affordable = false
        }
    }
    return r
}

// buildBudget is the per-turn spend cap actually handed to the pathfinder:
// the rules cap, or the bot's money when that is lower.
func buildBudget(money int) int {
    if money < simple.MaxBuildPerTurn {
        return money
    }
    return simple.MaxBuildPerTurn
}
