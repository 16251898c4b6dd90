package bot

import (
    "fmt"
    "sort"
    "local/eurorails/graph"
    "local/eurorails/grid"
    "local/eurorails/simple"
)

// Generator enumerates every candidate action for a snapshot, feasible or
// not.  It never mutates the snapshot and always emits a feasible PassTurn
// so a turn can not deadlock.
type Generator struct {
    grid *grid.Provider
}

func NewGenerator(g *grid.Provider) *Generator {
    return &Generator{grid: g}
}

func (g *Generator) Generate(snap Snapshot, filter KindFilter, mem *simple.BotMemory) []Option {
    union := graph.Build(snap.AllTrack, g.grid.MajorCities(), g.grid.Ferries())

    r := []Option{}
    if filter.Allows(simple.DeliverLoad) {
        r = append(r, g.deliverOptions(snap)...)
    }
    if filter.Allows(simple.DropLoad) {
        r = append(r, g.dropOptions(snap)...)
    }
    if filter.Allows(simple.PickupLoad) {
        r = append(r, g.pickupOptions(snap)...)
    }
    if filter.Allows(simple.MoveTrain) {
        r = append(r, g.moveOptions(snap, union)...)
    }
    if filter.Allows(simple.BuildTrack) {
        r = append(r, g.buildOptions(snap, union, mem)...)
    }
    if filter.Allows(simple.UpgradeTrain) {
        r = append(r, g.upgradeOptions(snap)...)
    }
    if filter.Allows(simple.DiscardHand) {
        r = append(r, g.discardOptions(snap)...)
    }
    r = append(r, passOption("always legal"))
    return r
}

func (g *Generator) cityAt(snap Snapshot) (string, bool) {
    if snap.Bot.Position == nil {
        return "", false
    }
    return g.grid.CityNameAt(*snap.Bot.Position)
}

func (g *Generator) deliverOptions(snap Snapshot) []Option {
    city, ok := g.cityAt(snap)
    if !ok {
        return []Option{infeasible(simple.DeliverLoad, "not at a city")}
    }
    r := []Option{}
    for _, card := range snap.Bot.Cards {
        for _, d := range card.Demands {
            if d.City != city || !snap.carries(d.Load) {
                continue
            }
            r = append(r, Option{
                Kind: simple.DeliverLoad,
                Feasible: true,
                Reason: fmt.Sprintf("deliver %s at %s for %d", d.Load, city, d.Payment),
                Load: d.Load,
                City: city,
                CardId: card.CardId,
                Payment: d.Payment,
            })
        }
    }
    if len(r) == 0 {
        return []Option{infeasible(simple.DeliverLoad,
            fmt.Sprintf("no demand at %s matches carried loads", city))}
    }
    return r
}

// Drop is only for orphaned loads: cargo no held card demands anywhere.
// Cargo whose destination is merely unreachable is kept, the network may
// grow to reach it.
func (g *Generator) dropOptions(snap Snapshot) []Option {
    city, ok := g.cityAt(snap)
    if !ok {
        return []Option{infeasible(simple.DropLoad, "not at a city")}
    }
    r := []Option{}
    for _, l := range snap.Bot.Loads {
        demanded := false
        for _, card := range snap.Bot.Cards {
            for _, d := range card.Demands {
                if d.Load == l {
                    demanded = true
                }
            }
        }
        if demanded {
            continue
        }
        r = append(r, Option{
            Kind: simple.DropLoad,
            Feasible: true,
            Reason: fmt.Sprintf("%s matches no held demand", l),
            Load: l,
            City: city,
        })
    }
    if len(r) == 0 {
        return []Option{infeasible(simple.DropLoad, "no orphaned loads")}
    }
    return r
}

func (g *Generator) pickupOptions(snap Snapshot) []Option {
    city, ok := g.cityAt(snap)
    if !ok {
        return []Option{infeasible(simple.PickupLoad, "not at a city")}
    }
    if snap.capacityLeft() <= 0 {
        return []Option{infeasible(simple.PickupLoad, "train is full")}
    }
    r := []Option{}
    seen := map[simple.Load]bool{}
    for _, l := range snap.CityLoads[city] {
        if seen[l] {
            continue
        }
        seen[l] = true

        // Unmet demand for this load across the hand, less what we
        // already carry of it.
        unmet := 0
        bestCard, bestPayment := 0, 0
        for _, card := range snap.Bot.Cards {
            for _, d := range card.Demands {
                if d.Load != l {
                    continue
                }
                unmet++
                if d.Payment > bestPayment {
                    bestCard, bestPayment = card.CardId, d.Payment
                }
            }
        }
        for _, carried := range snap.Bot.Loads {
            if carried == l {
                unmet--
            }
        }
        if unmet <= 0 {
            continue
        }
        r = append(r, Option{
            Kind: simple.PickupLoad,
            Feasible: true,
            Reason: fmt.Sprintf("pickup %s at %s toward payment %d", l, city, bestPayment),
            Load: l,
            City: city,
            CardId: bestCard,
            Payment: bestPayment,
        })
    }
    if len(r) == 0 {
        return []Option{infeasible(simple.PickupLoad,
            fmt.Sprintf("nothing at %s matches unmet demand", city))}
    }
    return r
}

type moveTarget struct {
    City string
    Payoff int
    CardId int
    Load simple.Load

    // 0 deliver, 1 pickup, 2 approach; lower is tried first.
    Priority int
}

func (g *Generator) moveOptions(snap Snapshot, union *graph.TrackGraph) []Option {
    if snap.Bot.Position == nil {
        return []Option{infeasible(simple.MoveTrain, "train not placed")}
    }
    pos := *snap.Bot.Position
    if !union.HasNode(pos) {
        return []Option{infeasible(simple.MoveTrain, "no track at train position")}
    }

    targets := g.moveTargets(snap)
    if len(targets) == 0 {
        return []Option{infeasible(simple.MoveTrain, "no cities worth moving toward")}
    }

    parent := bfsParents(union, pos)
    speed := snap.moveAllowance()

    r := []Option{}
    taken := map[string]bool{}
    for _, t := range targets {
        tc, ok := g.grid.CityCoord(t.City)
        if !ok {
            continue
        }

        full, reached := pathFromParents(parent, pos, tc)
        frontier := false
        if !reached {
            // Move toward the closest reachable point on the network in
            // the target's direction, so we make progress across turns.
            near, ok := nearestReachable(parent, pos, tc)
            if !ok {
                continue
            }
            full, _ = pathFromParents(parent, pos, near)
            frontier = true
        }

        path, crossesFerry := truncatePath(full, speed, union)
        if len(path) < 2 {
            continue
        }
        dest := path[len(path)-1]
        if taken[dest.Key()] {
            continue
        }
        taken[dest.Key()] = true

        fee := 0
        for i := 1; i < len(path); i++ {
            if union.OwnedExclusivelyByOther(path[i-1], path[i], snap.Bot.PlayerId) {
                fee = simple.TrackUsageFee
                break
            }
        }

        reason := fmt.Sprintf("toward %s (payoff %d)", t.City, t.Payoff)
        if frontier {
            reason = fmt.Sprintf("frontier approach to %s (payoff %d)", t.City, t.Payoff)
        }
        r = append(r, Option{
            Kind: simple.MoveTrain,
            Feasible: snap.Bot.Money >= fee,
            Reason: reason,
            Path: path,
            Mileposts: len(path) - 1,
            Frontier: frontier,
            CrossesFerry: crossesFerry,
            TrackFee: fee,
            City: t.City,
            Load: t.Load,
            CardId: t.CardId,
            Payment: t.Payoff,
        })
    }
    if len(r) == 0 {
        return []Option{infeasible(simple.MoveTrain, "no reachable movement targets")}
    }
    return r
}

// moveTargets collects candidate destination cities in priority order:
// deliverable cargo first (payoff doubled), then pickups if capacity
// remains, then every other demand destination.
func (g *Generator) moveTargets(snap Snapshot) []moveTarget {
    targets := []moveTarget{}
    for _, card := range snap.Bot.Cards {
        for _, d := range card.Demands {
            if snap.carries(d.Load) {
                targets = append(targets, moveTarget{
                    City: d.City,
                    Payoff: 2 * d.Payment,
                    CardId: card.CardId,
                    Load: d.Load,
                    Priority: 0,
                })
            }
        }
    }
    if snap.capacityLeft() > 0 {
        for _, card := range snap.Bot.Cards {
            for _, d := range card.Demands {
                for city, loads := range snap.CityLoads {
                    for _, l := range loads {
                        if l == d.Load {
                            targets = append(targets, moveTarget{
                                City: city,
                                Payoff: d.Payment,
                                CardId: card.CardId,
                                Load: d.Load,
                                Priority: 1,
                            })
                        }
                    }
                }
            }
        }
    }
    for _, card := range snap.Bot.Cards {
        for _, d := range card.Demands {
            targets = append(targets, moveTarget{
                City: d.City,
                Payoff: d.Payment,
                CardId: card.CardId,
                Load: d.Load,
                Priority: 2,
            })
        }
    }

    sort.SliceStable(targets, func(i, j int) bool {
        if targets[i].Priority != targets[j].Priority {
            return targets[i].Priority < targets[j].Priority
        }
        return targets[i].Payoff > targets[j].Payoff
    })

    seen := map[string]bool{}
    r := []moveTarget{}
    for _, t := range targets {
        if seen[t.City] {
            continue
        }
        seen[t.City] = true
        r = append(r, t)
    }
    return r
}

func (g *Generator) upgradeOptions(snap Snapshot) []Option {
    targets := snap.Bot.Train.UpgradeTargets()
    if len(targets) == 0 {
        return []Option{infeasible(simple.UpgradeTrain,
            fmt.Sprintf("%s has no upgrades", snap.Bot.Train))}
    }
    r := []Option{}
    for _, t := range targets {
        r = append(r, Option{
            Kind: simple.UpgradeTrain,
            Feasible: snap.Bot.Money >= simple.UpgradeCost,
            Reason: fmt.Sprintf("upgrade %s to %s", snap.Bot.Train, t),
            ToTrain: t,
        })
    }
    return r
}

func (g *Generator) discardOptions(snap Snapshot) []Option {
    if len(snap.Bot.CardIds) == 0 {
        return []Option{infeasible(simple.DiscardHand, "no cards held")}
    }
    return []Option{Option{
        Kind: simple.DiscardHand,
        Feasible: true,
        Reason: fmt.Sprintf("replace %d cards", len(snap.Bot.CardIds)),
    }}
}

func infeasible(kind simple.ActionKind, reason string) Option {
    return Option{Kind: kind, Reason: reason}
}

// bfsParents explores the whole union graph from pos; there is no depth
// limit because the bot may approach a target over several turns.
func bfsParents(union *graph.TrackGraph, pos simple.Coord) map[string]simple.Coord {
    parent := map[string]simple.Coord{pos.Key(): pos}
    queue := []simple.Coord{pos}
    for len(queue) > 0 {
        cur := queue[0]
        queue = queue[1:]
        for _, n := range union.Neighbors(cur) {
            if _, seen := parent[n.Key()]; seen {
                continue
            }
            parent[n.Key()] = cur
            queue = append(queue, n)
        }
    }
    return parent
}

func pathFromParents(parent map[string]simple.Coord, from, to simple.Coord) ([]simple.Coord, bool) {
    if _, ok := parent[to.Key()]; !ok {
        return nil, false
    }
    path := []simple.Coord{to}
    for path[0].Key() != from.Key() {
        path = append([]simple.Coord{parent[path[0].Key()]}, path...)
    }
    return path, true
}

// nearestReachable picks the explored milepost closest to the target by
// hex distance, ties to the lexically smaller key for determinism.
func nearestReachable(parent map[string]simple.Coord, pos, target simple.Coord) (simple.Coord, bool) {
    bestKey := ""
    var best simple.Coord
    bestDist := -1
    for k := range parent {
        var node simple.Coord
        if _, err := fmt.Sscanf(k, "%d,%d", &node.Row, &node.Col); err != nil {
            continue
        }
        if node.Key() == pos.Key() {
            continue
        }
        d := simple.Distance(node, target)
        if bestDist == -1 || d < bestDist || (d == bestDist && k < bestKey) {
            bestDist = d
            bestKey = k
            best = node
        }
    }
    return best, bestKey != ""
}

// truncatePath cuts the path to the per-turn speed and ends it at the
// first ferry edge; crossing a ferry ends movement for the turn.
func truncatePath(path []simple.Coord, speed int, union *graph.TrackGraph) ([]simple.Coord, bool) {
    if len(path) == 0 {
        return path, false
    }
    end := len(path) - 1
    if end > speed {
        end = speed
    }
    crosses := false
    for i := 1; i <= end; i++ {
        if union.IsFerryEdge(path[i-1], path[i]) {
            end = i
            crosses = true
            break
        }
    }
    return path[:end+1], crosses
}
