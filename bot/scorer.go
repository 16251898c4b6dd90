package bot

import (
    "fmt"
    "math"
    "sort"
    "local/eurorails/graph"
    "local/eurorails/grid"
    "local/eurorails/simple"
)

// Scorer assigns desirability to every option and sorts descending.
// Infeasible options score -Inf: they always sort last but stay present
// for audit.  Scoring never filters.
type Scorer struct {
    grid *grid.Provider
}

func NewScorer(g *grid.Provider) *Scorer {
    return &Scorer{grid: g}
}

func (s *Scorer) Score(options []Option, snap Snapshot, cfg *simple.BotConfig, mem *simple.BotMemory) []Option {
    w := weightsFor(cfg)
    reach := s.reachableCities(snap)

    for i := range options {
        if !options[i].Feasible {
            options[i].Score = math.Inf(-1)
            continue
        }
        switch options[i].Kind {
        case simple.DeliverLoad:
            options[i].Score = w.DeliverBase + w.DeliverPayment*float64(options[i].Payment)
        case simple.MoveTrain:
            options[i].Score = s.scoreMove(options[i], snap, w)
        case simple.BuildTrack:
            options[i].Score = options[i].ChainScore*w.BuildChain +
                float64(len(options[i].Segments))*w.BuildSegment
        case simple.PickupLoad:
            options[i].Score = s.scorePickup(options[i], snap, w, reach)
        case simple.DropLoad:
            options[i].Score = 1
        case simple.UpgradeTrain:
            options[i].Score = s.scoreUpgrade(snap, w, mem)
        case simple.DiscardHand:
            options[i].Score = s.scoreDiscard(snap, w, mem, reach)
        case simple.PassTurn:
            options[i].Score = 0
        }
    }

    sort.SliceStable(options, func(i, j int) bool {
        return options[i].Score > options[j].Score
    })
    return options
}

// Movement pays off less the more turns away the goal is, and frontier
// approaches (target not yet on the network) are discounted further.
func (s *Scorer) scoreMove(o Option, snap Snapshot, w Weights) float64 {
    speed := snap.moveAllowance()
    if speed <= 0 {
        return 0
    }
    turnsAway := float64(o.Mileposts) / float64(speed)
    score := float64(o.Payment) * w.MovePayoff / (1 + turnsAway)
    if o.Frontier {
        score *= w.FrontierDiscount
    }
    score -= float64(o.TrackFee)
    if score < 0 {
        score = 0
    }
    return score
}

// Pickup is scored near zero, never excluded, when the matching delivery
// city is not yet on the bot's network; and zero when the train already
// carries an unreachable load, so it can't fill up with dead cargo.
func (s *Scorer) scorePickup(o Option, snap Snapshot, w Weights, reach map[string]bool) float64 {
    if s.carriesUnreachable(snap, reach) {
        return 0
    }
    score := float64(o.Payment) * w.PickupPayment
    dest := s.bestDestinationFor(snap, o.Load)
    if dest != "" && !reach[dest] {
        score *= w.PickupUnreachable
    }
    return score
}

func (s *Scorer) scoreUpgrade(snap Snapshot, w Weights, mem *simple.BotMemory) float64 {
    deliveries := 0
    if mem != nil {
        deliveries = mem.Deliveries
    }
    if deliveries < minDeliveriesForUpgrade ||
        snap.Bot.ConnectedMajorCities < minCitiesForUpgrade {
        return w.UpgradeEarly
    }
    return w.UpgradeBase
}

// Discard urgency escalates when no held demand has a reachable
// destination, capped by the consecutive-discard counter so the bot can't
// loop on discarding forever.
func (s *Scorer) scoreDiscard(snap Snapshot, w Weights, mem *simple.BotMemory, reach map[string]bool) float64 {
    if mem != nil && mem.ConsecutiveDiscards >= maxConsecutiveDiscards {
        return w.DiscardBase / 2
    }
    anyReachable := false
    for _, card := range snap.Bot.Cards {
        for _, d := range card.Demands {
            if reach[d.City] {
                anyReachable = true
            }
        }
    }
    if !anyReachable && len(snap.Bot.Cards) > 0 {
        return w.DiscardUrgent
    }
    return w.DiscardBase
}

// reachableCities is the set of city names on the component of the bot's
// own network (plus public edges) containing its train.
func (s *Scorer) reachableCities(snap Snapshot) map[string]bool {
    r := map[string]bool{}
    if snap.Bot.Position == nil {
        return r
    }
    own := graph.Build(
        map[string][]simple.TrackSegment{snap.Bot.PlayerId: snap.Bot.Track},
        s.grid.MajorCities(), s.grid.Ferries())
    if !own.HasNode(*snap.Bot.Position) {
        return r
    }
    parent := bfsParents(own, *snap.Bot.Position)
    for k := range parent {
        var c simple.Coord
        if _, err := fmt.Sscanf(k, "%d,%d", &c.Row, &c.Col); err != nil {
            continue
        }
        if name, ok := s.grid.CityNameAt(c); ok {
            r[name] = true
        }
    }
    return r
}

// bestDestinationFor is the highest-paying demanded city for a load, or
// "" when nothing demands it.
func (s *Scorer) bestDestinationFor(snap Snapshot, load simple.Load) string {
    best := ""
    bestPay := -1
    for _, card := range snap.Bot.Cards {
        for _, d := range card.Demands {
            if d.Load == load && d.Payment > bestPay {
                best, bestPay = d.City, d.Payment
            }
        }
    }
    return best
}

func (s *Scorer) carriesUnreachable(snap Snapshot, reach map[string]bool) bool {
    for _, l := range snap.Bot.Loads {
        dest := s.bestDestinationFor(snap, l)
        if dest != "" && !reach[dest] {
            return true
        }
    }
    return false
}
