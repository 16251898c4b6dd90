package bot

import (
    "fmt"
    "local/eurorails/graph"
    "local/eurorails/grid"
    "local/eurorails/simple"
)

// Validator re-derives legality for one chosen option immediately before
// execution.  It deliberately repeats generator feasibility checks: it is
// the last line of defense against a stale or manipulated snapshot between
// generation and execution.  It never errors, only answers.
type Validator struct {
    grid *grid.Provider
}

func NewValidator(g *grid.Provider) *Validator {
    return &Validator{grid: g}
}

func (v *Validator) Validate(opt Option, snap Snapshot) ValidationResult {
    switch opt.Kind {
    case simple.PassTurn:
        return valid()
    case simple.BuildTrack:
        return v.validateBuild(opt, snap)
    case simple.MoveTrain:
        return v.validateMove(opt, snap)
    case simple.PickupLoad:
        return v.validatePickup(opt, snap)
    case simple.DeliverLoad:
        return v.validateDeliver(opt, snap)
    case simple.DropLoad:
        return v.validateDrop(opt, snap)
    case simple.UpgradeTrain:
        return v.validateUpgrade(opt, snap)
    case simple.DiscardHand:
        if len(snap.Bot.CardIds) == 0 {
            return invalid("no cards to discard")
        }
        return valid()
    }
    return invalid(fmt.Sprintf("unknown action kind %d", opt.Kind))
}

func (v *Validator) validateBuild(opt Option, snap Snapshot) ValidationResult {
    if len(opt.Segments) == 0 {
        return invalid("no segments to build")
    }

    cost := 0
    for i, s := range opt.Segments {
        if !adjacent(v.grid, s.From, s.To) {
            return invalid(fmt.Sprintf("segment %d endpoints are not neighbors", i))
        }
        if !s.ToTerrain.Buildable() {
            return invalid(fmt.Sprintf("segment %d enters unbuildable terrain", i))
        }
        if i > 0 && opt.Segments[i-1].To != s.From {
            return invalid(fmt.Sprintf("segment %d breaks the chain", i))
        }
        cost += s.Cost
    }

    budget := buildBudget(snap.Bot.Money)
    if cost > budget {
        return invalid(fmt.Sprintf("cost %d exceeds per-turn budget %d", cost, budget))
    }
    if cost > snap.Bot.Money {
        return invalid(fmt.Sprintf("cost %d exceeds money %d", cost, snap.Bot.Money))
    }

    // No overlap with anyone's existing edges, own included.
    existing := map[string]bool{}
    for _, segments := range snap.AllTrack {
        for _, s := range segments {
            existing[s.EdgeKey()] = true
        }
    }
    for i, s := range opt.Segments {
        if existing[s.EdgeKey()] {
            return invalid(fmt.Sprintf("segment %d overlaps existing track", i))
        }
    }

    // A first build must leave from a major city outpost.
    if len(snap.Bot.Track) == 0 {
        start := opt.Segments[0].From
        if !v.grid.IsMajorCityOutpost(start) {
            return invalid(fmt.Sprintf("first track must start at a major city outpost, not %s", start))
        }
    } else {
        connected := false
        for _, s := range snap.Bot.Track {
            if s.From == opt.Segments[0].From || s.To == opt.Segments[0].From {
                connected = true
                break
            }
        }
        if !connected {
            return invalid("build does not connect to existing track")
        }
    }
    return valid()
}

func (v *Validator) validateMove(opt Option, snap Snapshot) ValidationResult {
    if snap.Bot.Position == nil {
        return invalid("train not placed")
    }
    if len(opt.Path) < 2 {
        return invalid("path too short")
    }
    if opt.Path[0] != *snap.Bot.Position {
        return invalid("path does not start at the train")
    }
    if opt.Mileposts != len(opt.Path)-1 {
        return invalid("milepost count does not match path")
    }
    if opt.Mileposts > snap.moveAllowance() {
        return invalid(fmt.Sprintf("%d mileposts exceeds speed %d",
            opt.Mileposts, snap.moveAllowance()))
    }
    if opt.TrackFee > snap.Bot.Money {
        return invalid("can not afford track usage fee")
    }
    union := graph.Build(snap.AllTrack, v.grid.MajorCities(), v.grid.Ferries())
    for i := 1; i < len(opt.Path); i++ {
        if !union.HasEdge(opt.Path[i-1], opt.Path[i]) {
            return invalid(fmt.Sprintf("no track between %s and %s",
                opt.Path[i-1], opt.Path[i]))
        }
        // Crossing a ferry ends movement for the turn.
        if union.IsFerryEdge(opt.Path[i-1], opt.Path[i]) && i != len(opt.Path)-1 {
            return invalid(fmt.Sprintf("path continues past the ferry at %s",
                opt.Path[i]))
        }
    }
    return valid()
}

func (v *Validator) validatePickup(opt Option, snap Snapshot) ValidationResult {
    if r := v.atCity(opt.City, snap); !r.Valid {
        return r
    }
    if snap.capacityLeft() <= 0 {
        return invalid("train is full")
    }
    if !hasLoad(snap.CityLoads[opt.City], opt.Load) {
        return invalid(fmt.Sprintf("%s not available at %s", opt.Load, opt.City))
    }
    for _, card := range snap.Bot.Cards {
        for _, d := range card.Demands {
            if d.Load == opt.Load {
                return valid()
            }
        }
    }
    return invalid(fmt.Sprintf("no held demand wants %s", opt.Load))
}

func (v *Validator) validateDeliver(opt Option, snap Snapshot) ValidationResult {
    if r := v.atCity(opt.City, snap); !r.Valid {
        return r
    }
    if !snap.carries(opt.Load) {
        return invalid(fmt.Sprintf("not carrying %s", opt.Load))
    }
    if !snap.holdsCard(opt.CardId) {
        return invalid(fmt.Sprintf("card %d not held", opt.CardId))
    }
    for _, card := range snap.Bot.Cards {
        if card.CardId != opt.CardId {
            continue
        }
        for _, d := range card.Demands {
            if d.City == opt.City && d.Load == opt.Load {
                return valid()
            }
        }
    }
    return invalid(fmt.Sprintf("card %d has no demand for %s at %s",
        opt.CardId, opt.Load, opt.City))
}

func (v *Validator) validateDrop(opt Option, snap Snapshot) ValidationResult {
    if r := v.atCity(opt.City, snap); !r.Valid {
        return r
    }
    if !snap.carries(opt.Load) {
        return invalid(fmt.Sprintf("not carrying %s", opt.Load))
    }
    return valid()
}

func (v *Validator) validateUpgrade(opt Option, snap Snapshot) ValidationResult {
    if snap.Bot.Money < simple.UpgradeCost {
        return invalid(fmt.Sprintf("upgrade costs %d, have %d",
            simple.UpgradeCost, snap.Bot.Money))
    }
    if !snap.Bot.Train.CanUpgradeTo(opt.ToTrain) {
        return invalid(fmt.Sprintf("%s can not become %s", snap.Bot.Train, opt.ToTrain))
    }
    return valid()
}

func (v *Validator) atCity(city string, snap Snapshot) ValidationResult {
    if snap.Bot.Position == nil {
        return invalid("train not placed")
    }
    name, ok := v.grid.CityNameAt(*snap.Bot.Position)
    if !ok || name != city {
        return invalid(fmt.Sprintf("train is not at %s", city))
    }
    return valid()
}

func adjacent(g *grid.Provider, a, b simple.Coord) bool {
    for _, n := range g.Neighbors(a) {
        if n == b {
            return true
        }
    }
    return false
}

func valid() ValidationResult {
    return ValidationResult{Valid: true}
}

func invalid(reason string) ValidationResult {
    return ValidationResult{Reason: reason}
}
