package bot

import (
    "testing"
    "local/eurorails/grid"
    "local/eurorails/simple"
)

func tc(row, col int) simple.Coord {
    return simple.Coord{Row: row, Col: col}
}

// A small flat board: one major city hub, a pickup town east of it and a
// delivery town west of it.
var testBoard = grid.BoardData{
    Rows: 10,
    Cols: 10,
    SmallCities: map[string]simple.Coord{
        "Mill": tc(4, 7),
        "Faro": tc(4, 1),
    },
    MajorCityCenters: map[string]simple.Coord{
        "Alpha": tc(4, 4),
    },
}

func testGrid() *grid.Provider {
    return grid.NewProvider(testBoard)
}

func coalCard(id, payment int) ResolvedCard {
    return ResolvedCard{
        CardId: id,
        Demands: []simple.Demand{{City: "Faro", Load: "Coal", Payment: payment}},
    }
}

func testSnapshot() Snapshot {
    return Snapshot{
        GameId: 1,
        Status: simple.StatusActive,
        Turn: 3,
        Bot: BotState{
            PlayerId: "b1",
            Money: 50,
            Train: simple.FreightTrain,
        },
        AllTrack: map[string][]simple.TrackSegment{},
        CityLoads: map[string][]simple.Load{},
    }
}

func TestGenerateAlwaysIncludesPass(t *testing.T) {
    g := NewGenerator(testGrid())
    snap := testSnapshot()

    for _, filter := range []KindFilter{
        nil,
        NewKindFilter(simple.MoveTrain),
        NewKindFilter(simple.DeliverLoad, simple.DropLoad, simple.PickupLoad),
    } {
        options := g.Generate(snap, filter, nil)
        found := false
        for _, o := range options {
            if o.Kind == simple.PassTurn && o.Feasible {
                found = true
            }
        }
        if !found {
            t.Errorf("filter %v: no feasible PassTurn among %d options", filter, len(options))
        }
    }
}

func TestGenerateBuildRespectsBudget(t *testing.T) {
    g := NewGenerator(testGrid())
    snap := testSnapshot()
    snap.Bot.Cards = []ResolvedCard{coalCard(7, 20)}
    snap.Bot.CardIds = []int{7}
    snap.CityLoads["Mill"] = []simple.Load{"Coal"}

    options := g.Generate(snap, NewKindFilter(simple.BuildTrack), nil)

    builds := 0
    for _, o := range options {
        if o.Kind != simple.BuildTrack || !o.Feasible {
            continue
        }
        builds++
        if o.Budget != simple.MaxBuildPerTurn {
            t.Errorf("with money 50 the budget should be %d, got %d",
                simple.MaxBuildPerTurn, o.Budget)
        }
        if o.EstimatedCost > o.Budget {
            t.Errorf("turn cost %d exceeds budget %d", o.EstimatedCost, o.Budget)
        }
        if len(o.Segments) == 0 {
            t.Errorf("feasible build with no segments")
        }
        if o.TargetCity != "Mill" {
            t.Errorf("first build should chase the pickup city, got %q", o.TargetCity)
        }
        // No track yet: the first segment must leave from a hub outpost.
        if !testGrid().IsMajorCityOutpost(o.Segments[0].From) {
            t.Errorf("first build should start at an outpost, got %s", o.Segments[0].From)
        }
    }
    if builds == 0 {
        t.Fatalf("expected at least one feasible build option")
    }
}

func TestGenerateBuildBudgetIsMoneyWhenPoor(t *testing.T) {
    g := NewGenerator(testGrid())
    snap := testSnapshot()
    snap.Bot.Money = 3
    snap.Bot.Cards = []ResolvedCard{coalCard(7, 20)}
    snap.CityLoads["Mill"] = []simple.Load{"Coal"}

    options := g.Generate(snap, NewKindFilter(simple.BuildTrack), nil)
    for _, o := range options {
        if o.Kind != simple.BuildTrack || !o.Feasible {
            continue
        }
        if o.Budget != 3 {
            t.Errorf("with money 3 the budget should be 3, got %d", o.Budget)
        }
        if o.EstimatedCost > 3 {
            t.Errorf("turn cost %d exceeds money 3", o.EstimatedCost)
        }
    }
}

func TestGeneratePickup(t *testing.T) {
    g := NewGenerator(testGrid())
    pos := tc(4, 7)

    snap := testSnapshot()
    snap.Bot.Position = &pos
    snap.Bot.Cards = []ResolvedCard{coalCard(7, 20)}
    snap.CityLoads["Mill"] = []simple.Load{"Coal", "Wood"}

    options := g.Generate(snap, NewKindFilter(simple.PickupLoad), nil)
    pickups := []Option{}
    for _, o := range options {
        if o.Kind == simple.PickupLoad && o.Feasible {
            pickups = append(pickups, o)
        }
    }
    if len(pickups) != 1 {
        t.Fatalf("expected exactly one pickup (Coal), got %d", len(pickups))
    }
    if pickups[0].Load != "Coal" || pickups[0].City != "Mill" || pickups[0].Payment != 20 {
        t.Errorf("unexpected pickup %+v", pickups[0])
    }

    // Already carrying the only demanded Coal: demand is met, no pickup.
    snap.Bot.Loads = []simple.Load{"Coal"}
    options = g.Generate(snap, NewKindFilter(simple.PickupLoad), nil)
    for _, o := range options {
        if o.Kind == simple.PickupLoad && o.Feasible {
            t.Errorf("met demand should not generate a pickup: %+v", o)
        }
    }
}

func TestGenerateDropOnlyOrphans(t *testing.T) {
    g := NewGenerator(testGrid())
    pos := tc(4, 7)

    snap := testSnapshot()
    snap.Bot.Position = &pos
    snap.Bot.Cards = []ResolvedCard{coalCard(7, 20)}
    snap.Bot.Loads = []simple.Load{"Coal", "Gold"}

    options := g.Generate(snap, NewKindFilter(simple.DropLoad), nil)
    drops := []Option{}
    for _, o := range options {
        if o.Kind == simple.DropLoad && o.Feasible {
            drops = append(drops, o)
        }
    }
    if len(drops) != 1 {
        t.Fatalf("expected one drop (Gold is orphaned, Coal is demanded), got %d", len(drops))
    }
    if drops[0].Load != "Gold" {
        t.Errorf("expected to drop Gold, got %s", drops[0].Load)
    }
}

func TestGenerateDeliver(t *testing.T) {
    g := NewGenerator(testGrid())
    pos := tc(4, 1)

    snap := testSnapshot()
    snap.Bot.Position = &pos
    snap.Bot.Cards = []ResolvedCard{coalCard(7, 20)}
    snap.Bot.CardIds = []int{7}
    snap.Bot.Loads = []simple.Load{"Coal"}

    options := g.Generate(snap, NewKindFilter(simple.DeliverLoad), nil)
    delivers := []Option{}
    for _, o := range options {
        if o.Kind == simple.DeliverLoad && o.Feasible {
            delivers = append(delivers, o)
        }
    }
    if len(delivers) != 1 {
        t.Fatalf("expected one delivery at Faro, got %d", len(delivers))
    }
    d := delivers[0]
    if d.City != "Faro" || d.Load != "Coal" || d.CardId != 7 || d.Payment != 20 {
        t.Errorf("unexpected delivery %+v", d)
    }
}

func TestGenerateMove(t *testing.T) {
    g := NewGenerator(testGrid())
    pos := tc(4, 5)

    snap := testSnapshot()
    snap.Bot.Position = &pos
    snap.Bot.Cards = []ResolvedCard{coalCard(7, 20)}
    snap.Bot.Track = []simple.TrackSegment{
        {From: tc(4, 5), To: tc(4, 6)},
        {From: tc(4, 6), To: tc(4, 7)},
    }
    snap.AllTrack["b1"] = snap.Bot.Track
    snap.CityLoads["Mill"] = []simple.Load{"Coal"}

    options := g.Generate(snap, NewKindFilter(simple.MoveTrain), nil)

    var toMill *Option
    for i, o := range options {
        if o.Kind == simple.MoveTrain && o.Feasible && o.City == "Mill" {
            toMill = &options[i]
        }
    }
    if toMill == nil {
        t.Fatalf("expected a move toward the pickup city Mill")
    }
    if toMill.Mileposts != 2 {
        t.Errorf("Mill is 2 mileposts away, got %d", toMill.Mileposts)
    }
    if toMill.Frontier {
        t.Errorf("Mill is on the network, move should not be a frontier approach")
    }
    if toMill.TrackFee != 0 {
        t.Errorf("own track should cost no fee, got %d", toMill.TrackFee)
    }
    last := toMill.Path[len(toMill.Path)-1]
    if last != tc(4, 7) {
        t.Errorf("move should end at Mill, got %s", last)
    }
}

func TestGenerateMoveChargesOpponentFee(t *testing.T) {
    g := NewGenerator(testGrid())
    pos := tc(4, 5)

    snap := testSnapshot()
    snap.Bot.Position = &pos
    snap.Bot.Cards = []ResolvedCard{coalCard(7, 20)}
    snap.AllTrack["b2"] = []simple.TrackSegment{
        {From: tc(4, 5), To: tc(4, 6)},
        {From: tc(4, 6), To: tc(4, 7)},
    }
    snap.CityLoads["Mill"] = []simple.Load{"Coal"}

    options := g.Generate(snap, NewKindFilter(simple.MoveTrain), nil)
    for _, o := range options {
        if o.Kind == simple.MoveTrain && o.City == "Mill" {
            if o.TrackFee != simple.TrackUsageFee {
                t.Errorf("opponent track should cost the fee %d, got %d",
                    simple.TrackUsageFee, o.TrackFee)
            }
            return
        }
    }
    t.Fatalf("expected a move toward Mill over opponent track")
}
