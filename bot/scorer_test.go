package bot

import (
    "math"
    "testing"
    "local/eurorails/simple"
)

func TestScoreOrdering(t *testing.T) {
    s := NewScorer(testGrid())
    snap := testSnapshot()
    snap.Bot.Cards = []ResolvedCard{coalCard(7, 20)}

    options := []Option{
        {Kind: simple.MoveTrain, Feasible: true, Payment: 30, Mileposts: 9},
        {Kind: simple.BuildTrack, Feasible: true, ChainScore: 10,
            Segments: []simple.TrackSegment{{}, {}}},
        {Kind: simple.DeliverLoad, Feasible: true, Payment: 25},
        {Kind: simple.PickupLoad, Feasible: true, Payment: 20, Load: "Coal"},
        {Kind: simple.BuildTrack, Feasible: false, Reason: "broke"},
        passOption("always legal"),
    }

    scored := s.Score(options, snap, nil, nil)

    if scored[0].Kind != simple.DeliverLoad {
        t.Fatalf("delivery should outrank everything, got %s first", scored[0].Kind)
    }
    want := 50.0 + 2*25
    if scored[0].Score != want {
        t.Errorf("delivery score = %f, want %f", scored[0].Score, want)
    }
    last := scored[len(scored)-1]
    if !math.IsInf(last.Score, -1) || last.Feasible {
        t.Errorf("infeasible option should sort last at -Inf, got %+v", last)
    }
    for _, o := range scored {
        if o.Kind == simple.PassTurn && o.Score != 0 {
            t.Errorf("pass must score exactly 0, got %f", o.Score)
        }
    }
}

func TestScorePickupUnreachableDestination(t *testing.T) {
    s := NewScorer(testGrid())

    // Train on its own track at the hub; Faro is not connected, so a
    // Coal pickup (destination Faro) is scored near zero but stays.
    pos := tc(4, 5)
    snap := testSnapshot()
    snap.Bot.Position = &pos
    snap.Bot.Cards = []ResolvedCard{coalCard(7, 20)}
    snap.Bot.Track = []simple.TrackSegment{{From: tc(4, 5), To: tc(4, 6)}}

    options := s.Score([]Option{
        {Kind: simple.PickupLoad, Feasible: true, Payment: 20, Load: "Coal"},
    }, snap, nil, nil)

    got := options[0].Score
    want := 20 * 0.6 * 0.02
    if math.Abs(got-want) > 1e-9 {
        t.Errorf("unreachable-destination pickup score = %f, want %f", got, want)
    }
    if got <= 0 {
        t.Errorf("pickup must be penalized, not excluded")
    }
}

func TestScorePickupZeroWhenCarryingDeadCargo(t *testing.T) {
    s := NewScorer(testGrid())

    pos := tc(4, 5)
    snap := testSnapshot()
    snap.Bot.Position = &pos
    snap.Bot.Cards = []ResolvedCard{coalCard(7, 20)}
    snap.Bot.Track = []simple.TrackSegment{{From: tc(4, 5), To: tc(4, 6)}}
    snap.Bot.Loads = []simple.Load{"Coal"}

    options := s.Score([]Option{
        {Kind: simple.PickupLoad, Feasible: true, Payment: 20, Load: "Coal"},
    }, snap, nil, nil)

    if options[0].Score != 0 {
        t.Errorf("carrying cargo with unreachable destination should zero further pickups, got %f",
            options[0].Score)
    }
}

func TestScoreMove(t *testing.T) {
    s := NewScorer(testGrid())
    snap := testSnapshot()

    cases := []struct {
        name string
        opt Option
        want float64
    }{
        {"one turn away", Option{Kind: simple.MoveTrain, Feasible: true,
            Payment: 30, Mileposts: 9}, 15},
        {"frontier discount", Option{Kind: simple.MoveTrain, Feasible: true,
            Payment: 30, Mileposts: 9, Frontier: true}, 7.5},
        {"fee subtracted", Option{Kind: simple.MoveTrain, Feasible: true,
            Payment: 30, Mileposts: 9, TrackFee: 4}, 11},
        {"never negative", Option{Kind: simple.MoveTrain, Feasible: true,
            Payment: 1, Mileposts: 9, TrackFee: 4}, 0},
    }
    for _, c := range cases {
        scored := s.Score([]Option{c.opt}, snap, nil, nil)
        if math.Abs(scored[0].Score-c.want) > 1e-9 {
            t.Errorf("%s: score = %f, want %f", c.name, scored[0].Score, c.want)
        }
    }
}

func TestScoreUpgradePhaseAware(t *testing.T) {
    s := NewScorer(testGrid())
    snap := testSnapshot()
    opt := []Option{{Kind: simple.UpgradeTrain, Feasible: true,
        ToTrain: simple.FastFreightTrain}}

    early := s.Score(append([]Option{}, opt...), snap, nil, nil)
    if early[0].Score != 0.5 {
        t.Errorf("upgrade before any deliveries should score UpgradeEarly, got %f",
            early[0].Score)
    }

    snap.Bot.ConnectedMajorCities = 3
    mem := &simple.BotMemory{Deliveries: 3}
    late := s.Score(append([]Option{}, opt...), snap, nil, mem)
    if late[0].Score != 12 {
        t.Errorf("established bot should score UpgradeBase, got %f", late[0].Score)
    }
}

func TestScoreDiscard(t *testing.T) {
    s := NewScorer(testGrid())

    // All demand cities unreachable: urgent.
    snap := testSnapshot()
    snap.Bot.Cards = []ResolvedCard{coalCard(7, 20)}
    opt := []Option{{Kind: simple.DiscardHand, Feasible: true}}

    urgent := s.Score(append([]Option{}, opt...), snap, nil, nil)
    if urgent[0].Score != 40 {
        t.Errorf("dead hand should score DiscardUrgent, got %f", urgent[0].Score)
    }

    // The consecutive-discard cap halves the base so the bot cannot loop.
    mem := &simple.BotMemory{ConsecutiveDiscards: 2}
    capped := s.Score(append([]Option{}, opt...), snap, nil, mem)
    if capped[0].Score != 1 {
        t.Errorf("capped discard should score DiscardBase/2, got %f", capped[0].Score)
    }
}
