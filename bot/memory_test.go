package bot

import (
    "testing"
    "local/eurorails/simple"
)

func TestUpdateMemoryCounters(t *testing.T) {
    snap := testSnapshot()
    snap.Turn = 8

    m := updateMemory(nil, snap, Result{Success: true, Kind: simple.PassTurn}, "")
    if m.ConsecutivePasses != 1 || m.LastKind != simple.PassTurn || m.LastTurn != 8 {
        t.Errorf("first pass: %+v", m)
    }

    m = updateMemory(&m, snap, Result{Success: true, Kind: simple.PassTurn}, "")
    if m.ConsecutivePasses != 2 {
        t.Errorf("second pass should stack, got %d", m.ConsecutivePasses)
    }

    m = updateMemory(&m, snap, Result{Success: true, Kind: simple.DiscardHand}, "")
    if m.ConsecutivePasses != 0 || m.ConsecutiveDiscards != 1 {
        t.Errorf("discard should reset passes and count itself: %+v", m)
    }

    m = updateMemory(&m, snap, Result{Success: true, Kind: simple.MoveTrain}, "")
    if m.ConsecutiveDiscards != 0 {
        t.Errorf("non-discard should reset the discard streak, got %d", m.ConsecutiveDiscards)
    }
}

func TestUpdateMemoryDeliveries(t *testing.T) {
    snap := testSnapshot()
    prev := simple.BotMemory{BuildTarget: "Mill", TurnsOnTarget: 2, Deliveries: 1, Earnings: 10}

    r := Result{
        Success: true,
        Kind: simple.PassTurn,
        Delivered: []LoadEvent{
            {Load: "Coal", City: "Mill", Payment: 25},
            {Load: "Wood", City: "Faro", Payment: 12},
        },
    }
    m := updateMemory(&prev, snap, r, "")

    if m.Deliveries != 3 || m.Earnings != 47 {
        t.Errorf("deliveries should accumulate, got %+v", m)
    }
    if m.BuildTarget != "" || m.TurnsOnTarget != 0 {
        t.Errorf("delivering at the build target should clear it, got %+v", m)
    }
}

func TestUpdateMemoryBuildTarget(t *testing.T) {
    snap := testSnapshot()
    build := Result{Success: true, Kind: simple.BuildTrack}

    m := updateMemory(nil, snap, build, "Mill")
    if m.BuildTarget != "Mill" || m.TurnsOnTarget != 1 {
        t.Errorf("new target: %+v", m)
    }

    m = updateMemory(&m, snap, build, "Mill")
    if m.TurnsOnTarget != 2 {
        t.Errorf("same target should accumulate, got %d", m.TurnsOnTarget)
    }

    m = updateMemory(&m, snap, build, "Faro")
    if m.BuildTarget != "Faro" || m.TurnsOnTarget != 1 {
        t.Errorf("switching target should reset the counter, got %+v", m)
    }

    // A failed build changes nothing about the target.
    m = updateMemory(&m, snap, Result{Success: false, Kind: simple.BuildTrack}, "Mill")
    if m.BuildTarget != "Faro" || m.TurnsOnTarget != 1 {
        t.Errorf("failed build should not touch the target, got %+v", m)
    }
}

// Once a target is stale the chain ranking stops paying the loyalty bonus;
// verify the generator reads the memory that the engine writes.
func TestStaleTargetLosesBonus(t *testing.T) {
    g := NewGenerator(testGrid())
    snap := testSnapshot()
    snap.Bot.Cards = []ResolvedCard{coalCard(7, 20)}
    snap.CityLoads = map[string][]simple.Load{"Mill": {"Coal"}}

    fresh := &simple.BotMemory{BuildTarget: "Mill", TurnsOnTarget: 1}
    stale := &simple.BotMemory{BuildTarget: "Mill", TurnsOnTarget: simple.StaleTargetTurns}

    freshChains := g.demandChains(snap, fresh)
    staleChains := g.demandChains(snap, stale)
    if len(freshChains) == 0 || len(staleChains) == 0 {
        t.Fatalf("expected chains in both cases")
    }
    if !(freshChains[0].Score > staleChains[0].Score) {
        t.Errorf("fresh target should score higher: %f vs %f",
            freshChains[0].Score, staleChains[0].Score)
    }
}
