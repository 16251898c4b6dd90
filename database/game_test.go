package database

import (
    "testing"
    "local/eurorails/simple"
)

func TestPlayerPosition(t *testing.T) {
    p := Player{}
    if p.Position() != nil {
        t.Errorf("unplaced train should have nil position")
    }
    row, col := 4, 7
    p.Row, p.Col = &row, &col
    pos := p.Position()
    if pos == nil || pos.Row != 4 || pos.Col != 7 {
        t.Errorf("Position() = %v, want (4,7)", pos)
    }
}

func TestPlayerTrainType(t *testing.T) {
    cases := []struct {
        raw string
        want simple.TrainType
    }{
        {"Freight", simple.FreightTrain},
        {"Superfreight", simple.SuperfreightTrain},
        {"", simple.FreightTrain},
        {"banana", simple.FreightTrain},
    }
    for _, c := range cases {
        p := Player{Train: c.raw}
        if got := p.TrainType(); got != c.want {
            t.Errorf("TrainType(%q) = %s, want %s", c.raw, got, c.want)
        }
    }
}

func TestPlayerLoadList(t *testing.T) {
    cases := []struct {
        raw string
        want int
    }{
        {"", 0},
        {"Coal", 1},
        {"Coal,Wood", 2},
        {"Coal,,Wood", 2},
    }
    for _, c := range cases {
        p := Player{Loads: c.raw}
        if got := p.LoadList(); len(got) != c.want {
            t.Errorf("LoadList(%q) = %v, want %d loads", c.raw, got, c.want)
        }
    }
    if joinLoads([]simple.Load{"Coal", "Wood"}) != "Coal,Wood" {
        t.Errorf("joinLoads should round-trip the column format")
    }
}

func TestPlayerHandIds(t *testing.T) {
    p := Player{Hand: "3,17,,x,5"}
    got := p.HandIds()
    want := []int{3, 17, 5}
    if len(got) != len(want) {
        t.Fatalf("HandIds = %v, want %v", got, want)
    }
    for i := range want {
        if got[i] != want[i] {
            t.Errorf("HandIds[%d] = %d, want %d", i, got[i], want[i])
        }
    }
    if joinInts(want) != "3,17,5" {
        t.Errorf("joinInts should round-trip the column format")
    }
}

func TestPlayerBotConfig(t *testing.T) {
    p := Player{}
    if p.BotConfig() != nil {
        t.Errorf("human player should have no bot config")
    }
    arch := "aggressive"
    skill := 3
    p.Archetype, p.Skill = &arch, &skill
    cfg := p.BotConfig()
    if cfg == nil || cfg.Archetype != simple.AggressiveBot || cfg.Skill != 3 {
        t.Errorf("BotConfig = %+v", cfg)
    }
}
