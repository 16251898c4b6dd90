package grid

import (
    "testing"
    "local/eurorails/simple"
)

func TestTerrainAt(t *testing.T) {
    p := NewDefaultProvider()

    cases := []struct {
        name string
        at simple.Coord
        want simple.TerrainType
    }{
        {"open ground", c(20, 20), simple.ClearTerrain},
        {"pyrenees", c(28, 10), simple.MountainTerrain},
        {"alps", c(24, 24), simple.AlpineTerrain},
        {"the channel", c(14, 8), simple.WaterTerrain},
        {"bordeaux", c(26, 9), simple.SmallCityTerrain},
        {"lyon", c(24, 18), simple.MediumCityTerrain},
        {"madrid center", c(31, 9), simple.MajorCityTerrain},
        {"madrid outpost", c(31, 10), simple.MajorCityOutpostTerrain},
        {"out of bounds", c(-1, 0), simple.NoneTerrain},
    }
    for _, tc := range cases {
        if got := p.TerrainAt(tc.at); got != tc.want {
            t.Errorf("%s: TerrainAt(%s) = %s, want %s", tc.name, tc.at, got, tc.want)
        }
    }
}

func TestBuildCost(t *testing.T) {
    p := NewDefaultProvider()

    cases := []struct {
        name string
        at simple.Coord
        want int
    }{
        {"clear", c(20, 20), 1},
        {"mountain", c(28, 10), 2},
        {"alpine", c(24, 24), 5},
        {"small city", c(26, 9), 3},
        {"outpost", c(31, 10), 5},
        {"water unbuildable", c(14, 8), 0},
        {"center unbuildable", c(31, 9), 0},
    }
    for _, tc := range cases {
        if got := p.BuildCost(tc.at); got != tc.want {
            t.Errorf("%s: BuildCost(%s) = %d, want %d", tc.name, tc.at, got, tc.want)
        }
    }
}

// Offset rows: odd rows shift right, so the diagonal neighbors differ by
// parity.  Water neighbors are excluded entirely.
func TestNeighbors(t *testing.T) {
    p := NewDefaultProvider()

    even := p.Neighbors(c(20, 20))
    wantEven := []simple.Coord{
        c(20, 19), c(20, 21), c(19, 19), c(19, 20), c(21, 19), c(21, 20),
    }
    assertCoordSet(t, "even row", even, wantEven)

    odd := p.Neighbors(c(21, 20))
    wantOdd := []simple.Coord{
        c(21, 19), c(21, 21), c(20, 20), c(20, 21), c(22, 20), c(22, 21),
    }
    assertCoordSet(t, "odd row", odd, wantOdd)

    // (13,8) borders the channel; (14,8) and (14,9) are water.
    for _, n := range p.Neighbors(c(13, 8)) {
        if p.TerrainAt(n) == simple.WaterTerrain {
            t.Errorf("neighbors should never include water, got %s", n)
        }
    }
}

func TestCityLookups(t *testing.T) {
    p := NewDefaultProvider()

    name, ok := p.CityNameAt(c(26, 9))
    if !ok || name != "Bordeaux" {
        t.Errorf("CityNameAt(26,9) = %q, %t; want Bordeaux", name, ok)
    }
    if _, ok := p.CityNameAt(c(20, 20)); ok {
        t.Errorf("open ground should have no city name")
    }
    coord, ok := p.CityCoord("Paris")
    if !ok || coord != c(18, 14) {
        t.Errorf("CityCoord(Paris) = %s, %t; want (18,14)", coord, ok)
    }
    if _, ok := p.CityCoord("Atlantis"); ok {
        t.Errorf("unknown city should not resolve")
    }
}

func TestMajorCities(t *testing.T) {
    p := NewDefaultProvider()

    majors := p.MajorCities()
    if len(majors) != 8 {
        t.Fatalf("expected 8 major cities, got %d", len(majors))
    }
    for _, m := range majors {
        if !p.IsMajorCityCenter(m.Center) {
            t.Errorf("%s center %s not marked as center", m.Name, m.Center)
        }
        if len(m.Outposts) == 0 {
            t.Errorf("%s has no outposts", m.Name)
        }
        for _, o := range m.Outposts {
            if p.TerrainAt(o) == simple.WaterTerrain {
                t.Errorf("%s outpost %s is water", m.Name, o)
            }
        }
    }
}

func assertCoordSet(t *testing.T, name string, got, want []simple.Coord) {
    t.Helper()
    if len(got) != len(want) {
        t.Errorf("%s: got %d neighbors %v, want %d", name, len(got), got, len(want))
        return
    }
    set := map[string]bool{}
    for _, g := range got {
        set[g.Key()] = true
    }
    for _, w := range want {
        if !set[w.Key()] {
            t.Errorf("%s: missing neighbor %s in %v", name, w, got)
        }
    }
}
