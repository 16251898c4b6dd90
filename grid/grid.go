package grid

import (
    "sync"
    "local/eurorails/simple"
)

// Provider answers topology questions: terrain, build cost, city lookup,
// hex neighbors, major city groupings, ferries.  Lookups are memoized in an
// explicit cache the owner can Reset, not in package globals.
type Provider struct {
    data BoardData

    mux sync.Mutex
    terrain map[string]simple.TerrainType
    cityByCoord map[string]string
    coordByCity map[string]simple.Coord
    majors []simple.MajorCity
}

type BoardData struct {
    Rows int
    Cols int

    // Everything in bounds is Clear unless listed below.
    Mountains []simple.Coord
    Alpine []simple.Coord
    Water []simple.Coord

    SmallCities map[string]simple.Coord
    MediumCities map[string]simple.Coord

    // Outposts are derived: the six hex neighbors of each center.
    MajorCityCenters map[string]simple.Coord

    Ferries []simple.Ferry
}

func NewProvider(data BoardData) *Provider {
    return &Provider{data: data}
}

func NewDefaultProvider() *Provider {
    return NewProvider(DefaultBoard)
}

// Reset drops every memoized table.  Composers call this when board data
// is swapped under them (tests, hot deploy).
func (p *Provider) Reset() {
    p.mux.Lock()
    defer p.mux.Unlock()
    p.terrain = nil
    p.cityByCoord = nil
    p.coordByCity = nil
    p.majors = nil
}

func (p *Provider) InBounds(c simple.Coord) bool {
    return c.Row >= 0 && c.Row < p.data.Rows && c.Col >= 0 && c.Col < p.data.Cols
}

func (p *Provider) TerrainAt(c simple.Coord) simple.TerrainType {
    if !p.InBounds(c) {
        return simple.NoneTerrain
    }
    if t, ok := p.terrainTable()[c.Key()]; ok {
        return t
    }
    return simple.ClearTerrain
}

// BuildCost of entering this milepost, 0 when unbuildable.
func (p *Provider) BuildCost(c simple.Coord) int {
    return simple.TerrainBuildCosts[p.TerrainAt(c)]
}

func (p *Provider) CityNameAt(c simple.Coord) (string, bool) {
    name, ok := p.cityTable()[c.Key()]
    return name, ok
}

// CityCoord is the milepost a train must occupy to trade at the city; for
// major cities that is the center.
func (p *Provider) CityCoord(name string) (simple.Coord, bool) {
    c, ok := p.coordTable()[name]
    return c, ok
}

func (p *Provider) MajorCities() []simple.MajorCity {
    p.mux.Lock()
    defer p.mux.Unlock()
    if p.majors == nil {
        for name, center := range p.data.MajorCityCenters {
            p.majors = append(p.majors, simple.MajorCity{
                Name: name,
                Center: center,
                Outposts: p.neighborsUnlocked(center),
            })
        }
    }
    return p.majors
}

func (p *Provider) Ferries() []simple.Ferry {
    return p.data.Ferries
}

func (p *Provider) IsMajorCityCenter(c simple.Coord) bool {
    return p.TerrainAt(c) == simple.MajorCityTerrain
}

func (p *Provider) IsMajorCityOutpost(c simple.Coord) bool {
    return p.TerrainAt(c) == simple.MajorCityOutpostTerrain
}

// Neighbors are the in-bounds, non-water hex neighbors.  Offset rows: odd
// rows shift right.
func (p *Provider) Neighbors(c simple.Coord) []simple.Coord {
    p.mux.Lock()
    defer p.mux.Unlock()
    return p.neighborsUnlocked(c)
}

func (p *Provider) neighborsUnlocked(c simple.Coord) []simple.Coord {
    even := [][2]int{{0, -1}, {0, 1}, {-1, -1}, {-1, 0}, {1, -1}, {1, 0}}
    odd := [][2]int{{0, -1}, {0, 1}, {-1, 0}, {-1, 1}, {1, 0}, {1, 1}}
    offsets := even
    if c.Row%2 != 0 {
        offsets = odd
    }
    r := []simple.Coord{}
    for _, o := range offsets {
        n := simple.Coord{Row: c.Row + o[0], Col: c.Col + o[1]}
        if !p.InBounds(n) {
            continue
        }
        if t, ok := p.terrainTableUnlocked()[n.Key()]; ok && t == simple.WaterTerrain {
            continue
        }
        r = append(r, n)
    }
    return r
}

func (p *Provider) terrainTable() map[string]simple.TerrainType {
    p.mux.Lock()
    defer p.mux.Unlock()
    return p.terrainTableUnlocked()
}

func (p *Provider) terrainTableUnlocked() map[string]simple.TerrainType {
    if p.terrain != nil {
        return p.terrain
    }
    t := make(map[string]simple.TerrainType)
    for _, c := range p.data.Mountains {
        t[c.Key()] = simple.MountainTerrain
    }
    for _, c := range p.data.Alpine {
        t[c.Key()] = simple.AlpineTerrain
    }
    for _, c := range p.data.Water {
        t[c.Key()] = simple.WaterTerrain
    }
    for _, c := range p.data.SmallCities {
        t[c.Key()] = simple.SmallCityTerrain
    }
    for _, c := range p.data.MediumCities {
        t[c.Key()] = simple.MediumCityTerrain
    }
    for _, center := range p.data.MajorCityCenters {
        t[center.Key()] = simple.MajorCityTerrain
    }
    p.terrain = t

    // Outposts depend on the centers being in the table first.
    for _, center := range p.data.MajorCityCenters {
        for _, o := range p.neighborsUnlocked(center) {
            if _, listed := t[o.Key()]; !listed {
                t[o.Key()] = simple.MajorCityOutpostTerrain
            }
        }
    }
    return p.terrain
}

func (p *Provider) cityTable() map[string]string {
    p.mux.Lock()
    defer p.mux.Unlock()
    if p.cityByCoord == nil {
        m := make(map[string]string)
        for name, c := range p.data.SmallCities {
            m[c.Key()] = name
        }
        for name, c := range p.data.MediumCities {
            m[c.Key()] = name
        }
        for name, c := range p.data.MajorCityCenters {
            m[c.Key()] = name
        }
        p.cityByCoord = m
    }
    return p.cityByCoord
}

func (p *Provider) coordTable() map[string]simple.Coord {
    p.mux.Lock()
    defer p.mux.Unlock()
    if p.coordByCity == nil {
        m := make(map[string]simple.Coord)
        for name, c := range p.data.SmallCities {
            m[name] = c
        }
        for name, c := range p.data.MediumCities {
            m[name] = c
        }
        for name, c := range p.data.MajorCityCenters {
            m[name] = c
        }
        p.coordByCity = m
    }
    return p.coordByCity
}
