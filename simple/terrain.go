package simple

type TerrainType int
const (
    NoneTerrain TerrainType = iota
    ClearTerrain
    MountainTerrain
    AlpineTerrain
    SmallCityTerrain
    MediumCityTerrain
    MajorCityTerrain
    MajorCityOutpostTerrain
    WaterTerrain
)
var TerrainTypeNames = map[TerrainType]string {
    NoneTerrain: "None",
    ClearTerrain: "Clear",
    MountainTerrain: "Mountain",
    AlpineTerrain: "Alpine",
    SmallCityTerrain: "SmallCity",
    MediumCityTerrain: "MediumCity",
    MajorCityTerrain: "MajorCity",
    MajorCityOutpostTerrain: "MajorCityOutpost",
    WaterTerrain: "Water",
}

func (t TerrainType) String() string {
    return TerrainTypeNames[t]
}

// Cost to build track into a milepost of this terrain, in M ECU.  Water is
// not buildable; ferries carry their own crossing cost.
var TerrainBuildCosts = map[TerrainType]int {
    ClearTerrain: 1,
    MountainTerrain: 2,
    AlpineTerrain: 5,
    SmallCityTerrain: 3,
    MediumCityTerrain: 3,
    MajorCityOutpostTerrain: 5,
}

func (t TerrainType) Buildable() bool {
    _, ok := TerrainBuildCosts[t]
    return ok
}
