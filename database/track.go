package database

import (
    "golang.org/x/xerrors"
    "local/eurorails/simple"
)

type trackRow struct {
    PlayerId string `db:"player_id"`
    FromRow int `db:"from_row"`
    FromCol int `db:"from_col"`
    ToRow int `db:"to_row"`
    ToCol int `db:"to_col"`
    FromTerrain int `db:"from_terrain"`
    ToTerrain int `db:"to_terrain"`
    Cost int `db:"cost"`
}

func (r trackRow) segment() simple.TrackSegment {
    return simple.TrackSegment{
        From: simple.Coord{Row: r.FromRow, Col: r.FromCol},
        To: simple.Coord{Row: r.ToRow, Col: r.ToCol},
        FromTerrain: simple.TerrainType(r.FromTerrain),
        ToTerrain: simple.TerrainType(r.ToTerrain),
        Cost: r.Cost,
    }
}

// GetAllTrack returns every player's segments for the game, keyed by player
// id, in build order.
func (db *DB) GetAllTrack(gid int) (map[string][]simple.TrackSegment, error) {
    rows := []trackRow{}
    err := db.c.Select(&rows,
        "select player_id, from_row, from_col, to_row, to_col, from_terrain, to_terrain, cost "+
        "from track where game_id=$1 order by id", gid)
    if err != nil {
        return nil, xerrors.Errorf("get track for game %d: %w", gid, err)
    }
    r := map[string][]simple.TrackSegment{}
    for _, row := range rows {
        r[row.PlayerId] = append(r[row.PlayerId], row.segment())
    }
    return r, nil
}
