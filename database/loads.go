package database

import (
    "database/sql"
    "golang.org/x/xerrors"
    "local/eurorails/simple"
)

type cityLoadRow struct {
    City string `db:"city"`
    Load string `db:"load"`
    Count int `db:"count"`
}

// GetCityLoads returns which load types are available at each city right
// now.  Counts of zero are omitted.
func (db *DB) GetCityLoads(gid int) (map[string][]simple.Load, error) {
    rows := []cityLoadRow{}
    err := db.c.Select(&rows,
        "select city, load, count from city_load where game_id=$1 and count > 0 "+
        "order by city, load", gid)
    if err != nil {
        return nil, xerrors.Errorf("get city loads for game %d: %w", gid, err)
    }
    r := map[string][]simple.Load{}
    for _, row := range rows {
        r[row.City] = append(r[row.City], simple.Load(row.Load))
    }
    return r, nil
}

func takeCityLoad(tx *sql.Tx, gid int, city string, load simple.Load) error {
    res, err := tx.Exec(
        "update city_load set count=count-1 where game_id=$1 and city=$2 and load=$3 and count > 0",
        gid, city, string(load))
    if err != nil {
        return xerrors.Errorf("take %s at %s: %w", load, city, err)
    }
    n, err := res.RowsAffected()
    if err == nil && n == 0 {
        return xerrors.Errorf("take %s at %s: none available", load, city)
    }
    return nil
}

func returnCityLoad(tx *sql.Tx, gid int, city string, load simple.Load) error {
    res, err := tx.Exec(
        "update city_load set count=count+1 where game_id=$1 and city=$2 and load=$3",
        gid, city, string(load))
    if err != nil {
        return xerrors.Errorf("return %s to %s: %w", load, city, err)
    }
    n, err := res.RowsAffected()
    if err == nil && n == 0 {
        _, err = tx.Exec(
            "insert into city_load (game_id, city, load, count) values ($1, $2, $3, 1)",
            gid, city, string(load))
        if err != nil {
            return xerrors.Errorf("return %s to %s: %w", load, city, err)
        }
    }
    return nil
}
