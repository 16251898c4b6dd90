package database

import (
    "strconv"
    "strings"
    "golang.org/x/xerrors"
    "local/eurorails/simple"
)

type Game struct {
    Id int `db:"id"`
    Status string `db:"status"`
    Turn int `db:"turn"`
}

type Player struct {
    Id string `db:"id"`
    GameId int `db:"game_id"`
    Money int `db:"money"`
    Row *int `db:"row"`
    Col *int `db:"col"`
    Train string `db:"train"`
    Loads string `db:"loads"`
    Hand string `db:"hand"`
    Archetype *string `db:"archetype"`
    Skill *int `db:"skill"`
    FerrySlow bool `db:"ferry_slow"`
}

func (db *DB) GetGame(gid int) (Game, error) {
    var g Game
    err := db.c.Get(&g, "select id, status, turn from game where id=$1", gid)
    if err != nil {
        return Game{}, xerrors.Errorf("get game %d: %w", gid, err)
    }
    return g, nil
}

func (db *DB) GetPlayer(gid int, pid string) (Player, error) {
    var p Player
    err := db.c.Get(&p,
        "select * from player where game_id=$1 and id=$2", gid, pid)
    if err != nil {
        return Player{}, xerrors.Errorf("get player %s in game %d: %w", pid, gid, err)
    }
    return p, nil
}

func (p Player) Position() *simple.Coord {
    if p.Row == nil || p.Col == nil {
        return nil
    }
    return &simple.Coord{Row: *p.Row, Col: *p.Col}
}

func (p Player) TrainType() simple.TrainType {
    for t, name := range simple.TrainTypeNames {
        if name == p.Train {
            return t
        }
    }
    return simple.FreightTrain
}

func (p Player) LoadList() []simple.Load {
    r := []simple.Load{}
    for _, l := range strings.Split(p.Loads, ",") {
        if l != "" {
            r = append(r, simple.Load(l))
        }
    }
    return r
}

func (p Player) HandIds() []int {
    r := []int{}
    for _, h := range strings.Split(p.Hand, ",") {
        if h == "" {
            continue
        }
        id, err := strconv.Atoi(h)
        if err != nil {
            continue
        }
        r = append(r, id)
    }
    return r
}

func (p Player) BotConfig() *simple.BotConfig {
    if p.Archetype == nil {
        return nil
    }
    cfg := simple.BotConfig{Archetype: simple.BotArchetype(*p.Archetype)}
    if p.Skill != nil {
        cfg.Skill = *p.Skill
    }
    return &cfg
}

func joinLoads(loads []simple.Load) string {
    parts := make([]string, 0, len(loads))
    for _, l := range loads {
        parts = append(parts, string(l))
    }
    return strings.Join(parts, ",")
}

func joinInts(ids []int) string {
    parts := make([]string, 0, len(ids))
    for _, id := range ids {
        parts = append(parts, strconv.Itoa(id))
    }
    return strings.Join(parts, ",")
}
