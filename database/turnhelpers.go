package database

import (
    "database/sql"
    "github.com/jmoiron/sqlx"
    "golang.org/x/xerrors"
    "local/eurorails/simple"
)

func playerForUpdate(tx *sqlx.Tx, gid int, pid string) (Player, []simple.Load, []int, error) {
    var p Player
    err := tx.Get(&p,
        "select * from player where game_id=$1 and id=$2 for update", gid, pid)
    if err != nil {
        return Player{}, nil, nil, xerrors.Errorf("lock player %s: %w", pid, err)
    }
    return p, p.LoadList(), p.HandIds(), nil
}

// debitMoney subtracts cost (negative credits) and returns the new balance.
func debitMoney(tx *sql.Tx, gid int, pid string, cost int) (int, error) {
    var remaining int
    err := tx.QueryRow(
        "update player set money=money-$1 where game_id=$2 and id=$3 returning money",
        cost, gid, pid).Scan(&remaining)
    if err != nil {
        return 0, xerrors.Errorf("debit %d from %s: %w", cost, pid, err)
    }
    return remaining, nil
}

func appendAudit(tx *sql.Tx, gid int, pid string, kind string, detail string, cost int) error {
    _, err := tx.Exec(
        "insert into audit (game_id, player_id, kind, detail, cost) values ($1, $2, $3, $4, $5)",
        gid, pid, kind, detail, cost)
    if err != nil {
        return xerrors.Errorf("audit %s: %w", kind, err)
    }
    return nil
}

func removeLoad(loads []simple.Load, load simple.Load) ([]simple.Load, bool) {
    for i, l := range loads {
        if l == load {
            return append(loads[:i:i], loads[i+1:]...), true
        }
    }
    return loads, false
}

func removeInt(ids []int, id int) ([]int, bool) {
    for i, v := range ids {
        if v == id {
            return append(ids[:i:i], ids[i+1:]...), true
        }
    }
    return ids, false
}
