package database

import (
    "golang.org/x/xerrors"
    "local/eurorails/simple"
)

// The executor's writes.  Each runs a single transaction; any failure rolls
// the whole turn action back and nothing is committed.

func (db *DB) BuildTrackTx(gid int, pid string, segments []simple.TrackSegment, cost int, detail string) (int, error) {
    tx, err := db.c.Beginx()
    if err != nil {
        return 0, xerrors.Errorf("begin build tx: %w", err)
    }
    defer tx.Rollback()

    for _, s := range segments {
        _, err = tx.Exec(
            "insert into track (game_id, player_id, from_row, from_col, to_row, to_col, from_terrain, to_terrain, cost) "+
            "values ($1, $2, $3, $4, $5, $6, $7, $8, $9)",
            gid, pid, s.From.Row, s.From.Col, s.To.Row, s.To.Col,
            int(s.FromTerrain), int(s.ToTerrain), s.Cost)
        if err != nil {
            return 0, xerrors.Errorf("insert track: %w", err)
        }
    }

    remaining, err := debitMoney(tx.Tx, gid, pid, cost)
    if err != nil {
        return 0, err
    }
    if err = appendAudit(tx.Tx, gid, pid, "BuildTrack", detail, cost); err != nil {
        return 0, err
    }
    if err = tx.Commit(); err != nil {
        return 0, xerrors.Errorf("commit build tx: %w", err)
    }
    return remaining, nil
}

func (db *DB) MoveTx(gid int, pid string, to simple.Coord, fee int, ferrySlow bool, detail string) (int, error) {
    tx, err := db.c.Beginx()
    if err != nil {
        return 0, xerrors.Errorf("begin move tx: %w", err)
    }
    defer tx.Rollback()

    _, err = tx.Exec(
        "update player set row=$1, col=$2, ferry_slow=$3 where game_id=$4 and id=$5",
        to.Row, to.Col, ferrySlow, gid, pid)
    if err != nil {
        return 0, xerrors.Errorf("update position: %w", err)
    }
    remaining, err := debitMoney(tx.Tx, gid, pid, fee)
    if err != nil {
        return 0, err
    }
    if err = appendAudit(tx.Tx, gid, pid, "MoveTrain", detail, fee); err != nil {
        return 0, err
    }
    if err = tx.Commit(); err != nil {
        return 0, xerrors.Errorf("commit move tx: %w", err)
    }
    return remaining, nil
}

// DeliverLoadTx removes the load, credits the payment, returns the spent
// card to the deck, and draws the replacement card in the same transaction.
func (db *DB) DeliverLoadTx(gid int, pid string, load simple.Load, city string, cardId int, payment int) (int, int, error) {
    tx, err := db.c.Beginx()
    if err != nil {
        return 0, 0, xerrors.Errorf("begin deliver tx: %w", err)
    }
    defer tx.Rollback()

    p, loads, hand, err := playerForUpdate(tx, gid, pid)
    if err != nil {
        return 0, 0, err
    }
    loads, ok := removeLoad(loads, load)
    if !ok {
        return 0, 0, xerrors.Errorf("deliver: player %s does not carry %s", pid, load)
    }
    hand, ok = removeInt(hand, cardId)
    if !ok {
        return 0, 0, xerrors.Errorf("deliver: player %s does not hold card %d", pid, cardId)
    }
    if err = discardDemandCard(tx.Tx, gid, cardId); err != nil {
        return 0, 0, err
    }
    newCardId, err := drawDemandCard(tx.Tx, gid)
    if err != nil {
        return 0, 0, err
    }
    hand = append(hand, newCardId)
    if err = returnCityLoad(tx.Tx, gid, city, load); err != nil {
        return 0, 0, err
    }

    remaining := p.Money + payment
    _, err = tx.Exec(
        "update player set money=$1, loads=$2, hand=$3 where game_id=$4 and id=$5",
        remaining, joinLoads(loads), joinInts(hand), gid, pid)
    if err != nil {
        return 0, 0, xerrors.Errorf("update player after deliver: %w", err)
    }
    if err = appendAudit(tx.Tx, gid, pid, "DeliverLoad",
        string(load)+" to "+city, -payment); err != nil {
        return 0, 0, err
    }
    if err = tx.Commit(); err != nil {
        return 0, 0, xerrors.Errorf("commit deliver tx: %w", err)
    }
    return remaining, newCardId, nil
}

func (db *DB) PickupLoadTx(gid int, pid string, load simple.Load, city string) error {
    tx, err := db.c.Beginx()
    if err != nil {
        return xerrors.Errorf("begin pickup tx: %w", err)
    }
    defer tx.Rollback()

    p, loads, _, err := playerForUpdate(tx, gid, pid)
    if err != nil {
        return err
    }
    if len(loads) >= p.TrainType().Capacity() {
        return xerrors.Errorf("pickup: train of %s is full", pid)
    }
    if err = takeCityLoad(tx.Tx, gid, city, load); err != nil {
        return err
    }
    loads = append(loads, load)
    _, err = tx.Exec(
        "update player set loads=$1 where game_id=$2 and id=$3",
        joinLoads(loads), gid, pid)
    if err != nil {
        return xerrors.Errorf("update player after pickup: %w", err)
    }
    if err = appendAudit(tx.Tx, gid, pid, "PickupLoad",
        string(load)+" at "+city, 0); err != nil {
        return err
    }
    if err = tx.Commit(); err != nil {
        return xerrors.Errorf("commit pickup tx: %w", err)
    }
    return nil
}

func (db *DB) DropLoadTx(gid int, pid string, load simple.Load, city string) error {
    tx, err := db.c.Beginx()
    if err != nil {
        return xerrors.Errorf("begin drop tx: %w", err)
    }
    defer tx.Rollback()

    _, loads, _, err := playerForUpdate(tx, gid, pid)
    if err != nil {
        return err
    }
    loads, ok := removeLoad(loads, load)
    if !ok {
        return xerrors.Errorf("drop: player %s does not carry %s", pid, load)
    }
    if err = returnCityLoad(tx.Tx, gid, city, load); err != nil {
        return err
    }
    _, err = tx.Exec(
        "update player set loads=$1 where game_id=$2 and id=$3",
        joinLoads(loads), gid, pid)
    if err != nil {
        return xerrors.Errorf("update player after drop: %w", err)
    }
    if err = appendAudit(tx.Tx, gid, pid, "DropLoad",
        string(load)+" at "+city, 0); err != nil {
        return err
    }
    if err = tx.Commit(); err != nil {
        return xerrors.Errorf("commit drop tx: %w", err)
    }
    return nil
}

func (db *DB) UpgradeTrainTx(gid int, pid string, to simple.TrainType) (int, error) {
    tx, err := db.c.Beginx()
    if err != nil {
        return 0, xerrors.Errorf("begin upgrade tx: %w", err)
    }
    defer tx.Rollback()

    _, err = tx.Exec(
        "update player set train=$1 where game_id=$2 and id=$3",
        to.String(), gid, pid)
    if err != nil {
        return 0, xerrors.Errorf("update train: %w", err)
    }
    remaining, err := debitMoney(tx.Tx, gid, pid, simple.UpgradeCost)
    if err != nil {
        return 0, err
    }
    if err = appendAudit(tx.Tx, gid, pid, "UpgradeTrain",
        to.String(), simple.UpgradeCost); err != nil {
        return 0, err
    }
    if err = tx.Commit(); err != nil {
        return 0, xerrors.Errorf("commit upgrade tx: %w", err)
    }
    return remaining, nil
}

// DiscardHandTx returns every held card to the deck and draws a fresh hand.
// Discarding the hand forfeits the rest of the turn, which the engine
// enforces; here it is just the swap.
func (db *DB) DiscardHandTx(gid int, pid string) ([]int, error) {
    tx, err := db.c.Beginx()
    if err != nil {
        return nil, xerrors.Errorf("begin discard tx: %w", err)
    }
    defer tx.Rollback()

    _, _, hand, err := playerForUpdate(tx, gid, pid)
    if err != nil {
        return nil, err
    }
    for _, id := range hand {
        if err = discardDemandCard(tx.Tx, gid, id); err != nil {
            return nil, err
        }
    }
    newHand := []int{}
    for i := 0; i < simple.HandSize; i++ {
        id, err := drawDemandCard(tx.Tx, gid)
        if err != nil {
            return nil, err
        }
        newHand = append(newHand, id)
    }
    _, err = tx.Exec(
        "update player set hand=$1 where game_id=$2 and id=$3",
        joinInts(newHand), gid, pid)
    if err != nil {
        return nil, xerrors.Errorf("update hand: %w", err)
    }
    if err = appendAudit(tx.Tx, gid, pid, "DiscardHand", "", 0); err != nil {
        return nil, err
    }
    if err = tx.Commit(); err != nil {
        return nil, xerrors.Errorf("commit discard tx: %w", err)
    }
    return newHand, nil
}

// AuditAction is the light write for actions with no other state change
// (PassTurn).
func (db *DB) AuditAction(gid int, pid string, kind string, detail string) error {
    _, err := db.c.Exec(
        "insert into audit (game_id, player_id, kind, detail, cost) values ($1, $2, $3, $4, 0)",
        gid, pid, kind, detail)
    if err != nil {
        return xerrors.Errorf("audit %s: %w", kind, err)
    }
    return nil
}
