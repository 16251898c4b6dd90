package database

import (
    "database/sql"
    "golang.org/x/xerrors"
    "local/eurorails/simple"
)

type demandRow struct {
    City string `db:"city"`
    Load string `db:"load"`
    Payment int `db:"payment"`
}

// GetDemandCard resolves a card id into its three demands.  A missing card
// returns (nil, nil): the deck service treats unknown ids as discarded.
func (db *DB) GetDemandCard(id int) (*simple.DemandCard, error) {
    rows := []demandRow{}
    err := db.c.Select(&rows,
        "select city, load, payment from demand where card_id=$1 order by payment desc", id)
    if err != nil {
        return nil, xerrors.Errorf("get demand card %d: %w", id, err)
    }
    if len(rows) == 0 {
        return nil, nil
    }
    card := &simple.DemandCard{Id: id}
    for _, r := range rows {
        card.Demands = append(card.Demands, simple.Demand{
            City: r.City,
            Load: simple.Load(r.Load),
            Payment: r.Payment,
        })
    }
    return card, nil
}

// drawDemandCard pops the top undrawn card of the game's deck inside tx.
func drawDemandCard(tx *sql.Tx, gid int) (int, error) {
    var cardId int
    err := tx.QueryRow(
        "select card_id from deck where game_id=$1 and drawn=false "+
        "order by position limit 1", gid).Scan(&cardId)
    if err != nil {
        return 0, xerrors.Errorf("draw card for game %d: %w", gid, err)
    }
    _, err = tx.Exec(
        "update deck set drawn=true where game_id=$1 and card_id=$2", gid, cardId)
    if err != nil {
        return 0, xerrors.Errorf("mark card %d drawn: %w", cardId, err)
    }
    return cardId, nil
}

// discardDemandCard returns a card to the bottom of the deck inside tx.
func discardDemandCard(tx *sql.Tx, gid int, cardId int) error {
    _, err := tx.Exec(
        "update deck set drawn=false, position=(select coalesce(max(position),0)+1 from deck where game_id=$1) "+
        "where game_id=$1 and card_id=$2", gid, cardId)
    if err != nil {
        return xerrors.Errorf("discard card %d: %w", cardId, err)
    }
    return nil
}
