package bot

import (
    "fmt"
    "time"
    "local/eurorails/log"
    "local/eurorails/message"
    "local/eurorails/simple"
)

// TurnStore is the write side of the persistent layer: each method is one
// transaction that fully commits or fully rolls back.  *database.DB
// satisfies it.
type TurnStore interface {
    BuildTrackTx(gid int, pid string, segments []simple.TrackSegment, cost int, detail string) (int, error)
    MoveTx(gid int, pid string, to simple.Coord, fee int, ferrySlow bool, detail string) (int, error)
    DeliverLoadTx(gid int, pid string, load simple.Load, city string, cardId int, payment int) (int, int, error)
    PickupLoadTx(gid int, pid string, load simple.Load, city string) error
    DropLoadTx(gid int, pid string, load simple.Load, city string) error
    UpgradeTrainTx(gid int, pid string, to simple.TrainType) (int, error)
    DiscardHandTx(gid int, pid string) ([]int, error)
    AuditAction(gid int, pid string, kind string, detail string) error
}

type Executor interface {
    Execute(opt Option, snap Snapshot) Result
}

// StoreExecutor applies one validated option to persistent state.  Every
// expected failure comes back as a failed Result; unexpected panics are
// caught and converted too, nothing escapes the boundary.
type StoreExecutor struct {
    store TurnStore
    broadcaster message.Broadcaster
}

func NewStoreExecutor(store TurnStore, b message.Broadcaster) *StoreExecutor {
    return &StoreExecutor{store: store, broadcaster: b}
}

func (e *StoreExecutor) Execute(opt Option, snap Snapshot) (r Result) {
    start := time.Now()
    r.Kind = opt.Kind
    r.RemainingMoney = snap.Bot.Money
    defer func() {
        r.Duration = time.Since(start)
        if p := recover(); p != nil {
            log.Error("executor panic on %s: %v", opt.Kind, p)
            r.Success = false
            r.Error = fmt.Sprintf("executor panic: %v", p)
        }
    }()

    gid, pid := snap.GameId, snap.Bot.PlayerId
    switch opt.Kind {
    case simple.BuildTrack:
        remaining, err := e.store.BuildTrackTx(gid, pid, opt.Segments, opt.EstimatedCost, opt.Reason)
        if err != nil {
            return fail(r, err)
        }
        r.Success = true
        r.Cost = opt.EstimatedCost
        r.SegmentsBuilt = len(opt.Segments)
        r.RemainingMoney = remaining
        e.notify(message.NewTrackUpdated(gid, pid, len(opt.Segments), opt.EstimatedCost))

    case simple.MoveTrain:
        dest := opt.Path[len(opt.Path)-1]
        remaining, err := e.store.MoveTx(gid, pid, dest, opt.TrackFee, opt.CrossesFerry, opt.Reason)
        if err != nil {
            return fail(r, err)
        }
        r.Success = true
        r.Cost = opt.TrackFee
        r.TrackFee = opt.TrackFee
        r.Mileposts = opt.Mileposts
        r.MovedTo = &dest
        r.RemainingMoney = remaining

    case simple.DeliverLoad:
        remaining, newCard, err := e.store.DeliverLoadTx(gid, pid, opt.Load, opt.City, opt.CardId, opt.Payment)
        if err != nil {
            return fail(r, err)
        }
        r.Success = true
        r.Payment = opt.Payment
        r.NewCardIds = []int{newCard}
        r.RemainingMoney = remaining
        r.Delivered = []LoadEvent{{Load: opt.Load, City: opt.City, Payment: opt.Payment, CardId: opt.CardId}}

    case simple.PickupLoad:
        if err := e.store.PickupLoadTx(gid, pid, opt.Load, opt.City); err != nil {
            return fail(r, err)
        }
        r.Success = true
        r.PickedUp = []LoadEvent{{Load: opt.Load, City: opt.City, Payment: opt.Payment, CardId: opt.CardId}}

    case simple.DropLoad:
        if err := e.store.DropLoadTx(gid, pid, opt.Load, opt.City); err != nil {
            return fail(r, err)
        }
        r.Success = true

    case simple.UpgradeTrain:
        remaining, err := e.store.UpgradeTrainTx(gid, pid, opt.ToTrain)
        if err != nil {
            return fail(r, err)
        }
        r.Success = true
        r.Cost = simple.UpgradeCost
        r.RemainingMoney = remaining

    case simple.DiscardHand:
        newHand, err := e.store.DiscardHandTx(gid, pid)
        if err != nil {
            return fail(r, err)
        }
        r.Success = true
        r.NewCardIds = newHand

    case simple.PassTurn:
        if err := e.store.AuditAction(gid, pid, simple.PassTurn.String(), opt.Reason); err != nil {
            return fail(r, err)
        }
        r.Success = true

    default:
        r.Error = fmt.Sprintf("unknown action kind %d", opt.Kind)
        return r
    }

    e.notify(message.NewTurnResult(gid, pid, opt.Kind.String(), r.Success, r.Cost))
    return r
}

// notify is post-commit and fire-and-forget; a broadcast problem must
// never affect the committed result.
func (e *StoreExecutor) notify(n message.Notification) {
    if e.broadcaster == nil {
        return
    }
    defer func() {
        if p := recover(); p != nil {
            log.Warn("broadcast %s panic: %v", n.NType, p)
        }
    }()
    e.broadcaster.Broadcast(n)
}

func fail(r Result, err error) Result {
    r.Success = false
    r.Error = err.Error()
    return r
}
