package bot

import (
    "time"
    "local/eurorails/simple"
)

// Option is one candidate action.  The generator emits feasible and
// infeasible options alike; infeasible ones stay in the list for audit but
// the scorer pins them to -Inf.
type Option struct {
    Kind simple.ActionKind
    Feasible bool
    Reason string
    Score float64

    // MoveTrain
    Path []simple.Coord
    Mileposts int
    Frontier bool
    CrossesFerry bool
    TrackFee int

    // BuildTrack
    Segments []simple.TrackSegment
    EstimatedCost int
    Budget int
    TargetCity string
    ChainScore float64

    // PickupLoad / DeliverLoad / DropLoad
    Load simple.Load
    City string
    CardId int
    Payment int

    // UpgradeTrain
    ToTrain simple.TrainType
}

// KindFilter restricts which action kinds the generator considers.  A nil
// filter allows everything.  PassTurn is always generated regardless.
type KindFilter map[simple.ActionKind]bool

func NewKindFilter(kinds ...simple.ActionKind) KindFilter {
    f := KindFilter{}
    for _, k := range kinds {
        f[k] = true
    }
    return f
}

func (f KindFilter) Allows(k simple.ActionKind) bool {
    if f == nil {
        return true
    }
    return f[k]
}

// ValidationResult never carries an error; validation always reaches a
// definite answer.
type ValidationResult struct {
    Valid bool
    Reason string
}

type LoadEvent struct {
    Load simple.Load
    City string
    Payment int
    CardId int
}

// Result is the structured outcome of one executed action, and at the end
// of a turn, of the whole turn (enriched with the earlier phases' events).
type Result struct {
    Success bool
    Kind simple.ActionKind
    Cost int
    SegmentsBuilt int
    RemainingMoney int
    Duration time.Duration
    Error string

    // DeliverLoad / DiscardHand extras
    Payment int
    NewCardIds []int

    // Accumulated from movement and load phases.
    MovedTo *simple.Coord
    Mileposts int
    TrackFee int
    PickedUp []LoadEvent
    Delivered []LoadEvent
}

func passOption(reason string) Option {
    return Option{
        Kind: simple.PassTurn,
        Feasible: true,
        Reason: reason,
    }
}
