package message

import (
    "fmt"
    "time"
)

type NType int
const (
    NTypeNone NType = iota
    NotifyTrackUpdated
    NotifyTurnResult
)
var NTypeNames = map[NType]string {
    NTypeNone: "NTypeNone",
    NotifyTrackUpdated: "NotifyTrackUpdated",
    NotifyTurnResult: "NotifyTurnResult",
}

func (t NType) String() string {
    return fmt.Sprintf("%s", NTypeNames[t])
}

// Notification is the post-commit, fire-and-forget event the presentation
// layers consume.  Losing one must never affect a committed turn.
type Notification struct {
    NType NType
    Time time.Time
    Data interface{}
}

type NotifyTrackUpdatedData struct {
    GameId int
    PlayerId string
    Segments int
    Cost int
}

type NotifyTurnResultData struct {
    GameId int
    PlayerId string
    Kind string
    Success bool
    Cost int
}

func NewTrackUpdated(gid int, pid string, segments int, cost int) Notification {
    return Notification{
        NType: NotifyTrackUpdated,
        Time: time.Now(),
        Data: NotifyTrackUpdatedData{
            GameId: gid,
            PlayerId: pid,
            Segments: segments,
            Cost: cost,
        },
    }
}

func NewTurnResult(gid int, pid string, kind string, success bool, cost int) Notification {
    return Notification{
        NType: NotifyTurnResult,
        Time: time.Now(),
        Data: NotifyTurnResultData{
            GameId: gid,
            PlayerId: pid,
            Kind: kind,
            Success: success,
            Cost: cost,
        },
    }
}

// Broadcaster fans a notification out to whatever is listening.
// Implementations must not block or fail the caller.
type Broadcaster interface {
    Broadcast(n Notification)
}
