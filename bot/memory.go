package bot

import (
    "local/eurorails/simple"
)

// MemoryStore persists the cross-turn record.  *database.DB satisfies it
// with DynamoDB.
type MemoryStore interface {
    GetBotMemory(gid int, pid string) (*simple.BotMemory, error)
    PutBotMemory(gid int, pid string, m simple.BotMemory) error
}

// updateMemory folds one finished turn into the sticky record.  Called
// exactly once per turn, by the engine, after the terminal result is
// known.
func updateMemory(mem *simple.BotMemory, snap Snapshot, result Result, buildTarget string) simple.BotMemory {
    m := simple.BotMemory{}
    if mem != nil {
        m = *mem
    }

    m.LastTurn = snap.Turn
    m.LastKind = result.Kind

    if result.Kind == simple.PassTurn {
        m.ConsecutivePasses++
    } else {
        m.ConsecutivePasses = 0
    }
    if result.Kind == simple.DiscardHand && result.Success {
        m.ConsecutiveDiscards++
    } else {
        m.ConsecutiveDiscards = 0
    }

    for _, d := range result.Delivered {
        m.Deliveries++
        m.Earnings += d.Payment
        if d.City == m.BuildTarget {
            // Goal reached, stickiness has done its job.
            m.BuildTarget = ""
            m.TurnsOnTarget = 0
        }
    }

    if result.Kind == simple.BuildTrack && result.Success && buildTarget != "" {
        if buildTarget == m.BuildTarget {
            m.TurnsOnTarget++
        } else {
            m.BuildTarget = buildTarget
            m.TurnsOnTarget = 1
        }
    }

    return m
}
