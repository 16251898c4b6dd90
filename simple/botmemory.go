package simple

// BotMemory is the sticky cross-turn record for one (game, bot) pair.  The
// strategy engine is its only writer; the generator and scorer read it.
type BotMemory struct {
    BuildTarget string
    TurnsOnTarget int
    LastKind ActionKind
    ConsecutivePasses int
    ConsecutiveDiscards int
    Deliveries int
    Earnings int
    LastTurn int
}

// A build target this stale stops receiving the loyalty bonus, so the bot
// can walk away from goals it is failing to reach.
const StaleTargetTurns = 4
