package bot

import (
    "fmt"
    "time"
    "local/eurorails/grid"
    "local/eurorails/log"
    "local/eurorails/simple"
)

const (
    // Each load phase re-captures the snapshot after a successful
    // action; the ceiling guards against a generator that keeps
    // emitting profitable-looking loads forever.
    maxLoadActions = 6

    // Executor attempts in the spend phase before giving up and
    // passing.  Validation rejections don't count, only real failures.
    maxSpendAttempts = 3
)

// Engine runs one complete bot turn: capture, generate, score,
// validate, execute, remember.  One Engine serves all games; it holds
// no per-turn state.
type Engine struct {
    store Store
    mems MemoryStore
    exec Executor
    grid *grid.Provider
    gen *Generator
    scorer *Scorer
    val *Validator
}

func NewEngine(store Store, mems MemoryStore, exec Executor, g *grid.Provider) *Engine {
    return &Engine{
        store: store,
        mems: mems,
        exec: exec,
        grid: g,
        gen: NewGenerator(g),
        scorer: NewScorer(g),
        val: NewValidator(g),
    }
}

// accumulator carries the movement and load events of the earlier
// phases into the turn's terminal Result.
type accumulator struct {
    movedTo *simple.Coord
    mileposts int
    trackFee int
    pickedUp []LoadEvent
    delivered []LoadEvent
}

func (a *accumulator) absorb(r Result) {
    if !r.Success {
        return
    }
    if r.MovedTo != nil {
        a.movedTo = r.MovedTo
        a.mileposts += r.Mileposts
        a.trackFee += r.TrackFee
    }
    a.pickedUp = append(a.pickedUp, r.PickedUp...)
    a.delivered = append(a.delivered, r.Delivered...)
}

func (a *accumulator) enrich(r Result) Result {
    if a.movedTo != nil {
        r.MovedTo = a.movedTo
        r.Mileposts = a.mileposts
        r.TrackFee = a.trackFee
    }
    r.PickedUp = append(a.pickedUp, r.PickedUp...)
    r.Delivered = append(a.delivered, r.Delivered...)
    return r
}

// TakeTurn is the single entry point.  It always returns a Result, never
// panics out, and writes bot memory exactly once on the way out.
func (e *Engine) TakeTurn(gid int, pid string) (result Result) {
    start := time.Now()
    e.debugf(gid, pid, "turn start")
    defer func() {
        if p := recover(); p != nil {
            log.Error("(G%d %s) engine panic: %v", gid, pid, p)
            result = Result{
                Kind: simple.PassTurn,
                Error: fmt.Sprintf("engine panic: %v", p),
            }
        }
        result.Duration = time.Since(start)
        e.debugf(gid, pid, "turn done: kind=%s success=%t in %s",
            result.Kind, result.Success, result.Duration)
    }()

    snap, err := CaptureSnapshot(e.store, e.grid, gid, pid)
    if err != nil {
        log.Error("(G%d %s) capture: %v", gid, pid, err)
        return Result{Kind: simple.PassTurn, Error: err.Error()}
    }
    if !snap.Status.Playable() {
        return Result{Kind: simple.PassTurn, Error: "game not playable"}
    }

    mem, err := e.mems.GetBotMemory(gid, pid)
    if err != nil {
        // Memory is advisory; a fetch failure degrades to a fresh one.
        log.Warn("(G%d %s) memory fetch: %v", gid, pid, err)
        mem = nil
    }

    // Loads can be worked both before and after the move, so the load
    // phase runs twice.
    acc := &accumulator{}
    snap = e.loadPhase(snap, mem, acc)
    snap = e.movePhase(snap, mem, acc)
    if acc.movedTo != nil {
        snap = e.loadPhase(snap, mem, acc)
    }
    final, buildTarget := e.spendPhase(snap, mem, acc)
    final = acc.enrich(final)

    updated := updateMemory(mem, snap, final, buildTarget)
    if err := e.mems.PutBotMemory(gid, pid, updated); err != nil {
        log.Warn("(G%d %s) memory put: %v", gid, pid, err)
    }

    return final
}

var loadKinds = NewKindFilter(simple.DeliverLoad, simple.DropLoad, simple.PickupLoad)

// loadPhase executes delivery, drop and pickup options as long as the
// best scoring one is feasible, valid and strictly positive.  Each
// success changes persistent state, so the snapshot is re-captured
// before the next round.
func (e *Engine) loadPhase(snap Snapshot, mem *simple.BotMemory, acc *accumulator) Snapshot {
    for i := 0; i < maxLoadActions; i++ {
        options := e.scorer.Score(
            e.gen.Generate(snap, loadKinds, mem), snap, snap.Bot.Config, mem)
        if len(options) == 0 {
            return snap
        }
        best := options[0]
        if !best.Feasible || best.Kind == simple.PassTurn || best.Score <= 0 {
            return snap
        }
        if v := e.val.Validate(best, snap); !v.Valid {
            e.debugf(snap.GameId, snap.Bot.PlayerId,
                "load option %s rejected: %s", best.Kind, v.Reason)
            return snap
        }
        r := e.exec.Execute(best, snap)
        if !r.Success {
            e.debugf(snap.GameId, snap.Bot.PlayerId,
                "load action %s failed: %s", best.Kind, r.Error)
            return snap
        }
        acc.absorb(r)
        fresh, err := CaptureSnapshot(e.store, e.grid, snap.GameId, snap.Bot.PlayerId)
        if err != nil {
            log.Error("(G%d %s) recapture: %v", snap.GameId, snap.Bot.PlayerId, err)
            return snap
        }
        snap = fresh
    }
    return snap
}

var moveKinds = NewKindFilter(simple.MoveTrain)

// movePhase makes at most one move.  A move that fails to validate or
// execute is not retried; the turn simply goes on without it.
func (e *Engine) movePhase(snap Snapshot, mem *simple.BotMemory, acc *accumulator) Snapshot {
    options := e.scorer.Score(
        e.gen.Generate(snap, moveKinds, mem), snap, snap.Bot.Config, mem)
    if len(options) == 0 {
        return snap
    }
    best := options[0]
    if best.Kind != simple.MoveTrain || !best.Feasible || best.Score <= 0 {
        return snap
    }
    if v := e.val.Validate(best, snap); !v.Valid {
        e.debugf(snap.GameId, snap.Bot.PlayerId, "move rejected: %s", v.Reason)
        return snap
    }
    r := e.exec.Execute(best, snap)
    if !r.Success {
        e.debugf(snap.GameId, snap.Bot.PlayerId, "move failed: %s", r.Error)
        return snap
    }
    acc.absorb(r)
    fresh, err := CaptureSnapshot(e.store, e.grid, snap.GameId, snap.Bot.PlayerId)
    if err != nil {
        log.Error("(G%d %s) recapture: %v", snap.GameId, snap.Bot.PlayerId, err)
        return snap
    }
    return fresh
}

var spendKinds = NewKindFilter(
    simple.BuildTrack, simple.UpgradeTrain, simple.DiscardHand, simple.PassTurn)

// spendPhase picks the turn's terminal action.  It walks the scored list
// top-down: options failing validation are skipped for free, executor
// failures consume one of the retry attempts, and an explicit pass is
// the floor under everything.  Returns the terminal result and the
// build-target city if the terminal action was a successful build.
func (e *Engine) spendPhase(snap Snapshot, mem *simple.BotMemory, acc *accumulator) (Result, string) {
    options := e.scorer.Score(
        e.gen.Generate(snap, spendKinds, mem), snap, snap.Bot.Config, mem)

    attempts := 0
    for _, opt := range options {
        if !opt.Feasible {
            continue
        }
        if opt.Kind == simple.PassTurn {
            break
        }
        if v := e.val.Validate(opt, snap); !v.Valid {
            e.debugf(snap.GameId, snap.Bot.PlayerId,
                "spend option %s rejected: %s", opt.Kind, v.Reason)
            continue
        }
        attempts++
        r := e.exec.Execute(opt, snap)
        if r.Success {
            if opt.Kind == simple.BuildTrack {
                return r, opt.TargetCity
            }
            return r, ""
        }
        e.debugf(snap.GameId, snap.Bot.PlayerId,
            "spend action %s failed (%d/%d): %s", opt.Kind, attempts, maxSpendAttempts, r.Error)
        if attempts >= maxSpendAttempts {
            break
        }
    }

    return e.exec.Execute(passOption("no spend action taken"), snap), ""
}

func (e *Engine) debugf(gid int, pid string, msg string, fargs ...interface{}) {
    args := append([]interface{}{gid, pid}, fargs...)
    log.Debug("(G%d %s) "+msg, args...)
}
