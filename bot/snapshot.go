package bot

import (
    "golang.org/x/xerrors"
    "local/eurorails/database"
    "local/eurorails/graph"
    "local/eurorails/grid"
    "local/eurorails/simple"
)

// Store is the read side of the persistent layer, narrowed to what one
// turn needs so tests can fake it.  *database.DB satisfies it.
type Store interface {
    GetGame(gid int) (database.Game, error)
    GetPlayer(gid int, pid string) (database.Player, error)
    GetAllTrack(gid int) (map[string][]simple.TrackSegment, error)
    GetCityLoads(gid int) (map[string][]simple.Load, error)
    GetDemandCard(id int) (*simple.DemandCard, error)
}

type ResolvedCard struct {
    CardId int
    Demands []simple.Demand
}

type BotState struct {
    PlayerId string
    Money int
    Position *simple.Coord
    Track []simple.TrackSegment
    Loads []simple.Load
    CardIds []int
    Cards []ResolvedCard
    Train simple.TrainType
    Config *simple.BotConfig
    ConnectedMajorCities int
    FerryHalfSpeed bool
}

// Snapshot is the frozen view of everything one turn reads.  Every slice
// and map is copied at capture, so concurrent turns in other games (or
// other players' writes) can never show through mid-pipeline.  Components
// must treat it as read-only; phase transitions capture a fresh one.
type Snapshot struct {
    GameId int
    Status simple.GameStatus
    Turn int
    Bot BotState
    AllTrack map[string][]simple.TrackSegment
    CityLoads map[string][]simple.Load
}

func CaptureSnapshot(store Store, g *grid.Provider, gid int, pid string) (Snapshot, error) {
    game, err := store.GetGame(gid)
    if err != nil {
        return Snapshot{}, xerrors.Errorf("capture game: %w", err)
    }
    player, err := store.GetPlayer(gid, pid)
    if err != nil {
        return Snapshot{}, xerrors.Errorf("capture player: %w", err)
    }
    allTrack, err := store.GetAllTrack(gid)
    if err != nil {
        return Snapshot{}, xerrors.Errorf("capture track: %w", err)
    }
    cityLoads, err := store.GetCityLoads(gid)
    if err != nil {
        return Snapshot{}, xerrors.Errorf("capture city loads: %w", err)
    }

    cardIds := player.HandIds()
    cards := []ResolvedCard{}
    for _, id := range cardIds {
        card, err := store.GetDemandCard(id)
        if err != nil {
            return Snapshot{}, xerrors.Errorf("capture card %d: %w", id, err)
        }
        if card == nil {
            continue
        }
        cards = append(cards, ResolvedCard{
            CardId: card.Id,
            Demands: append([]simple.Demand{}, card.Demands...),
        })
    }

    botTrack := copySegments(allTrack[pid])
    snap := Snapshot{
        GameId: gid,
        Status: simple.GameStatus(game.Status),
        Turn: game.Turn,
        Bot: BotState{
            PlayerId: pid,
            Money: player.Money,
            Position: copyCoord(player.Position()),
            Track: botTrack,
            Loads: append([]simple.Load{}, player.LoadList()...),
            CardIds: cardIds,
            Cards: cards,
            Train: player.TrainType(),
            Config: player.BotConfig(),
            ConnectedMajorCities: graph.ConnectedMajorCityCount(
                botTrack, g.MajorCities(), g.Ferries()),
            FerryHalfSpeed: player.FerrySlow,
        },
        AllTrack: copyTrackMap(allTrack),
        CityLoads: copyLoadMap(cityLoads),
    }
    return snap, nil
}

func copyCoord(c *simple.Coord) *simple.Coord {
    if c == nil {
        return nil
    }
    v := *c
    return &v
}

func copySegments(segments []simple.TrackSegment) []simple.TrackSegment {
    return append([]simple.TrackSegment{}, segments...)
}

func copyTrackMap(m map[string][]simple.TrackSegment) map[string][]simple.TrackSegment {
    r := make(map[string][]simple.TrackSegment, len(m))
    for k, v := range m {
        r[k] = copySegments(v)
    }
    return r
}

func copyLoadMap(m map[string][]simple.Load) map[string][]simple.Load {
    r := make(map[string][]simple.Load, len(m))
    for k, v := range m {
        r[k] = append([]simple.Load{}, v...)
    }
    return r
}

// Speed for the coming move, halved the turn after a ferry crossing.
func (s Snapshot) moveAllowance() int {
    speed := s.Bot.Train.Speed()
    if s.Bot.FerryHalfSpeed {
        speed /= 2
    }
    return speed
}

func (s Snapshot) carries(load simple.Load) bool {
    for _, l := range s.Bot.Loads {
        if l == load {
            return true
        }
    }
    return false
}

func (s Snapshot) capacityLeft() int {
    return s.Bot.Train.Capacity() - len(s.Bot.Loads)
}

func (s Snapshot) holdsCard(id int) bool {
    for _, c := range s.Bot.CardIds {
        if c == id {
            return true
        }
    }
    return false
}
