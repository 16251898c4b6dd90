package simple

type GameStatus string
const (
    StatusInitialBuild GameStatus = "initialBuild"
    StatusActive GameStatus = "active"
    StatusComplete GameStatus = "complete"
    StatusAbandoned GameStatus = "abandoned"
)

func (s GameStatus) Playable() bool {
    return s == StatusInitialBuild || s == StatusActive
}
