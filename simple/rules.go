package simple

// Game constants the pipeline validates against, in M ECU where money.
const (
    // Most track a player may spend on in one turn.
    MaxBuildPerTurn = 20

    // Upgrade or crossgrade cost.
    UpgradeCost = 20

    // Flat per-turn fee when a movement path uses another player's track.
    TrackUsageFee = 4

    // Demand cards held at once.
    HandSize = 3

    // Win condition inputs, checked by the host game loop.
    WinMoney = 250
    WinMajorCities = 7

    StartingMoney = 50
)
