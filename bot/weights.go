package bot

import (
    "local/eurorails/simple"
)

// Weights tune the scorer per archetype.  The invariants the scorer must
// hold (delivery pre-empts everything, infeasible is -Inf) do not depend
// on these numbers; they only shade preferences between legal options.
type Weights struct {
    // Delivery: DeliverBase + DeliverPayment * payment.
    DeliverBase float64
    DeliverPayment float64

    // Movement: payoff * MovePayoff / (1 + turnsAway), frontier paths
    // additionally * FrontierDiscount.
    MovePayoff float64
    FrontierDiscount float64

    // Build: chainScore * BuildChain + segments * BuildSegment.
    BuildChain float64
    BuildSegment float64

    // Pickup: payment * PickupPayment; unreachable destination multiplies
    // by PickupUnreachable (near zero, not exclusion).
    PickupPayment float64
    PickupUnreachable float64

    // Phase-aware upgrade/discard.
    UpgradeBase float64
    UpgradeEarly float64
    DiscardBase float64
    DiscardUrgent float64
}

// Upgrade is suppressed until the bot has delivered this often and built a
// network this big; before that the money is better spent on track.
const (
    minDeliveriesForUpgrade = 2
    minCitiesForUpgrade = 2
    maxConsecutiveDiscards = 2
)

var balancedWeights = Weights{
    DeliverBase: 50,
    DeliverPayment: 2,
    MovePayoff: 1.0,
    FrontierDiscount: 0.5,
    BuildChain: 3.0,
    BuildSegment: 0.5,
    PickupPayment: 0.6,
    PickupUnreachable: 0.02,
    UpgradeBase: 12,
    UpgradeEarly: 0.5,
    DiscardBase: 2,
    DiscardUrgent: 40,
}

var aggressiveWeights = Weights{
    DeliverBase: 50,
    DeliverPayment: 2,
    MovePayoff: 1.2,
    FrontierDiscount: 0.6,
    BuildChain: 4.0,
    BuildSegment: 0.8,
    PickupPayment: 0.8,
    PickupUnreachable: 0.02,
    UpgradeBase: 16,
    UpgradeEarly: 0.5,
    DiscardBase: 2,
    DiscardUrgent: 35,
}

var cautiousWeights = Weights{
    DeliverBase: 50,
    DeliverPayment: 2,
    MovePayoff: 0.9,
    FrontierDiscount: 0.4,
    BuildChain: 2.5,
    BuildSegment: 0.3,
    PickupPayment: 0.5,
    PickupUnreachable: 0.02,
    UpgradeBase: 8,
    UpgradeEarly: 0.3,
    DiscardBase: 2,
    DiscardUrgent: 45,
}

var archetypeWeights = map[simple.BotArchetype]Weights{
    simple.BalancedBot: balancedWeights,
    simple.AggressiveBot: aggressiveWeights,
    simple.CautiousBot: cautiousWeights,
}

func weightsFor(cfg *simple.BotConfig) Weights {
    if cfg == nil {
        return balancedWeights
    }
    if w, ok := archetypeWeights[cfg.Archetype]; ok {
        return w
    }
    return balancedWeights
}
