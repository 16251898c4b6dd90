package simple

type BotArchetype string
const (
    BalancedBot BotArchetype = "balanced"
    AggressiveBot BotArchetype = "aggressive"
    CautiousBot BotArchetype = "cautious"
)

type BotConfig struct {
    Archetype BotArchetype
    Skill int // 1..3, reserved for future noise injection
}

var DefaultBotConfig = BotConfig{
    Archetype: BalancedBot,
    Skill: 2,
}
