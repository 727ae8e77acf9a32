package config

// BotConfig holds settings for the move-search collaborator.
type BotConfig struct {
	// Depth is passed to the searcher on every request
	Depth int

	// Seed seeds the random searcher
	Seed int64

	// Plies caps a self-play game (0 = play until the game is over)
	Plies int
}

// NewBotConfig creates a BotConfig with default values.
func NewBotConfig() *BotConfig {
	return &BotConfig{
		Depth: 1,
		Seed:  1,
		Plies: 200,
	}
}
