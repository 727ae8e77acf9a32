package config

// AnalysisConfig holds settings for batch position analysis.
type AnalysisConfig struct {
	// Workers is the number of analysis goroutines (0 = one per CPU)
	Workers int

	// BufferSize is the capacity of the work and result channels
	BufferSize int

	// ListMoves includes every legal move in the output
	ListMoves bool

	// OnlyOver restricts output to checkmates and stalemates
	OnlyOver bool
}

// NewAnalysisConfig creates an AnalysisConfig with default values.
func NewAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{
		BufferSize: 64,
	}
}
