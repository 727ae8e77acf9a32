package worker

import (
	"github.com/lgbarn/chess-engine-go/internal/hashing"
	"github.com/lgbarn/chess-engine-go/internal/session"
)

// Analyse returns a ProcessFunc that sets up a fresh session for each
// item and reports its status, legal moves and draw conditions. When
// detector is non-nil, positions already seen are flagged as duplicates
// and not analysed further.
func Analyse(detector *hashing.ThreadSafeDetector) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		result := ProcessResult{FEN: item.FEN, Index: item.Index}

		g, err := session.FromFEN(item.FEN)
		if err != nil {
			result.Error = err
			return result
		}

		if detector != nil && detector.CheckAndAdd(g.Position()) {
			result.Duplicate = true
			return result
		}

		if result.Status, err = g.Status(); err != nil {
			result.Error = err
			return result
		}
		if result.LegalMoves, err = g.LegalMoves(); err != nil {
			result.Error = err
			return result
		}
		result.Draws = g.Draws()
		return result
	}
}
