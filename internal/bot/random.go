package bot

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	notnil "github.com/notnil/chess"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Random is a stand-in collaborator that plays a uniformly random legal
// move. It uses github.com/notnil/chess to read the FEN and list moves,
// so it shares no code with the engine it plays against. Depth is ignored.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandom creates a Random searcher. The same seed yields the same
// sequence of choices.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// Search picks a legal move for the side to move in fen.
func (r *Random) Search(ctx context.Context, fen string, depth int) (Suggestion, error) {
	if err := ctx.Err(); err != nil {
		return Suggestion{}, err
	}

	opt, err := notnil.FEN(fen)
	if err != nil {
		return Suggestion{}, fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
	}
	moves := notnil.NewGame(opt).ValidMoves()
	if len(moves) == 0 {
		return Suggestion{}, fmt.Errorf("search %q: %w", fen, errors.ErrGameOver)
	}

	r.mu.Lock()
	m := moves[r.rng.Intn(len(moves))]
	r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return Suggestion{}, err
	}
	return Suggestion{
		From:      m.S1().String(),
		To:        m.S2().String(),
		Promotion: promotionLetter(m.Promo()),
	}, nil
}

// promotionLetter maps a notnil piece type to its lowercase letter.
func promotionLetter(pt notnil.PieceType) byte {
	switch pt {
	case notnil.Queen:
		return 'q'
	case notnil.Rook:
		return 'r'
	case notnil.Bishop:
		return 'b'
	case notnil.Knight:
		return 'n'
	default:
		return 0
	}
}
