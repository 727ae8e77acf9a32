package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/hashing"
)

// DrawReport contains the draw conditions present in a position. It is
// informational and never changes the game status.
type DrawReport struct {
	// HalfmoveClock is the number of half-moves since the last capture or
	// pawn move.
	HalfmoveClock int

	// FiftyMove is true once 50 moves (100 half-moves) have been made
	// without a pawn move or capture.
	FiftyMove bool

	// SeventyFiveMove is true once 75 moves (150 half-moves) have been made
	// without a pawn move or capture.
	SeventyFiveMove bool

	// Repetitions counts how often the current position has occurred,
	// including now.
	Repetitions int

	// Threefold is true if the current position occurred 3 or more times.
	Threefold bool

	// Fivefold is true if the current position occurred 5 or more times.
	Fivefold bool

	// InsufficientMaterial is true if neither side has mating material.
	InsufficientMaterial bool
}

// Claimable returns true if either side may claim a draw.
func (r DrawReport) Claimable() bool {
	return r.FiftyMove || r.Threefold
}

// Automatic returns true if the game is drawn without a claim.
func (r DrawReport) Automatic() bool {
	return r.SeventyFiveMove || r.Fivefold || r.InsufficientMaterial
}

// DrawRules inspects the position for draw conditions. Repetition is found
// by undoing the history on a copy of the board and keying every earlier
// position that had the same side to move.
func DrawRules(board *chess.Board, active chess.Colour, history *chess.History) DrawReport {
	report := DrawReport{
		HalfmoveClock:        history.HalfmoveClock(),
		InsufficientMaterial: HasInsufficientMaterial(board),
	}
	report.FiftyMove = report.HalfmoveClock >= 100
	report.SeventyFiveMove = report.HalfmoveClock >= 150

	report.Repetitions = countRepetitions(board, active, history)
	report.Threefold = report.Repetitions >= 3
	report.Fivefold = report.Repetitions >= 5

	return report
}

// RepetitionPosition returns the parts of the position that repetition
// compares. The en-passant target only counts when it can be taken.
func RepetitionPosition(board *chess.Board, active chess.Colour, history *chess.History) hashing.Position {
	return hashing.Position{
		Board:     board,
		Active:    active,
		Castling:  CastlingRights(board),
		EnPassant: capturableEnPassant(board, active, history),
	}
}

// PositionKey returns the repetition key of the current position.
func PositionKey(board *chess.Board, active chess.Colour, history *chess.History) uint64 {
	return hashing.Key(RepetitionPosition(board, active, history))
}

// countRepetitions replays the history backwards. Positions before a
// capture or pawn move cannot recur, so the scan stops there.
func countRepetitions(board *chess.Board, active chess.Colour, history *chess.History) int {
	counter := hashing.NewRepetitionCounter()
	current := PositionKey(board, active, history)
	counter.Add(current)

	if history.Len() == 0 {
		return 1
	}

	probe := board.Clone()
	side := active
	for i := history.Len() - 1; i >= 0; i-- {
		rec := history.Records[i]
		Undo(probe, rec)
		side = side.Opposite()
		if rec.Capture || rec.IsPawnMove() {
			break
		}
		if side != active {
			continue
		}
		prefix := &chess.History{Origin: history.Origin, Records: history.Records[:i]}
		if key := PositionKey(probe, side, prefix); key == current {
			counter.Add(key)
		}
	}
	return counter.Count(current)
}

// capturableEnPassant returns the en-passant target only when a pawn of
// the side to move stands ready to take it.
func capturableEnPassant(board *chess.Board, active chess.Colour, history *chess.History) *chess.Square {
	ep, ok := history.EnPassant()
	if !ok || ep.Colour == active {
		return nil
	}
	for _, df := range castleSides {
		sq := chess.Sq(ep.Victim.Rank, ep.Victim.File+df)
		if sq.Valid() && board.Get(sq).Is(active, chess.Pawn) {
			target := ep.Target
			return &target
		}
	}
	return nil
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.Kind
	var whiteBishopOnLight, blackBishopOnLight bool

	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(chess.Sq(rank, file))
			if piece.IsEmpty() || piece.Kind == chess.King {
				continue
			}

			// Any pawn, rook, or queen means sufficient material
			if piece.Kind == chess.Pawn || piece.Kind == chess.Rook || piece.Kind == chess.Queen {
				return false
			}

			if piece.Colour == chess.White {
				whitePieces = append(whitePieces, piece.Kind)
				if piece.Kind == chess.Bishop {
					whiteBishopOnLight = isLightSquare(rank, file)
				}
			} else {
				blackPieces = append(blackPieces, piece.Kind)
				if piece.Kind == chess.Bishop {
					blackBishopOnLight = isLightSquare(rank, file)
				}
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 {
		if whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
			return whiteBishopOnLight == blackBishopOnLight
		}
	}

	return false
}

// isLightSquare returns true if the given square is a light square.
// a8 (row 0, file 0) is light.
func isLightSquare(rank, file int) bool {
	return (rank+file)%2 == 0
}

// HasStandardMaterial checks if the board carries the full starting army
// for both sides.
func HasStandardMaterial(board *chess.Board) bool {
	expected := map[chess.Kind]int{
		chess.Pawn:   8,
		chess.Rook:   2,
		chess.Knight: 2,
		chess.Bishop: 2,
		chess.Queen:  1,
		chess.King:   1,
	}

	var actual [2]map[chess.Kind]int
	for i := range actual {
		actual[i] = make(map[chess.Kind]int)
	}
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(chess.Sq(rank, file))
			if !piece.IsEmpty() {
				actual[piece.Colour][piece.Kind]++
			}
		}
	}

	for _, counts := range actual {
		for kind, n := range expected {
			if counts[kind] != n {
				return false
			}
		}
	}
	return true
}
