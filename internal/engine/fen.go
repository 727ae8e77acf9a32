package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Encode converts a position to a FEN string. Castling rights, the
// en-passant target and both clocks are derived from the board's moved
// flags and the history rather than stored separately.
func Encode(board *chess.Board, active chess.Colour, history *chess.History) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	sb.WriteByte(active.Letter())
	sb.WriteByte(' ')
	sb.WriteString(CastlingRights(board).String())
	sb.WriteByte(' ')
	writeEnPassant(&sb, history)
	fmt.Fprintf(&sb, " %d %d", history.HalfmoveClock(), history.FullmoveNumber())

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := 0; rank < chess.BoardSize; rank++ {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(chess.Sq(rank, file))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, history *chess.History) {
	if ep, ok := history.EnPassant(); ok {
		sb.WriteString(ep.Target.String())
		return
	}
	sb.WriteByte('-')
}

// Setup is a decoded FEN position ready to start a game from.
type Setup struct {
	Board   *chess.Board
	Active  chess.Colour
	History *chess.History
}

// Decode parses a FEN string. Piece moved flags are inferred: kings and
// rooks keep HasMoved false only where a castling right needs them, and
// pawns only on their starting row. Missing trailing fields take their
// defaults.
func Decode(fen string) (*Setup, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, &errors.PositionError{Err: errors.ErrInvalidFEN, Field: "placement"}
	}

	setup := &Setup{
		Board:   chess.NewBoard(),
		Active:  chess.White,
		History: chess.NewHistory(),
	}

	if err := parsePiecePositions(setup.Board, parts[0]); err != nil {
		return nil, &errors.PositionError{Err: err, FEN: fen, Field: "placement"}
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if _, err := FindKing(setup.Board, colour); err != nil {
			return nil, &errors.PositionError{Err: fmt.Errorf("%w: %w", err, errors.ErrInvalidFEN), FEN: fen, Field: "placement"}
		}
	}

	if len(parts) > 1 {
		switch parts[1] {
		case "w":
			setup.Active = chess.White
		case "b":
			setup.Active = chess.Black
		default:
			return nil, &errors.PositionError{Err: errors.ErrInvalidFEN, FEN: fen, Field: parts[1]}
		}
	}

	rights := chess.NoCastling
	if len(parts) > 2 {
		var err error
		if rights, err = parseCastlingRights(parts[2]); err != nil {
			return nil, &errors.PositionError{Err: err, FEN: fen, Field: parts[2]}
		}
	}
	inferMovedFlags(setup.Board, rights)

	if len(parts) > 3 && parts[3] != "-" {
		ep, err := parseEnPassant(setup.Board, parts[3])
		if err != nil {
			return nil, &errors.PositionError{Err: err, FEN: fen, Field: parts[3]}
		}
		setup.History.Origin.EnPassant = ep
	}

	fullmove := 1
	for i, dst := range []*int{&setup.History.Origin.HalfmoveClock, &fullmove} {
		if len(parts) <= 4+i {
			break
		}
		n, err := strconv.Atoi(parts[4+i])
		if err != nil || n < 0 {
			return nil, &errors.PositionError{Err: errors.ErrInvalidFEN, FEN: fen, Field: parts[4+i]}
		}
		*dst = n
	}
	if fullmove < 1 {
		fullmove = 1
	}
	setup.History.Origin.Ply = 2 * (fullmove - 1)
	if setup.Active == chess.Black {
		setup.History.Origin.Ply++
	}

	return setup, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	rows := strings.Split(positions, "/")
	if len(rows) != chess.BoardSize {
		return fmt.Errorf("%d rows: %w", len(rows), errors.ErrInvalidFEN)
	}

	for rank, row := range rows {
		file := 0
		for i := 0; i < len(row); i++ {
			c := row[i]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			kind, ok := chess.KindFromLetter(c)
			if !ok {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if file >= chess.BoardSize {
				return fmt.Errorf("row %d too long: %w", rank+1, errors.ErrInvalidFEN)
			}
			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			board.Set(chess.Sq(rank, file), chess.Piece{Colour: colour, Kind: kind, HasMoved: true})
			file++
		}
		if file != chess.BoardSize {
			return fmt.Errorf("row %d has %d squares: %w", rank+1, file, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(field string) (chess.CastlingRights, error) {
	rights := chess.NoCastling
	if field == "-" {
		return rights, nil
	}
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			rights |= chess.WhiteKingside
		case 'Q':
			rights |= chess.WhiteQueenside
		case 'k':
			rights |= chess.BlackKingside
		case 'q':
			rights |= chess.BlackQueenside
		default:
			return rights, fmt.Errorf("castling letter %q: %w", field[i], errors.ErrInvalidFEN)
		}
	}
	return rights, nil
}

// inferMovedFlags clears HasMoved for pieces the position treats as unmoved.
func inferMovedFlags(board *chess.Board, rights chess.CastlingRights) {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Sq(colour.PawnRow(), file)
			if p := board.Get(sq); p.Is(colour, chess.Pawn) {
				p.HasMoved = false
				board.Set(sq, p)
			}
		}

		kingHome := chess.KingHome(colour)
		king := board.Get(kingHome)
		if !king.Is(colour, chess.King) {
			continue
		}
		for _, kingside := range []bool{true, false} {
			if !rights.Has(chess.CastlingRight(colour, kingside)) {
				continue
			}
			rookHome := chess.RookHome(colour, kingside)
			rook := board.Get(rookHome)
			if !rook.Is(colour, chess.Rook) {
				continue
			}
			rook.HasMoved = false
			board.Set(rookHome, rook)
			king.HasMoved = false
		}
		board.Set(kingHome, king)
	}

	// Pieces that never affect a rule keep their starting look.
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			p := &board.Cells[rank][file]
			switch p.Kind {
			case chess.Knight, chess.Bishop, chess.Queen:
				p.HasMoved = false
			}
		}
	}
}

// parseEnPassant parses the en passant target square field. The pawn that
// made the double step must stand just beyond the target.
func parseEnPassant(board *chess.Board, field string) (*chess.EnPassant, error) {
	target, err := chess.ParseSquare(field)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
	}

	var colour chess.Colour
	switch target.Rank {
	case chess.White.PawnRow() + chess.White.Forward():
		colour = chess.White
	case chess.Black.PawnRow() + chess.Black.Forward():
		colour = chess.Black
	default:
		return nil, fmt.Errorf("en passant square %s: %w", field, errors.ErrInvalidFEN)
	}

	victim := chess.Sq(target.Rank+colour.Forward(), target.File)
	if !board.Get(victim).Is(colour, chess.Pawn) {
		return nil, fmt.Errorf("no pawn on %s: %w", victim, errors.ErrInvalidFEN)
	}
	return &chess.EnPassant{Target: target, Victim: victim, Colour: colour}, nil
}

// NewInitialSetup returns the standard starting position.
func NewInitialSetup() *Setup {
	return &Setup{
		Board:   chess.NewInitialBoard(),
		Active:  chess.White,
		History: chess.NewHistory(),
	}
}
