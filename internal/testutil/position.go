package testutil

import "github.com/lgbarn/chess-engine-go/internal/chess"

// Position is a named FEN with the status of the side to move and the
// number of distinct from-to moves it has.
type Position struct {
	Name   string
	FEN    string
	Status chess.Status
	Moves  int
}

// Frequently used positions.
const (
	InitialFEN   = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	FoolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	StalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
	BareKingsFEN = "4k3/8/8/8/8/8/8/4K3 w - - 0 1"
)

// Positions covers castling, en passant, promotion, pins, check and both
// game-ending statuses.
var Positions = []Position{
	{Name: "Initial", FEN: InitialFEN, Status: chess.Normal, Moves: 20},
	{Name: "Kiwipete", FEN: "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", Status: chess.Normal, Moves: 48},
	{Name: "Endgame", FEN: "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", Status: chess.Normal, Moves: 14},
	{Name: "Promotion", FEN: "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", Status: chess.Check, Moves: 6},
	{Name: "EnPassant", FEN: "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3", Status: chess.Normal, Moves: 21},
	{Name: "FoolsMate", FEN: FoolsMateFEN, Status: chess.Checkmate},
	{Name: "SmotheredMate", FEN: "6rk/5Npp/8/8/8/8/8/6K1 b - - 0 1", Status: chess.Checkmate},
	{Name: "Stalemate", FEN: StalemateFEN, Status: chess.Stalemate},
}

// PositionNamed returns the fixture with the given name. It panics if
// there is none.
func PositionNamed(name string) Position {
	for _, p := range Positions {
		if p.Name == name {
			return p
		}
	}
	panic("testutil: no position named " + name)
}
