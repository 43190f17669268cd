package blackjack

import "slices"

// Phase is the stage a round is in.
type Phase int

const (
	AwaitingBet Phase = iota
	PlayerTurn
	DealerTurn
	RoundResolved
)

func (p Phase) String() string {
	switch p {
	case AwaitingBet:
		return "awaiting bet"
	case PlayerTurn:
		return "player turn"
	case DealerTurn:
		return "dealer turn"
	case RoundResolved:
		return "round resolved"
	}
	return "unknown"
}

// transitions lists every phase change a round may make.
var transitions = map[Phase][]Phase{
	AwaitingBet:   {PlayerTurn},
	PlayerTurn:    {DealerTurn, RoundResolved},
	DealerTurn:    {RoundResolved},
	RoundResolved: {AwaitingBet},
}

// CanTransition reports whether a round may move from p to next.
func (p Phase) CanTransition(next Phase) bool {
	return slices.Contains(transitions[p], next)
}

// Move is a player request.
type Move int

const (
	MoveBet Move = iota
	MoveHit
	MoveStand
	MovePlayAgain
	MoveBack
)

func (m Move) String() string {
	switch m {
	case MoveBet:
		return "place bet"
	case MoveHit:
		return "hit"
	case MoveStand:
		return "stand"
	case MovePlayAgain:
		return "play again"
	case MoveBack:
		return "go back"
	}
	return "unknown move"
}

// moves lists the requests each phase accepts. Back is accepted everywhere.
var moves = map[Phase][]Move{
	AwaitingBet:   {MoveBet, MoveBack},
	PlayerTurn:    {MoveHit, MoveStand, MoveBack},
	DealerTurn:    {MoveBack},
	RoundResolved: {MovePlayAgain, MoveBack},
}

// Allows reports whether the phase accepts m.
func (p Phase) Allows(m Move) bool {
	return slices.Contains(moves[p], m)
}

// Moves returns the requests the phase accepts.
func (p Phase) Moves() []Move {
	return slices.Clone(moves[p])
}

// Action is a move plus its argument.
type Action struct {
	Move   Move
	Amount int
}

// Bet is the action for placing a wager of amount coins.
func Bet(amount int) Action {
	return Action{Move: MoveBet, Amount: amount}
}

var (
	Hit       = Action{Move: MoveHit}
	Stand     = Action{Move: MoveStand}
	PlayAgain = Action{Move: MovePlayAgain}
	Back      = Action{Move: MoveBack}
)
