package lobby

import "fmt"

// Screen is what the player is looking at.
type Screen int

const (
	ScreenLobby Screen = iota
	ScreenBlackjackPrompt
	ScreenBlackjack
	ScreenSlotsPrompt
	ScreenSlots
)

func (s Screen) String() string {
	switch s {
	case ScreenLobby:
		return "lobby"
	case ScreenBlackjackPrompt:
		return "blackjack prompt"
	case ScreenBlackjack:
		return "blackjack"
	case ScreenSlotsPrompt:
		return "slots prompt"
	case ScreenSlots:
		return "slots"
	}
	return "unknown screen"
}

// Game is a destination reachable from the lobby.
type Game string

const (
	GameBlackjack Game = "blackjack"
	GameSlots     Game = "slots"
)

// Kind is the type of request a surface forwards to a session.
type Kind int

const (
	KindOpen Kind = iota
	KindAccept
	KindDecline
	KindBack
	KindBet
	KindHit
	KindStand
	KindPlayAgain
	KindPull
	KindRefill
)

var kindNames = map[Kind]string{
	KindOpen:      "open",
	KindAccept:    "accept",
	KindDecline:   "decline",
	KindBack:      "back",
	KindBet:       "bet",
	KindHit:       "hit",
	KindStand:     "stand",
	KindPlayAgain: "play again",
	KindPull:      "pull",
	KindRefill:    "refill",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Action is one input from a surface.
type Action struct {
	Kind   Kind
	Game   Game
	Amount int
}

func (a Action) String() string {
	switch a.Kind {
	case KindOpen:
		return fmt.Sprintf("open %s", a.Game)
	case KindBet:
		return fmt.Sprintf("bet %d", a.Amount)
	}
	return a.Kind.String()
}

// Open asks to walk up to a game.
func Open(g Game) Action {
	return Action{Kind: KindOpen, Game: g}
}

// Bet places a blackjack wager.
func Bet(amount int) Action {
	return Action{Kind: KindBet, Amount: amount}
}

var (
	Accept    = Action{Kind: KindAccept}
	Decline   = Action{Kind: KindDecline}
	Back      = Action{Kind: KindBack}
	Hit       = Action{Kind: KindHit}
	Stand     = Action{Kind: KindStand}
	PlayAgain = Action{Kind: KindPlayAgain}
	Pull      = Action{Kind: KindPull}
	Refill    = Action{Kind: KindRefill}
)
