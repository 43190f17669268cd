package tui

import (
	"fmt"

	"casinonight/internal/blackjack"
	"casinonight/internal/lobby"

	"github.com/charmbracelet/bubbles/key"
)

// binding is a key and the session action it sends.
type binding struct {
	key    key.Binding
	action lobby.Action
}

var (
	quitKey = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))

	openBlackjack = binding{key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "blackjack")), lobby.Open(lobby.GameBlackjack)}
	openSlots     = binding{key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "slots")), lobby.Open(lobby.GameSlots)}
	leaveLobby    = binding{key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "go home")), lobby.Back}
	refill        = binding{key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refill")), lobby.Refill}

	accept  = binding{key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y", "sit down")), lobby.Accept}
	decline = binding{key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "not now")), lobby.Decline}

	hit       = binding{key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hit")), lobby.Hit}
	stand     = binding{key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stand")), lobby.Stand}
	playAgain = binding{key.NewBinding(key.WithKeys("p", "enter"), key.WithHelp("p", "play again")), lobby.PlayAgain}
	pull      = binding{key.NewBinding(key.WithKeys("p", "enter"), key.WithHelp("p", "pull")), lobby.Pull}
	leave     = binding{key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "leave")), lobby.Back}
)

// betBindings numbers the affordable bets from 1.
func betBindings(bets []int) []binding {
	var out []binding
	for i, bet := range bets {
		if i == 9 {
			break
		}
		k := fmt.Sprint(i + 1)
		out = append(out, binding{
			key:    key.NewBinding(key.WithKeys(k), key.WithHelp(k, fmt.Sprintf("bet %d", bet))),
			action: lobby.Bet(bet),
		})
	}
	return out
}

// bindings returns the keys live on the current screen.
func bindings(v lobby.View) []binding {
	switch v.Screen {
	case lobby.ScreenLobby:
		if v.Broke {
			return []binding{openBlackjack, openSlots, refill, leaveLobby}
		}
		return []binding{openBlackjack, openSlots, leaveLobby}
	case lobby.ScreenBlackjackPrompt, lobby.ScreenSlotsPrompt:
		return []binding{accept, decline}
	case lobby.ScreenBlackjack:
		if v.Ended || v.Blackjack == nil {
			return []binding{leave}
		}
		switch v.Blackjack.Phase {
		case blackjack.AwaitingBet:
			return append(betBindings(v.Blackjack.Bets), leave)
		case blackjack.PlayerTurn:
			return []binding{hit, stand, leave}
		case blackjack.RoundResolved:
			return []binding{playAgain, leave}
		}
		return []binding{leave}
	case lobby.ScreenSlots:
		if v.Ended || v.Slots == nil {
			return []binding{leave}
		}
		return []binding{pull, leave}
	}
	return nil
}

func helpKeys(bs []binding) []key.Binding {
	keys := make([]key.Binding, 0, len(bs)+1)
	for _, b := range bs {
		keys = append(keys, b.key)
	}
	return append(keys, quitKey)
}
