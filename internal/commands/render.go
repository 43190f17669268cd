package commands

import (
	"fmt"
	"strconv"
	"strings"

	"casinonight/internal/blackjack"
	"casinonight/internal/cards"
	"casinonight/internal/lobby"
	"casinonight/internal/slots"

	"github.com/bwmarrin/discordgo"
)

const (
	idPrefix = "casino_"

	colorLobby = 0x5865F2
	colorTable = 0x1F8B4C
	colorWin   = 0x00FF00
	colorLose  = 0xFF0000
	colorPush  = 0xFFD700
)

// customID encodes a lobby action into a button custom ID.
func customID(a lobby.Action) string {
	switch a.Kind {
	case lobby.KindOpen:
		return idPrefix + "open:" + string(a.Game)
	case lobby.KindBet:
		return idPrefix + "bet:" + strconv.Itoa(a.Amount)
	case lobby.KindPlayAgain:
		return idPrefix + "again"
	}
	return idPrefix + a.Kind.String()
}

// parseCustomID is the inverse of customID.
func parseCustomID(id string) (lobby.Action, error) {
	rest, ok := strings.CutPrefix(id, idPrefix)
	if !ok {
		return lobby.Action{}, fmt.Errorf("not a casino button: %q", id)
	}
	name, arg, _ := strings.Cut(rest, ":")

	switch name {
	case "open":
		return lobby.Open(lobby.Game(arg)), nil
	case "bet":
		amount, err := strconv.Atoi(arg)
		if err != nil {
			return lobby.Action{}, fmt.Errorf("bad bet in %q: %w", id, err)
		}
		return lobby.Bet(amount), nil
	case "accept":
		return lobby.Accept, nil
	case "decline":
		return lobby.Decline, nil
	case "back":
		return lobby.Back, nil
	case "hit":
		return lobby.Hit, nil
	case "stand":
		return lobby.Stand, nil
	case "again":
		return lobby.PlayAgain, nil
	case "pull":
		return lobby.Pull, nil
	case "refill":
		return lobby.Refill, nil
	}
	return lobby.Action{}, fmt.Errorf("unknown casino button: %q", id)
}

func button(label string, style discordgo.ButtonStyle, a lobby.Action) discordgo.Button {
	return discordgo.Button{Label: label, Style: style, CustomID: customID(a)}
}

// rows packs buttons into action rows of at most five.
func rows(buttons ...discordgo.Button) []discordgo.MessageComponent {
	var out []discordgo.MessageComponent
	for len(buttons) > 0 {
		n := min(len(buttons), 5)
		row := discordgo.ActionsRow{}
		for _, b := range buttons[:n] {
			row.Components = append(row.Components, b)
		}
		out = append(out, row)
		buttons = buttons[n:]
	}
	return out
}

func formatHand(hand cards.Hand, hidden int) string {
	if len(hand) == 0 && hidden == 0 {
		return "None"
	}
	var s []string
	for _, c := range hand {
		s = append(s, "`"+c.String()+"`")
	}
	for range hidden {
		s = append(s, "`??`")
	}
	return strings.Join(s, " ")
}

func formatReels(reels []slots.Symbol) string {
	if len(reels) == 0 {
		return "`-` `-` `-`"
	}
	var s []string
	for _, r := range reels {
		s = append(s, "`"+r.Name+"`")
	}
	return strings.Join(s, " | ")
}

// render turns a session view into the message the player sees.
func render(v lobby.View) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	embed := &discordgo.MessageEmbed{
		Description: v.Message,
		Color:       colorLobby,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Balance", Value: fmt.Sprintf("💰 %d coins", v.Balance), Inline: true},
		},
	}

	switch v.Screen {
	case lobby.ScreenBlackjackPrompt, lobby.ScreenSlotsPrompt:
		embed.Title = "🎰 Casino Night"
		return embed, rows(
			button("Sit down", discordgo.SuccessButton, lobby.Accept),
			button("Not now", discordgo.SecondaryButton, lobby.Decline),
		)
	case lobby.ScreenBlackjack:
		if v.Blackjack != nil {
			return renderBlackjack(embed, v)
		}
	case lobby.ScreenSlots:
		if v.Slots != nil {
			return renderSlots(embed, v)
		}
	}

	embed.Title = "🎰 Casino Night"
	buttons := []discordgo.Button{
		button("Blackjack", discordgo.PrimaryButton, lobby.Open(lobby.GameBlackjack)),
		button("Slots", discordgo.PrimaryButton, lobby.Open(lobby.GameSlots)),
	}
	if v.Broke {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "Refill or use /coins refill to get back in the game."}
		buttons = append(buttons, button("Refill", discordgo.SuccessButton, lobby.Refill))
	}
	return embed, rows(buttons...)
}

func renderBlackjack(embed *discordgo.MessageEmbed, v lobby.View) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	bv := v.Blackjack
	embed.Title = "🃏 Blackjack"
	embed.Color = colorTable
	switch bv.Outcome {
	case blackjack.OutcomeWin:
		embed.Color = colorWin
	case blackjack.OutcomeLose:
		embed.Color = colorLose
	case blackjack.OutcomePush:
		embed.Color = colorPush
	}

	if bv.Bet > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Bet", Value: strconv.Itoa(bv.Bet), Inline: true})
	}
	if len(bv.Player) > 0 {
		total := strconv.Itoa(bv.PlayerTotal)
		if bv.PlayerSoft {
			total = "soft " + total
		}
		embed.Fields = append(embed.Fields,
			&discordgo.MessageEmbedField{Name: fmt.Sprintf("Your Hand (%s)", total), Value: formatHand(bv.Player, 0)},
			&discordgo.MessageEmbedField{Name: fmt.Sprintf("Dealer (%d)", bv.DealerTotal), Value: formatHand(bv.Dealer, bv.DealerHidden)},
		)
	}

	back := button("Leave table", discordgo.SecondaryButton, lobby.Back)
	if v.Ended {
		return embed, rows(back)
	}

	var buttons []discordgo.Button
	switch bv.Phase {
	case blackjack.AwaitingBet:
		for _, bet := range bv.Bets {
			buttons = append(buttons, button(fmt.Sprintf("Bet %d", bet), discordgo.PrimaryButton, lobby.Bet(bet)))
		}
	case blackjack.PlayerTurn:
		buttons = append(buttons,
			button("Hit", discordgo.PrimaryButton, lobby.Hit),
			button("Stand", discordgo.SecondaryButton, lobby.Stand),
		)
	case blackjack.RoundResolved:
		buttons = append(buttons, button("Play Again", discordgo.SuccessButton, lobby.PlayAgain))
	}
	return embed, rows(append(buttons, back)...)
}

func renderSlots(embed *discordgo.MessageEmbed, v lobby.View) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	sv := v.Slots
	embed.Title = "🎰 Slots"
	embed.Color = colorTable
	if sv.Win > 0 {
		embed.Color = colorWin
	}

	var legend []string
	for _, s := range sv.Legend {
		legend = append(legend, fmt.Sprintf("`%s` x3 pays %d", s.Name, s.Payout))
	}
	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{Name: "Reels", Value: formatReels(sv.Reels)},
		&discordgo.MessageEmbedField{Name: "Payouts", Value: strings.Join(legend, "\n")},
	)
	embed.Footer = &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Each pull costs %d coins.", sv.Cost)}

	back := button("Leave machine", discordgo.SecondaryButton, lobby.Back)
	if v.Ended {
		return embed, rows(back)
	}
	pull := button("Pull", discordgo.SuccessButton, lobby.Pull)
	pull.Disabled = !sv.CanPull
	return embed, rows(pull, back)
}

// isJackpot reports whether a pull paid the catalog's top prize.
func isJackpot(sv *slots.View) bool {
	if sv == nil || sv.Win == 0 {
		return false
	}
	top := 0
	for _, s := range sv.Legend {
		top = max(top, s.Payout)
	}
	return sv.Win == top
}
