package commands

import (
	"fmt"
	"strings"

	"casinonight/internal/lobby"

	"github.com/bwmarrin/discordgo"
)

const historyLimit = 10

var EconomyCommands = []*discordgo.ApplicationCommand{
	{
		Name:        "coins",
		Description: "Casino coin commands",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "balance",
				Description: "Check your coins",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
			},
			{
				Name:        "history",
				Description: "Show your recent plays",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
			},
			{
				Name:        "refill",
				Description: "Get a fresh stack once you are out of coins",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
			},
		},
	},
}

func (h *Handler) handleCoinsCommand(s *discordgo.Session, i *discordgo.InteractionCreate, user *discordgo.User, data discordgo.ApplicationCommandInteractionData) {
	if len(data.Options) == 0 {
		// Default to balance
		h.handleBalance(s, i, user)
		return
	}

	switch data.Options[0].Name {
	case "balance":
		h.handleBalance(s, i, user)
	case "history":
		h.handleHistory(s, i, user)
	case "refill":
		h.handleRefill(s, i, user)
	}
}

func (h *Handler) handleBalance(s *discordgo.Session, i *discordgo.InteractionCreate, user *discordgo.User) {
	bal, err := h.Balance(user.ID)
	if err != nil {
		h.logger.Error("Failed to fetch balance", "user_id", user.ID, "error", err)
		h.respondError(s, i, "Failed to fetch balance.")
		return
	}
	h.respondSuccess(s, i, fmt.Sprintf("💰 **%s** has **%d** coins", user.Username, bal))
}

func (h *Handler) handleHistory(s *discordgo.Session, i *discordgo.InteractionCreate, user *discordgo.User) {
	embed, err := h.historyEmbed(user)
	if err != nil {
		h.logger.Error("Failed to fetch history", "user_id", user.ID, "error", err)
		h.respondError(s, i, "Failed to fetch history.")
		return
	}
	h.respondEmbed(s, i, embed)
}

func (h *Handler) handleRefill(s *discordgo.Session, i *discordgo.InteractionCreate, user *discordgo.User) {
	v, err := h.Refill(user.ID)
	if err != nil {
		h.respondError(s, i, lobby.Describe(err))
		return
	}
	h.respondSuccess(s, i, fmt.Sprintf("🪙 %s You now have **%d** coins.", v.Message, v.Balance))
}

func (h *Handler) historyEmbed(user *discordgo.User) (*discordgo.MessageEmbed, error) {
	slot := slotFor(user.ID)
	plays, err := h.history.RecentPlays(slot, historyLimit)
	if err != nil {
		return nil, err
	}
	totals, err := h.history.PlayTotals(slot)
	if err != nil {
		return nil, err
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s's Recent Plays", user.Username),
		Color: colorLobby,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Plays", Value: fmt.Sprint(totals.Plays), Inline: true},
			{Name: "Wins", Value: fmt.Sprint(totals.Wins), Inline: true},
			{Name: "Net", Value: fmt.Sprintf("%+d", totals.Net), Inline: true},
		},
	}
	if len(plays) == 0 {
		embed.Description = "No plays yet. Try /casino."
		return embed, nil
	}

	var lines []string
	for _, p := range plays {
		lines = append(lines, fmt.Sprintf("`%s` %s bet %d, %+d → %d", p.PlayedAt.Format("Jan 02 15:04"), p.Game, p.Wager, p.Net, p.Balance))
	}
	embed.Description = strings.Join(lines, "\n")
	return embed, nil
}
