package commands

import (
	"casinonight/internal/lobby"

	"github.com/bwmarrin/discordgo"
)

var CasinoCommands = []*discordgo.ApplicationCommand{
	{
		Name:        "casino",
		Description: "Walk into the casino",
	},
}

func (h *Handler) handleCasinoCommand(s *discordgo.Session, i *discordgo.InteractionCreate, user *discordgo.User) {
	v, err := h.Show(user.ID, h.redrawer(s, i.Interaction))
	if err != nil {
		h.logger.Error("Failed to open session", "user_id", user.ID, "error", err)
		h.respondError(s, i, "The casino is closed right now.")
		return
	}

	embed, components := render(v)
	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		h.logger.Error("Failed to send lobby", "user_id", user.ID, "error", err)
	}
}

func (h *Handler) handleCasinoComponent(s *discordgo.Session, i *discordgo.InteractionCreate, user *discordgo.User, id string) {
	a, err := parseCustomID(id)
	if err != nil {
		h.logger.Warn("Unknown button", "user_id", user.ID, "custom_id", id, "error", err)
		h.respondError(s, i, "That button doesn't do anything anymore.")
		return
	}

	v, err := h.Act(user.ID, a, h.redrawer(s, i.Interaction))
	if err != nil {
		h.logger.Debug("Action rejected", "user_id", user.ID, "action", a, "error", err)
		h.respondError(s, i, lobby.Describe(err))
		return
	}

	embed, components := render(v)
	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
	if err != nil {
		h.logger.Error("Failed to update table", "user_id", user.ID, "error", err)
	}
}

// redrawer edits the message an interaction answered.
func (h *Handler) redrawer(s *discordgo.Session, interaction *discordgo.Interaction) func(lobby.View) {
	return func(v lobby.View) {
		embed, components := render(v)
		embeds := []*discordgo.MessageEmbed{embed}
		_, err := s.InteractionResponseEdit(interaction, &discordgo.WebhookEdit{
			Embeds:     &embeds,
			Components: &components,
		})
		if err != nil {
			h.logger.Warn("Failed to redraw table", "error", err)
		}
	}
}
