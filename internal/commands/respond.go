package commands

import "github.com/bwmarrin/discordgo"

// Responder is the part of a discordgo session the reply helpers use.
type Responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

func (h *Handler) respond(s Responder, i *discordgo.InteractionCreate, data *discordgo.InteractionResponseData) {
	data.Flags = discordgo.MessageFlagsEphemeral
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		h.logger.Error("Failed to respond to interaction", "interaction", i.ID, "error", err)
	}
}

func (h *Handler) respondError(s Responder, i *discordgo.InteractionCreate, msg string) {
	h.respond(s, i, &discordgo.InteractionResponseData{Content: "❌ " + msg})
}

func (h *Handler) respondSuccess(s Responder, i *discordgo.InteractionCreate, msg string) {
	h.respond(s, i, &discordgo.InteractionResponseData{Content: msg})
}

func (h *Handler) respondEmbed(s Responder, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	h.respond(s, i, &discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{embed}})
}
