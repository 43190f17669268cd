package commands

import (
	"bytes"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResponder struct {
	err  error
	sent []*discordgo.InteractionResponse
}

func (f *fakeResponder) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.sent = append(f.sent, resp)
	return f.err
}

func TestRespondIsEphemeral(t *testing.T) {
	h := NewHandler(nil, nil, log.New(&bytes.Buffer{}))
	r := &fakeResponder{}
	i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{ID: "i1"}}

	h.respondError(r, i, "Not enough coins.")
	h.respondEmbed(r, i, &discordgo.MessageEmbed{Title: "History"})

	require.Len(t, r.sent, 2)
	assert.Equal(t, "❌ Not enough coins.", r.sent[0].Data.Content)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, r.sent[0].Data.Flags)
	assert.Equal(t, "History", r.sent[1].Data.Embeds[0].Title)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, r.sent[1].Data.Flags)
}

func TestRespondLogsFailures(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(nil, nil, log.New(&buf))
	r := &fakeResponder{err: errors.New("unknown interaction")}
	i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{ID: "i1"}}

	h.respondSuccess(r, i, "💰 150 coins")

	assert.Contains(t, buf.String(), "Failed to respond to interaction")
	assert.Contains(t, buf.String(), "unknown interaction")
}
