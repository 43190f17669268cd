// Package tui is a terminal front end for one lobby session.
package tui

import (
	"fmt"
	"strings"
	"time"

	"casinonight/internal/blackjack"
	"casinonight/internal/cards"
	"casinonight/internal/casino"
	"casinonight/internal/lobby"
	"casinonight/internal/slots"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const logLines = 6

// leaveMsg walks a broke player back to the lobby.
type leaveMsg struct{}

// Model is the Bubble Tea model for a casino session.
type Model struct {
	session *lobby.Session
	logger  *log.Logger
	delay   time.Duration

	view    lobby.View
	status  string
	history []string

	logViewport viewport.Model
	help        help.Model

	quitting bool
}

// New returns a model over session. delay is how long a broke player stays
// at the table.
func New(session *lobby.Session, logger *log.Logger, delay time.Duration) *Model {
	vp := viewport.New(60, logLines)
	m := &Model{
		session:     session,
		logger:      logger.WithPrefix("tui"),
		delay:       delay,
		view:        session.View(),
		logViewport: vp,
		help:        help.New(),
	}
	m.record(m.view.Message)
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.logViewport.Width = max(msg.Width-2, 1)
		m.help.Width = msg.Width
		m.logger.Debug("Updating dimensions", "width", msg.Width, "height", msg.Height)

	case leaveMsg:
		if m.session.Ended() {
			m.show(m.session.Leave())
		}

	case tea.KeyMsg:
		if key.Matches(msg, quitKey) {
			m.quitting = true
			return m, tea.Quit
		}
		for _, b := range bindings(m.view) {
			if key.Matches(msg, b.key) {
				return m, m.do(b.action)
			}
		}
	}
	return m, nil
}

// do sends a to the session and returns any follow-up command.
func (m *Model) do(a lobby.Action) tea.Cmd {
	from := m.view.Screen
	v, err := m.session.Do(a)
	if err != nil {
		m.logger.Debug("Action rejected", "action", a, "error", err)
		m.status = lobby.Describe(err)
		return nil
	}
	m.show(v)

	switch {
	case v.Signal == casino.SignalExit && from == lobby.ScreenLobby:
		m.quitting = true
		return tea.Quit
	case v.Signal == casino.SignalSessionEnd:
		return tea.Tick(m.delay, func(time.Time) tea.Msg {
			return leaveMsg{}
		})
	}
	return nil
}

func (m *Model) show(v lobby.View) {
	m.view = v
	m.status = ""
	m.record(v.Message)
}

func (m *Model) record(message string) {
	if message == "" {
		return
	}
	if n := len(m.history); n > 0 && m.history[n-1] == message {
		return
	}
	m.history = append(m.history, message)
	m.logViewport.SetContent(strings.Join(m.history, "\n"))
	m.logViewport.GotoBottom()
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Casino Night"))
	b.WriteString("  ")
	b.WriteString(BalanceStyle.Render(fmt.Sprintf("%d coins", m.view.Balance)))
	b.WriteString("\n\n")

	b.WriteString(TableStyle.Render(m.renderTable()))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(ErrorStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(LogStyle.Render(m.logViewport.View()))
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(helpKeys(bindings(m.view))))
	return b.String()
}

func (m *Model) renderTable() string {
	switch m.view.Screen {
	case lobby.ScreenLobby:
		return lipgloss.JoinVertical(lipgloss.Left,
			LabelStyle.Render("Lobby"),
			MessageStyle.Render(m.view.Message),
		)
	case lobby.ScreenBlackjackPrompt:
		return lipgloss.JoinVertical(lipgloss.Left,
			LabelStyle.Render("Blackjack"),
			MessageStyle.Render(m.view.Message),
		)
	case lobby.ScreenSlotsPrompt:
		return lipgloss.JoinVertical(lipgloss.Left,
			LabelStyle.Render("Slots"),
			MessageStyle.Render(m.view.Message),
		)
	case lobby.ScreenBlackjack:
		if m.view.Blackjack != nil {
			return renderBlackjack(m.view.Blackjack)
		}
	case lobby.ScreenSlots:
		if m.view.Slots != nil {
			return renderSlots(m.view.Slots)
		}
	}
	return MessageStyle.Render(m.view.Message)
}

func renderCard(c cards.Card) string {
	if c.Suit.Red() {
		return RedCardStyle.Render(c.String())
	}
	return BlackCardStyle.Render(c.String())
}

func renderHand(hand cards.Hand, hidden int) string {
	if len(hand) == 0 && hidden == 0 {
		return InfoStyle.Render("None")
	}
	parts := make([]string, 0, len(hand)+hidden)
	for _, c := range hand {
		parts = append(parts, renderCard(c))
	}
	for range hidden {
		parts = append(parts, HiddenCardStyle.Render("??"))
	}
	return strings.Join(parts, " ")
}

func renderBlackjack(v *blackjack.View) string {
	lines := []string{LabelStyle.Render("Blackjack")}
	if len(v.Player) > 0 {
		total := fmt.Sprint(v.PlayerTotal)
		if v.PlayerSoft {
			total = "soft " + total
		}
		lines = append(lines,
			fmt.Sprintf("Dealer: %s (%d)", renderHand(v.Dealer, v.DealerHidden), v.DealerTotal),
			fmt.Sprintf("You:    %s (%s)", renderHand(v.Player, 0), total),
			fmt.Sprintf("Bet:    %d", v.Bet),
		)
	}
	lines = append(lines, "", MessageStyle.Render(v.Message))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderSlots(v *slots.View) string {
	reels := "-  -  -"
	if len(v.Reels) > 0 {
		names := make([]string, len(v.Reels))
		for i, r := range v.Reels {
			names[i] = r.Name
		}
		reels = strings.Join(names, " | ")
	}

	lines := []string{
		LabelStyle.Render("Slots"),
		"[ " + reels + " ]",
		"",
	}
	for _, s := range v.Legend {
		lines = append(lines, InfoStyle.Render(fmt.Sprintf("%s x3 pays %d", s.Name, s.Payout)))
	}
	lines = append(lines,
		InfoStyle.Render(fmt.Sprintf("Each pull costs %d coins.", v.Cost)),
		"",
		MessageStyle.Render(v.Message),
	)
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
