package commands

import (
	"strings"
	"sync"
	"time"

	"casinonight/internal/database"
	"casinonight/internal/lobby"
	"casinonight/internal/slots"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// DefaultLeaveDelay is how long a broke player sits at the table before
// being walked back to the lobby.
const DefaultLeaveDelay = 1500 * time.Millisecond

// Opener starts a session for a ledger slot.
type Opener func(slot string) (*lobby.Session, error)

// History is the play log behind /coins history.
type History interface {
	RecentPlays(slot string, limit int) ([]database.Play, error)
	PlayTotals(slot string) (database.Totals, error)
}

// Announcer tells the server about notable plays.
type Announcer interface {
	Jackpot(userID string, reels []slots.Symbol, win int)
	SessionEnded(userID string, table string)
}

// seat is one user's session and their pending walk back to the lobby.
// An evicted seat is no longer in Handler.seats and must not be used.
type seat struct {
	mu      sync.Mutex
	session *lobby.Session
	leave   *quartz.Timer
	redraw  func(lobby.View)
	evicted bool
}

// Handler owns every user's casino session.
type Handler struct {
	open     Opener
	history  History
	announce Announcer
	clock    quartz.Clock
	delay    time.Duration
	logger   *log.Logger

	mu    sync.Mutex
	seats map[string]*seat
}

// Option configures a Handler.
type Option func(*Handler)

// WithClock replaces the real clock used for the delayed leave.
func WithClock(c quartz.Clock) Option {
	return func(h *Handler) {
		h.clock = c
	}
}

// WithLeaveDelay replaces DefaultLeaveDelay.
func WithLeaveDelay(d time.Duration) Option {
	return func(h *Handler) {
		h.delay = d
	}
}

// WithAnnouncer posts jackpots and session ends.
func WithAnnouncer(a Announcer) Option {
	return func(h *Handler) {
		h.announce = a
	}
}

func NewHandler(open Opener, history History, logger *log.Logger, opts ...Option) *Handler {
	h := &Handler{
		open:    open,
		history: history,
		clock:   quartz.NewReal(),
		delay:   DefaultLeaveDelay,
		logger:  logger.WithPrefix("commands"),
		seats:   make(map[string]*seat),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// AllCommands returns every slash command the bot serves.
func AllCommands() []*discordgo.ApplicationCommand {
	all := make([]*discordgo.ApplicationCommand, 0, len(CasinoCommands)+len(EconomyCommands))
	all = append(all, CasinoCommands...)
	all = append(all, EconomyCommands...)
	return all
}

// RegisterCommands registers all slash commands with Discord.
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) {
	h.logger.Info("Registering commands", "guild", guildID)
	for _, cmd := range AllCommands() {
		_, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd)
		if err != nil {
			h.logger.Error("Cannot create command", "command", cmd.Name, "error", err)
		}
	}
	h.logger.Info("Commands registered successfully")
}

// HandleInteraction is the central dispatcher for slash commands and buttons.
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := interactionUser(i)
	if user == nil {
		return
	}

	if i.Type == discordgo.InteractionMessageComponent {
		id := i.MessageComponentData().CustomID
		if strings.HasPrefix(id, idPrefix) {
			h.handleCasinoComponent(s, i, user, id)
		}
		return
	}

	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	h.logger.Info("Command", "user", user.Username, "user_id", user.ID, "guild", i.GuildID, "command", data.Name)

	switch data.Name {
	case "casino":
		h.handleCasinoCommand(s, i, user)
	case "coins":
		h.handleCoinsCommand(s, i, user, data)
	}
}

func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

func slotFor(userID string) string {
	return "coins:" + userID
}

func (h *Handler) seat(userID string) (*seat, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if st, ok := h.seats[userID]; ok {
		return st, nil
	}
	session, err := h.open(slotFor(userID))
	if err != nil {
		return nil, err
	}
	st := &seat{session: session}
	h.seats[userID] = st
	return st, nil
}

// lock returns the user's seat with its mutex held.
func (h *Handler) lock(userID string) (*seat, error) {
	for {
		st, err := h.seat(userID)
		if err != nil {
			return nil, err
		}
		st.mu.Lock()
		if !st.evicted {
			return st, nil
		}
		st.mu.Unlock()
	}
}

// release unlocks st, first dropping it from the table if it is idle in the
// lobby. Its balance is already in the store, so the next visit reopens it.
func (h *Handler) release(userID string, st *seat) {
	if st.session.View().Screen == lobby.ScreenLobby && st.leave == nil {
		h.mu.Lock()
		if h.seats[userID] == st {
			delete(h.seats, userID)
		}
		h.mu.Unlock()
		st.evicted = true
	}
	st.mu.Unlock()
}

// Seated returns how many users hold a session.
func (h *Handler) Seated() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.seats)
}

// Show returns the user's current screen. redraw replaces the message that
// later updates, such as the delayed leave, are drawn on.
func (h *Handler) Show(userID string, redraw func(lobby.View)) (lobby.View, error) {
	st, err := h.lock(userID)
	if err != nil {
		return lobby.View{}, err
	}
	defer h.release(userID, st)
	st.redraw = redraw
	return st.session.View(), nil
}

// Act applies a button press to the user's session.
func (h *Handler) Act(userID string, a lobby.Action, redraw func(lobby.View)) (lobby.View, error) {
	st, err := h.lock(userID)
	if err != nil {
		return lobby.View{}, err
	}
	defer h.release(userID, st)
	st.redraw = redraw

	if a.Kind == lobby.KindBack && st.leave != nil {
		st.leave.Stop()
		st.leave = nil
	}

	v, err := st.session.Do(a)
	if err != nil {
		return v, err
	}

	if v.Screen == lobby.ScreenSlots && h.announce != nil && isJackpot(v.Slots) {
		h.announce.Jackpot(userID, v.Slots.Reels, v.Slots.Win)
	}
	if v.Ended {
		if h.announce != nil {
			h.announce.SessionEnded(userID, v.Screen.String())
		}
		h.scheduleLeave(userID, st)
	}
	return v, nil
}

// Refill restores the user's starting balance once they are broke.
func (h *Handler) Refill(userID string) (lobby.View, error) {
	st, err := h.lock(userID)
	if err != nil {
		return lobby.View{}, err
	}
	defer h.release(userID, st)
	return st.session.Refill()
}

// Balance returns the coins the user holds.
func (h *Handler) Balance(userID string) (int, error) {
	st, err := h.lock(userID)
	if err != nil {
		return 0, err
	}
	defer h.release(userID, st)
	return st.session.Balance(), nil
}

// scheduleLeave walks the seat back to the lobby after the leave delay.
// The caller holds st.mu.
func (h *Handler) scheduleLeave(userID string, st *seat) {
	if st.leave != nil {
		st.leave.Stop()
	}
	st.leave = h.clock.AfterFunc(h.delay, func() {
		st.mu.Lock()
		st.leave = nil
		if !st.session.Ended() {
			st.mu.Unlock()
			return
		}
		v := st.session.Leave()
		redraw := st.redraw
		h.release(userID, st)

		h.logger.Debug("Walked player to lobby", "user_id", userID)
		if redraw != nil {
			redraw(v)
		}
	}, "leave")
}
