package casino

// Signal is a navigation request emitted alongside a render model. The shell
// decides how and when to act on it.
type Signal int

const (
	SignalNone Signal = iota
	// SignalExit asks the shell to leave the current table.
	SignalExit
	// SignalSessionEnd means the balance reached zero.
	SignalSessionEnd
)

func (s Signal) String() string {
	switch s {
	case SignalExit:
		return "exit"
	case SignalSessionEnd:
		return "session-end"
	default:
		return "none"
	}
}
