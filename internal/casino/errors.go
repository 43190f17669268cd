package casino

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBet        = errors.New("invalid bet")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrEmptyDeck         = errors.New("deck is empty")
)

// TransitionError reports an action requested in a state that does not accept it.
type TransitionError struct {
	Action string
	From   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s during %s", e.Action, e.From)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Reject builds a TransitionError for action in state from.
func Reject(action, from fmt.Stringer) error {
	return &TransitionError{Action: action.String(), From: from.String()}
}
