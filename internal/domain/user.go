package domain

// UserState represents user's current interaction state
type UserState string

const (
	StateIdle            UserState = "idle"
	StateWaitingDeckName UserState = "waiting_deck_name"
	StateChoosingDeck    UserState = "choosing_deck"
)

// StateData holds temporary data for user's current state
type StateData struct {
	State        UserState
	PendingWords []string // Selection waiting to be stored in a deck
}
