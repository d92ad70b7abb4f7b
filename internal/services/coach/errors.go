package coach

import (
	"github.com/KirkDiggler/gridiron/internal/economy"
)

// CoachError is a custom error type for coaching-session errors
type CoachError string

// Error implements the error interface
func (e CoachError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound        CoachError = "session not found"
	ErrCoachNotFound          CoachError = "coach not found"
	ErrInvalidCard            CoachError = "invalid card"
	ErrInvalidInput           CoachError = "invalid input"
	ErrSessionBusy            CoachError = "session is busy"
	ErrSessionOver            CoachError = "session is over"
	ErrHandFull               CoachError = "hand is full"
	ErrNoDraftAvailable       CoachError = "no draft pick available"
	ErrArchetypeLocked        CoachError = "archetype is locked"
	ErrNilConfig              CoachError = "config cannot be nil"
	ErrNilSessionRepo         CoachError = "session repository cannot be nil"
	ErrNilCoachRepo           CoachError = "coach repository cannot be nil"
	ErrNilLockRepo            CoachError = "lock repository cannot be nil"
	ErrNilCatalog             CoachError = "catalog cannot be nil"
	ErrNilDiceRoller          CoachError = "dice roller cannot be nil"
	ErrNilClock               CoachError = "clock cannot be nil"
	ErrNilUUIDGenerator       CoachError = "UUID generator cannot be nil"
	ErrNegativeStartingPoints CoachError = "starting coaching points cannot be negative"
	ErrNegativeHandSize       CoachError = "initial hand size cannot be negative"
)

// Errors surfaced unchanged from the card economy
var (
	ErrInsufficientFunds = economy.ErrInsufficientFunds
	ErrCardNotFound      = economy.ErrCardNotFound
)
