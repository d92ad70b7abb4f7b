package coach

import (
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/gridiron/internal/common/clock"
	"github.com/KirkDiggler/gridiron/internal/common/uuid"
	"github.com/KirkDiggler/gridiron/internal/dice"
	"github.com/KirkDiggler/gridiron/internal/models"
	coachRepo "github.com/KirkDiggler/gridiron/internal/repositories/coach"
	lockRepo "github.com/KirkDiggler/gridiron/internal/repositories/lock"
	sessionRepo "github.com/KirkDiggler/gridiron/internal/repositories/session"
	"github.com/KirkDiggler/gridiron/internal/services/commentary"
)

// Catalog is the read-only card and archetype data the service plays with
type Catalog interface {
	Lookup(ref models.CardRef) (models.Card, bool)
	All() []models.Card
	Cards(kind models.CardKind) []models.Card
	ResolveArchetype(name string) (models.Archetype, bool)
	Archetypes() []models.Archetype
	CareerLevels() []models.CareerLevel
	CareerLevelFor(score float64) (models.CareerLevel, bool)
	Unlocked(a models.Archetype, bestScore float64) bool
}

// Config holds configuration for the coach service
type Config struct {
	// Coaching points a new session starts with; nil uses the default
	StartingCoachingPoints *int

	// Number of cards dealt when a session starts; nil uses the default
	InitialHandSize *int

	// How long a mutating call waits for the session lock
	LockTimeout time.Duration

	// How long a held session lock lives if never released
	LockTTL time.Duration

	// Repository dependencies
	SessionRepo sessionRepo.Repository
	CoachRepo   coachRepo.Repository
	LockRepo    lockRepo.Repository

	// Catalog is loaded once at start-up
	Catalog Catalog

	// Service dependencies
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Commentary is optional; drives get no flavor text without it
	Commentary commentary.Service

	// Logger defaults to a no-op logger
	Logger *zap.Logger
}

// StartSessionInput contains parameters for starting a session
type StartSessionInput struct {
	// CoachID is the Discord user ID or API player name
	CoachID string

	// CoachName is the display name of the coach
	CoachName string

	// Archetype is the starter deck; unknown names fall back to the default
	Archetype string
}

// StartSessionOutput contains the new session
type StartSessionOutput struct {
	Session *models.Session

	// Archetype is the starter deck actually used
	Archetype models.Archetype

	// ArchetypeFallback is true when the requested archetype was unknown
	ArchetypeFallback bool
}

// GetSessionInput contains parameters for retrieving a session
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput contains the session
type GetSessionOutput struct {
	Session *models.Session
}

// ListSessionsInput contains parameters for listing sessions
type ListSessionsInput struct {
	// CoachID limits the list to one coach; empty lists every active session
	CoachID string
}

// ListSessionsOutput contains the sessions
type ListSessionsOutput struct {
	Sessions []*models.Session
}

// AbandonSessionInput contains parameters for abandoning a coach's current session
type AbandonSessionInput struct {
	CoachID string
}

// AbandonSessionOutput contains the abandoned session's ID and final score
type AbandonSessionOutput struct {
	SessionID string
	Score     float64
}

// DrawCardsInput contains parameters for drawing cards
type DrawCardsInput struct {
	SessionID string

	// Count is the number of cards wanted; the hand stops at capacity
	Count int
}

// DrawCardsOutput contains the session and the newly drawn cards
type DrawCardsOutput struct {
	Session *models.Session
	Drawn   []*models.CardInstance
}

// MulliganInput contains parameters for a mulligan
type MulliganInput struct {
	SessionID string
}

// MulliganOutput contains the session with its new hand
type MulliganOutput struct {
	Session *models.Session
}

// BenchCardInput contains parameters for benching a card
type BenchCardInput struct {
	SessionID  string
	InstanceID string
}

// BenchCardOutput contains the updated session
type BenchCardOutput struct {
	Session *models.Session
}

// RecallCardInput contains parameters for recalling a benched card
type RecallCardInput struct {
	SessionID  string
	InstanceID string
}

// RecallCardOutput contains the updated session
type RecallCardOutput struct {
	Session *models.Session
}

// PlayDriveInput contains parameters for playing a drive
type PlayDriveInput struct {
	SessionID string

	// InstanceIDs are hand cards in play order
	InstanceIDs []string
}

// PlayDriveOutput contains the drive result and the advanced session
type PlayDriveOutput struct {
	Session *models.Session

	// Result is the drive after turnover-on-downs adjustments
	Result *models.DriveResult

	Transition models.Transition

	CoachingPointsEarned int

	// BestScore is the coach's best score after this drive
	BestScore float64

	// NewBest is true when this drive raised the coach's best score
	NewBest bool

	// Commentary is empty when no commentary service is configured
	Headline          string
	PlayByPlay        []string
	TransitionMessage string
}

// ListShopInput contains parameters for opening the shop
type ListShopInput struct {
	SessionID string
}

// ListShopOutput contains the shop listing for the current game
type ListShopOutput struct {
	Season         int
	Game           int
	Cards          []models.Card
	CoachingPoints int
}

// BuyCardInput contains parameters for buying a card
type BuyCardInput struct {
	SessionID string
	Card      models.CardRef
}

// BuyCardOutput contains the session and the bought copy
type BuyCardOutput struct {
	Session  *models.Session
	Instance *models.CardInstance
	Price    int
}

// SellCardInput contains parameters for selling a card
type SellCardInput struct {
	SessionID string
	Card      models.CardRef
}

// SellCardOutput contains the session and the refund
type SellCardOutput struct {
	Session *models.Session
	Refund  int
}

// RollDraftRewardInput contains parameters for rolling a draft offer
type RollDraftRewardInput struct {
	SessionID string
}

// RollDraftRewardOutput contains the draft offer
type RollDraftRewardOutput struct {
	Cards []models.Card
}

// SelectDraftCardInput contains parameters for picking a draft card
type SelectDraftCardInput struct {
	SessionID string
	Card      models.CardRef
}

// SelectDraftCardOutput contains the session and the drafted copy
type SelectDraftCardOutput struct {
	Session  *models.Session
	Instance *models.CardInstance
}

// ListCardsInput contains parameters for browsing the catalog
type ListCardsInput struct {
	// Kind is empty for every card
	Kind models.CardKind
}

// ListCardsOutput contains catalog cards
type ListCardsOutput struct {
	Cards []models.Card
}

// ListArchetypesInput contains parameters for listing archetypes
type ListArchetypesInput struct {
	// CoachID is optional; without it only archetypes with no unlock requirement are unlocked
	CoachID string
}

// ArchetypeOption is an archetype and whether the coach may pick it
type ArchetypeOption struct {
	Archetype models.Archetype
	Unlocked  bool
}

// ListArchetypesOutput contains the archetypes
type ListArchetypesOutput struct {
	Archetypes []ArchetypeOption
}

// ListCareerLevelsInput contains parameters for the career ladder
type ListCareerLevelsInput struct {
	// CoachID is optional
	CoachID string
}

// ListCareerLevelsOutput contains the ladder and the coach's position on it
type ListCareerLevelsOutput struct {
	Levels    []models.CareerLevel
	Current   models.CareerLevel
	BestScore float64
}

// GetLeaderboardInput contains parameters for the leaderboard
type GetLeaderboardInput struct {
	Limit int
}

// GetLeaderboardOutput contains the ranked coaches
type GetLeaderboardOutput struct {
	Entries []*models.LeaderboardEntry
}

// GetCoachInput contains parameters for retrieving a coach
type GetCoachInput struct {
	CoachID string
}

// GetCoachOutput contains the coach
type GetCoachOutput struct {
	Coach *models.Coach
}
