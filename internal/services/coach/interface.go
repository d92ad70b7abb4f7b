package coach

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/gridiron/internal/services/coach Service

import "context"

// Service defines the interface for coaching-session operations
type Service interface {
	// StartSession assembles a deck, deals the opening hand and makes it the coach's current session
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// GetSession returns a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// ListSessions returns a coach's sessions, or every active session when no coach is given
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)

	// AbandonSession deletes the coach's current session
	AbandonSession(ctx context.Context, input *AbandonSessionInput) (*AbandonSessionOutput, error)

	// DrawCards draws from the draw pile into the hand
	DrawCards(ctx context.Context, input *DrawCardsInput) (*DrawCardsOutput, error)

	// Mulligan shuffles the hand back and redraws the same number of cards
	Mulligan(ctx context.Context, input *MulliganInput) (*MulliganOutput, error)

	// BenchCard moves a card from the hand to the bench
	BenchCard(ctx context.Context, input *BenchCardInput) (*BenchCardOutput, error)

	// RecallCard moves a card from the bench back to the hand
	RecallCard(ctx context.Context, input *RecallCardInput) (*RecallCardOutput, error)

	// PlayDrive resolves the chosen hand cards as a drive and advances the session
	PlayDrive(ctx context.Context, input *PlayDriveInput) (*PlayDriveOutput, error)

	// ListShop returns the shop for the session's current game
	ListShop(ctx context.Context, input *ListShopInput) (*ListShopOutput, error)

	// BuyCard buys a card from the current shop listing
	BuyCard(ctx context.Context, input *BuyCardInput) (*BuyCardOutput, error)

	// SellCard sells a card from the deck for half its cost
	SellCard(ctx context.Context, input *SellCardInput) (*SellCardOutput, error)

	// RollDraftReward returns the draft offer, rolling one if none is pending
	RollDraftReward(ctx context.Context, input *RollDraftRewardInput) (*RollDraftRewardOutput, error)

	// SelectDraftCard claims one card from the pending draft offer
	SelectDraftCard(ctx context.Context, input *SelectDraftCardInput) (*SelectDraftCardOutput, error)

	// ListCards returns catalog cards, optionally of one kind
	ListCards(ctx context.Context, input *ListCardsInput) (*ListCardsOutput, error)

	// ListArchetypes returns the starter decks and whether the coach can pick them
	ListArchetypes(ctx context.Context, input *ListArchetypesInput) (*ListArchetypesOutput, error)

	// ListCareerLevels returns the career ladder and where the coach stands on it
	ListCareerLevels(ctx context.Context, input *ListCareerLevelsInput) (*ListCareerLevelsOutput, error)

	// GetLeaderboard returns the top coaches by best score
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// GetCoach returns a coach's profile
	GetCoach(ctx context.Context, input *GetCoachInput) (*GetCoachOutput, error)
}
