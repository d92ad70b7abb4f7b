package coach

import (
	"context"
	"errors"

	coachRepo "github.com/KirkDiggler/gridiron/internal/repositories/coach"
)

// ListCards returns catalog cards, optionally of one kind
func (s *service) ListCards(ctx context.Context, input *ListCardsInput) (*ListCardsOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if input.Kind == "" {
		return &ListCardsOutput{Cards: s.catalog.All()}, nil
	}
	if !input.Kind.Valid() {
		return nil, ErrInvalidInput
	}

	return &ListCardsOutput{Cards: s.catalog.Cards(input.Kind)}, nil
}

// ListArchetypes returns the starter decks and whether the coach can pick them
func (s *service) ListArchetypes(ctx context.Context, input *ListArchetypesInput) (*ListArchetypesOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	best, err := s.bestScore(ctx, input.CoachID)
	if err != nil {
		return nil, err
	}

	archetypes := s.catalog.Archetypes()
	options := make([]ArchetypeOption, len(archetypes))
	for i, a := range archetypes {
		options[i] = ArchetypeOption{
			Archetype: a,
			Unlocked:  s.catalog.Unlocked(a, best),
		}
	}

	return &ListArchetypesOutput{Archetypes: options}, nil
}

// ListCareerLevels returns the career ladder and where the coach stands on it
func (s *service) ListCareerLevels(ctx context.Context, input *ListCareerLevelsInput) (*ListCareerLevelsOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	best, err := s.bestScore(ctx, input.CoachID)
	if err != nil {
		return nil, err
	}

	current, _ := s.catalog.CareerLevelFor(best)

	return &ListCareerLevelsOutput{
		Levels:    s.catalog.CareerLevels(),
		Current:   current,
		BestScore: best,
	}, nil
}

// GetLeaderboard returns the top coaches by best score
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	board, err := s.coachRepo.GetLeaderboard(ctx, &coachRepo.GetLeaderboardInput{Limit: input.Limit})
	if err != nil {
		return nil, err
	}

	return &GetLeaderboardOutput{Entries: board.Entries}, nil
}

// GetCoach returns a coach's profile
func (s *service) GetCoach(ctx context.Context, input *GetCoachInput) (*GetCoachOutput, error) {
	if input == nil || input.CoachID == "" {
		return nil, ErrInvalidInput
	}

	coach, err := s.getCoach(ctx, input.CoachID)
	if err != nil {
		return nil, err
	}

	return &GetCoachOutput{Coach: coach}, nil
}

// bestScore is zero for anonymous and unknown coaches
func (s *service) bestScore(ctx context.Context, coachID string) (float64, error) {
	if coachID == "" {
		return 0, nil
	}

	coach, err := s.coachRepo.GetCoach(ctx, &coachRepo.GetCoachInput{CoachID: coachID})
	if errors.Is(err, coachRepo.ErrCoachNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return coach.BestScore, nil
}
