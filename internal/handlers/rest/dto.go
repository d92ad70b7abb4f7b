package rest

import (
	"github.com/KirkDiggler/gridiron/internal/models"
)

type startGameRequest struct {
	PlayerName string `json:"player_name" binding:"required"`
	DeckType   string `json:"deck_type"`
}

type drawRequest struct {
	Count int `json:"count"`
}

type instanceRequest struct {
	InstanceID string `json:"instance_id" binding:"required"`
}

type playDriveRequest struct {
	// Cards are hand instance IDs in play order
	Cards []string `json:"cards"`
}

type cardRequest struct {
	Card *models.CardRef `json:"card" binding:"required"`
}

type startGameResponse struct {
	Session           *models.Session  `json:"session"`
	Archetype         models.Archetype `json:"archetype"`
	ArchetypeFallback bool             `json:"archetype_fallback"`
}

type deckResponse struct {
	Deck  []*models.CardInstance `json:"deck"`
	Zones models.Zones           `json:"zones"`
}

type drawResponse struct {
	Session *models.Session        `json:"session"`
	Drawn   []*models.CardInstance `json:"drawn"`
}

type playDriveResponse struct {
	DriveResult          *models.DriveResult `json:"drive_result"`
	Transition           models.Transition   `json:"transition"`
	CoachingPointsEarned int                 `json:"coaching_points_earned"`
	BestScore            float64             `json:"best_score"`
	NewBest              bool                `json:"new_best"`
	Headline             string              `json:"headline,omitempty"`
	PlayByPlay           []string            `json:"play_by_play,omitempty"`
	TransitionMessage    string              `json:"transition_message,omitempty"`
	GameProgress         models.Progress     `json:"game_progress"`
	Session              *models.Session     `json:"session"`
}

type shopResponse struct {
	Season         int           `json:"season"`
	Game           int           `json:"game"`
	ShopCards      []models.Card `json:"shop_cards"`
	CoachingPoints int           `json:"coaching_points"`
}

type buyResponse struct {
	Card            *models.CardInstance `json:"card"`
	Price           int                  `json:"price"`
	RemainingPoints int                  `json:"remaining_points"`
	Session         *models.Session      `json:"session"`
}

type sellResponse struct {
	Refund          int             `json:"refund"`
	RemainingPoints int             `json:"remaining_points"`
	Session         *models.Session `json:"session"`
}

type draftResponse struct {
	DraftCards []models.Card `json:"draft_cards"`
}

type selectDraftResponse struct {
	Card    *models.CardInstance `json:"card"`
	Session *models.Session      `json:"session"`
}

type deckTypeResponse struct {
	models.Archetype
	Unlocked bool `json:"unlocked"`
}

type careerProgressResponse struct {
	CareerLevels []models.CareerLevel `json:"career_levels"`
	CurrentLevel models.CareerLevel   `json:"current_level"`
	BestScore    float64              `json:"best_score"`
}
