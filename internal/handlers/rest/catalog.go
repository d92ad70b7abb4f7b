package rest

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/gridiron/internal/models"
	"github.com/KirkDiggler/gridiron/internal/services/coach"
)

func (h *Handler) listCards(c *gin.Context) {
	// /api/cards/players and /api/cards/player are the same listing
	kind := models.CardKind(strings.TrimSuffix(c.Param("kind"), "s"))

	out, err := h.coachService.ListCards(c.Request.Context(), &coach.ListCardsInput{Kind: kind})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cards": out.Cards})
}

func (h *Handler) listDeckTypes(c *gin.Context) {
	out, err := h.coachService.ListArchetypes(c.Request.Context(), &coach.ListArchetypesInput{
		CoachID: c.Query("player_name"),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	deckTypes := make([]deckTypeResponse, 0, len(out.Archetypes))
	for _, opt := range out.Archetypes {
		deckTypes = append(deckTypes, deckTypeResponse{Archetype: opt.Archetype, Unlocked: opt.Unlocked})
	}
	c.JSON(http.StatusOK, gin.H{"deck_types": deckTypes})
}

func (h *Handler) careerProgress(c *gin.Context) {
	out, err := h.coachService.ListCareerLevels(c.Request.Context(), &coach.ListCareerLevelsInput{
		CoachID: c.Query("player_name"),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, careerProgressResponse{
		CareerLevels: out.Levels,
		CurrentLevel: out.Current,
		BestScore:    out.BestScore,
	})
}

func (h *Handler) leaderboard(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			badRequest(c, "limit must be a positive integer")
			return
		}
		limit = n
	}

	out, err := h.coachService.GetLeaderboard(c.Request.Context(), &coach.GetLeaderboardInput{Limit: limit})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": out.Entries})
}
