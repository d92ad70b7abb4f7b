package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/gridiron/internal/services/coach"
)

func (h *Handler) startGame(c *gin.Context) {
	var req startGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "player_name is required")
		return
	}

	out, err := h.coachService.StartSession(c.Request.Context(), &coach.StartSessionInput{
		CoachID:   req.PlayerName,
		CoachName: req.PlayerName,
		Archetype: req.DeckType,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, startGameResponse{
		Session:           out.Session,
		Archetype:         out.Archetype,
		ArchetypeFallback: out.ArchetypeFallback,
	})
}

func (h *Handler) getGame(c *gin.Context) {
	out, err := h.coachService.GetSession(c.Request.Context(), &coach.GetSessionInput{
		SessionID: c.Param("id"),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Session)
}

func (h *Handler) getDeck(c *gin.Context) {
	out, err := h.coachService.GetSession(c.Request.Context(), &coach.GetSessionInput{
		SessionID: c.Param("id"),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, deckResponse{
		Deck:  out.Session.Deck,
		Zones: out.Session.Zones,
	})
}

func (h *Handler) drawCards(c *gin.Context) {
	req := drawRequest{Count: 1}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
	}

	out, err := h.coachService.DrawCards(c.Request.Context(), &coach.DrawCardsInput{
		SessionID: c.Param("id"),
		Count:     req.Count,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, drawResponse{Session: out.Session, Drawn: out.Drawn})
}

func (h *Handler) mulligan(c *gin.Context) {
	out, err := h.coachService.Mulligan(c.Request.Context(), &coach.MulliganInput{
		SessionID: c.Param("id"),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Session)
}

func (h *Handler) benchCard(c *gin.Context) {
	var req instanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "instance_id is required")
		return
	}

	out, err := h.coachService.BenchCard(c.Request.Context(), &coach.BenchCardInput{
		SessionID:  c.Param("id"),
		InstanceID: req.InstanceID,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Session)
}

func (h *Handler) recallCard(c *gin.Context) {
	var req instanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "instance_id is required")
		return
	}

	out, err := h.coachService.RecallCard(c.Request.Context(), &coach.RecallCardInput{
		SessionID:  c.Param("id"),
		InstanceID: req.InstanceID,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Session)
}

func (h *Handler) playDrive(c *gin.Context) {
	var req playDriveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	out, err := h.coachService.PlayDrive(c.Request.Context(), &coach.PlayDriveInput{
		SessionID:   c.Param("id"),
		InstanceIDs: req.Cards,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, playDriveResponse{
		DriveResult:          out.Result,
		Transition:           out.Transition,
		CoachingPointsEarned: out.CoachingPointsEarned,
		BestScore:            out.BestScore,
		NewBest:              out.NewBest,
		Headline:             out.Headline,
		PlayByPlay:           out.PlayByPlay,
		TransitionMessage:    out.TransitionMessage,
		GameProgress:         out.Session.Progress,
		Session:              out.Session,
	})
}

func (h *Handler) listSessions(c *gin.Context) {
	out, err := h.coachService.ListSessions(c.Request.Context(), &coach.ListSessionsInput{
		CoachID: c.Query("player_name"),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessions": out.Sessions})
}

func (h *Handler) getCoach(c *gin.Context) {
	out, err := h.coachService.GetCoach(c.Request.Context(), &coach.GetCoachInput{
		CoachID: c.Param("player"),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Coach)
}

func (h *Handler) abandonGame(c *gin.Context) {
	out, err := h.coachService.AbandonSession(c.Request.Context(), &coach.AbandonSessionInput{
		CoachID: c.Param("player"),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"session_id": out.SessionID, "score": out.Score})
}
