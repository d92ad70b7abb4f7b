package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/gridiron/internal/services/coach"
)

func (h *Handler) getShop(c *gin.Context) {
	out, err := h.coachService.ListShop(c.Request.Context(), &coach.ListShopInput{
		SessionID: c.Param("id"),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, shopResponse{
		Season:         out.Season,
		Game:           out.Game,
		ShopCards:      out.Cards,
		CoachingPoints: out.CoachingPoints,
	})
}

func (h *Handler) buyCard(c *gin.Context) {
	var req cardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "card is required")
		return
	}

	out, err := h.coachService.BuyCard(c.Request.Context(), &coach.BuyCardInput{
		SessionID: c.Param("id"),
		Card:      *req.Card,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, buyResponse{
		Card:            out.Instance,
		Price:           out.Price,
		RemainingPoints: out.Session.CoachingPoints,
		Session:         out.Session,
	})
}

func (h *Handler) sellCard(c *gin.Context) {
	var req cardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "card is required")
		return
	}

	out, err := h.coachService.SellCard(c.Request.Context(), &coach.SellCardInput{
		SessionID: c.Param("id"),
		Card:      *req.Card,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, sellResponse{
		Refund:          out.Refund,
		RemainingPoints: out.Session.CoachingPoints,
		Session:         out.Session,
	})
}

func (h *Handler) getDraftReward(c *gin.Context) {
	out, err := h.coachService.RollDraftReward(c.Request.Context(), &coach.RollDraftRewardInput{
		SessionID: c.Param("id"),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, draftResponse{DraftCards: out.Cards})
}

func (h *Handler) selectDraftCard(c *gin.Context) {
	var req cardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "card is required")
		return
	}

	out, err := h.coachService.SelectDraftCard(c.Request.Context(), &coach.SelectDraftCardInput{
		SessionID: c.Param("id"),
		Card:      *req.Card,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, selectDraftResponse{Card: out.Instance, Session: out.Session})
}
