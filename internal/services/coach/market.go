package coach

import (
	"context"
	"slices"

	"go.uber.org/zap"

	"github.com/KirkDiggler/gridiron/internal/economy"
	"github.com/KirkDiggler/gridiron/internal/models"
)

// ListShop returns the shop for the session's current game. The listing is rolled on
// the first visit of each game and kept on the session until the game changes.
func (s *service) ListShop(ctx context.Context, input *ListShopInput) (*ListShopOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	updated, err := s.withSession(ctx, input.SessionID, "list_shop", func(current *models.Session) (*models.Session, error) {
		if shopIsCurrent(current) {
			return current, nil
		}

		next := current.Clone()
		next.Shop = &models.ShopListing{
			Season: next.Progress.CurrentSeason,
			Game:   next.Progress.CurrentGame,
			Cards:  refs(economy.ListShop(s.catalog, s.roller)),
		}
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	return &ListShopOutput{
		Season:         updated.Shop.Season,
		Game:           updated.Shop.Game,
		Cards:          s.lookupAll(updated.Shop.Cards),
		CoachingPoints: updated.CoachingPoints,
	}, nil
}

// BuyCard buys a card from the current shop listing
func (s *service) BuyCard(ctx context.Context, input *BuyCardInput) (*BuyCardOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	out := &BuyCardOutput{}
	updated, err := s.withSession(ctx, input.SessionID, "buy_card", func(current *models.Session) (*models.Session, error) {
		if !shopIsCurrent(current) || !slices.Contains(current.Shop.Cards, input.Card) {
			return nil, ErrInvalidCard
		}
		card, ok := s.catalog.Lookup(input.Card)
		if !ok {
			return nil, ErrInvalidCard
		}

		bought, inst, err := economy.Buy(current, card)
		if err != nil {
			return nil, err
		}

		idx := slices.Index(bought.Shop.Cards, input.Card)
		bought.Shop.Cards = slices.Delete(bought.Shop.Cards, idx, idx+1)

		out.Instance = inst
		out.Price = economy.Price(card)
		return bought, nil
	})
	if err != nil {
		return nil, err
	}
	out.Session = updated

	s.log.Info("card bought",
		zap.String("session_id", updated.ID),
		zap.String("card", out.Instance.Card.Name),
		zap.Int("price", out.Price),
		zap.Int("coaching_points", updated.CoachingPoints))

	return out, nil
}

// SellCard sells a card from the deck for half its cost
func (s *service) SellCard(ctx context.Context, input *SellCardInput) (*SellCardOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	var refund int
	updated, err := s.withSession(ctx, input.SessionID, "sell_card", func(current *models.Session) (*models.Session, error) {
		sold, amount, err := economy.Sell(current, input.Card)
		if err != nil {
			return nil, err
		}
		refund = amount
		return sold, nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("card sold",
		zap.String("session_id", updated.ID),
		zap.Int("card_id", input.Card.ID),
		zap.String("kind", string(input.Card.Kind)),
		zap.Int("refund", refund))

	return &SellCardOutput{
		Session: updated,
		Refund:  refund,
	}, nil
}

// RollDraftReward returns the draft offer, rolling one if none is pending
func (s *service) RollDraftReward(ctx context.Context, input *RollDraftRewardInput) (*RollDraftRewardOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	updated, err := s.withSession(ctx, input.SessionID, "roll_draft", func(current *models.Session) (*models.Session, error) {
		if !economy.DraftAvailable(current) {
			return nil, ErrNoDraftAvailable
		}
		if len(current.PendingDraft) > 0 {
			return current, nil
		}

		next := current.Clone()
		next.PendingDraft = refs(economy.RollDraft(s.catalog, s.roller))
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	return &RollDraftRewardOutput{
		Cards: s.lookupAll(updated.PendingDraft),
	}, nil
}

// SelectDraftCard claims one card from the pending draft offer
func (s *service) SelectDraftCard(ctx context.Context, input *SelectDraftCardInput) (*SelectDraftCardOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	var instance *models.CardInstance
	updated, err := s.withSession(ctx, input.SessionID, "select_draft", func(current *models.Session) (*models.Session, error) {
		if !economy.DraftAvailable(current) {
			return nil, ErrNoDraftAvailable
		}
		if !slices.Contains(current.PendingDraft, input.Card) {
			return nil, ErrInvalidCard
		}
		card, ok := s.catalog.Lookup(input.Card)
		if !ok {
			return nil, ErrInvalidCard
		}

		claimed, inst, err := economy.ClaimDraft(current, card)
		if err != nil {
			return nil, err
		}
		instance = inst
		return claimed, nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("draft card selected",
		zap.String("session_id", updated.ID),
		zap.String("card", instance.Card.Name),
		zap.Int("picks_claimed", updated.DraftPicksClaimed))

	return &SelectDraftCardOutput{
		Session:  updated,
		Instance: instance,
	}, nil
}

func shopIsCurrent(s *models.Session) bool {
	return s.Shop != nil &&
		s.Shop.Season == s.Progress.CurrentSeason &&
		s.Shop.Game == s.Progress.CurrentGame
}

func refs(cards []models.Card) []models.CardRef {
	out := make([]models.CardRef, len(cards))
	for i, card := range cards {
		out[i] = card.Ref()
	}
	return out
}

// lookupAll resolves refs against the catalog, skipping any that no longer exist
func (s *service) lookupAll(cardRefs []models.CardRef) []models.Card {
	cards := make([]models.Card, 0, len(cardRefs))
	for _, ref := range cardRefs {
		if card, ok := s.catalog.Lookup(ref); ok {
			cards = append(cards, card)
		}
	}
	return cards
}
