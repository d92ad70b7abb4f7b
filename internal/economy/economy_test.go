package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/gridiron/internal/catalog"
	"github.com/KirkDiggler/gridiron/internal/dice"
	"github.com/KirkDiggler/gridiron/internal/models"
)

type EconomyTestSuite struct {
	suite.Suite
	catalog *catalog.Catalog
	roller  dice.Roller
	session *models.Session
}

func (s *EconomyTestSuite) SetupTest() {
	c, err := catalog.Default()
	s.Require().NoError(err)
	s.catalog = c
	s.roller = dice.New(&dice.Config{Seed: 11})

	s.session = &models.Session{ID: "session-1", Progress: models.NewProgress()}
	for _, ref := range []models.CardRef{
		{ID: 2, Kind: models.CardKindPlay},
		{ID: 1, Kind: models.CardKindPlayer},
		{ID: 2, Kind: models.CardKindPlay},
	} {
		card, ok := c.Lookup(ref)
		s.Require().True(ok)
		inst := &models.CardInstance{InstanceID: s.session.NextInstanceID(), Card: card}
		s.session.Deck = append(s.session.Deck, inst)
		s.session.Zones.DrawPile = append(s.session.Zones.DrawPile, inst.InstanceID)
	}
}

func (s *EconomyTestSuite) lookup(kind models.CardKind, id int) models.Card {
	card, ok := s.catalog.Lookup(models.CardRef{ID: id, Kind: kind})
	s.Require().True(ok)
	return card
}

func (s *EconomyTestSuite) TestListShopReturnsSixDistinctCards() {
	for range 50 {
		shop := ListShop(s.catalog, s.roller)
		s.Len(shop, ShopSize)

		seen := make(map[models.CardRef]bool)
		for _, card := range shop {
			s.False(seen[card.Ref()], "duplicate %v", card.Ref())
			seen[card.Ref()] = true
		}
	}
}

func (s *EconomyTestSuite) TestRollDraftFollowsRarityWeights() {
	counts := make(map[models.Rarity]int)
	for range 2000 {
		draft := RollDraft(s.catalog, s.roller)
		s.Require().Len(draft, DraftSize)
		for _, card := range draft {
			counts[card.Rarity]++
		}
	}

	// default catalog has 7 commons, 5 rares, 8 epics and 2 legendaries
	s.Greater(counts[models.RarityCommon], counts[models.RarityRare])
	s.Greater(counts[models.RarityRare], counts[models.RarityEpic])
	s.Greater(counts[models.RarityEpic], counts[models.RarityLegendary])
}

func (s *EconomyTestSuite) TestRollDraftCanRepeatACard() {
	pool := fixedPool{s.lookup(models.CardKindPlay, 2)}

	draft := RollDraft(pool, s.roller)
	s.Require().Len(draft, DraftSize)
	for _, card := range draft {
		s.Equal("Screen Pass", card.Name)
	}
}

func (s *EconomyTestSuite) TestBuyInsufficientFundsLeavesSessionUnchanged() {
	s.session.CoachingPoints = 30
	before := s.session.Clone()

	expensive := s.lookup(models.CardKindPlayer, 4) // Cooper Kupp, 35
	_, _, err := Buy(s.session, expensive)

	s.ErrorIs(err, ErrInsufficientFunds)
	s.Equal(before, s.session)
}

func (s *EconomyTestSuite) TestBuyAddsToDeckAndDiscard() {
	s.session.CoachingPoints = 40

	bought, inst, err := Buy(s.session, s.lookup(models.CardKindPlayer, 4))
	s.Require().NoError(err)

	s.Equal(5, bought.CoachingPoints)
	s.Len(bought.Deck, 4)
	s.Equal("c4", inst.InstanceID)
	s.Equal([]string{"c4"}, bought.Zones.DiscardPile)
	s.NoError(bought.ValidateZones())
	s.Len(s.session.Deck, 3, "input untouched")
}

func (s *EconomyTestSuite) TestBuyNegativeCostCardIsFree() {
	s.session.CoachingPoints = 0

	bought, _, err := Buy(s.session, s.lookup(models.CardKindModifier, 6))
	s.Require().NoError(err)
	s.Zero(bought.CoachingPoints)
	s.Len(bought.Deck, 4)
}

func (s *EconomyTestSuite) TestSellRemovesFirstMatch() {
	s.session.CoachingPoints = 0

	sold, refund, err := Sell(s.session, models.CardRef{ID: 2, Kind: models.CardKindPlay})
	s.Require().NoError(err)

	s.Equal(5, refund)
	s.Equal(5, sold.CoachingPoints)
	s.Require().Len(sold.Deck, 2)
	s.Equal("c2", sold.Deck[0].InstanceID)
	s.Equal("c3", sold.Deck[1].InstanceID)
	s.Equal([]string{"c2", "c3"}, sold.Zones.DrawPile)
	s.NoError(sold.ValidateZones())
}

func (s *EconomyTestSuite) TestSellMissingCard() {
	before := s.session.Clone()

	_, _, err := Sell(s.session, models.CardRef{ID: 2, Kind: models.CardKindModifier})

	s.ErrorIs(err, ErrCardNotFound)
	s.Equal(before, s.session)
}

func (s *EconomyTestSuite) TestSellThenBuyBackNeverProfits() {
	for _, card := range s.catalog.All() {
		s.Run(card.Name, func() {
			start := s.session.Clone()
			start.CoachingPoints = 100
			owned, _, err := Buy(start, card)
			s.Require().NoError(err)
			owned.CoachingPoints = 100

			sold, _, err := Sell(owned, card.Ref())
			s.Require().NoError(err)
			rebought, _, err := Buy(sold, card)
			s.Require().NoError(err)

			s.LessOrEqual(rebought.CoachingPoints, 100)
		})
	}
}

func (s *EconomyTestSuite) TestDraftGating() {
	s.False(DraftAvailable(s.session))

	_, _, err := ClaimDraft(s.session, s.lookup(models.CardKindPlay, 3))
	s.ErrorIs(err, ErrNoDraftAvailable)

	s.session.Progress.GamesWonInSeason = 1
	s.session.PendingDraft = []models.CardRef{{ID: 3, Kind: models.CardKindPlay}}
	s.True(DraftAvailable(s.session))

	claimed, inst, err := ClaimDraft(s.session, s.lookup(models.CardKindPlay, 3))
	s.Require().NoError(err)
	s.Equal("Draw Play", inst.Card.Name)
	s.Equal(1, claimed.DraftPicksClaimed)
	s.Nil(claimed.PendingDraft)
	s.Contains(claimed.Zones.DiscardPile, inst.InstanceID)
	s.False(DraftAvailable(claimed))
}

func TestEconomySuite(t *testing.T) {
	suite.Run(t, new(EconomyTestSuite))
}

func TestRefund(t *testing.T) {
	assert.Equal(t, 5, Refund(10))
	assert.Equal(t, 12, Refund(25))
	assert.Equal(t, 0, Refund(0))
	assert.Equal(t, -5, Refund(-10))
	assert.Equal(t, -6, Refund(-11))
	assert.Equal(t, -1, Refund(-1))
}

type fixedPool []models.Card

func (p fixedPool) All() []models.Card {
	return append([]models.Card(nil), p...)
}
