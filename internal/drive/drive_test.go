package drive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/gridiron/internal/catalog"
	"github.com/KirkDiggler/gridiron/internal/dice/mocks"
	"github.com/KirkDiggler/gridiron/internal/models"
)

type ResolverTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockRoller *mocks.MockRoller
	catalog    *catalog.Catalog
	resolver   *Resolver
	opening    DefenseContext
}

func (s *ResolverTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRoller = mocks.NewMockRoller(s.ctrl)

	c, err := catalog.Default()
	s.Require().NoError(err)
	s.catalog = c

	s.resolver = NewResolver(s.mockRoller)
	s.opening = DefenseContext{Season: 1, Game: 1}
}

func (s *ResolverTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ResolverTestSuite) card(kind models.CardKind, id int) models.Card {
	c, ok := s.catalog.Lookup(models.CardRef{ID: id, Kind: kind})
	s.Require().True(ok, "%s %d", kind, id)
	return c
}

func (s *ResolverTestSuite) rolls(values ...int) {
	calls := make([]any, len(values))
	for i, v := range values {
		calls[i] = s.mockRoller.EXPECT().Roll(100).Return(v)
	}
	gomock.InOrder(calls...)
}

func (s *ResolverTestSuite) TestEmptyDrive() {
	result := s.resolver.Resolve(nil, s.opening)

	s.Zero(result.Score)
	s.False(result.Successful)
	s.Zero(result.YardsGained)
	s.Zero(result.PointsScored)
	s.False(result.Turnover)
	s.Zero(result.DownsUsed)
	s.Empty(result.Plays)
}

func (s *ResolverTestSuite) TestScreenPassThenDrawPlay() {
	s.rolls(50, 50)

	result := s.resolver.Resolve([]models.Card{
		s.card(models.CardKindPlay, 2),
		s.card(models.CardKindPlay, 3),
	}, s.opening)

	s.InDelta(20, result.YardsGained, 1e-9)
	s.True(result.FirstDown)
	s.True(result.Successful)
	s.False(result.Turnover)
	s.Equal(2, result.SuccessfulPlays)
	s.Equal(2, result.DownsUsed)
	s.Equal(10, result.PressureLevel)
	s.InDelta(1.0, result.Multiplier, 1e-9)
	s.InDelta(2*10+20*1.0, result.Score, 1e-9)

	s.Require().Len(result.Plays, 2)
	s.InDelta(85, result.Plays[0].SuccessChance, 1e-9)
	s.InDelta(75, result.Plays[1].SuccessChance, 1e-9)
}

func (s *ResolverTestSuite) TestFailedRollStopsTheDrive() {
	// 86 exceeds the 85% chance of the opening screen pass
	s.rolls(86)

	result := s.resolver.Resolve([]models.Card{
		s.card(models.CardKindPlay, 2),
		s.card(models.CardKindPlay, 3),
		s.card(models.CardKindPlay, 8),
	}, s.opening)

	s.True(result.Turnover)
	s.False(result.Successful)
	s.Zero(result.YardsGained)
	s.Zero(result.PointsScored)
	s.Zero(result.SuccessfulPlays)
	s.Zero(result.Score)
	s.Equal(1, result.DownsUsed)
	s.Equal(5, result.PressureLevel)
	s.Require().Len(result.Plays, 1)
	s.True(result.Plays[0].Failed)
}

func (s *ResolverTestSuite) TestFailureMidDriveKeepsEarlierYardsOnly() {
	s.rolls(1, 100)

	result := s.resolver.Resolve([]models.Card{
		s.card(models.CardKindPlay, 3),
		s.card(models.CardKindPlay, 1),
		s.card(models.CardKindPlay, 2),
	}, s.opening)

	s.True(result.Turnover)
	s.InDelta(12, result.YardsGained, 1e-9)
	s.Equal(1, result.SuccessfulPlays)
	s.Zero(result.PointsScored)
	s.False(result.Successful)
	s.Zero(result.Score)
	s.Equal(2, result.DownsUsed)
}

func (s *ResolverTestSuite) TestPlayerBoostAndPositionalSynergy() {
	s.rolls(1)

	result := s.resolver.Resolve([]models.Card{
		s.card(models.CardKindPlayer, 1), // Brady, QB, legendary
		s.card(models.CardKindPlay, 2),   // Screen Pass
	}, s.opening)

	// yards use the multiplier from before the play's own synergy
	s.InDelta(8*1.1, result.YardsGained, 1e-9)
	// +0.1 player, then +0.1 shared tag and +0.2 for the quarterback
	s.InDelta(1.4, result.Multiplier, 1e-9)
	s.False(result.FirstDown)
	s.False(result.Successful)
	s.Zero(result.Score)
}

func (s *ResolverTestSuite) TestScoringMultiplierAndHailMary() {
	s.rolls(45)

	result := s.resolver.Resolve([]models.Card{
		s.card(models.CardKindModifier, 1), // Red Zone Boost
		s.card(models.CardKindPlay, 1),     // Hail Mary
	}, s.opening)

	s.InDelta(75, result.YardsGained, 1e-9)
	s.Equal(6, result.PointsScored)
	s.True(result.Successful)
	s.InDelta(1.9, result.Multiplier, 1e-9)
	s.InDelta(10+75*1.9+6*20, result.Score, 1e-9)
}

func (s *ResolverTestSuite) TestShortHailMaryDoesNotScore() {
	s.rolls(1)

	hailMary := s.card(models.CardKindPlay, 1)
	hailMary.Play = &models.PlayStats{Type: models.PlayTypePassing, Risk: 90, Yards: 30}

	result := s.resolver.Resolve([]models.Card{hailMary}, s.opening)

	s.Zero(result.PointsScored)
	s.True(result.Successful)
}

func (s *ResolverTestSuite) TestFieldGoalSucceedsWithoutYards() {
	s.rolls(1)

	result := s.resolver.Resolve([]models.Card{s.card(models.CardKindPlay, 7)}, s.opening)

	s.Zero(result.YardsGained)
	s.Equal(3, result.PointsScored)
	s.False(result.FirstDown)
	s.True(result.Successful)
	s.InDelta(10+3*20, result.Score, 1e-9)
}

func (s *ResolverTestSuite) TestMultiplierBoostModifiers() {
	result := s.resolver.Resolve([]models.Card{
		s.card(models.CardKindModifier, 5), // Momentum +0.25
		s.card(models.CardKindModifier, 6), // Injury Report -0.2
		s.card(models.CardKindModifier, 2), // Weather Advantage, no multiplier effect
	}, s.opening)

	s.InDelta(1.05, result.Multiplier, 1e-9)
	s.Equal(3, result.DownsUsed)
	s.Equal(15, result.PressureLevel)
	s.False(result.Successful)
}

func (s *ResolverTestSuite) TestModifierAppliesBoostThenScale() {
	mod := models.Card{
		Kind: models.CardKindModifier,
		Name: "Two Minute Drill",
		Modifier: &models.ModifierStats{Effect: models.ModifierEffect{
			MultiplierBoost:   0.5,
			ScoringMultiplier: 2,
		}},
	}

	result := s.resolver.Resolve([]models.Card{mod}, s.opening)
	s.InDelta(3.0, result.Multiplier, 1e-9)
}

func (s *ResolverTestSuite) TestDefenseRaisesRisk() {
	s.rolls(40)

	// season 3 game 5: rating 90, Draw Play chance 100 - 27 - 5 = 68
	result := s.resolver.Resolve([]models.Card{s.card(models.CardKindPlay, 3)}, DefenseContext{Season: 3, Game: 5})

	s.Equal(90, result.DefenseRating)
	s.Require().Len(result.Plays, 1)
	s.InDelta(68, result.Plays[0].SuccessChance, 1e-9)
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func TestDefenseRating(t *testing.T) {
	assert.Equal(t, 50, DefenseRating(1, 1))
	assert.Equal(t, 90, DefenseRating(3, 5))
	assert.Equal(t, 185, DefenseRating(10, 10))
}

func TestSuccessChance(t *testing.T) {
	assert.InDelta(t, 85, SuccessChance(20, 50, 5), 1e-9)
	assert.InDelta(t, 10, SuccessChance(90, 90, 20), 1e-9)
	assert.InDelta(t, 10, SuccessChance(200, 90, 5), 1e-9)
}

func TestScoringPoints(t *testing.T) {
	assert.Equal(t, 6, ScoringPoints(models.Card{Name: "Goal Line Touchdown"}, 3))
	assert.Equal(t, 3, ScoringPoints(models.Card{Name: "Field Goal"}, 0))
	assert.Equal(t, 6, ScoringPoints(models.Card{Name: "Hail Mary"}, 40))
	assert.Equal(t, 0, ScoringPoints(models.Card{Name: "hail mary"}, 39.9))
	assert.Equal(t, 0, ScoringPoints(models.Card{Name: "Screen Pass"}, 80))
}
