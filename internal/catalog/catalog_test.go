package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/gridiron/internal/models"
)

type CatalogTestSuite struct {
	suite.Suite
	catalog *Catalog
}

func (s *CatalogTestSuite) SetupTest() {
	c, err := Default()
	s.Require().NoError(err)
	s.catalog = c
}

func (s *CatalogTestSuite) TestDefaultCatalogContents() {
	s.Len(s.catalog.Cards(models.CardKindPlayer), 8)
	s.Len(s.catalog.Cards(models.CardKindPlay), 8)
	s.Len(s.catalog.Cards(models.CardKindModifier), 6)
	s.Len(s.catalog.All(), 22)

	brady, ok := s.catalog.Lookup(models.CardRef{ID: 1, Kind: models.CardKindPlayer})
	s.Require().True(ok)
	s.Equal("Tom Brady", brady.Name)
	s.Equal(models.RarityLegendary, brady.Rarity)
	s.Equal(models.PositionQB, brady.Player.Position)
	s.Equal(95, brady.Player.Stats["passing"])

	screen, ok := s.catalog.Lookup(models.CardRef{ID: 2, Kind: models.CardKindPlay})
	s.Require().True(ok)
	s.Equal("Screen Pass", screen.Name)
	s.Equal(8, screen.Play.Yards)
	s.Equal(20, screen.Play.Risk)

	_, ok = s.catalog.Lookup(models.CardRef{ID: 99, Kind: models.CardKindPlay})
	s.False(ok)
}

func (s *CatalogTestSuite) TestModifierEffectsDecoded() {
	redZone, ok := s.catalog.Lookup(models.CardRef{ID: 1, Kind: models.CardKindModifier})
	s.Require().True(ok)
	s.Equal(1.5, redZone.Modifier.Effect.ScoringMultiplier)
	s.Zero(redZone.Modifier.Effect.MultiplierBoost)

	momentum, ok := s.catalog.Lookup(models.CardRef{ID: 5, Kind: models.CardKindModifier})
	s.Require().True(ok)
	s.Equal(20.0, momentum.Modifier.Effect.NextPlayBoost)
	s.Equal(0.25, momentum.Modifier.Effect.MultiplierBoost)

	injury, ok := s.catalog.Lookup(models.CardRef{ID: 6, Kind: models.CardKindModifier})
	s.Require().True(ok)
	s.Equal(-10, injury.Cost)
	s.Equal(-0.2, injury.Modifier.Effect.MultiplierBoost)
}

func (s *CatalogTestSuite) TestResolveArchetype() {
	a, found := s.catalog.ResolveArchetype("air_raid")
	s.True(found)
	s.Equal([]int{1, 4}, a.Players)
	s.Equal([]int{1, 5}, a.Plays)
	s.Equal([]int{2}, a.Modifiers)

	a, found = s.catalog.ResolveArchetype("run_and_shoot")
	s.False(found)
	s.Equal("balanced_offense", a.ID)

	s.Len(s.catalog.Archetypes(), 4)
	s.Equal("balanced_offense", s.catalog.Archetypes()[0].ID)
}

func (s *CatalogTestSuite) TestCareerLevels() {
	levels := s.catalog.CareerLevels()
	s.Require().Len(levels, 4)
	s.Equal(models.CareerLevelHighSchool, levels[0].Level)
	s.Empty(levels[3].NextLevel)

	level, ok := s.catalog.CareerLevelFor(0)
	s.True(ok)
	s.Equal(models.CareerLevelHighSchool, level.Level)

	level, _ = s.catalog.CareerLevelFor(4999.5)
	s.Equal(models.CareerLevelCollege, level.Level)

	level, _ = s.catalog.CareerLevelFor(25000)
	s.Equal(models.CareerLevelHallOfFame, level.Level)
}

func (s *CatalogTestSuite) TestUnlocked() {
	trick, ok := s.catalog.Archetype("trick_plays")
	s.Require().True(ok)
	s.False(s.catalog.Unlocked(trick, 999))
	s.True(s.catalog.Unlocked(trick, 1000))

	balanced := s.catalog.DefaultArchetype()
	s.True(s.catalog.Unlocked(balanced, 0))
}

func (s *CatalogTestSuite) TestAllReturnsCopy() {
	all := s.catalog.All()
	all[0].Name = "changed"

	card, _ := s.catalog.Lookup(models.CardRef{ID: 1, Kind: models.CardKindPlayer})
	s.Equal("Tom Brady", card.Name)
	s.Equal("Tom Brady", s.catalog.All()[0].Name)
}

func (s *CatalogTestSuite) TestParseRejectsBadInput() {
	testCases := []struct {
		name string
		yaml string
		err  error
	}{
		{
			name: "bad rarity",
			yaml: `
default_archetype: a
players: [{id: 1, name: X, rarity: mythic}]
archetypes: [{id: a}]`,
			err: ErrInvalidRarity,
		},
		{
			name: "duplicate card",
			yaml: `
default_archetype: a
plays: [{id: 1, name: X, rarity: common}, {id: 1, name: Y, rarity: common}]
archetypes: [{id: a}]`,
			err: ErrDuplicateID,
		},
		{
			name: "unknown effect key",
			yaml: `
default_archetype: a
modifiers: [{id: 1, name: X, rarity: common, effect: {warp_speed: 2}}]
archetypes: [{id: a}]`,
			err: ErrInvalidEffect,
		},
		{
			name: "missing default archetype",
			yaml: `
default_archetype: nope
archetypes: [{id: a}]`,
			err: ErrMissingDefaultArchetype,
		},
		{
			name: "unlock references unknown level",
			yaml: `
default_archetype: a
archetypes: [{id: a, unlock_requirement: {career_level: pro_bowl}}]`,
			err: ErrUnknownCareerLevel,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := Parse([]byte(tc.yaml))
			s.ErrorIs(err, tc.err)
		})
	}
}

func (s *CatalogTestSuite) TestLoad() {
	c, err := Load("")
	s.Require().NoError(err)
	s.Len(c.All(), 22)

	path := filepath.Join(s.T().TempDir(), "catalog.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(`
default_archetype: solo
plays:
  - {id: 1, name: Sneak, type: rushing, risk: 5, yards: 1, rarity: common, cost: 1}
archetypes:
  - {id: solo, plays: [1]}
`), 0o600))

	c, err = Load(path)
	s.Require().NoError(err)
	s.Len(c.All(), 1)
	s.Equal("solo", c.DefaultArchetype().ID)

	_, err = Load(filepath.Join(s.T().TempDir(), "missing.yaml"))
	s.Error(err)
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}
