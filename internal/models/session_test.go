package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession() *Session {
	s := &Session{
		ID:       "s1",
		Progress: NewProgress(),
		Status:   SessionStatusActive,
	}
	s.ResetPossession()
	for range 4 {
		id := s.NextInstanceID()
		s.Deck = append(s.Deck, &CardInstance{InstanceID: id, Card: Card{ID: 1, Kind: CardKindPlay, Name: "Draw Play", Play: &PlayStats{Type: PlayTypeRushing, Yards: 12}}})
	}
	s.Zones.Hand = []string{"c1", "c2"}
	s.Zones.DrawPile = []string{"c3"}
	s.Zones.Bench = []string{"c4"}
	return s
}

func TestSession_CloneIsDeep(t *testing.T) {
	s := testSession()
	s.Shop = &ShopListing{Season: 1, Game: 1, Cards: []CardRef{{ID: 1, Kind: CardKindPlay}}}

	c := s.Clone()
	c.Zones.Hand[0] = "changed"
	c.Deck[0].InstanceID = "changed"
	c.Shop.Cards[0].ID = 99
	c.Progress.CurrentGame = 5

	assert.Equal(t, "c1", s.Zones.Hand[0])
	assert.Equal(t, "c1", s.Deck[0].InstanceID)
	assert.Equal(t, 1, s.Shop.Cards[0].ID)
	assert.Equal(t, 1, s.Progress.CurrentGame)
}

func TestSession_ValidateZones(t *testing.T) {
	s := testSession()
	require.NoError(t, s.ValidateZones())

	s.Zones.Field = append(s.Zones.Field, "c1")
	assert.Error(t, s.ValidateZones(), "instance in two zones")

	s = testSession()
	s.Zones.Bench = nil
	assert.Error(t, s.ValidateZones(), "instance missing from zones")

	s = testSession()
	s.Zones.Hand = append(s.Zones.Hand, "ghost")
	assert.Error(t, s.ValidateZones(), "zone entry not in deck")
}

func TestZones_LocateAndRemove(t *testing.T) {
	s := testSession()

	zone, ok := s.Zones.Locate("c3")
	require.True(t, ok)
	assert.Equal(t, ZoneDraw, zone)

	assert.True(t, s.Zones.Remove("c3"))
	_, ok = s.Zones.Locate("c3")
	assert.False(t, ok)
	assert.False(t, s.Zones.Remove("c3"))
	assert.Equal(t, 3, s.Zones.Count())
}

func TestRarity_Weight(t *testing.T) {
	assert.Equal(t, 10, RarityCommon.Weight())
	assert.Equal(t, 5, RarityRare.Weight())
	assert.Equal(t, 2, RarityEpic.Weight())
	assert.Equal(t, 1, RarityLegendary.Weight())
	assert.False(t, Rarity("mythic").Valid())
}

func TestCard_PayloadAccessorsCheckTag(t *testing.T) {
	play := Card{Kind: CardKindPlay, Play: &PlayStats{Yards: 8}}
	_, ok := play.AsPlay()
	assert.True(t, ok)
	_, ok = play.AsPlayer()
	assert.False(t, ok)

	mislabeled := Card{Kind: CardKindModifier, Play: &PlayStats{Yards: 8}}
	_, ok = mislabeled.AsPlay()
	assert.False(t, ok)
	_, ok = mislabeled.AsModifier()
	assert.False(t, ok)
}

func TestCard_NameContains(t *testing.T) {
	c := Card{Name: "Goal Line TOUCHDOWN"}
	assert.True(t, c.NameContains("touchdown"))
	assert.False(t, c.NameContains("field goal"))
}
