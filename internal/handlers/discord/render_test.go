package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/gridiron/internal/models"
	"github.com/KirkDiggler/gridiron/internal/services/coach"
)

func TestParsePositions(t *testing.T) {
	hand := []string{"c1", "c2", "c3", "c4"}

	ids, err := parsePositions("3 1,2", hand)
	require.NoError(t, err)
	assert.Equal(t, []string{"c3", "c1", "c2"}, ids)

	ids, err = parsePositions("", hand)
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = parsePositions("5", hand)
	assert.EqualError(t, err, "position 5 is outside your hand of 4")

	_, err = parsePositions("one", hand)
	assert.Error(t, err)
}

func TestParseCardValue(t *testing.T) {
	testCases := []struct {
		value string
		want  models.CardRef
		err   bool
	}{
		{value: "play:2", want: models.CardRef{ID: 2, Kind: models.CardKindPlay}},
		{value: "Players: 4", want: models.CardRef{ID: 4, Kind: models.CardKindPlayer}},
		{value: "modifier:6", want: models.CardRef{ID: 6, Kind: models.CardKindModifier}},
		{value: "coach:1", err: true},
		{value: "play", err: true},
		{value: "play:two", err: true},
	}
	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			got, err := parseCardValue(tc.value)
			if tc.err {
				assert.ErrorIs(t, err, errBadCardValue)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, got, mustParse(t, cardValue(got)))
		})
	}
}

func mustParse(t *testing.T, value string) models.CardRef {
	t.Helper()
	ref, err := parseCardValue(value)
	require.NoError(t, err)
	return ref
}

func handSession() *models.Session {
	s := &models.Session{
		ID:        "session-1",
		CoachName: "Vince",
		Progress:  models.NewProgress(),
		Status:    models.SessionStatusActive,
		Deck: []*models.CardInstance{
			{InstanceID: "c1", Card: models.Card{ID: 2, Kind: models.CardKindPlay, Name: "Screen Pass", Play: &models.PlayStats{Type: models.PlayTypePassing, Yards: 8, Risk: 20}}},
			{InstanceID: "c2", Card: models.Card{ID: 1, Kind: models.CardKindPlayer, Name: "Tom Brady", Player: &models.PlayerStats{Position: models.PositionQB, Team: "Buccaneers"}}},
			{InstanceID: "c3", Card: models.Card{ID: 1, Kind: models.CardKindModifier, Name: "Momentum", Modifier: &models.ModifierStats{Type: "mental"}}},
		},
	}
	s.ResetPossession()
	s.Zones.Hand = []string{"c1", "c2"}
	s.Zones.Bench = []string{"c3"}
	return s
}

func TestRenderHand(t *testing.T) {
	rep := renderHand(handSession(), "Your Hand")

	require.Len(t, rep.Embeds, 1)
	assert.True(t, rep.Ephemeral)
	assert.Contains(t, rep.Embeds[0].Description, "`1` **Screen Pass**")
	assert.Contains(t, rep.Embeds[0].Description, "QB, Buccaneers")
	assert.Contains(t, rep.Embeds[0].Description, "Bench: Momentum")
	assert.Equal(t, "Season 1/10 · Game 1/10 · Drive 1/4", rep.Embeds[0].Footer.Text)

	require.Len(t, rep.Components, 2)
	menu := rep.Components[0].(discordgo.ActionsRow).Components[0].(discordgo.SelectMenu)
	assert.Equal(t, SelectPlayCards, menu.CustomID)
	assert.Equal(t, 2, menu.MaxValues)
	assert.Equal(t, "c1", menu.Options[0].Value)
}

func TestRenderHandTerminalSessionHasNoControls(t *testing.T) {
	s := handSession()
	s.Status = models.SessionStatusSeasonFailed

	rep := renderHand(s, "Your Hand")

	assert.Empty(t, rep.Components)
}

func TestRenderDrive(t *testing.T) {
	s := handSession()
	s.Score = 40
	out := &coach.PlayDriveOutput{
		Session:              s,
		Result:               &models.DriveResult{Score: 40, YardsGained: 20, Successful: true, Multiplier: 1},
		Transition:           models.TransitionNextDrive,
		CoachingPointsEarned: 4,
		BestScore:            40,
		NewBest:              true,
		Headline:             "Moving the chains",
		PlayByPlay:           []string{"Screen Pass: 8 yards"},
		TransitionMessage:    "On to drive 2.",
	}

	rep := renderDrive(out)

	require.Len(t, rep.Embeds, 1)
	assert.False(t, rep.Ephemeral)
	assert.Equal(t, "Moving the chains", rep.Embeds[0].Title)
	assert.Equal(t, "Screen Pass: 8 yards\n\nOn to drive 2.", rep.Embeds[0].Description)
	assert.Equal(t, colorGreen, rep.Embeds[0].Color)
	assert.Len(t, rep.Embeds[0].Fields, 6)
	assert.Len(t, rep.Components, 1)

	out.Result = &models.DriveResult{Turnover: true}
	out.Headline = ""
	out.NewBest = false
	out.Session.Status = models.SessionStatusSeasonFailed
	rep = renderDrive(out)
	assert.Equal(t, "Drive over: 0.0 points", rep.Embeds[0].Title)
	assert.Equal(t, colorRed, rep.Embeds[0].Color)
	assert.Empty(t, rep.Components)
}

func TestRenderDraftCollapsesRepeats(t *testing.T) {
	drawPlay := models.Card{ID: 3, Kind: models.CardKindPlay, Name: "Draw Play", Rarity: models.RarityCommon}
	rep := renderDraft(&coach.RollDraftRewardOutput{Cards: []models.Card{drawPlay, drawPlay, drawPlay}})

	menu := rep.Components[0].(discordgo.ActionsRow).Components[0].(discordgo.SelectMenu)
	assert.Equal(t, SelectDraftPick, menu.CustomID)
	require.Len(t, menu.Options, 1)
	assert.Equal(t, "play:3", menu.Options[0].Value)
}

func TestRenderShop(t *testing.T) {
	rep := renderShop(&coach.ListShopOutput{
		Season: 1,
		Game:   2,
		Cards: []models.Card{
			{ID: 4, Kind: models.CardKindPlayer, Name: "Cooper Kupp", Cost: 35},
			{ID: 6, Kind: models.CardKindModifier, Name: "Bad Weather", Cost: -10},
		},
		CoachingPoints: 50,
	})

	assert.Equal(t, "Pro Shop · Season 1 Game 2", rep.Embeds[0].Title)
	assert.Contains(t, rep.Embeds[0].Description, "Bad Weather")
	assert.Contains(t, rep.Embeds[0].Description, "· 0 pts")
	menu := rep.Components[0].(discordgo.ActionsRow).Components[0].(discordgo.SelectMenu)
	assert.Equal(t, SelectBuyCard, menu.CustomID)
	assert.Len(t, menu.Options, 2)

	empty := renderShop(&coach.ListShopOutput{})
	assert.Empty(t, empty.Components)
}

func TestRenderLeaderboardAndCareer(t *testing.T) {
	rep := renderLeaderboard([]*models.LeaderboardEntry{
		{Rank: 1, CoachID: "u1", CoachName: "Vince", BestScore: 420},
		{Rank: 2, CoachID: "u2", BestScore: 12.5},
	})
	assert.Equal(t, "`#1` **Vince** 420.0\n`#2` **u2** 12.5", rep.Embeds[0].Description)

	college := models.CareerLevel{Level: models.CareerLevelCollege, Name: "College", RequiredScore: 1000}
	rep = renderCareer(&coach.ListCareerLevelsOutput{
		Levels:    []models.CareerLevel{{Level: models.CareerLevelHighSchool, Name: "High School"}, college},
		Current:   college,
		BestScore: 1200,
	})
	assert.Equal(t, "· **High School** (0)\n▶ **College** (1000)", rep.Embeds[0].Description)
}
