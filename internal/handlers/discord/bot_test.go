package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/gridiron/internal/models"
	"github.com/KirkDiggler/gridiron/internal/services/coach"
	coachMocks "github.com/KirkDiggler/gridiron/internal/services/coach/mocks"
)

func TestNewValidatesConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCoach := coachMocks.NewMockService(ctrl)

	_, err := New(nil)
	assert.Error(t, err)

	_, err = New(&Config{CoachService: mockCoach})
	assert.EqualError(t, err, "token cannot be empty")

	_, err = New(&Config{Token: "token"})
	assert.EqualError(t, err, "coach service cannot be nil")

	bot, err := New(&Config{Token: "token", CoachService: mockCoach})
	require.NoError(t, err)
	assert.Equal(t, "gridiron", bot.gridiron.GetName())
}

func TestDispatchRoutesComponents(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCoach := coachMocks.NewMockService(ctrl)

	bot, err := New(&Config{Token: "token", CoachService: mockCoach})
	require.NoError(t, err)
	bot.commands[bot.gridiron.GetName()] = bot.gridiron
	bot.RegisterComponents(bot.gridiron)

	mockCoach.EXPECT().
		GetLeaderboard(gomock.Any(), gomock.Any()).
		Return(&coach.GetLeaderboardOutput{Entries: []*models.LeaderboardEntry{}}, nil)

	r := &fakeResponder{}
	bot.dispatch(r, slash("leaderboard"))
	require.Len(t, r.responses, 1)
	assert.Equal(t, "Leaderboard", r.last().Data.Embeds[0].Title)

	bot.dispatch(r, component("someone_elses_button"))
	require.Len(t, r.responses, 2)
	assert.Equal(t, "Unknown button: someone_elses_button", r.last().Data.Embeds[0].Description)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, r.last().Data.Flags)
}
