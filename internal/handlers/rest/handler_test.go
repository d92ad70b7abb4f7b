package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/gridiron/internal/models"
	"github.com/KirkDiggler/gridiron/internal/services/coach"
	coachMocks "github.com/KirkDiggler/gridiron/internal/services/coach/mocks"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *coachMocks.MockService
	router      *gin.Engine
	session     *models.Session
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.mockService = coachMocks.NewMockService(s.ctrl)

	h, err := New(&Config{CoachService: s.mockService})
	s.Require().NoError(err)
	s.router = h.Router()

	s.session = &models.Session{
		ID:             "session-1",
		CoachID:        "vince",
		CoachName:      "vince",
		Archetype:      "balanced_offense",
		CoachingPoints: 100,
		Progress:       models.NewProgress(),
		Status:         models.SessionStatusActive,
	}
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) decode(rec *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func (s *HandlerTestSuite) TestNewRequiresService() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{})
	s.Error(err)
}

func (s *HandlerTestSuite) TestStartGame() {
	s.mockService.EXPECT().
		StartSession(gomock.Any(), &coach.StartSessionInput{
			CoachID:   "vince",
			CoachName: "vince",
			Archetype: "air_raid",
		}).
		Return(&coach.StartSessionOutput{
			Session:   s.session,
			Archetype: models.Archetype{ID: "air_raid", Name: "Air Raid"},
		}, nil)

	rec := s.do(http.MethodPost, "/api/game/start", gin.H{"player_name": "vince", "deck_type": "air_raid"})

	s.Equal(http.StatusCreated, rec.Code)
	body := s.decode(rec)
	s.Equal("session-1", body["session"].(map[string]any)["session_id"])
	s.Equal("air_raid", body["archetype"].(map[string]any)["id"])
	s.Equal(false, body["archetype_fallback"])
}

func (s *HandlerTestSuite) TestStartGameRequiresPlayerName() {
	rec := s.do(http.MethodPost, "/api/game/start", gin.H{"deck_type": "air_raid"})

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("player_name is required", s.decode(rec)["error"])
}

func (s *HandlerTestSuite) TestStartGameLockedArchetype() {
	s.mockService.EXPECT().
		StartSession(gomock.Any(), gomock.Any()).
		Return(nil, coach.ErrArchetypeLocked)

	rec := s.do(http.MethodPost, "/api/game/start", gin.H{"player_name": "vince", "deck_type": "trick_plays"})

	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *HandlerTestSuite) TestGetGameNotFound() {
	s.mockService.EXPECT().
		GetSession(gomock.Any(), &coach.GetSessionInput{SessionID: "missing"}).
		Return(nil, coach.ErrSessionNotFound)

	rec := s.do(http.MethodGet, "/api/game/missing", nil)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(string(coach.ErrSessionNotFound), s.decode(rec)["error"])
}

func (s *HandlerTestSuite) TestGetDeck() {
	s.session.Deck = []*models.CardInstance{{InstanceID: "c1", Card: models.Card{ID: 2, Kind: models.CardKindPlay, Name: "Screen Pass"}}}
	s.session.Zones.Hand = []string{"c1"}
	s.mockService.EXPECT().
		GetSession(gomock.Any(), &coach.GetSessionInput{SessionID: "session-1"}).
		Return(&coach.GetSessionOutput{Session: s.session}, nil)

	rec := s.do(http.MethodGet, "/api/game/session-1/deck", nil)

	s.Equal(http.StatusOK, rec.Code)
	body := s.decode(rec)
	s.Len(body["deck"], 1)
	s.Equal([]any{"c1"}, body["zones"].(map[string]any)["hand"])
}

func (s *HandlerTestSuite) TestDrawDefaultsToOneCard() {
	s.mockService.EXPECT().
		DrawCards(gomock.Any(), &coach.DrawCardsInput{SessionID: "session-1", Count: 1}).
		Return(&coach.DrawCardsOutput{Session: s.session}, nil)

	rec := s.do(http.MethodPost, "/api/game/session-1/draw", nil)

	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestDrawHandFull() {
	s.mockService.EXPECT().
		DrawCards(gomock.Any(), &coach.DrawCardsInput{SessionID: "session-1", Count: 3}).
		Return(nil, coach.ErrHandFull)

	rec := s.do(http.MethodPost, "/api/game/session-1/draw", gin.H{"count": 3})

	s.Equal(http.StatusConflict, rec.Code)
}

func (s *HandlerTestSuite) TestBenchAndRecall() {
	s.mockService.EXPECT().
		BenchCard(gomock.Any(), &coach.BenchCardInput{SessionID: "session-1", InstanceID: "c2"}).
		Return(&coach.BenchCardOutput{Session: s.session}, nil)
	s.mockService.EXPECT().
		RecallCard(gomock.Any(), &coach.RecallCardInput{SessionID: "session-1", InstanceID: "c9"}).
		Return(nil, fmt.Errorf("%w: %w", coach.ErrInvalidCard, fmt.Errorf("card is not on the bench")))

	s.Equal(http.StatusOK, s.do(http.MethodPost, "/api/game/session-1/bench", gin.H{"instance_id": "c2"}).Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/api/game/session-1/recall", gin.H{"instance_id": "c9"}).Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/api/game/session-1/bench", gin.H{}).Code)
}

func (s *HandlerTestSuite) TestPlayDrive() {
	result := &models.DriveResult{Score: 40, YardsGained: 20, Successful: true, FirstDown: true}
	next := s.session.Clone()
	next.Progress.CurrentDrive = 2
	s.mockService.EXPECT().
		PlayDrive(gomock.Any(), &coach.PlayDriveInput{SessionID: "session-1", InstanceIDs: []string{"c1", "c2"}}).
		Return(&coach.PlayDriveOutput{
			Session:              next,
			Result:               result,
			Transition:           models.TransitionNextDrive,
			CoachingPointsEarned: 4,
			BestScore:            40,
			NewBest:              true,
			Headline:             "Moving the chains",
		}, nil)

	rec := s.do(http.MethodPost, "/api/game/session-1/play-drive", gin.H{"cards": []string{"c1", "c2"}})

	s.Equal(http.StatusOK, rec.Code)
	body := s.decode(rec)
	s.Equal("next_drive", body["transition"])
	s.Equal(float64(4), body["coaching_points_earned"])
	s.Equal(true, body["drive_result"].(map[string]any)["drive_successful"])
	s.Equal(float64(2), body["game_progress"].(map[string]any)["current_drive"])
	s.Equal("Moving the chains", body["headline"])
}

func (s *HandlerTestSuite) TestPlayDriveErrors() {
	testCases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "session over", err: coach.ErrSessionOver, status: http.StatusConflict},
		{name: "busy", err: coach.ErrSessionBusy, status: http.StatusLocked},
		{name: "bad card", err: coach.ErrInvalidCard, status: http.StatusBadRequest},
		{name: "unexpected", err: fmt.Errorf("redis down"), status: http.StatusInternalServerError},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockService.EXPECT().PlayDrive(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := s.do(http.MethodPost, "/api/game/session-1/play-drive", gin.H{"cards": []string{"c1"}})

			s.Equal(tc.status, rec.Code)
		})
	}
}

func (s *HandlerTestSuite) TestUnexpectedErrorsAreNotLeaked() {
	s.mockService.EXPECT().
		GetSession(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("dial tcp 10.0.0.1:6379: connection refused"))

	rec := s.do(http.MethodGet, "/api/game/session-1", nil)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("internal server error", s.decode(rec)["error"])
}

func (s *HandlerTestSuite) TestShop() {
	s.mockService.EXPECT().
		ListShop(gomock.Any(), &coach.ListShopInput{SessionID: "session-1"}).
		Return(&coach.ListShopOutput{
			Season:         1,
			Game:           2,
			Cards:          []models.Card{{ID: 4, Kind: models.CardKindPlayer, Name: "Cooper Kupp", Cost: 35}},
			CoachingPoints: 100,
		}, nil)

	rec := s.do(http.MethodGet, "/api/game/session-1/shop", nil)

	s.Equal(http.StatusOK, rec.Code)
	body := s.decode(rec)
	s.Len(body["shop_cards"], 1)
	s.Equal(float64(100), body["coaching_points"])
	s.Equal(float64(2), body["game"])
}

func (s *HandlerTestSuite) TestBuyCard() {
	ref := models.CardRef{ID: 4, Kind: models.CardKindPlayer}
	bought := s.session.Clone()
	bought.CoachingPoints = 65
	s.mockService.EXPECT().
		BuyCard(gomock.Any(), &coach.BuyCardInput{SessionID: "session-1", Card: ref}).
		Return(&coach.BuyCardOutput{
			Session:  bought,
			Instance: &models.CardInstance{InstanceID: "c21"},
			Price:    35,
		}, nil)

	rec := s.do(http.MethodPost, "/api/game/session-1/buy-card", gin.H{"card": ref})

	s.Equal(http.StatusOK, rec.Code)
	body := s.decode(rec)
	s.Equal(float64(65), body["remaining_points"])
	s.Equal(float64(35), body["price"])
	s.Equal("c21", body["card"].(map[string]any)["instance_id"])
}

func (s *HandlerTestSuite) TestBuyCardErrors() {
	s.mockService.EXPECT().
		BuyCard(gomock.Any(), gomock.Any()).
		Return(nil, coach.ErrInsufficientFunds)

	rec := s.do(http.MethodPost, "/api/game/session-1/buy-card", gin.H{"card": gin.H{"id": 4, "type": "player"}})
	s.Equal(http.StatusPaymentRequired, rec.Code)

	rec = s.do(http.MethodPost, "/api/game/session-1/buy-card", gin.H{})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestSellCard() {
	ref := models.CardRef{ID: 2, Kind: models.CardKindPlay}
	s.mockService.EXPECT().
		SellCard(gomock.Any(), &coach.SellCardInput{SessionID: "session-1", Card: ref}).
		Return(&coach.SellCardOutput{Session: s.session, Refund: 5}, nil)

	rec := s.do(http.MethodPost, "/api/game/session-1/sell-card", gin.H{"card": ref})

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(float64(5), s.decode(rec)["refund"])
}

func (s *HandlerTestSuite) TestDraft() {
	s.mockService.EXPECT().
		RollDraftReward(gomock.Any(), &coach.RollDraftRewardInput{SessionID: "session-1"}).
		Return(nil, coach.ErrNoDraftAvailable)

	rec := s.do(http.MethodGet, "/api/game/session-1/draft-reward", nil)
	s.Equal(http.StatusConflict, rec.Code)

	ref := models.CardRef{ID: 3, Kind: models.CardKindPlay}
	s.mockService.EXPECT().
		SelectDraftCard(gomock.Any(), &coach.SelectDraftCardInput{SessionID: "session-1", Card: ref}).
		Return(&coach.SelectDraftCardOutput{Session: s.session, Instance: &models.CardInstance{InstanceID: "c21"}}, nil)

	rec = s.do(http.MethodPost, "/api/game/session-1/select-draft-card", gin.H{"card": ref})
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestListCardsAcceptsPluralKinds() {
	s.mockService.EXPECT().
		ListCards(gomock.Any(), &coach.ListCardsInput{Kind: models.CardKindPlayer}).
		Return(&coach.ListCardsOutput{Cards: []models.Card{{ID: 1, Kind: models.CardKindPlayer}}}, nil)
	s.mockService.EXPECT().
		ListCards(gomock.Any(), &coach.ListCardsInput{}).
		Return(&coach.ListCardsOutput{}, nil)
	s.mockService.EXPECT().
		ListCards(gomock.Any(), &coach.ListCardsInput{Kind: "coache"}).
		Return(nil, coach.ErrInvalidInput)

	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/cards/players", nil).Code)
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/cards", nil).Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/api/cards/coaches", nil).Code)
}

func (s *HandlerTestSuite) TestDeckTypes() {
	s.mockService.EXPECT().
		ListArchetypes(gomock.Any(), &coach.ListArchetypesInput{CoachID: "vince"}).
		Return(&coach.ListArchetypesOutput{Archetypes: []coach.ArchetypeOption{
			{Archetype: models.Archetype{ID: "balanced_offense"}, Unlocked: true},
			{Archetype: models.Archetype{ID: "trick_plays"}},
		}}, nil)

	rec := s.do(http.MethodGet, "/api/deck-types?player_name=vince", nil)

	s.Equal(http.StatusOK, rec.Code)
	deckTypes := s.decode(rec)["deck_types"].([]any)
	s.Require().Len(deckTypes, 2)
	s.Equal("balanced_offense", deckTypes[0].(map[string]any)["id"])
	s.Equal(true, deckTypes[0].(map[string]any)["unlocked"])
	s.Equal(false, deckTypes[1].(map[string]any)["unlocked"])
}

func (s *HandlerTestSuite) TestCareerProgress() {
	s.mockService.EXPECT().
		ListCareerLevels(gomock.Any(), &coach.ListCareerLevelsInput{}).
		Return(&coach.ListCareerLevelsOutput{
			Levels:  []models.CareerLevel{{Level: models.CareerLevelHighSchool}, {Level: models.CareerLevelCollege}},
			Current: models.CareerLevel{Level: models.CareerLevelHighSchool},
		}, nil)

	rec := s.do(http.MethodGet, "/api/career-progress", nil)

	s.Equal(http.StatusOK, rec.Code)
	body := s.decode(rec)
	s.Len(body["career_levels"], 2)
	s.Equal("high_school", body["current_level"].(map[string]any)["level"])
}

func (s *HandlerTestSuite) TestLeaderboard() {
	s.mockService.EXPECT().
		GetLeaderboard(gomock.Any(), &coach.GetLeaderboardInput{Limit: 10}).
		Return(&coach.GetLeaderboardOutput{Entries: []*models.LeaderboardEntry{{Rank: 1, CoachID: "vince", BestScore: 420}}}, nil)
	s.mockService.EXPECT().
		GetLeaderboard(gomock.Any(), &coach.GetLeaderboardInput{Limit: 3}).
		Return(&coach.GetLeaderboardOutput{}, nil)

	rec := s.do(http.MethodGet, "/api/leaderboard", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Len(s.decode(rec)["leaderboard"], 1)

	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/leaderboard?limit=3", nil).Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/api/leaderboard?limit=zero", nil).Code)
}

func (s *HandlerTestSuite) TestSessionsAndCoaches() {
	s.mockService.EXPECT().
		ListSessions(gomock.Any(), &coach.ListSessionsInput{CoachID: "vince"}).
		Return(&coach.ListSessionsOutput{Sessions: []*models.Session{s.session}}, nil)
	s.mockService.EXPECT().
		GetCoach(gomock.Any(), &coach.GetCoachInput{CoachID: "nobody"}).
		Return(nil, coach.ErrCoachNotFound)
	s.mockService.EXPECT().
		AbandonSession(gomock.Any(), &coach.AbandonSessionInput{CoachID: "vince"}).
		Return(&coach.AbandonSessionOutput{SessionID: "session-1", Score: 12.5}, nil)

	rec := s.do(http.MethodGet, "/api/sessions?player_name=vince", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Len(s.decode(rec)["sessions"], 1)

	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/api/coaches/nobody", nil).Code)

	rec = s.do(http.MethodDelete, "/api/coaches/vince/session", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(12.5, s.decode(rec)["score"])
}

func (s *HandlerTestSuite) TestCORSPreflight() {
	req := httptest.NewRequest(http.MethodOptions, "/api/leaderboard", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()

	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusNoContent, rec.Code)
	s.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
