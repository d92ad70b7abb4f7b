package discord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/KirkDiggler/gridiron/internal/models"
	"github.com/KirkDiggler/gridiron/internal/services/coach"
	"github.com/KirkDiggler/gridiron/internal/services/commentary"
)

const (
	commandTimeout     = 10 * time.Second
	leaderboardLimit   = 10
	defaultDrawCount   = 1
	maxDrawCountOption = models.HandCapacity
)

var errNoSession = errors.New("coach has no current session")

// GridironCommand handles the /gridiron command and its message components
type GridironCommand struct {
	BaseCommand
	coachService coach.Service
	commentary   commentary.Service
	log          *zap.Logger
}

// NewGridironCommand creates a new gridiron command handler. Archetype choices are
// offered on /gridiron start.
func NewGridironCommand(coachService coach.Service, commentarySvc commentary.Service, archetypes []models.Archetype, log *zap.Logger) *GridironCommand {
	if log == nil {
		log = zap.NewNop()
	}

	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, a := range archetypes {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: a.Name, Value: a.ID})
	}
	minCount := float64(1)

	return &GridironCommand{
		BaseCommand: BaseCommand{
			Name:        "gridiron",
			Description: "Coach a football team through the seasons with a deck of cards",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Start a new session",
					Options: []*discordgo.ApplicationCommandOption{{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "playbook",
						Description: "Starter deck",
						Choices:     choices,
					}},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "hand",
					Description: "Show your hand",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "draw",
					Description: "Draw cards into your hand",
					Options: []*discordgo.ApplicationCommandOption{{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "count",
						Description: "How many cards to draw",
						MinValue:    &minCount,
						MaxValue:    maxDrawCountOption,
					}},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "drive",
					Description: "Play a drive with cards from your hand",
					Options: []*discordgo.ApplicationCommandOption{{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "cards",
						Description: "Hand positions in play order, e.g. 1 3 2",
						Required:    true,
					}},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "bench",
					Description: "Move a card from your hand to the bench",
					Options: []*discordgo.ApplicationCommandOption{{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "position",
						Description: "Hand position",
						Required:    true,
						MinValue:    &minCount,
					}},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "recall",
					Description: "Bring a benched card back to your hand",
					Options: []*discordgo.ApplicationCommandOption{{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "position",
						Description: "Bench position",
						Required:    true,
						MinValue:    &minCount,
					}},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "shop",
					Description: "Open the shop for this game",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "sell",
					Description: "Sell a card from your deck for half its cost",
					Options: []*discordgo.ApplicationCommandOption{{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "card",
						Description: "Card as kind:id, e.g. play:2",
						Required:    true,
					}},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "draft",
					Description: "Roll your draft reward",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "career",
					Description: "Show the career ladder",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "leaderboard",
					Description: "Show the best coaches",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "quit",
					Description: "Abandon your current session",
				},
			},
		},
		coachService: coachService,
		commentary:   commentarySvc,
		log:          log,
	}
}

// ComponentIDs returns the buttons and menus this command renders
func (c *GridironCommand) ComponentIDs() []string {
	return []string{
		ButtonDraw, ButtonMulligan, ButtonShop, ButtonDraft, ButtonShowHand,
		SelectPlayCards, SelectBuyCard, SelectDraftPick,
	}
}

// Handle processes a /gridiron slash command
func (c *GridironCommand) Handle(r Responder, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}
	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	userID, username := interactionUser(i)
	sub := data.Options[0]
	opts := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(sub.Options))
	for _, o := range sub.Options {
		opts[o.Name] = o
	}

	var rep *reply
	var err error
	switch sub.Name {
	case "start":
		playbook := ""
		if o, ok := opts["playbook"]; ok {
			playbook = o.StringValue()
		}
		rep, err = c.start(ctx, userID, username, playbook)
	case "hand":
		rep, err = c.hand(ctx, userID)
	case "draw":
		count := defaultDrawCount
		if o, ok := opts["count"]; ok {
			count = int(o.IntValue())
		}
		rep, err = c.draw(ctx, userID, count)
	case "drive":
		rep, err = c.drive(ctx, userID, opts["cards"].StringValue())
	case "bench":
		rep, err = c.bench(ctx, userID, int(opts["position"].IntValue()))
	case "recall":
		rep, err = c.recall(ctx, userID, int(opts["position"].IntValue()))
	case "shop":
		rep, err = c.shop(ctx, userID)
	case "sell":
		rep, err = c.sell(ctx, userID, opts["card"].StringValue())
	case "draft":
		rep, err = c.draft(ctx, userID)
	case "career":
		rep, err = c.career(ctx, userID)
	case "leaderboard":
		rep, err = c.leaderboard(ctx)
	case "quit":
		rep, err = c.quit(ctx, userID)
	default:
		return respondWithError(r, i, fmt.Sprintf("Unknown subcommand: %s", sub.Name))
	}

	return c.send(ctx, r, i, sub.Name, rep, err)
}

// HandleComponent processes the buttons and select menus rendered by this command
func (c *GridironCommand) HandleComponent(r Responder, i *discordgo.InteractionCreate) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	userID, _ := interactionUser(i)
	data := i.MessageComponentData()

	var rep *reply
	var err error
	switch data.CustomID {
	case ButtonDraw:
		rep, err = c.draw(ctx, userID, defaultDrawCount)
	case ButtonMulligan:
		rep, err = c.mulligan(ctx, userID)
	case ButtonShop:
		rep, err = c.shop(ctx, userID)
	case ButtonDraft:
		rep, err = c.draft(ctx, userID)
	case ButtonShowHand:
		rep, err = c.hand(ctx, userID)
		if rep != nil {
			// the drive result stays in the channel; the hand is private
			rep.Ephemeral = true
		}
	case SelectPlayCards:
		rep, err = c.driveInstances(ctx, userID, data.Values)
	case SelectBuyCard:
		rep, err = c.buy(ctx, userID, firstValue(data.Values))
	case SelectDraftPick:
		rep, err = c.pick(ctx, userID, firstValue(data.Values))
	default:
		return respondWithError(r, i, fmt.Sprintf("Unknown button: %s", data.CustomID))
	}

	return c.send(ctx, r, i, data.CustomID, rep, err)
}

func firstValue(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func (c *GridironCommand) send(ctx context.Context, r Responder, i *discordgo.InteractionCreate, action string, rep *reply, err error) error {
	if err != nil {
		return respondWithError(r, i, c.errorMessage(ctx, action, err))
	}
	return respond(r, i, rep)
}

// errorType maps a failure to the commentary code that explains it
func errorType(err error) string {
	switch {
	case errors.Is(err, errNoSession), errors.Is(err, coach.ErrSessionNotFound), errors.Is(err, coach.ErrCoachNotFound):
		return commentary.ErrorTypeNoSession
	case errors.Is(err, coach.ErrSessionOver):
		return commentary.ErrorTypeSessionOver
	case errors.Is(err, coach.ErrSessionBusy):
		return commentary.ErrorTypeSessionBusy
	case errors.Is(err, coach.ErrInvalidCard), errors.Is(err, coach.ErrCardNotFound):
		return commentary.ErrorTypeInvalidCard
	case errors.Is(err, coach.ErrInsufficientFunds):
		return commentary.ErrorTypeInsufficient
	case errors.Is(err, coach.ErrHandFull):
		return commentary.ErrorTypeHandFull
	case errors.Is(err, coach.ErrNoDraftAvailable):
		return commentary.ErrorTypeNoDraft
	case errors.Is(err, coach.ErrArchetypeLocked):
		return commentary.ErrorTypeLocked
	case errors.Is(err, coach.ErrInvalidInput), errors.Is(err, errBadCardValue), errors.As(err, new(*inputError)):
		return commentary.ErrorTypeInvalidInput
	}
	return ""
}

func (c *GridironCommand) errorMessage(ctx context.Context, action string, err error) string {
	var ie *inputError
	if errors.As(err, &ie) {
		return ie.Error()
	}

	kind := errorType(err)
	if kind == "" {
		c.log.Error("gridiron command failed", zap.String("action", action), zap.Error(err))
	}
	if c.commentary == nil {
		return err.Error()
	}

	out, cerr := c.commentary.GetErrorMessage(ctx, &commentary.GetErrorMessageInput{ErrorType: kind})
	if cerr != nil {
		return err.Error()
	}
	return out.Message
}

// inputError is a malformed slash option; its text goes back to the coach as is
type inputError struct {
	msg string
}

func (e *inputError) Error() string {
	return e.msg
}

// currentSession loads the coach's active session
func (c *GridironCommand) currentSession(ctx context.Context, userID string) (*models.Session, error) {
	coachOut, err := c.coachService.GetCoach(ctx, &coach.GetCoachInput{CoachID: userID})
	if err != nil {
		if errors.Is(err, coach.ErrCoachNotFound) {
			return nil, errNoSession
		}
		return nil, err
	}
	if coachOut.Coach.CurrentSessionID == "" {
		return nil, errNoSession
	}

	sessionOut, err := c.coachService.GetSession(ctx, &coach.GetSessionInput{SessionID: coachOut.Coach.CurrentSessionID})
	if err != nil {
		return nil, err
	}
	return sessionOut.Session, nil
}

func (c *GridironCommand) start(ctx context.Context, userID, username, playbook string) (*reply, error) {
	out, err := c.coachService.StartSession(ctx, &coach.StartSessionInput{
		CoachID:   userID,
		CoachName: username,
		Archetype: playbook,
	})
	if err != nil {
		return nil, err
	}
	return renderStart(out), nil
}

func (c *GridironCommand) hand(ctx context.Context, userID string) (*reply, error) {
	s, err := c.currentSession(ctx, userID)
	if err != nil {
		return nil, err
	}
	return renderHand(s, "Your Hand"), nil
}

func (c *GridironCommand) draw(ctx context.Context, userID string, count int) (*reply, error) {
	s, err := c.currentSession(ctx, userID)
	if err != nil {
		return nil, err
	}
	out, err := c.coachService.DrawCards(ctx, &coach.DrawCardsInput{SessionID: s.ID, Count: count})
	if err != nil {
		return nil, err
	}
	return renderHand(out.Session, fmt.Sprintf("Drew %d card(s)", len(out.Drawn))), nil
}

func (c *GridironCommand) mulligan(ctx context.Context, userID string) (*reply, error) {
	s, err := c.currentSession(ctx, userID)
	if err != nil {
		return nil, err
	}
	out, err := c.coachService.Mulligan(ctx, &coach.MulliganInput{SessionID: s.ID})
	if err != nil {
		return nil, err
	}
	return renderHand(out.Session, "Fresh hand"), nil
}

func (c *GridironCommand) drive(ctx context.Context, userID, positions string) (*reply, error) {
	s, err := c.currentSession(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids, err := parsePositions(positions, s.Zones.Hand)
	if err != nil {
		return nil, &inputError{msg: err.Error()}
	}
	return c.playDrive(ctx, s.ID, ids)
}

func (c *GridironCommand) driveInstances(ctx context.Context, userID string, instanceIDs []string) (*reply, error) {
	s, err := c.currentSession(ctx, userID)
	if err != nil {
		return nil, err
	}
	return c.playDrive(ctx, s.ID, instanceIDs)
}

func (c *GridironCommand) playDrive(ctx context.Context, sessionID string, instanceIDs []string) (*reply, error) {
	out, err := c.coachService.PlayDrive(ctx, &coach.PlayDriveInput{
		SessionID:   sessionID,
		InstanceIDs: instanceIDs,
	})
	if err != nil {
		return nil, err
	}
	return renderDrive(out), nil
}

func (c *GridironCommand) bench(ctx context.Context, userID string, position int) (*reply, error) {
	s, err := c.currentSession(ctx, userID)
	if err != nil {
		return nil, err
	}
	if position < 1 || position > len(s.Zones.Hand) {
		return nil, &inputError{msg: fmt.Sprintf("position %d is outside your hand of %d", position, len(s.Zones.Hand))}
	}
	out, err := c.coachService.BenchCard(ctx, &coach.BenchCardInput{SessionID: s.ID, InstanceID: s.Zones.Hand[position-1]})
	if err != nil {
		return nil, err
	}
	return renderHand(out.Session, "Card benched"), nil
}

func (c *GridironCommand) recall(ctx context.Context, userID string, position int) (*reply, error) {
	s, err := c.currentSession(ctx, userID)
	if err != nil {
		return nil, err
	}
	if position < 1 || position > len(s.Zones.Bench) {
		return nil, &inputError{msg: fmt.Sprintf("position %d is outside your bench of %d", position, len(s.Zones.Bench))}
	}
	out, err := c.coachService.RecallCard(ctx, &coach.RecallCardInput{SessionID: s.ID, InstanceID: s.Zones.Bench[position-1]})
	if err != nil {
		return nil, err
	}
	return renderHand(out.Session, "Card recalled"), nil
}

func (c *GridironCommand) shop(ctx context.Context, userID string) (*reply, error) {
	s, err := c.currentSession(ctx, userID)
	if err != nil {
		return nil, err
	}
	out, err := c.coachService.ListShop(ctx, &coach.ListShopInput{SessionID: s.ID})
	if err != nil {
		return nil, err
	}
	return renderShop(out), nil
}

func (c *GridironCommand) buy(ctx context.Context, userID, value string) (*reply, error) {
	ref, err := parseCardValue(value)
	if err != nil {
		return nil, err
	}
	s, err := c.currentSession(ctx, userID)
	if err != nil {
		return nil, err
	}
	out, err := c.coachService.BuyCard(ctx, &coach.BuyCardInput{SessionID: s.ID, Card: ref})
	if err != nil {
		return nil, err
	}
	return renderHand(out.Session, fmt.Sprintf("Signed %s for %d pts", out.Instance.Card.Name, out.Price)), nil
}

func (c *GridironCommand) sell(ctx context.Context, userID, value string) (*reply, error) {
	ref, err := parseCardValue(value)
	if err != nil {
		return nil, &inputError{msg: err.Error()}
	}
	s, err := c.currentSession(ctx, userID)
	if err != nil {
		return nil, err
	}
	out, err := c.coachService.SellCard(ctx, &coach.SellCardInput{SessionID: s.ID, Card: ref})
	if err != nil {
		return nil, err
	}
	return renderHand(out.Session, fmt.Sprintf("Sold for %d pts", out.Refund)), nil
}

func (c *GridironCommand) draft(ctx context.Context, userID string) (*reply, error) {
	s, err := c.currentSession(ctx, userID)
	if err != nil {
		return nil, err
	}
	out, err := c.coachService.RollDraftReward(ctx, &coach.RollDraftRewardInput{SessionID: s.ID})
	if err != nil {
		return nil, err
	}
	return renderDraft(out), nil
}

func (c *GridironCommand) pick(ctx context.Context, userID, value string) (*reply, error) {
	ref, err := parseCardValue(value)
	if err != nil {
		return nil, err
	}
	s, err := c.currentSession(ctx, userID)
	if err != nil {
		return nil, err
	}
	out, err := c.coachService.SelectDraftCard(ctx, &coach.SelectDraftCardInput{SessionID: s.ID, Card: ref})
	if err != nil {
		return nil, err
	}
	return renderHand(out.Session, fmt.Sprintf("Drafted %s", out.Instance.Card.Name)), nil
}

func (c *GridironCommand) career(ctx context.Context, userID string) (*reply, error) {
	out, err := c.coachService.ListCareerLevels(ctx, &coach.ListCareerLevelsInput{CoachID: userID})
	if err != nil {
		return nil, err
	}
	return renderCareer(out), nil
}

func (c *GridironCommand) leaderboard(ctx context.Context) (*reply, error) {
	out, err := c.coachService.GetLeaderboard(ctx, &coach.GetLeaderboardInput{Limit: leaderboardLimit})
	if err != nil {
		return nil, err
	}
	return renderLeaderboard(out.Entries), nil
}

func (c *GridironCommand) quit(ctx context.Context, userID string) (*reply, error) {
	out, err := c.coachService.AbandonSession(ctx, &coach.AbandonSessionInput{CoachID: userID})
	if err != nil {
		return nil, err
	}
	return &reply{
		Content:   fmt.Sprintf("Session abandoned with %.1f points. Start again with /gridiron start.", out.Score),
		Ephemeral: true,
	}, nil
}
