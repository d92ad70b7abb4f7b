package commentary

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/gridiron/internal/dice"
	"github.com/KirkDiggler/gridiron/internal/drive"
	"github.com/KirkDiggler/gridiron/internal/models"
)

// CommentaryError is a custom error type for commentary errors
type CommentaryError string

// Error implements the error interface
func (e CommentaryError) Error() string {
	return string(e)
}

const (
	ErrNilConfig         CommentaryError = "config cannot be nil"
	ErrNilDiceRoller     CommentaryError = "dice roller cannot be nil"
	ErrNilResult         CommentaryError = "drive result cannot be nil"
	ErrUnknownTransition CommentaryError = "unknown transition"
)

// Config holds the commentary service's dependencies
type Config struct {
	// DiceRoller picks among the message variants
	DiceRoller dice.Roller
}

type service struct {
	roller dice.Roller
}

// New creates a new commentary service
func New(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	return &service{
		roller: cfg.DiceRoller,
	}, nil
}

// GetDriveCommentary returns a headline and one line per resolved play
func (s *service) GetDriveCommentary(ctx context.Context, input *GetDriveCommentaryInput) (*GetDriveCommentaryOutput, error) {
	if input == nil || input.Result == nil {
		return nil, ErrNilResult
	}
	result := input.Result

	var (
		messages []string
		tone     Tone
	)

	switch {
	case result.TurnoverOnDowns:
		tone = ToneSarcastic
		messages = []string{
			"Four downs, no chains. {coach} hands the ball over on downs.",
			"Turnover on downs! The defense didn't even have to try.",
			"{coach} went for it and came up short. The other sideline says thanks.",
			"That's a turnover on downs. Somewhere a punter is shaking his head.",
		}
	case result.Turnover:
		tone = ToneSarcastic
		messages = []string{
			"Fumble! {coach}'s drive ends with the ball on the turf.",
			"Picked off! That's going straight to the blooper reel.",
			"The defense reads it like a book. Turnover.",
			"Ball security, {coach}. Look it up.",
			"And the crowd goes... quiet. Turnover.",
		}
	case len(result.Plays) == 0:
		tone = ToneNeutral
		messages = []string{
			"{coach} sends nobody out. The offense never takes the field.",
			"An empty drive. Bold strategy.",
			"No cards, no plays, no points.",
		}
	case result.PointsScored >= drive.TouchdownPoints:
		tone = ToneHype
		messages = []string{
			"TOUCHDOWN! {coach} punches it in for {points}!",
			"Six on the board! {yards} yards of pure coaching genius.",
			"He could go all the way... and he DOES! Touchdown {coach}!",
			"Put it on the highlight reel. {coach} finds the end zone!",
		}
	case result.PointsScored > 0:
		tone = ToneEncouraging
		messages = []string{
			"The kick is up... and it's good! {points} points for {coach}.",
			"Not pretty, but points are points. {coach} settles for {points}.",
			"Three points is three points. The scoreboard doesn't care how.",
		}
	case result.Successful:
		tone = ToneHype
		messages = []string{
			"{coach} marches {yards} yards. The chains keep moving!",
			"Textbook drive. {yards} yards and a scoreboard bump.",
			"That's how you run an offense! {yards} yards gained.",
			"The defense is gassed. {coach} picks up {yards} yards.",
		}
	default:
		tone = ToneEncouraging
		messages = []string{
			"The drive stalls after {yards} yards. Shake it off, {coach}.",
			"Not enough there. Regroup and try again.",
			"{coach} gains {yards} but can't make it count.",
			"Close, but no cigar. The defense holds.",
		}
	}

	headline := fill(s.pick(messages), map[string]string{
		"{coach}":  coachName(input.CoachName),
		"{yards}":  strconv.FormatFloat(result.YardsGained, 'f', -1, 64),
		"{points}": strconv.Itoa(result.PointsScored),
	})

	playByPlay := make([]string, 0, len(result.Plays))
	for _, play := range result.Plays {
		playByPlay = append(playByPlay, describePlay(play))
	}

	return &GetDriveCommentaryOutput{
		Headline:   headline,
		PlayByPlay: playByPlay,
		Tone:       tone,
	}, nil
}

func describePlay(play models.PlayOutcome) string {
	switch {
	case play.Failed:
		return fmt.Sprintf("%s: rolled %d against %.0f%%. Turnover!", play.Name, play.Roll, play.SuccessChance)
	case play.Points > 0:
		return fmt.Sprintf("%s: %g yards and %d points!", play.Name, play.Yards, play.Points)
	case play.Roll > 0:
		return fmt.Sprintf("%s: %g yards (rolled %d against %.0f%%)", play.Name, play.Yards, play.Roll, play.SuccessChance)
	case play.Card.Kind == models.CardKindModifier:
		return fmt.Sprintf("%s kicks in, multiplier now x%.2f", play.Name, play.Multiplier)
	default:
		return fmt.Sprintf("%s takes the field, multiplier now x%.2f", play.Name, play.Multiplier)
	}
}

// GetTransitionMessage returns a message for where the session went after a drive
func (s *service) GetTransitionMessage(ctx context.Context, input *GetTransitionMessageInput) (*GetTransitionMessageOutput, error) {
	var (
		messages []string
		tone     Tone
	)

	switch input.Transition {
	case models.TransitionNextDrive:
		tone = ToneNeutral
		messages = []string{
			"On to drive {drive}.",
			"Next drive coming up. That's drive {drive} of game {game}.",
			"Keep it rolling. Drive {drive} is next.",
		}
	case models.TransitionNextGame:
		tone = ToneHype
		messages = []string{
			"That's a win! {won} down this season, game {game} is next.",
			"Another W for {coach}. On to game {game}.",
			"Victory! The locker room is loud tonight. Game {game} awaits.",
		}
	case models.TransitionNextSeason:
		tone = ToneCelebration
		messages = []string{
			"PERFECT SEASON! {coach} rolls into season {season}.",
			"Undefeated! Season {season} starts now.",
			"They'll be talking about this one for years. On to season {season}!",
		}
	case models.TransitionSeasonFailed:
		tone = ToneSarcastic
		messages = []string{
			"Only {won} wins. The boosters have some questions, {coach}.",
			"Season over. {won} wins won't cut it around here.",
			"That's the season. Time to update the resume, {coach}.",
		}
	case models.TransitionCareerComplete:
		tone = ToneCelebration
		messages = []string{
			"{seasons} perfect seasons. {coach} is headed to Canton!",
			"Career complete! Clear a spot in the Hall of Fame.",
			"The greatest of all time. Take a bow, {coach}.",
		}
	case models.TransitionDriveFailed:
		tone = ToneEncouraging
		messages = []string{
			"The drive didn't work out. Drive {drive} goes again.",
			"Regroup on the sideline and try drive {drive} again.",
			"Defense got that one. Line it up again, {coach}.",
		}
	default:
		return nil, ErrUnknownTransition
	}

	p := input.Progress
	message := fill(s.pick(messages), map[string]string{
		"{coach}":   coachName(input.CoachName),
		"{season}":  strconv.Itoa(p.CurrentSeason),
		"{game}":    strconv.Itoa(p.CurrentGame),
		"{drive}":   strconv.Itoa(p.CurrentDrive),
		"{won}":     strconv.Itoa(p.GamesWonInSeason),
		"{seasons}": strconv.Itoa(p.SeasonsWon),
	})

	return &GetTransitionMessageOutput{
		Message: message,
		Tone:    tone,
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	tone := ToneSarcastic
	var messages []string

	switch input.ErrorType {
	case ErrorTypeNoSession:
		tone = ToneEncouraging
		messages = []string{
			"You don't have a session going. Start one with /gridiron start.",
			"No team, no game. Start a session first.",
		}
	case ErrorTypeSessionOver:
		messages = []string{
			"This session is over. Start a new one to coach again.",
			"The season's done, coach. Time for a fresh start.",
		}
	case ErrorTypeSessionBusy:
		tone = ToneNeutral
		messages = []string{
			"Hold up, the last play is still being reviewed. Try again in a second.",
			"The refs are still talking it over. Give it a moment.",
		}
	case ErrorTypeInvalidCard:
		messages = []string{
			"That card isn't available. Check your hand.",
			"Nice try, but that card isn't yours to play.",
		}
	case ErrorTypeInsufficient:
		messages = []string{
			"Not enough coaching points. The front office says no.",
			"Your budget can't cover that one, coach.",
		}
	case ErrorTypeHandFull:
		tone = ToneNeutral
		messages = []string{
			"Your hand is full. Play or bench something first.",
		}
	case ErrorTypeNoDraft:
		messages = []string{
			"No draft pick for you. Win a game first.",
			"The draft room is closed until you earn a pick.",
		}
	case ErrorTypeLocked:
		tone = ToneEncouraging
		messages = []string{
			"That playbook is locked. Keep climbing the career ladder.",
		}
	case ErrorTypeInvalidInput:
		tone = ToneNeutral
		messages = []string{
			"That didn't make sense to the play caller. Check the command.",
		}
	default:
		messages = []string{
			"Something went wrong on the sideline. Try again.",
			"Flag on the play! Something broke, try again.",
		}
	}

	return &GetErrorMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

func (s *service) pick(messages []string) string {
	return messages[s.roller.Intn(len(messages))]
}

func fill(message string, values map[string]string) string {
	pairs := make([]string, 0, len(values)*2)
	for k, v := range values {
		pairs = append(pairs, k, v)
	}
	return strings.NewReplacer(pairs...).Replace(message)
}

func coachName(name string) string {
	if name == "" {
		return "Coach"
	}
	return name
}
