package coach

import (
	"context"

	"go.uber.org/zap"

	"github.com/KirkDiggler/gridiron/internal/drive"
	"github.com/KirkDiggler/gridiron/internal/models"
	coachRepo "github.com/KirkDiggler/gridiron/internal/repositories/coach"
	"github.com/KirkDiggler/gridiron/internal/season"
	"github.com/KirkDiggler/gridiron/internal/services/commentary"
	"github.com/KirkDiggler/gridiron/internal/zones"
)

// DrawCards draws from the draw pile into the hand
func (s *service) DrawCards(ctx context.Context, input *DrawCardsInput) (*DrawCardsOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	var drawn []string
	updated, err := s.withSession(ctx, input.SessionID, "draw_cards", func(current *models.Session) (*models.Session, error) {
		next, ids, err := zones.Draw(current, s.roller, input.Count)
		if err != nil {
			return nil, zoneError(err)
		}
		drawn = ids
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	return &DrawCardsOutput{
		Session: updated,
		Drawn:   updated.Instances(drawn),
	}, nil
}

// Mulligan shuffles the hand back and redraws the same number of cards
func (s *service) Mulligan(ctx context.Context, input *MulliganInput) (*MulliganOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	updated, err := s.withSession(ctx, input.SessionID, "mulligan", func(current *models.Session) (*models.Session, error) {
		next, err := zones.Mulligan(current, s.roller)
		if err != nil {
			return nil, zoneError(err)
		}
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	return &MulliganOutput{Session: updated}, nil
}

// BenchCard moves a card from the hand to the bench
func (s *service) BenchCard(ctx context.Context, input *BenchCardInput) (*BenchCardOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	updated, err := s.withSession(ctx, input.SessionID, "bench_card", func(current *models.Session) (*models.Session, error) {
		next, err := zones.Bench(current, input.InstanceID)
		if err != nil {
			return nil, zoneError(err)
		}
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	return &BenchCardOutput{Session: updated}, nil
}

// RecallCard moves a card from the bench back to the hand
func (s *service) RecallCard(ctx context.Context, input *RecallCardInput) (*RecallCardOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	updated, err := s.withSession(ctx, input.SessionID, "recall_card", func(current *models.Session) (*models.Session, error) {
		next, err := zones.Recall(current, input.InstanceID)
		if err != nil {
			return nil, zoneError(err)
		}
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	return &RecallCardOutput{Session: updated}, nil
}

// PlayDrive resolves the chosen hand cards as a drive and advances the session.
// The cards go to the field while they resolve and to the discard pile afterwards.
func (s *service) PlayDrive(ctx context.Context, input *PlayDriveInput) (*PlayDriveOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	out := &PlayDriveOutput{}
	updated, err := s.withSession(ctx, input.SessionID, "play_drive", func(current *models.Session) (*models.Session, error) {
		if current.Status.IsTerminal() {
			return nil, ErrSessionOver
		}

		committed, played, err := zones.Commit(current, input.InstanceIDs)
		if err != nil {
			return nil, zoneError(err)
		}

		cards := make([]models.Card, len(played))
		for i, inst := range played {
			cards[i] = inst.Card
		}

		result := s.resolver.Resolve(cards, drive.DefenseContext{
			Season: current.Progress.CurrentSeason,
			Game:   current.Progress.CurrentGame,
		})
		for i := range result.Plays {
			result.Plays[i].InstanceID = played[i].InstanceID
		}

		outcome := season.Advance(committed, result)
		out.Result = outcome.Result
		out.Transition = outcome.Transition
		out.CoachingPointsEarned = outcome.CoachingPointsEarned

		return zones.ClearField(outcome.Session), nil
	})
	if err != nil {
		return nil, err
	}
	out.Session = updated

	recorded, err := s.coachRepo.RecordScore(ctx, &coachRepo.RecordScoreInput{
		CoachID: updated.CoachID,
		Score:   updated.Score,
	})
	if err != nil {
		// the drive is already saved; the next drive records the score again
		s.log.Error("failed to record score",
			zap.String("session_id", updated.ID),
			zap.String("coach_id", updated.CoachID),
			zap.Error(err))
	} else {
		out.BestScore = recorded.BestScore
		out.NewBest = recorded.NewBest
	}

	s.commentate(ctx, updated, out)

	s.log.Info("drive played",
		zap.String("session_id", updated.ID),
		zap.Int("cards", len(input.InstanceIDs)),
		zap.Float64("drive_score", out.Result.Score),
		zap.Float64("yards", out.Result.YardsGained),
		zap.Bool("successful", out.Result.Successful),
		zap.Bool("turnover", out.Result.Turnover),
		zap.String("transition", string(out.Transition)),
		zap.Float64("session_score", updated.Score))

	return out, nil
}

func (s *service) commentate(ctx context.Context, session *models.Session, out *PlayDriveOutput) {
	if s.commentary == nil {
		return
	}

	driveMsg, err := s.commentary.GetDriveCommentary(ctx, &commentary.GetDriveCommentaryInput{
		CoachName: session.CoachName,
		Result:    out.Result,
	})
	if err != nil {
		s.log.Warn("failed to get drive commentary", zap.String("session_id", session.ID), zap.Error(err))
	} else {
		out.Headline = driveMsg.Headline
		out.PlayByPlay = driveMsg.PlayByPlay
	}

	transitionMsg, err := s.commentary.GetTransitionMessage(ctx, &commentary.GetTransitionMessageInput{
		CoachName:  session.CoachName,
		Transition: out.Transition,
		Progress:   session.Progress,
	})
	if err != nil {
		s.log.Warn("failed to get transition message", zap.String("session_id", session.ID), zap.Error(err))
	} else {
		out.TransitionMessage = transitionMsg.Message
	}
}
