package season

import (
	"math"

	"github.com/KirkDiggler/gridiron/internal/models"
)

// CoachingPointDivisor converts a successful drive's score into coaching points
const CoachingPointDivisor = 10

// Outcome is the session after a drive and how it got there
type Outcome struct {
	// Session is a new session; the input is never modified
	Session *models.Session

	// Result is the drive result after turnover-on-downs adjustments
	Result *models.DriveResult

	Transition models.Transition

	// CoachingPointsEarned were added to the session for a successful drive
	CoachingPointsEarned int
}

// Advance applies a resolved drive to the session's down, distance and progression
func Advance(session *models.Session, driveResult *models.DriveResult) *Outcome {
	s := session.Clone()
	r := *driveResult
	r.Plays = append([]models.PlayOutcome(nil), driveResult.Plays...)

	s.Down += r.DownsUsed
	s.Distance += r.YardsGained
	s.PressureLevel = r.PressureLevel

	switch {
	case r.FirstDown || s.Distance >= s.YardsToGo:
		s.ResetPossession()
	case s.Down > models.MaxDowns:
		s.ResetPossession()
		r.Successful = false
		r.Turnover = true
		r.TurnoverOnDowns = true
	case r.Turnover:
		s.ResetPossession()
	}

	p := &s.Progress
	p.DrivesCompleted++
	s.Score += r.Score

	out := &Outcome{Session: s, Result: &r}

	if !r.Successful {
		out.Transition = models.TransitionDriveFailed
		s.LastTransition = out.Transition
		return out
	}

	out.CoachingPointsEarned = int(math.Floor(r.Score / CoachingPointDivisor))
	s.CoachingPoints += out.CoachingPointsEarned

	switch {
	case p.CurrentDrive < p.TotalDrivesPerGame:
		p.CurrentDrive++
		out.Transition = models.TransitionNextDrive

	default:
		p.GamesWonInSeason++

		switch {
		case p.CurrentGame < p.TotalGamesPerSeason:
			p.CurrentGame++
			p.CurrentDrive = 1
			p.DrivesCompleted = 0
			out.Transition = models.TransitionNextGame

		case p.GamesWonInSeason != p.TotalGamesPerSeason:
			s.Status = models.SessionStatusSeasonFailed
			out.Transition = models.TransitionSeasonFailed

		default:
			p.SeasonsWon++
			if p.CurrentSeason < p.TotalSeasons {
				p.CurrentSeason++
				p.CurrentGame = 1
				p.CurrentDrive = 1
				p.DrivesCompleted = 0
				p.GamesWonInSeason = 0
				s.DraftPicksClaimed = 0
				out.Transition = models.TransitionNextSeason
			} else {
				s.Status = models.SessionStatusCareerComplete
				out.Transition = models.TransitionCareerComplete
			}
		}
	}

	s.LastTransition = out.Transition
	return out
}
