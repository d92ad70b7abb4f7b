package drive

import (
	"math"

	"github.com/KirkDiggler/gridiron/internal/dice"
	"github.com/KirkDiggler/gridiron/internal/models"
	"github.com/KirkDiggler/gridiron/internal/synergy"
)

const (
	BaseDefenseRating  = 50
	SeasonDefenseStep  = 10
	GameDefenseStep    = 5
	PressurePerCard    = 5
	MinSuccessChance   = 10
	PlayerMultiplier   = 0.1
	FirstDownYards     = 10
	PointsPerPlay      = 10
	PointWeight        = 20
	TouchdownPoints    = 6
	FieldGoalPoints    = 3
	HailMaryMinYards   = 40
	StartingMultiplier = 1.0
	rollSides          = 100
)

// DefenseContext is where in the career the drive is played
type DefenseContext struct {
	Season int
	Game   int
}

// DefenseRating scales with season and game
func DefenseRating(season, game int) int {
	return BaseDefenseRating + (season-1)*SeasonDefenseStep + (game-1)*GameDefenseStep
}

// Resolver simulates drives
type Resolver struct {
	roller dice.Roller
}

// NewResolver creates a resolver drawing play rolls from roller
func NewResolver(roller dice.Roller) *Resolver {
	return &Resolver{roller: roller}
}

// Resolve plays the cards in order against the defense. Each card uses a down.
// A failed play roll is a turnover and nothing after it is resolved.
func (r *Resolver) Resolve(cards []models.Card, def DefenseContext) *models.DriveResult {
	rating := DefenseRating(def.Season, def.Game)
	result := &models.DriveResult{
		DefenseRating: rating,
	}
	if len(cards) == 0 {
		return result
	}

	var (
		totalYards  float64
		totalPoints int
		pressure    int
	)
	multiplier := StartingMultiplier

	for i, card := range cards {
		pressure += PressurePerCard
		result.DownsUsed++

		outcome := models.PlayOutcome{
			Card: card.Ref(),
			Name: card.Name,
		}

		switch card.Kind {
		case models.CardKindPlay:
			play, ok := card.AsPlay()
			if !ok {
				break
			}

			chance := SuccessChance(play.Risk, rating, pressure)
			roll := r.roller.Roll(rollSides)
			outcome.Roll = roll
			outcome.SuccessChance = chance

			if float64(roll) > chance {
				outcome.Failed = true
				outcome.Multiplier = multiplier
				result.Plays = append(result.Plays, outcome)
				result.Turnover = true
				break
			}

			yards := float64(play.Yards) * multiplier
			points := ScoringPoints(card, yards)
			totalYards += yards
			totalPoints += points
			result.SuccessfulPlays++

			outcome.Yards = yards
			outcome.Points = points
			multiplier += synergy.Bonus(card, cards[:i+1])

		case models.CardKindPlayer:
			multiplier += PlayerMultiplier

		case models.CardKindModifier:
			mod, ok := card.AsModifier()
			if !ok {
				break
			}
			if mod.Effect.MultiplierBoost != 0 {
				multiplier += mod.Effect.MultiplierBoost
			}
			if mod.Effect.ScoringMultiplier != 0 {
				multiplier *= mod.Effect.ScoringMultiplier
			}
		}

		if result.Turnover {
			break
		}
		outcome.Multiplier = multiplier
		result.Plays = append(result.Plays, outcome)
	}

	result.YardsGained = totalYards
	result.PointsScored = totalPoints
	result.PressureLevel = pressure
	result.Multiplier = multiplier
	result.FirstDown = totalYards >= FirstDownYards
	result.Successful = !result.Turnover && (totalYards >= FirstDownYards || totalPoints > 0 || result.FirstDown)

	if result.Successful {
		result.Score = float64(result.SuccessfulPlays*PointsPerPlay) + totalYards*multiplier + float64(totalPoints*PointWeight)
	}

	return result
}

// SuccessChance is the highest d100 roll a play survives
func SuccessChance(risk, defenseRating, pressure int) float64 {
	chance := 100 - float64(risk*defenseRating)/100 - float64(pressure)
	return math.Max(MinSuccessChance, chance)
}

// ScoringPoints detects scoring plays by name
func ScoringPoints(card models.Card, yards float64) int {
	switch {
	case card.NameContains("touchdown"):
		return TouchdownPoints
	case card.NameContains("field goal"):
		return FieldGoalPoints
	case card.NameContains("hail mary") && yards >= HailMaryMinYards:
		return TouchdownPoints
	}
	return 0
}
