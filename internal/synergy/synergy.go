package synergy

import (
	"slices"

	"github.com/KirkDiggler/gridiron/internal/models"
)

const (
	TagOverlapBonus = 0.1
	PassingQBBonus  = 0.2
	PassingWRBonus  = 0.15
	RushingRBBonus  = 0.2
	EpicBonus       = 0.3
	LegendaryBonus  = 0.5
)

// Bonus returns the multiplier contribution of card given the cards played so far.
// played includes card itself as its last element.
func Bonus(card models.Card, played []models.Card) float64 {
	var bonus float64

	prior := played
	if n := len(played); n > 0 {
		prior = played[:n-1]
	}

	for _, other := range prior {
		bonus += TagOverlapBonus * float64(sharedTags(card.SynergyTags, other.SynergyTags))
	}

	if play, ok := card.AsPlay(); ok {
		bonus += positional(play.Type, played)
	}

	switch card.Rarity {
	case models.RarityEpic:
		bonus += EpicBonus
	case models.RarityLegendary:
		bonus += LegendaryBonus
	}

	return bonus
}

func positional(playType models.PlayType, played []models.Card) float64 {
	var qb, wr, rb int
	for _, c := range played {
		player, ok := c.AsPlayer()
		if !ok {
			continue
		}
		switch player.Position {
		case models.PositionQB:
			qb++
		case models.PositionWR:
			wr++
		case models.PositionRB:
			rb++
		}
	}

	switch playType {
	case models.PlayTypePassing:
		return PassingQBBonus*float64(qb) + PassingWRBonus*float64(wr)
	case models.PlayTypeRushing:
		return RushingRBBonus * float64(rb)
	}
	return 0
}

// sharedTags counts the distinct tags present in both sets
func sharedTags(a, b []string) int {
	n := 0
	for i, tag := range a {
		if slices.Contains(a[:i], tag) {
			continue
		}
		if slices.Contains(b, tag) {
			n++
		}
	}
	return n
}
