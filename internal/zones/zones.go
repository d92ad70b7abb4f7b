package zones

import (
	"github.com/KirkDiggler/gridiron/internal/dice"
	"github.com/KirkDiggler/gridiron/internal/models"
)

// ZoneError represents an illegal card move
type ZoneError string

func (e ZoneError) Error() string {
	return string(e)
}

const (
	ErrHandFull      ZoneError = "hand is full"
	ErrNotInHand     ZoneError = "card is not in hand"
	ErrNotOnBench    ZoneError = "card is not on the bench"
	ErrDuplicateCard ZoneError = "card played more than once"
	ErrEmptyHand     ZoneError = "hand is empty"
	ErrInvalidCount  ZoneError = "draw count must be positive"
)

// Deal puts the deck into the draw pile in deck order and draws the opening hand
func Deal(session *models.Session, roller dice.Roller, handSize int) (*models.Session, error) {
	s := session.Clone()
	s.Zones = models.Zones{}
	for _, inst := range s.Deck {
		s.Zones.DrawPile = append(s.Zones.DrawPile, inst.InstanceID)
	}

	if handSize <= 0 {
		return s, nil
	}
	s, _, err := Draw(s, roller, handSize)
	return s, err
}

// Draw moves up to n cards from the front of the draw pile into the hand, stopping at
// hand capacity. An empty draw pile is refilled by shuffling the discard pile into it.
func Draw(session *models.Session, roller dice.Roller, n int) (*models.Session, []string, error) {
	if n <= 0 {
		return nil, nil, ErrInvalidCount
	}
	if len(session.Zones.Hand) >= models.HandCapacity {
		return nil, nil, ErrHandFull
	}

	s := session.Clone()
	z := &s.Zones
	n = min(n, models.HandCapacity-len(z.Hand))

	var drawn []string
	for len(drawn) < n {
		if len(z.DrawPile) == 0 {
			if len(z.DiscardPile) == 0 {
				break
			}
			reshuffle(z, roller)
		}
		id := z.DrawPile[0]
		z.DrawPile = z.DrawPile[1:]
		z.Hand = append(z.Hand, id)
		drawn = append(drawn, id)
	}

	return s, drawn, nil
}

func reshuffle(z *models.Zones, roller dice.Roller) {
	z.DrawPile = append(z.DrawPile, z.DiscardPile...)
	z.DiscardPile = nil
	shuffle(z.DrawPile, roller)
}

func shuffle(ids []string, roller dice.Roller) {
	dice.Shuffle(roller, len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
}

// Mulligan returns the hand to the draw pile, shuffles it and draws the same number again
func Mulligan(session *models.Session, roller dice.Roller) (*models.Session, error) {
	count := len(session.Zones.Hand)
	if count == 0 {
		return nil, ErrEmptyHand
	}

	s := session.Clone()
	z := &s.Zones
	z.DrawPile = append(z.DrawPile, z.Hand...)
	z.Hand = nil
	shuffle(z.DrawPile, roller)

	s, _, err := Draw(s, roller, count)
	return s, err
}

// Bench moves a card from the hand to the bench
func Bench(session *models.Session, instanceID string) (*models.Session, error) {
	if zone, ok := session.Zones.Locate(instanceID); !ok || zone != models.ZoneHand {
		return nil, ErrNotInHand
	}

	s := session.Clone()
	s.Zones.Remove(instanceID)
	s.Zones.Bench = append(s.Zones.Bench, instanceID)
	return s, nil
}

// Recall moves a card from the bench back into the hand
func Recall(session *models.Session, instanceID string) (*models.Session, error) {
	if zone, ok := session.Zones.Locate(instanceID); !ok || zone != models.ZoneBench {
		return nil, ErrNotOnBench
	}
	if len(session.Zones.Hand) >= models.HandCapacity {
		return nil, ErrHandFull
	}

	s := session.Clone()
	s.Zones.Remove(instanceID)
	s.Zones.Hand = append(s.Zones.Hand, instanceID)
	return s, nil
}

// Commit moves the chosen hand cards onto the field in play order and returns them
func Commit(session *models.Session, instanceIDs []string) (*models.Session, []*models.CardInstance, error) {
	seen := make(map[string]bool, len(instanceIDs))
	for _, id := range instanceIDs {
		if seen[id] {
			return nil, nil, ErrDuplicateCard
		}
		seen[id] = true
		if zone, ok := session.Zones.Locate(id); !ok || zone != models.ZoneHand {
			return nil, nil, ErrNotInHand
		}
	}

	s := session.Clone()
	for _, id := range instanceIDs {
		s.Zones.Remove(id)
		s.Zones.Field = append(s.Zones.Field, id)
	}
	return s, s.Instances(instanceIDs), nil
}

// ClearField moves everything on the field to the discard pile
func ClearField(session *models.Session) *models.Session {
	s := session.Clone()
	s.Zones.DiscardPile = append(s.Zones.DiscardPile, s.Zones.Field...)
	s.Zones.Field = nil
	return s
}
