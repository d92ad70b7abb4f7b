package economy

import (
	"github.com/KirkDiggler/gridiron/internal/dice"
	"github.com/KirkDiggler/gridiron/internal/models"
)

const (
	ShopSize  = 6
	DraftSize = 3
)

// EconomyError represents a rejected purchase, sale or draft
type EconomyError string

func (e EconomyError) Error() string {
	return string(e)
}

const (
	ErrInsufficientFunds EconomyError = "insufficient coaching points"
	ErrCardNotFound      EconomyError = "card not found in deck"
	ErrNoDraftAvailable  EconomyError = "no draft pick available"
)

// CardPool is the slice of the catalog the economy samples from
type CardPool interface {
	All() []models.Card
}

// ListShop samples ShopSize distinct cards uniformly from the whole catalog
func ListShop(pool CardPool, roller dice.Roller) []models.Card {
	cards := pool.All()
	return sample(cards, ShopSize, roller)
}

// RollDraft samples DraftSize slots from a pool where every card appears Weight(rarity)
// times. Slots are drawn without replacement, so one card can fill several slots.
func RollDraft(pool CardPool, roller dice.Roller) []models.Card {
	var weighted []models.Card
	for _, card := range pool.All() {
		for range card.Rarity.Weight() {
			weighted = append(weighted, card)
		}
	}
	return sample(weighted, DraftSize, roller)
}

// sample takes up to n elements without replacement with a partial Fisher-Yates
func sample(cards []models.Card, n int, roller dice.Roller) []models.Card {
	n = min(n, len(cards))
	for i := 0; i < n; i++ {
		j := i + roller.Intn(len(cards)-i)
		cards[i], cards[j] = cards[j], cards[i]
	}
	return cards[:n]
}

// DraftAvailable reports whether the session has an unclaimed draft pick this season
func DraftAvailable(s *models.Session) bool {
	return s.Progress.GamesWonInSeason > 0 && s.DraftPicksClaimed < s.Progress.GamesWonInSeason
}

// Price is what buying the card costs. Detrimental cards are free rather than paying out.
func Price(card models.Card) int {
	return max(card.Cost, 0)
}

// Buy deducts the card's price and adds a new instance to the deck and discard pile
func Buy(session *models.Session, card models.Card) (*models.Session, *models.CardInstance, error) {
	price := Price(card)
	if session.CoachingPoints < price {
		return nil, nil, ErrInsufficientFunds
	}

	s := session.Clone()
	s.CoachingPoints -= price
	inst := add(s, card)
	return s, inst, nil
}

// Sell removes the first deck entry matching ref and refunds half its cost, rounded down
func Sell(session *models.Session, ref models.CardRef) (*models.Session, int, error) {
	idx := -1
	for i, inst := range session.Deck {
		if inst.Card.Ref() == ref {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, 0, ErrCardNotFound
	}

	s := session.Clone()
	inst := s.Deck[idx]
	s.Deck = append(s.Deck[:idx], s.Deck[idx+1:]...)
	s.Zones.Remove(inst.InstanceID)

	refund := Refund(inst.Card.Cost)
	s.CoachingPoints += refund
	return s, refund, nil
}

// Refund is floor(cost / 2), rounding toward negative infinity for negative costs
func Refund(cost int) int {
	q := cost / 2
	if cost%2 != 0 && cost < 0 {
		q--
	}
	return q
}

// ClaimDraft adds a drafted card for free and uses up one pick
func ClaimDraft(session *models.Session, card models.Card) (*models.Session, *models.CardInstance, error) {
	if !DraftAvailable(session) {
		return nil, nil, ErrNoDraftAvailable
	}

	s := session.Clone()
	s.DraftPicksClaimed++
	s.PendingDraft = nil
	inst := add(s, card)
	return s, inst, nil
}

func add(s *models.Session, card models.Card) *models.CardInstance {
	inst := &models.CardInstance{
		InstanceID: s.NextInstanceID(),
		Card:       card,
	}
	s.Deck = append(s.Deck, inst)
	s.Zones.DiscardPile = append(s.Zones.DiscardPile, inst.InstanceID)
	return inst
}
