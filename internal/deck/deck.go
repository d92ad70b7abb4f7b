package deck

import (
	"fmt"

	"github.com/KirkDiggler/gridiron/internal/dice"
	"github.com/KirkDiggler/gridiron/internal/models"
)

// Copies per referenced catalog id
const (
	PlayerCopies   = 3
	PlayCopies     = 4
	ModifierCopies = 2
)

// CardSource is the slice of the catalog the assembler needs
type CardSource interface {
	Lookup(ref models.CardRef) (models.Card, bool)
	ResolveArchetype(name string) (models.Archetype, bool)
}

// Deck is a freshly assembled and shuffled deck
type Deck struct {
	// Archetype is the archetype actually used
	Archetype models.Archetype

	// Fallback is true when the requested archetype was unknown
	Fallback bool

	// Instances are in shuffled order with IDs c1..cN
	Instances []*models.CardInstance
}

// Config holds the assembler's dependencies
type Config struct {
	Cards      CardSource
	DiceRoller dice.Roller
}

// Assembler expands archetypes into shuffled decks
type Assembler struct {
	cards  CardSource
	roller dice.Roller
}

// New creates an assembler
func New(cfg *Config) (*Assembler, error) {
	if cfg == nil {
		return nil, fmt.Errorf("deck config cannot be nil")
	}
	if cfg.Cards == nil {
		return nil, fmt.Errorf("card source cannot be nil")
	}
	if cfg.DiceRoller == nil {
		return nil, fmt.Errorf("dice roller cannot be nil")
	}

	return &Assembler{
		cards:  cfg.Cards,
		roller: cfg.DiceRoller,
	}, nil
}

// Assemble builds a new deck for the named archetype. Unknown names fall back to
// the default archetype and ids missing from the catalog are skipped.
func (a *Assembler) Assemble(name string) *Deck {
	archetype, found := a.cards.ResolveArchetype(name)

	var cards []models.Card
	cards = a.expand(cards, archetype.Players, models.CardKindPlayer, PlayerCopies)
	cards = a.expand(cards, archetype.Plays, models.CardKindPlay, PlayCopies)
	cards = a.expand(cards, archetype.Modifiers, models.CardKindModifier, ModifierCopies)

	dice.Shuffle(a.roller, len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	instances := make([]*models.CardInstance, len(cards))
	for i, card := range cards {
		instances[i] = &models.CardInstance{
			InstanceID: fmt.Sprintf("c%d", i+1),
			Card:       card,
		}
	}

	return &Deck{
		Archetype: archetype,
		Fallback:  !found,
		Instances: instances,
	}
}

func (a *Assembler) expand(cards []models.Card, ids []int, kind models.CardKind, copies int) []models.Card {
	for _, id := range ids {
		card, ok := a.cards.Lookup(models.CardRef{ID: id, Kind: kind})
		if !ok {
			continue
		}
		for range copies {
			cards = append(cards, card)
		}
	}
	return cards
}

// ExpectedSize is the deck size an archetype expands to when every id resolves
func ExpectedSize(a models.Archetype) int {
	return PlayerCopies*len(a.Players) + PlayCopies*len(a.Plays) + ModifierCopies*len(a.Modifiers)
}
