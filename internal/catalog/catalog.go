package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/gridiron/internal/models"
)

//go:embed data/catalog.yaml
var defaultData []byte

// Catalog is the read-only set of card definitions, archetypes and career levels.
// It is loaded once at start-up and never mutated afterwards.
type Catalog struct {
	cards            map[models.CardRef]models.Card
	ordered          []models.Card
	archetypes       map[string]models.Archetype
	archetypeOrder   []string
	defaultArchetype string
	careerLevels     []models.CareerLevel
}

// Default returns the embedded catalog
func Default() (*Catalog, error) {
	return Parse(defaultData)
}

// Load reads a catalog from path, or the embedded one when path is empty
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse builds a catalog from YAML
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog YAML: %w", err)
	}

	c := &Catalog{
		cards:            make(map[models.CardRef]models.Card),
		archetypes:       make(map[string]models.Archetype),
		defaultArchetype: f.DefaultArchetype,
	}

	for _, e := range f.Players {
		card, err := e.toCard()
		if err != nil {
			return nil, err
		}
		if err := c.add(card); err != nil {
			return nil, err
		}
	}
	for _, e := range f.Plays {
		card, err := e.toCard()
		if err != nil {
			return nil, err
		}
		if err := c.add(card); err != nil {
			return nil, err
		}
	}
	for _, e := range f.Modifiers {
		card, err := e.toCard()
		if err != nil {
			return nil, err
		}
		if err := c.add(card); err != nil {
			return nil, err
		}
	}

	for _, e := range f.Archetypes {
		if _, exists := c.archetypes[e.ID]; exists {
			return nil, fmt.Errorf("%w: archetype %s", ErrDuplicateID, e.ID)
		}
		c.archetypes[e.ID] = e.toArchetype()
		c.archetypeOrder = append(c.archetypeOrder, e.ID)
	}
	if _, ok := c.archetypes[c.defaultArchetype]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingDefaultArchetype, c.defaultArchetype)
	}

	for _, e := range f.CareerLevels {
		c.careerLevels = append(c.careerLevels, e.toCareerLevel())
	}
	sort.SliceStable(c.careerLevels, func(i, j int) bool {
		return c.careerLevels[i].RequiredScore < c.careerLevels[j].RequiredScore
	})

	for _, a := range c.archetypes {
		if a.Unlock != nil && !c.hasCareerLevel(a.Unlock.CareerLevel) {
			return nil, fmt.Errorf("archetype %s: %w: %q", a.ID, ErrUnknownCareerLevel, a.Unlock.CareerLevel)
		}
	}

	return c, nil
}

func (c *Catalog) add(card models.Card) error {
	ref := card.Ref()
	if _, exists := c.cards[ref]; exists {
		return fmt.Errorf("%w: %s %d", ErrDuplicateID, ref.Kind, ref.ID)
	}
	c.cards[ref] = card
	c.ordered = append(c.ordered, card)
	return nil
}

func (c *Catalog) hasCareerLevel(id models.CareerLevelID) bool {
	for _, l := range c.careerLevels {
		if l.Level == id {
			return true
		}
	}
	return false
}

// Lookup finds a card by kind and id
func (c *Catalog) Lookup(ref models.CardRef) (models.Card, bool) {
	card, ok := c.cards[ref]
	return card, ok
}

// All returns every card, players then plays then modifiers, in file order
func (c *Catalog) All() []models.Card {
	return slices.Clone(c.ordered)
}

// Cards returns the cards of one kind in file order
func (c *Catalog) Cards(kind models.CardKind) []models.Card {
	var out []models.Card
	for _, card := range c.ordered {
		if card.Kind == kind {
			out = append(out, card)
		}
	}
	return out
}

// Archetype returns the archetype with the given id
func (c *Catalog) Archetype(id string) (models.Archetype, bool) {
	a, ok := c.archetypes[id]
	return a, ok
}

// DefaultArchetype returns the archetype unknown names fall back to
func (c *Catalog) DefaultArchetype() models.Archetype {
	return c.archetypes[c.defaultArchetype]
}

// ResolveArchetype returns the named archetype, or the default one with found set to false
func (c *Catalog) ResolveArchetype(name string) (archetype models.Archetype, found bool) {
	if a, ok := c.archetypes[name]; ok {
		return a, true
	}
	return c.DefaultArchetype(), false
}

// Archetypes returns all archetypes in file order
func (c *Catalog) Archetypes() []models.Archetype {
	out := make([]models.Archetype, 0, len(c.archetypeOrder))
	for _, id := range c.archetypeOrder {
		out = append(out, c.archetypes[id])
	}
	return out
}

// CareerLevels returns the ladder from lowest to highest required score
func (c *Catalog) CareerLevels() []models.CareerLevel {
	return slices.Clone(c.careerLevels)
}

// CareerLevelFor returns the highest level whose required score is met
func (c *Catalog) CareerLevelFor(score float64) (models.CareerLevel, bool) {
	var (
		level models.CareerLevel
		found bool
	)
	for _, l := range c.careerLevels {
		if score >= l.RequiredScore {
			level, found = l, true
		}
	}
	return level, found
}

// Unlocked reports whether a coach with the given best score may pick the archetype
func (c *Catalog) Unlocked(a models.Archetype, bestScore float64) bool {
	if a.Unlock == nil {
		return true
	}
	for _, l := range c.careerLevels {
		if l.Level == a.Unlock.CareerLevel {
			return bestScore >= l.RequiredScore
		}
	}
	return false
}
