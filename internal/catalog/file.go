package catalog

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/KirkDiggler/gridiron/internal/models"
)

// file is the top-level YAML layout of a catalog
type file struct {
	DefaultArchetype string             `yaml:"default_archetype"`
	Players          []playerEntry      `yaml:"players"`
	Plays            []playEntry        `yaml:"plays"`
	Modifiers        []modifierEntry    `yaml:"modifiers"`
	Archetypes       []archetypeEntry   `yaml:"archetypes"`
	CareerLevels     []careerLevelEntry `yaml:"career_levels"`
}

type cardFields struct {
	ID          int      `yaml:"id"`
	Name        string   `yaml:"name"`
	SynergyTags []string `yaml:"synergy_tags"`
	Rarity      string   `yaml:"rarity"`
	Cost        int      `yaml:"cost"`
}

type playerEntry struct {
	cardFields `yaml:",inline"`
	Position   string         `yaml:"position"`
	Team       string         `yaml:"team"`
	Stats      map[string]int `yaml:"stats"`
}

type playEntry struct {
	cardFields `yaml:",inline"`
	Type       string `yaml:"type"`
	Risk       int    `yaml:"risk"`
	Reward     int    `yaml:"reward"`
	Yards      int    `yaml:"yards"`
}

type modifierEntry struct {
	cardFields `yaml:",inline"`
	Type       string                 `yaml:"type"`
	Effect     map[string]interface{} `yaml:"effect"`
}

type archetypeEntry struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Difficulty  string `yaml:"difficulty"`
	Players     []int  `yaml:"players"`
	Plays       []int  `yaml:"plays"`
	Modifiers   []int  `yaml:"modifiers"`
	Unlock      *struct {
		CareerLevel string `yaml:"career_level"`
	} `yaml:"unlock_requirement"`
}

type careerLevelEntry struct {
	Level         string  `yaml:"level"`
	Name          string  `yaml:"name"`
	Description   string  `yaml:"description"`
	RequiredScore float64 `yaml:"required_score"`
	NextLevel     string  `yaml:"next_level"`
}

func (f cardFields) card(kind models.CardKind) (models.Card, error) {
	rarity := models.Rarity(f.Rarity)
	if !rarity.Valid() {
		return models.Card{}, fmt.Errorf("%s %d (%s): %w: %q", kind, f.ID, f.Name, ErrInvalidRarity, f.Rarity)
	}
	if f.Name == "" {
		return models.Card{}, fmt.Errorf("%s %d: %w", kind, f.ID, ErrMissingName)
	}

	return models.Card{
		ID:          f.ID,
		Kind:        kind,
		Name:        f.Name,
		SynergyTags: f.SynergyTags,
		Rarity:      rarity,
		Cost:        f.Cost,
	}, nil
}

func (e playerEntry) toCard() (models.Card, error) {
	c, err := e.card(models.CardKindPlayer)
	if err != nil {
		return c, err
	}
	c.Player = &models.PlayerStats{
		Position: models.Position(e.Position),
		Team:     e.Team,
		Stats:    e.Stats,
	}
	return c, nil
}

func (e playEntry) toCard() (models.Card, error) {
	c, err := e.card(models.CardKindPlay)
	if err != nil {
		return c, err
	}
	c.Play = &models.PlayStats{
		Type:   models.PlayType(e.Type),
		Risk:   e.Risk,
		Reward: e.Reward,
		Yards:  e.Yards,
	}
	return c, nil
}

func (e modifierEntry) toCard() (models.Card, error) {
	c, err := e.card(models.CardKindModifier)
	if err != nil {
		return c, err
	}

	effect, err := decodeEffect(e.Effect)
	if err != nil {
		return c, fmt.Errorf("modifier %d (%s): %w", e.ID, e.Name, err)
	}
	c.Modifier = &models.ModifierStats{
		Type:   e.Type,
		Effect: effect,
	}
	return c, nil
}

// decodeEffect turns a free-form effect map into named deltas, rejecting unknown keys
func decodeEffect(raw map[string]interface{}) (models.ModifierEffect, error) {
	var effect models.ModifierEffect
	if len(raw) == 0 {
		return effect, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &effect,
		TagName:          "mapstructure",
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return effect, err
	}
	if err := decoder.Decode(raw); err != nil {
		return effect, fmt.Errorf("%w: %w", ErrInvalidEffect, err)
	}
	return effect, nil
}

func (e archetypeEntry) toArchetype() models.Archetype {
	a := models.Archetype{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Difficulty:  e.Difficulty,
		Players:     e.Players,
		Plays:       e.Plays,
		Modifiers:   e.Modifiers,
	}
	if e.Unlock != nil && e.Unlock.CareerLevel != "" {
		a.Unlock = &models.UnlockRequirement{CareerLevel: models.CareerLevelID(e.Unlock.CareerLevel)}
	}
	return a
}

func (e careerLevelEntry) toCareerLevel() models.CareerLevel {
	return models.CareerLevel{
		Level:         models.CareerLevelID(e.Level),
		Name:          e.Name,
		Description:   e.Description,
		RequiredScore: e.RequiredScore,
		NextLevel:     models.CareerLevelID(e.NextLevel),
	}
}
