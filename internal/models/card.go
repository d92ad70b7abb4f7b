package models

import "strings"

// CardKind is the tag that selects a card's payload
type CardKind string

const (
	// CardKindPlayer is a roster card with a position
	CardKindPlayer CardKind = "player"

	// CardKindPlay is a called play with risk and yardage
	CardKindPlay CardKind = "play"

	// CardKindModifier is a situational effect on the drive multiplier
	CardKindModifier CardKind = "modifier"
)

// Valid reports whether k is one of the known card kinds
func (k CardKind) Valid() bool {
	switch k {
	case CardKindPlayer, CardKindPlay, CardKindModifier:
		return true
	}
	return false
}

// Rarity represents how scarce a card is
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Weight is the number of draft pool slots a card of this rarity occupies
func (r Rarity) Weight() int {
	switch r {
	case RarityCommon:
		return 10
	case RarityRare:
		return 5
	case RarityEpic:
		return 2
	case RarityLegendary:
		return 1
	}
	return 0
}

// Valid reports whether r is one of the known rarities
func (r Rarity) Valid() bool {
	return r.Weight() > 0
}

// Position is a player card's roster position
type Position string

const (
	PositionQB Position = "QB"
	PositionWR Position = "WR"
	PositionRB Position = "RB"
	PositionTE Position = "TE"
	PositionDT Position = "DT"
)

// PlayType classifies a play for positional synergy
type PlayType string

const (
	PlayTypePassing PlayType = "passing"
	PlayTypeRushing PlayType = "rushing"
	PlayTypeTrick   PlayType = "trick"
	PlayTypeSpecial PlayType = "special"
)

// PlayerStats is the payload of a player card
type PlayerStats struct {
	// Position is the roster position used for positional synergy
	Position Position `json:"position"`

	// Team is the franchise the player is drawn from
	Team string `json:"team"`

	// Stats are the player's display ratings
	Stats map[string]int `json:"stats,omitempty"`
}

// PlayStats is the payload of a play card
type PlayStats struct {
	// Type is passing, rushing, trick or special
	Type PlayType `json:"type"`

	// Risk feeds the success chance against the defense rating
	Risk int `json:"risk"`

	// Reward is a display rating
	Reward int `json:"reward"`

	// Yards is the base yardage before the drive multiplier
	Yards int `json:"yards"`
}

// ModifierEffect holds the named deltas a modifier applies. A zero value means the
// effect is absent.
type ModifierEffect struct {
	MultiplierBoost    float64 `json:"multiplier_boost,omitempty" mapstructure:"multiplier_boost"`
	ScoringMultiplier  float64 `json:"scoring_multiplier,omitempty" mapstructure:"scoring_multiplier"`
	AccuracyBoost      float64 `json:"accuracy_boost,omitempty" mapstructure:"accuracy_boost"`
	AllStatsBoost      float64 `json:"all_stats_boost,omitempty" mapstructure:"all_stats_boost"`
	PressureResistance float64 `json:"pressure_resistance,omitempty" mapstructure:"pressure_resistance"`
	NextPlayBoost      float64 `json:"next_play_boost,omitempty" mapstructure:"next_play_boost"`
}

// ModifierStats is the payload of a modifier card
type ModifierStats struct {
	// Type is a display category (scoring, environmental, mental, temporary)
	Type string `json:"type"`

	// Effect holds the deltas applied during a drive
	Effect ModifierEffect `json:"effect"`
}

// Card is a catalog card definition. Exactly one of Player, Play or Modifier is set,
// selected by Kind.
type Card struct {
	// ID is stable within the card's kind
	ID int `json:"id"`

	// Kind selects the payload
	Kind CardKind `json:"kind"`

	// Name is the display name; scoring plays are detected from it
	Name string `json:"name"`

	// SynergyTags are matched against other played cards
	SynergyTags []string `json:"synergy_tags,omitempty"`

	// Rarity drives draft weighting and the synergy rarity bonus
	Rarity Rarity `json:"rarity"`

	// Cost in coaching points; negative for detrimental cards
	Cost int `json:"cost"`

	Player   *PlayerStats   `json:"player,omitempty"`
	Play     *PlayStats     `json:"play,omitempty"`
	Modifier *ModifierStats `json:"modifier,omitempty"`
}

// Ref returns the catalog reference for the card
func (c Card) Ref() CardRef {
	return CardRef{ID: c.ID, Kind: c.Kind}
}

// AsPlayer returns the player payload when the card is a player
func (c Card) AsPlayer() (*PlayerStats, bool) {
	if c.Kind != CardKindPlayer || c.Player == nil {
		return nil, false
	}
	return c.Player, true
}

// AsPlay returns the play payload when the card is a play
func (c Card) AsPlay() (*PlayStats, bool) {
	if c.Kind != CardKindPlay || c.Play == nil {
		return nil, false
	}
	return c.Play, true
}

// AsModifier returns the modifier payload when the card is a modifier
func (c Card) AsModifier() (*ModifierStats, bool) {
	if c.Kind != CardKindModifier || c.Modifier == nil {
		return nil, false
	}
	return c.Modifier, true
}

// NameContains does a case-insensitive substring match on the card name
func (c Card) NameContains(term string) bool {
	return strings.Contains(strings.ToLower(c.Name), strings.ToLower(term))
}

// CardRef identifies a catalog card
type CardRef struct {
	ID   int      `json:"id"`
	Kind CardKind `json:"type"`
}

// CardInstance is one physical copy of a card inside a session's deck
type CardInstance struct {
	// InstanceID is unique within the session
	InstanceID string `json:"instance_id"`

	// Card is the catalog definition this copy was made from
	Card Card `json:"card"`
}
