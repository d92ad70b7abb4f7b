package models

import (
	"fmt"
	"slices"
	"time"
)

const (
	// HandCapacity is the most cards a coach may hold
	HandCapacity = 8

	TotalDrivesPerGame  = 4
	TotalGamesPerSeason = 10
	TotalSeasons        = 10

	// YardsForFirstDown is what yardsToGo resets to
	YardsForFirstDown = 10

	// MaxDowns is the last down before a turnover on downs
	MaxDowns = 4
)

// SessionStatus represents whether a session still accepts drives
type SessionStatus string

const (
	// SessionStatusActive indicates drives can be played
	SessionStatusActive SessionStatus = "active"

	// SessionStatusSeasonFailed indicates a season ended without a perfect record
	SessionStatusSeasonFailed SessionStatus = "season_failed"

	// SessionStatusCareerComplete indicates the final season was won
	SessionStatusCareerComplete SessionStatus = "career_complete"
)

// IsTerminal reports whether no more drives may be played
func (s SessionStatus) IsTerminal() bool {
	return s == SessionStatusSeasonFailed || s == SessionStatusCareerComplete
}

// ZoneName identifies one of the card zones
type ZoneName string

const (
	ZoneHand    ZoneName = "hand"
	ZoneDraw    ZoneName = "draw_pile"
	ZoneDiscard ZoneName = "discard_pile"
	ZoneBench   ZoneName = "bench"
	ZoneField   ZoneName = "field"
)

// Zones partitions a deck's instance IDs. The draw pile is drawn from the front.
type Zones struct {
	Hand        []string `json:"hand"`
	DrawPile    []string `json:"draw_pile"`
	DiscardPile []string `json:"discard_pile"`
	Bench       []string `json:"bench"`
	Field       []string `json:"field"`
}

func (z *Zones) all() []*[]string {
	return []*[]string{&z.Hand, &z.DrawPile, &z.DiscardPile, &z.Bench, &z.Field}
}

// Locate returns the zone holding the instance
func (z *Zones) Locate(instanceID string) (ZoneName, bool) {
	names := []ZoneName{ZoneHand, ZoneDraw, ZoneDiscard, ZoneBench, ZoneField}
	for i, zone := range z.all() {
		if slices.Contains(*zone, instanceID) {
			return names[i], true
		}
	}
	return "", false
}

// Remove deletes the instance from whichever zone holds it
func (z *Zones) Remove(instanceID string) bool {
	for _, zone := range z.all() {
		if i := slices.Index(*zone, instanceID); i >= 0 {
			*zone = slices.Delete(*zone, i, i+1)
			return true
		}
	}
	return false
}

// Count is the number of instances across all zones
func (z *Zones) Count() int {
	n := 0
	for _, zone := range z.all() {
		n += len(*zone)
	}
	return n
}

func (z Zones) clone() Zones {
	return Zones{
		Hand:        slices.Clone(z.Hand),
		DrawPile:    slices.Clone(z.DrawPile),
		DiscardPile: slices.Clone(z.DiscardPile),
		Bench:       slices.Clone(z.Bench),
		Field:       slices.Clone(z.Field),
	}
}

// Progress holds the season/game/drive counters
type Progress struct {
	CurrentSeason       int `json:"current_season"`
	CurrentGame         int `json:"current_game"`
	CurrentDrive        int `json:"current_drive"`
	DrivesCompleted     int `json:"drives_completed"`
	GamesWonInSeason    int `json:"games_won_in_season"`
	SeasonsWon          int `json:"seasons_won"`
	TotalDrivesPerGame  int `json:"total_drives_per_game"`
	TotalGamesPerSeason int `json:"total_games_per_season"`
	TotalSeasons        int `json:"total_seasons"`
}

// NewProgress returns counters for the first drive of the first game of the first season
func NewProgress() Progress {
	return Progress{
		CurrentSeason:       1,
		CurrentGame:         1,
		CurrentDrive:        1,
		TotalDrivesPerGame:  TotalDrivesPerGame,
		TotalGamesPerSeason: TotalGamesPerSeason,
		TotalSeasons:        TotalSeasons,
	}
}

// ShopListing is the shop offer for one game
type ShopListing struct {
	Season int       `json:"season"`
	Game   int       `json:"game"`
	Cards  []CardRef `json:"cards"`
}

// Session is a coach's run through the seasons
type Session struct {
	// ID is the unique identifier for this session
	ID string `json:"session_id"`

	// CoachID is the coach who owns the session
	CoachID string `json:"coach_id"`

	// CoachName is the display name of the coach
	CoachName string `json:"coach_name"`

	// Archetype is the starter deck the session was built from
	Archetype string `json:"archetype"`

	// Deck holds every card instance the coach owns
	Deck []*CardInstance `json:"deck"`

	// Zones partitions Deck by instance ID
	Zones Zones `json:"zones"`

	Score          float64 `json:"score"`
	CoachingPoints int     `json:"coaching_points"`

	// Down is in [1, 4]
	Down int `json:"down"`

	// Distance is yards gained since the last first down
	Distance float64 `json:"distance"`

	// YardsToGo resets to 10 on a first down or change of possession
	YardsToGo float64 `json:"yards_to_go"`

	// PressureLevel is the pressure reached on the last drive
	PressureLevel int `json:"pressure_level"`

	Progress Progress      `json:"progress"`
	Status   SessionStatus `json:"status"`

	// InstanceSeq is the last number used for an instance ID
	InstanceSeq int `json:"instance_seq"`

	// Shop is the listing for the current game, if one was opened
	Shop *ShopListing `json:"shop,omitempty"`

	// PendingDraft is the rolled draft offer awaiting a pick
	PendingDraft []CardRef `json:"pending_draft,omitempty"`

	// DraftPicksClaimed counts draft picks taken this season
	DraftPicksClaimed int `json:"draft_picks_claimed"`

	// LastTransition is where the previous drive left the session
	LastTransition Transition `json:"last_transition,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ResetPossession puts the chains back at first and ten
func (s *Session) ResetPossession() {
	s.Down = 1
	s.Distance = 0
	s.YardsToGo = YardsForFirstDown
}

// NextInstanceID reserves a fresh instance ID
func (s *Session) NextInstanceID() string {
	s.InstanceSeq++
	return fmt.Sprintf("c%d", s.InstanceSeq)
}

// Instance looks up a deck entry by instance ID
func (s *Session) Instance(instanceID string) (*CardInstance, bool) {
	for _, inst := range s.Deck {
		if inst.InstanceID == instanceID {
			return inst, true
		}
	}
	return nil, false
}

// Instances resolves instance IDs in order, skipping unknown IDs
func (s *Session) Instances(instanceIDs []string) []*CardInstance {
	out := make([]*CardInstance, 0, len(instanceIDs))
	for _, id := range instanceIDs {
		if inst, ok := s.Instance(id); ok {
			out = append(out, inst)
		}
	}
	return out
}

// Clone returns a deep copy so transitions never mutate their input
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}

	c := *s
	if s.Deck != nil {
		c.Deck = make([]*CardInstance, len(s.Deck))
		for i, inst := range s.Deck {
			cp := *inst
			c.Deck[i] = &cp
		}
	}
	c.Zones = s.Zones.clone()
	if s.Shop != nil {
		shop := *s.Shop
		shop.Cards = slices.Clone(s.Shop.Cards)
		c.Shop = &shop
	}
	c.PendingDraft = slices.Clone(s.PendingDraft)
	return &c
}

// ValidateZones checks that the zones partition the deck exactly
func (s *Session) ValidateZones() error {
	deckIDs := make(map[string]bool, len(s.Deck))
	for _, inst := range s.Deck {
		if deckIDs[inst.InstanceID] {
			return fmt.Errorf("duplicate instance %s in deck", inst.InstanceID)
		}
		deckIDs[inst.InstanceID] = true
	}

	seen := make(map[string]bool, len(deckIDs))
	for _, zone := range s.Zones.all() {
		for _, id := range *zone {
			if !deckIDs[id] {
				return fmt.Errorf("instance %s is in a zone but not in the deck", id)
			}
			if seen[id] {
				return fmt.Errorf("instance %s is in more than one zone", id)
			}
			seen[id] = true
		}
	}

	if len(seen) != len(deckIDs) {
		return fmt.Errorf("%d deck instances are not in any zone", len(deckIDs)-len(seen))
	}
	return nil
}
