package models

// CareerLevelID identifies a rung of the coaching career ladder
type CareerLevelID string

const (
	CareerLevelHighSchool CareerLevelID = "high_school"
	CareerLevelCollege    CareerLevelID = "college"
	CareerLevelNFL        CareerLevelID = "nfl"
	CareerLevelHallOfFame CareerLevelID = "hall_of_fame"
)

// CareerLevel is a score threshold on the career ladder
type CareerLevel struct {
	// Level is the stable identifier
	Level CareerLevelID `json:"level"`

	// Name is the display title
	Name string `json:"name"`

	// Description is flavor text
	Description string `json:"description"`

	// RequiredScore is the best score needed to reach the level
	RequiredScore float64 `json:"required_score"`

	// NextLevel is empty at the top of the ladder
	NextLevel CareerLevelID `json:"next_level,omitempty"`
}

// UnlockRequirement gates an archetype behind career progress
type UnlockRequirement struct {
	// CareerLevel is the minimum level a coach must have reached
	CareerLevel CareerLevelID `json:"career_level,omitempty"`
}

// Archetype is a named starter selection of catalog ids
type Archetype struct {
	// ID is the name sessions are started with (e.g. balanced_offense)
	ID string `json:"id"`

	// Name is the display name
	Name string `json:"name"`

	// Description is flavor text
	Description string `json:"description"`

	// Difficulty is a display hint (beginner, intermediate, advanced)
	Difficulty string `json:"difficulty"`

	// Players are player card ids, expanded three copies each
	Players []int `json:"players"`

	// Plays are play card ids, expanded four copies each
	Plays []int `json:"plays"`

	// Modifiers are modifier card ids, expanded two copies each
	Modifiers []int `json:"modifiers"`

	// Unlock is nil for archetypes every coach can pick
	Unlock *UnlockRequirement `json:"unlock_requirement,omitempty"`
}
