package models

// PlayOutcome records how a single card resolved inside a drive
type PlayOutcome struct {
	// InstanceID of the card when it came from a session hand
	InstanceID string `json:"instance_id,omitempty"`

	// Card is the resolved card
	Card CardRef `json:"card"`

	// Name is the card name at resolution time
	Name string `json:"name"`

	// Roll is the d100 draw for plays; zero for other kinds
	Roll int `json:"roll,omitempty"`

	// SuccessChance is the threshold the roll had to stay within
	SuccessChance float64 `json:"success_chance,omitempty"`

	// Failed is true for the play that caused a turnover
	Failed bool `json:"failed,omitempty"`

	// Yards gained by this play
	Yards float64 `json:"yards,omitempty"`

	// Points scored by this play
	Points int `json:"points,omitempty"`

	// Multiplier after this card resolved
	Multiplier float64 `json:"multiplier"`
}

// DriveResult is the outcome of resolving one drive
type DriveResult struct {
	Score           float64 `json:"score"`
	YardsGained     float64 `json:"yards_gained"`
	PointsScored    int     `json:"points_scored"`
	Turnover        bool    `json:"turnover"`
	SuccessfulPlays int     `json:"successful_plays"`
	DownsUsed       int     `json:"downs_used"`
	FirstDown       bool    `json:"first_down"`
	PressureLevel   int     `json:"pressure_level"`
	Multiplier      float64 `json:"multiplier"`
	Successful      bool    `json:"drive_successful"`
	DefenseRating   int     `json:"defense_rating"`

	// TurnoverOnDowns is set by the progression step when the downs ran out
	TurnoverOnDowns bool `json:"turnover_on_downs,omitempty"`

	Plays []PlayOutcome `json:"plays,omitempty"`
}

// Transition names where the session went after a drive
type Transition string

const (
	TransitionNextDrive      Transition = "next_drive"
	TransitionNextGame       Transition = "next_game"
	TransitionNextSeason     Transition = "next_season"
	TransitionSeasonFailed   Transition = "season_failed"
	TransitionCareerComplete Transition = "career_complete"
	TransitionDriveFailed    Transition = "drive_failed"
)
