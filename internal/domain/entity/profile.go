package entity

// DefaultKcalTarget applies when a profile has no daily target yet.
const DefaultKcalTarget = 2000

// Profile holds the nutrition goals of one user, keyed by email.
type Profile struct {
	ID              int      `json:"id"` // Row number on the sheet, 0 when not stored yet.
	Email           string   `json:"email"`
	DailyKcalTarget float64  `json:"daily_kcal_target"`
	StartDate       string   `json:"start_date"`               // ISO date the program started.
	InitialWeight   *float64 `json:"initial_weight,omitempty"` // kg
	TargetWeight    *float64 `json:"target_weight,omitempty"`  // kg
}
