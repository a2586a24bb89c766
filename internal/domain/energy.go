package domain

// EnergyWindow is a named minute-of-day interval used to prefer cognitively
// demanding work at higher-energy hours.
type EnergyWindow struct {
	ID       string
	Label    string
	StartMin int
	EndMin   int
}

// CategoryPreference maps a task category to its time-of-day preferences.
type CategoryPreference struct {
	Category TaskCategory
	// Preferred lists energy window IDs in descending preference order.
	Preferred []string
	// Avoided lists windows the category should stay out of.
	Avoided []string
	// RequiresFocus categories claim the earliest available capacity
	// among otherwise tied tasks.
	RequiresFocus bool
	// Rank breaks remaining ties; lower ranks schedule earlier in the day.
	Rank int
}
