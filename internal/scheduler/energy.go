package scheduler

import "github.com/lenacroft/tempo/internal/domain"

// EnergyProfile maps task categories to preferred and avoided time-of-day
// windows. It is consulted by the ordering policy (focus and rank
// tie-breaks) and by slot suggestion (preferred-window-first search).
type EnergyProfile struct {
	windows map[string]domain.EnergyWindow
	prefs   map[domain.TaskCategory]domain.CategoryPreference
}

// NewEnergyProfile builds a profile from explicit windows and preferences.
// Preference entries referring to unknown window IDs are kept; the unknown
// IDs simply never match during slot search.
func NewEnergyProfile(windows []domain.EnergyWindow, prefs []domain.CategoryPreference) *EnergyProfile {
	p := &EnergyProfile{
		windows: make(map[string]domain.EnergyWindow, len(windows)),
		prefs:   make(map[domain.TaskCategory]domain.CategoryPreference, len(prefs)),
	}
	for _, w := range windows {
		p.windows[w.ID] = w
	}
	for _, pref := range prefs {
		p.prefs[pref.Category] = pref
	}
	return p
}

// DefaultEnergyProfile returns the built-in profile: demanding work in the
// morning, communication and admin in the afternoon, learning allowed in
// the evening.
func DefaultEnergyProfile() *EnergyProfile {
	return NewEnergyProfile(DefaultEnergyWindows(), DefaultCategoryPreferences())
}

// DefaultEnergyWindows returns the built-in time-of-day windows.
func DefaultEnergyWindows() []domain.EnergyWindow {
	return []domain.EnergyWindow{
		{ID: "early_morning", Label: "Early morning", StartMin: 510, EndMin: 600},   // 08:30-10:00
		{ID: "late_morning", Label: "Late morning", StartMin: 600, EndMin: 720},     // 10:00-12:00
		{ID: "early_afternoon", Label: "Early afternoon", StartMin: 780, EndMin: 930}, // 13:00-15:30
		{ID: "late_afternoon", Label: "Late afternoon", StartMin: 930, EndMin: 1050}, // 15:30-17:30
		{ID: "evening", Label: "Evening", StartMin: 1140, EndMin: 1260},             // 19:00-21:00
	}
}

// DefaultCategoryPreferences returns the built-in category preferences,
// referring to the default window IDs.
func DefaultCategoryPreferences() []domain.CategoryPreference {
	return []domain.CategoryPreference{
		{Category: domain.CategoryClientWork, Preferred: []string{"early_morning", "late_morning"}, Avoided: []string{"evening"}, RequiresFocus: true, Rank: 0},
		{Category: domain.CategoryCreative, Preferred: []string{"early_morning", "early_afternoon"}, Avoided: []string{"late_afternoon"}, RequiresFocus: true, Rank: 1},
		{Category: domain.CategoryLearning, Preferred: []string{"late_morning", "evening"}, RequiresFocus: true, Rank: 2},
		{Category: domain.CategoryCommunication, Preferred: []string{"early_afternoon", "late_afternoon"}, Avoided: []string{"early_morning"}, Rank: 3},
		{Category: domain.CategoryAdmin, Preferred: []string{"late_afternoon", "early_afternoon"}, Avoided: []string{"early_morning"}, Rank: 4},
		{Category: domain.CategoryErrand, Preferred: []string{"late_afternoon"}, Avoided: []string{"early_morning"}, Rank: 5},
	}
}

// Window looks up an energy window by ID.
func (p *EnergyProfile) Window(id string) (domain.EnergyWindow, bool) {
	w, ok := p.windows[id]
	return w, ok
}

// Preference looks up a category's preference entry.
func (p *EnergyProfile) Preference(cat domain.TaskCategory) (domain.CategoryPreference, bool) {
	pref, ok := p.prefs[cat]
	return pref, ok
}

// RequiresFocus reports whether the category is focus-heavy. Unknown
// categories are not.
func (p *EnergyProfile) RequiresFocus(cat domain.TaskCategory) bool {
	return p.prefs[cat].RequiresFocus
}

// CategoryRank returns the category's tie-break rank; unknown categories
// sort after every configured one.
func (p *EnergyProfile) CategoryRank(cat domain.TaskCategory) int {
	if pref, ok := p.prefs[cat]; ok {
		return pref.Rank
	}
	return len(p.prefs) + 1
}

// PreferredWindows resolves a category's preferred window IDs to windows,
// in preference order. IDs with no matching window are skipped.
func (p *EnergyProfile) PreferredWindows(cat domain.TaskCategory) []domain.EnergyWindow {
	pref, ok := p.prefs[cat]
	if !ok {
		return nil
	}
	out := make([]domain.EnergyWindow, 0, len(pref.Preferred))
	for _, id := range pref.Preferred {
		if w, ok := p.windows[id]; ok {
			out = append(out, w)
		}
	}
	return out
}

// AvoidedWindows resolves a category's avoided window IDs to windows.
func (p *EnergyProfile) AvoidedWindows(cat domain.TaskCategory) []domain.EnergyWindow {
	pref, ok := p.prefs[cat]
	if !ok {
		return nil
	}
	out := make([]domain.EnergyWindow, 0, len(pref.Avoided))
	for _, id := range pref.Avoided {
		if w, ok := p.windows[id]; ok {
			out = append(out, w)
		}
	}
	return out
}
