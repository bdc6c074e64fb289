package weather

import "context"

// Preferences is the persisted slice of the application state: the active
// city and forecast horizon survive a restart, everything else is
// re-fetched.
type Preferences struct {
	ActiveCity  string
	HorizonDays int
}

// PreferencesRepository persists preferences. Load returns a not-found
// error when nothing has been saved yet.
type PreferencesRepository interface {
	Load(ctx context.Context) (*Preferences, error)
	Save(ctx context.Context, prefs Preferences) error
}
