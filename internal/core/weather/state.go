package weather

import "sync"

// State is the UI-facing application state. Current, Forecast and Daily
// survive a failed refresh (stale-but-visible); LastError carries a plain
// message string, never an error object.
type State struct {
	ActiveCity  string          `json:"activeCity"`
	HorizonDays int             `json:"forecastHorizonDays"`
	Current     *CurrentWeather `json:"currentRecord"`
	Forecast    []ForecastEntry `json:"forecastEntries"`
	Daily       []DailyForecast `json:"dailyForecast"`
	Loading     bool            `json:"loading"`
	LastError   string          `json:"lastError"`
	Suggestions []string        `json:"suggestions"`
}

// Store owns the application state and is its only mutation point. A
// monotonic generation counter tags every weather request so that a slow,
// superseded response cannot clobber the result of a newer one: only the
// generation issued last is allowed to apply.
type Store struct {
	mu    sync.Mutex
	state State
	gen   uint64
}

// NewStore creates a store seeded with the default city and horizon.
func NewStore(defaultCity string, defaultHorizon int) *Store {
	return &Store{
		state: State{
			ActiveCity:  defaultCity,
			HorizonDays: defaultHorizon,
			Suggestions: []string{},
		},
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetCity sets the active city and reports whether it changed. The caller
// fetches exactly once per city/horizon pair, keyed off the change report.
func (s *Store) SetCity(city string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.ActiveCity == city {
		return false
	}
	s.state.ActiveCity = city
	return true
}

// SetHorizon sets the forecast horizon and reports whether it changed.
func (s *Store) SetHorizon(days int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.HorizonDays == days {
		return false
	}
	s.state.HorizonDays = days
	return true
}

// Begin starts a weather request: loading is set, the previous error is
// cleared, and the returned generation must accompany the matching
// ApplySuccess or ApplyFailure call.
func (s *Store) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.state.Loading = true
	s.state.LastError = ""
	return s.gen
}

// ApplySuccess installs a fetched bundle. A stale generation is dropped
// and the method reports false.
func (s *Store) ApplySuccess(gen uint64, bundle *Bundle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return false
	}
	s.state.Current = bundle.Current
	s.state.Forecast = bundle.Forecast
	s.state.Daily = bundle.Daily
	s.state.Loading = false
	return true
}

// ApplyFailure records a failed request. Previously fetched records are
// left untouched. A stale generation is dropped.
func (s *Store) ApplyFailure(gen uint64, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return false
	}
	s.state.LastError = message
	s.state.Loading = false
	return true
}

// SetSuggestions replaces the in-flight suggestion list.
func (s *Store) SetSuggestions(suggestions []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if suggestions == nil {
		suggestions = []string{}
	}
	s.state.Suggestions = suggestions
}

// ClearSuggestions empties the suggestion list.
func (s *Store) ClearSuggestions() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Suggestions = []string{}
}
