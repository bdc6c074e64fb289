// Package favorites implements the favorite-city set: insertion-ordered,
// with case-insensitive membership.
package favorites

import "strings"

// Set holds favorite city names. Membership is case-insensitive, insertion
// order is preserved, and no two entries collide under case folding.
type Set struct {
	cities []string
}

// NewSet creates a set from existing city names, dropping case-insensitive
// duplicates while keeping first-seen casing and order.
func NewSet(cities ...string) *Set {
	s := &Set{}
	for _, city := range cities {
		s.Add(city)
	}
	return s
}

// Contains reports case-insensitive membership.
func (s *Set) Contains(city string) bool {
	return s.indexOf(city) >= 0
}

// Add inserts a city unless an equivalent entry already exists. It reports
// whether the set changed.
func (s *Set) Add(city string) bool {
	if strings.TrimSpace(city) == "" {
		return false
	}
	if s.Contains(city) {
		return false
	}
	s.cities = append(s.cities, city)
	return true
}

// Toggle flips membership and reports whether the city is now a member.
func (s *Set) Toggle(city string) bool {
	if idx := s.indexOf(city); idx >= 0 {
		s.cities = append(s.cities[:idx], s.cities[idx+1:]...)
		return false
	}
	s.Add(city)
	return true
}

// Remove deletes a city, a no-op when absent. It reports whether the set
// changed.
func (s *Set) Remove(city string) bool {
	idx := s.indexOf(city)
	if idx < 0 {
		return false
	}
	s.cities = append(s.cities[:idx], s.cities[idx+1:]...)
	return true
}

// Cities returns the favorite cities in insertion order.
func (s *Set) Cities() []string {
	out := make([]string, len(s.cities))
	copy(out, s.cities)
	return out
}

// Len returns the number of favorites.
func (s *Set) Len() int {
	return len(s.cities)
}

func (s *Set) indexOf(city string) int {
	for i, c := range s.cities {
		if strings.EqualFold(c, city) {
			return i
		}
	}
	return -1
}
