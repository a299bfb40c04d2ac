package player

import (
	"errors"
	"strings"
	"time"
)

var ErrDetailsNotFound = errors.New("player details not found")

// Priority is the scouting priority attached to a shortlisted player.
type Priority string

const (
	PriorityHigh   Priority = "alta"
	PriorityMedium Priority = "media"
	PriorityLow    Priority = "baja"
)

var AllPriorities = map[Priority]struct{}{
	PriorityHigh:   {},
	PriorityMedium: {},
	PriorityLow:    {},
}

// Summary is the canonical roster record seen by the formation board.
type Summary struct {
	ID          string
	ProviderID  string
	DisplayName string
	Position    string
	Team        string
	Priority    Priority
	Age         int
	ImageURL    string
	Nationality string
	BirthDate   *time.Time
}

// Details holds optional display fields returned by the player data provider.
type Details struct {
	ProviderID  string
	ShortName   string
	FirstName   string
	LastName    string
	Position    string
	Team        string
	Nationality string
	ImageURL    string
	BirthDate   *time.Time
}

func ParsePriority(v string) (Priority, bool) {
	p := Priority(strings.ToLower(strings.TrimSpace(v)))
	if p == "" {
		return PriorityMedium, true
	}
	_, ok := AllPriorities[p]
	return p, ok
}

// Enrich overlays provider details on the roster fields. Empty detail fields
// never blank out what the roster already supplied.
func (s Summary) Enrich(d Details, now time.Time) Summary {
	if name := strings.TrimSpace(d.ShortName); name != "" {
		s.DisplayName = name
	}
	if s.ImageURL == "" {
		s.ImageURL = strings.TrimSpace(d.ImageURL)
	}
	if s.Nationality == "" {
		s.Nationality = strings.TrimSpace(d.Nationality)
	}
	if d.BirthDate != nil {
		birth := *d.BirthDate
		s.BirthDate = &birth
		s.Age = AgeAt(birth, now)
	}
	if s.Team == "" {
		s.Team = strings.TrimSpace(d.Team)
	}
	if s.Position == "" {
		s.Position = strings.TrimSpace(d.Position)
	}
	return s
}

// AgeAt returns full years elapsed between birth and now.
func AgeAt(birth, now time.Time) int {
	if birth.IsZero() || now.Before(birth) {
		return 0
	}
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

// IDs returns roster ids in roster order.
func IDs(roster []Summary) []string {
	out := make([]string, 0, len(roster))
	for _, item := range roster {
		out = append(out, item.ID)
	}
	return out
}
