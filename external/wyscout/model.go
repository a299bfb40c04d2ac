package wyscout

import (
	"strings"
	"time"

	"github.com/riskibarqy/scouting-board/internal/domain/player"
)

type playerPayload struct {
	WyID         int64      `json:"wyId"`
	ShortName    string     `json:"shortName"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	BirthDate    string     `json:"birthDate"`
	ImageDataURL string     `json:"imageDataURL"`
	Role         namedCode  `json:"role"`
	PassportArea namedArea  `json:"passportArea"`
	BirthArea    namedArea  `json:"birthArea"`
	CurrentTeam  *namedTeam `json:"currentTeam"`
}

type namedCode struct {
	Name  string `json:"name"`
	Code2 string `json:"code2"`
}

type namedArea struct {
	Name string `json:"name"`
}

type namedTeam struct {
	Name         string `json:"name"`
	OfficialName string `json:"officialName"`
}

func (p playerPayload) toDetails(providerID string) player.Details {
	nationality := strings.TrimSpace(p.PassportArea.Name)
	if nationality == "" {
		nationality = strings.TrimSpace(p.BirthArea.Name)
	}

	var team string
	if p.CurrentTeam != nil {
		team = firstNonEmpty(p.CurrentTeam.Name, p.CurrentTeam.OfficialName)
	}

	return player.Details{
		ProviderID:  providerID,
		ShortName:   strings.TrimSpace(p.ShortName),
		FirstName:   strings.TrimSpace(p.FirstName),
		LastName:    strings.TrimSpace(p.LastName),
		Position:    firstNonEmpty(p.Role.Code2, p.Role.Name),
		Team:        team,
		Nationality: nationality,
		ImageURL:    strings.TrimSpace(p.ImageDataURL),
		BirthDate:   parseBirthDate(p.BirthDate),
	}
}

func parseBirthDate(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if parsed, err := time.Parse(layout, value); err == nil {
			parsed = parsed.UTC()
			return &parsed
		}
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
