package market

import (
	"errors"
	"strings"
	"time"

	"github.com/riskibarqy/scouting-board/internal/domain/player"
)

var ErrDuplicatePlayer = errors.New("player already shortlisted in market")

type Status string

const (
	StatusActive Status = "active"
	StatusClosed Status = "closed"
)

func ParseStatus(v string) (Status, bool) {
	switch s := Status(strings.ToLower(strings.TrimSpace(v))); s {
	case StatusActive, StatusClosed:
		return s, true
	case "":
		return StatusActive, true
	default:
		return "", false
	}
}

// Market is a transfer window shortlist owned by a club.
type Market struct {
	ID        string
	ClubID    string
	Name      string
	StartDate *time.Time
	EndDate   *time.Time
	Notes     string
	Status    Status
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type PlayerType string

const (
	PlayerTypeProvider PlayerType = "wyscout"
	PlayerTypeManual   PlayerType = "manual"
)

type PlayerStatus string

const (
	PlayerStatusWatching    PlayerStatus = "watching"
	PlayerStatusNegotiating PlayerStatus = "negotiating"
	PlayerStatusSigned      PlayerStatus = "signed"
	PlayerStatusDiscarded   PlayerStatus = "discarded"
)

func ParsePlayerStatus(v string) (PlayerStatus, bool) {
	switch s := PlayerStatus(strings.ToLower(strings.TrimSpace(v))); s {
	case PlayerStatusWatching, PlayerStatusNegotiating, PlayerStatusSigned, PlayerStatusDiscarded:
		return s, true
	case "":
		return PlayerStatusWatching, true
	default:
		return "", false
	}
}

// Player is one shortlisted entry of a market.
type Player struct {
	ID          string
	MarketID    string
	ProviderID  string
	Type        PlayerType
	Name        string
	Position    string
	Age         int
	CurrentTeam string
	Priority    player.Priority
	Status      PlayerStatus
	Notes       string
	AddedBy     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Summary normalises the entry into the roster record used by the board.
func (p Player) Summary() player.Summary {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		name = p.ProviderID
	}
	return player.Summary{
		ID:          p.ID,
		ProviderID:  p.ProviderID,
		DisplayName: name,
		Position:    strings.TrimSpace(p.Position),
		Team:        strings.TrimSpace(p.CurrentTeam),
		Priority:    p.Priority,
		Age:         p.Age,
	}
}

// Roster converts entries in order, skipping discarded players.
func Roster(players []Player) []player.Summary {
	out := make([]player.Summary, 0, len(players))
	for _, item := range players {
		if item.Status == PlayerStatusDiscarded {
			continue
		}
		out = append(out, item.Summary())
	}
	return out
}
