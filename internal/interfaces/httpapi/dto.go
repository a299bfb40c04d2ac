package httpapi

import (
	"time"

	"github.com/riskibarqy/scouting-board/internal/domain/formation"
	"github.com/riskibarqy/scouting-board/internal/domain/market"
	"github.com/riskibarqy/scouting-board/internal/domain/player"
	"github.com/riskibarqy/scouting-board/internal/domain/report"
	"github.com/riskibarqy/scouting-board/internal/usecase"
)

type createMarketRequest struct {
	Name      string  `json:"name" validate:"required,max=120"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	Notes     string  `json:"notes" validate:"max=4000"`
	Status    string  `json:"status" validate:"omitempty,oneof=active closed"`
}

type updateMarketRequest struct {
	Name      *string `json:"name" validate:"omitempty,max=120"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	Notes     *string `json:"notes" validate:"omitempty,max=4000"`
	Status    *string `json:"status" validate:"omitempty,oneof=active closed"`
}

type addMarketPlayerRequest struct {
	ProviderID  string `json:"providerId" validate:"required_without=Name,max=64"`
	Type        string `json:"type" validate:"omitempty,oneof=wyscout manual"`
	Name        string `json:"name" validate:"required_without=ProviderID,max=120"`
	Position    string `json:"position" validate:"max=32"`
	Age         int    `json:"age" validate:"min=0,max=60"`
	CurrentTeam string `json:"currentTeam" validate:"max=120"`
	Priority    string `json:"priority" validate:"omitempty,oneof=alta media baja"`
	Status      string `json:"status" validate:"omitempty,oneof=watching negotiating signed discarded"`
	Notes       string `json:"notes" validate:"max=4000"`
}

type updateMarketPlayerRequest struct {
	Position    *string `json:"position" validate:"omitempty,max=32"`
	CurrentTeam *string `json:"currentTeam" validate:"omitempty,max=120"`
	Priority    *string `json:"priority" validate:"omitempty,oneof=alta media baja"`
	Status      *string `json:"status" validate:"omitempty,oneof=watching negotiating signed discarded"`
	Notes       *string `json:"notes" validate:"omitempty,max=4000"`
}

type setBoardModeRequest struct {
	Mode string `json:"mode" validate:"required,oneof=list view edit"`
}

type selectLayoutRequest struct {
	Layout string `json:"layout" validate:"required,max=64"`
}

type assignPlayerRequest struct {
	PlayerID string `json:"playerId" validate:"required"`
	SlotID   string `json:"slotId" validate:"required"`
}

type pitchRectRequest struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width" validate:"gt=0"`
	Height float64 `json:"height" validate:"gt=0"`
}

type moveSlotRequest struct {
	Top       *float64          `json:"top" validate:"required_with=Left"`
	Left      *float64          `json:"left" validate:"required_with=Top"`
	DeltaTop  *float64          `json:"deltaTop"`
	DeltaLeft *float64          `json:"deltaLeft"`
	PointerX  *float64          `json:"pointerX" validate:"required_with=PointerY Pitch"`
	PointerY  *float64          `json:"pointerY" validate:"required_with=PointerX Pitch"`
	Pitch     *pitchRectRequest `json:"pitch" validate:"required_with=PointerX PointerY"`
}

func (r moveSlotRequest) toInput() usecase.MoveSlotInput {
	input := usecase.MoveSlotInput{
		Top:       r.Top,
		Left:      r.Left,
		DeltaTop:  r.DeltaTop,
		DeltaLeft: r.DeltaLeft,
		PointerX:  r.PointerX,
		PointerY:  r.PointerY,
	}
	if r.Pitch != nil {
		input.Pitch = &formation.PitchRect{
			X:      r.Pitch.X,
			Y:      r.Pitch.Y,
			Width:  r.Pitch.Width,
			Height: r.Pitch.Height,
		}
	}
	return input
}

type marketDTO struct {
	ID        string `json:"id"`
	ClubID    string `json:"clubId"`
	Name      string `json:"name"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	Notes     string `json:"notes,omitempty"`
	Status    string `json:"status"`
	CreatedBy string `json:"createdBy"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type marketPlayerDTO struct {
	ID          string `json:"id"`
	MarketID    string `json:"marketId"`
	ProviderID  string `json:"providerId,omitempty"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Position    string `json:"position,omitempty"`
	Age         int    `json:"age,omitempty"`
	CurrentTeam string `json:"currentTeam,omitempty"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	Notes       string `json:"notes,omitempty"`
	AddedBy     string `json:"addedBy"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type playerSummaryDTO struct {
	ID          string `json:"id"`
	ProviderID  string `json:"providerId,omitempty"`
	Name        string `json:"name"`
	Position    string `json:"position,omitempty"`
	Team        string `json:"team,omitempty"`
	Priority    string `json:"priority,omitempty"`
	Age         int    `json:"age,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	BirthDate   string `json:"birthDate,omitempty"`
}

type slotDTO struct {
	ID        string             `json:"id"`
	Label     string             `json:"label"`
	Top       float64            `json:"top"`
	Left      float64            `json:"left"`
	Capacity  int                `json:"capacity"`
	Occupants []playerSummaryDTO `json:"occupants"`
}

type boardDTO struct {
	MarketID  string             `json:"marketId"`
	Mode      string             `json:"mode"`
	Layout    string             `json:"layout"`
	Slots     []slotDTO          `json:"slots"`
	Available []playerSummaryDTO `json:"available"`
	Persisted bool               `json:"persisted"`
	Notice    string             `json:"notice,omitempty"`
}

type layoutPositionDTO struct {
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	Top      float64 `json:"top"`
	Left     float64 `json:"left"`
	Capacity int     `json:"capacity"`
}

type layoutDTO struct {
	Name      string              `json:"name"`
	Positions []layoutPositionDTO `json:"positions"`
}

type playerDetailsDTO struct {
	ProviderID  string `json:"providerId"`
	ShortName   string `json:"shortName,omitempty"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	Position    string `json:"position,omitempty"`
	Team        string `json:"team,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	BirthDate   string `json:"birthDate,omitempty"`
}

func marketToDTO(item market.Market) marketDTO {
	return marketDTO{
		ID:        item.ID,
		ClubID:    item.ClubID,
		Name:      item.Name,
		StartDate: formatDate(item.StartDate),
		EndDate:   formatDate(item.EndDate),
		Notes:     item.Notes,
		Status:    string(item.Status),
		CreatedBy: item.CreatedBy,
		CreatedAt: formatTimestamp(item.CreatedAt),
		UpdatedAt: formatTimestamp(item.UpdatedAt),
	}
}

func marketPlayerToDTO(item market.Player) marketPlayerDTO {
	return marketPlayerDTO{
		ID:          item.ID,
		MarketID:    item.MarketID,
		ProviderID:  item.ProviderID,
		Type:        string(item.Type),
		Name:        item.Name,
		Position:    item.Position,
		Age:         item.Age,
		CurrentTeam: item.CurrentTeam,
		Priority:    string(item.Priority),
		Status:      string(item.Status),
		Notes:       item.Notes,
		AddedBy:     item.AddedBy,
		CreatedAt:   formatTimestamp(item.CreatedAt),
		UpdatedAt:   formatTimestamp(item.UpdatedAt),
	}
}

func playerSummaryToDTO(item player.Summary) playerSummaryDTO {
	return playerSummaryDTO{
		ID:          item.ID,
		ProviderID:  item.ProviderID,
		Name:        item.DisplayName,
		Position:    item.Position,
		Team:        item.Team,
		Priority:    string(item.Priority),
		Age:         item.Age,
		ImageURL:    item.ImageURL,
		Nationality: item.Nationality,
		BirthDate:   formatDate(item.BirthDate),
	}
}

func playerSummariesToDTO(items []player.Summary) []playerSummaryDTO {
	out := make([]playerSummaryDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerSummaryToDTO(item))
	}
	return out
}

func boardToDTO(view usecase.BoardView) boardDTO {
	slots := make([]slotDTO, 0, len(view.Slots))
	for _, sv := range view.Slots {
		slots = append(slots, slotDTO{
			ID:        sv.Slot.ID,
			Label:     sv.Slot.Label,
			Top:       sv.Slot.Top,
			Left:      sv.Slot.Left,
			Capacity:  sv.Slot.Capacity,
			Occupants: playerSummariesToDTO(sv.Occupants),
		})
	}

	return boardDTO{
		MarketID:  view.MarketID,
		Mode:      string(view.Mode),
		Layout:    view.Layout,
		Slots:     slots,
		Available: playerSummariesToDTO(view.Available),
		Persisted: view.Persisted,
		Notice:    view.Notice,
	}
}

func layoutToDTO(item usecase.LayoutView) layoutDTO {
	positions := make([]layoutPositionDTO, 0, len(item.Slots))
	for _, slot := range item.Slots {
		positions = append(positions, layoutPositionDTO{
			ID:       slot.ID,
			Label:    slot.Label,
			Top:      slot.Top,
			Left:     slot.Left,
			Capacity: slot.Capacity,
		})
	}
	return layoutDTO{Name: item.Name, Positions: positions}
}

func playerDetailsToDTO(item player.Details) playerDetailsDTO {
	return playerDetailsDTO{
		ProviderID:  item.ProviderID,
		ShortName:   item.ShortName,
		FirstName:   item.FirstName,
		LastName:    item.LastName,
		Position:    item.Position,
		Team:        item.Team,
		Nationality: item.Nationality,
		ImageURL:    item.ImageURL,
		BirthDate:   formatDate(item.BirthDate),
	}
}

// reportRequest is used for create and full replace. Grade ranges are
// checked by the service so an unrated (zero) grade can default.
type reportRequest struct {
	PositionPlayed  string         `json:"positionPlayed" validate:"max=32"`
	MatchContext    string         `json:"matchContext" validate:"max=200"`
	Ratings         report.Ratings `json:"ratings"`
	Notes           string         `json:"notes" validate:"max=4000"`
	Strengths       string         `json:"strengths" validate:"max=4000"`
	Weaknesses      string         `json:"weaknesses" validate:"max=4000"`
	Recommendation  string         `json:"recommendation" validate:"max=16"`
	MarketCondition string         `json:"marketCondition" validate:"max=200"`
	Agent           string         `json:"agent" validate:"max=120"`
	Tags            []string       `json:"tags" validate:"max=12,dive,max=40"`
	EstimatedPrice  *float64       `json:"estimatedPrice" validate:"omitempty,gte=0"`
	ObservedOn      *string        `json:"observedOn"`
	Viewing         string         `json:"viewingType" validate:"max=16"`
	Competition     string         `json:"competition" validate:"max=120"`
	Opponent        string         `json:"opponent" validate:"max=120"`
	Result          string         `json:"result" validate:"max=32"`
	MinutesObserved int            `json:"minutesObserved" validate:"min=0,max=130"`
	VideoURL        string         `json:"videoUrl" validate:"omitempty,url,max=500"`
}

func (r reportRequest) toInput(observedOn *time.Time) usecase.ReportInput {
	return usecase.ReportInput{
		PositionPlayed:  r.PositionPlayed,
		MatchContext:    r.MatchContext,
		Ratings:         r.Ratings,
		Notes:           r.Notes,
		Strengths:       r.Strengths,
		Weaknesses:      r.Weaknesses,
		Recommendation:  r.Recommendation,
		MarketCondition: r.MarketCondition,
		Agent:           r.Agent,
		Tags:            r.Tags,
		EstimatedPrice:  r.EstimatedPrice,
		ObservedOn:      observedOn,
		Viewing:         r.Viewing,
		Competition:     r.Competition,
		Opponent:        r.Opponent,
		Result:          r.Result,
		MinutesObserved: r.MinutesObserved,
		VideoURL:        r.VideoURL,
	}
}

type reportDTO struct {
	ID              string         `json:"id"`
	MarketID        string         `json:"marketId"`
	MarketPlayerID  string         `json:"marketPlayerId"`
	ProviderID      string         `json:"providerId,omitempty"`
	PlayerName      string         `json:"playerName"`
	PositionPlayed  string         `json:"positionPlayed,omitempty"`
	MatchContext    string         `json:"matchContext,omitempty"`
	Ratings         report.Ratings `json:"ratings"`
	Notes           string         `json:"notes,omitempty"`
	Strengths       string         `json:"strengths,omitempty"`
	Weaknesses      string         `json:"weaknesses,omitempty"`
	Recommendation  string         `json:"recommendation,omitempty"`
	MarketCondition string         `json:"marketCondition,omitempty"`
	Agent           string         `json:"agent,omitempty"`
	Tags            []string       `json:"tags"`
	EstimatedPrice  *float64       `json:"estimatedPrice,omitempty"`
	ObservedOn      string         `json:"observedOn,omitempty"`
	Viewing         string         `json:"viewingType,omitempty"`
	Competition     string         `json:"competition,omitempty"`
	Opponent        string         `json:"opponent,omitempty"`
	Result          string         `json:"result,omitempty"`
	MinutesObserved int            `json:"minutesObserved"`
	VideoURL        string         `json:"videoUrl,omitempty"`
	CreatedBy       string         `json:"createdBy"`
	UpdatedBy       string         `json:"updatedBy,omitempty"`
	CreatedAt       string         `json:"createdAt"`
	UpdatedAt       string         `json:"updatedAt"`
}

type reportAveragesDTO struct {
	Overall   float64 `json:"overall"`
	Technical float64 `json:"technical"`
	Physical  float64 `json:"physical"`
	Mental    float64 `json:"mental"`
}

type reportSummaryDTO struct {
	Reports  []reportDTO        `json:"reports"`
	Total    int                `json:"total"`
	Averages *reportAveragesDTO `json:"averages,omitempty"`
	Latest   *reportDTO         `json:"latest,omitempty"`
}

func reportToDTO(item report.Report) reportDTO {
	tags := item.Tags
	if tags == nil {
		tags = []string{}
	}
	return reportDTO{
		ID:              item.ID,
		MarketID:        item.MarketID,
		MarketPlayerID:  item.MarketPlayerID,
		ProviderID:      item.ProviderID,
		PlayerName:      item.PlayerName,
		PositionPlayed:  item.PositionPlayed,
		MatchContext:    item.MatchContext,
		Ratings:         item.Ratings,
		Notes:           item.Notes,
		Strengths:       item.Strengths,
		Weaknesses:      item.Weaknesses,
		Recommendation:  string(item.Recommendation),
		MarketCondition: item.MarketCondition,
		Agent:           item.Agent,
		Tags:            tags,
		EstimatedPrice:  item.EstimatedPrice,
		ObservedOn:      formatDate(item.ObservedOn),
		Viewing:         string(item.Viewing),
		Competition:     item.Competition,
		Opponent:        item.Opponent,
		Result:          item.Result,
		MinutesObserved: item.MinutesObserved,
		VideoURL:        item.VideoURL,
		CreatedBy:       item.CreatedBy,
		UpdatedBy:       item.UpdatedBy,
		CreatedAt:       formatTimestamp(item.CreatedAt),
		UpdatedAt:       formatTimestamp(item.UpdatedAt),
	}
}

func reportsToDTO(items []report.Report) []reportDTO {
	out := make([]reportDTO, 0, len(items))
	for _, item := range items {
		out = append(out, reportToDTO(item))
	}
	return out
}

func reportSummaryToDTO(summary report.Summary) reportSummaryDTO {
	out := reportSummaryDTO{
		Reports: reportsToDTO(summary.Reports),
		Total:   summary.Total,
	}
	if summary.Averages != nil {
		out.Averages = &reportAveragesDTO{
			Overall:   summary.Averages.Overall,
			Technical: summary.Averages.Technical,
			Physical:  summary.Averages.Physical,
			Mental:    summary.Averages.Mental,
		}
	}
	if summary.Latest != nil {
		latest := reportToDTO(*summary.Latest)
		out.Latest = &latest
	}
	return out
}
