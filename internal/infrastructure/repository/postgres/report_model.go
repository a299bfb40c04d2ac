package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/lib/pq"
	"github.com/riskibarqy/scouting-board/internal/domain/report"
)

type reportTableModel struct {
	ID              string          `db:"public_id"`
	ClubID          string          `db:"club_id"`
	MarketID        string          `db:"market_public_id"`
	MarketPlayerID  string          `db:"market_player_public_id"`
	ProviderID      sql.NullString  `db:"provider_player_id"`
	PlayerName      string          `db:"player_name"`
	PositionPlayed  sql.NullString  `db:"position_played"`
	MatchContext    sql.NullString  `db:"match_context"`
	OverallRating   int             `db:"overall_rating"`
	Ratings         []byte          `db:"ratings"`
	Notes           sql.NullString  `db:"notes"`
	Strengths       sql.NullString  `db:"strengths"`
	Weaknesses      sql.NullString  `db:"weaknesses"`
	Recommendation  sql.NullString  `db:"recommendation"`
	MarketCondition sql.NullString  `db:"market_condition"`
	Agent           sql.NullString  `db:"agent"`
	Tags            pq.StringArray  `db:"tags"`
	EstimatedPrice  sql.NullFloat64 `db:"estimated_price"`
	ObservedOn      sql.NullTime    `db:"observed_on"`
	Viewing         sql.NullString  `db:"viewing_type"`
	Competition     sql.NullString  `db:"competition"`
	Opponent        sql.NullString  `db:"opponent"`
	Result          sql.NullString  `db:"result"`
	MinutesObserved int             `db:"minutes_observed"`
	VideoURL        sql.NullString  `db:"video_url"`
	CreatedBy       string          `db:"created_by"`
	UpdatedBy       sql.NullString  `db:"updated_by"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

// reportWriteModel serves INSERT and UPDATE; identity columns are readonly.
type reportWriteModel struct {
	ID              string          `db:"public_id,readonly"`
	ClubID          string          `db:"club_id,readonly"`
	MarketID        string          `db:"market_public_id,readonly"`
	MarketPlayerID  string          `db:"market_player_public_id,readonly"`
	ProviderID      sql.NullString  `db:"provider_player_id,readonly"`
	PlayerName      string          `db:"player_name,readonly"`
	PositionPlayed  sql.NullString  `db:"position_played"`
	MatchContext    sql.NullString  `db:"match_context"`
	OverallRating   int             `db:"overall_rating"`
	Ratings         string          `db:"ratings"`
	Notes           sql.NullString  `db:"notes"`
	Strengths       sql.NullString  `db:"strengths"`
	Weaknesses      sql.NullString  `db:"weaknesses"`
	Recommendation  sql.NullString  `db:"recommendation"`
	MarketCondition sql.NullString  `db:"market_condition"`
	Agent           sql.NullString  `db:"agent"`
	Tags            pq.StringArray  `db:"tags"`
	EstimatedPrice  sql.NullFloat64 `db:"estimated_price"`
	ObservedOn      sql.NullTime    `db:"observed_on"`
	Viewing         sql.NullString  `db:"viewing_type"`
	Competition     sql.NullString  `db:"competition"`
	Opponent        sql.NullString  `db:"opponent"`
	Result          sql.NullString  `db:"result"`
	MinutesObserved int             `db:"minutes_observed"`
	VideoURL        sql.NullString  `db:"video_url"`
	CreatedBy       string          `db:"created_by,readonly"`
	UpdatedBy       sql.NullString  `db:"updated_by"`
}

func reportToWriteModel(item report.Report) (reportWriteModel, error) {
	ratings, err := sonic.MarshalString(item.Ratings)
	if err != nil {
		return reportWriteModel{}, fmt.Errorf("encode report ratings: %w", err)
	}
	tags := pq.StringArray(item.Tags)
	if tags == nil {
		tags = pq.StringArray{}
	}

	return reportWriteModel{
		ID:              item.ID,
		ClubID:          item.ClubID,
		MarketID:        item.MarketID,
		MarketPlayerID:  item.MarketPlayerID,
		ProviderID:      nullString(item.ProviderID),
		PlayerName:      item.PlayerName,
		PositionPlayed:  nullString(item.PositionPlayed),
		MatchContext:    nullString(item.MatchContext),
		OverallRating:   item.Ratings.Overall,
		Ratings:         ratings,
		Notes:           nullString(item.Notes),
		Strengths:       nullString(item.Strengths),
		Weaknesses:      nullString(item.Weaknesses),
		Recommendation:  nullString(string(item.Recommendation)),
		MarketCondition: nullString(item.MarketCondition),
		Agent:           nullString(item.Agent),
		Tags:            tags,
		EstimatedPrice:  nullFloat(item.EstimatedPrice),
		ObservedOn:      nullTime(item.ObservedOn),
		Viewing:         nullString(string(item.Viewing)),
		Competition:     nullString(item.Competition),
		Opponent:        nullString(item.Opponent),
		Result:          nullString(item.Result),
		MinutesObserved: item.MinutesObserved,
		VideoURL:        nullString(item.VideoURL),
		CreatedBy:       item.CreatedBy,
		UpdatedBy:       nullString(item.UpdatedBy),
	}, nil
}

// reportFromRow trusts overall_rating over the blob, since the column is
// the one constrained by the schema.
func reportFromRow(row reportTableModel) (report.Report, error) {
	var ratings report.Ratings
	if len(row.Ratings) > 0 {
		if err := sonic.Unmarshal(row.Ratings, &ratings); err != nil {
			return report.Report{}, fmt.Errorf("decode report ratings: %w", err)
		}
	}
	ratings.Overall = row.OverallRating

	recommendation, _ := report.ParseRecommendation(row.Recommendation.String)
	viewing, _ := report.ParseViewingType(row.Viewing.String)

	var price *float64
	if row.EstimatedPrice.Valid {
		v := row.EstimatedPrice.Float64
		price = &v
	}

	return report.Report{
		ID:              row.ID,
		ClubID:          row.ClubID,
		MarketID:        row.MarketID,
		MarketPlayerID:  row.MarketPlayerID,
		ProviderID:      row.ProviderID.String,
		PlayerName:      row.PlayerName,
		PositionPlayed:  row.PositionPlayed.String,
		MatchContext:    row.MatchContext.String,
		Ratings:         ratings,
		Notes:           row.Notes.String,
		Strengths:       row.Strengths.String,
		Weaknesses:      row.Weaknesses.String,
		Recommendation:  recommendation,
		MarketCondition: row.MarketCondition.String,
		Agent:           row.Agent.String,
		Tags:            []string(row.Tags),
		EstimatedPrice:  price,
		ObservedOn:      timePtr(row.ObservedOn),
		Viewing:         viewing,
		Competition:     row.Competition.String,
		Opponent:        row.Opponent.String,
		Result:          row.Result.String,
		MinutesObserved: row.MinutesObserved,
		VideoURL:        row.VideoURL.String,
		CreatedBy:       row.CreatedBy,
		UpdatedBy:       row.UpdatedBy.String,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}, nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
