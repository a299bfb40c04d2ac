package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/scouting-board/internal/domain/market"
	"github.com/riskibarqy/scouting-board/internal/domain/player"
	qb "github.com/riskibarqy/scouting-board/internal/platform/querybuilder"
)

type MarketPlayerRepository struct {
	db *sqlx.DB
}

func NewMarketPlayerRepository(db *sqlx.DB) *MarketPlayerRepository {
	return &MarketPlayerRepository{db: db}
}

func (r *MarketPlayerRepository) ListByMarket(ctx context.Context, marketID string) ([]market.Player, error) {
	query, args, err := marketPlayerBaseSelectBuilder().
		Where(qb.Eq("market_public_id", marketID)).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list market players query: %w", err)
	}

	var rows []marketPlayerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list market players: %w", err)
	}

	out := make([]market.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, marketPlayerFromRow(row))
	}
	return out, nil
}

func (r *MarketPlayerRepository) GetByID(ctx context.Context, marketID, playerID string) (market.Player, bool, error) {
	query, args, err := marketPlayerBaseSelectBuilder().
		Where(
			qb.Eq("market_public_id", marketID),
			qb.Eq("public_id", playerID),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return market.Player{}, false, fmt.Errorf("build get market player query: %w", err)
	}

	var row marketPlayerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return market.Player{}, false, nil
		}
		return market.Player{}, false, fmt.Errorf("get market player: %w", err)
	}

	return marketPlayerFromRow(row), true, nil
}

func (r *MarketPlayerRepository) Create(ctx context.Context, item market.Player) error {
	insertModel := marketPlayerInsertModel{
		ID:          item.ID,
		MarketID:    item.MarketID,
		ProviderID:  nullString(item.ProviderID),
		Type:        string(item.Type),
		Name:        nullString(item.Name),
		Position:    nullString(item.Position),
		Age:         nullAge(item.Age),
		CurrentTeam: nullString(item.CurrentTeam),
		Priority:    string(item.Priority),
		Status:      string(item.Status),
		Notes:       nullString(item.Notes),
		AddedBy:     item.AddedBy,
	}

	query, args, err := qb.InsertModel("market_players", insertModel, "")
	if err != nil {
		return fmt.Errorf("build create market player query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return market.ErrDuplicatePlayer
		}
		return fmt.Errorf("create market player: %w", err)
	}
	return nil
}

func (r *MarketPlayerRepository) Update(ctx context.Context, item market.Player) error {
	query, args, err := qb.Update("market_players").
		Set("priority", string(item.Priority)).
		Set("status", string(item.Status)).
		Set("notes", nullString(item.Notes)).
		Set("position", nullString(item.Position)).
		Set("current_team", nullString(item.CurrentTeam)).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("market_public_id", item.MarketID),
			qb.Eq("public_id", item.ID),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update market player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update market player: %w", err)
	}
	return nil
}

func (r *MarketPlayerRepository) Delete(ctx context.Context, marketID, playerID string) (bool, error) {
	query, args, err := qb.DeleteFrom("market_players").
		Where(
			qb.Eq("market_public_id", marketID),
			qb.Eq("public_id", playerID),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete market player query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete market player: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete market player rows affected: %w", err)
	}
	return affected > 0, nil
}

func marketPlayerFromRow(row marketPlayerTableModel) market.Player {
	priority, ok := player.ParsePriority(row.Priority)
	if !ok {
		priority = player.PriorityMedium
	}
	status, ok := market.ParsePlayerStatus(row.Status)
	if !ok {
		status = market.PlayerStatusWatching
	}
	return market.Player{
		ID:          row.ID,
		MarketID:    row.MarketID,
		ProviderID:  row.ProviderID.String,
		Type:        market.PlayerType(row.Type),
		Name:        row.Name.String,
		Position:    row.Position.String,
		Age:         int(row.Age.Int64),
		CurrentTeam: row.CurrentTeam.String,
		Priority:    priority,
		Status:      status,
		Notes:       row.Notes.String,
		AddedBy:     row.AddedBy,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func nullAge(age int) sql.NullInt64 {
	if age <= 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(age), Valid: true}
}

func marketPlayerBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(
		"public_id",
		"market_public_id",
		"provider_player_id",
		"player_type",
		"name",
		"position",
		"age",
		"current_team",
		"priority",
		"status",
		"notes",
		"added_by",
		"created_at",
		"updated_at",
	).From("market_players")
}
