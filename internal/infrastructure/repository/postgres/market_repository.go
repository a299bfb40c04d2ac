package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/scouting-board/internal/domain/market"
	qb "github.com/riskibarqy/scouting-board/internal/platform/querybuilder"
)

type MarketRepository struct {
	db *sqlx.DB
}

func NewMarketRepository(db *sqlx.DB) *MarketRepository {
	return &MarketRepository{db: db}
}

func (r *MarketRepository) ListByClub(ctx context.Context, clubID string) ([]market.Market, error) {
	query, args, err := marketBaseSelectBuilder().
		Where(
			qb.Eq("club_id", clubID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("created_at DESC", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list markets by club query: %w", err)
	}

	return r.selectMarkets(ctx, query, args...)
}

func (r *MarketRepository) ListByCreator(ctx context.Context, clubID, userID string) ([]market.Market, error) {
	query, args, err := marketBaseSelectBuilder().
		Where(
			qb.Eq("club_id", clubID),
			qb.Eq("created_by", userID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("created_at DESC", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list markets by creator query: %w", err)
	}

	return r.selectMarkets(ctx, query, args...)
}

func (r *MarketRepository) GetByID(ctx context.Context, marketID string) (market.Market, bool, error) {
	query, args, err := marketBaseSelectBuilder().
		Where(
			qb.Eq("public_id", marketID),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return market.Market{}, false, fmt.Errorf("build get market query: %w", err)
	}

	var row marketTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return market.Market{}, false, nil
		}
		return market.Market{}, false, fmt.Errorf("get market: %w", err)
	}

	return marketFromRow(row), true, nil
}

func (r *MarketRepository) Create(ctx context.Context, item market.Market) error {
	insertModel := marketInsertModel{
		ID:        item.ID,
		ClubID:    item.ClubID,
		Name:      item.Name,
		StartDate: nullTime(item.StartDate),
		EndDate:   nullTime(item.EndDate),
		Notes:     nullString(item.Notes),
		Status:    string(item.Status),
		CreatedBy: item.CreatedBy,
	}

	query, args, err := qb.InsertModel("markets", insertModel, "")
	if err != nil {
		return fmt.Errorf("build create market query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create market: %w", err)
	}
	return nil
}

func (r *MarketRepository) Update(ctx context.Context, item market.Market) error {
	builder, err := qb.UpdateModel("markets", marketInsertModel{
		ID:        item.ID,
		ClubID:    item.ClubID,
		Name:      item.Name,
		StartDate: nullTime(item.StartDate),
		EndDate:   nullTime(item.EndDate),
		Notes:     nullString(item.Notes),
		Status:    string(item.Status),
		CreatedBy: item.CreatedBy,
	})
	if err != nil {
		return fmt.Errorf("build update market query: %w", err)
	}
	query, args, err := builder.
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", item.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update market query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update market: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("update market: market %s not found", item.ID)
	}
	return nil
}

func (r *MarketRepository) selectMarkets(ctx context.Context, query string, args ...any) ([]market.Market, error) {
	var rows []marketTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list markets: %w", err)
	}

	out := make([]market.Market, 0, len(rows))
	for _, row := range rows {
		out = append(out, marketFromRow(row))
	}
	return out, nil
}

func marketFromRow(row marketTableModel) market.Market {
	status, ok := market.ParseStatus(row.Status)
	if !ok {
		status = market.StatusActive
	}
	return market.Market{
		ID:        row.ID,
		ClubID:    row.ClubID,
		Name:      row.Name,
		StartDate: timePtr(row.StartDate),
		EndDate:   timePtr(row.EndDate),
		Notes:     row.Notes.String,
		Status:    status,
		CreatedBy: row.CreatedBy,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func marketBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(
		"public_id",
		"club_id",
		"name",
		"start_date",
		"end_date",
		"notes",
		"status",
		"created_by",
		"created_at",
		"updated_at",
	).From("markets")
}
