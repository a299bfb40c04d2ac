package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/scouting-board/internal/domain/formation"
	qb "github.com/riskibarqy/scouting-board/internal/platform/querybuilder"
)

type FormationRepository struct {
	db       *sqlx.DB
	capacity formation.CapacityRule
}

func NewFormationRepository(db *sqlx.DB, capacity formation.CapacityRule) *FormationRepository {
	return &FormationRepository{db: db, capacity: capacity}
}

func (r *FormationRepository) GetByMarket(ctx context.Context, marketID string) (formation.Snapshot, bool, error) {
	query, args, err := formationBaseSelectBuilder().
		Where(qb.Eq("market_public_id", marketID)).
		ToSQL()
	if err != nil {
		return formation.Snapshot{}, false, fmt.Errorf("build get formation query: %w", err)
	}

	var row formationSnapshotTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isBindParameterMismatch(err) || isUnnamedPreparedStatementMissing(err) {
			return r.getByMarketLiteral(ctx, marketID)
		}
		if isNotFound(err) {
			return formation.Snapshot{}, false, nil
		}
		return formation.Snapshot{}, false, fmt.Errorf("get formation: %w", err)
	}

	return r.fromRow(row)
}

func (r *FormationRepository) getByMarketLiteral(ctx context.Context, marketID string) (formation.Snapshot, bool, error) {
	query, args, err := formationBaseSelectBuilder().
		Where(qb.EqLiteral("market_public_id", marketID)).
		ToSQL()
	if err != nil {
		return formation.Snapshot{}, false, fmt.Errorf("build get formation literal fallback query: %w", err)
	}

	var row formationSnapshotTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return formation.Snapshot{}, false, nil
		}
		return formation.Snapshot{}, false, fmt.Errorf("get formation literal fallback: %w", err)
	}

	return r.fromRow(row)
}

func (r *FormationRepository) fromRow(row formationSnapshotTableModel) (formation.Snapshot, bool, error) {
	snapshot, err := formationFromRow(row, r.capacity)
	if err != nil {
		return formation.Snapshot{}, false, err
	}
	return snapshot, true, nil
}

// Upsert stores the whole board; the last write for a market wins.
func (r *FormationRepository) Upsert(ctx context.Context, s formation.Snapshot) error {
	payload, err := encodeFormationPayload(s)
	if err != nil {
		return err
	}

	insertModel := formationSnapshotInsertModel{
		MarketID: s.MarketID,
		Layout:   s.Layout,
		Payload:  payload,
	}

	query, args, err := qb.InsertModel("formation_snapshots", insertModel, `ON CONFLICT (market_public_id)
DO UPDATE SET
    layout = EXCLUDED.layout,
    payload = EXCLUDED.payload,
    updated_at = NOW()`)
	if err != nil {
		return fmt.Errorf("build formation upsert query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert formation: %w", err)
	}
	return nil
}

func formationBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select("market_public_id", "layout", "payload", "updated_at").From("formation_snapshots")
}
