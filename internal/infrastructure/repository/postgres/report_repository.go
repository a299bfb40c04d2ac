package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/scouting-board/internal/domain/report"
	qb "github.com/riskibarqy/scouting-board/internal/platform/querybuilder"
)

type ReportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) ListByClub(ctx context.Context, clubID string) ([]report.Report, error) {
	return r.list(ctx, "club", qb.Eq("club_id", clubID))
}

func (r *ReportRepository) ListByMarketPlayer(ctx context.Context, marketID, marketPlayerID string) ([]report.Report, error) {
	return r.list(ctx, "market player",
		qb.Eq("market_public_id", marketID),
		qb.Eq("market_player_public_id", marketPlayerID),
	)
}

func (r *ReportRepository) ListByProvider(ctx context.Context, clubID, providerID string) ([]report.Report, error) {
	return r.list(ctx, "provider",
		qb.Eq("club_id", clubID),
		qb.Eq("provider_player_id", providerID),
	)
}

func (r *ReportRepository) list(ctx context.Context, scope string, conditions ...qb.Condition) ([]report.Report, error) {
	query, args, err := reportBaseSelectBuilder().
		Where(conditions...).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list reports by %s query: %w", scope, err)
	}

	var rows []reportTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list reports by %s: %w", scope, err)
	}

	out := make([]report.Report, 0, len(rows))
	for _, row := range rows {
		item, err := reportFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("report=%s: %w", row.ID, err)
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *ReportRepository) GetByID(ctx context.Context, reportID string) (report.Report, bool, error) {
	query, args, err := reportBaseSelectBuilder().
		Where(qb.Eq("public_id", reportID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return report.Report{}, false, fmt.Errorf("build get report query: %w", err)
	}

	var row reportTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return report.Report{}, false, nil
		}
		return report.Report{}, false, fmt.Errorf("get report: %w", err)
	}

	item, err := reportFromRow(row)
	if err != nil {
		return report.Report{}, false, err
	}
	return item, true, nil
}

func (r *ReportRepository) Create(ctx context.Context, item report.Report) error {
	model, err := reportToWriteModel(item)
	if err != nil {
		return err
	}

	query, args, err := qb.InsertModel("scout_reports", model, "")
	if err != nil {
		return fmt.Errorf("build create report query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	return nil
}

func (r *ReportRepository) Update(ctx context.Context, item report.Report) error {
	model, err := reportToWriteModel(item)
	if err != nil {
		return err
	}

	builder, err := qb.UpdateModel("scout_reports", model)
	if err != nil {
		return fmt.Errorf("build update report query: %w", err)
	}
	query, args, err := builder.
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update report query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update report: %w", err)
	}
	return nil
}

func reportBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(
		"public_id",
		"club_id",
		"market_public_id",
		"market_player_public_id",
		"provider_player_id",
		"player_name",
		"position_played",
		"match_context",
		"overall_rating",
		"ratings",
		"notes",
		"strengths",
		"weaknesses",
		"recommendation",
		"market_condition",
		"agent",
		"tags",
		"estimated_price",
		"observed_on",
		"viewing_type",
		"competition",
		"opponent",
		"result",
		"minutes_observed",
		"video_url",
		"created_by",
		"updated_by",
		"created_at",
		"updated_at",
	).From("scout_reports")
}
