package postgres

import (
	"database/sql"
	"time"
)

type marketTableModel struct {
	ID        string         `db:"public_id"`
	ClubID    string         `db:"club_id"`
	Name      string         `db:"name"`
	StartDate sql.NullTime   `db:"start_date"`
	EndDate   sql.NullTime   `db:"end_date"`
	Notes     sql.NullString `db:"notes"`
	Status    string         `db:"status"`
	CreatedBy string         `db:"created_by"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

// marketInsertModel doubles as the update model; readonly columns never change
// after creation.
type marketInsertModel struct {
	ID        string         `db:"public_id,readonly"`
	ClubID    string         `db:"club_id,readonly"`
	Name      string         `db:"name"`
	StartDate sql.NullTime   `db:"start_date"`
	EndDate   sql.NullTime   `db:"end_date"`
	Notes     sql.NullString `db:"notes"`
	Status    string         `db:"status"`
	CreatedBy string         `db:"created_by,readonly"`
}

type marketPlayerTableModel struct {
	ID          string         `db:"public_id"`
	MarketID    string         `db:"market_public_id"`
	ProviderID  sql.NullString `db:"provider_player_id"`
	Type        string         `db:"player_type"`
	Name        sql.NullString `db:"name"`
	Position    sql.NullString `db:"position"`
	Age         sql.NullInt64  `db:"age"`
	CurrentTeam sql.NullString `db:"current_team"`
	Priority    string         `db:"priority"`
	Status      string         `db:"status"`
	Notes       sql.NullString `db:"notes"`
	AddedBy     string         `db:"added_by"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type marketPlayerInsertModel struct {
	ID          string         `db:"public_id"`
	MarketID    string         `db:"market_public_id"`
	ProviderID  sql.NullString `db:"provider_player_id"`
	Type        string         `db:"player_type"`
	Name        sql.NullString `db:"name"`
	Position    sql.NullString `db:"position"`
	Age         sql.NullInt64  `db:"age"`
	CurrentTeam sql.NullString `db:"current_team"`
	Priority    string         `db:"priority"`
	Status      string         `db:"status"`
	Notes       sql.NullString `db:"notes"`
	AddedBy     string         `db:"added_by"`
}
