package repository

import (
	"database/sql"
	"time"

	"github.com/campanhas/campaigns-backend/internal/model"
)

type HistoryRepositoryInterface interface {
	ListForCampaign(campaignID string) ([]*model.EditHistoryEntry, error)
	Create(e *model.EditHistoryEntry) error
}

// HistoryRepository writes the append-only audit trail. There is deliberately
// no update or delete method.
type HistoryRepository struct {
	DB *sql.DB
}

func (r *HistoryRepository) ListForCampaign(campaignID string) ([]*model.EditHistoryEntry, error) {
	rows, err := r.DB.Query(`
		SELECT h.id, h.campaign_id, h.user_id, u.name, h.action,
			h.field_changed, h.old_value, h.new_value, h.created_at
		FROM campaign_audit h
		JOIN users u ON u.id = h.user_id
		WHERE h.campaign_id = $1
		ORDER BY h.created_at DESC`, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []*model.EditHistoryEntry{}
	for rows.Next() {
		e := &model.EditHistoryEntry{}
		if err := rows.Scan(
			&e.ID, &e.CampaignID, &e.UserID, &e.UserName, &e.Action,
			&e.FieldChanged, &e.OldValue, &e.NewValue, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *HistoryRepository) Create(e *model.EditHistoryEntry) error {
	e.CreatedAt = time.Now()
	return r.DB.QueryRow(`
		INSERT INTO campaign_audit (campaign_id, user_id, action, field_changed, old_value, new_value, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		e.CampaignID, e.UserID, e.Action, e.FieldChanged, e.OldValue, e.NewValue, e.CreatedAt,
	).Scan(&e.ID)
}

var _ HistoryRepositoryInterface = (*HistoryRepository)(nil)
