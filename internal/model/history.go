package model

import "time"

type EditAction string

const (
	ActionCreated           EditAction = "created"
	ActionEdited            EditAction = "edited"
	ActionStatusChanged     EditAction = "status_changed"
	ActionTagsUpdated       EditAction = "tags_updated"
	ActionAttachmentAdded   EditAction = "attachment_added"
	ActionAttachmentRemoved EditAction = "attachment_removed"
)

// EditHistoryEntry is an append-only audit row. The application only ever
// inserts these; there is no update or delete path.
type EditHistoryEntry struct {
	ID           string     `db:"id" json:"id"`
	CampaignID   string     `db:"campaign_id" json:"campaignId"`
	UserID       string     `db:"user_id" json:"userId"`
	UserName     string     `json:"userName"`
	Action       EditAction `db:"action" json:"action"`
	FieldChanged *string    `db:"field_changed" json:"fieldChanged,omitempty"`
	OldValue     *string    `db:"old_value" json:"oldValue,omitempty"`
	NewValue     *string    `db:"new_value" json:"newValue,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"timestamp"`
}
