package model

import "time"

type Comment struct {
	ID          string     `db:"id" json:"id"`
	CampaignID  string     `db:"campaign_id" json:"campaignId"`
	AuthorID    string     `db:"user_id" json:"authorId"`
	AuthorName  string     `json:"authorName"`
	Content     string     `db:"content" json:"content"`
	ParentID    *string    `db:"parent_id" json:"parentId,omitempty"`
	Mentions    []string   `json:"mentions"`
	Attachments []string   `json:"attachments"`
	IsImportant bool       `db:"is_important" json:"isImportant"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updatedAt,omitempty"`
	EditedAt    *time.Time `db:"edited_at" json:"editedAt,omitempty"`

	// Replies is populated by the thread builder, never stored.
	Replies []*Comment `json:"replies,omitempty"`
}
