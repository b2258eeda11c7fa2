package model

import "time"

type CampaignStatus string

const (
	StatusDraft     CampaignStatus = "draft"
	StatusPublished CampaignStatus = "published"
	StatusArchived  CampaignStatus = "archived"
)

type Campaign struct {
	ID                  string         `db:"id" json:"id"`
	Name                string         `db:"name" json:"name"`
	Slug                string         `db:"slug" json:"slug"`
	Institution         string         `db:"institution" json:"institution"`
	InstitutionID       string         `db:"institution_id" json:"institutionId"`
	Description         string         `db:"description" json:"description"`
	AudioURL            *string        `db:"audio_url" json:"audioUrl,omitempty"`
	TagsRelated         []string       `json:"tagsRelated"`
	TagsExcluded        []string       `json:"tagsExcluded"`
	StartDate           time.Time      `db:"start_date" json:"startDate"`
	EndDate             time.Time      `db:"end_date" json:"endDate"`
	Status              CampaignStatus `db:"status" json:"status"`
	CreatedBy           string         `db:"created_by_user_id" json:"createdBy"`
	CreatedByName       string         `json:"createdByName"`
	CreatedAt           time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt           *time.Time     `db:"updated_at" json:"updatedAt,omitempty"`
	AttachmentCount     int            `json:"attachmentCount"`
	TotalAttachmentSize int64          `json:"totalAttachmentSize"`
}

// CampaignPatch lists the mutable campaign fields. A nil field means "leave
// unchanged"; partial request bodies are decoded into this instead of being
// merged blindly into the stored record.
type CampaignPatch struct {
	Name         *string    `json:"name"`
	Institution  *string    `json:"institution"`
	Description  *string    `json:"description"`
	AudioURL     *string    `json:"audioUrl"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	Status       *CampaignStatus `json:"status"`
	TagsRelated  *[]string  `json:"tagsRelated"`
	TagsExcluded *[]string  `json:"tagsExcluded"`
}
