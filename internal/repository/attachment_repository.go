package repository

import (
	"database/sql"
	"time"

	appErrors "github.com/campanhas/campaigns-backend/internal/errors"
	"github.com/campanhas/campaigns-backend/internal/model"
)

type AttachmentRepositoryInterface interface {
	ListForCampaign(campaignID string) ([]*model.Attachment, error)
	CountForCampaign(campaignID string) (int, error)
	GetByID(id string) (*model.Attachment, error)
	Create(a *model.Attachment) error
	Rename(id, displayName string) (*model.Attachment, error)
	Delete(id string) error
}

type AttachmentRepository struct {
	DB *sql.DB
}

const attachmentColumns = `
	a.id, a.campaign_id, a.file_name, a.display_name, a.file_type, a.mime_type,
	a.file_size, a.storage_path, a.uploaded_by, u.name, a.created_at
`

func (r *AttachmentRepository) scan(row interface{ Scan(...any) error }) (*model.Attachment, error) {
	var a model.Attachment
	err := row.Scan(
		&a.ID, &a.CampaignID, &a.FileName, &a.DisplayName, &a.FileType, &a.MimeType,
		&a.FileSize, &a.StoragePath, &a.UploadedBy, &a.UploadedByName, &a.UploadedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AttachmentRepository) ListForCampaign(campaignID string) ([]*model.Attachment, error) {
	rows, err := r.DB.Query(`
		SELECT `+attachmentColumns+`
		FROM attachments a
		JOIN users u ON u.id = a.uploaded_by
		WHERE a.campaign_id = $1
		ORDER BY a.created_at DESC`, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attachments := []*model.Attachment{}
	for rows.Next() {
		a, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, a)
	}
	return attachments, rows.Err()
}

func (r *AttachmentRepository) CountForCampaign(campaignID string) (int, error) {
	var count int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM attachments WHERE campaign_id=$1`, campaignID).Scan(&count)
	return count, err
}

func (r *AttachmentRepository) GetByID(id string) (*model.Attachment, error) {
	a, err := r.scan(r.DB.QueryRow(`
		SELECT `+attachmentColumns+`
		FROM attachments a
		JOIN users u ON u.id = a.uploaded_by
		WHERE a.id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewAttachmentNotFound(id)
		}
		return nil, err
	}
	return a, nil
}

func (r *AttachmentRepository) Create(a *model.Attachment) error {
	a.UploadedAt = time.Now()
	return r.DB.QueryRow(`
		INSERT INTO attachments
			(campaign_id, file_name, display_name, file_type, mime_type, file_size, storage_path, uploaded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		a.CampaignID, a.FileName, a.DisplayName, a.FileType, a.MimeType,
		a.FileSize, a.StoragePath, a.UploadedBy, a.UploadedAt,
	).Scan(&a.ID)
}

// Rename changes the display name only; the stored object and original file
// name are untouched.
func (r *AttachmentRepository) Rename(id, displayName string) (*model.Attachment, error) {
	res, err := r.DB.Exec(`UPDATE attachments SET display_name=$1 WHERE id=$2`, displayName, id)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, appErrors.NewAttachmentNotFound(id)
	}
	return r.GetByID(id)
}

func (r *AttachmentRepository) Delete(id string) error {
	res, err := r.DB.Exec(`DELETE FROM attachments WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.NewAttachmentNotFound(id)
	}
	return nil
}

var _ AttachmentRepositoryInterface = (*AttachmentRepository)(nil)
