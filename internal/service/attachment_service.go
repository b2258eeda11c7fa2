package service

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	appErrors "github.com/campanhas/campaigns-backend/internal/errors"
	"github.com/campanhas/campaigns-backend/internal/model"
	"github.com/campanhas/campaigns-backend/internal/queue"
	"github.com/campanhas/campaigns-backend/internal/repository"
	"github.com/campanhas/campaigns-backend/internal/storage"
)

type AttachmentService struct {
	AttachmentRepo repository.AttachmentRepositoryInterface
	CampaignRepo   repository.CampaignRepositoryInterface
	HistoryRepo    repository.HistoryRepositoryInterface
	Storage        storage.Storage
	Users          *UserService
	Queue          queue.Queue
	Log            zerolog.Logger
}

// Upload stores the file bytes and inserts the attachment row. If the row
// insert fails the stored object is removed again. The returned attachment
// carries a fresh signed URL.
func (s *AttachmentService) Upload(ctx context.Context, campaignID, fileName, mimeType string, size int64, body io.Reader) (*model.Attachment, error) {
	if size > model.MaxFileSize {
		return nil, appErrors.NewValidation("file", "too large (max 100MB)")
	}

	if _, err := s.CampaignRepo.GetByID(campaignID); err != nil {
		return nil, err
	}

	count, err := s.AttachmentRepo.CountForCampaign(campaignID)
	if err != nil {
		return nil, err
	}
	if count >= model.MaxFilesPerCampaign {
		return nil, appErrors.NewValidation("file",
			fmt.Sprintf("campaign already has the maximum of %d attachments", model.MaxFilesPerCampaign))
	}

	actor, err := s.Users.SystemUser()
	if err != nil {
		return nil, err
	}

	key := storage.StorageKey(campaignID, fileName)
	if err := s.Storage.Upload(ctx, key, mimeType, body, size); err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}

	a := &model.Attachment{
		CampaignID:     campaignID,
		FileName:       fileName,
		DisplayName:    fileName,
		FileType:       model.FileTypeFor(fileName, mimeType),
		MimeType:       mimeType,
		FileSize:       size,
		StoragePath:    key,
		UploadedBy:     actor.ID,
		UploadedByName: actor.Name,
	}
	if err := s.AttachmentRepo.Create(a); err != nil {
		// keep bucket and table consistent
		if cleanupErr := s.Storage.Delete(ctx, key); cleanupErr != nil {
			s.Log.Error().Err(cleanupErr).Str("key", key).Msg("Failed to clean up orphaned object")
		}
		return nil, err
	}

	s.recordEdit(campaignID, actor.ID, model.ActionAttachmentAdded, fileName)
	s.publish(queue.EventAttachmentAdded, campaignID, actor.ID, fileName)

	url, err := s.Storage.SignedURL(ctx, key)
	if err != nil {
		s.Log.Warn().Err(err).Str("key", key).Msg("Failed to sign URL for fresh upload")
	} else {
		a.URL = url
	}
	return a, nil
}

// ListForCampaign returns the campaign's attachments, each with a freshly
// signed URL. URLs expire, so they are never cached server-side.
func (s *AttachmentService) ListForCampaign(ctx context.Context, campaignID string) ([]*model.Attachment, error) {
	attachments, err := s.AttachmentRepo.ListForCampaign(campaignID)
	if err != nil {
		return nil, err
	}
	for _, a := range attachments {
		url, err := s.Storage.SignedURL(ctx, a.StoragePath)
		if err != nil {
			s.Log.Warn().Err(err).Str("key", a.StoragePath).Msg("Failed to sign URL")
			continue
		}
		a.URL = url
	}
	return attachments, nil
}

// Rename changes the display name only; the stored object keeps its key.
func (s *AttachmentService) Rename(id, displayName string) (*model.Attachment, error) {
	if displayName == "" {
		return nil, appErrors.NewValidation("displayName", "is required")
	}
	return s.AttachmentRepo.Rename(id, displayName)
}

// Delete removes the object from the bucket and then the row. No soft delete.
func (s *AttachmentService) Delete(ctx context.Context, id string) error {
	a, err := s.AttachmentRepo.GetByID(id)
	if err != nil {
		return err
	}

	actor, err := s.Users.SystemUser()
	if err != nil {
		return err
	}

	if err := s.Storage.Delete(ctx, a.StoragePath); err != nil {
		s.Log.Warn().Err(err).Str("key", a.StoragePath).Msg("Failed to delete stored object")
	}
	if err := s.AttachmentRepo.Delete(id); err != nil {
		return err
	}

	s.recordEdit(a.CampaignID, actor.ID, model.ActionAttachmentRemoved, a.FileName)
	s.publish(queue.EventAttachmentRemoved, a.CampaignID, actor.ID, a.FileName)
	return nil
}

func (s *AttachmentService) recordEdit(campaignID, userID string, action model.EditAction, fileName string) {
	field := "attachments"
	entry := &model.EditHistoryEntry{
		CampaignID:   campaignID,
		UserID:       userID,
		Action:       action,
		FieldChanged: &field,
		NewValue:     &fileName,
	}
	if err := s.HistoryRepo.Create(entry); err != nil {
		s.Log.Error().Err(err).Str("campaign_id", campaignID).Msg("Failed to record edit history")
	}
}

func (s *AttachmentService) publish(kind, campaignID, actor, detail string) {
	if s.Queue == nil {
		return
	}
	err := s.Queue.Publish(EventsTopic, queue.Event{
		Kind:       kind,
		CampaignID: campaignID,
		Actor:      actor,
		Detail:     detail,
	})
	if err != nil {
		s.Log.Warn().Err(err).Str("kind", kind).Msg("Failed to publish attachment event")
	}
}
