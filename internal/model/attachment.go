package model

import (
	"strings"
	"time"
)

type AttachmentType string

const (
	FileImage        AttachmentType = "image"
	FileVideo        AttachmentType = "video"
	FileAudio        AttachmentType = "audio"
	FilePDF          AttachmentType = "pdf"
	FileDocument     AttachmentType = "document"
	FileSpreadsheet  AttachmentType = "spreadsheet"
	FilePresentation AttachmentType = "presentation"
	FileDesign       AttachmentType = "design"
	FileArchive      AttachmentType = "archive"
	FileOther        AttachmentType = "other"
)

const (
	// MaxFileSize is the per-attachment ceiling (100MB).
	MaxFileSize = 100 * 1024 * 1024
	// MaxFilesPerCampaign caps how many attachments a campaign may hold.
	MaxFilesPerCampaign = 20
)

type Attachment struct {
	ID             string         `db:"id" json:"id"`
	CampaignID     string         `db:"campaign_id" json:"campaignId"`
	FileName       string         `db:"file_name" json:"fileName"`
	DisplayName    string         `db:"display_name" json:"displayName"`
	FileType       AttachmentType `db:"file_type" json:"fileType"`
	MimeType       string         `db:"mime_type" json:"mimeType"`
	FileSize       int64          `db:"file_size" json:"fileSize"`
	StoragePath    string         `db:"storage_path" json:"-"`
	URL            string         `json:"url,omitempty"`
	UploadedBy     string         `db:"uploaded_by" json:"uploadedBy"`
	UploadedByName string         `json:"uploadedByName"`
	UploadedAt     time.Time      `db:"created_at" json:"uploadedAt"`
}

// FileTypeFor classifies a file from its MIME type, falling back to the
// extension for formats browsers report with a generic content type.
func FileTypeFor(fileName, mimeType string) AttachmentType {
	if strings.HasSuffix(strings.ToLower(fileName), ".psd") {
		return FileDesign
	}
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return FileImage
	case strings.HasPrefix(mimeType, "video/"):
		return FileVideo
	case strings.HasPrefix(mimeType, "audio/"):
		return FileAudio
	case strings.Contains(mimeType, "pdf"):
		return FilePDF
	// spreadsheet and presentation markers go first: every Office MIME type
	// contains "officedocument", which would otherwise swallow them
	case strings.Contains(mimeType, "sheet") || strings.Contains(mimeType, "excel") || strings.Contains(mimeType, "csv"):
		return FileSpreadsheet
	case strings.Contains(mimeType, "presentation") || strings.Contains(mimeType, "powerpoint"):
		return FilePresentation
	case strings.Contains(mimeType, "word") || strings.Contains(mimeType, "document"):
		return FileDocument
	case strings.Contains(mimeType, "zip") || strings.Contains(mimeType, "rar") || strings.Contains(mimeType, "7z"):
		return FileArchive
	}
	return FileOther
}
