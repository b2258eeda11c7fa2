package service

import (
	appErrors "github.com/campanhas/campaigns-backend/internal/errors"
	"github.com/campanhas/campaigns-backend/internal/model"
	"github.com/campanhas/campaigns-backend/internal/repository"
	"github.com/campanhas/campaigns-backend/internal/view"
)

type CommentService struct {
	CommentRepo  repository.CommentRepositoryInterface
	CampaignRepo repository.CampaignRepositoryInterface
	Users        *UserService
}

// CommentForm is the creation payload for a comment or reply.
type CommentForm struct {
	Content     string   `json:"content"`
	ParentID    *string  `json:"parentId"`
	Mentions    []string `json:"mentions"`
	Attachments []string `json:"attachments"`
}

// ListThread returns the campaign's comments arranged into a reply tree.
func (s *CommentService) ListThread(campaignID string) ([]*model.Comment, error) {
	flat, err := s.CommentRepo.ListForCampaign(campaignID)
	if err != nil {
		return nil, err
	}
	return view.BuildThread(flat), nil
}

func (s *CommentService) Create(campaignID string, form *CommentForm) (*model.Comment, error) {
	if form.Content == "" {
		return nil, appErrors.NewValidation("content", "is required")
	}

	if _, err := s.CampaignRepo.GetByID(campaignID); err != nil {
		return nil, err
	}

	actor, err := s.Users.SystemUser()
	if err != nil {
		return nil, err
	}

	c := &model.Comment{
		CampaignID:  campaignID,
		AuthorID:    actor.ID,
		AuthorName:  actor.Name,
		Content:     form.Content,
		ParentID:    form.ParentID,
		Mentions:    form.Mentions,
		Attachments: form.Attachments,
	}
	if c.Mentions == nil {
		c.Mentions = []string{}
	}
	if c.Attachments == nil {
		c.Attachments = []string{}
	}

	if err := s.CommentRepo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CommentService) Update(id, content string) (*model.Comment, error) {
	if content == "" {
		return nil, appErrors.NewValidation("content", "is required")
	}
	return s.CommentRepo.UpdateContent(id, content)
}

// ToggleImportant flips the important flag on a comment.
func (s *CommentService) ToggleImportant(id string) (*model.Comment, error) {
	c, err := s.CommentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return s.CommentRepo.SetImportant(id, !c.IsImportant)
}

// Delete removes a comment without touching its replies; the thread builder
// promotes orphaned replies so they stay visible.
func (s *CommentService) Delete(id string) error {
	return s.CommentRepo.Delete(id)
}
