package service

import (
	"github.com/campanhas/campaigns-backend/internal/model"
	"github.com/campanhas/campaigns-backend/internal/repository"
)

type HistoryService struct {
	HistoryRepo  repository.HistoryRepositoryInterface
	CampaignRepo repository.CampaignRepositoryInterface
}

// ListForCampaign returns the campaign's audit trail, newest first.
func (s *HistoryService) ListForCampaign(campaignID string) ([]*model.EditHistoryEntry, error) {
	if _, err := s.CampaignRepo.GetByID(campaignID); err != nil {
		return nil, err
	}
	return s.HistoryRepo.ListForCampaign(campaignID)
}
