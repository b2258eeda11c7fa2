package service

import (
	appErrors "github.com/campanhas/campaigns-backend/internal/errors"
	"github.com/campanhas/campaigns-backend/internal/model"
	"github.com/campanhas/campaigns-backend/internal/repository"
)

// UserService resolves the system user that stands in for every actor; there
// is no authentication in front of this service.
type UserService struct {
	UserRepo repository.UserRepositoryInterface
}

// SystemUser returns the hard-coded actor row, creating it on first use.
func (s *UserService) SystemUser() (*model.User, error) {
	existing, err := s.UserRepo.GetByID(model.SystemUserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	u := &model.User{
		ID:       model.SystemUserID,
		Email:    "system@campanhas-edtech.app",
		Name:     "Sistema",
		FullName: "Usuário Sistema",
		Role:     "admin",
		Position: "Sistema",
		Area:     "Tecnologia",
		IsActive: true,
	}
	if err := s.UserRepo.Create(u); err != nil {
		return nil, appErrors.NewSystemUserMissing(err)
	}
	return u, nil
}

// ProfilePatch lists the mutable profile fields.
type ProfilePatch struct {
	Email    *string `json:"email"`
	Name     *string `json:"name"`
	FullName *string `json:"fullName"`
	Position *string `json:"position"`
	Area     *string `json:"area"`
}

// UpdateProfile applies a partial update to the system user's profile.
func (s *UserService) UpdateProfile(patch ProfilePatch) (*model.User, error) {
	u, err := s.SystemUser()
	if err != nil {
		return nil, err
	}

	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.FullName != nil {
		u.FullName = *patch.FullName
	}
	if patch.Position != nil {
		u.Position = *patch.Position
	}
	if patch.Area != nil {
		u.Area = *patch.Area
	}

	if err := s.UserRepo.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}
