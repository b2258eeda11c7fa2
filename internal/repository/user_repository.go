package repository

import (
	"database/sql"

	"github.com/campanhas/campaigns-backend/internal/model"
)

type UserRepositoryInterface interface {
	GetByID(id string) (*model.User, error)
	Create(u *model.User) error
	Update(u *model.User) error
}

type UserRepository struct {
	DB *sql.DB
}

const userColumns = `id, email, name, full_name, role, position, area, is_active, created_at, updated_at`

func (r *UserRepository) GetByID(id string) (*model.User, error) {
	var u model.User
	err := r.DB.QueryRow(`SELECT `+userColumns+` FROM users WHERE id=$1`, id).Scan(
		&u.ID, &u.Email, &u.Name, &u.FullName, &u.Role, &u.Position, &u.Area,
		&u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(u *model.User) error {
	_, err := r.DB.Exec(`
		INSERT INTO users (id, email, name, full_name, role, position, area, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())`,
		u.ID, u.Email, u.Name, u.FullName, u.Role, u.Position, u.Area, u.IsActive,
	)
	return err
}

func (r *UserRepository) Update(u *model.User) error {
	_, err := r.DB.Exec(`
		UPDATE users
		SET email=$1, name=$2, full_name=$3, role=$4, position=$5, area=$6, updated_at=NOW()
		WHERE id=$7`,
		u.Email, u.Name, u.FullName, u.Role, u.Position, u.Area, u.ID,
	)
	return err
}

var _ UserRepositoryInterface = (*UserRepository)(nil)
