package repository

import (
	"database/sql"

	"github.com/campanhas/campaigns-backend/internal/model"
)

type InstitutionRepositoryInterface interface {
	ListAll() ([]*model.Institution, error)
	GetByName(name string) (*model.Institution, error)
}

type InstitutionRepository struct {
	DB *sql.DB
}

func (r *InstitutionRepository) ListAll() ([]*model.Institution, error) {
	rows, err := r.DB.Query(`SELECT id, name FROM institutions ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	institutions := []*model.Institution{}
	for rows.Next() {
		i := &model.Institution{}
		if err := rows.Scan(&i.ID, &i.Name); err != nil {
			return nil, err
		}
		institutions = append(institutions, i)
	}
	return institutions, rows.Err()
}

func (r *InstitutionRepository) GetByName(name string) (*model.Institution, error) {
	var i model.Institution
	err := r.DB.QueryRow(`SELECT id, name FROM institutions WHERE name=$1`, name).Scan(&i.ID, &i.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &i, nil
}

var _ InstitutionRepositoryInterface = (*InstitutionRepository)(nil)

type PositionRepositoryInterface interface {
	ListAll() ([]*model.Position, error)
}

type PositionRepository struct {
	DB *sql.DB
}

func (r *PositionRepository) ListAll() ([]*model.Position, error) {
	rows, err := r.DB.Query(`SELECT id, name FROM positions ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	positions := []*model.Position{}
	for rows.Next() {
		p := &model.Position{}
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}
	return positions, rows.Err()
}

var _ PositionRepositoryInterface = (*PositionRepository)(nil)
