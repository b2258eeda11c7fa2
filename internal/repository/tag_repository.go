package repository

import (
	"database/sql"

	"github.com/campanhas/campaigns-backend/internal/model"
)

type TagRepositoryInterface interface {
	ListAll() ([]*model.Tag, error)
	GetByID(id string) (*model.Tag, error)
	GetByName(name string) (*model.Tag, error)
	Create(t *model.Tag) error
	Link(campaignID, tagID, relation string) error
	UnlinkAll(campaignID string) error
	CopyLinks(srcCampaignID, dstCampaignID string) error
}

type TagRepository struct {
	DB *sql.DB
}

func (r *TagRepository) ListAll() ([]*model.Tag, error) {
	rows, err := r.DB.Query(`SELECT id, name, slug, type FROM tags ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []*model.Tag{}
	for rows.Next() {
		t := &model.Tag{}
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.Type); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

func (r *TagRepository) GetByID(id string) (*model.Tag, error) {
	var t model.Tag
	err := r.DB.QueryRow(`SELECT id, name, slug, type FROM tags WHERE id=$1`, id).
		Scan(&t.ID, &t.Name, &t.Slug, &t.Type)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *TagRepository) GetByName(name string) (*model.Tag, error) {
	var t model.Tag
	err := r.DB.QueryRow(`SELECT id, name, slug, type FROM tags WHERE name=$1`, name).
		Scan(&t.ID, &t.Name, &t.Slug, &t.Type)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *TagRepository) Create(t *model.Tag) error {
	return r.DB.QueryRow(
		`INSERT INTO tags (name, slug, type) VALUES ($1, $2, $3) RETURNING id`,
		t.Name, t.Slug, t.Type,
	).Scan(&t.ID)
}

func (r *TagRepository) Link(campaignID, tagID, relation string) error {
	_, err := r.DB.Exec(`
		INSERT INTO campaign_tags (campaign_id, tag_id, relation_type)
		VALUES ($1, $2, $3)
		ON CONFLICT (campaign_id, tag_id, relation_type) DO NOTHING`,
		campaignID, tagID, relation,
	)
	return err
}

func (r *TagRepository) UnlinkAll(campaignID string) error {
	_, err := r.DB.Exec(`DELETE FROM campaign_tags WHERE campaign_id=$1`, campaignID)
	return err
}

// CopyLinks duplicates every tag link of one campaign onto another.
func (r *TagRepository) CopyLinks(srcCampaignID, dstCampaignID string) error {
	_, err := r.DB.Exec(`
		INSERT INTO campaign_tags (campaign_id, tag_id, relation_type)
		SELECT $2, tag_id, relation_type FROM campaign_tags WHERE campaign_id=$1`,
		srcCampaignID, dstCampaignID,
	)
	return err
}

var _ TagRepositoryInterface = (*TagRepository)(nil)
