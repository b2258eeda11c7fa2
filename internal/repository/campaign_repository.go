package repository

import (
	"database/sql"
	"time"

	"github.com/lib/pq"

	appErrors "github.com/campanhas/campaigns-backend/internal/errors"
	"github.com/campanhas/campaigns-backend/internal/model"
)

type CampaignRepositoryInterface interface {
	List() ([]*model.Campaign, error)
	GetByID(id string) (*model.Campaign, error)
	GetBySlug(slug string) (*model.Campaign, error)
	ListSlugs() (map[string]bool, error)
	Create(c *model.Campaign) error
	Update(c *model.Campaign) error
	UpdateStatus(id string, status model.CampaignStatus) error
	Delete(id string) error
}

type CampaignRepository struct {
	DB *sql.DB
}

const campaignColumns = `
	c.id, c.name, c.slug, i.name, c.institution_id, c.description, c.audio_url,
	c.start_date, c.end_date, c.status, c.created_by_user_id, u.name,
	c.created_at, c.updated_at,
	COALESCE(a.cnt, 0), COALESCE(a.total, 0)
`

const campaignJoins = `
	FROM campaigns c
	JOIN institutions i ON i.id = c.institution_id
	JOIN users u ON u.id = c.created_by_user_id
	LEFT JOIN (
		SELECT campaign_id, COUNT(*) AS cnt, SUM(file_size) AS total
		FROM attachments GROUP BY campaign_id
	) a ON a.campaign_id = c.id
`

func scanCampaign(row interface{ Scan(...any) error }) (*model.Campaign, error) {
	var c model.Campaign
	err := row.Scan(
		&c.ID, &c.Name, &c.Slug, &c.Institution, &c.InstitutionID, &c.Description, &c.AudioURL,
		&c.StartDate, &c.EndDate, &c.Status, &c.CreatedBy, &c.CreatedByName,
		&c.CreatedAt, &c.UpdatedAt,
		&c.AttachmentCount, &c.TotalAttachmentSize,
	)
	if err != nil {
		return nil, err
	}
	c.TagsRelated = []string{}
	c.TagsExcluded = []string{}
	return &c, nil
}

// List returns all non-deleted campaigns, newest first, with denormalized
// institution and creator names and the tag sets populated.
func (r *CampaignRepository) List() ([]*model.Campaign, error) {
	query := `SELECT ` + campaignColumns + campaignJoins + `
		WHERE c.deleted_at IS NULL
		ORDER BY c.created_at DESC`

	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	campaigns := []*model.Campaign{}
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadTags(campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

func (r *CampaignRepository) GetByID(id string) (*model.Campaign, error) {
	query := `SELECT ` + campaignColumns + campaignJoins + `
		WHERE c.id = $1 AND c.deleted_at IS NULL`

	c, err := scanCampaign(r.DB.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewCampaignNotFound(id)
		}
		return nil, err
	}
	if err := r.loadTags([]*model.Campaign{c}); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CampaignRepository) GetBySlug(slug string) (*model.Campaign, error) {
	query := `SELECT ` + campaignColumns + campaignJoins + `
		WHERE c.slug = $1 AND c.deleted_at IS NULL`

	c, err := scanCampaign(r.DB.QueryRow(query, slug))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewCampaignNotFound(slug)
		}
		return nil, err
	}
	if err := r.loadTags([]*model.Campaign{c}); err != nil {
		return nil, err
	}
	return c, nil
}

// ListSlugs returns the slugs of all non-deleted campaigns, for uniqueness
// checks before insert.
func (r *CampaignRepository) ListSlugs() (map[string]bool, error) {
	rows, err := r.DB.Query(`SELECT slug FROM campaigns WHERE deleted_at IS NULL`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slugs := map[string]bool{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		slugs[s] = true
	}
	return slugs, rows.Err()
}

func (r *CampaignRepository) Create(c *model.Campaign) error {
	c.CreatedAt = time.Now()
	if c.Status == "" {
		c.Status = model.StatusDraft
	}
	query := `
		INSERT INTO campaigns
			(name, slug, institution_id, description, audio_url, start_date, end_date, status, created_by_user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	return r.DB.QueryRow(query,
		c.Name, c.Slug, c.InstitutionID, c.Description, c.AudioURL,
		c.StartDate, c.EndDate, c.Status, c.CreatedBy, c.CreatedAt,
	).Scan(&c.ID)
}

func (r *CampaignRepository) Update(c *model.Campaign) error {
	query := `
		UPDATE campaigns
		SET name=$1, slug=$2, institution_id=$3, description=$4, audio_url=$5,
			start_date=$6, end_date=$7, status=$8, updated_at=NOW()
		WHERE id=$9 AND deleted_at IS NULL
	`
	res, err := r.DB.Exec(query,
		c.Name, c.Slug, c.InstitutionID, c.Description, c.AudioURL,
		c.StartDate, c.EndDate, c.Status, c.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.NewCampaignNotFound(c.ID)
	}
	return nil
}

func (r *CampaignRepository) UpdateStatus(id string, status model.CampaignStatus) error {
	res, err := r.DB.Exec(
		`UPDATE campaigns SET status=$1, updated_at=NOW() WHERE id=$2 AND deleted_at IS NULL`,
		status, id,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.NewCampaignNotFound(id)
	}
	return nil
}

// Delete removes the campaign row outright. Attachments, comments and history
// rows are left in place; nothing cascades at the application layer.
func (r *CampaignRepository) Delete(id string) error {
	res, err := r.DB.Exec(`DELETE FROM campaigns WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.NewCampaignNotFound(id)
	}
	return nil
}

// loadTags fills TagsRelated/TagsExcluded for the given campaigns with a
// single query over the join table.
func (r *CampaignRepository) loadTags(campaigns []*model.Campaign) error {
	if len(campaigns) == 0 {
		return nil
	}
	ids := make([]string, len(campaigns))
	byID := make(map[string]*model.Campaign, len(campaigns))
	for i, c := range campaigns {
		ids[i] = c.ID
		byID[c.ID] = c
	}

	rows, err := r.DB.Query(`
		SELECT ct.campaign_id, t.name, ct.relation_type
		FROM campaign_tags ct
		JOIN tags t ON t.id = ct.tag_id
		WHERE ct.campaign_id = ANY($1)
		ORDER BY t.name`, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var campaignID, name, relation string
		if err := rows.Scan(&campaignID, &name, &relation); err != nil {
			return err
		}
		c := byID[campaignID]
		if c == nil {
			continue
		}
		if relation == "excluded" {
			c.TagsExcluded = append(c.TagsExcluded, name)
		} else {
			c.TagsRelated = append(c.TagsRelated, name)
		}
	}
	return rows.Err()
}

var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)
