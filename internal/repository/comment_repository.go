package repository

import (
	"database/sql"
	"time"

	"github.com/lib/pq"

	appErrors "github.com/campanhas/campaigns-backend/internal/errors"
	"github.com/campanhas/campaigns-backend/internal/model"
)

type CommentRepositoryInterface interface {
	ListForCampaign(campaignID string) ([]*model.Comment, error)
	GetByID(id string) (*model.Comment, error)
	Create(c *model.Comment) error
	UpdateContent(id, content string) (*model.Comment, error)
	SetImportant(id string, important bool) (*model.Comment, error)
	Delete(id string) error
}

type CommentRepository struct {
	DB *sql.DB
}

const commentColumns = `
	c.id, c.campaign_id, c.user_id, u.name, c.content, c.parent_id,
	c.mentions, c.attachments, c.is_important, c.created_at, c.updated_at, c.edited_at
`

func (r *CommentRepository) scan(row interface{ Scan(...any) error }) (*model.Comment, error) {
	var c model.Comment
	err := row.Scan(
		&c.ID, &c.CampaignID, &c.AuthorID, &c.AuthorName, &c.Content, &c.ParentID,
		pq.Array(&c.Mentions), pq.Array(&c.Attachments), &c.IsImportant,
		&c.CreatedAt, &c.UpdatedAt, &c.EditedAt,
	)
	if err != nil {
		return nil, err
	}
	if c.Mentions == nil {
		c.Mentions = []string{}
	}
	if c.Attachments == nil {
		c.Attachments = []string{}
	}
	return &c, nil
}

// ListForCampaign returns the flat comment list, newest first. Tree shaping is
// the view layer's job.
func (r *CommentRepository) ListForCampaign(campaignID string) ([]*model.Comment, error) {
	rows, err := r.DB.Query(`
		SELECT `+commentColumns+`
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.campaign_id = $1
		ORDER BY c.created_at DESC`, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []*model.Comment{}
	for rows.Next() {
		c, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *CommentRepository) GetByID(id string) (*model.Comment, error) {
	c, err := r.scan(r.DB.QueryRow(`
		SELECT `+commentColumns+`
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewCommentNotFound(id)
		}
		return nil, err
	}
	return c, nil
}

func (r *CommentRepository) Create(c *model.Comment) error {
	c.CreatedAt = time.Now()
	return r.DB.QueryRow(`
		INSERT INTO comments (campaign_id, user_id, content, parent_id, mentions, attachments, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		c.CampaignID, c.AuthorID, c.Content, c.ParentID,
		pq.Array(c.Mentions), pq.Array(c.Attachments), c.CreatedAt,
	).Scan(&c.ID)
}

func (r *CommentRepository) UpdateContent(id, content string) (*model.Comment, error) {
	res, err := r.DB.Exec(
		`UPDATE comments SET content=$1, edited_at=NOW(), updated_at=NOW() WHERE id=$2`,
		content, id,
	)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, appErrors.NewCommentNotFound(id)
	}
	return r.GetByID(id)
}

func (r *CommentRepository) SetImportant(id string, important bool) (*model.Comment, error) {
	res, err := r.DB.Exec(
		`UPDATE comments SET is_important=$1, updated_at=NOW() WHERE id=$2`,
		important, id,
	)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, appErrors.NewCommentNotFound(id)
	}
	return r.GetByID(id)
}

// Delete removes a single comment. Replies keep their parent_id and are
// rendered as orphans; there is no tree-walk deletion.
func (r *CommentRepository) Delete(id string) error {
	res, err := r.DB.Exec(`DELETE FROM comments WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.NewCommentNotFound(id)
	}
	return nil
}

var _ CommentRepositoryInterface = (*CommentRepository)(nil)
