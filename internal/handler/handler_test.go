package handler_test

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	appErrors "github.com/campanhas/campaigns-backend/internal/errors"
	"github.com/campanhas/campaigns-backend/internal/handler"
	"github.com/campanhas/campaigns-backend/internal/model"
	"github.com/campanhas/campaigns-backend/internal/queue"
	"github.com/campanhas/campaigns-backend/internal/service"
)

// memStore is a single in-memory backend implementing every repository
// interface the handlers need.
type memStore struct {
	campaigns    map[string]*model.Campaign
	comments     map[string]*model.Comment
	attachments  map[string]*model.Attachment
	tags         map[string]*model.Tag
	users        map[string]*model.User
	institutions []*model.Institution
	positions    []*model.Position
	audit        []*model.EditHistoryEntry
	nextID       int
}

func newMemStore() *memStore {
	return &memStore{
		campaigns:   map[string]*model.Campaign{},
		comments:    map[string]*model.Comment{},
		attachments: map[string]*model.Attachment{},
		tags:        map[string]*model.Tag{},
		users:       map[string]*model.User{},
		institutions: []*model.Institution{
			{ID: "institution-1", Name: "PUCRS"},
			{ID: "institution-2", Name: "FAAP"},
		},
		positions: []*model.Position{
			{ID: "position-1", Name: "Designer"},
		},
	}
}

func (m *memStore) id(prefix string) string {
	m.nextID++
	return fmt.Sprintf("%s-%d", prefix, m.nextID)
}

// CampaignRepositoryInterface

func (m *memStore) List() ([]*model.Campaign, error) {
	out := []*model.Campaign{}
	for _, c := range m.campaigns {
		out = append(out, c)
	}
	return out, nil
}

func (m *memStore) GetByID(id string) (*model.Campaign, error) {
	c, ok := m.campaigns[id]
	if !ok {
		return nil, appErrors.NewCampaignNotFound(id)
	}
	copied := *c
	return &copied, nil
}

func (m *memStore) GetBySlug(slug string) (*model.Campaign, error) {
	for _, c := range m.campaigns {
		if c.Slug == slug {
			copied := *c
			return &copied, nil
		}
	}
	return nil, appErrors.NewCampaignNotFound(slug)
}

func (m *memStore) ListSlugs() (map[string]bool, error) {
	taken := map[string]bool{}
	for _, c := range m.campaigns {
		taken[c.Slug] = true
	}
	return taken, nil
}

func (m *memStore) Create(c *model.Campaign) error {
	c.ID = m.id("campaign")
	c.CreatedAt = time.Now()
	if c.Status == "" {
		c.Status = model.StatusDraft
	}
	stored := *c
	m.campaigns[c.ID] = &stored
	return nil
}

func (m *memStore) Update(c *model.Campaign) error {
	if _, ok := m.campaigns[c.ID]; !ok {
		return appErrors.NewCampaignNotFound(c.ID)
	}
	stored := *c
	m.campaigns[c.ID] = &stored
	return nil
}

func (m *memStore) UpdateStatus(id string, status model.CampaignStatus) error {
	c, ok := m.campaigns[id]
	if !ok {
		return appErrors.NewCampaignNotFound(id)
	}
	c.Status = status
	return nil
}

func (m *memStore) Delete(id string) error {
	if _, ok := m.campaigns[id]; !ok {
		return appErrors.NewCampaignNotFound(id)
	}
	delete(m.campaigns, id)
	return nil
}

// tagRepo wraps the store under a distinct type because TagRepository and
// CampaignRepository both declare Create/GetByID with different signatures.
type tagRepo struct{ *memStore }

func (r tagRepo) ListAll() ([]*model.Tag, error) {
	out := []*model.Tag{}
	for _, t := range r.tags {
		out = append(out, t)
	}
	return out, nil
}

func (r tagRepo) GetByID(id string) (*model.Tag, error) {
	return r.tags[id], nil
}

func (r tagRepo) GetByName(name string) (*model.Tag, error) {
	for _, t := range r.tags {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, nil
}

func (r tagRepo) Create(t *model.Tag) error {
	t.ID = r.id("tag")
	r.tags[t.ID] = t
	return nil
}

func (r tagRepo) Link(campaignID, tagID, relation string) error { return nil }
func (r tagRepo) UnlinkAll(campaignID string) error             { return nil }
func (r tagRepo) CopyLinks(src, dst string) error               { return nil }

type institutionRepo struct{ *memStore }

func (r institutionRepo) ListAll() ([]*model.Institution, error) {
	return r.institutions, nil
}

func (r institutionRepo) GetByName(name string) (*model.Institution, error) {
	for _, i := range r.institutions {
		if i.Name == name {
			return i, nil
		}
	}
	return nil, nil
}

type positionRepo struct{ *memStore }

func (r positionRepo) ListAll() ([]*model.Position, error) {
	return r.positions, nil
}

type historyRepo struct{ *memStore }

func (r historyRepo) ListForCampaign(campaignID string) ([]*model.EditHistoryEntry, error) {
	out := []*model.EditHistoryEntry{}
	for _, e := range r.audit {
		if e.CampaignID == campaignID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r historyRepo) Create(e *model.EditHistoryEntry) error {
	e.ID = r.id("audit")
	e.CreatedAt = time.Now()
	r.audit = append(r.audit, e)
	return nil
}

type userRepo struct{ *memStore }

func (r userRepo) GetByID(id string) (*model.User, error) {
	return r.users[id], nil
}

func (r userRepo) Create(u *model.User) error {
	r.users[u.ID] = u
	return nil
}

func (r userRepo) Update(u *model.User) error {
	r.users[u.ID] = u
	return nil
}

type commentRepo struct{ *memStore }

func (r commentRepo) ListForCampaign(campaignID string) ([]*model.Comment, error) {
	out := []*model.Comment{}
	for _, c := range r.comments {
		if c.CampaignID == campaignID {
			copied := *c
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r commentRepo) GetByID(id string) (*model.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, appErrors.NewCommentNotFound(id)
	}
	copied := *c
	return &copied, nil
}

func (r commentRepo) Create(c *model.Comment) error {
	c.ID = r.id("comment")
	c.CreatedAt = time.Now()
	stored := *c
	r.comments[c.ID] = &stored
	return nil
}

func (r commentRepo) UpdateContent(id, content string) (*model.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, appErrors.NewCommentNotFound(id)
	}
	now := time.Now()
	c.Content = content
	c.EditedAt = &now
	copied := *c
	return &copied, nil
}

func (r commentRepo) SetImportant(id string, important bool) (*model.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, appErrors.NewCommentNotFound(id)
	}
	c.IsImportant = important
	copied := *c
	return &copied, nil
}

func (r commentRepo) Delete(id string) error {
	if _, ok := r.comments[id]; !ok {
		return appErrors.NewCommentNotFound(id)
	}
	delete(r.comments, id)
	return nil
}

type attachmentRepo struct{ *memStore }

func (r attachmentRepo) ListForCampaign(campaignID string) ([]*model.Attachment, error) {
	out := []*model.Attachment{}
	for _, a := range r.attachments {
		if a.CampaignID == campaignID {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r attachmentRepo) CountForCampaign(campaignID string) (int, error) {
	count := 0
	for _, a := range r.attachments {
		if a.CampaignID == campaignID {
			count++
		}
	}
	return count, nil
}

func (r attachmentRepo) GetByID(id string) (*model.Attachment, error) {
	a, ok := r.attachments[id]
	if !ok {
		return nil, appErrors.NewAttachmentNotFound(id)
	}
	copied := *a
	return &copied, nil
}

func (r attachmentRepo) Create(a *model.Attachment) error {
	a.ID = r.id("attachment")
	a.UploadedAt = time.Now()
	stored := *a
	r.attachments[a.ID] = &stored
	return nil
}

func (r attachmentRepo) Rename(id, displayName string) (*model.Attachment, error) {
	a, ok := r.attachments[id]
	if !ok {
		return nil, appErrors.NewAttachmentNotFound(id)
	}
	a.DisplayName = displayName
	copied := *a
	return &copied, nil
}

func (r attachmentRepo) Delete(id string) error {
	if _, ok := r.attachments[id]; !ok {
		return appErrors.NewAttachmentNotFound(id)
	}
	delete(r.attachments, id)
	return nil
}

type memObjectStore struct {
	objects map[string]int64
}

func (s *memObjectStore) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	s.objects[key] = size
	return nil
}

func (s *memObjectStore) Delete(ctx context.Context, key string) error {
	delete(s.objects, key)
	return nil
}

func (s *memObjectStore) SignedURL(ctx context.Context, key string) (string, error) {
	return "https://storage.test/" + key + "?signed=1", nil
}

// newTestRouter builds the full route tree on top of the in-memory store.
func newTestRouter() (*memStore, *handler.Handlers, *queue.InMemoryQueue) {
	store := newMemStore()
	events := queue.NewInMemoryQueue()
	log := zerolog.Nop()

	users := &service.UserService{UserRepo: userRepo{store}}
	campaignSvc := &service.CampaignService{
		CampaignRepo:    store,
		TagRepo:         tagRepo{store},
		InstitutionRepo: institutionRepo{store},
		HistoryRepo:     historyRepo{store},
		Users:           users,
		Queue:           events,
		Log:             log,
	}
	commentSvc := &service.CommentService{
		CommentRepo:  commentRepo{store},
		CampaignRepo: store,
		Users:        users,
	}
	attachmentSvc := &service.AttachmentService{
		AttachmentRepo: attachmentRepo{store},
		CampaignRepo:   store,
		HistoryRepo:    historyRepo{store},
		Storage:        &memObjectStore{objects: map[string]int64{}},
		Users:          users,
		Queue:          events,
		Log:            log,
	}
	historySvc := &service.HistoryService{
		HistoryRepo:  historyRepo{store},
		CampaignRepo: store,
	}

	h := &handler.Handlers{
		Campaigns:   handler.NewCampaignHandler(campaignSvc, log),
		Comments:    handler.NewCommentHandler(commentSvc, log),
		Attachments: handler.NewAttachmentHandler(attachmentSvc, log),
		History:     handler.NewHistoryHandler(historySvc, log),
		Lookups: &handler.LookupHandler{
			Tags:         tagRepo{store},
			Institutions: institutionRepo{store},
			Positions:    positionRepo{store},
			Log:          log,
		},
		Profile: handler.NewProfileHandler(users, log),
	}
	return store, h, events
}
