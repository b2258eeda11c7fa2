package service_test

import (
	"context"
	"fmt"
	"io"
	"time"

	appErrors "github.com/campanhas/campaigns-backend/internal/errors"
	"github.com/campanhas/campaigns-backend/internal/model"
)

// In-memory fakes for the repository interfaces. Each assigns sequential ids
// so tests can follow relations without a database.

type fakeCampaignRepo struct {
	campaigns map[string]*model.Campaign
	nextID    int
	failNext  error
}

func newFakeCampaignRepo() *fakeCampaignRepo {
	return &fakeCampaignRepo{campaigns: map[string]*model.Campaign{}}
}

func (r *fakeCampaignRepo) List() ([]*model.Campaign, error) {
	out := []*model.Campaign{}
	for _, c := range r.campaigns {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCampaignRepo) GetByID(id string) (*model.Campaign, error) {
	c, ok := r.campaigns[id]
	if !ok {
		return nil, appErrors.NewCampaignNotFound(id)
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCampaignRepo) GetBySlug(slug string) (*model.Campaign, error) {
	for _, c := range r.campaigns {
		if c.Slug == slug {
			copied := *c
			return &copied, nil
		}
	}
	return nil, appErrors.NewCampaignNotFound(slug)
}

func (r *fakeCampaignRepo) ListSlugs() (map[string]bool, error) {
	taken := map[string]bool{}
	for _, c := range r.campaigns {
		taken[c.Slug] = true
	}
	return taken, nil
}

func (r *fakeCampaignRepo) Create(c *model.Campaign) error {
	if r.failNext != nil {
		err := r.failNext
		r.failNext = nil
		return err
	}
	r.nextID++
	c.ID = fmt.Sprintf("campaign-%d", r.nextID)
	c.CreatedAt = time.Now()
	if c.Status == "" {
		c.Status = model.StatusDraft
	}
	stored := *c
	r.campaigns[c.ID] = &stored
	return nil
}

func (r *fakeCampaignRepo) Update(c *model.Campaign) error {
	if _, ok := r.campaigns[c.ID]; !ok {
		return appErrors.NewCampaignNotFound(c.ID)
	}
	stored := *c
	r.campaigns[c.ID] = &stored
	return nil
}

func (r *fakeCampaignRepo) UpdateStatus(id string, status model.CampaignStatus) error {
	c, ok := r.campaigns[id]
	if !ok {
		return appErrors.NewCampaignNotFound(id)
	}
	c.Status = status
	return nil
}

func (r *fakeCampaignRepo) Delete(id string) error {
	if _, ok := r.campaigns[id]; !ok {
		return appErrors.NewCampaignNotFound(id)
	}
	delete(r.campaigns, id)
	return nil
}

type fakeTagRepo struct {
	tags   map[string]*model.Tag
	links  map[string][]tagLink
	nextID int
}

type tagLink struct {
	tagID    string
	relation string
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{tags: map[string]*model.Tag{}, links: map[string][]tagLink{}}
}

func (r *fakeTagRepo) ListAll() ([]*model.Tag, error) {
	out := []*model.Tag{}
	for _, t := range r.tags {
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTagRepo) GetByID(id string) (*model.Tag, error) {
	return r.tags[id], nil
}

func (r *fakeTagRepo) GetByName(name string) (*model.Tag, error) {
	for _, t := range r.tags {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeTagRepo) Create(t *model.Tag) error {
	r.nextID++
	t.ID = fmt.Sprintf("tag-%d", r.nextID)
	r.tags[t.ID] = t
	return nil
}

func (r *fakeTagRepo) Link(campaignID, tagID, relation string) error {
	r.links[campaignID] = append(r.links[campaignID], tagLink{tagID, relation})
	return nil
}

func (r *fakeTagRepo) UnlinkAll(campaignID string) error {
	delete(r.links, campaignID)
	return nil
}

func (r *fakeTagRepo) CopyLinks(srcCampaignID, dstCampaignID string) error {
	r.links[dstCampaignID] = append([]tagLink{}, r.links[srcCampaignID]...)
	return nil
}

func (r *fakeTagRepo) linkedNames(campaignID, relation string) []string {
	names := []string{}
	for _, l := range r.links[campaignID] {
		if l.relation == relation {
			names = append(names, r.tags[l.tagID].Name)
		}
	}
	return names
}

type fakeInstitutionRepo struct {
	institutions []*model.Institution
}

func newFakeInstitutionRepo(names ...string) *fakeInstitutionRepo {
	r := &fakeInstitutionRepo{}
	for i, name := range names {
		r.institutions = append(r.institutions, &model.Institution{
			ID:   fmt.Sprintf("institution-%d", i+1),
			Name: name,
		})
	}
	return r
}

func (r *fakeInstitutionRepo) ListAll() ([]*model.Institution, error) {
	return r.institutions, nil
}

func (r *fakeInstitutionRepo) GetByName(name string) (*model.Institution, error) {
	for _, i := range r.institutions {
		if i.Name == name {
			return i, nil
		}
	}
	return nil, nil
}

type fakeHistoryRepo struct {
	entries []*model.EditHistoryEntry
}

func (r *fakeHistoryRepo) ListForCampaign(campaignID string) ([]*model.EditHistoryEntry, error) {
	out := []*model.EditHistoryEntry{}
	for _, e := range r.entries {
		if e.CampaignID == campaignID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeHistoryRepo) Create(e *model.EditHistoryEntry) error {
	e.ID = fmt.Sprintf("audit-%d", len(r.entries)+1)
	e.CreatedAt = time.Now()
	r.entries = append(r.entries, e)
	return nil
}

func (r *fakeHistoryRepo) actions() []model.EditAction {
	out := []model.EditAction{}
	for _, e := range r.entries {
		out = append(out, e.Action)
	}
	return out
}

type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (r *fakeUserRepo) GetByID(id string) (*model.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) Create(u *model.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Update(u *model.User) error {
	r.users[u.ID] = u
	return nil
}

type fakeCommentRepo struct {
	comments map[string]*model.Comment
	nextID   int
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[string]*model.Comment{}}
}

func (r *fakeCommentRepo) ListForCampaign(campaignID string) ([]*model.Comment, error) {
	out := []*model.Comment{}
	for _, c := range r.comments {
		if c.CampaignID == campaignID {
			copied := *c
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) GetByID(id string) (*model.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, appErrors.NewCommentNotFound(id)
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCommentRepo) Create(c *model.Comment) error {
	r.nextID++
	c.ID = fmt.Sprintf("comment-%d", r.nextID)
	c.CreatedAt = time.Now()
	stored := *c
	r.comments[c.ID] = &stored
	return nil
}

func (r *fakeCommentRepo) UpdateContent(id, content string) (*model.Comment, error) {
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

func (r *fakeCommentRepo) SetImportant(id string, important bool) (*model.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, appErrors.NewCommentNotFound(id)
	}
	c.IsImportant = important
	copied := *c
	return &copied, nil
}

func (r *fakeCommentRepo) Delete(id string) error {
	if _, ok := r.comments[id]; !ok {
		return appErrors.NewCommentNotFound(id)
	}
	delete(r.comments, id)
	return nil
}

type fakeAttachmentRepo struct {
	attachments map[string]*model.Attachment
	nextID      int
	failCreate  error
}

func newFakeAttachmentRepo() *fakeAttachmentRepo {
	return &fakeAttachmentRepo{attachments: map[string]*model.Attachment{}}
}

func (r *fakeAttachmentRepo) ListForCampaign(campaignID string) ([]*model.Attachment, error) {
	out := []*model.Attachment{}
	for _, a := range r.attachments {
		if a.CampaignID == campaignID {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeAttachmentRepo) CountForCampaign(campaignID string) (int, error) {
	count := 0
	for _, a := range r.attachments {
		if a.CampaignID == campaignID {
			count++
		}
	}
	return count, nil
}

func (r *fakeAttachmentRepo) GetByID(id string) (*model.Attachment, error) {
	a, ok := r.attachments[id]
	if !ok {
		return nil, appErrors.NewAttachmentNotFound(id)
	}
	copied := *a
	return &copied, nil
}

func (r *fakeAttachmentRepo) Create(a *model.Attachment) error {
	if r.failCreate != nil {
		err := r.failCreate
		r.failCreate = nil
		return err
	}
	r.nextID++
	a.ID = fmt.Sprintf("attachment-%d", r.nextID)
	a.UploadedAt = time.Now()
	stored := *a
	r.attachments[a.ID] = &stored
	return nil
}

func (r *fakeAttachmentRepo) Rename(id, displayName string) (*model.Attachment, error) {
	a, ok := r.attachments[id]
	if !ok {
		return nil, appErrors.NewAttachmentNotFound(id)
	}
	a.DisplayName = displayName
	copied := *a
	return &copied, nil
}

func (r *fakeAttachmentRepo) Delete(id string) error {
	if _, ok := r.attachments[id]; !ok {
		return appErrors.NewAttachmentNotFound(id)
	}
	delete(r.attachments, id)
	return nil
}

// fakeStorage records uploads and deletions in memory.
type fakeStorage struct {
	objects map[string]int64
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string]int64{}}
}

func (s *fakeStorage) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	s.objects[key] = size
	return nil
}

func (s *fakeStorage) Delete(ctx context.Context, key string) error {
	delete(s.objects, key)
	return nil
}

func (s *fakeStorage) SignedURL(ctx context.Context, key string) (string, error) {
	return "https://storage.test/" + key + "?signed=1", nil
}
