package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/campanhas/campaigns-backend/internal/errors"
	"github.com/campanhas/campaigns-backend/internal/model"
	"github.com/campanhas/campaigns-backend/internal/service"
)

type commentFixture struct {
	svc        *service.CommentService
	campaignID string
}

func newCommentFixture(t *testing.T) *commentFixture {
	t.Helper()

	campaignRepo := newFakeCampaignRepo()
	users := &service.UserService{UserRepo: newFakeUserRepo()}
	actor, err := users.SystemUser()
	require.NoError(t, err)

	campaign := &model.Campaign{
		Name:      "Campanha de Teste",
		Slug:      "campanha-de-teste",
		CreatedBy: actor.ID,
	}
	require.NoError(t, campaignRepo.Create(campaign))

	return &commentFixture{
		svc: &service.CommentService{
			CommentRepo:  newFakeCommentRepo(),
			CampaignRepo: campaignRepo,
			Users:        users,
		},
		campaignID: campaign.ID,
	}
}

func TestCreateComment(t *testing.T) {
	f := newCommentFixture(t)

	created, err := f.svc.Create(f.campaignID, &service.CommentForm{
		Content:  "Primeira versão aprovada, podemos publicar?",
		Mentions: []string{"maria"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, model.SystemUserID, created.AuthorID)
	assert.Equal(t, []string{"maria"}, created.Mentions)
	assert.Equal(t, []string{}, created.Attachments, "nil slices normalize to empty")
	assert.Nil(t, created.ParentID)
	assert.False(t, created.IsImportant)
}

func TestCreateCommentValidation(t *testing.T) {
	f := newCommentFixture(t)

	_, err := f.svc.Create(f.campaignID, &service.CommentForm{Content: ""})
	var validation *appErrors.ErrValidation
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "content", validation.Field)

	_, err = f.svc.Create("missing-campaign", &service.CommentForm{Content: "olá"})
	var notFound *appErrors.ErrCampaignNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestListThreadNestsReplies(t *testing.T) {
	f := newCommentFixture(t)

	root, err := f.svc.Create(f.campaignID, &service.CommentForm{Content: "raiz"})
	require.NoError(t, err)
	reply, err := f.svc.Create(f.campaignID, &service.CommentForm{
		Content:  "resposta",
		ParentID: &root.ID,
	})
	require.NoError(t, err)

	thread, err := f.svc.ListThread(f.campaignID)
	require.NoError(t, err)
	require.Len(t, thread, 1)
	assert.Equal(t, root.ID, thread[0].ID)
	require.Len(t, thread[0].Replies, 1)
	assert.Equal(t, reply.ID, thread[0].Replies[0].ID)
}

func TestDeletedParentPromotesReplies(t *testing.T) {
	f := newCommentFixture(t)

	root, err := f.svc.Create(f.campaignID, &service.CommentForm{Content: "raiz"})
	require.NoError(t, err)
	reply, err := f.svc.Create(f.campaignID, &service.CommentForm{
		Content:  "resposta órfã",
		ParentID: &root.ID,
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(root.ID))

	thread, err := f.svc.ListThread(f.campaignID)
	require.NoError(t, err)
	require.Len(t, thread, 1, "reply to a deleted comment surfaces as a root")
	assert.Equal(t, reply.ID, thread[0].ID)
}

func TestUpdateCommentMarksEdited(t *testing.T) {
	f := newCommentFixture(t)

	created, err := f.svc.Create(f.campaignID, &service.CommentForm{Content: "rascunho"})
	require.NoError(t, err)
	require.Nil(t, created.EditedAt)

	updated, err := f.svc.Update(created.ID, "texto final")
	require.NoError(t, err)
	assert.Equal(t, "texto final", updated.Content)
	assert.NotNil(t, updated.EditedAt)

	_, err = f.svc.Update(created.ID, "")
	var validation *appErrors.ErrValidation
	assert.ErrorAs(t, err, &validation)
}

func TestToggleImportant(t *testing.T) {
	f := newCommentFixture(t)

	created, err := f.svc.Create(f.campaignID, &service.CommentForm{Content: "destaque"})
	require.NoError(t, err)

	on, err := f.svc.ToggleImportant(created.ID)
	require.NoError(t, err)
	assert.True(t, on.IsImportant)

	off, err := f.svc.ToggleImportant(created.ID)
	require.NoError(t, err)
	assert.False(t, off.IsImportant)
}
