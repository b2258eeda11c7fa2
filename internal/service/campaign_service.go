package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	appErrors "github.com/campanhas/campaigns-backend/internal/errors"
	"github.com/campanhas/campaigns-backend/internal/model"
	"github.com/campanhas/campaigns-backend/internal/queue"
	"github.com/campanhas/campaigns-backend/internal/repository"
	"github.com/campanhas/campaigns-backend/internal/slug"
	"github.com/campanhas/campaigns-backend/internal/view"
)

// MinDescriptionLength is enforced at creation.
const MinDescriptionLength = 140

// EventsTopic is the queue topic campaign lifecycle events go out on.
const EventsTopic = "campaign_events"

type CampaignService struct {
	CampaignRepo    repository.CampaignRepositoryInterface
	TagRepo         repository.TagRepositoryInterface
	InstitutionRepo repository.InstitutionRepositoryInterface
	HistoryRepo     repository.HistoryRepositoryInterface
	Users           *UserService
	Queue           queue.Queue
	Log             zerolog.Logger
}

// CampaignForm is the creation payload.
type CampaignForm struct {
	Name         string               `json:"name"`
	Institution  string               `json:"institution"`
	Description  string               `json:"description"`
	AudioURL     *string              `json:"audioUrl"`
	TagsRelated  []string             `json:"tagsRelated"`
	TagsExcluded []string             `json:"tagsExcluded"`
	StartDate    time.Time            `json:"startDate"`
	EndDate      time.Time            `json:"endDate"`
	Status       model.CampaignStatus `json:"status"`
}

// ListCampaigns returns the filtered, searched and sorted campaign set.
func (s *CampaignService) ListCampaigns(filter view.FilterSpec, sortKey view.SortKey, query string) ([]*model.Campaign, error) {
	campaigns, err := s.CampaignRepo.List()
	if err != nil {
		return nil, err
	}
	campaigns = filter.Apply(campaigns)
	campaigns = view.Search(campaigns, query)
	return view.Sort(campaigns, sortKey), nil
}

// Timeline projects the filtered set onto a Gantt window.
func (s *CampaignService) Timeline(filter view.FilterSpec, viewStart, viewEnd time.Time) ([]view.TimelineEntry, error) {
	campaigns, err := s.CampaignRepo.List()
	if err != nil {
		return nil, err
	}
	return view.Timeline(filter.Apply(campaigns), viewStart, viewEnd), nil
}

// CalendarMonth buckets the filtered set into the days of a month.
func (s *CampaignService) CalendarMonth(filter view.FilterSpec, year int, month time.Month) ([]view.DayBucket, error) {
	campaigns, err := s.CampaignRepo.List()
	if err != nil {
		return nil, err
	}
	return view.Month(filter.Apply(campaigns), year, month), nil
}

func (s *CampaignService) GetCampaign(id string) (*model.Campaign, error) {
	return s.CampaignRepo.GetByID(id)
}

func (s *CampaignService) GetBySlug(sl string) (*model.Campaign, error) {
	return s.CampaignRepo.GetBySlug(sl)
}

func validateForm(f *CampaignForm) error {
	if f.Name == "" {
		return appErrors.NewValidation("name", "is required")
	}
	if f.Institution == "" {
		return appErrors.NewValidation("institution", "is required")
	}
	if len([]rune(f.Description)) < MinDescriptionLength {
		return appErrors.NewValidation("description",
			fmt.Sprintf("must be at least %d characters", MinDescriptionLength))
	}
	if f.StartDate.IsZero() || f.EndDate.IsZero() {
		return appErrors.NewValidation("startDate", "start and end dates are required")
	}
	if f.EndDate.Before(f.StartDate) {
		return appErrors.NewValidation("endDate", "must not be before startDate")
	}
	return nil
}

func validStatus(st model.CampaignStatus) bool {
	switch st {
	case model.StatusDraft, model.StatusPublished, model.StatusArchived:
		return true
	}
	return false
}

// CreateCampaign validates the form, resolves the institution and tags, and
// inserts the campaign with a fresh unique slug.
func (s *CampaignService) CreateCampaign(form *CampaignForm) (*model.Campaign, error) {
	if err := validateForm(form); err != nil {
		return nil, err
	}
	if form.Status != "" && !validStatus(form.Status) {
		return nil, appErrors.NewValidation("status", "must be draft, published or archived")
	}

	institution, err := s.InstitutionRepo.GetByName(form.Institution)
	if err != nil {
		return nil, err
	}
	if institution == nil {
		return nil, appErrors.NewInstitutionNotFound(form.Institution)
	}

	actor, err := s.Users.SystemUser()
	if err != nil {
		return nil, err
	}

	taken, err := s.CampaignRepo.ListSlugs()
	if err != nil {
		return nil, err
	}

	c := &model.Campaign{
		Name:          form.Name,
		Slug:          slug.MakeUnique(form.Name, taken),
		Institution:   institution.Name,
		InstitutionID: institution.ID,
		Description:   form.Description,
		AudioURL:      form.AudioURL,
		StartDate:     form.StartDate,
		EndDate:       form.EndDate,
		Status:        form.Status,
		CreatedBy:     actor.ID,
		CreatedByName: actor.Name,
	}
	if c.Status == "" {
		c.Status = model.StatusDraft
	}

	if err := s.CampaignRepo.Create(c); err != nil {
		return nil, err
	}

	if err := s.linkTags(c, form.TagsRelated, form.TagsExcluded); err != nil {
		return nil, err
	}

	s.recordEdit(c.ID, actor.ID, model.ActionCreated, nil, nil, nil)
	s.publish(queue.EventCampaignCreated, c.ID, actor.ID, c.Name)
	return s.CampaignRepo.GetByID(c.ID)
}

// UpdateCampaign applies an explicit patch: only the fields listed in
// CampaignPatch can change, and each changed field gets its own audit row.
func (s *CampaignService) UpdateCampaign(id string, patch *model.CampaignPatch) (*model.Campaign, error) {
	existing, err := s.CampaignRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	actor, err := s.Users.SystemUser()
	if err != nil {
		return nil, err
	}

	var changes []fieldChange
	updated := *existing

	if patch.Name != nil && *patch.Name != existing.Name {
		if *patch.Name == "" {
			return nil, appErrors.NewValidation("name", "must not be empty")
		}
		taken, err := s.CampaignRepo.ListSlugs()
		if err != nil {
			return nil, err
		}
		delete(taken, existing.Slug)
		updated.Name = *patch.Name
		updated.Slug = slug.MakeUnique(*patch.Name, taken)
		changes = append(changes, fieldChange{"name", existing.Name, *patch.Name})
	}

	if patch.Institution != nil && *patch.Institution != existing.Institution {
		institution, err := s.InstitutionRepo.GetByName(*patch.Institution)
		if err != nil {
			return nil, err
		}
		if institution == nil {
			return nil, appErrors.NewInstitutionNotFound(*patch.Institution)
		}
		updated.Institution = institution.Name
		updated.InstitutionID = institution.ID
		changes = append(changes, fieldChange{"institution", existing.Institution, institution.Name})
	}

	if patch.Description != nil && *patch.Description != existing.Description {
		updated.Description = *patch.Description
		changes = append(changes, fieldChange{"description", existing.Description, *patch.Description})
	}

	if patch.AudioURL != nil {
		updated.AudioURL = patch.AudioURL
	}

	if patch.StartDate != nil && !patch.StartDate.Equal(existing.StartDate) {
		updated.StartDate = *patch.StartDate
		changes = append(changes, fieldChange{"startDate",
			existing.StartDate.Format("2006-01-02"), patch.StartDate.Format("2006-01-02")})
	}
	if patch.EndDate != nil && !patch.EndDate.Equal(existing.EndDate) {
		updated.EndDate = *patch.EndDate
		changes = append(changes, fieldChange{"endDate",
			existing.EndDate.Format("2006-01-02"), patch.EndDate.Format("2006-01-02")})
	}
	if updated.EndDate.Before(updated.StartDate) {
		return nil, appErrors.NewValidation("endDate", "must not be before startDate")
	}

	if patch.Status != nil && *patch.Status != existing.Status {
		if !validStatus(*patch.Status) {
			return nil, appErrors.NewValidation("status", "must be draft, published or archived")
		}
		updated.Status = *patch.Status
		changes = append(changes, fieldChange{"status", string(existing.Status), string(*patch.Status)})
	}

	if err := s.CampaignRepo.Update(&updated); err != nil {
		return nil, err
	}

	if patch.TagsRelated != nil || patch.TagsExcluded != nil {
		related := existing.TagsRelated
		excluded := existing.TagsExcluded
		if patch.TagsRelated != nil {
			related = *patch.TagsRelated
		}
		if patch.TagsExcluded != nil {
			excluded = *patch.TagsExcluded
		}
		if err := s.TagRepo.UnlinkAll(id); err != nil {
			return nil, err
		}
		if err := s.linkTags(&updated, related, excluded); err != nil {
			return nil, err
		}
		s.recordEdit(id, actor.ID, model.ActionTagsUpdated, nil, nil, nil)
	}

	for _, ch := range changes {
		field, oldV, newV := ch.field, ch.oldValue, ch.newValue
		s.recordEdit(id, actor.ID, model.ActionEdited, &field, &oldV, &newV)
	}
	if len(changes) > 0 {
		s.publish(queue.EventCampaignUpdated, id, actor.ID, updated.Name)
	}

	return s.CampaignRepo.GetByID(id)
}

// UpdateStatus toggles a campaign between draft/published/archived.
func (s *CampaignService) UpdateStatus(id string, status model.CampaignStatus) (*model.Campaign, error) {
	if !validStatus(status) {
		return nil, appErrors.NewValidation("status", "must be draft, published or archived")
	}

	existing, err := s.CampaignRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	actor, err := s.Users.SystemUser()
	if err != nil {
		return nil, err
	}

	if err := s.CampaignRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}

	field := "status"
	oldV, newV := string(existing.Status), string(status)
	s.recordEdit(id, actor.ID, model.ActionStatusChanged, &field, &oldV, &newV)
	s.publish(queue.EventStatusChanged, id, actor.ID, newV)

	return s.CampaignRepo.GetByID(id)
}

// Duplicate copies a campaign under the name "X (Cópia)" with a fresh unique
// slug, status reset to draft, and the source's tag links carried over.
func (s *CampaignService) Duplicate(id string) (*model.Campaign, error) {
	source, err := s.CampaignRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	actor, err := s.Users.SystemUser()
	if err != nil {
		return nil, err
	}

	taken, err := s.CampaignRepo.ListSlugs()
	if err != nil {
		return nil, err
	}

	copyName := source.Name + " (Cópia)"
	dup := &model.Campaign{
		Name:          copyName,
		Slug:          slug.MakeUnique(copyName, taken),
		Institution:   source.Institution,
		InstitutionID: source.InstitutionID,
		Description:   source.Description,
		AudioURL:      source.AudioURL,
		StartDate:     source.StartDate,
		EndDate:       source.EndDate,
		Status:        model.StatusDraft,
		CreatedBy:     actor.ID,
		CreatedByName: actor.Name,
	}

	if err := s.CampaignRepo.Create(dup); err != nil {
		return nil, err
	}
	if err := s.TagRepo.CopyLinks(source.ID, dup.ID); err != nil {
		return nil, err
	}

	s.recordEdit(dup.ID, actor.ID, model.ActionCreated, nil, nil, nil)
	s.publish(queue.EventCampaignDuplicated, dup.ID, actor.ID, source.ID)

	return s.CampaignRepo.GetByID(dup.ID)
}

// DeleteCampaign removes the campaign row. Attachments, comments and history
// are deliberately not cascaded.
func (s *CampaignService) DeleteCampaign(id string) error {
	actor, err := s.Users.SystemUser()
	if err != nil {
		return err
	}
	if err := s.CampaignRepo.Delete(id); err != nil {
		return err
	}
	s.publish(queue.EventCampaignDeleted, id, actor.ID, "")
	return nil
}

type fieldChange struct {
	field    string
	oldValue string
	newValue string
}

// linkTags resolves each identifier by id or name, creating unknown tags, and
// links them to the campaign.
func (s *CampaignService) linkTags(c *model.Campaign, related, excluded []string) error {
	if err := s.linkTagSet(c.ID, related, "related", model.TagPositive); err != nil {
		return err
	}
	return s.linkTagSet(c.ID, excluded, "excluded", model.TagNegative)
}

func (s *CampaignService) linkTagSet(campaignID string, identifiers []string, relation string, tagType model.TagType) error {
	for _, identifier := range identifiers {
		tag, err := s.resolveTag(identifier, tagType)
		if err != nil {
			return err
		}
		if err := s.TagRepo.Link(campaignID, tag.ID, relation); err != nil {
			return err
		}
	}
	return nil
}

// resolveTag accepts either a tag id or a tag name. Unknown names become new
// tags of the given type.
func (s *CampaignService) resolveTag(identifier string, tagType model.TagType) (*model.Tag, error) {
	if _, err := uuid.Parse(identifier); err == nil {
		tag, err := s.TagRepo.GetByID(identifier)
		if err != nil {
			return nil, err
		}
		if tag != nil {
			return tag, nil
		}
	}

	tag, err := s.TagRepo.GetByName(identifier)
	if err != nil {
		return nil, err
	}
	if tag != nil {
		return tag, nil
	}

	tag = &model.Tag{Name: identifier, Slug: slug.Make(identifier), Type: tagType}
	if err := s.TagRepo.Create(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// recordEdit appends an audit row. Audit failures are logged but never fail
// the request that caused them.
func (s *CampaignService) recordEdit(campaignID, userID string, action model.EditAction, field, oldValue, newValue *string) {
	entry := &model.EditHistoryEntry{
		CampaignID:   campaignID,
		UserID:       userID,
		Action:       action,
		FieldChanged: field,
		OldValue:     oldValue,
		NewValue:     newValue,
	}
	if err := s.HistoryRepo.Create(entry); err != nil {
		s.Log.Error().Err(err).Str("campaign_id", campaignID).Msg("Failed to record edit history")
	}
}

func (s *CampaignService) publish(kind, campaignID, actor, detail string) {
	if s.Queue == nil {
		return
	}
	err := s.Queue.Publish(EventsTopic, queue.Event{
		Kind:       kind,
		CampaignID: campaignID,
		Actor:      actor,
		Detail:     detail,
	})
	if err != nil {
		s.Log.Warn().Err(err).Str("kind", kind).Msg("Failed to publish campaign event")
	}
}
