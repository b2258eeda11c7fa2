package appErrors

import "fmt"

// Machine-readable error codes returned in the errorCode field of error bodies.
const (
	CodeValidation           = "VALIDATION_ERROR"
	CodeInstitutionNotFound  = "INSTITUTION_NOT_FOUND"
	CodeSystemUserNotCreated = "SYSTEM_USER_NOT_CREATED"
)

// ErrCampaignNotFound is a sentinel error
type ErrCampaignNotFound struct {
	Ref string // id or slug
}

func (e *ErrCampaignNotFound) Error() string {
	return fmt.Sprintf("campaign %q not found", e.Ref)
}

// Helper constructor
func NewCampaignNotFound(ref string) error {
	return &ErrCampaignNotFound{Ref: ref}
}

type ErrCommentNotFound struct {
	CommentID string
}

func (e *ErrCommentNotFound) Error() string {
	return fmt.Sprintf("comment %q not found", e.CommentID)
}

func NewCommentNotFound(id string) error {
	return &ErrCommentNotFound{CommentID: id}
}

type ErrAttachmentNotFound struct {
	AttachmentID string
}

func (e *ErrAttachmentNotFound) Error() string {
	return fmt.Sprintf("attachment %q not found", e.AttachmentID)
}

func NewAttachmentNotFound(id string) error {
	return &ErrAttachmentNotFound{AttachmentID: id}
}

// ErrInstitutionNotFound is returned when a campaign references an institution
// name that is not in the lookup table.
type ErrInstitutionNotFound struct {
	Name string
}

func (e *ErrInstitutionNotFound) Error() string {
	return fmt.Sprintf("institution %q not found", e.Name)
}

func (e *ErrInstitutionNotFound) Code() string { return CodeInstitutionNotFound }

func (e *ErrInstitutionNotFound) Hint() string {
	return "run `go run ./cmd/seeder` to create institutions, positions and the system user"
}

func NewInstitutionNotFound(name string) error {
	return &ErrInstitutionNotFound{Name: name}
}

// ErrSystemUserMissing means the hard-coded actor row is absent and could not
// be created, so no write can be attributed.
type ErrSystemUserMissing struct {
	Cause error
}

func (e *ErrSystemUserMissing) Error() string {
	return fmt.Sprintf("system user missing and could not be created: %v", e.Cause)
}

func (e *ErrSystemUserMissing) Code() string { return CodeSystemUserNotCreated }

func (e *ErrSystemUserMissing) Hint() string {
	return "run `go run ./cmd/seeder` against this database before starting the server"
}

func (e *ErrSystemUserMissing) Unwrap() error { return e.Cause }

func NewSystemUserMissing(cause error) error {
	return &ErrSystemUserMissing{Cause: cause}
}

// ErrValidation covers request payloads rejected before touching the database.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ErrValidation) Code() string { return CodeValidation }

func NewValidation(field, message string) error {
	return &ErrValidation{Field: field, Message: message}
}
