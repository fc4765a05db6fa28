package users

import (
	"errors"

	"github.com/bacauscout/scout/go/internal/models"
)

// clientError is a failure caused by the request. Its text is shown to the
// caller as is.
type clientError struct {
	msg string
}

func (e *clientError) Error() string {
	return e.msg
}

var (
	ErrEmailRequired    = &clientError{"Email is required"}
	ErrInvalidRole      = &clientError{"Role must be scout or admin"}
	ErrScoutExists      = &clientError{"A scout with this email already exists"}
	ErrActiveInvite     = &clientError{"An active invite for this email already exists"}
	ErrFieldsRequired   = &clientError{"All fields are required"}
	ErrPasswordTooShort = &clientError{"Password must be at least 8 characters"}
	ErrInvalidInvite    = &clientError{"Invalid or expired invite"}
	ErrEmailMismatch    = &clientError{"Email does not match invite"}
	ErrAccountExists    = &clientError{"An account with this email already exists"}
)

// IsClientError reports whether err was caused by the request itself
func IsClientError(err error) bool {
	var ce *clientError
	return errors.As(err, &ce)
}

const (
	MinPasswordLength = 8
	InviteTokenBytes  = 32
	BcryptCost        = 12
)

// CreateInviteRequest is the admin request to invite a scout
type CreateInviteRequest struct {
	Email string           `json:"email"`
	Role  models.ScoutRole `json:"role"`
}

// CreateInviteResponse carries the stored invite and the link to send
type CreateInviteResponse struct {
	Invite     *models.Invite `json:"invite"`
	InviteLink string         `json:"inviteLink"`
}

// InviteValidation is the public answer to "is this token still good"
type InviteValidation struct {
	Valid bool             `json:"valid"`
	Email string           `json:"email,omitempty"`
	Role  models.ScoutRole `json:"role,omitempty"`
}

// RegisterRequest redeems an invite
type RegisterRequest struct {
	Token    string `json:"token"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
