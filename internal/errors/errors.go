// internal/errors/errors.go
package appErrors

import (
	"errors"
	"fmt"
)

// ErrRecordNotFound is returned when a lookup has nothing to fall back to.
type ErrRecordNotFound struct {
	Kind string
	ID   string
}

func (e *ErrRecordNotFound) Error() string {
	return fmt.Sprintf("%s with ID %q not found", e.Kind, e.ID)
}

func NewRecordNotFound(kind, id string) error {
	return &ErrRecordNotFound{Kind: kind, ID: id}
}

// CRMError wraps a failed call against the CRM. Op is one of token, query, update.
type CRMError struct {
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *CRMError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("crm %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("crm %s failed with status %d: %s", e.Op, e.StatusCode, e.Body)
}

func (e *CRMError) Unwrap() error { return e.Err }

var (
	ErrNotesRequired       = errors.New("notes cannot be empty")
	ErrActionTakenRequired = errors.New("please describe the action taken to fix the issue")
	ErrInvalidActionTaken  = errors.New("unknown action taken")
	ErrInvalidIdentifier   = errors.New("invalid record identifier")

	ErrUnauthorized          = errors.New("unauthorized")
	ErrEmailRequired         = errors.New("email is required")
	ErrInvalidOTP            = errors.New("otp must be 6 digits")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrPasswordLoginDisabled = errors.New("password login is not enabled")

	ErrInvalidImage      = errors.New("invalid image payload")
	ErrCameraUnavailable = errors.New("unable to access camera, please check permissions")
	ErrWidgetClosed      = errors.New("capture widget is closed")
)

// IsValidation reports whether err is a client-side validation failure.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrNotesRequired, ErrActionTakenRequired, ErrInvalidActionTaken,
		ErrInvalidIdentifier, ErrEmailRequired, ErrInvalidOTP, ErrInvalidImage,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
