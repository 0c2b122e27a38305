package apperror

import (
	"errors"
	"fmt"
)

// APIError represents a non-2xx response from the backend collaborator
type APIError struct {
	StatusCode int    `json:"status_code"`
	Status     string `json:"status"`
	Body       string `json:"body,omitempty"`
	URL        string `json:"url,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API Error [%d %s] for %s: %s", e.StatusCode, e.Status, e.URL, e.Body)
}

// AuthCancelledError is returned when the login popup is closed before the
// handshake completes, or could not be opened at all
type AuthCancelledError struct {
	Reason string
}

func (e *AuthCancelledError) Error() string {
	return e.Reason
}

// SessionError wraps a collaborator failure during a session check or logout.
// The session state has already been reset to unauthenticated by the time
// callers see this error.
type SessionError struct {
	Op  string
	Err error
}

func (e *SessionError) Error() string {
	return "session " + e.Op + " failed: " + e.Err.Error()
}

func (e *SessionError) Unwrap() error {
	return e.Err
}

// NotFoundError reports an entity absent from both the local collection and
// the collaborator
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Resource + " not found"
	}
	return e.Resource + " '" + e.ID + "' not found"
}

// Common errors
var (
	ErrPopupBlocked  = &AuthCancelledError{Reason: "popup blocked, please allow popups for this site"}
	ErrAuthCancelled = &AuthCancelledError{Reason: "authentication cancelled"}
	ErrNotAuthorized = errors.New("not authenticated, sign in before sending invoices")
	ErrEmailTimeout  = errors.New("email send timed out")
)

// NewAPIError creates a collaborator error from a raw HTTP response
func NewAPIError(statusCode int, status, url, body string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Status:     status,
		URL:        url,
		Body:       body,
	}
}

// NewSessionError wraps a session collaborator failure
func NewSessionError(op string, err error) *SessionError {
	return &SessionError{Op: op, Err: err}
}

// NewNotFoundError creates a not found error for the given resource
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// AsAPIError converts an error to *APIError if possible
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNotFound checks if an error is a NotFoundError or a 404 collaborator error
func IsNotFound(err error) bool {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return true
	}
	if apiErr, ok := AsAPIError(err); ok {
		return apiErr.StatusCode == 404
	}
	return false
}

// IsAuthCancelled checks if an error is an AuthCancelledError
func IsAuthCancelled(err error) bool {
	var cancelled *AuthCancelledError
	return errors.As(err, &cancelled)
}
