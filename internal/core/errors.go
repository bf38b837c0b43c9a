package core

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidInput marks request data that failed shape or emptiness checks.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidLocation is returned when a repository URL cannot be parsed.
	ErrInvalidLocation = errors.New("invalid GitHub repository URL")
	// ErrMissingCredential is returned when an upstream credential is not configured.
	ErrMissingCredential = errors.New("credential not configured")
	// ErrUnsupportedEncoding is returned when the remote store sends file
	// content in an encoding other than base64.
	ErrUnsupportedEncoding = errors.New("unexpected file encoding from GitHub")
)

const maxExcerptRunes = 200

// UserError carries a message meant for the API caller as-is while still
// matching its sentinel Kind with errors.Is.
type UserError struct {
	Kind    error
	Message string
}

// NewUserError returns a *UserError for kind with the given message.
func NewUserError(kind error, message string) error {
	return &UserError{Kind: kind, Message: message}
}

func (e *UserError) Error() string {
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Kind
}

// MalformedResponseError is returned when the model output is not a valid report.
type MalformedResponseError struct {
	Reason  string
	Excerpt string
}

// NewMalformedResponseError builds an error carrying a truncated excerpt of raw.
func NewMalformedResponseError(reason, raw string) *MalformedResponseError {
	return &MalformedResponseError{Reason: reason, Excerpt: Truncate(raw, maxExcerptRunes)}
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("failed to parse AI response as JSON (%s): %s", e.Reason, e.Excerpt)
}

// UpstreamError wraps a failed call to a remote API and keeps its HTTP status.
type UpstreamError struct {
	Service    string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s request failed with status %d: %v", e.Service, e.StatusCode, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the upstream status carried by err, or fallback when
// err does not carry one.
func HTTPStatus(err error, fallback int) int {
	var upstream *UpstreamError
	if errors.As(err, &upstream) && upstream.StatusCode >= http.StatusBadRequest {
		return upstream.StatusCode
	}
	return fallback
}

// Truncate shortens s to at most n runes, appending an ellipsis when cut.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
