// Package errdefs defines the error taxonomy shared by every shellnav package.
package errdefs

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrInvalidArgument indicates a required collaborator or value was missing.
	// It is a caller bug and is reported immediately.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNavigationFailed indicates the frame could not resolve or construct a page.
	ErrNavigationFailed = errors.New("navigation failed")

	// ErrPageNotRegistered indicates a navigation to a page with no registered factory.
	ErrPageNotRegistered = errors.New("page not registered")

	// ErrActivationInProgress indicates Activate was called while another activation
	// had not yet completed.
	ErrActivationInProgress = errors.New("activation already in progress")
)

// ArgumentError reports a missing or malformed argument on a public entry point.
type ArgumentError struct {
	Param string // Name of the offending parameter
	Msg   string // Optional human readable detail (usually localized)
}

func (e *ArgumentError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("shellnav: invalid argument %q: %s", e.Param, e.Msg)
	}
	return fmt.Sprintf("shellnav: invalid argument %q", e.Param)
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NewArgumentError creates an argument error for a nil or missing parameter.
func NewArgumentError(param string) *ArgumentError {
	return &ArgumentError{Param: param}
}

// NewArgumentErrorMsg creates an argument error with a detail message.
func NewArgumentErrorMsg(param, msg string) *ArgumentError {
	return &ArgumentError{Param: param, Msg: msg}
}

// NavigationError represents a failure of the underlying navigation mechanism to
// resolve or construct a page. These indicate a programming error (an unregistered or
// misconfigured page) rather than a recoverable runtime condition.
type NavigationError struct {
	Page string // Page that could not be shown
	Err  error  // Underlying error
}

func (e *NavigationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("shellnav: navigate to %q: %v", e.Page, e.Err)
	}
	return fmt.Sprintf("shellnav: navigate to %q", e.Page)
}

func (e *NavigationError) Unwrap() error {
	return e.Err
}

func (e *NavigationError) Is(target error) bool {
	return target == ErrNavigationFailed
}

// NewNavigationError creates a new navigation error.
func NewNavigationError(page string, err error) *NavigationError {
	return &NavigationError{Page: page, Err: err}
}

// IsInvalidArgument checks if an error is an invalid argument error.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsNavigationFailed checks if an error is a navigation failure.
func IsNavigationFailed(err error) bool {
	var navErr *NavigationError
	return errors.As(err, &navErr)
}
