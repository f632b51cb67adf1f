package errors

import (
	"errors"
	"fmt"
)

/*
ConfigurationError signals that a required external dependency is not
configured. It is raised at call time, not at startup, so the service can
run with the affected capability disabled.
*/
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string {
	return e.Msg
}

/*
NavigationError signals that a required element never appeared on the page
within its wait window.
*/
type NavigationError struct {
	Selector string
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("element '%s' not found on page", e.Selector)
}

/*
ValidationError signals a missing required field on a dispatched action.
It is detected before any automation work begins.
*/
type ValidationError struct {
	Field  string
	Action string
}

func (e *ValidationError) Error() string {
	if e.Action == "" {
		return fmt.Sprintf("'%s' is required", e.Field)
	}
	return fmt.Sprintf("'%s' is required for '%s' action", e.Field, e.Action)
}

/*
UnknownActionError signals an action tag outside the recognized set.
*/
type UnknownActionError struct {
	Action string
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("unknown action: %s", e.Action)
}

/*
InternalError wraps any other failure (browser launch, model invocation)
so the HTTP layer can report it as a generic server error while keeping the
underlying message.
*/
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string {
	return e.Err.Error()
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

/*
Internal wraps err as an InternalError with additional context. A nil err
returns nil.
*/
func Internal(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &InternalError{Err: fmt.Errorf("%s: %w", msg, err)}
}

/*
HTTPStatus maps an error from the taxonomy above to an HTTP status code.
Validation failures and unknown actions are client errors; everything else
is a server error.
*/
func HTTPStatus(err error) int {
	var (
		validationErr *ValidationError
		unknownErr    *UnknownActionError
	)

	if errors.As(err, &validationErr) || errors.As(err, &unknownErr) {
		return 400
	}

	return 500
}
