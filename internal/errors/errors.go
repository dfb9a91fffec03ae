package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

var NotFound = errors.New("Not found")

func IsNotFound(err error) bool {
	if errors.Is(err, NotFound) {
		return true
	}
	var statusErr *ErrorWithStatusCode
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound
}

// NotAuthenticated covers every authoring operation invoked without an actor.
var NotAuthenticated = &ErrorWithStatusCode{Message: "Not authenticated", StatusCode: http.StatusUnauthorized}

// UnknownKindError means a spark's stored kind tag is outside the closed set
// the classifier understands. The item must not be rendered or shared.
type UnknownKindError struct {
	KindTag string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown content kind tag %q", e.KindTag)
}

// UnsupportedForSharing is returned before any remote call when a spark
// cannot be projected into a community attachment.
var UnsupportedForSharing = &ErrorWithStatusCode{Message: "Content is not supported for sharing", StatusCode: http.StatusUnprocessableEntity}

// CompensationError reports a failed rollback: the primary operation failed
// AND the compensating delete failed, leaving inconsistent remote state.
// It is the one condition surfaced as a distinct, more severe warning.
type CompensationError struct {
	Op           string // the saga step that failed first
	Cause        error  // the original failure
	Compensation error  // the rollback failure
}

func (e *CompensationError) Error() string {
	return fmt.Sprintf("%s failed (%v) and compensating delete failed (%v): remote state is inconsistent", e.Op, e.Cause, e.Compensation)
}

func (e *CompensationError) Unwrap() error { return e.Cause }
