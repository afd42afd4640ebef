package failure

import (
	"errors"
	"net/http"

	"github.com/lib/pq"
)

// Kind classifies a failure so callers can branch on the cause without
// parsing messages. The HTTP code carried alongside is derived from the
// kind and never encodes extra information.
type Kind string

const (
	KindInvalidRange          Kind = "invalid_range"
	KindInvalidRate           Kind = "invalid_rate"
	KindSlotUnavailable       Kind = "slot_unavailable"
	KindHasActiveObligations  Kind = "has_active_obligations"
	KindCascadePartialFailure Kind = "cascade_partial_failure"
	KindConstraintViolation   Kind = "constraint_violation"
	KindStoreUnavailable      Kind = "store_unavailable"
	KindCommitFailed          Kind = "commit_failed"
	KindNotFound              Kind = "not_found"
	KindBadRequest            Kind = "bad_request"
	KindUnauthorized          Kind = "unauthorized"
	KindForbidden             Kind = "forbidden"
	KindInternal              Kind = "internal"
)

// Failure is a wrapper for error messages with a kind and a standard HTTP
// response code.
type Failure struct {
	Kind    Kind   `json:"kind"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var InvalidPageParam = &Failure{Kind: KindBadRequest, Code: http.StatusBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Kind: KindBadRequest, Code: http.StatusBadRequest, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Kind: KindForbidden, Code: http.StatusForbidden, Message: "You don't have the required permissions"}
var ResourceRestrictedError = &Failure{Kind: KindForbidden, Code: http.StatusForbidden, Message: "You don't have permission to access this resource"}

func (e *Failure) Error() string {
	return e.Message
}

// InvalidRange returns a new Failure for a date range whose start lies after
// its end, or a non-positive day span. Always a caller bug; never retried.
func InvalidRange(msg string) error {
	return &Failure{
		Kind:    KindInvalidRange,
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// InvalidRate returns a new Failure for a non-positive monthly rate.
func InvalidRate(msg string) error {
	return &Failure{
		Kind:    KindInvalidRate,
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// SlotUnavailable returns a new Failure for a rental request that overlaps an
// existing reservation.
func SlotUnavailable(msg string) error {
	return &Failure{
		Kind:    KindSlotUnavailable,
		Code:    http.StatusConflict,
		Message: msg,
	}
}

// HasActiveObligations returns a new Failure for a destructive operation
// blocked by a current or future rental.
func HasActiveObligations(msg string) error {
	return &Failure{
		Kind:    KindHasActiveObligations,
		Code:    http.StatusConflict,
		Message: msg,
	}
}

// CascadePartialFailure returns a new Failure for a cascade that stopped
// mid-sequence; the message names the step so the caller knows some
// dependents may already be gone.
func CascadePartialFailure(step string, err error) error {
	return &Failure{
		Kind:    KindCascadePartialFailure,
		Code:    http.StatusInternalServerError,
		Message: "cascade failed at step " + step + ": " + err.Error(),
	}
}

// ConstraintViolation returns a new Failure for an integrity-constraint
// rejection from the store.
func ConstraintViolation(msg string) error {
	return &Failure{
		Kind:    KindConstraintViolation,
		Code:    http.StatusConflict,
		Message: msg,
	}
}

// StoreUnavailable returns a new Failure for a store connection failure,
// distinct from the store rejecting the operation.
func StoreUnavailable(err error) error {
	return &Failure{
		Kind:    KindStoreUnavailable,
		Code:    http.StatusServiceUnavailable,
		Message: err.Error(),
	}
}

// CommitFailed returns a new Failure for a transaction whose commit was
// rejected after its statements succeeded.
func CommitFailed(err error) error {
	return &Failure{
		Kind:    KindCommitFailed,
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Kind:    KindNotFound,
		Code:    http.StatusNotFound,
		Message: entityName + " not found",
	}
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Kind:    KindBadRequest,
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Kind:    KindBadRequest,
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Kind:    KindUnauthorized,
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Kind:    KindForbidden,
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Kind:    KindInternal,
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

const (
	pqCodeUniqueViolation    = "23505"
	pqCodeFkViolation        = "23503"
	pqCodeExclusionViolation = "23P01"
)

// FromStore translates a lib/pq error into the matching Failure kind. The
// rentals exclusion constraint surfaces as SlotUnavailable so the booking
// path reports the race loser the same way as the in-transaction check.
// Anything that is not a server-side rejection is treated as the store
// being unreachable.
func FromStore(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pqCodeExclusionViolation:
			return SlotUnavailable("storage is already rented for the given timeline")
		case pqCodeUniqueViolation, pqCodeFkViolation:
			return ConstraintViolation(pqErr.Message)
		}

		return InternalError(err)
	}

	return StoreUnavailable(err)
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the failure kind of an error interface.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindInternal
}

// IsKind reports whether err carries the given kind anywhere in its chain.
func IsKind(err error, kind Kind) bool {
	return GetKind(err) == kind
}
