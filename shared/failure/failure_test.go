package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"holdhive/shared/failure"
)

func TestKindsAndCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind failure.Kind
		wantCode int
	}{
		{
			name:     "invalid range",
			err:      failure.InvalidRange("start after end"),
			wantKind: failure.KindInvalidRange,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "invalid rate",
			err:      failure.InvalidRate("rate must be positive"),
			wantKind: failure.KindInvalidRate,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "slot unavailable",
			err:      failure.SlotUnavailable("already rented"),
			wantKind: failure.KindSlotUnavailable,
			wantCode: http.StatusConflict,
		},
		{
			name:     "active obligations",
			err:      failure.HasActiveObligations("has future rentals"),
			wantKind: failure.KindHasActiveObligations,
			wantCode: http.StatusConflict,
		},
		{
			name:     "cascade partial failure",
			err:      failure.CascadePartialFailure("payments", errors.New("boom")),
			wantKind: failure.KindCascadePartialFailure,
			wantCode: http.StatusInternalServerError,
		},
		{
			name:     "not found",
			err:      failure.NotFound("storage"),
			wantKind: failure.KindNotFound,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "unauthorized",
			err:      failure.Unauthorized("missing token"),
			wantKind: failure.KindUnauthorized,
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKind, failure.GetKind(tt.err))
			assert.Equal(t, tt.wantCode, failure.GetCode(tt.err))
			assert.True(t, failure.IsKind(tt.err, tt.wantKind))
		})
	}
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("failed to book rental: %w", failure.SlotUnavailable("already rented"))

	assert.Equal(t, failure.KindSlotUnavailable, failure.GetKind(err))
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestCascadePartialFailure_NamesStep(t *testing.T) {
	err := failure.CascadePartialFailure("renter payments", errors.New("connection reset"))

	assert.Contains(t, err.Error(), "renter payments")
	assert.Contains(t, err.Error(), "connection reset")
}

func TestGetCode_UnknownError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("plain error")))
	assert.Equal(t, failure.KindInternal, failure.GetKind(errors.New("plain error")))
}

func TestFromStore(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind failure.Kind
	}{
		{
			name:     "exclusion violation reads as slot taken",
			err:      &pq.Error{Code: "23P01", Message: "conflicting key value"},
			wantKind: failure.KindSlotUnavailable,
		},
		{
			name:     "unique violation",
			err:      &pq.Error{Code: "23505", Message: "duplicate key value"},
			wantKind: failure.KindConstraintViolation,
		},
		{
			name:     "foreign key violation",
			err:      &pq.Error{Code: "23503", Message: "violates foreign key"},
			wantKind: failure.KindConstraintViolation,
		},
		{
			name:     "other server error",
			err:      &pq.Error{Code: "42601", Message: "syntax error"},
			wantKind: failure.KindInternal,
		},
		{
			name:     "connection failure reads as store unavailable",
			err:      errors.New("dial tcp: connection refused"),
			wantKind: failure.KindStoreUnavailable,
		},
		{
			name:     "wrapped pq error still classified",
			err:      fmt.Errorf("insert: %w", &pq.Error{Code: "23P01"}),
			wantKind: failure.KindSlotUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKind, failure.GetKind(failure.FromStore(tt.err)))
		})
	}

	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, failure.FromStore(nil))
	})
}
