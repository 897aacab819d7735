package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/staffhub-hr/workforce-backend-go/internal/domain/attendance"
	"github.com/staffhub-hr/workforce-backend-go/internal/domain/auth"
	"github.com/staffhub-hr/workforce-backend-go/internal/domain/leave"
	"github.com/staffhub-hr/workforce-backend-go/internal/domain/user"
	"github.com/staffhub-hr/workforce-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleErrorStatusMapping(t *testing.T) {
	tests := []struct {
		err        error
		statusCode int
	}{
		{attendance.ErrAlreadySignedIn, http.StatusBadRequest},
		{attendance.ErrAlreadySignedOut, http.StatusBadRequest},
		{attendance.ErrNoSignIn, http.StatusBadRequest},
		{leave.ErrInvalidRange, http.StatusBadRequest},
		{leave.ErrOverlappingLeave, http.StatusBadRequest},
		{leave.ErrInsufficientBalance, http.StatusBadRequest},
		{leave.ErrInvalidDecision, http.StatusBadRequest},
		{auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{auth.ErrInvalidToken, http.StatusUnauthorized},
		{user.ErrAdminPrivilegeRequired, http.StatusForbidden},
		{user.ErrUserNotFound, http.StatusNotFound},
		{attendance.ErrRecordNotFound, http.StatusNotFound},
		{leave.ErrRequestNotFound, http.StatusNotFound},
		{user.ErrEmailExists, http.StatusConflict},
		{leave.ErrAlreadyDecided, http.StatusConflict},
		{errors.New("database exploded"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)
			assert.Equal(t, tt.statusCode, rec.Code)

			var body Response
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
		})
	}
}

func TestHandleErrorWrappedSentinel(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, fmt.Errorf("apply failed: %w", leave.ErrOverlappingLeave))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleErrorValidation(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"},
	}

	rec := httptest.NewRecorder()
	HandleError(rec, errs)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "start_date must be in YYYY-MM-DD format", body.Error.Details["start_date"])
}
