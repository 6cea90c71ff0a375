package response

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Marshmallowc/hrms-backend/internal/domain/attendance"
	"github.com/Marshmallowc/hrms-backend/internal/domain/auth"
	"github.com/Marshmallowc/hrms-backend/internal/domain/leave"
	"github.com/Marshmallowc/hrms-backend/internal/domain/user"
	"github.com/Marshmallowc/hrms-backend/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
)

func TestHandleError_StatusCodes(t *testing.T) {
	tests := []struct {
		err      error
		wantCode int
		wantBody string
	}{
		{attendance.ErrAlreadyClockedIn, http.StatusBadRequest, `{"error":"Already clocked in today"}`},
		{auth.ErrInvalidCredentials, http.StatusUnauthorized, `{"error":"Invalid credentials"}`},
		{user.ErrInsufficientPermissions, http.StatusForbidden, `{"error":"Insufficient permissions"}`},
		{leave.ErrLeaveRequestNotFound, http.StatusNotFound, `{"error":"Leave request not found"}`},
		{user.ErrUserExists, http.StatusConflict, `{"error":"User with this email or username already exists"}`},
		{leave.ErrLeaveAlreadyProcessed, http.StatusConflict, `{"error":"Leave request has already been processed"}`},
		{errors.New("pg connection reset"), http.StatusInternalServerError, `{"error":"Internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()

			HandleError(rec, req, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestHandleError_WrappedError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	HandleError(rec, req, fmt.Errorf("failed to update leave: %w", leave.ErrLeaveAlreadyProcessed))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandleError_ValidationErrors(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	errs := validator.ValidationErrors{
		{Field: "email", Message: "email is required"},
	}
	HandleError(rec, req, errs)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "email is required")
}
