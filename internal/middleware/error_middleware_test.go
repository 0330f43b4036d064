package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krmu/admissions/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantStatus  string
		wantMessage string
	}{
		{
			name:        "validation error",
			err:         apperrors.NewValidationError("Passwords do not match"),
			wantCode:    http.StatusBadRequest,
			wantStatus:  "fail",
			wantMessage: "Passwords do not match",
		},
		{
			name:        "bare uniqueness sentinel",
			err:         apperrors.ErrStudentEmailExists,
			wantCode:    http.StatusBadRequest,
			wantStatus:  "fail",
			wantMessage: "Email already exists",
		},
		{
			name:        "authentication error",
			err:         apperrors.NewUnauthorizedError("Incorrect email or password"),
			wantCode:    http.StatusUnauthorized,
			wantStatus:  "fail",
			wantMessage: "Incorrect email or password",
		},
		{
			name:        "permission error",
			err:         apperrors.NewForbiddenError("You do not have permission to perform this action"),
			wantCode:    http.StatusForbidden,
			wantStatus:  "fail",
			wantMessage: "You do not have permission to perform this action",
		},
		{
			name:        "not found sentinel",
			err:         apperrors.ErrStudentNotFound,
			wantCode:    http.StatusNotFound,
			wantStatus:  "fail",
			wantMessage: "No student found with that ID",
		},
		{
			name:        "unexpected error hides internals",
			err:         errors.New("pq: connection reset by peer"),
			wantCode:    http.StatusInternalServerError,
			wantStatus:  "error",
			wantMessage: "Something went very wrong!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantCode, w.Code)

			var resp struct {
				Status  string `json:"status"`
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}
