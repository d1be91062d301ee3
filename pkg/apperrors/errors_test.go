package apperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDetailsDoesNotMutatePredefined(t *testing.T) {
	withDetails := ErrFileRequired.WithDetails(map[string]string{"file": "missing"})

	assert.Nil(t, ErrFileRequired.Details)
	assert.NotNil(t, withDetails.Details)
	assert.True(t, errors.Is(withDetails, ErrFileRequired))
}

func TestIsThroughWrapping(t *testing.T) {
	err := fmt.Errorf("login: %w", ErrInvalidCredentials)

	assert.True(t, Is(err, ErrInvalidCredentials))
	assert.False(t, Is(err, ErrUnauthorized))

	appErr, ok := AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode)
}

func TestHandleErrorRendersDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
		wantAuth   bool
	}{
		{"bad extension", ErrInvalidFileType, http.StatusBadRequest, "Only .fit files are allowed", false},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized, "Could not validate credentials", true},
		{"unknown error is hidden", errors.New("disk full"), http.StatusInternalServerError, "Internal server error", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var body struct {
				Detail string `json:"detail"`
				Error  struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantDetail, body.Detail)
			assert.NotEmpty(t, body.Error.Code)
			if tt.wantAuth {
				assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestServerErrorsKeepCause(t *testing.T) {
	cause := errors.New("disk full")

	storageErr := StorageError(cause)
	assert.ErrorIs(t, storageErr, cause)
	assert.Equal(t, CodeStorageError, storageErr.Code)
	assert.Equal(t, http.StatusInternalServerError, storageErr.HTTPCode)
	assert.Contains(t, storageErr.Error(), "disk full")

	dbErr := DatabaseError(cause)
	assert.False(t, Is(dbErr, storageErr))
	assert.True(t, Is(dbErr, DatabaseError(nil)))
}
