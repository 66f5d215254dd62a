package httpapi

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voclara/voclara/internal/common"
	"github.com/voclara/voclara/internal/server/models"
	"github.com/voclara/voclara/internal/server/services"
)

func TestHandleUpdateMe(t *testing.T) {
	ts := newTestServer()
	user := activeUser()
	ts.authAs(user)

	var gotID string
	var gotUpd *services.ProfileUpdate
	ts.users.updateProfileFn = func(ctx context.Context, userID string, upd *services.ProfileUpdate) (*models.User, error) {
		gotID = userID
		gotUpd = upd
		u := *user
		u.Name = *upd.Name
		return &u, nil
	}

	w := doJSON(t, ts.router, http.MethodPatch, "/api/v1/users/me", map[string]any{
		"name":             "Bob",
		"favorite_phrases": []string{"hello", "more please"},
	}, map[string]string{common.AuthorizationHeaderName: bearerFor(t, user.Email)})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, user.ID, gotID)
	require.NotNil(t, gotUpd.Name)
	assert.Equal(t, "Bob", *gotUpd.Name)
	require.NotNil(t, gotUpd.FavoritePhrases)
	assert.Equal(t, []string{"hello", "more please"}, *gotUpd.FavoritePhrases)
	assert.Nil(t, gotUpd.Age, "omitted fields must stay nil")
	assert.Contains(t, w.Body.String(), `"name":"Bob"`)
}

func TestHandleUpdateMe_BadBody(t *testing.T) {
	ts := newTestServer()
	user := activeUser()
	ts.authAs(user)

	w := doJSON(t, ts.router, http.MethodPatch, "/api/v1/users/me",
		map[string]any{"age": "seven"},
		map[string]string{common.AuthorizationHeaderName: bearerFor(t, user.Email)})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandleChangePassword(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantDetail string
	}{
		{"success", nil, http.StatusNoContent, ""},
		{"wrong current password", common.ErrorUnauthorized, http.StatusBadRequest, "Incorrect current password."},
		{"rejected new password", common.ErrorValidation, http.StatusUnprocessableEntity, "Invalid new password."},
		{"store failure", errors.New("connection refused"), http.StatusInternalServerError, "Could not change password."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer()
			user := activeUser()
			ts.authAs(user)

			var gotCurrent, gotNext string
			ts.users.changePasswordFn = func(ctx context.Context, userID, current, next string) error {
				gotCurrent, gotNext = current, next
				return tt.err
			}

			w := doJSON(t, ts.router, http.MethodPut, "/api/v1/users/me/password",
				map[string]any{"current_password": "old-pass", "new_password": "new-pass"},
				map[string]string{common.AuthorizationHeaderName: bearerFor(t, user.Email)})

			require.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, "old-pass", gotCurrent)
			assert.Equal(t, "new-pass", gotNext)
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, detailOf(t, w))
			}
		})
	}
}

func TestHandleChangePassword_ShortNewPassword(t *testing.T) {
	ts := newTestServer()
	user := activeUser()
	ts.authAs(user)

	w := doJSON(t, ts.router, http.MethodPut, "/api/v1/users/me/password",
		map[string]any{"current_password": "old-pass", "new_password": "abc"},
		map[string]string{common.AuthorizationHeaderName: bearerFor(t, user.Email)})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandleAvatarUploadURL(t *testing.T) {
	ts := newTestServer()
	user := activeUser()
	ts.authAs(user)

	ts.avatars.uploadFn = func(ctx context.Context, userID string) (string, string, error) {
		assert.Equal(t, user.ID, userID)
		return "avatars/u-1/obj", "https://s3.example/put", nil
	}

	w := doJSON(t, ts.router, http.MethodPost, "/api/v1/users/me/avatar/upload-url", nil,
		map[string]string{common.AuthorizationHeaderName: bearerFor(t, user.Email)})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"avatar_uri":"avatars/u-1/obj"`)
	assert.Contains(t, w.Body.String(), `"upload_url":"https://s3.example/put"`)
}

func TestHandleAvatarUploadURL_PresignError(t *testing.T) {
	ts := newTestServer()
	user := activeUser()
	ts.authAs(user)

	ts.avatars.uploadFn = func(ctx context.Context, userID string) (string, string, error) {
		return "", "", errors.New("s3 unavailable")
	}

	w := doJSON(t, ts.router, http.MethodPost, "/api/v1/users/me/avatar/upload-url", nil,
		map[string]string{common.AuthorizationHeaderName: bearerFor(t, user.Email)})

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Could not create upload URL.", detailOf(t, w))
}

func TestHandleAvatarDownloadURL(t *testing.T) {
	t.Run("no avatar set", func(t *testing.T) {
		ts := newTestServer()
		user := activeUser()
		ts.authAs(user)

		w := doJSON(t, ts.router, http.MethodGet, "/api/v1/users/me/avatar/download-url", nil,
			map[string]string{common.AuthorizationHeaderName: bearerFor(t, user.Email)})

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "No avatar set.", detailOf(t, w))
	})

	t.Run("presigns stored key", func(t *testing.T) {
		ts := newTestServer()
		user := activeUser()
		key := "avatars/u-1/obj"
		user.AvatarURI = &key
		ts.authAs(user)

		ts.avatars.downloadFn = func(ctx context.Context, gotKey string) (string, error) {
			assert.Equal(t, key, gotKey)
			return "https://s3.example/get", nil
		}

		w := doJSON(t, ts.router, http.MethodGet, "/api/v1/users/me/avatar/download-url", nil,
			map[string]string{common.AuthorizationHeaderName: bearerFor(t, user.Email)})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"download_url":"https://s3.example/get"`)
	})
}
