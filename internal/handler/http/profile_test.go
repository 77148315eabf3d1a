package http

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdonin/minifeed/internal/service"
	"github.com/avdonin/minifeed/internal/store"
	"github.com/avdonin/minifeed/models"
)

// multipartRequest builds a POST request with name/about fields and an
// optional file part.
func multipartRequest(t *testing.T, target, name, about, filename, fileContent string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("name", name))
	require.NoError(t, writer.WriteField("about", about))

	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = io.WriteString(part, fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

// withURLParam injects a chi URL parameter the same way the router does.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestUpdateProfile_TextOnly(t *testing.T) {
	profile := &mockProfileService{
		updateFn: func(_ context.Context, req models.ProfileUpdateRequest) error {
			assert.Equal(t, "alice", req.Username)
			assert.Equal(t, "Alice", req.ProfileName)
			assert.Equal(t, "new bio", req.ProfileInfo)
			assert.Nil(t, req.Image)
			return nil
		},
	}
	h := newTestHandler(t, &service.Services{ProfileService: profile})

	req := asUser(formRequest(t, "/update_profile", url.Values{
		"name":  {"Alice"},
		"about": {"new bio"},
	}), "alice")

	rec := httptest.NewRecorder()
	h.updateProfile(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Your profile has been updated")
}

func TestUpdateProfile_WithImage(t *testing.T) {
	profile := &mockProfileService{
		updateFn: func(_ context.Context, req models.ProfileUpdateRequest) error {
			assert.Equal(t, "alice", req.Username)
			assert.Equal(t, "cat.png", req.ImageFilename)
			require.NotNil(t, req.Image)

			data, err := io.ReadAll(req.Image)
			require.NoError(t, err)
			assert.Equal(t, "image-bytes", string(data))
			return nil
		},
	}
	h := newTestHandler(t, &service.Services{ProfileService: profile})

	req := asUser(multipartRequest(t, "/update_profile", "Alice", "new bio", "cat.png", "image-bytes"), "alice")

	rec := httptest.NewRecorder()
	h.updateProfile(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateProfile_MultipartWithoutFile(t *testing.T) {
	profile := &mockProfileService{
		updateFn: func(_ context.Context, req models.ProfileUpdateRequest) error {
			assert.Nil(t, req.Image)
			return nil
		},
	}
	h := newTestHandler(t, &service.Services{ProfileService: profile})

	req := asUser(multipartRequest(t, "/update_profile", "Alice", "new bio", "", ""), "alice")

	rec := httptest.NewRecorder()
	h.updateProfile(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateProfile_NoUsernameInContext(t *testing.T) {
	h := newTestHandler(t, &service.Services{ProfileService: &mockProfileService{}})

	rec := httptest.NewRecorder()
	h.updateProfile(rec, formRequest(t, "/update_profile", url.Values{}))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateProfile_ServiceError(t *testing.T) {
	profile := &mockProfileService{
		updateFn: func(_ context.Context, _ models.ProfileUpdateRequest) error {
			return store.ErrUserNotFound
		},
	}
	h := newTestHandler(t, &service.Services{ProfileService: profile})

	req := asUser(formRequest(t, "/update_profile", url.Values{"name": {"Alice"}}), "alice")

	rec := httptest.NewRecorder()
	h.updateProfile(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserPage_Self(t *testing.T) {
	profile := &mockProfileService{
		getFn: func(_ context.Context, username string) (models.User, error) {
			assert.Equal(t, "alice", username)
			return models.User{Username: "alice", ProfileName: "Alice"}, nil
		},
	}
	h := newTestHandler(t, &service.Services{ProfileService: profile})

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/user/alice", nil), "username", "alice")
	req = asUser(req, "alice")

	rec := httptest.NewRecorder()
	h.userPage(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":true`)
	assert.Contains(t, rec.Body.String(), `"profile_name":"Alice"`)
}

func TestUserPage_OtherUser(t *testing.T) {
	profile := &mockProfileService{
		getFn: func(_ context.Context, username string) (models.User, error) {
			return models.User{Username: username}, nil
		},
	}
	h := newTestHandler(t, &service.Services{ProfileService: profile})

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/user/alice", nil), "username", "alice")
	req = asUser(req, "bob")

	rec := httptest.NewRecorder()
	h.userPage(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":false`)
}

func TestUserPage_UnknownUser(t *testing.T) {
	profile := &mockProfileService{
		getFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}
	h := newTestHandler(t, &service.Services{ProfileService: profile})

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/user/ghost", nil), "username", "ghost")
	req = asUser(req, "alice")

	rec := httptest.NewRecorder()
	h.userPage(rec, req)

	// unknown users render as an empty profile, not an error page
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"result":"success"`)
	assert.Contains(t, rec.Body.String(), `"username":""`)
}
