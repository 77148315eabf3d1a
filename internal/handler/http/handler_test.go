package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/avdonin/minifeed/internal/config"
	"github.com/avdonin/minifeed/internal/logger"
	"github.com/avdonin/minifeed/internal/service"
	"github.com/avdonin/minifeed/internal/utils"
	"github.com/avdonin/minifeed/models"
)

const testCookieName = "mytoken"

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	checkUsernameFn func(ctx context.Context, username string) (bool, error)
	registerFn      func(ctx context.Context, username, password string) (models.User, error)
	loginFn         func(ctx context.Context, username, password string) (models.User, error)
	createTokenFn   func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn    func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) CheckUsername(ctx context.Context, username string) (bool, error) {
	return m.checkUsernameFn(ctx, username)
}

func (m *mockAuthService) Register(ctx context.Context, username, password string) (models.User, error) {
	return m.registerFn(ctx, username, password)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	return m.loginFn(ctx, username, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockProfileService implements service.ProfileService.
type mockProfileService struct {
	getFn    func(ctx context.Context, username string) (models.User, error)
	updateFn func(ctx context.Context, req models.ProfileUpdateRequest) error
}

func (m *mockProfileService) Get(ctx context.Context, username string) (models.User, error) {
	return m.getFn(ctx, username)
}

func (m *mockProfileService) Update(ctx context.Context, req models.ProfileUpdateRequest) error {
	return m.updateFn(ctx, req)
}

// mockPostService implements service.PostService.
type mockPostService struct {
	createFn func(ctx context.Context, author, comment, date string) (models.Post, error)
	listFn   func(ctx context.Context, viewer, filterUsername string) ([]models.PostView, error)
}

func (m *mockPostService) Create(ctx context.Context, author, comment, date string) (models.Post, error) {
	return m.createFn(ctx, author, comment, date)
}

func (m *mockPostService) List(ctx context.Context, viewer, filterUsername string) ([]models.PostView, error) {
	return m.listFn(ctx, viewer, filterUsername)
}

// mockReactionService implements service.ReactionService.
type mockReactionService struct {
	toggleFn func(ctx context.Context, postID int64, username string, likeType models.LikeType, action models.LikeAction) (int64, error)
}

func (m *mockReactionService) Toggle(ctx context.Context, postID int64, username string, likeType models.LikeType, action models.LikeAction) (int64, error) {
	return m.toggleFn(ctx, postID, username, likeType, action)
}

func testConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{
			TokenCookieName: testCookieName,
		},
		Server: config.Server{
			RequestTimeout: 30 * time.Second,
		},
	}
}

// newTestHandler builds a Handler around the given service mocks. Nil mocks
// are fine for endpoints a test never touches.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	return NewHandler(svcs, testConfig(), logger.Nop())
}

// formRequest builds a POST request with an urlencoded form body.
func formRequest(t *testing.T, target string, form url.Values) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// asUser attaches an authenticated username to the request context the same
// way the auth middleware does.
func asUser(r *http.Request, username string) *http.Request {
	ctx := context.WithValue(r.Context(), utils.UsernameCtxKey, username)
	return r.WithContext(ctx)
}
