package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/bkdev/go-blog-api/internal/config"
	"github.com/bkdev/go-blog-api/internal/logger"
	"github.com/bkdev/go-blog-api/internal/service"
	"github.com/bkdev/go-blog-api/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error)
	loginFn        func(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error)
	logoutFn       func(ctx context.Context, userID int64, token string) error
	authenticateFn func(ctx context.Context, tokenString string) (models.User, models.Token, error)
	usersFn        func(ctx context.Context) ([]models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error) {
	return m.registerUserFn(ctx, credentials)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error) {
	return m.loginFn(ctx, credentials)
}

func (m *mockAuthService) Logout(ctx context.Context, userID int64, token string) error {
	return m.logoutFn(ctx, userID, token)
}

func (m *mockAuthService) Authenticate(ctx context.Context, tokenString string) (models.User, models.Token, error) {
	return m.authenticateFn(ctx, tokenString)
}

func (m *mockAuthService) Users(ctx context.Context) ([]models.User, error) {
	return m.usersFn(ctx)
}

// mockArticleService implements service.ArticleService for unit tests.
type mockArticleService struct {
	createFn func(ctx context.Context, creatorID int64, input models.ArticleInput) (models.Article, error)
	listFn   func(ctx context.Context, requesterID *int64) ([]models.Article, error)
	getFn    func(ctx context.Context, id string, requesterID *int64) (models.Article, error)
	updateFn func(ctx context.Context, id string, creatorID int64, patch models.ArticlePatch) (models.Article, error)
	deleteFn func(ctx context.Context, id string, creatorID int64) (models.Article, error)
}

func (m *mockArticleService) Create(ctx context.Context, creatorID int64, input models.ArticleInput) (models.Article, error) {
	return m.createFn(ctx, creatorID, input)
}

func (m *mockArticleService) List(ctx context.Context, requesterID *int64) ([]models.Article, error) {
	return m.listFn(ctx, requesterID)
}

func (m *mockArticleService) Get(ctx context.Context, id string, requesterID *int64) (models.Article, error) {
	return m.getFn(ctx, id, requesterID)
}

func (m *mockArticleService) Update(ctx context.Context, id string, creatorID int64, patch models.ArticlePatch) (models.Article, error) {
	return m.updateFn(ctx, id, creatorID, patch)
}

func (m *mockArticleService) Delete(ctx context.Context, id string, creatorID int64) (models.Article, error) {
	return m.deleteFn(ctx, id, creatorID)
}

// mockCategoryService implements service.CategoryService for unit tests.
type mockCategoryService struct {
	createFn   func(ctx context.Context, creatorID int64, input models.CategoryInput) (models.Category, error)
	listFn     func(ctx context.Context) ([]models.Category, error)
	articlesFn func(ctx context.Context, id string) ([]models.Article, error)
}

func (m *mockCategoryService) Create(ctx context.Context, creatorID int64, input models.CategoryInput) (models.Category, error) {
	return m.createFn(ctx, creatorID, input)
}

func (m *mockCategoryService) List(ctx context.Context) ([]models.Category, error) {
	return m.listFn(ctx)
}

func (m *mockCategoryService) Articles(ctx context.Context, id string) ([]models.Article, error) {
	return m.articlesFn(ctx, id)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with the given service mocks. Nil mocks
// are fine for tests that never reach the corresponding service.
func newTestHandler(t *testing.T, auth service.AuthService, articles service.ArticleService, categories service.CategoryService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:     auth,
		ArticleService:  articles,
		CategoryService: categories,
	}
	return NewHandler(svcs, config.App{}, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

// validUser is a convenience fixture used across multiple tests.
var validUser = models.User{
	UserID: 7,
	Email:  "alice@example.com",
}

func TestNewHandler(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockArticleService{}, &mockCategoryService{})
	require.NotNil(t, h)
	require.False(t, h.ownerScopedReads)
}
