package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bkdev/go-blog-api/internal/service"
	"github.com/bkdev/go-blog-api/internal/store"
	"github.com/bkdev/go-blog-api/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategory_Success(t *testing.T) {
	categories := &mockCategoryService{
		createFn: func(_ context.Context, creatorID int64, input models.CategoryInput) (models.Category, error) {
			assert.Equal(t, validUser.UserID, creatorID)
			return models.Category{ID: uuid.New(), Name: input.Name, CreatorID: creatorID}, nil
		},
	}
	h := newTestHandler(t, nil, nil, categories)

	body := jsonBody(t, models.CategoryInput{Name: "Lifestyle"})
	req := withAuthedUser(httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(body)), validUser)
	rec := httptest.NewRecorder()

	h.createCategory(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	// bare category, not an envelope
	var got models.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Lifestyle", got.Name)
}

func TestCreateCategory_DuplicateName(t *testing.T) {
	categories := &mockCategoryService{
		createFn: func(_ context.Context, _ int64, _ models.CategoryInput) (models.Category, error) {
			return models.Category{}, store.ErrCategoryNameTaken
		},
	}
	h := newTestHandler(t, nil, nil, categories)

	body := jsonBody(t, models.CategoryInput{Name: "Lifestyle"})
	req := withAuthedUser(httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(body)), validUser)
	rec := httptest.NewRecorder()

	h.createCategory(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateCategory_EmptyName(t *testing.T) {
	categories := &mockCategoryService{
		createFn: func(_ context.Context, _ int64, _ models.CategoryInput) (models.Category, error) {
			return models.Category{}, service.ErrInvalidDataProvided
		},
	}
	h := newTestHandler(t, nil, nil, categories)

	body := jsonBody(t, models.CategoryInput{Name: ""})
	req := withAuthedUser(httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(body)), validUser)
	rec := httptest.NewRecorder()

	h.createCategory(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateCategory_MissingUser(t *testing.T) {
	h := newTestHandler(t, nil, nil, &mockCategoryService{})

	body := jsonBody(t, models.CategoryInput{Name: "Lifestyle"})
	req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.createCategory(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListCategories_BareArray(t *testing.T) {
	categories := &mockCategoryService{
		listFn: func(_ context.Context) ([]models.Category, error) {
			return []models.Category{{Name: "Tech"}, {Name: "Travel"}}, nil
		},
	}
	h := newTestHandler(t, nil, nil, categories)

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	rec := httptest.NewRecorder()

	h.listCategories(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Travel", got[1].Name)
}

func TestArticlesByCategory_BareArray(t *testing.T) {
	id := uuid.New()
	categories := &mockCategoryService{
		articlesFn: func(_ context.Context, gotID string) ([]models.Article, error) {
			assert.Equal(t, id.String(), gotID)
			return []models.Article{{Title: "A"}}, nil
		},
	}
	h := newTestHandler(t, nil, nil, categories)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/categories/"+id.String(), nil), "id", id.String())
	rec := httptest.NewRecorder()

	h.articlesByCategory(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.Article
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
}

func TestArticlesByCategory_UnknownCategory(t *testing.T) {
	categories := &mockCategoryService{
		articlesFn: func(_ context.Context, _ string) ([]models.Article, error) {
			return nil, store.ErrCategoryNotFound
		},
	}
	h := newTestHandler(t, nil, nil, categories)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/categories/123", nil), "id", "123")
	rec := httptest.NewRecorder()

	h.articlesByCategory(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
