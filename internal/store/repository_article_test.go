package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bkdev/go-blog-api/internal/logger"
	"github.com/bkdev/go-blog-api/models"
	"github.com/google/uuid"
)

func newTestArticleRepo(t *testing.T) (*articleRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &articleRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func articleRows(articles ...models.Article) *sqlmock.Rows {
	rows := sqlmock.NewRows(articleColumns)
	for _, a := range articles {
		var category any
		if a.CategoryID != nil {
			category = a.CategoryID.String()
		}
		rows.AddRow(a.ID.String(), a.Title, a.Body, a.CreatedAt, a.UpdatedAt, a.CreatorID, category)
	}
	return rows
}

func TestCreateArticle_Success(t *testing.T) {
	repo, mock, db := newTestArticleRepo(t)
	defer db.Close()

	ctx := context.Background()
	categoryID := uuid.New()
	article := models.Article{
		ID:         uuid.New(),
		Title:      "First post",
		Body:       "Hello",
		CreatedAt:  time.Now().UnixMilli(),
		UpdatedAt:  time.Now().UnixMilli(),
		CreatorID:  7,
		CategoryID: &categoryID,
	}

	mock.ExpectQuery("INSERT INTO articles").
		WithArgs(article.ID, article.Title, article.Body, article.CreatedAt, article.UpdatedAt, article.CreatorID, sqlmock.AnyArg()).
		WillReturnRows(articleRows(article))

	created, err := repo.CreateArticle(ctx, article)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != article.ID {
		t.Errorf("expected id %s, got %s", article.ID, created.ID)
	}
	if created.CategoryID == nil || *created.CategoryID != categoryID {
		t.Errorf("expected category %s, got %v", categoryID, created.CategoryID)
	}
}

func TestCreateArticle_WithoutCategory(t *testing.T) {
	repo, mock, db := newTestArticleRepo(t)
	defer db.Close()

	ctx := context.Background()
	article := models.Article{
		ID:        uuid.New(),
		Title:     "Uncategorized",
		Body:      "Body",
		CreatorID: 7,
	}

	mock.ExpectQuery("INSERT INTO articles").
		WillReturnRows(articleRows(article))

	created, err := repo.CreateArticle(ctx, article)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.CategoryID != nil {
		t.Errorf("expected nil category, got %v", created.CategoryID)
	}
}

func TestCreateArticle_ExecError(t *testing.T) {
	repo, mock, db := newTestArticleRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO articles").
		WillReturnError(errors.New("db down"))

	_, err := repo.CreateArticle(ctx, models.Article{ID: uuid.New(), Title: "T", Body: "B", CreatorID: 1})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestListArticles_All(t *testing.T) {
	repo, mock, db := newTestArticleRepo(t)
	defer db.Close()

	ctx := context.Background()
	first := models.Article{ID: uuid.New(), Title: "A", Body: "a", CreatorID: 1}
	second := models.Article{ID: uuid.New(), Title: "B", Body: "b", CreatorID: 2}

	mock.ExpectQuery("SELECT id, title, body").
		WillReturnRows(articleRows(first, second))

	articles, err := repo.ListArticles(ctx, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(articles))
	}
}

func TestListArticles_OwnerScoped(t *testing.T) {
	repo, mock, db := newTestArticleRepo(t)
	defer db.Close()

	ctx := context.Background()
	creatorID := int64(7)
	mine := models.Article{ID: uuid.New(), Title: "Mine", Body: "m", CreatorID: creatorID}

	mock.ExpectQuery("SELECT id, title, body").
		WithArgs(creatorID).
		WillReturnRows(articleRows(mine))

	articles, err := repo.ListArticles(ctx, &creatorID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(articles) != 1 || articles[0].CreatorID != creatorID {
		t.Fatalf("expected only creator %d articles, got %+v", creatorID, articles)
	}
}

func TestArticlesByCategory_Empty(t *testing.T) {
	repo, mock, db := newTestArticleRepo(t)
	defer db.Close()

	ctx := context.Background()
	categoryID := uuid.New()

	mock.ExpectQuery("SELECT id, title, body").
		WithArgs(categoryID).
		WillReturnRows(articleRows())

	articles, err := repo.ArticlesByCategory(ctx, categoryID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(articles) != 0 {
		t.Fatalf("expected empty result, got %d articles", len(articles))
	}
}

func TestFindArticle_Success(t *testing.T) {
	repo, mock, db := newTestArticleRepo(t)
	defer db.Close()

	ctx := context.Background()
	article := models.Article{ID: uuid.New(), Title: "Found", Body: "f", CreatorID: 3}

	mock.ExpectQuery("SELECT id, title, body").
		WithArgs(article.ID).
		WillReturnRows(articleRows(article))

	found, err := repo.FindArticle(ctx, article.ID, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Title != "Found" {
		t.Errorf("expected title Found, got %s", found.Title)
	}
}

func TestFindArticle_NotFound(t *testing.T) {
	repo, mock, db := newTestArticleRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, title, body").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindArticle(ctx, uuid.New(), nil)
	if !errors.Is(err, ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound, got %v", err)
	}
}

func TestFindArticle_OwnerScopedMiss(t *testing.T) {
	repo, mock, db := newTestArticleRepo(t)
	defer db.Close()

	ctx := context.Background()
	requester := int64(99)

	mock.ExpectQuery("SELECT id, title, body").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindArticle(ctx, uuid.New(), &requester)
	if !errors.Is(err, ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound for foreign article, got %v", err)
	}
}

func TestUpdateArticle_Success(t *testing.T) {
	repo, mock, db := newTestArticleRepo(t)
	defer db.Close()

	ctx := context.Background()
	title := "Renamed"
	article := models.Article{ID: uuid.New(), Title: title, Body: "b", CreatorID: 5, UpdatedAt: time.Now().UnixMilli()}

	mock.ExpectQuery("UPDATE articles").
		WillReturnRows(articleRows(article))

	updated, err := repo.UpdateArticle(ctx, models.ArticleUpdate{
		ID:        article.ID,
		CreatorID: article.CreatorID,
		Title:     &title,
		UpdatedAt: article.UpdatedAt,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != title {
		t.Errorf("expected title %s, got %s", title, updated.Title)
	}
}

func TestUpdateArticle_NotFound(t *testing.T) {
	repo, mock, db := newTestArticleRepo(t)
	defer db.Close()

	ctx := context.Background()
	title := "Renamed"

	mock.ExpectQuery("UPDATE articles").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateArticle(ctx, models.ArticleUpdate{
		ID:        uuid.New(),
		CreatorID: 5,
		Title:     &title,
	})
	if !errors.Is(err, ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound, got %v", err)
	}
}

func TestDeleteArticle_Success(t *testing.T) {
	repo, mock, db := newTestArticleRepo(t)
	defer db.Close()

	ctx := context.Background()
	article := models.Article{ID: uuid.New(), Title: "Doomed", Body: "d", CreatorID: 5}

	mock.ExpectQuery("DELETE FROM articles").
		WithArgs(article.ID, article.CreatorID).
		WillReturnRows(articleRows(article))

	deleted, err := repo.DeleteArticle(ctx, article.ID, article.CreatorID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted.ID != article.ID {
		t.Errorf("expected deleted id %s, got %s", article.ID, deleted.ID)
	}
}

func TestDeleteArticle_NotFound(t *testing.T) {
	repo, mock, db := newTestArticleRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("DELETE FROM articles").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.DeleteArticle(ctx, uuid.New(), 5)
	if !errors.Is(err, ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound, got %v", err)
	}
}
