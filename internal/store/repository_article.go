package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bkdev/go-blog-api/internal/logger"
	"github.com/bkdev/go-blog-api/models"
	"github.com/google/uuid"
)

// articleRepository is the PostgreSQL-backed implementation of
// [ArticleRepository]. It executes all article CRUD operations against the
// "articles" table using the embedded [*DB] connection.
//
// Every method obtains a context-scoped logger via [logger.FromContext] so
// that all database interactions are traced with structured fields.
type articleRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewArticleRepository constructs an [ArticleRepository] backed by the
// provided database connection and logger.
func NewArticleRepository(db *DB, logger *logger.Logger) ArticleRepository {
	logger.Debug().Msg("creating article repository")
	return &articleRepository{
		db:     db,
		logger: logger,
	}
}

// scanArticle reads one row in the [articleColumns] order into a
// [models.Article], converting the nullable category column.
func scanArticle(row interface{ Scan(...any) error }) (models.Article, error) {
	var article models.Article
	var category uuid.NullUUID

	err := row.Scan(
		&article.ID,
		&article.Title,
		&article.Body,
		&article.CreatedAt,
		&article.UpdatedAt,
		&article.CreatorID,
		&category,
	)
	if err != nil {
		return models.Article{}, err
	}

	if category.Valid {
		article.CategoryID = &category.UUID
	}

	return article, nil
}

// CreateArticle persists a new article and returns the canonical database
// representation from the INSERT ... RETURNING clause.
func (r *articleRepository) CreateArticle(ctx context.Context, article models.Article) (models.Article, error) {
	log := logger.FromContext(ctx)

	var category uuid.NullUUID
	if article.CategoryID != nil {
		category = uuid.NullUUID{UUID: *article.CategoryID, Valid: true}
	}

	row := r.db.QueryRowContext(ctx, createArticle,
		article.ID,
		article.Title,
		article.Body,
		article.CreatedAt,
		article.UpdatedAt,
		article.CreatorID,
		category,
	)

	created, err := scanArticle(row)
	if err != nil {
		log.Err(err).
			Str("func", "*articleRepository.CreateArticle").
			Int64("creator_id", article.CreatorID).
			Msg("failed to save article")
		return models.Article{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// ListArticles returns articles ordered by creation time. A nil creatorID
// lists every article; a non-nil one restricts the result to that creator's
// records (owner-scoped listing).
func (r *articleRepository) ListArticles(ctx context.Context, creatorID *int64) ([]models.Article, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListArticlesQuery(creatorID)
	if err != nil {
		log.Err(err).Str("func", "*articleRepository.ListArticles").Msg("failed to build query")
		return nil, err
	}

	return r.queryArticles(ctx, "*articleRepository.ListArticles", query, args...)
}

// ArticlesByCategory returns every article referencing the given category,
// ordered by creation time. An empty slice is a valid result.
func (r *articleRepository) ArticlesByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.Article, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildArticlesByCategoryQuery(categoryID)
	if err != nil {
		log.Err(err).Str("func", "*articleRepository.ArticlesByCategory").Msg("failed to build query")
		return nil, err
	}

	return r.queryArticles(ctx, "*articleRepository.ArticlesByCategory", query, args...)
}

// FindArticle retrieves a single article by id. A non-nil creatorID makes
// the lookup owner-scoped: another user's article yields
// [ErrArticleNotFound], exactly like a missing record.
func (r *articleRepository) FindArticle(ctx context.Context, id uuid.UUID, creatorID *int64) (models.Article, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindArticleQuery(id, creatorID)
	if err != nil {
		log.Err(err).Str("func", "*articleRepository.FindArticle").Msg("failed to build query")
		return models.Article{}, err
	}

	article, err := scanArticle(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Article{}, ErrArticleNotFound
		}

		log.Err(err).
			Str("func", "*articleRepository.FindArticle").
			Str("id", id.String()).
			Msg("error finding article")
		return models.Article{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return article, nil
}

// UpdateArticle applies a partial, owner-scoped update and returns the
// updated record. No matching row (missing or not owned) yields
// [ErrArticleNotFound]; nothing is written in that case.
func (r *articleRepository) UpdateArticle(ctx context.Context, update models.ArticleUpdate) (models.Article, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateArticleQuery(update)
	if err != nil {
		log.Err(err).
			Str("func", "*articleRepository.UpdateArticle").
			Str("id", update.ID.String()).
			Msg("failed to build update query")
		return models.Article{}, err
	}

	article, err := scanArticle(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().
				Str("func", "*articleRepository.UpdateArticle").
				Str("id", update.ID.String()).
				Msg("article not found or not owned by requester")
			return models.Article{}, ErrArticleNotFound
		}

		log.Err(err).
			Str("func", "*articleRepository.UpdateArticle").
			Str("id", update.ID.String()).
			Msg("failed to execute update query")
		return models.Article{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return article, nil
}

// DeleteArticle removes the article matching both id and creator and returns
// the deleted record. No matching row yields [ErrArticleNotFound].
func (r *articleRepository) DeleteArticle(ctx context.Context, id uuid.UUID, creatorID int64) (models.Article, error) {
	log := logger.FromContext(ctx)

	article, err := scanArticle(r.db.QueryRowContext(ctx, deleteArticle, id, creatorID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().
				Str("func", "*articleRepository.DeleteArticle").
				Str("id", id.String()).
				Msg("article not found or not owned by requester")
			return models.Article{}, ErrArticleNotFound
		}

		log.Err(err).
			Str("func", "*articleRepository.DeleteArticle").
			Str("id", id.String()).
			Msg("failed to execute delete query")
		return models.Article{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return article, nil
}

// queryArticles executes a multi-row article query and scans the result set.
func (r *articleRepository) queryArticles(ctx context.Context, caller, query string, args ...any) ([]models.Article, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", caller).Msg("failed to execute article query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	articles := make([]models.Article, 0, 16)

	for rows.Next() {
		article, scanErr := scanArticle(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", caller).Msg("failed to scan article row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		articles = append(articles, article)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", caller).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return articles, nil
}
