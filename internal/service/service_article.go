package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bkdev/go-blog-api/internal/config"
	"github.com/bkdev/go-blog-api/internal/logger"
	"github.com/bkdev/go-blog-api/internal/store"
	"github.com/bkdev/go-blog-api/internal/utils"
	"github.com/bkdev/go-blog-api/models"
	"github.com/google/uuid"
)

// articleService is the concrete implementation of ArticleService.
//
// Mutations are always restricted to the authenticated creator: updating or
// deleting somebody else's article behaves exactly like touching a missing
// one and surfaces store.ErrArticleNotFound. Reads are public unless the
// owner-scoped read policy is enabled in the configuration.
type articleService struct {
	articleRepository  store.ArticleRepository
	categoryRepository store.CategoryRepository

	// ownerScopedReads restricts List and Get to the requester's own articles
	// when true. Mutations are owner-scoped regardless.
	ownerScopedReads bool

	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewArticleService constructs an ArticleService over the given repositories,
// applying the read-scope policy from cfg.
func NewArticleService(articleRepository store.ArticleRepository, categoryRepository store.CategoryRepository, cfg config.App, logger *logger.Logger) ArticleService {
	return &articleService{
		articleRepository:  articleRepository,
		categoryRepository: categoryRepository,
		ownerScopedReads:   cfg.OwnerScopedReads,
		ids:                utils.NewUUIDGenerator(),
		logger:             logger,
	}
}

// Create validates the input, resolves the optional category reference, and
// persists a new article stamped with the current time.
//
// Returns the persisted article or:
//   - ErrInvalidDataProvided if the title or body is empty after trimming.
//   - ErrUnknownCategory if a category reference is present but malformed or
//     does not resolve to an existing category.
//   - A wrapped storage error if persistence fails.
func (s *articleService) Create(ctx context.Context, creatorID int64, input models.ArticleInput) (models.Article, error) {
	log := logger.FromContext(ctx)

	input.Title = strings.TrimSpace(input.Title)
	input.Body = strings.TrimSpace(input.Body)
	if input.Title == "" || input.Body == "" {
		log.Error().Int64("creator_id", creatorID).Msg("invalid article data provided")
		return models.Article{}, ErrInvalidDataProvided
	}

	categoryID, err := s.resolveCategory(ctx, input.Category)
	if err != nil {
		return models.Article{}, err
	}

	now := time.Now().UnixMilli()
	article := models.Article{
		ID:         s.ids.Generate(),
		Title:      input.Title,
		Body:       input.Body,
		CreatedAt:  now,
		UpdatedAt:  now,
		CreatorID:  creatorID,
		CategoryID: categoryID,
	}

	created, err := s.articleRepository.CreateArticle(ctx, article)
	if err != nil {
		log.Err(err).Int64("creator_id", creatorID).Msg("article creation ended with error")
		return models.Article{}, fmt.Errorf("article creation ended with error: %w", err)
	}

	return created, nil
}

// List returns articles visible to the requester. With public reads every
// article is returned; with owner-scoped reads only the requester's own.
func (s *articleService) List(ctx context.Context, requesterID *int64) ([]models.Article, error) {
	log := logger.FromContext(ctx)

	var creatorID *int64
	if s.ownerScopedReads {
		creatorID = requesterID
	}

	articles, err := s.articleRepository.ListArticles(ctx, creatorID)
	if err != nil {
		log.Err(err).Msg("article listing failed")
		return nil, fmt.Errorf("article listing failed: %w", err)
	}

	return articles, nil
}

// Get retrieves a single article by id. A syntactically malformed id behaves
// exactly like a missing record and yields store.ErrArticleNotFound.
func (s *articleService) Get(ctx context.Context, id string, requesterID *int64) (models.Article, error) {
	log := logger.FromContext(ctx)

	articleID, err := uuid.Parse(id)
	if err != nil {
		log.Debug().Str("id", id).Msg("malformed article id")
		return models.Article{}, store.ErrArticleNotFound
	}

	var creatorID *int64
	if s.ownerScopedReads {
		creatorID = requesterID
	}

	article, err := s.articleRepository.FindArticle(ctx, articleID, creatorID)
	if err != nil {
		log.Err(err).Str("id", id).Msg("article lookup failed")
		return models.Article{}, fmt.Errorf("article lookup failed: %w", err)
	}

	return article, nil
}

// Update applies a partial, owner-scoped update to the article and re-stamps
// its modification time. Fields absent from the patch stay unchanged.
//
// Returns the updated article or:
//   - store.ErrArticleNotFound if the id is malformed, the article does not
//     exist, or it belongs to another user.
//   - ErrInvalidDataProvided if a present title or body is empty.
//   - ErrUnknownCategory if a present category reference does not resolve.
func (s *articleService) Update(ctx context.Context, id string, creatorID int64, patch models.ArticlePatch) (models.Article, error) {
	log := logger.FromContext(ctx)

	articleID, err := uuid.Parse(id)
	if err != nil {
		log.Debug().Str("id", id).Msg("malformed article id")
		return models.Article{}, store.ErrArticleNotFound
	}

	if patch.Title != nil {
		trimmed := strings.TrimSpace(*patch.Title)
		if trimmed == "" {
			log.Error().Str("id", id).Msg("empty title in article patch")
			return models.Article{}, ErrInvalidDataProvided
		}
		patch.Title = &trimmed
	}
	if patch.Body != nil {
		trimmed := strings.TrimSpace(*patch.Body)
		if trimmed == "" {
			log.Error().Str("id", id).Msg("empty body in article patch")
			return models.Article{}, ErrInvalidDataProvided
		}
		patch.Body = &trimmed
	}

	categoryID, err := s.resolveCategory(ctx, patch.Category)
	if err != nil {
		return models.Article{}, err
	}

	update := models.ArticleUpdate{
		ID:         articleID,
		CreatorID:  creatorID,
		Title:      patch.Title,
		Body:       patch.Body,
		CategoryID: categoryID,
		UpdatedAt:  time.Now().UnixMilli(),
	}

	updated, err := s.articleRepository.UpdateArticle(ctx, update)
	if err != nil {
		log.Err(err).Str("id", id).Int64("creator_id", creatorID).Msg("article update failed")
		return models.Article{}, fmt.Errorf("article update failed: %w", err)
	}

	return updated, nil
}

// Delete removes the creator's article and returns the deleted record.
// Missing, foreign, and malformed ids all yield store.ErrArticleNotFound.
func (s *articleService) Delete(ctx context.Context, id string, creatorID int64) (models.Article, error) {
	log := logger.FromContext(ctx)

	articleID, err := uuid.Parse(id)
	if err != nil {
		log.Debug().Str("id", id).Msg("malformed article id")
		return models.Article{}, store.ErrArticleNotFound
	}

	deleted, err := s.articleRepository.DeleteArticle(ctx, articleID, creatorID)
	if err != nil {
		log.Err(err).Str("id", id).Int64("creator_id", creatorID).Msg("article deletion failed")
		return models.Article{}, fmt.Errorf("article deletion failed: %w", err)
	}

	return deleted, nil
}

// resolveCategory turns an optional category reference from the request body
// into a verified category id. A nil or empty reference means no category.
// Malformed references and references to absent categories both yield
// ErrUnknownCategory.
func (s *articleService) resolveCategory(ctx context.Context, reference *string) (*uuid.UUID, error) {
	if reference == nil || *reference == "" {
		return nil, nil
	}

	log := logger.FromContext(ctx)

	categoryID, err := uuid.Parse(*reference)
	if err != nil {
		log.Debug().Str("category", *reference).Msg("malformed category reference")
		return nil, ErrUnknownCategory
	}

	if _, err := s.categoryRepository.FindCategory(ctx, categoryID); err != nil {
		log.Debug().Err(err).Str("category", *reference).Msg("category reference does not resolve")
		return nil, ErrUnknownCategory
	}

	return &categoryID, nil
}
