package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bkdev/go-blog-api/internal/logger"
	"github.com/bkdev/go-blog-api/internal/store"
	"github.com/bkdev/go-blog-api/internal/utils"
	"github.com/bkdev/go-blog-api/models"
	"github.com/google/uuid"
)

// categoryService is the concrete implementation of CategoryService.
// Categories are append-only: once created they are never renamed or
// removed, so the surface is create, list, and the per-category article
// listing.
type categoryService struct {
	categoryRepository store.CategoryRepository
	articleRepository  store.ArticleRepository

	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewCategoryService constructs a CategoryService over the given
// repositories.
func NewCategoryService(categoryRepository store.CategoryRepository, articleRepository store.ArticleRepository, logger *logger.Logger) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		articleRepository:  articleRepository,
		ids:                utils.NewUUIDGenerator(),
		logger:             logger,
	}
}

// Create validates and persists a new category stamped with the current time.
//
// Returns the persisted category or:
//   - ErrInvalidDataProvided if the name is empty after trimming.
//   - A wrapped storage error if persistence fails (e.g. the name is already
//     taken, see store.ErrCategoryNameTaken).
func (s *categoryService) Create(ctx context.Context, creatorID int64, input models.CategoryInput) (models.Category, error) {
	log := logger.FromContext(ctx)

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		log.Error().Int64("creator_id", creatorID).Msg("invalid category data provided")
		return models.Category{}, ErrInvalidDataProvided
	}

	category := models.Category{
		ID:        s.ids.Generate(),
		Name:      input.Name,
		CreatedAt: time.Now().UnixMilli(),
		CreatorID: creatorID,
	}

	created, err := s.categoryRepository.CreateCategory(ctx, category)
	if err != nil {
		log.Err(err).Str("name", input.Name).Msg("category creation ended with error")
		return models.Category{}, fmt.Errorf("category creation ended with error: %w", err)
	}

	return created, nil
}

// List returns every category.
func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	categories, err := s.categoryRepository.AllCategories(ctx)
	if err != nil {
		log.Err(err).Msg("category listing failed")
		return nil, fmt.Errorf("category listing failed: %w", err)
	}

	return categories, nil
}

// Articles resolves the category and returns every article referencing it.
// Malformed and unknown ids both yield store.ErrCategoryNotFound; a category
// without articles yields an empty list.
func (s *categoryService) Articles(ctx context.Context, id string) ([]models.Article, error) {
	log := logger.FromContext(ctx)

	categoryID, err := uuid.Parse(id)
	if err != nil {
		log.Debug().Str("id", id).Msg("malformed category id")
		return nil, store.ErrCategoryNotFound
	}

	if _, err := s.categoryRepository.FindCategory(ctx, categoryID); err != nil {
		log.Debug().Err(err).Str("id", id).Msg("category lookup failed")
		return nil, fmt.Errorf("category lookup failed: %w", err)
	}

	articles, err := s.articleRepository.ArticlesByCategory(ctx, categoryID)
	if err != nil {
		log.Err(err).Str("id", id).Msg("per-category article listing failed")
		return nil, fmt.Errorf("per-category article listing failed: %w", err)
	}

	return articles, nil
}
