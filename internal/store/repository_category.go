package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bkdev/go-blog-api/internal/logger"
	"github.com/bkdev/go-blog-api/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
)

// categoryRepository is the PostgreSQL-backed implementation of
// [CategoryRepository]. Categories are append-only, so the surface is
// limited to create and read operations against the "categories" table.
type categoryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCategoryRepository constructs a [CategoryRepository] backed by the
// provided database connection and logger.
func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCategory persists a new category and returns the canonical database
// representation.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) on the name → [ErrCategoryNameTaken].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *categoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createCategory, category.ID, category.Name, category.CreatedAt, category.CreatorID)

	if err := row.Scan(&category.ID, &category.Name, &category.CreatedAt, &category.CreatorID); err != nil {
		log.Err(err).
			Str("func", "*categoryRepository.CreateCategory").
			Str("name", category.Name).
			Msg("error creating category")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Category{}, ErrCategoryNameTaken
		default:
			return models.Category{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return category, nil
}

// AllCategories returns every category ordered by creation time.
func (r *categoryRepository) AllCategories(ctx context.Context) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, allCategories)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.AllCategories").Msg("failed to execute query for listing categories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0, 16)

	for rows.Next() {
		var category models.Category

		if scanErr := rows.Scan(&category.ID, &category.Name, &category.CreatedAt, &category.CreatorID); scanErr != nil {
			log.Err(scanErr).Str("func", "*categoryRepository.AllCategories").Msg("failed to scan category row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		categories = append(categories, category)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*categoryRepository.AllCategories").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return categories, nil
}

// FindCategory retrieves a single category by id. No matching row yields
// [ErrCategoryNotFound].
func (r *categoryRepository) FindCategory(ctx context.Context, id uuid.UUID) (models.Category, error) {
	log := logger.FromContext(ctx)

	var category models.Category
	row := r.db.QueryRowContext(ctx, findCategory, id)

	if err := row.Scan(&category.ID, &category.Name, &category.CreatedAt, &category.CreatorID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Category{}, ErrCategoryNotFound
		}

		log.Err(err).
			Str("func", "*categoryRepository.FindCategory").
			Str("id", id.String()).
			Msg("error finding category")
		return models.Category{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return category, nil
}
