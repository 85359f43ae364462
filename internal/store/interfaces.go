package store

import (
	"context"

	"github.com/bkdev/go-blog-api/models"
	"github.com/google/uuid"
)

// UserRepository persists user accounts and their active-session token lists.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	AllUsers(ctx context.Context) ([]models.User, error)

	// AddSession appends a session entry to the user's active-token list.
	AddSession(ctx context.Context, session models.Session) error
	// FindUserByToken resolves a user only when a session row matching
	// (userID, access, token) exists; a valid signature alone is not enough.
	FindUserByToken(ctx context.Context, userID int64, access, token string) (models.User, error)
	// DeleteSession removes the session holding exactly this token.
	// Removing an absent session is not an error.
	DeleteSession(ctx context.Context, userID int64, token string) error
}

// ArticleRepository persists articles. All mutating operations are
// owner-scoped: they match on both article id and creator id.
type ArticleRepository interface {
	CreateArticle(ctx context.Context, article models.Article) (models.Article, error)
	ListArticles(ctx context.Context, creatorID *int64) ([]models.Article, error)
	ArticlesByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.Article, error)
	FindArticle(ctx context.Context, id uuid.UUID, creatorID *int64) (models.Article, error)
	UpdateArticle(ctx context.Context, update models.ArticleUpdate) (models.Article, error)
	DeleteArticle(ctx context.Context, id uuid.UUID, creatorID int64) (models.Article, error)
}

// CategoryRepository persists categories. Categories are append-only; there
// are no update or delete operations.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	AllCategories(ctx context.Context) ([]models.Category, error)
	FindCategory(ctx context.Context, id uuid.UUID) (models.Category, error)
}
