package service

import (
	"context"

	"github.com/bkdev/go-blog-api/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error)
	Logout(ctx context.Context, userID int64, token string) error
	Authenticate(ctx context.Context, tokenString string) (models.User, models.Token, error)
	Users(ctx context.Context) ([]models.User, error)
}

type ArticleService interface {
	Create(ctx context.Context, creatorID int64, input models.ArticleInput) (models.Article, error)
	List(ctx context.Context, requesterID *int64) ([]models.Article, error)
	Get(ctx context.Context, id string, requesterID *int64) (models.Article, error)
	Update(ctx context.Context, id string, creatorID int64, patch models.ArticlePatch) (models.Article, error)
	Delete(ctx context.Context, id string, creatorID int64) (models.Article, error)
}

type CategoryService interface {
	Create(ctx context.Context, creatorID int64, input models.CategoryInput) (models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	Articles(ctx context.Context, id string) ([]models.Article, error)
}
