package service

import (
	"github.com/bkdev/go-blog-api/internal/config"
	"github.com/bkdev/go-blog-api/internal/logger"
	"github.com/bkdev/go-blog-api/internal/store"
)

type Services struct {
	AuthService     AuthService
	ArticleService  ArticleService
	CategoryService CategoryService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.App, logger),
		ArticleService:  NewArticleService(storages.ArticleRepository, storages.CategoryRepository, cfg.App, logger),
		CategoryService: NewCategoryService(storages.CategoryRepository, storages.ArticleRepository, logger),
	}
}
