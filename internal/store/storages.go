package store

import (
	"github.com/bkdev/go-blog-api/internal/logger"
)

// Storages bundles every repository backed by the shared database
// connection.
type Storages struct {
	UserRepository     UserRepository
	ArticleRepository  ArticleRepository
	CategoryRepository CategoryRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		ArticleRepository:  NewArticleRepository(db, logger),
		CategoryRepository: NewCategoryRepository(db, logger),
	}
}
