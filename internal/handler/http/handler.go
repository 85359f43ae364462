package http

import (
	"github.com/bkdev/go-blog-api/internal/config"
	"github.com/bkdev/go-blog-api/internal/logger"
	"github.com/bkdev/go-blog-api/internal/service"
)

type Handler struct {
	services *service.Services

	// ownerScopedReads controls whether article read routes require
	// authentication and return only the requester's own records.
	ownerScopedReads bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:         services,
		ownerScopedReads: cfg.OwnerScopedReads,
		logger:           logger,
	}
}
