package setup

import (
	"github.com/sparkboard-dev/sparkboard/internal/config"
	"github.com/sparkboard-dev/sparkboard/internal/handler"
	"github.com/sparkboard-dev/sparkboard/internal/jwt"
	"github.com/sparkboard-dev/sparkboard/internal/markdown"
	"github.com/sparkboard-dev/sparkboard/internal/middleware"
	"github.com/sparkboard-dev/sparkboard/internal/service"
	"github.com/sparkboard-dev/sparkboard/internal/storage/fs"
	"github.com/sparkboard-dev/sparkboard/internal/storage/pg"
	"github.com/sparkboard-dev/sparkboard/internal/utils"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage        *pg.Storage
	Handler        *handler.Handler
	AuthMiddleware *middleware.Auth
	Jwt            jwt.JwtService
	Config         *config.Config
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	media, err := fs.New(cfg.Public.MediaRoot, cfg.Public.MediaBaseURL)
	if err != nil {
		return nil, err
	}

	jwtService := jwt.New(cfg.Private.JwtKey, cfg.Public.JwtTTL)

	auth := service.NewAuth(storage, jwtService)
	board := service.NewBoard(storage, &utils.BoardNameValidator{})
	spark := service.NewSpark(storage)
	mediaService := service.NewMedia(media)
	community := service.NewCommunity(storage, &utils.CaptionValidator{}, cfg.Public.FeedPageSize)

	h := handler.New(auth, board, spark, mediaService, community, markdown.New(), storage, cfg)

	return &Dependencies{
		Storage:        storage,
		Handler:        h,
		AuthMiddleware: middleware.NewAuth(jwtService),
		Jwt:            jwtService,
		Config:         cfg,
	}, nil
}
