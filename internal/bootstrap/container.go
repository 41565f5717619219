package bootstrap

import (
	"log"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"classico-be/internal/backend"
	"classico-be/internal/config"
	"classico-be/internal/controller"
	"classico-be/internal/pkg/logger"
	"classico-be/internal/service"
	"classico-be/pkg/archive"
	"classico-be/pkg/formdetect"
)

type Container struct {
	// Controllers
	UploadController  controller.IUploadController
	AuthController    controller.IAuthController
	ContactController controller.IContactController

	// Shared state (exposed for the health endpoint)
	Selector *backend.Selector
	Logger   logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	extractor, err := archive.NewExtractor(cfg.Upload.Dir, sysLogger)
	if err != nil {
		log.Fatalf("[FATAL] Failed to prepare upload directory: %v", err)
	}

	detector := formdetect.NewDetector(sysLogger)

	// 2. Backend selection: connection is deferred until the first upload
	// or data request needs it.
	selector := backend.NewSelector(backend.NewConnector(cfg), sysLogger)

	// Session results are replayable for a day, then dropped.
	sessions := gocache.New(24*time.Hour, time.Hour)

	// 3. Services
	uploadService := service.NewUploadService(extractor, detector, selector, sessions, sysLogger)
	authService := service.NewAuthService(selector, cfg.JWT)
	contactService := service.NewContactService(selector)

	// 4. Controllers
	return &Container{
		UploadController:  controller.NewUploadController(uploadService, sysLogger),
		AuthController:    controller.NewAuthController(authService),
		ContactController: controller.NewContactController(contactService),
		Selector:          selector,
		Logger:            sysLogger,
	}
}
