package bootstrap

import (
	"time"

	"app-catalog-be/internal/config"
	"app-catalog-be/internal/controller"
	"app-catalog-be/internal/pkg/logger"
	"app-catalog-be/internal/pkg/serverutils"
	"app-catalog-be/internal/pkg/uploads"
	"app-catalog-be/internal/repository/jsonfile"
	"app-catalog-be/internal/service"
	"app-catalog-be/pkg/staticgen"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	AppController      controller.IAppController
	TutorialController controller.ITutorialController
	SettingsController controller.ISettingsController
	SiteController     controller.ISiteController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Exposed for cmd/build and tests
	StaticService service.IStaticSiteService
	Logger        logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	publisherService := service.NewPublisherService(pubSub, cfg.App.CatalogTopic)
	consumerService := service.NewConsumerService(pubSub, cfg.App.CatalogTopic, sysLogger)

	// 3. Repositories
	catalogRepo := jsonfile.NewCatalogRepository(cfg.CatalogFile(), sysLogger)
	settingsRepo := jsonfile.NewSettingsRepository(cfg.SettingsFile(), sysLogger)
	tutorialRepo := jsonfile.NewTutorialRepository(cfg.TutorialsFile(), sysLogger)

	// 4. Services
	renderer := staticgen.NewRenderer(cfg.App.BaseURL)
	staticService := service.NewStaticSiteService(
		catalogRepo,
		settingsRepo,
		tutorialRepo,
		renderer,
		cfg.Site.TemplatesDir,
		cfg.Site.PublicDir,
		cfg.Site.AppsDir,
		sysLogger,
	)
	appService := service.NewAppService(catalogRepo, staticService, publisherService, sysLogger, cfg.Site.UploadsDir)
	tutorialService := service.NewTutorialService(tutorialRepo, staticService, publisherService, sysLogger)
	settingsService := service.NewSettingsService(settingsRepo, staticService, publisherService, sysLogger)
	authService := service.NewAuthService(
		cfg.Admin.Password,
		cfg.Admin.PasswordHash,
		cfg.Admin.JwtSecret,
		cfg.Admin.SessionHours,
		sysLogger,
	)

	// 5. HTTP surface
	authMW := serverutils.AuthRequired(cfg.Admin.JwtSecret)
	limiter := serverutils.NewLoginLimiter(cfg.Admin.LoginAttempts, 15*time.Minute)
	storage := uploads.NewStorage(cfg.Site.UploadsDir)

	return &Container{
		AuthController:     controller.NewAuthController(authService, limiter),
		AppController:      controller.NewAppController(appService, staticService, storage, authMW),
		TutorialController: controller.NewTutorialController(tutorialService, authMW),
		SettingsController: controller.NewSettingsController(settingsService, authMW),
		SiteController:     controller.NewSiteController(staticService, cfg.Site.PublicDir, cfg.Site.AppsDir),
		ConsumerService:    consumerService,
		StaticService:      staticService,
		Logger:             sysLogger,
	}
}
