package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	appcontext "github.com/sealteck/doortrack/internal/app_context"
	"github.com/sealteck/doortrack/internal/auth"
	"github.com/sealteck/doortrack/internal/config"
	"github.com/sealteck/doortrack/internal/controller"
	"github.com/sealteck/doortrack/internal/database"
	"github.com/sealteck/doortrack/internal/env"
	filestorage "github.com/sealteck/doortrack/internal/file_storage"
	"github.com/sealteck/doortrack/internal/mailer"
	"github.com/sealteck/doortrack/internal/middleware"
	"github.com/sealteck/doortrack/internal/queue"
	ratelimiter "github.com/sealteck/doortrack/internal/rate_limiter"
	"github.com/sealteck/doortrack/internal/repository"
	"github.com/sealteck/doortrack/internal/route"
	"github.com/sealteck/doortrack/internal/util"
	"github.com/sealteck/doortrack/pkg/certpdf"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()

	logger := util.NewLogger(cfg.ENV)
	logger.Debugf("Configuration: %+v \n", cfg)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	sqlDb, err := db.DB()
	if err != nil {
		logger.Panic(err)
	}
	defer sqlDb.Close()
	logger.Info("Database connected \n")

	s3, err := filestorage.NewMinioClient(&cfg.Minio)
	if err != nil {
		logger.Error("Error connecting to minio")
		logger.Panic(err)
	}

	// Custom validation
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := util.RegisterCustomValidations(v); err != nil {
			logger.Panic(err)
		}
	}

	rateLimiter := ratelimiter.NewRateLimiter(cfg.RateLimiter, logger)

	var mail mailer.Client
	switch cfg.Mail.PROVIDER {
	case "gmail":
		mail = mailer.NewGmailMailer(cfg.Mail.GMAIL_USERNAME, cfg.Mail.GMAIL_APP_PASSWORD, logger)
	default:
		mail = mailer.NewSendgrid(cfg.Mail.SEND_GRID.API_KEY, cfg.Mail.FROM_EMAIL, cfg.IsProduction(), logger)
	}

	jwtService := auth.NewJwt(cfg.Auth, logger)
	repo := repository.NewRepository(db, logger, jwtService, s3)

	// Notifications degrade to log-only when the broker is unreachable.
	mq, err := queue.NewRabbitMQ(cfg.RabbitMQ.GetConnectionString())
	if err != nil {
		logger.Warnf("RabbitMQ unavailable, lifecycle notifications disabled: %v", err)
		mq = nil
	} else {
		defer mq.Close()
	}

	certRenderer, err := certpdf.NewRenderer(certpdf.NewDefaultConfig())
	if err != nil {
		logger.Panic(err)
	}

	app := appcontext.Application{
		Config:       &cfg,
		Repository:   repo,
		Logger:       logger,
		Mailer:       mail,
		JWTService:   jwtService,
		S3:           s3,
		Queue:        mq,
		CertRenderer: certRenderer,
	}

	_middleware := middleware.NewMiddleware(&app, rateLimiter)

	if cfg.IsProduction() {
		logger.Info("Running in production mode")
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// docs: https://github.com/gin-contrib/cors?tab=readme-ov-file#using-defaultconfig-as-start-point
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Requested-With", "Accept"}
	r.Use(cors.New(corsConfig))
	r.Use(_middleware.RateLimiterMiddleware)

	_controller := controller.NewController(&app)

	r.GET("/", _controller.Index.Index)

	rApi := r.Group("/api")

	route.V1_Auth(rApi, _controller.Auth)
	route.V1_OAuth(rApi, _controller.OAuth)
	route.V1_Users(rApi, _controller.User, _middleware)
	route.V1_Me(rApi, _controller.User, _middleware)
	route.V1_PurchaseOrders(rApi, _controller.PurchaseOrder, _middleware)
	route.V1_Doors(rApi, _controller.Door, _controller.Inspection, _controller.Certification, _middleware)
	route.V1_Inspections(rApi, _controller.Inspection, _middleware)
	route.V1_InspectionPoints(rApi, _controller.InspectionPoint, _middleware)
	route.V1_Certifications(rApi, _controller.Certification, _middleware)

	if err := r.Run("0.0.0.0:" + app.Config.Port); err != nil {
		logger.Panicf("Error running server: %v \n", err)
	}
}
