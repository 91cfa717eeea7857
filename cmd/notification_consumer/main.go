package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sealteck/doortrack/internal/auth"
	"github.com/sealteck/doortrack/internal/config"
	"github.com/sealteck/doortrack/internal/database"
	"github.com/sealteck/doortrack/internal/env"
	filestorage "github.com/sealteck/doortrack/internal/file_storage"
	"github.com/sealteck/doortrack/internal/mailer"
	"github.com/sealteck/doortrack/internal/queue"
	"github.com/sealteck/doortrack/internal/repository"
	"github.com/sealteck/doortrack/internal/util"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

const (
	MAX_WORKER = 3
)

func main() {
	cfg := config.GetConfig()
	logger := util.NewLogger(cfg.ENV)

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

	var mail mailer.Client
	switch cfg.Mail.PROVIDER {
	case "gmail":
		mail = mailer.NewGmailMailer(cfg.Mail.GMAIL_USERNAME, cfg.Mail.GMAIL_APP_PASSWORD, logger)
	default:
		mail = mailer.NewSendgrid(cfg.Mail.SEND_GRID.API_KEY, cfg.Mail.FROM_EMAIL, cfg.IsProduction(), logger)
	}

	jwtService := auth.NewJwt(cfg.Auth, logger)
	repo := repository.NewRepository(db, logger, jwtService, s3)
	app := queue.NotificationConsumerContext{
		Config:     &cfg,
		Repository: repo,
		Logger:     logger,
		Mailer:     mail,
	}

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQ.GetConnectionString())
	if err != nil {
		logger.Panic("Error connecting to RabbitMQ: ", err)
	}
	logger.Info("RabbitMQ connected \n")
	defer func() {
		if err := rabbitMQ.Close(); err != nil {
			logger.Errorf("Failed to close RabbitMQ connection: %v", err)
		}
	}()

	ctx := context.Background()

	if err := rabbitMQ.ConsumeNotificationJob(ctx, notificationJobHandler, MAX_WORKER, &app); err != nil {
		logger.Fatalf("Failed to consume notification job: %v", err)
	}

	logger.Infof("Started consuming notification job")

	// Block forever to keep the consumer running
	select {}
}

// notificationJobHandler delivers one queued email. The bool result reports
// whether a failure is worth retrying: malformed payloads are not, transport
// errors are.
func notificationJobHandler(ctx context.Context, jobPayload queue.NotificationJobPayload, app *queue.NotificationConsumerContext) (bool, error) {
	switch jobPayload.TemplateFile {
	case mailer.TemplateInspectionCompleted:
		var data mailer.InspectionCompletedData
		if err := json.Unmarshal(jobPayload.Data, &data); err != nil {
			return false, fmt.Errorf("failed to unmarshal InspectionCompletedData: %w", err)
		}
		return sendNotification(app, jobPayload, data)
	case mailer.TemplateCertificationIssued:
		var data mailer.CertificationIssuedData
		if err := json.Unmarshal(jobPayload.Data, &data); err != nil {
			return false, fmt.Errorf("failed to unmarshal CertificationIssuedData: %w", err)
		}
		return sendNotification(app, jobPayload, data)
	case mailer.TemplateInspectionRejected:
		var data mailer.InspectionRejectedData
		if err := json.Unmarshal(jobPayload.Data, &data); err != nil {
			return false, fmt.Errorf("failed to unmarshal InspectionRejectedData: %w", err)
		}
		return sendNotification(app, jobPayload, data)
	default:
		return false, fmt.Errorf("unsupported template: %s", jobPayload.TemplateFile)
	}
}

func sendNotification(app *queue.NotificationConsumerContext, jobPayload queue.NotificationJobPayload, data any) (bool, error) {
	status, err := app.Mailer.Send(jobPayload.TemplateFile, jobPayload.ToEmail, data)
	if err != nil {
		return true, fmt.Errorf("failed to send email: %w", err)
	}

	if status != http.StatusOK && status != http.StatusAccepted {
		return true, fmt.Errorf("email sending failed with status: %d", status)
	}

	return true, nil
}
