package appcontext

import (
	"github.com/minio/minio-go/v7"
	"github.com/sealteck/doortrack/internal/auth"
	"github.com/sealteck/doortrack/internal/config"
	"github.com/sealteck/doortrack/internal/mailer"
	"github.com/sealteck/doortrack/internal/queue"
	"github.com/sealteck/doortrack/internal/repository"
	"github.com/sealteck/doortrack/pkg/certpdf"
	"go.uber.org/zap"
)

// Application contains core dependencies for the app.
type Application struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	Logger *zap.SugaredLogger

	// Repository provides access to data storage operations.
	Repository *repository.Repository

	// Mailer handles email-sending functions.
	Mailer mailer.Client

	// JWTService manages JWT operations for authentication such as generate, verify, refresh token.
	JWTService auth.JWTInterface

	S3 *minio.Client

	// Queue publishes lifecycle notification jobs. Nil when RabbitMQ is not
	// configured; publishers must tolerate that.
	Queue *queue.RabbitMQ

	// CertRenderer produces the certificate PDF at certify time.
	CertRenderer *certpdf.Renderer
}
