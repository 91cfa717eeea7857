package repository

import (
	"github.com/minio/minio-go/v7"
	"github.com/sealteck/doortrack/internal/auth"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type baseRepository struct {
	db         *gorm.DB
	logger     *zap.SugaredLogger
	jwtService auth.JWTInterface
	s3         *minio.Client
}

type Repository struct {
	// DB can be used for transaction. Example usage:
	// tx := r.DB.Begin()
	// defer tx.Commit()
	// Then pass tx to the repository function. and use tx.Rollback() if error occurred
	DB              *gorm.DB
	User            *UserRepository
	JWT             *JWTRepository
	OAuthProvider   *OAuthProviderRepository
	PurchaseOrder   *PurchaseOrderRepository
	Door            *DoorRepository
	Inspection      *InspectionRepository
	InspectionCheck *InspectionCheckRepository
	InspectionPoint *InspectionPointRepository
	Certification   *CertificationRepository
	Counter         *CounterRepository
	File            *FileRepository
}

func newBaseRepository(db *gorm.DB, logger *zap.SugaredLogger, jwtService auth.JWTInterface, s3 *minio.Client) *baseRepository {
	return &baseRepository{db: db, logger: logger, jwtService: jwtService, s3: s3}
}

func NewRepository(db *gorm.DB, logger *zap.SugaredLogger, jwtService auth.JWTInterface, s3 *minio.Client) *Repository {
	br := newBaseRepository(db, logger, jwtService, s3)
	_userRepo := &UserRepository{baseRepository: br}
	_counterRepo := &CounterRepository{baseRepository: br}
	_checkRepo := &InspectionCheckRepository{baseRepository: br}

	return &Repository{
		DB:              db,
		User:            _userRepo,
		JWT:             &JWTRepository{baseRepository: br, user: _userRepo},
		OAuthProvider:   &OAuthProviderRepository{baseRepository: br},
		PurchaseOrder:   &PurchaseOrderRepository{baseRepository: br},
		Door:            &DoorRepository{baseRepository: br, counter: _counterRepo},
		Inspection:      &InspectionRepository{baseRepository: br, check: _checkRepo},
		InspectionCheck: _checkRepo,
		InspectionPoint: &InspectionPointRepository{baseRepository: br},
		Certification:   &CertificationRepository{baseRepository: br},
		Counter:         _counterRepo,
		File:            &FileRepository{baseRepository: br},
	}
}

// GORM runs write operations inside a transaction by default; withTx is for
// multi-statement sequences that must commit or roll back together.
// Docs: https://gorm.io/docs/transactions.html
func (b baseRepository) withTx(db *gorm.DB, fn func(*gorm.DB) error) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		return fn(tx)
	})

	if err != nil {
		b.logger.Debugf("withTx Transaction error: %v", err)
	}

	return err
}

// forUpdate is the row lock used when a lifecycle decision must read a door's
// status pair and write it back without a concurrent writer in between.
func forUpdate() clause.Locking {
	return clause.Locking{Strength: "UPDATE"}
}

func (b baseRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}

	return b.db
}
