package main

import (
	"context"

	"github.com/sealteck/doortrack/internal/config"
	"github.com/sealteck/doortrack/internal/constant"
	"github.com/sealteck/doortrack/internal/database"
	"github.com/sealteck/doortrack/internal/env"
	"github.com/sealteck/doortrack/internal/model"
	"github.com/sealteck/doortrack/internal/repository"
	"github.com/sealteck/doortrack/internal/util"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func init() {
	env.LoadEnv(".env")
}

// defaultInspectionPoints seeds the checklist for a fresh install. Admins can
// reshape it afterwards through the inspection point endpoints.
var defaultInspectionPoints = []model.InspectionPoint{
	{Name: "Door leaf free of dents and corrosion", OrderIndex: 1, Active: true},
	{Name: "Gasket seated and undamaged along full perimeter", OrderIndex: 2, Active: true},
	{Name: "Hinges aligned and lubricated", OrderIndex: 3, Active: true},
	{Name: "Dogging mechanism operates through full travel", OrderIndex: 4, Active: true},
	{Name: "Pressure rating plate legible and matches drawing", OrderIndex: 5, Active: true},
	{Name: "Frame weld seams free of cracks", OrderIndex: 6, Active: true},
}

func main() {
	logger := zap.Must(zap.NewDevelopment()).Sugar()
	defer logger.Sync()
	cfg := config.GetConfig()

	logger.Infof("Database configuration: %+v", cfg.DB)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	db.Exec(`CREATE EXTENSION IF NOT EXISTS citext`)

	migrateErr := db.AutoMigrate(
		&model.User{},
		&model.Token{},
		&model.OAuthProvider{},
		&model.File{},
		&model.PurchaseOrder{},
		&model.Door{},
		&model.InspectionPoint{},
		&model.Inspection{},
		&model.InspectionCheck{},
		&model.Certification{},
		&model.Counter{},
	)
	if migrateErr != nil {
		logger.Panic(migrateErr)
	}

	// One in-progress inspection per door. The door row lock already
	// serializes starts; this makes a double start lose even without it.
	db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_inspections_one_in_progress
		ON inspections (door_id) WHERE status = 0`)

	ctx := context.Background()
	repo := repository.NewRepository(db, util.NewLogger(cfg.ENV), nil, nil)

	if err := repo.Counter.Seed(ctx, nil, constant.COUNTER_DOOR_SERIAL, cfg.Door.SerialBase); err != nil {
		logger.Panicf("Failed to seed serial counter: %v", err)
	}
	logger.Infof("Serial counter %s seeded at %d", constant.COUNTER_DOOR_SERIAL, cfg.Door.SerialBase)

	seedInspectionPoints(db, logger)
}

func seedInspectionPoints(db *gorm.DB, logger *zap.SugaredLogger) {
	var count int64
	if err := db.Model(&model.InspectionPoint{}).Count(&count).Error; err != nil {
		logger.Panicf("Failed to count inspection points: %v", err)
	}

	if count > 0 {
		logger.Infof("Inspection points already present (%d), skipping seed", count)
		return
	}

	if err := db.Create(&defaultInspectionPoints).Error; err != nil {
		logger.Panicf("Failed to seed inspection points: %v", err)
	}
	logger.Infof("Seeded %d default inspection points", len(defaultInspectionPoints))
}
