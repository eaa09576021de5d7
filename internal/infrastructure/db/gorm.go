package db

import (
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bfsi-los-backend/internal/domain/analysis"
	"bfsi-los-backend/internal/domain/dashboard"
	"bfsi-los-backend/internal/domain/lead"
	"bfsi-los-backend/internal/domain/memo"
	"bfsi-los-backend/internal/domain/notification"
	"bfsi-los-backend/internal/domain/qc"
	"bfsi-los-backend/internal/domain/risk"
	"bfsi-los-backend/internal/domain/summary"
)

func OpenGorm(dsn string) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn))
}

func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Println("gorm: connected")
	return db, nil
}

// Migrate brings the schema up for every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&lead.Lead{},
		&analysis.ExtractedValues{},
		&analysis.Ratios{},
		&risk.Risk{},
		&summary.Summary{},
		&memo.Memo{},
		&notification.Notification{},
		&qc.Record{},
		&dashboard.Snapshot{},
	)
}
