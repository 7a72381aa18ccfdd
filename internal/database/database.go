package database

import (
	"fmt"

	"github.com/arjunm/skillsprint/internal/config"
	"github.com/arjunm/skillsprint/internal/models"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
	)

	logMode := logger.Warn
	if cfg.GinMode != "release" {
		logMode = logger.Info
	}

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logMode),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	zap.L().Info("database connection established", zap.String("host", cfg.DBHost), zap.String("db", cfg.DBName))
	return nil
}

func Migrate() error {
	err := DB.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Roadmap{},
		&models.RoadmapTask{},
		&models.UserProgress{},
		&models.Streak{},
		&models.QuizAttempt{},
		&models.ResumeAnalysis{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := AddIndexes(DB); err != nil {
		return fmt.Errorf("failed to add indexes: %w", err)
	}

	zap.L().Info("database migrations completed")
	return nil
}

func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (used for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
