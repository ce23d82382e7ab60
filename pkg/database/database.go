package database

import (
	"fmt"
	"log"
	"swingshift_backend/internal/config"
	"swingshift_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig, mode string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	logLevel := logger.Warn
	if mode == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.MasterQuestion{},
		&model.ResponseOption{},
		&model.Project{},
		&model.ProjectQuestion{},
		&model.CustomQuestion{},
		&model.CustomResponseOption{},
		&model.SurveyResponse{},
		&model.ResponseAnswer{},
		&model.MasterVideo{},
		&model.ScheduleVideo{},
		&model.ScheduleRating{},
		&model.NormativeData{},
	)
	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	return db, nil
}
