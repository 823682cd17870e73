package database

import (
	"career_guidance_backend/internal/config"
	"career_guidance_backend/internal/model"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dbCfg := cfg.Database
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		dbCfg.User,
		dbCfg.Password,
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.DBName,
		dbCfg.Charset,
		dbCfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// Release deployments migrate via -migrate or -migrate-only, not on every
	// boot.
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}

		log.Println("Database migration completed")

		if err := Seed(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// Migrate is shared with the sqlite-backed tests.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.AssessmentType{},
		&model.AssessmentQuestion{},
		&model.UserAssessmentAttempt{},
		&model.UserAssessmentResponse{},
		&model.RiasecResult{},
		&model.PersonalityTraitResult{},
		&model.SkillProficiency{},
		&model.Report{},
		&model.University{},
		&model.Company{},
		&model.Course{},
		&model.SharedLink{},
		&model.LinkComment{},
		&model.Quote{},
	)
}

// Seed inserts the read-only reference data (assessment types, question
// banks, default quotes) when the tables are empty. Safe to run repeatedly.
func Seed(db *gorm.DB) error {
	var typeCount int64
	db.Model(&model.AssessmentType{}).Count(&typeCount)
	if typeCount == 0 {
		if err := seedAssessments(db); err != nil {
			return err
		}
	}

	var quoteCount int64
	db.Model(&model.Quote{}).Count(&quoteCount)
	if quoteCount == 0 {
		defaultQuotes := []model.Quote{
			{Content: "Choose a job you love, and you will never have to work a day in your life.", Author: "Confucius", IsEnabled: true, IsCurrentlyUsed: true},
			{Content: "The future depends on what you do today.", Author: "Mahatma Gandhi", IsEnabled: true},
			{Content: "Opportunities don't happen. You create them.", Author: "Chris Grosser", IsEnabled: true},
		}
		for _, q := range defaultQuotes {
			if err := db.Create(&q).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
