package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"mindwijzer/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if os.Getenv("DB_AUTO_MIGRATE") == "true" {
		if err := migrate(db); err != nil {
			log.Fatalf("Error migrating database: %v", err)
		}
	}

	return db
}

func migrate(db *gorm.DB) error {
	// pgvector must exist before the embeddings table can be created.
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		return err
	}
	return db.AutoMigrate(
		&db_models.Quiz{},
		&db_models.QuizCategory{},
		&db_models.QuizQuestion{},
		&db_models.InterpretationTemplate{},
		&db_models.Tool{},
		&db_models.RecommendationEntry{},
		&db_models.AssessmentSession{},
		&db_models.SessionAnswer{},
		&db_models.SessionResult{},
		&db_models.Feedback{},
		&db_models.ToolEmbedding{},
	)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
