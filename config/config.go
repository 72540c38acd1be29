package config

import (
	"os"

	"food-marketplace-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	Port          string
	GinMode       string
	DBPath        string
	UploadDir     string
	AdminEmail    string
	AdminName     string
	AdminPassword string
}

var (
	DB *gorm.DB
	C  Config

	// JWTSecret signs session tokens, read from env with a dev fallback
	JWTSecret []byte
)

// Load populates configuration from the environment. A .env file is
// honoured when present but not required.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using environment defaults")
	}

	C = Config{
		Port:          getEnv("PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		DBPath:        getEnv("DB_PATH", "food_marketplace.db"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@marketplace.local"),
		AdminName:     getEnv("ADMIN_NAME", "Administrator"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
	JWTSecret = []byte(getEnv("JWT_SECRET", "food_marketplace_super_secret_2024"))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(C.DBPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := Migrate(DB); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	if err := EnsureAdminUser(DB); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin user")
	}

	log.Info().Str("db", C.DBPath).Msg("database connected and migrated")
}

// Migrate runs auto-migration for all models. Exposed separately so
// tests can point it at an in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
	)
}
