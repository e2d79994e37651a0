package config

import (
	"log"
	"os"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/spf13/viper"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"restaurant-backend/models"
)

var DB *gorm.DB

// Settings holds all runtime configuration. Values come from a .env file when
// present, overridden by environment variables; the defaults suit local development.
type Settings struct {
	ServerPort    string `mapstructure:"SERVER_PORT"`
	DatabasePath  string `mapstructure:"DATABASE_PATH"`
	UploadsDir    string `mapstructure:"UPLOADS_DIR"`
	StaticDir     string `mapstructure:"STATIC_DIR"`
	CORSOrigins   string `mapstructure:"CORS_ORIGINS"`
	SessionSecret string `mapstructure:"SESSION_SECRET"`

	// Bootstrap admin created at startup when no admin users exist yet.
	AdminUsername string `mapstructure:"ADMIN_USERNAME"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`

	// SMTP settings for contact notifications; mail is skipped when host is empty.
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUsername string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	ContactEmail string `mapstructure:"CONTACT_EMAIL"`
}

var App Settings

func Load() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DATABASE_PATH", "restaurant.db")
	viper.SetDefault("UPLOADS_DIR", "uploads")
	viper.SetDefault("STATIC_DIR", "static")
	viper.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	viper.SetDefault("SESSION_SECRET", "restaurant_admin_session_secret")
	viper.SetDefault("ADMIN_USERNAME", "")
	viper.SetDefault("ADMIN_PASSWORD", "")
	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USERNAME", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("CONTACT_EMAIL", "")

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		// .env is optional; env vars and defaults still apply
		log.Println("No .env file found, using environment and defaults")
	}

	if err := viper.Unmarshal(&App); err != nil {
		log.Fatal("Failed to parse configuration:", err)
	}

	if err := os.MkdirAll(App.UploadsDir, 0o755); err != nil {
		log.Fatal("Failed to create uploads directory:", err)
	}
}

// AllowedOrigins splits the comma-separated CORS_ORIGINS setting.
func (s Settings) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(s.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(App.DatabasePath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.MenuItem{},
		&models.MenuCategory{},
		&models.RestaurantHours{},
		&models.SiteSettings{},
		&models.ContactMessage{},
		&models.AdminUser{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database connected and migrated successfully")
}
