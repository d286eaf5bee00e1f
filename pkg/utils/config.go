package utils

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Storage  StorageConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Files    FilesConfig
	Seed     SeedConfig
}

type AppConfig struct {
	Name    string
	Version string
	Port    string
	Debug   bool
	LogPath string
}

type StorageConfig struct {
	// Driver selects the movie/user store: "memory" or "postgres".
	Driver string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

type FilesConfig struct {
	// Dir holds downloadable files served by GET /api/get_file.
	Dir        string
	SampleName string
}

// SeedConfig describes the out-of-band accounts created at startup
// when they do not exist yet.
type SeedConfig struct {
	AdminUsername string
	AdminPassword string
	UserUsername  string
	UserPassword  string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "movie-catalog")
	viper.SetDefault("APP_VERSION", "1.0.0")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("STORAGE_DRIVER", "memory")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("FILES_DIR", "files/")
	viper.SetDefault("FILES_SAMPLE_NAME", "sample.pdf")
	viper.SetDefault("SEED_ADMIN_USERNAME", "admin")
	viper.SetDefault("SEED_ADMIN_PASSWORD", "admin123")
	viper.SetDefault("SEED_USER_USERNAME", "reich")
	viper.SetDefault("SEED_USER_PASSWORD", "user1234")

	if err := viper.ReadInConfig(); err != nil {
		// Defaults plus environment variables are enough to run
		// without an .env file.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Version: viper.GetString("APP_VERSION"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Storage: StorageConfig{
			Driver: viper.GetString("STORAGE_DRIVER"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: viper.GetInt("JWT_EXPIRY_HOURS"),
		},
		Files: FilesConfig{
			Dir:        viper.GetString("FILES_DIR"),
			SampleName: viper.GetString("FILES_SAMPLE_NAME"),
		},
		Seed: SeedConfig{
			AdminUsername: viper.GetString("SEED_ADMIN_USERNAME"),
			AdminPassword: viper.GetString("SEED_ADMIN_PASSWORD"),
			UserUsername:  viper.GetString("SEED_USER_USERNAME"),
			UserPassword:  viper.GetString("SEED_USER_PASSWORD"),
		},
	}

	// Tokens must never be signed with an empty key.
	if config.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	return config, nil
}
