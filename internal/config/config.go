package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Upload     UploadConfig
	Relational RelationalConfig
	Mongo      MongoConfig
	JWT        JWTConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type UploadConfig struct {
	Dir string
}

type RelationalConfig struct {
	Driver   string // "mysql" (default) or "postgres"
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type MongoConfig struct {
	URI string
}

type JWTConfig struct {
	Secret    string
	ExpiresIn string // time.ParseDuration format
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8080"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Upload: UploadConfig{
			Dir: getEnv("UPLOAD_DIR", "./uploads"),
		},
		Relational: RelationalConfig{
			Driver:   getEnv("RELATIONAL_DRIVER", "mysql"),
			Host:     getEnv("MYSQL_HOST", "localhost"),
			Port:     getEnvAsInt("MYSQL_PORT", 3306),
			User:     getEnv("MYSQL_USER", "root"),
			Password: getEnv("MYSQL_PASSWORD", ""),
			Database: getEnv("MYSQL_DATABASE", "classico"),
		},
		Mongo: MongoConfig{
			URI: getEnv("MONGO_URI", "mongodb://localhost:27017/classico"),
		},
		JWT: JWTConfig{
			Secret:    getEnv("JWT_SECRET", "change_me"),
			ExpiresIn: getEnv("JWT_EXPIRES_IN", "168h"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
