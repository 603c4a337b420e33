package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"psybot-be/pkg/events"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Upstream UpstreamConfig
	Chat     ChatConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	JwtSecret          string
}

type DatabaseConfig struct {
	Connection string
}

type UpstreamConfig struct {
	HMRAGBaseURL  string
	OllamaBaseURL string
}

type ChatConfig struct {
	RecordedTopic string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "4000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
			JwtSecret:          getEnv("JWT_SECRET", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Upstream: UpstreamConfig{
			HMRAGBaseURL:  getEnv("PY_HMRAG_URL", "http://127.0.0.1:8001"),
			OllamaBaseURL: getEnv("OLLAMA_URL", "http://127.0.0.1:11434"),
		},
		Chat: ChatConfig{
			RecordedTopic: getEnv("CHAT_RECORDED_TOPIC_NAME", events.ChatRecordedType),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
