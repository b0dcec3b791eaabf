package config

import (
	"errors"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Keys    APIKeys
	Ai      AIConfig
	Storage StorageConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	UploadDir          string
}

type StorageConfig struct {
	QdrantURL    string
	QdrantAPIKey string
}

type APIKeys struct {
	OpenAI     string
	GoogleMaps string
	ElevenLabs string
}

type AIConfig struct {
	ChatModel       string // e.g. "gpt-4o"
	EmbeddingModel  string // e.g. "text-embedding-3-small"
	TTSVoiceID      string
	TTSModel        string
	VoiceModeEnable bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			UploadDir:          getEnv("UPLOAD_DIR", "uploads"),
		},
		Storage: StorageConfig{
			QdrantURL:    getEnv("QDRANT_URL", "http://localhost:6334"),
			QdrantAPIKey: getEnv("QDRANT_API_KEY", ""),
		},
		Keys: APIKeys{
			OpenAI:     getEnv("OPENAI_API_KEY", ""),
			GoogleMaps: getEnv("GOOGLE_MAPS_API_KEY", ""),
			ElevenLabs: getEnv("ELEVENLABS_API_KEY", ""),
		},
		Ai: AIConfig{
			ChatModel:       getEnv("CHAT_MODEL", "gpt-4o"),
			EmbeddingModel:  getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),
			TTSVoiceID:      getEnv("ELEVENLABS_VOICE_ID", "21m00Tcm4TlvDq8ikWAM"),
			TTSModel:        getEnv("ELEVENLABS_TTS_MODEL", "eleven_monolingual_v1"),
			VoiceModeEnable: getEnvAsBool("VOICE_MODE_ENABLED", true),
		},
	}
}

// Validate reports the first missing credential the service cannot run
// without. Called at startup so a bad deployment fails immediately instead
// of degrading every request.
func (c *Config) Validate() error {
	if c.Keys.OpenAI == "" {
		return errors.New("OPENAI_API_KEY is required")
	}
	if c.Keys.GoogleMaps == "" {
		return errors.New("GOOGLE_MAPS_API_KEY is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
