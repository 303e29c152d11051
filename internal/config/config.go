package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Keys     APIKeys
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	IngestTopic        string
}

type DatabaseConfig struct {
	Connection string
}

type APIKeys struct {
	OpenAI   string
	Pinecone string
}

type AIConfig struct {
	EmbeddingProvider  string // "openai" or "ollama"
	EmbeddingModel     string
	EmbeddingDimension int
	OllamaBaseURL      string

	VectorIndexProvider string // "pinecone" or "pgvector"
	PineconeIndexHost   string
	RetrievalTopK       int

	LLMProvider           string // "openai" or "ollama"
	LLMModel              string
	GenerationTemperature float64
	GenerationMaxTokens   int

	MaxConcurrentUpstreamCalls int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			IngestTopic:        getEnv("EMBED_PHRASE_TOPIC_NAME", "EMBED_PHRASE"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Keys: APIKeys{
			OpenAI:   getEnv("OPENAI_API_KEY", ""),
			Pinecone: getEnv("PINECONE_API_KEY", ""),
		},
		Ai: AIConfig{
			EmbeddingProvider:  getEnv("EMBEDDING_PROVIDER", "openai"),
			EmbeddingModel:     getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),
			EmbeddingDimension: getEnvAsInt("EMBED_DIM", 1536),
			OllamaBaseURL:      getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),

			VectorIndexProvider: getEnv("VECTOR_INDEX_PROVIDER", "pinecone"),
			PineconeIndexHost:   getEnv("PINECONE_INDEX_HOST", ""),
			RetrievalTopK:       getEnvAsInt("RETRIEVAL_TOP_K", 5),

			LLMProvider:           getEnv("LLM_PROVIDER", "openai"),
			LLMModel:              getEnv("LLM_MODEL", "gpt-4o-mini"),
			GenerationTemperature: getEnvAsFloat("GENERATION_TEMPERATURE", 0.25),
			GenerationMaxTokens:   getEnvAsInt("GENERATION_MAX_TOKENS", 600),

			MaxConcurrentUpstreamCalls: getEnvAsInt("MAX_CONCURRENT_UPSTREAM_CALLS", 64),
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

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
