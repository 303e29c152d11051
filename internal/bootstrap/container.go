package bootstrap

import (
	"log"

	"translator-ai-be/internal/config"
	"translator-ai-be/internal/controller"
	"translator-ai-be/internal/pkg/logger"
	"translator-ai-be/internal/repository/implementation"
	"translator-ai-be/internal/repository/memory"
	"translator-ai-be/internal/service"
	"translator-ai-be/pkg/embedding"
	"translator-ai-be/pkg/llm/factory"
	"translator-ai-be/pkg/pipeline"
	"translator-ai-be/pkg/vectorindex"
	"translator-ai-be/pkg/vectorindex/pgvector"
	"translator-ai-be/pkg/vectorindex/pinecone"

	pktNats "translator-ai-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	QueryController  controller.IQueryController
	PhraseController controller.IPhraseController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

// NewEmbeddingProvider builds the configured embedding backend. Shared with
// cmd/loader so both binaries resolve providers the same way.
func NewEmbeddingProvider(cfg *config.Config) embedding.Provider {
	if cfg.Ai.EmbeddingProvider == "ollama" {
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.EmbeddingModel)
		return embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.EmbeddingModel)
	}
	log.Printf("[INFO] Using Embedding Provider: OPENAI (%s)", cfg.Ai.EmbeddingModel)
	return embedding.NewOpenAIProvider(cfg.Keys.OpenAI, cfg.Ai.EmbeddingModel)
}

// NewVectorIndex builds the configured vector index backend. db may be nil
// when the pinecone backend is selected.
func NewVectorIndex(db *gorm.DB, cfg *config.Config) vectorindex.Index {
	switch cfg.Ai.VectorIndexProvider {
	case "pgvector":
		if db == nil {
			log.Fatalf("[FATAL] pgvector index requires DB_CONNECTION_STRING")
		}
		log.Printf("[INFO] Using Vector Index: PGVECTOR")
		return pgvector.NewStore(implementation.NewPhraseEmbeddingRepository(db))
	default:
		if cfg.Ai.PineconeIndexHost == "" {
			log.Fatalf("[FATAL] pinecone index requires PINECONE_INDEX_HOST")
		}
		log.Printf("[INFO] Using Vector Index: PINECONE (%s)", cfg.Ai.PineconeIndexHost)
		return pinecone.NewClient(cfg.Ai.PineconeIndexHost, cfg.Keys.Pinecone)
	}
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS (optional; request path never depends on it)
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// 3. AI Providers
	embeddingProvider := NewEmbeddingProvider(cfg)

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.OpenAI,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	index := NewVectorIndex(db, cfg)

	// 4. Pipeline
	orchestrator := pipeline.NewOrchestrator(
		pipeline.NewEmbedder(embeddingProvider, cfg.Ai.EmbeddingDimension),
		pipeline.NewRetriever(index, cfg.Ai.EmbeddingDimension, cfg.Ai.RetrievalTopK),
		pipeline.NewSynthesizer(llmProvider, cfg.Ai.GenerationTemperature, cfg.Ai.GenerationMaxTokens),
		cfg.Ai.MaxConcurrentUpstreamCalls,
		sysLogger,
	)

	// 5. Services
	queryLog := memory.NewQueryLogRepository()
	queryService := service.NewQueryService(orchestrator, queryLog, natsPub, sysLogger)
	publisherService := service.NewPublisherService(pubSub, cfg.App.IngestTopic, sysLogger)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.IngestTopic,
		embeddingProvider,
		index,
		natsPub,
		sysLogger,
	)

	// 6. Controllers
	return &Container{
		QueryController:  controller.NewQueryController(queryService),
		PhraseController: controller.NewPhraseController(publisherService),

		ConsumerService: consumerService,

		Logger: sysLogger,
	}
}
