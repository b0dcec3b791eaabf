package bootstrap

import (
	"context"
	"log"

	"ai-hrchat-be/internal/config"
	"ai-hrchat-be/internal/controller"
	"ai-hrchat-be/internal/handler"
	"ai-hrchat-be/internal/pkg/logger"
	"ai-hrchat-be/internal/repository/memory"
	"ai-hrchat-be/internal/repository/redisrepo"
	"ai-hrchat-be/internal/service"
	"ai-hrchat-be/internal/websocket"
	"ai-hrchat-be/pkg/agent"
	"ai-hrchat-be/pkg/embedding"
	"ai-hrchat-be/pkg/extractor"
	"ai-hrchat-be/pkg/maps"
	"ai-hrchat-be/pkg/speech"
	qdrantstore "ai-hrchat-be/pkg/vectorstore/qdrant"

	pktNats "ai-hrchat-be/pkg/nats"

	"github.com/redis/go-redis/v9"
	openai "github.com/sashabaranov/go-openai"
)

type Container struct {
	// Controllers
	SessionController controller.ISessionController
	FileController    controller.IFileController
	ChatController    controller.IChatController

	// Background Services (Exposed for main.go to run)
	AuditService service.IAuditService

	// WebSockets
	SessionWsHandler *handler.SessionWsHandler
	WebSocketHub     *websocket.Hub
}

func NewContainer(cfg *config.Config) *Container {
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] Invalid configuration: %v", err)
	}

	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// Qdrant
	vectorStore, err := qdrantstore.New(cfg.Storage.QdrantURL, cfg.Storage.QdrantAPIKey)
	if err != nil {
		log.Fatalf("[FATAL] Failed to connect to Qdrant: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/websocket.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Providers
	embeddingProvider := embedding.NewOpenAIProvider(cfg.Keys.OpenAI, openai.EmbeddingModel(cfg.Ai.EmbeddingModel))
	chatAgent := agent.New(cfg.Keys.OpenAI, cfg.Ai.ChatModel, sysLogger)
	textExtractor := extractor.New()

	nearbyStateRepo := memory.NewNearbyStateRepository()
	resolver, err := maps.NewResolver(cfg.Keys.GoogleMaps, nearbyStateRepo, sysLogger)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize maps resolver: %v", err)
	}

	var synthesizer speech.Synthesizer
	if cfg.Ai.VoiceModeEnable && cfg.Keys.ElevenLabs != "" {
		synthesizer = speech.NewElevenLabsClient(cfg.Keys.ElevenLabs, cfg.Ai.TTSVoiceID, cfg.Ai.TTSModel)
	} else {
		log.Printf("[INFO] Voice mode disabled")
	}

	// 4. Repositories
	sessionRepo := redisrepo.NewSessionRepository(rdb)

	// 5. Services
	contextService := service.NewContextService(embeddingProvider, vectorStore, sysLogger)
	sessionService := service.NewSessionService(sessionRepo, contextService, wsHub, natsPub, cfg.App.ClientURL, sysLogger)
	fileService := service.NewFileService(sessionRepo, contextService, textExtractor, wsHub, natsPub, cfg.App.UploadDir, sysLogger)
	chatService := service.NewChatService(sessionRepo, contextService, chatAgent, resolver, synthesizer, wsHub, natsPub, sysLogger)

	// Audit worker
	var auditService service.IAuditService
	if natsSub != nil {
		auditService = service.NewAuditService(natsSub, sysLogger)
		go auditService.Start()
	}

	// 6. Controllers
	// Note: We return the container with public fields for the server to register
	return &Container{
		SessionController: controller.NewSessionController(sessionService),
		FileController:    controller.NewFileController(fileService),
		ChatController:    controller.NewChatController(chatService),

		AuditService: auditService,

		SessionWsHandler: handler.NewSessionWsHandler(wsHub, wsLogger),
		WebSocketHub:     wsHub,
	}
}
