package bootstrap

import (
	"psybot-be/internal/config"
	"psybot-be/internal/controller"
	"psybot-be/internal/pkg/logger"
	"psybot-be/internal/repository/memory"
	"psybot-be/internal/repository/unitofwork"
	"psybot-be/internal/service"
	"psybot-be/pkg/upstream/hmrag"
	"psybot-be/pkg/upstream/ollama"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController       controller.IChatController
	AuthController       controller.IAuthController
	SessionController    controller.ISessionController
	AssessmentController controller.IAssessmentController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Upstream Adapters
	retrievalAdapter := hmrag.NewAdapter(cfg.Upstream.HMRAGBaseURL)
	genericAdapter := ollama.NewAdapter(cfg.Upstream.OllamaBaseURL)

	// In-Memory Conversation Storage
	conversationRepo := memory.NewConversationRepository()

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Chat.RecordedTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Chat.RecordedTopic, uowFactory, sysLogger)

	chatService := service.NewChatService(
		uowFactory,
		conversationRepo,
		retrievalAdapter,
		genericAdapter,
		publisherService,
		sysLogger,
	)
	authService := service.NewAuthService(uowFactory, cfg.App.JwtSecret)
	sessionService := service.NewSessionService(uowFactory)
	assessmentService := service.NewAssessmentService(uowFactory)

	// 5. Controllers
	return &Container{
		ChatController:       controller.NewChatController(chatService),
		AuthController:       controller.NewAuthController(authService),
		SessionController:    controller.NewSessionController(sessionService),
		AssessmentController: controller.NewAssessmentController(assessmentService),
		ConsumerService:      consumerService,
	}
}
