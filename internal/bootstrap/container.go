package bootstrap

import (
	"log"

	"rlc-hub-be/internal/config"
	"rlc-hub-be/internal/controller"
	"rlc-hub-be/internal/pkg/logger"
	"rlc-hub-be/internal/pkg/mailer"
	"rlc-hub-be/internal/repository/unitofwork"
	"rlc-hub-be/internal/service"
	"rlc-hub-be/pkg/embedding"
	llmopenai "rlc-hub-be/pkg/llm/openai"

	pktNats "rlc-hub-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController             controller.IAuthController
	ProjectController          controller.IProjectController
	IntegrationEventController controller.IIntegrationEventController
	KeyDecisionController      controller.IKeyDecisionController
	KnowledgeGapController     controller.IKnowledgeGapController
	ArchiveController          controller.IArchiveController
	CoachController            controller.ICoachController
	ReportController           controller.IReportController
	TenantController           controller.ITenantController
	UsageController            controller.IUsageController
	AdminUserController        controller.IAdminUserController
	FeedbackController         controller.IFeedbackController
	BillingController          controller.IBillingController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// 3. AI Providers
	llmProvider := llmopenai.NewProvider(cfg.Ai.APIKey, cfg.Ai.BaseURL, cfg.Ai.CoachModel)
	embeddingProvider := embedding.NewOpenAIProvider(cfg.Ai.APIKey, cfg.Ai.BaseURL)

	// 4. Services
	publisherService := service.NewPublisherService(pubSub, cfg.Ai.EmbedTopic)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Ai.EmbedTopic,
		uowFactory,
		embeddingProvider,
	)

	authService := service.NewAuthService(uowFactory, emailService, natsPub, cfg.App.ClientURL)
	projectService := service.NewProjectService(uowFactory)
	eventService := service.NewIntegrationEventService(uowFactory)
	decisionService := service.NewKeyDecisionService(uowFactory)
	gapService := service.NewKnowledgeGapService(uowFactory)

	archiveService := service.NewArchiveService(
		uowFactory,
		publisherService,
		embeddingProvider,
		cfg.App.UploadDir,
	)

	usageService := service.NewUsageService(uowFactory, int64(cfg.Ai.DailyTokenLimit))
	coachService := service.NewCoachService(
		uowFactory,
		llmProvider,
		usageService,
		sysLogger,
		cfg.Ai.CoachModel,
	)
	reportService := service.NewReportService(
		uowFactory,
		llmProvider,
		embeddingProvider,
		usageService,
		sysLogger,
		cfg.Ai.ReportModel,
	)

	tenantService := service.NewTenantService(
		uowFactory,
		emailService,
		natsPub,
		sysLogger,
		cfg.App.ClientURL,
	)
	adminUserService := service.NewAdminUserService(uowFactory)
	feedbackService := service.NewFeedbackService(uowFactory, emailService, natsPub)
	billingService := service.NewBillingService(
		uowFactory,
		natsPub,
		cfg.Billing.MidtransServerKey,
		cfg.Billing.MidtransEnv,
	)

	// 5. Controllers
	return &Container{
		AuthController:             controller.NewAuthController(authService),
		ProjectController:          controller.NewProjectController(projectService),
		IntegrationEventController: controller.NewIntegrationEventController(eventService),
		KeyDecisionController:      controller.NewKeyDecisionController(decisionService),
		KnowledgeGapController:     controller.NewKnowledgeGapController(gapService),
		ArchiveController:          controller.NewArchiveController(archiveService),
		CoachController:            controller.NewCoachController(coachService),
		ReportController:           controller.NewReportController(reportService),
		TenantController:           controller.NewTenantController(tenantService),
		UsageController:            controller.NewUsageController(usageService),
		AdminUserController:        controller.NewAdminUserController(adminUserService),
		FeedbackController:         controller.NewFeedbackController(feedbackService),
		BillingController:          controller.NewBillingController(billingService),

		ConsumerService: consumerService,
	}
}
