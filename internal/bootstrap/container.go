package bootstrap

import (
	"context"
	"log"

	"storefront-be/internal/config"
	"storefront-be/internal/controller"
	"storefront-be/internal/handler"
	"storefront-be/internal/pkg/logger"
	"storefront-be/internal/pkg/mailer"
	"storefront-be/internal/repository/memory"
	"storefront-be/internal/repository/unitofwork"
	"storefront-be/internal/service"
	"storefront-be/internal/websocket"
	"storefront-be/pkg/catalog"
	"storefront-be/pkg/chat"
	"storefront-be/pkg/intent"
	pktNats "storefront-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ProductController controller.IProductController
	ContactController controller.IContactController
	ChatbotController controller.IChatbotController
	AdminController   controller.IAdminController

	// Services
	CatalogService     service.ICatalogService
	ChatbotService     service.IChatbotService
	ConsumerService    service.IConsumerService
	CatalogBroadcaster service.ICatalogBroadcaster

	// WebSockets
	ChatStreamHandler *handler.ChatStreamHandler
	WebSocketHub      *websocket.Hub

	CatalogStore *catalog.Store
	Logger       logger.ILogger

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	chatLogger := logger.NewIsolatedLogger(cfg.App.ChatLogFilePath)

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus (in-process)
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	c := &Container{Logger: sysLogger}
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// 3. External brokers. Both are optional; the storefront runs without them.
	var eventPublisher service.EventPublisher
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS: %v (domain events disabled)", err)
	} else {
		eventPublisher = natsPub
		c.closers = append(c.closers, natsPub.Close)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v (catalog invalidation disabled)", err)
		_ = rdb.Close()
		rdb = nil
	} else {
		c.closers = append(c.closers, func() { _ = rdb.Close() })
	}

	// 4. Catalog
	c.CatalogStore = catalog.NewStore()
	domainEvents := service.NewDomainEventPublisher(eventPublisher, sysLogger)
	c.CatalogBroadcaster = service.NewRedisCatalogBroadcaster(rdb, cfg.Events.CatalogChannel, sysLogger)
	c.CatalogService = service.NewCatalogService(uowFactory, c.CatalogStore, domainEvents, c.CatalogBroadcaster, sysLogger)

	// 5. Chat
	sessionRepo := memory.NewChatSessionRepository(cfg.Chat.SessionTTL)
	c.ChatbotService = service.NewChatbotService(
		sessionRepo,
		c.CatalogStore,
		intent.NewEngine(),
		chat.TimerScheduler{},
		cfg.Chat.ReplyDelay,
		chatLogger,
	)

	// 6. Contact
	publisherService := service.NewPublisherService(cfg.Events.ContactTopic, pubSub)
	contactService := service.NewContactService(uowFactory, publisherService, domainEvents, sysLogger)
	c.ConsumerService = service.NewConsumerService(
		pubSub,
		cfg.Events.ContactTopic,
		uowFactory,
		emailService,
		cfg.SMTP.SupportInbox,
		sysLogger,
	)

	// 7. Admin
	adminService, err := service.NewAdminService(cfg.Admin.Password, cfg.Admin.JwtSecret, cfg.Admin.TokenTTL, sysLogger)
	if err != nil {
		log.Panicf("Unable to prepare admin credentials: %v", err)
	}

	// 8. Controllers
	c.ProductController = controller.NewProductController(c.CatalogService, cfg.Admin.JwtSecret)
	c.ContactController = controller.NewContactController(contactService)
	c.ChatbotController = controller.NewChatbotController(c.ChatbotService)
	c.AdminController = controller.NewAdminController(adminService, cfg.Admin.JwtSecret)

	// 9. WebSockets
	c.WebSocketHub = websocket.NewHub(c.ChatbotService, chatLogger)
	c.ChatStreamHandler = handler.NewChatStreamHandler(c.ChatbotService, c.WebSocketHub, chatLogger)

	return c
}

// Close releases broker connections and flushes the logger.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}
