package provider

import (
	"github.com/mypham-next/internal/cache"
	"github.com/mypham-next/internal/config"
	"github.com/mypham-next/internal/logger"
	"github.com/mypham-next/internal/models"
	"github.com/mypham-next/internal/queue"
	"github.com/mypham-next/internal/repository"
	"github.com/mypham-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminRepo     repository.AdminRepository
	UserRepo      repository.UserRepository
	ProductRepo   repository.ProductRepository
	FacetRepo     repository.FacetRepository
	CartRepo      repository.CartRepository
	OrderRepo     repository.OrderRepository
	BookingRepo   repository.BookingRepository
	ContactRepo   repository.ContactRepository
	DashboardRepo repository.DashboardRepository

	// Services
	AuthService      *service.AuthService
	UserAuthService  *service.UserAuthService
	EmailService     *service.EmailService
	ProductService   *service.ProductService
	CatalogService   *service.CatalogService
	CartService      *service.CartService
	OrderService     *service.OrderService
	BookingService   *service.BookingService
	ContactService   *service.ContactService
	DashboardService *service.DashboardService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.UserRepo = repository.NewUserRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.FacetRepo = repository.NewFacetRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.BookingRepo = repository.NewBookingRepository(db)
	c.ContactRepo = repository.NewContactRepository(db)
	c.DashboardRepo = repository.NewDashboardRepository(db)
}

func (c *Container) initServices() {
	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo, c.ProductRepo)
	c.ProductService = service.NewProductService(c.ProductRepo)
	c.CatalogService = service.NewCatalogService(c.FacetRepo)
	c.CartService = service.NewCartService(c.Config, c.CartRepo, c.ProductRepo)
	c.OrderService = service.NewOrderService(c.Config, c.OrderRepo, c.CartRepo, c.ProductRepo, c.QueueClient)
	c.BookingService = service.NewBookingService(c.BookingRepo, c.QueueClient)
	c.ContactService = service.NewContactService(c.ContactRepo)
	c.DashboardService = service.NewDashboardService(c.Config, c.DashboardRepo)
}

// Close 释放容器资源
func (c *Container) Close() {
	if c == nil {
		return
	}
	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			logger.Warnw("provider_close_queue_client_failed", "error", err)
		}
	}
}
