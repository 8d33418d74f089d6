package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-livraria/internal/adapter/api/controller"
	"github.com/hugohenrick/pdv-livraria/internal/adapter/api/route"
	"github.com/hugohenrick/pdv-livraria/internal/adapter/repository"
	"github.com/hugohenrick/pdv-livraria/internal/infrastructure/database"
	"github.com/hugohenrick/pdv-livraria/internal/service/salesync"
	"github.com/hugohenrick/pdv-livraria/pkg/logger"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// App representa a aplicação e suas dependências
type App struct {
	router *gin.Engine
	db     *database.PostgresDB
	logger logger.Logger

	saleRepository     *repository.SaleRepository
	productRepository  *repository.ProductRepository
	customerRepository *repository.CustomerRepository
	outboxRepository   *repository.OutboxRepository
	auditRepository    *repository.AuditRepository
	branchRepository   *repository.BranchRepository
	userRepository     *repository.UserRepository

	syncService *salesync.Service

	saleController     *controller.SaleController
	productController  *controller.ProductController
	customerController *controller.CustomerController
	outboxController   *controller.OutboxController
	auditController    *controller.AuditController
	branchController   *controller.BranchController
	userController     *controller.UserController
}

// NewApp cria uma nova instância do aplicativo
func NewApp(log logger.Logger) (*App, error) {
	// Configurar banco de dados
	config := database.NewPostgresConfigFromEnv()
	db, err := database.NewPostgresDB(config)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar com o banco de dados: %w", err)
	}

	pool := db.Pool()

	// Criar repositórios
	productRepo := repository.NewProductRepository(pool)
	outboxRepo := repository.NewOutboxRepository(pool)
	auditRepo := repository.NewAuditRepository(pool)
	saleRepo := repository.NewSaleRepository(pool, productRepo, outboxRepo)
	customerRepo := repository.NewCustomerRepository(pool, auditRepo)
	branchRepo := repository.NewBranchRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	// Criar serviços
	syncService := salesync.NewService(saleRepo, log)

	// Criar controllers
	saleController := controller.NewSaleController(syncService, saleRepo, log)
	productController := controller.NewProductController(productRepo, log)
	customerController := controller.NewCustomerController(customerRepo, auditRepo, log)
	outboxController := controller.NewOutboxController(outboxRepo, log)
	auditController := controller.NewAuditController(auditRepo, log)
	branchController := controller.NewBranchController(branchRepo, log)
	userController := controller.NewUserController(userRepo, log)

	// Configurar router
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	return &App{
		router:             router,
		db:                 db,
		logger:             log,
		saleRepository:     saleRepo,
		productRepository:  productRepo,
		customerRepository: customerRepo,
		outboxRepository:   outboxRepo,
		auditRepository:    auditRepo,
		branchRepository:   branchRepo,
		userRepository:     userRepo,
		syncService:        syncService,
		saleController:     saleController,
		productController:  productController,
		customerController: customerController,
		outboxController:   outboxController,
		auditController:    auditController,
		branchController:   branchController,
		userController:     userController,
	}, nil
}

// SetupRoutes configura as rotas da aplicação
func (a *App) SetupRoutes(basePath string) {
	api := a.router.Group(basePath)

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	route.RegisterSaleRoutes(api, a.saleController)
	route.RegisterProductRoutes(api, a.productController)
	route.RegisterCustomerRoutes(api, a.customerController)
	route.RegisterOutboxRoutes(api, a.outboxController)
	route.RegisterAuditRoutes(api, a.auditController)
	route.RegisterBranchRoutes(api, a.branchController)
	route.RegisterUserRoutes(api, a.userController)

	// Documentação Swagger
	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// Start inicia o servidor HTTP
func (a *App) Start(port string) error {
	a.logger.Info("iniciando servidor HTTP", "port", port)
	return a.router.Run(":" + port)
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
