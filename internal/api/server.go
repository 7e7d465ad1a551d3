package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/syncbazar/syncbazar-api/docs"
	v1 "github.com/syncbazar/syncbazar-api/internal/api/handler/v1"
	"github.com/syncbazar/syncbazar-api/internal/api/middleware"
	"github.com/syncbazar/syncbazar-api/internal/config"
	"github.com/syncbazar/syncbazar-api/internal/repository"
	"github.com/syncbazar/syncbazar-api/internal/repository/dao"
	"github.com/syncbazar/syncbazar-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	userHandler := s.initUserHandler(db)
	itemHandler := s.initItemHandler(db)
	shopHandler := s.initShopHandler(db)
	analyticsHandler := s.initAnalyticsHandler(db)
	s.MountHandlers(authHandler, userHandler, itemHandler, shopHandler, analyticsHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initItemHandler(db *gorm.DB) *v1.ItemHandler {
	itemDAO := dao.NewItemDAO(db)
	repo := repository.NewItemRepository(itemDAO)
	activityRepo := repository.NewActivityRepository(dao.NewActivityDAO(db))
	svc := service.NewInventoryService(repo, activityRepo)
	handler := v1.NewItemHandler(svc)

	return handler
}

func (s *Server) initShopHandler(db *gorm.DB) *v1.ShopHandler {
	shopDAO := dao.NewShopDAO(db)
	repo := repository.NewShopRepository(shopDAO)
	activityRepo := repository.NewActivityRepository(dao.NewActivityDAO(db))
	svc := service.NewShopService(repo, activityRepo)
	handler := v1.NewShopHandler(svc)

	return handler
}

func (s *Server) initAnalyticsHandler(db *gorm.DB) *v1.AnalyticsHandler {
	itemRepo := repository.NewItemRepository(dao.NewItemDAO(db))
	shopRepo := repository.NewShopRepository(dao.NewShopDAO(db))
	activityRepo := repository.NewActivityRepository(dao.NewActivityDAO(db))
	svc := service.NewAnalyticsService(itemRepo, shopRepo, activityRepo)
	handler := v1.NewAnalyticsHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(authHandler *v1.AuthHandler, userHandler *v1.UserHandler, itemHandler *v1.ItemHandler, shopHandler *v1.ShopHandler, analyticsHandler *v1.AnalyticsHandler) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	users := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		users.GET("/users/:userID", userHandler.HandleGetUser)
	}

	items := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		items.GET("/items", itemHandler.HandleListItems)
		items.POST("/items", itemHandler.HandleAddItem)
		items.GET("/items/search", itemHandler.HandleSearchItems)
		items.POST("/items/validate", itemHandler.HandleValidateItem)
		items.PUT("/items/:itemID", itemHandler.HandleUpdateItem)
		items.DELETE("/items/:itemID", itemHandler.HandleDeleteItem)
		items.GET("/search", itemHandler.HandleNetworkSearch)
	}

	shops := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		shops.GET("/shops", shopHandler.HandleListShops)
		shops.POST("/shops", shopHandler.HandleAddShop)
		shops.GET("/shops/search", shopHandler.HandleSearchShops)
		shops.PUT("/shops/:shopID", shopHandler.HandleUpdateShop)
		shops.DELETE("/shops/:shopID", shopHandler.HandleDeleteShop)
	}

	analytics := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		analytics.GET("/dashboard", analyticsHandler.HandleDashboard)
		analytics.GET("/reports/inventory", analyticsHandler.HandleInventoryReport)
		analytics.GET("/activity", analyticsHandler.HandleRecentActivity)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "SyncBazar API"
	docs.SwaggerInfo.Description = "Inventory catalog and shop directory API."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
