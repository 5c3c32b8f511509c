package routes

import (
	"net/http"
	"path/filepath"

	"github.com/NemesisID/PreviewOnly-Dash/configs"
	"github.com/NemesisID/PreviewOnly-Dash/controllers"
	"github.com/NemesisID/PreviewOnly-Dash/middlewares"
	"github.com/NemesisID/PreviewOnly-Dash/pkg/maplink"
	"github.com/NemesisID/PreviewOnly-Dash/pkg/storage"
	"github.com/NemesisID/PreviewOnly-Dash/repository"
	"github.com/NemesisID/PreviewOnly-Dash/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps are the outside-world pieces the routes need; tests swap Store and Resolver.
type Deps struct {
	DB       *gorm.DB
	Config   *configs.Config
	Store    storage.Store
	Resolver services.CoordinateResolver
}

func DefaultDeps(db *gorm.DB, cfg *configs.Config) Deps {
	return Deps{
		DB:       db,
		Config:   cfg,
		Store:    storage.NewLocalStore(cfg.UploadDir),
		Resolver: maplink.NewResolver(cfg.MapsResolveTimeout),
	}
}

func RegisterRoutes(r *gin.Engine, d Deps) error {
	cfg := d.Config

	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	// uploaded product/outlet images
	r.Static("/uploads", filepath.Join(cfg.UploadDir, "uploads"))

	// Repositories
	productRepo := repository.NewProductRepository(d.DB)
	outletRepo := repository.NewOutletRepository(d.DB)
	orderRepo := repository.NewOrderRepository(d.DB)
	userRepo := repository.NewUserRepository(d.DB)

	// Services
	authz, err := services.NewAuthorizationService()
	if err != nil {
		return err
	}
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	productSvc := services.NewProductService(productRepo, d.Store)
	outletSvc := services.NewOutletService(outletRepo, d.Store, d.Resolver)
	orderSvc := services.NewOrderService(d.DB, orderRepo, productRepo)
	dashSvc := services.NewDashboardService(productRepo, outletRepo, orderRepo, cfg.Location)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	productCtrl := controllers.NewProductController(productSvc)
	outletCtrl := controllers.NewOutletController(outletSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, cfg.Location, cfg.TrackingBaseURL)
	dashCtrl := controllers.NewDashboardController(dashSvc)

	can := func(resource, action string) gin.HandlerFunc {
		return middlewares.RequirePermission(authz, resource, action)
	}

	api := r.Group("/api")

	// Auth (public)
	api.POST("/auth/login", authCtrl.Login)

	// everything below needs a token
	p := api.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	p.GET("/auth/me", authCtrl.Me)

	p.GET("/dashboard", can(services.ResDashboard, services.ActRead), dashCtrl.Summary)

	products := p.Group("/products")
	{
		products.GET("", can(services.ResProducts, services.ActRead), productCtrl.List)
		products.GET("/categories", can(services.ResProducts, services.ActRead), productCtrl.Categories)
		products.GET("/:id", can(services.ResProducts, services.ActRead), productCtrl.Detail)
		products.POST("", can(services.ResProducts, services.ActWrite), productCtrl.Create)
		products.PUT("/:id", can(services.ResProducts, services.ActWrite), productCtrl.Update)
		products.DELETE("/:id", can(services.ResProducts, services.ActDelete), productCtrl.Delete)
	}

	outlets := p.Group("/outlets")
	{
		outlets.GET("", can(services.ResOutlets, services.ActRead), outletCtrl.List)
		outlets.GET("/types", can(services.ResOutlets, services.ActRead), outletCtrl.Types)
		outlets.GET("/:id", can(services.ResOutlets, services.ActRead), outletCtrl.Detail)
		outlets.POST("", can(services.ResOutlets, services.ActWrite), outletCtrl.Create)
		outlets.PUT("/:id", can(services.ResOutlets, services.ActWrite), outletCtrl.Update)
		outlets.DELETE("/:id", can(services.ResOutlets, services.ActDelete), outletCtrl.Delete)
	}

	orders := p.Group("/orders")
	{
		orders.GET("", can(services.ResOrders, services.ActRead), orderCtrl.List)
		orders.POST("", can(services.ResOrders, services.ActWrite), orderCtrl.Create)
		orders.POST("/import", can(services.ResOrders, services.ActWrite), orderCtrl.Import)
		orders.GET("/export", can(services.ResOrders, services.ActExport), orderCtrl.Export)
		orders.GET("/:id", can(services.ResOrders, services.ActRead), orderCtrl.Detail)
		orders.PATCH("/:id/status", can(services.ResOrders, services.ActTransition), orderCtrl.UpdateStatus)
		orders.DELETE("/:id", can(services.ResOrders, services.ActDelete), orderCtrl.Delete)
	}

	return nil
}
