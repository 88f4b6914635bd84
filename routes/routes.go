package routes

import (
	"github.com/TanthaiP001/spprosupply/configs"
	"github.com/TanthaiP001/spprosupply/controllers"
	"github.com/TanthaiP001/spprosupply/middlewares"
	"github.com/TanthaiP001/spprosupply/repository"
	"github.com/TanthaiP001/spprosupply/services"
	"github.com/TanthaiP001/spprosupply/storage"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, store storage.BlobStore, limiters *middlewares.RateLimiters) {
	r.Use(middlewares.CORSMiddleware(cfg.SiteURL))
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// ไฟล์อัปโหลดเสิร์ฟจาก disk เมื่อไม่ได้ใช้ S3
	if cfg.UploadDriver != "s3" {
		r.Static("/uploads", cfg.UploadDir)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	bannerRepo := repository.NewBannerRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTRefreshSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	productSvc := services.NewProductService(productRepo)
	categorySvc := services.NewCategoryService(categoryRepo)
	orderSvc := services.NewOrderService(orderRepo, productRepo)
	statsSvc := services.NewStatsService(db)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, cfg)
	productCtrl := controllers.NewProductController(productSvc, productRepo)
	categoryCtrl := controllers.NewCategoryController(categorySvc, categoryRepo)
	bannerCtrl := controllers.NewBannerController(bannerRepo)
	orderCtrl := controllers.NewOrderController(orderSvc, orderRepo, store, cfg)
	adminCtrl := controllers.NewAdminController(userRepo, authSvc, statsSvc, store, cfg)

	csrf := middlewares.CSRFProtection(cfg.CSRFSecret)

	api := r.Group("/api")

	// Admin (ตรวจ role จาก DB ผ่าน x-user-id)
	adminGuard := middlewares.RequireAdminHeader(db)

	// Users (สมัคร/ล็อกอินจำกัดถี่กว่ากลุ่มอื่น)
	users := api.Group("/users")
	{
		users.POST("/register", limiters.Auth, authCtrl.Register)
		users.POST("/login", limiters.Auth, authCtrl.Login)
		users.POST("/logout", limiters.Auth, authCtrl.Logout)
		users.POST("/refresh", limiters.Auth, authCtrl.Refresh)

		// Profile ต้องล็อกอินด้วย cookie
		users.GET("/profile", limiters.API, middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.GetProfile)
		users.PUT("/profile", limiters.API, middlewares.AuthMiddleware(cfg.JWTSecret), csrf, authCtrl.UpdateProfile)

		// รายชื่อสมาชิกสำหรับหลังบ้าน
		users.GET("", limiters.Admin, adminGuard, adminCtrl.ListUsers)
	}

	api.GET("/csrf-token", limiters.API, authCtrl.CSRFToken)

	// Public storefront
	pub := api.Group("", limiters.API)
	{
		pub.GET("/products", productCtrl.List)
		pub.GET("/products/highlight", productCtrl.ListHighlight)
		pub.GET("/products/recommendations", productCtrl.ListRecommendations)
		pub.GET("/products/:slug", productCtrl.DetailBySlug)
		pub.GET("/categories", categoryCtrl.List)
		pub.GET("/banners", bannerCtrl.ListActive)
	}

	// Orders ฝั่งลูกค้าเปิด POST กับ track ส่วนดูรายการและแก้สถานะเป็นของ admin
	api.POST("/orders", limiters.API, csrf, orderCtrl.Create)
	api.GET("/orders/track", limiters.API, orderCtrl.Track)
	api.GET("/orders", limiters.Admin, adminGuard, orderCtrl.AdminList)
	api.GET("/orders/:id", limiters.Admin, adminGuard, orderCtrl.AdminDetail)
	api.PUT("/orders/:id", limiters.Admin, adminGuard, orderCtrl.UpdateStatus)

	// เช็ค role จาก x-user-id (หน้าเว็บใช้ก่อนเข้า /admin)
	api.GET("/admin/check-role", limiters.API, adminCtrl.CheckRole)

	// สร้าง admin ด้วย secret เฉพาะ ไม่ผูกกับ session
	api.POST("/admin/create-admin", limiters.Auth, adminCtrl.CreateAdmin)

	admin := api.Group("/admin", limiters.Admin, adminGuard)
	{
		admin.GET("/products", productCtrl.AdminList)
		admin.POST("/products", productCtrl.Create)
		admin.PUT("/products/:id", productCtrl.Update)
		admin.DELETE("/products/:id", productCtrl.Delete)

		admin.GET("/categories", categoryCtrl.AdminList)
		admin.POST("/categories", categoryCtrl.Create)
		admin.PUT("/categories/:id", categoryCtrl.Update)
		admin.DELETE("/categories/:id", categoryCtrl.Delete)

		admin.GET("/banners", bannerCtrl.AdminList)
		admin.POST("/banners", bannerCtrl.Create)
		admin.PUT("/banners/:id", bannerCtrl.Update)
		admin.DELETE("/banners/:id", bannerCtrl.Delete)

		admin.GET("/orders/export", orderCtrl.Export)

		admin.GET("/statistics", adminCtrl.Statistics)
	}

	api.POST("/admin/upload", limiters.Upload, adminGuard, adminCtrl.Upload)
}
