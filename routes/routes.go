package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"paypya-resto/config"
	"paypya-resto/controllers"
	"paypya-resto/middleware"
	"paypya-resto/models"
	"paypya-resto/repositories"
	"paypya-resto/services"
)

func SetupRoutes(router *gin.Engine) {
	store := models.NewKVStore(config.RedisClient)

	carts := services.NewCartService(store)
	history := services.NewHistoryService(store)
	sessions := services.NewSessionService(store)
	catalog := services.NewCatalogService()
	invoices := services.NewInvoiceService(config.AppConfig.StaffWhatsApp)

	email, err := models.NewEmailService()
	if err != nil {
		log.Printf("Email not configured, order confirmations disabled: %v", err)
		email = nil
	}

	orderRepo := repositories.NewOrderRepository()
	checkout := services.NewCheckoutService(orderRepo, carts, history, invoices, email)

	authCtrl := controllers.NewAuthController()
	catalogCtrl := controllers.NewCatalogController(catalog)
	cartCtrl := controllers.NewCartController(carts, catalog)
	checkoutCtrl := controllers.NewCheckoutController(checkout)
	historyCtrl := controllers.NewHistoryController(history)
	invoiceCtrl := controllers.NewInvoiceController(history, invoices)
	sessionCtrl := controllers.NewSessionController(sessions)

	adminProductCtrl := controllers.NewAdminProductController(catalog)
	adminCategoryCtrl := controllers.NewAdminCategoryController(catalog)
	adminOrderCtrl := controllers.NewAdminOrderController(orderRepo)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)

	storefront := router.Group("/")
	storefront.Use(middleware.DeviceMiddleware())
	{
		storefront.GET("/categories", catalogCtrl.GetAllCategories)
		storefront.GET("/products", catalogCtrl.GetProducts)
		storefront.GET("/products/:id", catalogCtrl.GetProductByID)

		storefront.GET("/session", sessionCtrl.GetSession)
		storefront.PATCH("/session", sessionCtrl.UpdateSession)

		storefront.GET("/cart", cartCtrl.GetCart)
		storefront.POST("/cart/items", cartCtrl.AddItem)
		storefront.PATCH("/cart/items/:id", cartCtrl.UpdateItem)
		storefront.DELETE("/cart/items/:id", cartCtrl.RemoveItem)

		storefront.POST("/checkout", checkoutCtrl.Checkout)

		storefront.GET("/history", historyCtrl.GetHistory)
		storefront.GET("/history/:orderNumber", historyCtrl.GetByOrderNumber)

		storefront.GET("/invoice/:orderNumber", invoiceCtrl.GetInvoice)
		storefront.GET("/invoice/:orderNumber/pdf", invoiceCtrl.DownloadPDF)
		storefront.GET("/invoice/:orderNumber/share", invoiceCtrl.Share)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/dashboard", adminOrderCtrl.GetDashboard)

		admin.GET("/products", adminProductCtrl.GetAllProducts)
		admin.POST("/products", adminProductCtrl.CreateProduct)
		admin.PATCH("/products/:id", adminProductCtrl.UpdateProduct)
		admin.DELETE("/products/:id", adminProductCtrl.DeleteProduct)

		admin.GET("/categories", catalogCtrl.GetAllCategories)
		admin.POST("/categories", adminCategoryCtrl.CreateCategory)
		admin.PATCH("/categories/:id", adminCategoryCtrl.UpdateCategory)
		admin.DELETE("/categories/:id", adminCategoryCtrl.DeleteCategory)

		admin.GET("/orders", adminOrderCtrl.GetAllOrders)
		admin.GET("/orders/:id", adminOrderCtrl.GetOrderByID)
		admin.PATCH("/orders/:id/status", adminOrderCtrl.UpdateOrderStatus)
		admin.PATCH("/orders/:id/payment-status", adminOrderCtrl.UpdatePaymentStatus)
		admin.DELETE("/orders/:id", adminOrderCtrl.DeleteOrder)
	}

	router.Static("/uploads", "./uploads")
}
