package main

import (
	"html/template"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"paypya-resto/config"
	_ "paypya-resto/docs"
	"paypya-resto/middleware"
	"paypya-resto/routes"
	"paypya-resto/utils"
)

// @title PAYPYA Cafe & Resto API
// @version 1.0
// @description Ordering storefront and back-office API for PAYPYA Cafe & Resto
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.ConnectDB()
	defer config.CloseDB()

	config.InitRedis()
	defer config.CloseRedis()

	if err := os.MkdirAll(config.AppConfig.UploadDir, os.ModePerm); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	router := gin.Default()
	router.SetFuncMap(template.FuncMap{"formatIDR": utils.FormatIDR})
	router.LoadHTMLGlob("templates/*")
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
