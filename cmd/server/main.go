package main

import (
	"fmt"
	"log"
	"net/http"

	"gameshelf/backend/internal/config"
	"gameshelf/backend/internal/database"
	"gameshelf/backend/internal/handler"
	"gameshelf/backend/internal/repository"
	"gameshelf/backend/internal/service"
	"gameshelf/backend/internal/storage"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "gameshelf/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Gameshelf API
// @version         1.0
// @description     This is the API for tracking a personal video-game collection.
// @host            localhost:8080
// @BasePath        /api/v1
func main() {
	cfg := config.LoadConfig()

	db := database.Connect(cfg.DatabaseURL)

	store, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to prepare upload directory: %v", err)
	}

	gameService := service.NewGameService(repository.NewGameRepository(db), store)
	gameHandler := handler.NewGameHandler(gameService)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Uploaded cover images
	router.Static("/images", cfg.UploadDir)

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		gameRoutes := apiV1.Group("/games")
		{
			gameRoutes.POST("", gameHandler.CreateGame)
			gameRoutes.GET("", gameHandler.GetGames)
			gameRoutes.GET("/:id", gameHandler.GetGameByID)
			gameRoutes.PUT("/:id", gameHandler.UpdateGame)
			gameRoutes.DELETE("/:id", gameHandler.DeleteGame)
		}
	}

	fmt.Println("Server is running on :" + cfg.Port)
	fmt.Println("Swagger UI is available at http://localhost:" + cfg.Port + "/swagger/index.html")
	log.Fatal(router.Run(":" + cfg.Port))
}
