package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripweaver/cmd/fx/cache_fx"
	"tripweaver/cmd/fx/controllers_fx"
	"tripweaver/cmd/fx/db_fx"
	"tripweaver/cmd/fx/itinerary_fx"
	"tripweaver/cmd/fx/providers_fx"
	"tripweaver/cmd/fx/recommendation_fx"
	"tripweaver/internal/api/controllers"
	"tripweaver/internal/config"
	"tripweaver/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		fx.Provide(config.NewFromEnv),
		db_fx.Module,
		cache_fx.Module,
		providers_fx.Module,
		recommendation_fx.Module,
		itinerary_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(itineraryController *controllers.ItineraryController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, itineraryController)

	return r
}

func RegisterRoutes(r *gin.Engine, itineraryController *controllers.ItineraryController) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	itineraries := r.Group("/itineraries")
	itineraries.POST("", itineraryController.GenerateItinerary)
	itineraries.GET("/:id", itineraryController.GetItineraryByID)

	saved := r.Group("/itineraries")
	saved.Use(middleware.JWTAuthMiddleware())
	saved.GET("", itineraryController.ListItineraries)
}
