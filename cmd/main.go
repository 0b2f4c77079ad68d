package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"

	"sentracore"
	"sentracore/internal/api/handler/endpoints"
	"sentracore/internal/api/handler/middleware"
)

func main() {
	sentracore.InitConfig(".env")
	defer sentracore.CloseMongo()

	gin.SetMode(gin.ReleaseMode)
	if sentracore.GetConfig().Mode == "dev" {
		gin.SetMode(gin.DebugMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	router, err := graceful.Default(graceful.WithAddr(sentracore.GetConfig().ApiPort))
	if err != nil {
		panic(err)
	}
	defer stop()
	defer router.Close()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.RequestID())

	initAPI(router)

	sentracore.Logger.Debug().Msgf("Starting SentraCore API on %s", sentracore.GetConfig().ApiPort)
	if err = router.RunWithContext(ctx); err != nil && !errors.Is(err, context.Canceled) {
		sentracore.Logger.Fatal().Msg(err.Error())
	}
}

func initAPI(router *graceful.Graceful) {
	endpoints.HealthHandler(router)
	endpoints.SentraCoreHandler(router)
}
