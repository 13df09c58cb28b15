package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/bluemonkey003/lunchroom/internal/realtime"
	"github.com/bluemonkey003/lunchroom/internal/server/http/handlers"
	"github.com/bluemonkey003/lunchroom/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.LunchFacade, hub *realtime.Hub, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/api/ws"})))

	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	itemHandler := handlers.NewItemHandler(facade)
	notificationHandler := handlers.NewNotificationHandler(facade)
	restaurantHandler := handlers.NewRestaurantHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	api := engine.Group("/api")
	api.GET("/health", healthHandler.Check)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/ws", realtime.NewHandler(hub, facade, logger))

	auth := api.Group("")
	auth.Use(middleware.AuthRequired(facade))
	auth.GET("/auth/me", authHandler.Me)
	auth.GET("/users", authHandler.ListUsers)
	auth.GET("/users/:id", authHandler.GetUser)
	auth.PATCH("/users/:id", authHandler.UpdateUser)
	auth.PATCH("/users/:id/role", authHandler.SetRole)
	auth.PATCH("/users/:id/status", authHandler.SetStatus)
	auth.POST("/users/:id/reset-password", authHandler.ResetPassword)

	auth.GET("/restaurants", restaurantHandler.List)
	auth.POST("/restaurants", restaurantHandler.Create)
	auth.GET("/restaurants/:id", restaurantHandler.Get)
	auth.PATCH("/restaurants/:id", restaurantHandler.Update)
	auth.DELETE("/restaurants/:id", restaurantHandler.Delete)

	auth.GET("/orders", orderHandler.List)
	auth.POST("/orders", orderHandler.Create)
	auth.GET("/orders/:id", orderHandler.Get)
	auth.PATCH("/orders/:id/close", orderHandler.Close)
	auth.POST("/orders/:id/items", itemHandler.Create)
	auth.PATCH("/orders/:id/items/:itemId", itemHandler.Update)
	auth.DELETE("/orders/:id/items/:itemId", itemHandler.Delete)

	auth.GET("/notifications", notificationHandler.List)
	auth.PATCH("/notifications/read-all", notificationHandler.MarkAllRead)
	auth.PATCH("/notifications/:id/read", notificationHandler.MarkRead)

	return engine
}
