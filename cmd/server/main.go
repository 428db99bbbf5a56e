package main

import (
	_ "embed"
	"fmt"
	"net/http"
	"strings"
	"time"

	"echoforge/internal/api"
	"echoforge/internal/config"
	"echoforge/internal/model"
	"echoforge/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

//go:embed web/dist/index.html
var indexHTML string

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.ParseConfig()
	if err != nil {
		logrus.WithError(err).Error("failed to parse config")
		return
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.InfoLevel)

	repo, err := model.InitRepository(&cfg)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise repository")
		return
	}

	store, err := storage.NewStorage(cfg)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise storage")
		return
	}

	httpHandler, err := api.NewHTTPHandler(cfg, repo, store)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise http handler")
		return
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(LoggingMiddleware())
	r.Use(CORSMiddleware())
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	apiGroup := r.Group("/api")

	authGroup := apiGroup.Group("/auth")
	authGroup.GET("/status", httpHandler.AuthStatus)
	authGroup.POST("/register", httpHandler.Register)
	authGroup.POST("/login", httpHandler.Login)
	authGroup.GET("/me", httpHandler.AuthMiddleware(), httpHandler.Me)

	protected := apiGroup.Group("")
	protected.Use(httpHandler.AuthMiddleware())

	protected.GET("/platforms", httpHandler.ListPlatforms)

	protected.GET("/sources", httpHandler.ListContentSources)
	protected.POST("/sources", httpHandler.CreateContentSource)
	protected.GET("/sources/:id", httpHandler.GetContentSource)
	protected.PATCH("/sources/:id", httpHandler.UpdateContentSource)
	protected.DELETE("/sources/:id", httpHandler.DeleteContentSource)

	protected.GET("/voices", httpHandler.ListBrandVoices)
	protected.POST("/voices", httpHandler.CreateBrandVoice)
	protected.GET("/voices/default", httpHandler.GetDefaultBrandVoice)
	protected.GET("/voices/:id", httpHandler.GetBrandVoice)
	protected.PATCH("/voices/:id", httpHandler.UpdateBrandVoice)
	protected.DELETE("/voices/:id", httpHandler.DeleteBrandVoice)

	protected.POST("/generate", httpHandler.Generate)
	protected.GET("/generate/events", httpHandler.StreamGenerationEvents)
	protected.GET("/generated", httpHandler.ListGeneratedContents)
	protected.GET("/generated/:id", httpHandler.GetGeneratedContent)
	protected.PATCH("/generated/:id", httpHandler.UpdateGeneratedContent)
	protected.DELETE("/generated/:id", httpHandler.DeleteGeneratedContent)
	protected.POST("/generated/:id/regenerate", httpHandler.Regenerate)
	protected.GET("/history", httpHandler.ListGenerationHistory)

	protected.GET("/credits", httpHandler.GetCredits)
	protected.GET("/credits/history", httpHandler.ListCreditUsage)

	userAdmin := protected.Group("/users")
	userAdmin.Use(httpHandler.RequireAdmin())
	userAdmin.GET("", httpHandler.ListUsers)
	userAdmin.POST("", httpHandler.CreateUser)
	userAdmin.PATCH(":id", httpHandler.UpdateUser)
	userAdmin.DELETE(":id", httpHandler.DeleteUser)
	userAdmin.POST(":id/credits", httpHandler.GrantCredits)

	if localProvider, ok := store.(storage.LocalBaseDirProvider); ok {
		publicPrefix := strings.TrimSpace(cfg.StoragePublicBaseURL)
		if publicPrefix == "" {
			publicPrefix = "/files"
		}
		if !strings.HasPrefix(publicPrefix, "http://") && !strings.HasPrefix(publicPrefix, "https://") {
			if !strings.HasPrefix(publicPrefix, "/") {
				publicPrefix = "/" + publicPrefix
			}
			r.Static(publicPrefix, localProvider.LocalBaseDir())
		}
	}

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
	})

	serverHost := fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)
	logger.WithField("host", serverHost).Info("server starting")
	httpServer := &http.Server{
		Addr:         serverHost,
		Handler:      r,
		ReadTimeout:  900 * time.Second,
		WriteTimeout: 900 * time.Second,
		IdleTimeout:  1200 * time.Second,
	}
	err = httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		logger.WithError(err).Error("server failed to start")
	}
}

// CORSMiddleware allows cross-origin requests from any client.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
		c.Header("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// LoggingMiddleware records one structured line per request.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		logrus.WithFields(logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    c.Writer.Status(),
			"duration":  duration.String(),
			"size":      c.Writer.Size(),
			"client_ip": c.ClientIP(),
		}).Info("http_request")
	}
}
