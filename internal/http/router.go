package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	corsOrigins []string,
	convH *ConversationHandler,
	msgH *MessageHandler,
	audioH *AudioHandler,
	translateH *TranslateHandler,
	searchH *SearchHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y CORS con allowlist configurable.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "MediTranslate API running"})
	})

	api := r.Group("/api")

	conversations := api.Group("/conversations")
	conversations.POST("", convH.Create)
	conversations.GET("", convH.List)
	conversations.GET("/:id", convH.Get)
	conversations.PATCH("/:id", convH.Update)
	conversations.DELETE("/:id", convH.Delete)
	conversations.GET("/:id/messages", msgH.List)
	conversations.POST("/:id/messages", msgH.CreateText)
	conversations.POST("/:id/audio", msgH.CreateAudio)
	conversations.POST("/:id/summary", msgH.Summarize)

	api.GET("/search", searchH.Search)
	api.POST("/translate", translateH.Translate)

	audio := api.Group("/audio")
	audio.POST("/transcribe", audioH.Transcribe)
	audio.POST("/process", audioH.Process)
	audio.POST("/upload", audioH.Upload)
	audio.POST("/transcribe-translate", translateH.TranscribeTranslate)

	r.GET("/test/supabase", convH.Probe)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
