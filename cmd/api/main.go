package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"meditranslate/internal/config"
	"meditranslate/internal/db"
	apihttp "meditranslate/internal/http"
	"meditranslate/internal/llm"
	"meditranslate/internal/repository"
	"meditranslate/internal/service"
	"meditranslate/internal/storage"
	"meditranslate/internal/transcribe"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	if err := db.Ping(ctx, pool); err != nil {
		logger.Fatal("db ping", zap.Error(err))
	}

	conversationRepo := repository.NewPgConversationRepository(pool)
	messageRepo := repository.NewPgMessageRepository(pool)

	llmClient := llm.NewHTTPClient(cfg.GroqBaseURL, cfg.GroqAPIKey, cfg.ChatModel, logger)
	transcriber := transcribe.NewHTTPClient(cfg.GroqBaseURL, cfg.GroqAPIKey, cfg.WhisperModel)
	store := storage.NewSupabaseClient(cfg.SupabaseURL, cfg.SupabaseKey, cfg.StorageBucket)

	var translationCache service.TranslationCache
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			translationCache = service.NewRedisTranslationCache(redisClient, time.Duration(cfg.TranslationCacheTTLMins)*time.Minute)
		}
		cancel()
	}

	translationServ := service.NewTranslationService(llmClient, translationCache)
	transcriptionServ := service.NewTranscriptionService(transcriber)
	conversationServ := service.NewConversationService(conversationRepo)
	messageServ := service.NewMessageService(messageRepo, store, translationServ, transcriptionServ)
	summaryServ := service.NewSummaryService(messageRepo, llmClient)
	audioServ := service.NewAudioService(store, transcriptionServ, translationServ)
	searchServ := service.NewSearchService(messageRepo)

	convHandler := apihttp.NewConversationHandler(logger, conversationServ)
	msgHandler := apihttp.NewMessageHandler(logger, messageServ, summaryServ)
	audioHandler := apihttp.NewAudioHandler(logger, audioServ, transcriptionServ)
	translateHandler := apihttp.NewTranslateHandler(logger, translationServ)
	searchHandler := apihttp.NewSearchHandler(logger, searchServ)

	router := apihttp.NewRouter(logger, cfg.CORSOrigins, convHandler, msgHandler, audioHandler, translateHandler, searchHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
