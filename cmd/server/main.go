package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/aslnygz/ygz/internal/api/handler"
	"github.com/aslnygz/ygz/internal/board"
	"github.com/aslnygz/ygz/internal/localization"
	"github.com/aslnygz/ygz/internal/metrics"
	"github.com/aslnygz/ygz/internal/models"
	"github.com/aslnygz/ygz/internal/notify"
	"github.com/aslnygz/ygz/internal/storage"
)

func env(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func setupDependencies() (*gorm.DB, *redis.Client) {
	// 1. PostgreSQL (durable mirror of the complaint blob + board settings)
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		env("DB_HOST", "localhost"),
		env("DB_USER", "user"),
		env("DB_PASSWORD", "password"),
		env("DB_NAME", "complaintboard"),
		env("DB_PORT", "5432"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	// 2. Redis (primary copy of the complaint blob)
	rdb := redis.NewClient(&redis.Options{
		Addr:     env("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	// 3. Migrations
	err = db.AutoMigrate(
		&models.BoardBlob{},
		&models.BoardSettings{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func main() {
	log.Println("Starting Complaint Board Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	// 1. Storage and board state
	db, rdb := setupDependencies()
	s := storage.NewStorageService(db, rdb)

	settings, err := s.GetSettings()
	if err != nil {
		log.Fatalf("Failed to load board settings: %v", err)
	}

	store := board.NewStore(s, settings)
	store.Load()

	// 2. Localization and moderation alerts
	localizer, err := localization.NewLocalizer("internal/localization")
	if err != nil {
		log.Fatalf("Failed to create localizer: %v", err)
	}

	var notifier notify.Notifier = notify.NopNotifier{}
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		adminChatID, err := strconv.ParseInt(os.Getenv("ADMIN_CHAT_ID"), 10, 64)
		if err != nil {
			log.Fatalf("ADMIN_CHAT_ID must be set with TELEGRAM_BOT_TOKEN: %v", err)
		}
		botService, err := notify.NewBotService(token, adminChatID, localizer, env("BOARD_LANG", localization.DefaultLang))
		if err != nil {
			log.Fatalf("Failed to start Telegram notifier: %v", err)
		}
		notifier = botService
	}

	// 3. Gin routing
	r := gin.Default()
	h := handler.NewHandler(store, metrics.NewAggregator(), localizer, notifier)

	r.GET("/anonid", h.GetAnonID)

	r.POST("/complaints", h.SubmitComplaint)
	r.GET("/complaints", h.ListComplaints)
	r.GET("/complaints/:id", h.GetComplaint)
	r.POST("/complaints/:id/comments", h.AddComment)
	r.POST("/complaints/:id/like", h.LikeComplaint)
	r.POST("/complaints/:id/dislike", h.DislikeComplaint)

	r.GET("/admin/complaints/pending", h.ListPending)
	r.POST("/admin/complaints/:id/approve", h.ApproveComplaint)
	r.POST("/admin/complaints/:id/reject", h.RejectComplaint)
	r.PATCH("/admin/complaints/:id", h.UpdateComplaint)
	r.DELETE("/admin/complaints/:id", h.DeleteComplaint)

	r.GET("/brands/rankings", h.GetBrandRankings)
	r.GET("/brands/top", h.GetTopBrands)
	r.GET("/brands/leaders", h.GetCategoryLeaders)
	r.GET("/brands/:name", h.GetBrandProfile)
	r.GET("/stats/summary", h.GetSummary)

	server := &http.Server{
		Addr:           ":" + env("PORT", "8080"),
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
