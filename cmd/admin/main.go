package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/aslnygz/ygz/internal/board"
	"github.com/aslnygz/ygz/internal/storage"
)

func env(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func openStore() *board.Store {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		env("DB_HOST", "localhost"),
		env("DB_USER", "user"),
		env("DB_PASSWORD", "password"),
		env("DB_NAME", "complaintboard"),
		env("DB_PORT", "5432"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     env("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	storageSvc := storage.NewStorageService(db, rdb)
	settings, err := storageSvc.GetSettings()
	if err != nil {
		log.Fatalf("failed to load board settings: %v", err)
	}

	store := board.NewStore(storageSvc, settings)
	store.Load()
	return store
}

func parseID(arg string) int {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		fmt.Println("Invalid complaint ID. Please provide a positive integer.")
		os.Exit(1)
	}
	return id
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		fmt.Println("Commands: list-pending | approve <id> | reject <id> | delete <id>")
		os.Exit(1)
	}

	store := openStore()
	command := os.Args[1]

	switch command {
	case "list-pending":
		pending := store.ListPending()
		if len(pending) == 0 {
			fmt.Println("No complaints awaiting approval.")
			return
		}
		for _, c := range pending {
			fmt.Printf("#%d  %s: %s (%s, by %s, %s)\n",
				c.ID, c.Brand, c.Title, c.Category, c.UserID, c.Date.Format("2006-01-02"))
		}
	case "approve":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin approve <complaint_id>")
			os.Exit(1)
		}
		id := parseID(os.Args[2])
		if err := store.Approve(id); err != nil {
			log.Fatalf("Error approving complaint: %v", err)
		}
		fmt.Printf("Complaint %d has been approved.\n", id)
	case "reject":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin reject <complaint_id>")
			os.Exit(1)
		}
		id := parseID(os.Args[2])
		if err := store.Reject(id); err != nil {
			log.Fatalf("Error rejecting complaint: %v", err)
		}
		fmt.Printf("Complaint %d has been rejected and removed.\n", id)
	case "delete":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin delete <complaint_id>")
			os.Exit(1)
		}
		id := parseID(os.Args[2])
		if err := store.Delete(id); err != nil {
			log.Fatalf("Error deleting complaint: %v", err)
		}
		fmt.Printf("Complaint %d has been deleted.\n", id)
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}
