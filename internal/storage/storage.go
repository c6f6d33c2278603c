package storage

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/aslnygz/ygz/internal/models"
)

// ErrBlobNotFound is returned when a key has no value in any backend.
var ErrBlobNotFound = errors.New("blob not found")

// BlobStore persists opaque JSON blobs under string keys. The board keeps its
// whole complaint set as one blob, so the interface stays deliberately small.
type BlobStore interface {
	LoadBlob(key string) (string, error)
	SaveBlob(key, value string) error
}

// SettingsStore loads and persists the board vocabulary.
type SettingsStore interface {
	GetSettings() (*models.BoardSettings, error)
}

// Service implements BlobStore and SettingsStore over Redis and PostgreSQL.
// Redis is the primary copy (fast read on every board load), PostgreSQL keeps
// a durable mirror row so a flushed cache does not lose the board.
type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// LoadBlob reads a blob from Redis, falling back to the PostgreSQL mirror when
// the key is absent there. ErrBlobNotFound means both backends are empty.
func (s *Service) LoadBlob(key string) (string, error) {
	if s.Redis != nil {
		value, err := s.Redis.Get(s.Ctx, key).Result()
		if err == nil {
			return value, nil
		}
		if !errors.Is(err, redis.Nil) {
			log.Printf("ERROR: Redis read for key %s failed, trying mirror: %v", key, err)
		}
	}

	if s.DB == nil {
		return "", ErrBlobNotFound
	}

	var blob models.BoardBlob
	err := s.DB.First(&blob, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrBlobNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to load blob %s from mirror: %w", key, err)
	}
	return blob.Value, nil
}

// SaveBlob writes a blob to Redis and mirrors it to PostgreSQL. A mirror
// failure is logged but not fatal as long as the primary write succeeded.
func (s *Service) SaveBlob(key, value string) error {
	var primaryErr error
	if s.Redis != nil {
		primaryErr = s.Redis.Set(s.Ctx, key, value, 0).Err()
		if primaryErr != nil {
			log.Printf("ERROR: Redis write for key %s failed: %v", key, primaryErr)
		}
	}

	if s.DB != nil {
		blob := models.BoardBlob{Key: key, Value: value}
		if err := s.DB.Save(&blob).Error; err != nil {
			log.Printf("ERROR: Failed to mirror blob %s to PostgreSQL: %v", key, err)
			if primaryErr != nil || s.Redis == nil {
				return fmt.Errorf("failed to save blob %s: %w", key, err)
			}
		}
	}

	return primaryErr
}

// GetSettings returns the board vocabulary, creating the default row on first
// use. The BeforeCreate hook on BoardSettings fills in the built-in defaults.
func (s *Service) GetSettings() (*models.BoardSettings, error) {
	if s.DB == nil {
		// No database configured: run on the built-in vocabulary.
		settings := &models.BoardSettings{}
		_ = settings.BeforeCreate(nil)
		return settings, nil
	}

	var settings models.BoardSettings
	result := s.DB.FirstOrCreate(&settings, models.BoardSettings{ID: 1})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to load board settings: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		log.Printf("INFO: Board settings created with %d categories and %d rating dimensions.",
			len(settings.Categories), len(settings.RatingDimensions))
	}
	return &settings, nil
}
