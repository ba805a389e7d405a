package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/localnerve/reviewdb/internal/blob"
	"github.com/localnerve/reviewdb/internal/config"
	"github.com/localnerve/reviewdb/internal/utils"
	"gorm.io/gorm"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	PhotoStore   string            `json:"photoStore"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// HealthCheck performs a comprehensive health check of the service
func HealthCheck(ctx context.Context, cfg *config.Config, db *gorm.DB, photos blob.Store) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	// Check database connectivity
	sqlDB, err := db.DB()
	if err != nil {
		result.Status = "unhealthy"
		result.Database = "error"
		result.Details["database_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Database connection error: %v", err)
		log.Printf("Health check failed - database connection: %v", err)
	} else {
		if err := sqlDB.PingContext(ctx); err != nil {
			result.Status = "unhealthy"
			result.Database = "unreachable"
			result.Details["database_ping_error"] = err.Error()
			result.ErrorMessage = fmt.Sprintf("Database ping failed: %v", err)
			log.Printf("Health check failed - database ping: %v", err)
		} else {
			result.Database = "ok"
			result.Details["database_type"] = cfg.DBType
			result.Details["database_name"] = cfg.DBDatabase
		}
	}

	// A custom S3 endpoint gets a TCP reachability probe first so a dead
	// endpoint reports as unreachable rather than as a slow SDK timeout.
	if cfg.PhotoDriver == "s3" && cfg.S3Endpoint != "" {
		if err := utils.PingService(cfg.S3Endpoint, 1500*time.Millisecond); err != nil {
			result.Details["photo_endpoint_error"] = err.Error()
		}
	}

	// Check photo blob sink connectivity
	if err := photos.Ping(ctx); err != nil {
		result.Status = "unhealthy"
		result.PhotoStore = "unreachable"
		result.Details["photo_store_error"] = err.Error()
		if result.ErrorMessage == "" {
			result.ErrorMessage = fmt.Sprintf("Photo store ping failed: %v", err)
		} else {
			result.ErrorMessage += fmt.Sprintf("; Photo store ping failed: %v", err)
		}
		log.Printf("Health check failed - photo store ping: %v", err)
	} else {
		result.PhotoStore = "ok"
		result.Details["photo_driver"] = cfg.PhotoDriver
	}

	if result.Status == "healthy" {
		log.Println("Health check passed - all systems operational")
	}

	return result
}
