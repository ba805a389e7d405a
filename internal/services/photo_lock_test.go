package services

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/localnerve/reviewdb/internal/blob"
	"github.com/localnerve/reviewdb/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestDeleteBusinessDropsPhotoLock tests that the per-business upload mutex
// is removed along with the business
func TestDeleteBusinessDropsPhotoLock(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Business{}, &models.Review{}, &models.User{}, &models.Photo{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	photos, err := blob.NewFSStore(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create fs store: %v", err)
	}
	ctx := context.Background()

	business := models.Business{Name: "Fleeting Falafel", Address: "8 H St", City: "Town", State: "TS", PostalCode: "00008"}
	db.Create(&business)

	image := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}
	result, err := UploadPhoto(ctx, db, photos, business.ID, image, "")
	if err != nil || !result.Success {
		t.Fatalf("Failed to upload photo: %v %+v", err, result.Message)
	}
	if _, ok := photoLocks.Load(business.ID); !ok {
		t.Fatal("Expected a lock entry after upload")
	}

	result, err = DeleteBusiness(ctx, db, photos, business.ID)
	if err != nil || !result.Success {
		t.Fatalf("Failed to delete business: %v %+v", err, result.Message)
	}
	if _, ok := photoLocks.Load(business.ID); ok {
		t.Error("Expected the lock entry removed with the business")
	}
}
