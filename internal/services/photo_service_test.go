package services_test

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/localnerve/reviewdb/internal/blob"
	"github.com/localnerve/reviewdb/internal/models"
	"github.com/localnerve/reviewdb/internal/services"
	"github.com/localnerve/reviewdb/internal/types"
)

// pngHeader is enough bytes for content-type sniffing.
var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

func setupPhotoStore(t *testing.T) (*blob.FSStore, string) {
	t.Helper()
	root := t.TempDir()
	store, err := blob.NewFSStore(root)
	if err != nil {
		t.Fatalf("Failed to create fs store: %v", err)
	}
	return store, root
}

// TestUploadPhotoPositions tests contiguous position assignment from zero
func TestUploadPhotoPositions(t *testing.T) {
	db := setupTestDB(t)
	photos, root := setupPhotoStore(t)
	ctx := context.Background()

	business := models.Business{Name: "Photogenic Foods", Address: "6 E St", City: "Town", State: "TS", PostalCode: "00005"}
	db.Create(&business)

	for i := 0; i < 3; i++ {
		result, err := services.UploadPhoto(ctx, db, photos, business.ID, pngHeader, "caption "+strconv.Itoa(i))
		if err != nil {
			t.Fatalf("Failed to upload photo %d: %v", i, err)
		}
		if !result.Success {
			t.Fatalf("Expected success, got %+v", result.Message)
		}
		photo := result.Data.(*models.Photo)
		if photo.Position != i {
			t.Errorf("Expected position %d, got %d", i, photo.Position)
		}
		if _, err := os.Stat(filepath.Join(root, "photos", strconv.FormatUint(photo.ID, 10))); err != nil {
			t.Errorf("Expected blob for photo %d: %v", photo.ID, err)
		}
	}
}

// TestUploadPhotoMissingBusiness tests the error-level rejection
func TestUploadPhotoMissingBusiness(t *testing.T) {
	db := setupTestDB(t)
	photos, _ := setupPhotoStore(t)

	result, err := services.UploadPhoto(context.Background(), db, photos, 999, pngHeader, "")
	if err != nil {
		t.Fatalf("Failed on missing business: %v", err)
	}
	if result.Success || result.Message.Level != types.LevelError {
		t.Errorf("Expected error-level rejection, got %+v", result.Message)
	}

	var count int64
	db.Model(&models.Photo{}).Count(&count)
	if count != 0 {
		t.Errorf("Expected no photo rows, got %d", count)
	}
}

// TestDeleteBusinessCascade tests that reviews, photos and blobs go with the
// business while users and other businesses survive
func TestDeleteBusinessCascade(t *testing.T) {
	db := setupTestDB(t)
	photos, root := setupPhotoStore(t)
	ctx := context.Background()

	doomed := models.Business{Name: "Doomed Deli", Address: "13 F St", City: "Town", State: "TS", PostalCode: "00006"}
	survivor := models.Business{Name: "Survivor Subs", Address: "14 G St", City: "Town", State: "TS", PostalCode: "00007"}
	db.Create(&doomed)
	db.Create(&survivor)
	user := models.User{Username: "june", PasswordHash: "x"}
	db.Create(&user)

	db.Create(&models.Review{BusinessID: doomed.ID, UserID: user.ID, Score: 1, Date: 1, Text: "This review goes down with the ship when it is deleted."})
	db.Create(&models.Review{BusinessID: survivor.ID, UserID: user.ID, Score: 9, Date: 2, Text: "This review stays behind because its business survives."})

	result, err := services.UploadPhoto(ctx, db, photos, doomed.ID, pngHeader, "")
	if err != nil || !result.Success {
		t.Fatalf("Failed to upload photo: %v %+v", err, result.Message)
	}
	doomedPhoto := result.Data.(*models.Photo)

	result, err = services.DeleteBusiness(ctx, db, photos, doomed.ID)
	if err != nil {
		t.Fatalf("Failed to delete business: %v", err)
	}
	if !result.Success {
		t.Fatalf("Expected success, got %+v", result.Message)
	}

	var businessCount, reviewCount, photoCount, userCount int64
	db.Model(&models.Business{}).Count(&businessCount)
	db.Model(&models.Review{}).Count(&reviewCount)
	db.Model(&models.Photo{}).Count(&photoCount)
	db.Model(&models.User{}).Count(&userCount)

	if businessCount != 1 || reviewCount != 1 || photoCount != 0 {
		t.Errorf("Cascade incomplete: businesses=%d reviews=%d photos=%d",
			businessCount, reviewCount, photoCount)
	}
	if userCount != 1 {
		t.Errorf("Expected the reviewer to survive, got %d users", userCount)
	}

	blobPath := filepath.Join(root, "photos", strconv.FormatUint(doomedPhoto.ID, 10))
	if _, err := os.Stat(blobPath); !os.IsNotExist(err) {
		t.Errorf("Expected blob removed, stat err: %v", err)
	}

	// Repeat delete: warn-level not found.
	result, err = services.DeleteBusiness(ctx, db, photos, doomed.ID)
	if err != nil {
		t.Fatalf("Failed on repeat delete: %v", err)
	}
	if result.Success || result.Message.Level != types.LevelWarn {
		t.Errorf("Expected warn-level not found, got %+v", result.Message)
	}
}
